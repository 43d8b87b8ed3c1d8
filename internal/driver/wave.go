package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/oakmoss/tsexport/internal/attrs"
	"github.com/oakmoss/tsexport/internal/emit"
	"github.com/oakmoss/tsexport/internal/extract"
	"github.com/oakmoss/tsexport/internal/tsast"
	"github.com/oakmoss/tsexport/internal/usegraph"
	"github.com/oakmoss/tsexport/internal/usepath"
)

// wave maps a file's canonical path string to the items within it that
// still need transforming — either this round's entry points, or the
// dependencies the previous round's writes surfaced.
type wave map[string][]*extract.ResultItem

// collectEntries groups every item flagged as an entry point by its
// declaring file, the seed of the wave loop, grounded on collect_entries
// in type_exporter.rs.
func (e *Exporter) collectEntries() wave {
	out := wave{}
	for key, fe := range e.items {
		var entries []*extract.ResultItem
		for _, r := range fe.results {
			if r.Err != nil || r.Item == nil {
				continue
			}
			if itemAttr(r.Item).IsEntry() {
				entries = append(entries, r)
				e.logger.Sugar().Infof("entry point %s in %s", r.Item.ItemName(), fe.path)
			}
		}
		if len(entries) > 0 {
			out[key] = entries
		}
	}
	return out
}

// itemAttr reads the attribute set off whichever concrete Item type was
// extracted, since attrs.Info lives on the concrete structs rather than
// the Item interface.
func itemAttr(item extract.Item) attrs.Info {
	switch it := item.(type) {
	case *extract.StructItem:
		return it.Attr
	case *extract.EnumItem:
		return it.Attr
	default:
		return attrs.Info{}
	}
}

// transformAndWrite runs collectEntries, then iterates
// transformAndWriteFiles to a fixed point: each round's writes surface
// the next round's cross-file dependencies, until a round discovers
// nothing new.
func (e *Exporter) transformAndWrite() error {
	current := e.collectEntries()
	for len(current) > 0 {
		next, err := e.transformAndWriteFiles(current)
		if err != nil {
			return err
		}
		current = next
	}
	return nil
}

func (e *Exporter) transformAndWriteFiles(files wave) (wave, error) {
	next := wave{}
	for key, items := range files {
		fe, ok := e.items[key]
		if !ok {
			continue
		}
		deps, err := e.transformAndWriteFile(fe, items)
		if err != nil {
			return nil, err
		}
		for k, v := range deps {
			next[k] = append(next[k], v...)
		}
	}
	return dedupeWave(next), nil
}

// transformAndWriteFile emits every not-yet-processed item in items,
// writes the accumulated declarations (plus their import block) to the
// file's output path in append mode, and resolves the union of their
// dependencies into the next wave.
func (e *Exporter) transformAndWriteFile(fe *fileEntry, items []*extract.ResultItem) (wave, error) {
	var decls []tsast.TypeAliasDecl
	var deps []usepath.RsPath

	for _, r := range items {
		if r.Processed {
			continue
		}
		r.Processed = true

		if r.Err != nil {
			e.logger.Sugar().Warnf("skipping %s in %s: %v", r.Err.Name, fe.path, r.Err.Err)
			continue
		}

		switch it := r.Item.(type) {
		case *extract.StructItem:
			res := emit.Struct(it)
			decls = append(decls, res.Decl)
			deps = append(deps, res.Deps...)
		case *extract.EnumItem:
			res := emit.Enum(it, usegraph.Warnf(e.warnf))
			decls = append(decls, res.Decl)
			decls = append(decls, res.Helpers...)
			deps = append(deps, res.Deps...)
		}
	}

	if len(decls) == 0 {
		return nil, nil
	}

	imports := e.buildImports(fe.path, deps)
	content := tsast.Render(tsast.Module{Imports: imports, Decls: decls})

	if err := e.writeOutput(fe.path, content); err != nil {
		return nil, err
	}

	return e.resolveDeps(fe.path, deps), nil
}

// buildImports keeps only cross-file, non-local-use dependencies,
// relativizes each against the declaring file, and emits one
// single-name import per distinct (module specifier, name) pair,
// ordered by specifier.
func (e *Exporter) buildImports(anchor usepath.FsPath, deps []usepath.RsPath) []tsast.ImportDecl {
	bySpecifier := map[string][]string{}
	seenName := map[string]map[string]struct{}{}

	for _, dep := range deps {
		if dep.LocalUse {
			continue
		}
		rel, ok := dep.RelativeFromChecked(anchor, usepath.Warnf(e.warnf))
		if !ok {
			continue
		}
		specifier := rel.ImportSpecifier()
		name := dep.ResolvedName()

		if seenName[specifier] == nil {
			seenName[specifier] = map[string]struct{}{}
		}
		if _, ok := seenName[specifier][name]; ok {
			continue
		}
		seenName[specifier][name] = struct{}{}
		bySpecifier[specifier] = append(bySpecifier[specifier], name)
	}

	specifiers := make([]string, 0, len(bySpecifier))
	for s := range bySpecifier {
		specifiers = append(specifiers, s)
	}
	sort.Strings(specifiers)

	imports := make([]tsast.ImportDecl, 0, len(specifiers))
	for _, s := range specifiers {
		for _, name := range bySpecifier[s] {
			imports = append(imports, tsast.ImportDecl{Names: []string{name}, ModuleRef: s})
		}
	}
	return imports
}

// resolveDeps canonicalizes each dependency's declaring file against
// anchor's location (same-file local references canonicalize straight
// back to anchor) and matches its resolved name against that file's
// item index, surfacing every matched item for the next wave (items
// already processed are skipped when that wave runs).
func (e *Exporter) resolveDeps(anchor usepath.FsPath, deps []usepath.RsPath) wave {
	out := wave{}

	for _, dep := range deps {
		target := dep.CanonicalFS(anchor, usepath.Warnf(e.warnf))
		key := target.String()

		fe, ok := e.items[key]
		if !ok {
			e.logger.Sugar().Warnf("dependency %s (from %s) resolves to unknown file %s", dep, anchor, key)
			continue
		}

		name := dep.ResolvedName()
		found := false
		for _, r := range fe.results {
			if r.Name() == name {
				out[key] = append(out[key], r)
				found = true
				break
			}
		}
		if !found {
			e.logger.Sugar().Warnf("dependency %s not found in %s", name, key)
		}
	}

	return dedupeWave(out)
}

// dedupeWave drops duplicate *extract.ResultItem pointers within each
// file's slice, since the same item can be reached as a dependency of
// more than one emitted item in a round.
func dedupeWave(w wave) wave {
	out := wave{}
	for key, items := range w {
		seen := map[*extract.ResultItem]struct{}{}
		var deduped []*extract.ResultItem
		for _, it := range items {
			if _, ok := seen[it]; ok {
				continue
			}
			seen[it] = struct{}{}
			deduped = append(deduped, it)
		}
		if len(deduped) > 0 {
			out[key] = deduped
		}
	}
	return out
}

// writeOutput appends content to <output>/<path>.d.ts, creating parent
// directories and the file as needed. Never truncates an existing file,
// per the driver's documented no-clear policy.
func (e *Exporter) writeOutput(path usepath.FsPath, content []byte) error {
	outPath := filepath.Join(e.output, filepath.FromSlash(path.WithExt(".d.ts")))

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output directory for %s: %w", path, err)
	}

	f, err := os.OpenFile(outPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open output file %s: %w", outPath, err)
	}
	defer f.Close()

	if _, err := f.Write(content); err != nil {
		return fmt.Errorf("write output file %s: %w", outPath, err)
	}
	return nil
}
