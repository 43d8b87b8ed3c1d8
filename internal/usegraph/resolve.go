package usegraph

import "github.com/oakmoss/tsexport/internal/usepath"

// Table is a file's flattened use-statement index: one entry per
// imported name.
type Table []usepath.RsPath

// Resolve matches a syntactic path's first segment against the table
// by imported name. Only the first segment is ever consulted — a
// path like `foo::Bar` resolves on `foo`, and whatever `Bar` names is
// not re-checked against the table. This mirrors resolve_type_from_uses
// in use_path.rs, which the original never revisited despite the
// leftover `// todo`.
func (t Table) Resolve(segments []string) (usepath.RsPath, bool) {
	if len(segments) == 0 {
		return usepath.RsPath{}, false
	}
	first := segments[0]
	for _, entry := range t {
		if entry.Name == first {
			return entry, true
		}
	}
	return usepath.RsPath{}, false
}

// LastSegment returns the final identifier of a syntactic path, the
// fallback handed to primitive/generic/local-name resolution on a
// use-table miss.
func LastSegment(segments []string) string {
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}

// CrossModuleCandidates keeps only the imports that can possibly name
// a type declared in another file: absolute paths and those beginning
// with a ParentDir (super::) component. Same-crate relative imports
// without an anchor, and anything already resolved to a local name,
// are not candidates for the driver's cross-module edge discovery.
func CrossModuleCandidates(paths []usepath.RsPath) []usepath.RsPath {
	var out []usepath.RsPath
	for _, p := range paths {
		if p.IsAbsolute() || p.StartsWithParent() {
			out = append(out, p)
		}
	}
	return out
}
