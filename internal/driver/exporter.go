// Package driver owns the end-to-end export run: validating the project
// root, scanning and parsing every source file, discovering entry
// points, and iterating the transform-and-write wave loop to a fixed
// point.
package driver

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/viant/afs"
	"go.uber.org/zap"

	"github.com/oakmoss/tsexport/internal/config"
	"github.com/oakmoss/tsexport/internal/extract"
	"github.com/oakmoss/tsexport/internal/manifest"
	"github.com/oakmoss/tsexport/internal/usegraph"
	"github.com/oakmoss/tsexport/internal/usepath"
)

// fileEntry is one scanned-and-parsed source file.
type fileEntry struct {
	path    usepath.FsPath
	uses    usegraph.Table
	results []*extract.ResultItem
}

// Exporter runs the four phases against one project root: init/
// validate, scan & parse, discover entries, and the wave loop.
type Exporter struct {
	root   string // canonicalized source directory (<project-root>/src)
	output string // canonicalized output directory
	logger *zap.Logger

	items map[string]*fileEntry // keyed by fileEntry.path.String()
}

// New validates projectRoot and resolves its target package, then
// canonicalizes both the source directory and output directory. It
// performs no scanning; call Run to do that.
func New(ctx context.Context, cfg *config.Config, projectRoot, output string, logger *zap.Logger) (*Exporter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	fs := afs.New()

	manifestPath := filepath.Join(projectRoot, "Cargo.toml")
	srcPath := filepath.Join(projectRoot, "src")

	manifestOK, err := fs.Exists(ctx, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("check project manifest: %w", err)
	}
	srcOK, err := fs.Exists(ctx, srcPath)
	if err != nil {
		return nil, fmt.Errorf("check source directory: %w", err)
	}
	if !manifestOK || !srcOK {
		return nil, ErrInvalidProjectRoot
	}

	prober := manifest.NewProber()
	metadata, err := prober.Load(ctx, projectRoot)
	if err != nil {
		return nil, fmt.Errorf("probe project manifest: %w", err)
	}

	packageName := ""
	if cfg != nil {
		packageName = cfg.PackageName
	}
	if _, err := metadata.ResolvePackage(packageName); err != nil {
		if len(metadata.Packages) == 0 {
			return nil, fmt.Errorf("resolve package: %w", err)
		}
		if packageName == "" && len(metadata.Packages) > 1 {
			return nil, fmt.Errorf("%w: %v", ErrAmbiguousPackage, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnknownPackage, err)
	}

	absSrc, err := filepath.Abs(srcPath)
	if err != nil {
		return nil, fmt.Errorf("resolve source directory: %w", err)
	}
	absOutput, err := filepath.Abs(output)
	if err != nil {
		return nil, fmt.Errorf("resolve output directory: %w", err)
	}

	return &Exporter{
		root:   absSrc,
		output: absOutput,
		logger: logger,
		items:  map[string]*fileEntry{},
	}, nil
}

// Run scans the source tree, then transforms and writes every
// reachable item to the output directory, looping waves until no new
// dependency is discovered.
func (e *Exporter) Run(ctx context.Context) error {
	if err := e.scanAndParseFiles(ctx); err != nil {
		return err
	}
	return e.transformAndWrite()
}
