package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/oakmoss/tsexport/internal/extract"
	"github.com/oakmoss/tsexport/internal/usegraph"
	"github.com/oakmoss/tsexport/internal/usepath"
)

// warnf adapts the exporter's logger to the usegraph.Warnf shape
// threaded through expansion/extraction.
func (e *Exporter) warnf(format string, args ...interface{}) {
	e.logger.Sugar().Warnf(format, args...)
}

// scanAndParseFiles walks the source directory recursively, skipping
// dotfiles and anything but ".rs" files, and extracts every file with
// at least one struct/enum item, grounded on scan_and_parse_files in
// type_exporter.rs and the filepath.Walk idiom of InspectPackages.
func (e *Exporter) scanAndParseFiles(_ context.Context) error {
	return filepath.Walk(e.root, func(aPath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		name := info.Name()
		if strings.HasPrefix(name, ".") {
			return nil
		}
		if filepath.Ext(name) != ".rs" {
			return nil
		}

		rel, err := filepath.Rel(e.root, aPath)
		if err != nil {
			return err
		}
		fsPath := usepath.FromSlashPath(filepath.ToSlash(rel))

		src, err := os.ReadFile(aPath)
		if err != nil {
			return err
		}

		file, err := extract.ExtractFile(src, fsPath, usegraph.Warnf(e.warnf))
		if err != nil {
			e.logger.Sugar().Warnf("parse %s: %v", aPath, err)
			return nil
		}
		if file == nil {
			return nil
		}

		e.items[file.Path.String()] = &fileEntry{path: file.Path, uses: file.Uses, results: file.Items}
		return nil
	})
}
