// Package manifest calls out to the package manager's metadata probe
// and decodes its declared JSON contract. The probe itself (and its
// internals) are an external collaborator; this package only owns the
// calling convention and the decoded shape.
package manifest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"

	"github.com/viant/afs"
)

// Target is one build target of a package (a library or binary crate
// root).
type Target struct {
	Name    string `json:"name"`
	SrcPath string `json:"src_path"`
}

// Package is one workspace member.
type Package struct {
	Name         string   `json:"name"`
	ManifestPath string   `json:"manifest_path"`
	Targets      []Target `json:"targets"`
}

// Metadata is the probe's full decoded response.
type Metadata struct {
	Packages []Package `json:"packages"`
}

// Prober invokes the external manifest probe by running the real
// `cargo` binary. Build it with NewProber; the zero value has no
// filesystem service for Load to use.
type Prober struct {
	fs afs.Service
}

func NewProber() *Prober {
	return &Prober{fs: afs.New()}
}

// Load runs `cargo metadata --no-deps --format-version 1` with dir as
// the working directory and decodes its stdout. A non-zero exit or
// malformed JSON is a setup error, per spec.md §7.
func (p *Prober) Load(ctx context.Context, dir string) (*Metadata, error) {
	if ok, err := p.fs.Exists(ctx, dir); err != nil {
		return nil, fmt.Errorf("resolve project dir %s: %w", dir, err)
	} else if !ok {
		return nil, fmt.Errorf("project dir does not exist: %s", dir)
	}

	cmd := exec.CommandContext(ctx, "cargo", "metadata", "--no-deps", "--format-version", "1")
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("cargo metadata failed: %w: %s", err, stderr.String())
	}

	var metadata Metadata
	if err := json.Unmarshal(stdout.Bytes(), &metadata); err != nil {
		return nil, fmt.Errorf("decode cargo metadata output: %w", err)
	}

	return &metadata, nil
}

// ResolvePackage disambiguates the probed workspace down to one package:
// the named one if packageName is non-empty, or the sole package if
// there's exactly one, per spec.md §7's "no package found"/"ambiguous
// package"/"unknown specified package" setup errors.
func (m *Metadata) ResolvePackage(packageName string) (*Package, error) {
	if len(m.Packages) == 0 {
		return nil, fmt.Errorf("no package found in workspace")
	}

	if packageName == "" {
		if len(m.Packages) > 1 {
			return nil, fmt.Errorf("ambiguous package: workspace has %d packages, specify package_name", len(m.Packages))
		}
		return &m.Packages[0], nil
	}

	for i := range m.Packages {
		if m.Packages[i].Name == packageName {
			return &m.Packages[i], nil
		}
	}
	return nil, fmt.Errorf("unknown package: %s", packageName)
}
