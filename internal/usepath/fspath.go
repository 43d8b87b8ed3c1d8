package usepath

import (
	"path"
	"strings"
)

// FsPath is the same component sequence interpreted as directories plus a
// final filename (extension stripped).
type FsPath struct {
	Components []Component
}

// FromSlashPath builds an FsPath from a '/'-separated relative path such
// as "a/b.rs", stripping the final extension and collapsing "." segments.
// A leading "/" becomes a RootDir component, mirroring the crate root.
func FromSlashPath(p string) FsPath {
	p = strings.TrimSuffix(p, path.Ext(p))
	abs := strings.HasPrefix(p, "/")
	p = strings.Trim(p, "/")

	var comps []Component
	if abs {
		comps = append(comps, Component{Kind: RootDir})
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == "" || seg == "." {
			continue
		}
		if seg == ".." {
			comps = append(comps, Component{Kind: ParentDir})
			continue
		}
		comps = append(comps, NormalComponent(seg))
	}
	return FsPath{Components: comps}
}

// ToRS reinterprets this filesystem-style path as a source-style one with
// no name/rename metadata.
func (p FsPath) ToRS() RsPath {
	return RsPath{Components: cloneComponents(p.Components)}
}

// Parent drops the trailing (filename) component, yielding the
// containing directory.
func (p FsPath) Parent() FsPath {
	if len(p.Components) == 0 {
		return p
	}
	return FsPath{Components: cloneComponents(p.Components[:len(p.Components)-1])}
}

// ToRelative drops a leading RootDir component, if present.
func (p FsPath) ToRelative() FsPath {
	if len(p.Components) > 0 && p.Components[0].Kind == RootDir {
		return FsPath{Components: cloneComponents(p.Components[1:])}
	}
	return p
}

// SlashPath renders the path as a '/'-joined relative string (no
// extension), suitable for filepath.Join against an output root.
func (p FsPath) SlashPath() string {
	rel := p.ToRelative()
	parts := make([]string, 0, len(rel.Components))
	for _, c := range rel.Components {
		if c.Kind == Normal {
			parts = append(parts, c.Name)
		}
	}
	return strings.Join(parts, "/")
}

// WithExt renders the path plus the given extension (e.g. ".d.ts").
func (p FsPath) WithExt(ext string) string {
	return p.SlashPath() + ext
}

func (p FsPath) Equal(o FsPath) bool {
	return equalComponents(p.Components, o.Components)
}

func (p FsPath) String() string {
	return joinComponents(p.Components)
}
