// Package usepath models Rust-style module paths in two coordinate
// systems: source-style ("rs", the way a `use` statement names them) and
// filesystem-style ("fs", the way they sit on disk relative to the crate
// root). RsPath and FsPath share the same component sequence and a set of
// conversion methods; they are kept as distinct concrete types rather than
// one type parameterized on a phantom marker, since the legal operations
// on each differ enough that the marker would just gate methods at
// runtime instead of compile time.
package usepath

import "strings"

// ComponentKind selects the meaning of a single path component.
type ComponentKind int

const (
	Normal ComponentKind = iota
	ParentDir
	RootDir
)

// Component is one segment of a path: either a named segment, the
// one-above operator ("super" in source form), or the crate root
// sentinel ("crate" in source form).
type Component struct {
	Kind ComponentKind
	Name string // only meaningful when Kind == Normal
}

func NormalComponent(name string) Component { return Component{Kind: Normal, Name: name} }

// LiftComponent turns a raw identifier into a Component, recognizing the
// two reserved path tokens.
func LiftComponent(ident string) Component {
	switch ident {
	case "super":
		return Component{Kind: ParentDir}
	case "crate":
		return Component{Kind: RootDir}
	default:
		return NormalComponent(ident)
	}
}

func (c Component) String() string {
	switch c.Kind {
	case ParentDir:
		return ".."
	case RootDir:
		return "<root>"
	default:
		return c.Name
	}
}

func joinComponents(cs []Component) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, "/")
}

func cloneComponents(cs []Component) []Component {
	out := make([]Component, len(cs))
	copy(out, cs)
	return out
}

func equalComponents(a, b []Component) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
