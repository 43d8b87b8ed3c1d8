// Package typeinfo resolves a syntactic field type into a TypeInfo: a
// discriminated union of the shapes a generated TypeScript declaration
// needs to distinguish (a named type, a handful of recognized generic
// containers, or one of four primitive leaves).
package typeinfo

import "github.com/oakmoss/tsexport/internal/usepath"

// Kind tags which variant an Info value holds. Go has no sum types, so
// this plus a set of kind-gated accessor methods stands in for the
// `enum TypeInfo` the resolution algorithm was grounded on; each
// accessor panics if called against the wrong Kind; the resolver is
// the only constructor, so a panic here means the resolver itself
// built an inconsistent value.
type Kind int

const (
	Normal Kind = iota
	OptionKind
	VecKind
	MapKind
	BoxKind
	Custom
	Bool
	Number
	BigInt
	String
)

// Info is one resolved field type.
type Info struct {
	kind Kind

	path   usepath.RsPath // Normal
	elem   *Info          // Option/Vec/Box
	key    *Info          // Map
	value  *Info          // Map
	custom string         // Custom
}

func NewNormal(path usepath.RsPath) Info { return Info{kind: Normal, path: path} }
func NewOption(elem Info) Info           { return Info{kind: OptionKind, elem: &elem} }
func NewVec(elem Info) Info              { return Info{kind: VecKind, elem: &elem} }
func NewBox(elem Info) Info              { return Info{kind: BoxKind, elem: &elem} }
func NewMap(key, value Info) Info        { return Info{kind: MapKind, key: &key, value: &value} }
func NewCustom(name string) Info         { return Info{kind: Custom, custom: name} }

var (
	InfoBool   = Info{kind: Bool}
	InfoNumber = Info{kind: Number}
	InfoBigInt = Info{kind: BigInt}
	InfoString = Info{kind: String}
)

func (i Info) Kind() Kind { return i.kind }

func (i Info) Path() usepath.RsPath {
	if i.kind != Normal {
		panic("typeinfo: Path called on non-Normal Info")
	}
	return i.path
}

func (i Info) Elem() Info {
	if i.kind != OptionKind && i.kind != VecKind && i.kind != BoxKind {
		panic("typeinfo: Elem called on an Info without a single element")
	}
	return *i.elem
}

func (i Info) KeyValue() (Info, Info) {
	if i.kind != MapKind {
		panic("typeinfo: KeyValue called on non-Map Info")
	}
	return *i.key, *i.value
}

func (i Info) CustomName() string {
	if i.kind != Custom {
		panic("typeinfo: CustomName called on non-Custom Info")
	}
	return i.custom
}
