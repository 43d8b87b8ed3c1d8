// Package emit builds tsast type expressions and module items from
// extracted struct/enum items, following the struct/enum/tag emission
// table.
package emit

import (
	"github.com/oakmoss/tsexport/internal/tsast"
	"github.com/oakmoss/tsexport/internal/typeinfo"
	"github.com/oakmoss/tsexport/internal/usepath"
)

// depSet collects unique dependency paths in first-seen order.
type depSet struct {
	seen  map[string]struct{}
	paths []usepath.RsPath
}

func newDepSet() *depSet { return &depSet{seen: map[string]struct{}{}} }

func (d *depSet) add(p usepath.RsPath) {
	key := p.String() + "#" + p.Name
	if _, ok := d.seen[key]; ok {
		return
	}
	d.seen[key] = struct{}{}
	d.paths = append(d.paths, p)
}

func (d *depSet) addAll(other []usepath.RsPath) {
	for _, p := range other {
		d.add(p)
	}
}

// typeExprOf converts one resolved field type into its tsast
// expression, accumulating every TypeInfo::Normal reference it touches
// into deps (including local-use references, which the caller may
// still need for reachability even though they are never written out
// as an import).
func typeExprOf(info typeinfo.Info, deps *depSet) tsast.TypeExpr {
	switch info.Kind() {
	case typeinfo.Normal:
		p := info.Path()
		deps.add(p)
		return tsast.Ref(p.Name)

	case typeinfo.OptionKind:
		inner := typeExprOf(info.Elem(), deps)
		return tsast.Union(inner, tsast.Kw(tsast.KeywordNull))

	case typeinfo.VecKind:
		inner := typeExprOf(info.Elem(), deps)
		return tsast.Ref("Array", inner)

	case typeinfo.MapKind:
		k, v := info.KeyValue()
		return tsast.Ref("Map", typeExprOf(k, deps), typeExprOf(v, deps))

	case typeinfo.BoxKind:
		return typeExprOf(info.Elem(), deps)

	case typeinfo.Custom:
		return tsast.Ref(info.CustomName())

	case typeinfo.Bool:
		return tsast.Kw(tsast.KeywordBoolean)
	case typeinfo.Number:
		return tsast.Kw(tsast.KeywordNumber)
	case typeinfo.BigInt:
		return tsast.Kw(tsast.KeywordBigInt)
	case typeinfo.String:
		return tsast.Kw(tsast.KeywordString)

	default:
		return tsast.Kw(tsast.KeywordNull)
	}
}
