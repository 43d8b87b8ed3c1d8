package emit

import (
	"github.com/oakmoss/tsexport/internal/attrs"
	"github.com/oakmoss/tsexport/internal/extract"
	"github.com/oakmoss/tsexport/internal/tsast"
	"github.com/oakmoss/tsexport/internal/usepath"
)

// Result is one item's emission: its target-language declaration plus
// the set of cross-file dependencies it touched.
type Result struct {
	Decl tsast.TypeAliasDecl
	Deps []usepath.RsPath
}

// Struct builds the target type alias for one record item, per
// spec.md §4.F: a type literal for a normal (named-field) struct, or
// `null` when every one of its fields is skipped; a tuple type (or its
// sole element, collapsed) for a tuple struct; and `null` for a unit
// struct.
func Struct(s *extract.StructItem) Result {
	deps := newDepSet()
	name, _ := attrs.RenameName(s.Attr, nil, s.Name, true)

	var typeExpr tsast.TypeExpr
	switch {
	case s.IsNormal():
		typeExpr = namedFieldsTypeLit(s.Fields, s.Attr.RenameAllOrDefault(), deps)
		if len(typeExpr.Properties()) == 0 {
			typeExpr = tsast.Kw(tsast.KeywordNull)
		}
	case s.IsTuple():
		typeExpr = tupleFieldsTypeExpr(s.Fields, deps)
	default:
		typeExpr = tsast.Kw(tsast.KeywordNull)
	}

	return Result{Decl: tsast.TypeAliasDecl{Name: name, Type: typeExpr}, Deps: deps.paths}
}

func namedFieldsTypeLit(fields []extract.Field, renameAll attrs.RenameAll, deps *depSet) tsast.TypeExpr {
	var props []tsast.Property
	for _, f := range fields {
		if f.Attr.IsSkipped() {
			continue
		}
		name, _ := attrs.RenameName(f.Attr, &renameAll, *f.Name, true)
		props = append(props, tsast.Property{Name: name, Type: typeExprOf(f.Type, deps)})
	}
	return tsast.TypeLit(props...)
}

// tupleFieldsTypeExpr mirrors struct_info.rs's to_ts_ast tuple branch
// exactly: the single-field case bypasses the skip filter entirely
// (the original never checks it there either), collapsing straight to
// the field's own type.
func tupleFieldsTypeExpr(fields []extract.Field, deps *depSet) tsast.TypeExpr {
	if len(fields) == 1 {
		return typeExprOf(fields[0].Type, deps)
	}
	var elems []tsast.TypeExpr
	for _, f := range fields {
		if f.Attr.IsSkipped() {
			continue
		}
		elems = append(elems, typeExprOf(f.Type, deps))
	}
	return tsast.Tuple(elems...)
}
