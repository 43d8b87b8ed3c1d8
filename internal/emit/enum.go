package emit

import (
	"fmt"

	"github.com/oakmoss/tsexport/internal/attrs"
	"github.com/oakmoss/tsexport/internal/extract"
	"github.com/oakmoss/tsexport/internal/tsast"
	"github.com/oakmoss/tsexport/internal/usegraph"
	"github.com/oakmoss/tsexport/internal/usepath"
)

// EnumResult is one sum item's emission: the union type plus every
// per-variant helper type it needed, and the combined dependency set.
type EnumResult struct {
	Decl    tsast.TypeAliasDecl
	Helpers []tsast.TypeAliasDecl
	Deps    []usepath.RsPath
}

// Enum builds the target union type and its variant helpers, dispatching
// on tagging mode (external/internal/adjacent) crossed with variant
// shape (unit/struct/tuple) per the table in spec.md §4.F.
func Enum(e *extract.EnumItem, warn usegraph.Warnf) EnumResult {
	deps := newDepSet()
	enumName, _ := attrs.RenameName(e.Attr, nil, e.Name, true)
	enumRenameAll := e.Attr.RenameAllOrDefault()

	tag, hasTag := e.Attr.Tag.Value()
	content, hasContent := e.Attr.Content.Value()

	var members []tsast.TypeExpr
	var helpers []tsast.TypeAliasDecl

	for _, v := range e.Variants {
		variantName, _ := attrs.RenameName(v.Attr, &enumRenameAll, v.Name, true)
		helperName := enumName + "_" + variantName

		member, helper := emitVariant(v, variantName, helperName, hasTag, tag, hasContent, content, deps, warn)
		members = append(members, member)
		if helper != nil {
			helpers = append(helpers, *helper)
		}
	}

	decl := tsast.TypeAliasDecl{Name: enumName, Type: tsast.Union(members...)}
	return EnumResult{Decl: decl, Helpers: helpers, Deps: deps.paths}
}

func emitVariant(
	v extract.Variant, variantName, helperName string,
	hasTag bool, tag string, hasContent bool, content string,
	deps *depSet, warn usegraph.Warnf,
) (tsast.TypeExpr, *tsast.TypeAliasDecl) {
	if !hasTag {
		return emitExternallyTagged(v, variantName, helperName, deps)
	}
	if v.IsUnit() {
		return tsast.TypeLit(tsast.Property{Name: tag, Type: tsast.StringLiteral(variantName)}), nil
	}
	if hasContent {
		return emitAdjacentlyTagged(v, variantName, helperName, tag, content, deps)
	}
	return emitInternallyTagged(v, variantName, helperName, tag, deps, warn)
}

func emitExternallyTagged(v extract.Variant, variantName, helperName string, deps *depSet) (tsast.TypeExpr, *tsast.TypeAliasDecl) {
	if v.IsUnit() {
		return tsast.StringLiteral(variantName), nil
	}
	helperExpr := variantStructTypeExpr(v, deps)
	helper := tsast.TypeAliasDecl{Name: helperName, Type: helperExpr}
	member := tsast.TypeLit(tsast.Property{Name: variantName, Type: tsast.Ref(helperName)})
	return member, &helper
}

func emitAdjacentlyTagged(v extract.Variant, variantName, helperName, tag, content string, deps *depSet) (tsast.TypeExpr, *tsast.TypeAliasDecl) {
	helperExpr := variantStructTypeExpr(v, deps)
	helper := tsast.TypeAliasDecl{Name: helperName, Type: helperExpr}
	member := tsast.TypeLit(
		tsast.Property{Name: tag, Type: tsast.StringLiteral(variantName)},
		tsast.Property{Name: content, Type: tsast.Ref(helperName)},
	)
	return member, &helper
}

// emitInternallyTagged injects `[tag]: "variantName"` as an extra
// property alongside the variant's own (non-skipped) fields. A
// tuple-shaped variant here is an invalid combination per spec.md
// §4.F's table; rather than fail the whole run, positional fields are
// given synthetic names ("_0", "_1", …) and a warning is logged,
// producing a defined (if unusual) result instead of aborting emission
// for valid sibling variants.
func emitInternallyTagged(v extract.Variant, variantName, helperName, tag string, deps *depSet, warn usegraph.Warnf) (tsast.TypeExpr, *tsast.TypeAliasDecl) {
	props := []tsast.Property{{Name: tag, Type: tsast.StringLiteral(variantName)}}

	if v.IsTuple() {
		if warn != nil {
			warn("internally tagged variant %q has tuple shape; this is an unsupported combination and produces positional field names", variantName)
		}
		for i, f := range v.Fields {
			if f.Attr.IsSkipped() {
				continue
			}
			props = append(props, tsast.Property{Name: fmt.Sprintf("_%d", i), Type: typeExprOf(f.Type, deps)})
		}
	} else {
		renameAll := v.Attr.RenameAllOrDefault()
		for _, f := range v.Fields {
			if f.Attr.IsSkipped() {
				continue
			}
			name, _ := attrs.RenameName(f.Attr, &renameAll, *f.Name, true)
			props = append(props, tsast.Property{Name: name, Type: typeExprOf(f.Type, deps)})
		}
	}

	helper := tsast.TypeAliasDecl{Name: helperName, Type: tsast.TypeLit(props...)}
	return tsast.Ref(helperName), &helper
}

// variantStructTypeExpr treats a non-unit variant exactly like a
// record's field list, grounded on to_struct_ast in enum_info.rs: the
// variant's own rename_all governs its fields, independent of the
// enum-level rename_all used for the variant's own emitted name.
func variantStructTypeExpr(v extract.Variant, deps *depSet) tsast.TypeExpr {
	if v.IsNormal() {
		return namedFieldsTypeLit(v.Fields, v.Attr.RenameAllOrDefault(), deps)
	}
	return tupleFieldsTypeExpr(v.Fields, deps)
}
