package extract

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"

	"github.com/oakmoss/tsexport/internal/attrs"
	"github.com/oakmoss/tsexport/internal/typeinfo"
	"github.com/oakmoss/tsexport/internal/usegraph"
	"github.com/oakmoss/tsexport/internal/usepath"
)

// File is one extracted source file: its filesystem-style path, the
// flattened use table built while scanning it, and the ordered result
// of parsing every top-level record/sum item.
type File struct {
	Path  usepath.FsPath
	Uses  usegraph.Table
	Items []*ResultItem
}

// ExtractFile parses src as a module, builds its use table and
// local-name set, then walks each top-level struct/enum item. Field-
// and attribute-level errors are wrapped per item so extraction can
// continue past a bad item; the file itself only fails to parse on a
// tree-sitter error.
func ExtractFile(src []byte, path usepath.FsPath, warn usegraph.Warnf) (*File, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(rust.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	root := tree.RootNode()

	rsPath := path.ToRS()

	var uses usegraph.Table
	locals := map[string]struct{}{}

	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		switch child.Type() {
		case "use_declaration":
			uses = append(uses, usegraph.CrossModuleCandidates(usegraph.Expand(child, src, warn))...)
		case "struct_item", "enum_item":
			if name := itemName(child, src); name != "" {
				locals[name] = struct{}{}
			}
		}
	}

	var results []*ResultItem
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)

		switch child.Type() {
		case "struct_item":
			item, err := parseStructItem(child, src, uses, locals, rsPath)
			results = append(results, wrapResult(item, itemName(child, src), err))
		case "enum_item":
			item, err := parseEnumItem(child, src, uses, locals, rsPath)
			results = append(results, wrapResult(item, itemName(child, src), err))
		}
	}

	if len(results) == 0 {
		return nil, nil
	}

	return &File{Path: path, Uses: uses, Items: results}, nil
}

func wrapResult(item Item, name string, err error) *ResultItem {
	if err != nil {
		return &ResultItem{Err: &ParseError{Name: name, Err: err}}
	}
	return &ResultItem{Item: item}
}

func itemName(node *sitter.Node, src []byte) string {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return ""
	}
	return nameNode.Content(src)
}

func parseStructItem(node *sitter.Node, src []byte, uses usegraph.Table, locals map[string]struct{}, self usepath.RsPath) (*StructItem, error) {
	name := itemName(node, src)

	attr, err := attrs.Parse(precedingAttributes(node, src))
	if err != nil {
		return nil, err
	}

	body := node.ChildByFieldName("body")
	fields, err := parseFieldList(body, src, uses, locals, self)
	if err != nil {
		return nil, err
	}

	return &StructItem{Name: name, Attr: attr, Fields: fields}, nil
}

func parseEnumItem(node *sitter.Node, src []byte, uses usegraph.Table, locals map[string]struct{}, self usepath.RsPath) (*EnumItem, error) {
	name := itemName(node, src)

	attr, err := attrs.Parse(precedingAttributes(node, src))
	if err != nil {
		return nil, err
	}

	body := node.ChildByFieldName("body")
	var variants []Variant
	if body != nil {
		for i := 0; i < int(body.NamedChildCount()); i++ {
			variantNode := body.NamedChild(i)
			if variantNode.Type() != "enum_variant" {
				continue
			}
			variant, err := parseVariant(variantNode, src, uses, locals, self)
			if err != nil {
				return nil, fmt.Errorf("variant %s: %w", itemName(variantNode, src), err)
			}
			variants = append(variants, variant)
		}
	}

	return &EnumItem{Name: name, Attr: attr, Variants: variants}, nil
}

func parseVariant(node *sitter.Node, src []byte, uses usegraph.Table, locals map[string]struct{}, self usepath.RsPath) (Variant, error) {
	name := itemName(node, src)

	attr, err := attrs.Parse(precedingAttributes(node, src))
	if err != nil {
		return Variant{}, err
	}

	body := node.ChildByFieldName("body")
	fields, err := parseFieldList(body, src, uses, locals, self)
	if err != nil {
		return Variant{}, err
	}

	return Variant{Name: name, Attr: attr, Fields: fields}, nil
}

func parseFieldList(body *sitter.Node, src []byte, uses usegraph.Table, locals map[string]struct{}, self usepath.RsPath) ([]Field, error) {
	if body == nil {
		return nil, nil
	}

	var fields []Field
	switch body.Type() {
	case "field_declaration_list":
		for i := 0; i < int(body.NamedChildCount()); i++ {
			decl := body.NamedChild(i)
			if decl.Type() != "field_declaration" {
				continue
			}
			field, err := parseNamedField(decl, src, uses, locals, self)
			if err != nil {
				return nil, err
			}
			fields = append(fields, field)
		}

	case "ordered_field_declaration_list":
		for i := 0; i < int(body.NamedChildCount()); i++ {
			decl := body.NamedChild(i)
			if decl.Type() == "attribute_item" {
				continue
			}
			typeNode := decl.ChildByFieldName("type")
			if typeNode == nil {
				typeNode = decl
			}
			attr, err := attrs.Parse(precedingAttributes(decl, src))
			if err != nil {
				return nil, err
			}
			ty, err := typeinfo.Resolve(typeNode, src, uses, locals, attr, self)
			if err != nil {
				return nil, err
			}
			fields = append(fields, Field{Type: ty, Attr: attr})
		}
	}

	return fields, nil
}

func parseNamedField(decl *sitter.Node, src []byte, uses usegraph.Table, locals map[string]struct{}, self usepath.RsPath) (Field, error) {
	nameNode := decl.ChildByFieldName("name")
	typeNode := decl.ChildByFieldName("type")
	if nameNode == nil || typeNode == nil {
		return Field{}, fmt.Errorf("malformed field declaration")
	}

	attr, err := attrs.Parse(precedingAttributes(decl, src))
	if err != nil {
		return Field{}, err
	}

	ty, err := typeinfo.Resolve(typeNode, src, uses, locals, attr, self)
	if err != nil {
		return Field{}, err
	}

	name := nameNode.Content(src)
	return Field{Name: &name, Type: ty, Attr: attr}, nil
}

// precedingAttributes walks backward over a node's immediate older
// siblings, collecting contiguous "attribute_item" nodes, and returns
// their raw `#[...]` text in source order.
func precedingAttributes(node *sitter.Node, src []byte) []string {
	var raw []string
	for sib := node.PrevSibling(); sib != nil && sib.Type() == "attribute_item"; sib = sib.PrevSibling() {
		raw = append(raw, sib.Content(src))
	}
	for i, j := 0, len(raw)-1; i < j; i, j = i+1, j-1 {
		raw[i], raw[j] = raw[j], raw[i]
	}
	return raw
}
