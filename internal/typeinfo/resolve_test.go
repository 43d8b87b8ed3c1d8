package typeinfo

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakmoss/tsexport/internal/attrs"
	"github.com/oakmoss/tsexport/internal/usegraph"
	"github.com/oakmoss/tsexport/internal/usepath"
)

// fieldType parses "struct S { field: <typeSrc> }" and returns the
// field's type node plus the full source buffer.
func fieldType(t *testing.T, typeSrc string) (*sitter.Node, []byte) {
	t.Helper()
	src := []byte("struct S { field: " + typeSrc + " }")
	parser := sitter.NewParser()
	parser.SetLanguage(rust.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	require.NoError(t, err)

	root := tree.RootNode()
	var fieldList *sitter.Node
	for i := 0; i < int(root.NamedChildCount()); i++ {
		if c := root.NamedChild(i); c.Type() == "struct_item" {
			fieldList = c.ChildByFieldName("body")
		}
	}
	require.NotNil(t, fieldList)

	fieldNode := fieldList.NamedChild(0)
	require.NotNil(t, fieldNode)
	typeNode := fieldNode.ChildByFieldName("type")
	require.NotNil(t, typeNode)
	return typeNode, src
}

func TestResolvePrimitive(t *testing.T) {
	node, src := fieldType(t, "u32")
	info, err := Resolve(node, src, nil, nil, attrs.Info{}, usepath.RsPath{})
	require.NoError(t, err)
	assert.Equal(t, Number, info.Kind())
}

func TestResolveStringAndBigInt(t *testing.T) {
	node, src := fieldType(t, "String")
	info, err := Resolve(node, src, nil, nil, attrs.Info{}, usepath.RsPath{})
	require.NoError(t, err)
	assert.Equal(t, String, info.Kind())

	node, src = fieldType(t, "u64")
	info, err = Resolve(node, src, nil, nil, attrs.Info{}, usepath.RsPath{})
	require.NoError(t, err)
	assert.Equal(t, BigInt, info.Kind())
}

func TestResolveUseTableHit(t *testing.T) {
	node, src := fieldType(t, "User")
	table := usegraph.Table{{Name: "User", Components: []usepath.Component{{Kind: usepath.RootDir}, usepath.NormalComponent("model")}}}

	info, err := Resolve(node, src, table, nil, attrs.Info{}, usepath.RsPath{})
	require.NoError(t, err)
	assert.Equal(t, Normal, info.Kind())
	assert.Equal(t, "User", info.Path().Name)
}

func TestResolveOption(t *testing.T) {
	node, src := fieldType(t, "Option<u32>")
	info, err := Resolve(node, src, nil, nil, attrs.Info{}, usepath.RsPath{})
	require.NoError(t, err)
	require.Equal(t, OptionKind, info.Kind())
	assert.Equal(t, Number, info.Elem().Kind())
}

func TestResolveMapArity(t *testing.T) {
	node, src := fieldType(t, "HashMap<String, u32>")
	info, err := Resolve(node, src, nil, nil, attrs.Info{}, usepath.RsPath{})
	require.NoError(t, err)
	require.Equal(t, MapKind, info.Kind())
	k, v := info.KeyValue()
	assert.Equal(t, String, k.Kind())
	assert.Equal(t, Number, v.Kind())
}

func TestResolveIncorrectGenericNumber(t *testing.T) {
	node, src := fieldType(t, "Vec<String, u32>")
	_, err := Resolve(node, src, nil, nil, attrs.Info{}, usepath.RsPath{})
	require.Error(t, err)

	var target *ErrIncorrectGenericNumber
	assert.ErrorAs(t, err, &target)
	assert.Equal(t, "Vec", target.Name)
	assert.Equal(t, 1, target.Expected)
	assert.Equal(t, 2, target.Actual)
}

func TestResolveRetypeFallback(t *testing.T) {
	node, src := fieldType(t, "RawJsonValue")
	attr := attrs.Info{Retype: attrs.SetSlot("unknown")}

	info, err := Resolve(node, src, nil, nil, attr, usepath.RsPath{})
	require.NoError(t, err)
	assert.Equal(t, Custom, info.Kind())
	assert.Equal(t, "unknown", info.CustomName())
}

func TestResolveLocalName(t *testing.T) {
	node, src := fieldType(t, "Order")
	locals := map[string]struct{}{"Order": {}}
	self := usepath.RsPath{Components: []usepath.Component{{Kind: usepath.RootDir}, usepath.NormalComponent("a")}}

	info, err := Resolve(node, src, nil, locals, attrs.Info{}, self)
	require.NoError(t, err)
	require.Equal(t, Normal, info.Kind())
	assert.True(t, info.Path().LocalUse)
	assert.Equal(t, "Order", info.Path().Name)
}

func TestResolveUnknownType(t *testing.T) {
	node, src := fieldType(t, "SomeUnresolvable")
	_, err := Resolve(node, src, nil, nil, attrs.Info{}, usepath.RsPath{})
	require.Error(t, err)

	var target *ErrUnknownType
	assert.ErrorAs(t, err, &target)
}

func TestResolveNonPathTypeRejected(t *testing.T) {
	node, src := fieldType(t, "(u32, String)")
	_, err := Resolve(node, src, nil, nil, attrs.Info{}, usepath.RsPath{})
	require.Error(t, err)

	var target *ErrUnknownType
	assert.ErrorAs(t, err, &target)
}
