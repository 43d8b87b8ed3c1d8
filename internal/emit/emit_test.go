package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakmoss/tsexport/internal/extract"
	"github.com/oakmoss/tsexport/internal/tsast"
	"github.com/oakmoss/tsexport/internal/usepath"
)

func TestStructNormalRenamesFields(t *testing.T) {
	src := []byte(`
pub struct Foo {
  count: u32,
  name: String,
}
`)
	file, err := extract.ExtractFile(src, usepath.FromSlashPath("a.rs"), nil)
	require.NoError(t, err)
	s := file.Items[0].Item.(*extract.StructItem)

	result := Struct(s)

	assert.Equal(t, "Foo", result.Decl.Name)
	props := result.Decl.Type.Properties()
	require.Len(t, props, 2)
	assert.Equal(t, "count", props[0].Name)
	assert.Equal(t, "name", props[1].Name)
	assert.Empty(t, result.Deps)
}

func TestStructTupleSingleFieldCollapses(t *testing.T) {
	src := []byte(`pub struct Id(u64);`)
	file, err := extract.ExtractFile(src, usepath.FromSlashPath("a.rs"), nil)
	require.NoError(t, err)
	s := file.Items[0].Item.(*extract.StructItem)

	result := Struct(s)

	assert.Equal(t, tsast.KeywordKind, result.Decl.Type.Kind())
	assert.Equal(t, tsast.KeywordBigInt, result.Decl.Type.KeywordValue())
}

func TestStructUnitEmitsNull(t *testing.T) {
	src := []byte(`pub struct Marker;`)
	file, err := extract.ExtractFile(src, usepath.FromSlashPath("a.rs"), nil)
	require.NoError(t, err)
	s := file.Items[0].Item.(*extract.StructItem)

	result := Struct(s)

	assert.Equal(t, tsast.KeywordKind, result.Decl.Type.Kind())
	assert.Equal(t, tsast.KeywordNull, result.Decl.Type.KeywordValue())
}

func TestStructSkipAllFieldsEmitsNull(t *testing.T) {
	src := []byte(`
pub struct Hidden {
  #[serde(skip)]
  secret: String,
}
`)
	file, err := extract.ExtractFile(src, usepath.FromSlashPath("a.rs"), nil)
	require.NoError(t, err)
	s := file.Items[0].Item.(*extract.StructItem)

	result := Struct(s)

	assert.Equal(t, tsast.KeywordKind, result.Decl.Type.Kind())
	assert.Equal(t, tsast.KeywordNull, result.Decl.Type.KeywordValue())
}

func TestEnumExternallyTagged(t *testing.T) {
	src := []byte(`
pub enum Shape {
  Circle { radius: f32 },
  Point,
}
`)
	file, err := extract.ExtractFile(src, usepath.FromSlashPath("a.rs"), nil)
	require.NoError(t, err)
	e := file.Items[0].Item.(*extract.EnumItem)

	result := Enum(e, nil)

	require.Len(t, result.Helpers, 1)
	assert.Equal(t, "Shape_circle", result.Helpers[0].Name)

	union := result.Decl.Type.Members()
	require.Len(t, union, 2)
	assert.Equal(t, tsast.TypeLitKind, union[0].Kind())
	assert.Equal(t, tsast.StringLiteralKind, union[1].Kind())
	assert.Equal(t, "point", union[1].Literal())
}

func TestEnumAdjacentlyTagged(t *testing.T) {
	src := []byte(`
#[serde(tag = "kind", content = "body")]
pub enum Msg {
  Ping,
  Data { payload: String },
}
`)
	file, err := extract.ExtractFile(src, usepath.FromSlashPath("a.rs"), nil)
	require.NoError(t, err)
	e := file.Items[0].Item.(*extract.EnumItem)

	result := Enum(e, nil)

	require.Len(t, result.Helpers, 1)
	assert.Equal(t, "Msg_data", result.Helpers[0].Name)

	union := result.Decl.Type.Members()
	require.Len(t, union, 2)

	pingProps := union[0].Properties()
	require.Len(t, pingProps, 1)
	assert.Equal(t, "kind", pingProps[0].Name)
	assert.Equal(t, "ping", pingProps[0].Type.Literal())

	dataProps := union[1].Properties()
	require.Len(t, dataProps, 2)
	assert.Equal(t, "kind", dataProps[0].Name)
	assert.Equal(t, "body", dataProps[1].Name)
	assert.Equal(t, "Msg_data", dataProps[1].Type.RefName())
}

func TestEnumInternallyTagged(t *testing.T) {
	src := []byte(`
#[serde(tag = "type")]
pub enum Event {
  Started { id: u32 },
}
`)
	file, err := extract.ExtractFile(src, usepath.FromSlashPath("a.rs"), nil)
	require.NoError(t, err)
	e := file.Items[0].Item.(*extract.EnumItem)

	result := Enum(e, nil)

	require.Len(t, result.Helpers, 1)
	helperProps := result.Helpers[0].Type.Properties()
	require.Len(t, helperProps, 2)
	assert.Equal(t, "type", helperProps[0].Name)
	assert.Equal(t, "started", helperProps[0].Type.Literal())
	assert.Equal(t, "id", helperProps[1].Name)
}

func TestEnumVariantSkippedFieldTreatedAsUnit(t *testing.T) {
	src := []byte(`
pub enum Wrapper {
  Only(#[serde(skip)] String),
}
`)
	file, err := extract.ExtractFile(src, usepath.FromSlashPath("a.rs"), nil)
	require.NoError(t, err)
	e := file.Items[0].Item.(*extract.EnumItem)

	assert.True(t, e.Variants[0].IsUnit())

	result := Enum(e, nil)
	union := result.Decl.Type.Members()
	require.Len(t, union, 1)
	assert.Equal(t, tsast.StringLiteralKind, union[0].Kind())
}
