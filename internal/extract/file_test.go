package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakmoss/tsexport/internal/typeinfo"
	"github.com/oakmoss/tsexport/internal/usepath"
)

func TestExtractFileNormalStruct(t *testing.T) {
	src := []byte(`
#[te(entry)]
pub struct User {
  pub id: u32,
  #[serde(rename = "display_name")]
  pub name: String,
}
`)

	file, err := ExtractFile(src, usepath.FromSlashPath("a.rs"), nil)
	require.NoError(t, err)
	require.Len(t, file.Items, 1)

	result := file.Items[0]
	require.Nil(t, result.Err)
	s, ok := result.Item.(*StructItem)
	require.True(t, ok)
	assert.Equal(t, "User", s.Name)
	assert.True(t, s.Attr.IsEntry())
	require.Len(t, s.Fields, 2)
	assert.True(t, s.IsNormal())

	assert.Equal(t, "id", *s.Fields[0].Name)
	assert.Equal(t, typeinfo.Number, s.Fields[0].Type.Kind())

	assert.Equal(t, "name", *s.Fields[1].Name)
	rename, ok := s.Fields[1].Attr.Rename.Value()
	assert.True(t, ok)
	assert.Equal(t, "display_name", rename)
}

func TestExtractFileTupleStruct(t *testing.T) {
	src := []byte(`pub struct Pair(u32, String);`)

	file, err := ExtractFile(src, usepath.FromSlashPath("a.rs"), nil)
	require.NoError(t, err)
	require.Len(t, file.Items, 1)

	s := file.Items[0].Item.(*StructItem)
	assert.True(t, s.IsTuple())
	require.Len(t, s.Fields, 2)
	assert.Nil(t, s.Fields[0].Name)
}

func TestExtractFileEnumWithTag(t *testing.T) {
	src := []byte(`
#[serde(tag = "type")]
pub enum Shape {
  Circle { radius: f32 },
  Point,
}
`)

	file, err := ExtractFile(src, usepath.FromSlashPath("a.rs"), nil)
	require.NoError(t, err)
	require.Len(t, file.Items, 1)

	e := file.Items[0].Item.(*EnumItem)
	assert.Equal(t, "Shape", e.Name)
	tag, ok := e.Attr.Tag.Value()
	require.True(t, ok)
	assert.Equal(t, "type", tag)
	require.Len(t, e.Variants, 2)
	assert.True(t, e.Variants[0].IsNormal())
	assert.True(t, e.Variants[1].IsUnit())
}

func TestExtractFileUnknownTypeWrapsError(t *testing.T) {
	src := []byte(`
pub struct Bad {
  pub field: SomethingUnresolvable,
}
`)

	file, err := ExtractFile(src, usepath.FromSlashPath("a.rs"), nil)
	require.NoError(t, err)
	require.Len(t, file.Items, 1)

	result := file.Items[0]
	require.NotNil(t, result.Err)
	assert.Equal(t, "Bad", result.Name())

	var target *typeinfo.ErrUnknownType
	assert.ErrorAs(t, result.Err, &target)
}

func TestExtractFileDiscardsEmptyFiles(t *testing.T) {
	file, err := ExtractFile([]byte("// just a comment\n"), usepath.FromSlashPath("a.rs"), nil)
	require.NoError(t, err)
	assert.Nil(t, file)
}

func TestExtractFileLocalUseReference(t *testing.T) {
	src := []byte(`
pub struct Inner {
  pub x: u32,
}

pub struct Outer {
  pub inner: Inner,
}
`)

	file, err := ExtractFile(src, usepath.FromSlashPath("a.rs"), nil)
	require.NoError(t, err)
	require.Len(t, file.Items, 2)

	outer := file.Items[1].Item.(*StructItem)
	require.Len(t, outer.Fields, 1)
	assert.Equal(t, typeinfo.Normal, outer.Fields[0].Type.Kind())
	assert.True(t, outer.Fields[0].Type.Path().LocalUse)
	assert.Equal(t, "Inner", outer.Fields[0].Type.Path().Name)
}
