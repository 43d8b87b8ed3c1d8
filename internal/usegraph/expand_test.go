package usegraph

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakmoss/tsexport/internal/usepath"
)

func parseUse(t *testing.T, src string) (*sitter.Node, []byte) {
	t.Helper()
	source := []byte(src)
	parser := sitter.NewParser()
	parser.SetLanguage(rust.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	require.NoError(t, err)

	root := tree.RootNode()
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		if child.Type() == "use_declaration" {
			return child, source
		}
	}
	t.Fatalf("no use_declaration found in %q", src)
	return nil, nil
}

func TestExpandSimpleImport(t *testing.T) {
	node, src := parseUse(t, "use crate::model::User;\n")

	paths := Expand(node, src, nil)

	require.Len(t, paths, 1)
	assert.Equal(t, "User", paths[0].Name)
	assert.True(t, paths[0].IsAbsolute())
}

func TestExpandGroup(t *testing.T) {
	node, src := parseUse(t, "use crate::model::{User, Order};\n")

	paths := Expand(node, src, nil)

	var names []string
	for _, p := range paths {
		names = append(names, p.Name)
	}
	assert.ElementsMatch(t, []string{"User", "Order"}, names)
}

func TestExpandRename(t *testing.T) {
	node, src := parseUse(t, "use crate::model::User as Customer;\n")

	paths := Expand(node, src, nil)

	require.Len(t, paths, 1)
	assert.Equal(t, "Customer", paths[0].Name)
	assert.True(t, paths[0].HasRename)
	assert.Equal(t, "User", paths[0].ActualName)
}

func TestExpandSuperAndCrateLifted(t *testing.T) {
	node, src := parseUse(t, "use super::sibling::Thing;\n")

	paths := Expand(node, src, nil)

	require.Len(t, paths, 1)
	assert.Equal(t, "Thing", paths[0].Name)
	assert.False(t, paths[0].IsAbsolute())
	assert.True(t, paths[0].StartsWithParent())
	require.NotEmpty(t, paths[0].Components)
	assert.Equal(t, usepath.ParentDir, paths[0].Components[0].Kind)
}

func TestExpandGlobWarnsAndDrops(t *testing.T) {
	node, src := parseUse(t, "use crate::model::*;\n")

	var warned bool
	paths := Expand(node, src, func(format string, args ...interface{}) {
		warned = true
	})

	assert.Empty(t, paths)
	assert.True(t, warned)
}

func TestExpandLeadingScopeDropsWhole(t *testing.T) {
	node, src := parseUse(t, "use ::external_crate::Thing;\n")

	paths := Expand(node, src, nil)

	assert.Empty(t, paths)
}
