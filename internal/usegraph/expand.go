// Package usegraph expands `use` declarations into flat import paths and
// resolves syntactic type-path identifiers against them.
package usegraph

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/oakmoss/tsexport/internal/usepath"
)

// Warnf receives a formatted warning, e.g. for a dropped glob import.
type Warnf func(format string, args ...interface{})

// Expand walks one `use_declaration` node's tree and returns every
// import it contributes, grounded on expand_use_tree_ in use_path.rs:
// Path nodes extend the running prefix, Group distributes the prefix
// over each member, Name/Rename each terminate with one entry, Glob
// warns and contributes nothing. A leading `::` (external root) drops
// the whole statement.
func Expand(node *sitter.Node, src []byte, warn Warnf) []usepath.RsPath {
	if node == nil {
		return nil
	}
	if child := node.ChildByFieldName("argument"); child != nil {
		node = child
	} else if node.Type() == "use_declaration" {
		// The argument is the lone named child after the "use" keyword.
		for i := 0; i < int(node.NamedChildCount()); i++ {
			c := node.NamedChild(i)
			if c.Type() != "comment" {
				node = c
				break
			}
		}
	}

	if hasLeadingScope(node) {
		return nil
	}

	return expandTree(usepath.RsPath{}, node, src, warn)
}

// hasLeadingScope reports whether the use tree is rooted at a bare
// `::`, marking it an externally-rooted import to be dropped whole. It
// follows the leftmost path down to the first segment, which has no
// path of its own when the statement begins with `::`.
func hasLeadingScope(node *sitter.Node) bool {
	for node != nil {
		switch node.Type() {
		case "use_as_clause":
			node = node.ChildByFieldName("path")
		case "scoped_use_list", "scoped_identifier":
			path := node.ChildByFieldName("path")
			if path == nil {
				return true
			}
			node = path
		default:
			return false
		}
	}
	return false
}

func expandTree(prefix usepath.RsPath, node *sitter.Node, src []byte, warn Warnf) []usepath.RsPath {
	if node == nil {
		return nil
	}

	switch node.Type() {
	case "scoped_use_list":
		pathNode := node.ChildByFieldName("path")
		listNode := node.ChildByFieldName("list")
		if pathNode != nil {
			prefix = extendPath(prefix, pathNode, src)
		}
		return expandTree(prefix, listNode, src, warn)

	case "use_list":
		var out []usepath.RsPath
		for i := 0; i < int(node.NamedChildCount()); i++ {
			out = append(out, expandTree(prefix, node.NamedChild(i), src, warn)...)
		}
		return out

	case "use_as_clause":
		pathNode := node.ChildByFieldName("path")
		aliasNode := node.ChildByFieldName("alias")
		if pathNode == nil || aliasNode == nil {
			return nil
		}
		actual, extended := terminalIdent(prefix, pathNode, src)
		p := extended.WithActualName(actual).WithName(aliasNode.Content(src))
		return []usepath.RsPath{p}

	case "use_wildcard":
		if warn != nil {
			warn("detected a use statement with *, this is unsupported, any type imported by this will be ignored")
		}
		return nil

	case "scoped_identifier", "identifier", "self", "super", "crate":
		name, extended := terminalIdent(prefix, node, src)
		return []usepath.RsPath{extended.WithName(name)}

	default:
		// A bare path with no special wrapper: e.g. the sole child of a
		// use_declaration when the statement imports a single item.
		name, extended := terminalIdent(prefix, node, src)
		return []usepath.RsPath{extended.WithName(name)}
	}
}

// extendPath lifts every segment of a (possibly nested) scoped
// identifier into the running prefix, without treating the last
// segment as terminal — used for the `path` half of a scoped_use_list.
func extendPath(prefix usepath.RsPath, node *sitter.Node, src []byte) usepath.RsPath {
	if node == nil {
		return prefix
	}
	if node.Type() == "scoped_identifier" {
		path := node.ChildByFieldName("path")
		name := node.ChildByFieldName("name")
		if path != nil {
			prefix = extendPath(prefix, path, src)
		}
		if name != nil {
			prefix = prefix.Extended(name.Content(src))
		}
		return prefix
	}
	return prefix.Extended(node.Content(src))
}

// terminalIdent resolves the final segment of a path node into (name,
// prefix-with-all-but-last-segment-extended). For a plain identifier
// that's just (ident, prefix) unchanged.
func terminalIdent(prefix usepath.RsPath, node *sitter.Node, src []byte) (string, usepath.RsPath) {
	if node == nil {
		return "", prefix
	}
	if node.Type() == "scoped_identifier" {
		path := node.ChildByFieldName("path")
		name := node.ChildByFieldName("name")
		if path != nil {
			prefix = extendPath(prefix, path, src)
		}
		if name != nil {
			return name.Content(src), prefix
		}
		return "", prefix
	}
	return node.Content(src), prefix
}
