package typeinfo

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/oakmoss/tsexport/internal/attrs"
	"github.com/oakmoss/tsexport/internal/usegraph"
	"github.com/oakmoss/tsexport/internal/usepath"
)

var genericArity = map[string]int{
	"Option":  1,
	"Vec":     1,
	"HashMap": 2,
	"Box":     1,
}

// Resolve turns a syntactic type expression node into an Info, following
// the decision order: use-table hit, primitive name, recognized generic
// container (arity-checked), retype attribute, local-name set, else
// ErrUnknownType. selfPath anchors a resolved local-name reference to
// the file the field itself lives in.
func Resolve(node *sitter.Node, src []byte, table usegraph.Table, locals map[string]struct{}, attr attrs.Info, selfPath usepath.RsPath) (Info, error) {
	if node == nil {
		return Info{}, &ErrUnknownType{TypeText: "<missing type>"}
	}

	head, args, pathShaped := splitPathType(node)
	if !pathShaped {
		return Info{}, &ErrUnknownType{TypeText: node.Content(src)}
	}

	segments := pathSegments(head, src)
	if resolved, ok := table.Resolve(segments); ok {
		return NewNormal(resolved), nil
	}

	name := usegraph.LastSegment(segments)

	if info, ok := FromPrimitiveName(name); ok {
		return info, nil
	}

	if expected, recognized := genericArity[name]; recognized && args != nil {
		argNodes, allPathShaped := collectTypeArgs(args)
		if allPathShaped {
			if len(argNodes) != expected {
				return Info{}, &ErrIncorrectGenericNumber{Name: name, Expected: expected, Actual: len(argNodes)}
			}
			parsed := make([]Info, len(argNodes))
			for i, argNode := range argNodes {
				inner, err := Resolve(argNode, src, table, locals, attr, selfPath)
				if err != nil {
					return Info{}, err
				}
				parsed[i] = inner
			}
			switch name {
			case "Option":
				return NewOption(parsed[0]), nil
			case "Vec":
				return NewVec(parsed[0]), nil
			case "Box":
				return NewBox(parsed[0]), nil
			case "HashMap":
				return NewMap(parsed[0], parsed[1]), nil
			}
		}
	}

	if retype, ok := attr.Retype.Value(); ok {
		return NewCustom(retype), nil
	}

	if _, ok := locals[name]; ok {
		return NewNormal(selfPath.WithName(name).WithLocalUse(true)), nil
	}

	return Info{}, &ErrUnknownType{TypeText: node.Content(src)}
}

// splitPathType reports whether node is a path-shaped type expression
// (primitive_type, type_identifier, scoped_type_identifier, or
// generic_type over one of the latter two) and, for generic_type,
// returns its head and type_arguments node.
func splitPathType(node *sitter.Node) (head, args *sitter.Node, ok bool) {
	switch node.Type() {
	case "primitive_type", "type_identifier", "scoped_type_identifier":
		return node, nil, true
	case "generic_type":
		head = node.ChildByFieldName("type")
		if head == nil && node.NamedChildCount() > 0 {
			head = node.NamedChild(0)
		}
		args = node.ChildByFieldName("type_arguments")
		if head == nil {
			return nil, nil, false
		}
		if head.Type() != "type_identifier" && head.Type() != "scoped_type_identifier" {
			return nil, nil, false
		}
		return head, args, true
	default:
		return nil, nil, false
	}
}

// pathSegments flattens a type_identifier/scoped_type_identifier into
// its dotted-module segment list, e.g. "model::User" -> ["model","User"].
func pathSegments(node *sitter.Node, src []byte) []string {
	if node == nil {
		return nil
	}
	if node.Type() != "scoped_type_identifier" {
		return []string{node.Content(src)}
	}
	path := node.ChildByFieldName("path")
	name := node.ChildByFieldName("name")
	var out []string
	out = append(out, pathSegments(path, src)...)
	if name != nil {
		out = append(out, name.Content(src))
	}
	return out
}

// collectTypeArgs gathers a generic_type's type_arguments into type
// nodes, reporting false as soon as one argument (a lifetime, const
// generic, or otherwise non-path-shaped type) disqualifies the whole
// list, mirroring parse_path_generics's all-or-nothing behavior.
func collectTypeArgs(argsNode *sitter.Node) ([]*sitter.Node, bool) {
	if argsNode == nil {
		return nil, false
	}
	var out []*sitter.Node
	for i := 0; i < int(argsNode.NamedChildCount()); i++ {
		child := argsNode.NamedChild(i)
		switch child.Type() {
		case "primitive_type", "type_identifier", "scoped_type_identifier", "generic_type":
			out = append(out, child)
		default:
			return nil, false
		}
	}
	return out, true
}
