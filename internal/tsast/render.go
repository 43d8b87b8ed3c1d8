package tsast

import (
	"fmt"
	"strings"
)

// Render prints a Module as TypeScript declaration-file text: imports
// first, then one `declare type` statement per decl, in source order.
// This is the concrete stand-in for the render(module_items) -> text
// step; driver.Exporter calls it directly.
func Render(m Module) []byte {
	b := &strings.Builder{}

	for _, imp := range m.Imports {
		b.WriteString(fmt.Sprintf("import type { %s } from '%s';\n", strings.Join(imp.Names, ", "), imp.ModuleRef))
	}
	if len(m.Imports) > 0 {
		b.WriteString("\n")
	}

	for _, decl := range m.Decls {
		b.WriteString(fmt.Sprintf("export declare type %s = ", decl.Name))
		renderType(b, decl.Type)
		b.WriteString(";\n\n")
	}

	return []byte(b.String())
}

func renderType(b *strings.Builder, t TypeExpr) {
	switch t.Kind() {
	case TypeLitKind:
		renderTypeLit(b, t.Properties())
	case TupleKind:
		b.WriteString("[")
		for i, el := range t.Elements() {
			if i > 0 {
				b.WriteString(", ")
			}
			renderType(b, el)
		}
		b.WriteString("]")
	case UnionKind:
		members := t.Members()
		for i, m := range members {
			if i > 0 {
				b.WriteString(" | ")
			}
			renderType(b, m)
		}
	case RefKind:
		b.WriteString(t.RefName())
		if args := t.RefArgs(); len(args) > 0 {
			b.WriteString("<")
			for i, a := range args {
				if i > 0 {
					b.WriteString(", ")
				}
				renderType(b, a)
			}
			b.WriteString(">")
		}
	case KeywordKind:
		b.WriteString(renderKeyword(t.KeywordValue()))
	case StringLiteralKind:
		b.WriteString(fmt.Sprintf("%q", t.Literal()))
	}
}

func renderTypeLit(b *strings.Builder, props []Property) {
	if len(props) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteString("{\n")
	for _, p := range props {
		b.WriteString("  ")
		b.WriteString(p.Name)
		if p.Optional {
			b.WriteString("?")
		}
		b.WriteString(": ")
		renderType(b, p.Type)
		b.WriteString(";\n")
	}
	b.WriteString("}")
}

func renderKeyword(k Keyword) string {
	switch k {
	case KeywordNull:
		return "null"
	case KeywordBoolean:
		return "boolean"
	case KeywordNumber:
		return "number"
	case KeywordBigInt:
		return "bigint"
	case KeywordString:
		return "string"
	default:
		return "unknown"
	}
}
