// Package tsast is the target-language AST the export driver builds
// and hands to a renderer: a minimal subset of TypeScript declaration
// syntax sufficient to express every shape internal/emit produces.
package tsast

// Module is one output file's worth of declarations.
type Module struct {
	Imports []ImportDecl
	Decls   []TypeAliasDecl
}

// ImportDecl is a type-only import of a module specifier, with no
// `declare` keyword (declaration files never re-declare an import).
type ImportDecl struct {
	Names     []string
	ModuleRef string
}

// TypeAliasDecl is `export declare type <Name> = <Type>;`.
type TypeAliasDecl struct {
	Name string
	Type TypeExpr
}

// ExprKind tags which TypeExpr variant is populated.
type ExprKind int

const (
	TypeLitKind ExprKind = iota
	TupleKind
	UnionKind
	RefKind
	KeywordKind
	StringLiteralKind
)

// Keyword is one of the fixed TypeScript primitive keyword types.
type Keyword int

const (
	KeywordNull Keyword = iota
	KeywordBoolean
	KeywordNumber
	KeywordBigInt
	KeywordString
)

// Property is one member of a TypeLit: `name: Type` or `name?: Type`
// when Optional is set (used for the Option<T> | null widening, which
// internal/emit expresses as a union rather than optionality — Optional
// is kept for completeness but unused by the current emit rules).
type Property struct {
	Name     string
	Type     TypeExpr
	Optional bool
}

// TypeExpr is a discriminated union over the handful of type-expression
// shapes the emitter needs: an object literal, a tuple, a union, a
// named reference (with optional type arguments), a keyword primitive,
// or a string literal type.
type TypeExpr struct {
	kind ExprKind

	properties []Property // TypeLitKind
	elements   []TypeExpr // TupleKind
	members    []TypeExpr // UnionKind
	refName    string     // RefKind
	refArgs    []TypeExpr // RefKind
	keyword    Keyword    // KeywordKind
	literal    string     // StringLiteralKind
}

func TypeLit(properties ...Property) TypeExpr {
	return TypeExpr{kind: TypeLitKind, properties: properties}
}

func Tuple(elements ...TypeExpr) TypeExpr {
	return TypeExpr{kind: TupleKind, elements: elements}
}

func Union(members ...TypeExpr) TypeExpr {
	return TypeExpr{kind: UnionKind, members: members}
}

func Ref(name string, args ...TypeExpr) TypeExpr {
	return TypeExpr{kind: RefKind, refName: name, refArgs: args}
}

func Kw(k Keyword) TypeExpr { return TypeExpr{kind: KeywordKind, keyword: k} }

func StringLiteral(value string) TypeExpr {
	return TypeExpr{kind: StringLiteralKind, literal: value}
}

func (t TypeExpr) Kind() ExprKind { return t.kind }

func (t TypeExpr) Properties() []Property {
	mustBe(t, TypeLitKind)
	return t.properties
}

func (t TypeExpr) Elements() []TypeExpr {
	mustBe(t, TupleKind)
	return t.elements
}

func (t TypeExpr) Members() []TypeExpr {
	mustBe(t, UnionKind)
	return t.members
}

func (t TypeExpr) RefName() string {
	mustBe(t, RefKind)
	return t.refName
}

func (t TypeExpr) RefArgs() []TypeExpr {
	mustBe(t, RefKind)
	return t.refArgs
}

func (t TypeExpr) KeywordValue() Keyword {
	mustBe(t, KeywordKind)
	return t.keyword
}

func (t TypeExpr) Literal() string {
	mustBe(t, StringLiteralKind)
	return t.literal
}

func mustBe(t TypeExpr, k ExprKind) {
	if t.kind != k {
		panic("tsast: TypeExpr accessor called against wrong Kind")
	}
}
