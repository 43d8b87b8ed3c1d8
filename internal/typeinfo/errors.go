package typeinfo

import "fmt"

// ErrUnknownType is returned when a field's syntactic type expression
// cannot be resolved by any step of the decision order: not a use-table
// hit, not a primitive, not a recognized generic container, no retype
// attribute, and not a local type name.
type ErrUnknownType struct {
	TypeText string
}

func (e *ErrUnknownType) Error() string {
	return fmt.Sprintf("unknown type: %s", e.TypeText)
}

// ErrIncorrectGenericNumber is returned when a recognized generic
// container name (Option/Vec/HashMap/Box) is used with the wrong
// number of type arguments.
type ErrIncorrectGenericNumber struct {
	Name     string
	Expected int
	Actual   int
}

func (e *ErrIncorrectGenericNumber) Error() string {
	return fmt.Sprintf("%s takes %d type argument(s), got %d", e.Name, e.Expected, e.Actual)
}
