// Package value implements the runtime values of the Lury language.
//
// Every value exposes the same fixed set of operations. A variant either
// implements an operation or reports it as unsupported through a
// *luryerrors.ValueError. Values are immutable once constructed.
package value

import "fmt"

// Type identifies the concrete variant of a Value.
type Type uint8

const (
	TypeBool Type = iota + 1
	TypeString
)

func (t Type) String() string {
	switch t {
	case TypeBool:
		return "boolean"
	case TypeString:
		return "string"
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// Operator names used in errors and diagnostics.
const (
	OpNot   = "!"
	OpAnd   = "and"
	OpOr    = "or"
	OpEqual = "=="
)

// Value is the capability set shared by all runtime values.
//
// Binary operations accept any Value as the other operand. A nil operand
// fails with luryerrors.KindNilReference, an operand of a variant the
// operation does not accept fails with luryerrors.KindUnsupportedBinaryOperation.
type Value interface {
	Type() Type
	Not() (Value, error)
	And(other Value) (Value, error)
	Or(other Value) (Value, error)
	Equal(other Value) (Value, error)
	String() string
}

// typeName returns the variant name of v for error messages.
func typeName(v Value) string {
	if isNil(v) {
		return "nil"
	}
	return v.Type().String()
}

// isNil reports whether v is absent. A typed nil pointer stored in the
// interface counts as absent too.
func isNil(v Value) bool {
	switch v := v.(type) {
	case nil:
		return true
	case *boolean:
		return v == nil
	}
	return false
}
