package value

import (
	"strconv"

	"github.com/leonardinius/golury/internal/luryerrors"
)

// String is the string variant. Only equality is defined for strings.
type String struct {
	value string
}

func NewString(s string) String {
	return String{value: s}
}

// Unquoted returns the wrapped primitive.
func (s String) Unquoted() string {
	return s.value
}

// Type implements Value.
func (s String) Type() Type {
	return TypeString
}

// Not implements Value.
func (s String) Not() (Value, error) {
	return nil, luryerrors.NewUnsupportedUnaryError(OpNot, TypeString.String())
}

// And implements Value.
func (s String) And(other Value) (Value, error) {
	return nil, s.unsupported(OpAnd, other)
}

// Or implements Value.
func (s String) Or(other Value) (Value, error) {
	return nil, s.unsupported(OpOr, other)
}

// Equal implements Value.
func (s String) Equal(other Value) (Value, error) {
	if isNil(other) {
		return nil, luryerrors.NewNilReferenceError(OpEqual, TypeString.String())
	}
	o, ok := other.(String)
	if !ok {
		return nil, luryerrors.NewUnsupportedBinaryError(OpEqual, TypeString.String(), typeName(other))
	}
	return FromBool(s.value == o.value), nil
}

// String implements fmt.Stringer.
func (s String) String() string {
	return strconv.Quote(s.value)
}

func (s String) unsupported(op string, other Value) error {
	if isNil(other) {
		return luryerrors.NewNilReferenceError(op, TypeString.String())
	}
	return luryerrors.NewUnsupportedBinaryError(op, TypeString.String(), typeName(other))
}

var _ Value = String{}
