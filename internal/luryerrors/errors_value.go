package luryerrors

import (
	"errors"
	"fmt"
)

// Kind classifies failures raised by value operations.
type Kind uint8

const (
	KindNilReference Kind = iota + 1
	KindUnsupportedBinaryOperation
	KindUnsupportedUnaryOperation
)

var (
	ErrNilReference               = errors.New("nil reference.")
	ErrUnsupportedBinaryOperation = errors.New("unsupported binary operation.")
	ErrUnsupportedUnaryOperation  = errors.New("unsupported unary operation.")
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindNilReference:
		return "NilReference"
	case KindUnsupportedBinaryOperation:
		return "UnsupportedBinaryOperation"
	case KindUnsupportedUnaryOperation:
		return "UnsupportedUnaryOperation"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

func (k Kind) sentinel() error {
	switch k {
	case KindNilReference:
		return ErrNilReference
	case KindUnsupportedBinaryOperation:
		return ErrUnsupportedBinaryOperation
	case KindUnsupportedUnaryOperation:
		return ErrUnsupportedUnaryOperation
	}
	return nil
}

// ValueError is returned by value operations when an operand is missing
// or has a type the operation does not accept.
//
// Left is the type name of the receiver, Right the type name of the other
// operand ("nil" when absent, empty for unary operations).
type ValueError struct {
	Kind  Kind
	Op    string
	Left  string
	Right string
}

func NewNilReferenceError(op, left string) error {
	return &ValueError{Kind: KindNilReference, Op: op, Left: left, Right: "nil"}
}

func NewUnsupportedBinaryError(op, left, right string) error {
	return &ValueError{Kind: KindUnsupportedBinaryOperation, Op: op, Left: left, Right: right}
}

func NewUnsupportedUnaryError(op, operand string) error {
	return &ValueError{Kind: KindUnsupportedUnaryOperation, Op: op, Left: operand}
}

// Error implements error.
func (e *ValueError) Error() string {
	switch e.Kind {
	case KindNilReference:
		return fmt.Sprintf("%v Operator '%s' on %s requires a second operand.", e.Unwrap(), e.Op, e.Left)
	case KindUnsupportedUnaryOperation:
		return fmt.Sprintf("%v Operator '%s' is not defined for %s.", e.Unwrap(), e.Op, e.Left)
	default:
		return fmt.Sprintf("%v Operator '%s' is not defined for %s and %s.", e.Unwrap(), e.Op, e.Left, e.Right)
	}
}

func (e *ValueError) Unwrap() error {
	return e.Kind.sentinel()
}

// KindOf reports the value error kind carried by err, if any.
func KindOf(err error) (Kind, bool) {
	var verr *ValueError
	if errors.As(err, &verr) {
		return verr.Kind, true
	}
	return 0, false
}

var _ error = (*ValueError)(nil)
var _ wrapper = (*ValueError)(nil)
