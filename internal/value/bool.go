package value

import "github.com/leonardinius/golury/internal/luryerrors"

// Bool is the boolean variant. It is sealed: the only implementations are
// the two instances returned by True and False, so identity between
// booleans implies value equality.
type Bool interface {
	Value
	// Bool returns the wrapped primitive.
	Bool() bool
	sealedBool()
}

type boolean struct {
	value bool
}

var (
	trueValue  = &boolean{value: true}
	falseValue = &boolean{value: false}
)

// True returns the canonical true instance.
func True() Bool { return trueValue }

// False returns the canonical false instance.
func False() Bool { return falseValue }

// FromBool maps b onto its canonical instance.
func FromBool(b bool) Bool {
	if b {
		return trueValue
	}
	return falseValue
}

// Bool implements Bool.
func (b *boolean) Bool() bool {
	return b.value
}

func (*boolean) sealedBool() {}

// Type implements Value.
func (b *boolean) Type() Type {
	return TypeBool
}

// Not implements Value.
func (b *boolean) Not() (Value, error) {
	return FromBool(!b.value), nil
}

// And implements Value.
func (b *boolean) And(other Value) (Value, error) {
	o, err := b.operand(OpAnd, other)
	if err != nil {
		return nil, err
	}
	return FromBool(b.value && o.value), nil
}

// Or implements Value.
func (b *boolean) Or(other Value) (Value, error) {
	o, err := b.operand(OpOr, other)
	if err != nil {
		return nil, err
	}
	return FromBool(b.value || o.value), nil
}

// Equal implements Value.
func (b *boolean) Equal(other Value) (Value, error) {
	o, err := b.operand(OpEqual, other)
	if err != nil {
		return nil, err
	}
	return FromBool(b.value == o.value), nil
}

// String implements fmt.Stringer.
func (b *boolean) String() string {
	if b.value {
		return "true"
	}
	return "false"
}

func (b *boolean) operand(op string, other Value) (*boolean, error) {
	if isNil(other) {
		return nil, luryerrors.NewNilReferenceError(op, TypeBool.String())
	}
	o, ok := other.(*boolean)
	if !ok {
		return nil, luryerrors.NewUnsupportedBinaryError(op, TypeBool.String(), typeName(other))
	}
	return o, nil
}

var _ Bool = (*boolean)(nil)
