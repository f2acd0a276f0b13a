package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardinius/golury/internal/luryerrors"
	"github.com/leonardinius/golury/internal/value"
)

func TestStringEqual(t *testing.T) {
	t.Parallel()

	result, err := value.NewString("a").Equal(value.NewString("a"))
	require.NoError(t, err)
	assert.Same(t, value.True(), result)

	result, err = value.NewString("a").Equal(value.NewString("b"))
	require.NoError(t, err)
	assert.Same(t, value.False(), result)
}

func TestStringUnsupported(t *testing.T) {
	t.Parallel()

	s := value.NewString("a")

	_, err := s.Not()
	require.ErrorIs(t, err, luryerrors.ErrUnsupportedUnaryOperation)
	assert.EqualError(t, err, "unsupported unary operation. Operator '!' is not defined for string.")

	_, err = s.And(value.NewString("b"))
	require.ErrorIs(t, err, luryerrors.ErrUnsupportedBinaryOperation)

	_, err = s.Or(value.True())
	require.ErrorIs(t, err, luryerrors.ErrUnsupportedBinaryOperation)
	assert.EqualError(t, err, "unsupported binary operation. Operator 'or' is not defined for string and boolean.")

	_, err = s.Equal(value.False())
	require.ErrorIs(t, err, luryerrors.ErrUnsupportedBinaryOperation)

	_, err = s.And(nil)
	require.ErrorIs(t, err, luryerrors.ErrNilReference)

	_, err = s.Equal(nil)
	require.ErrorIs(t, err, luryerrors.ErrNilReference)
	assert.EqualError(t, err, "nil reference. Operator '==' on string requires a second operand.")
}

func TestStringString(t *testing.T) {
	t.Parallel()

	s := value.NewString("say \"hi\"")
	assert.Equal(t, `"say \"hi\""`, s.String())
	assert.Equal(t, `say "hi"`, s.Unquoted())
	assert.Equal(t, value.TypeString, s.Type())
}
