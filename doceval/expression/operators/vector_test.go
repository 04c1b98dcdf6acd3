package operators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krew-solutions/doceval-go/doceval/result"
	"github.com/krew-solutions/doceval-go/doceval/value"
)

func TestVectorLength(t *testing.T) {
	assertInteger(t, exec(t, OperatorVectorLength, of(value.Vector(1, 2, 3))), 3)
	assertInteger(t, exec(t, OperatorVectorLength, of(value.Vector())), 0)
}

func TestDotProduct(t *testing.T) {
	r := exec(t, OperatorDotProduct, of(value.Vector(1, 2, 3)), of(value.Vector(4, 5, 6)))
	assertDouble(t, r, 32)
}

func TestCosineDistance(t *testing.T) {
	r := exec(t, OperatorCosineDistance, of(value.Vector(1, 0)), of(value.Vector(0, 1)))
	assertDouble(t, r, 1)
	r = exec(t, OperatorCosineDistance, of(value.Vector(2, 0)), of(value.Vector(5, 0)))
	assertDouble(t, r, 0)
}

func TestCosineDistanceZeroVectorIsNaNValue(t *testing.T) {
	r := exec(t, OperatorCosineDistance, of(value.Vector(0, 0)), of(value.Vector(1, 0)))
	require.True(t, r.IsValue())
	assert.True(t, math.IsNaN(r.Value().Double()))
}

func TestEuclideanDistance(t *testing.T) {
	r := exec(t, OperatorEuclideanDistance, of(value.Vector(0, 0)), of(value.Vector(3, 4)))
	assertDouble(t, r, 5)
}

func TestVectorDimensionMismatch(t *testing.T) {
	r := exec(t, OperatorDotProduct, of(value.Vector(1)), of(value.Vector(1, 2)))
	assertErrorKind(t, r, result.ErrInvalidArgument)
}

func TestVectorOperatorsRejectArrays(t *testing.T) {
	arr := of(value.Array(value.Double(1), value.Double(2)))
	assertErrorKind(t, exec(t, OperatorVectorLength, arr), result.ErrTypeMismatch)
	assertErrorKind(t, exec(t, OperatorDotProduct, arr, of(value.Vector(1, 2))), result.ErrTypeMismatch)
}

func TestVectorOperatorsNullMirror(t *testing.T) {
	assertNull(t, exec(t, OperatorVectorLength, of(value.Null())))
	assertNull(t, exec(t, OperatorCosineDistance, of(value.Vector(1)), result.Unset()))
}

func TestIsNanPredicate(t *testing.T) {
	assertTrue(t, exec(t, OperatorIsNan, of(value.Double(math.NaN()))))
	assertFalse(t, exec(t, OperatorIsNan, of(value.Double(1))))
	assertFalse(t, exec(t, OperatorIsNan, of(value.Integer(1))))
	assertTrue(t, exec(t, OperatorIsNotNan, of(value.Integer(1))))
	assertNull(t, exec(t, OperatorIsNan, of(value.Null())))
	assertErrorKind(t, exec(t, OperatorIsNan, of(value.String("x"))), result.ErrTypeMismatch)
}

func TestIsNullPredicate(t *testing.T) {
	assertTrue(t, exec(t, OperatorIsNull, of(value.Null())))
	assertFalse(t, exec(t, OperatorIsNull, of(value.Integer(1))))
	assertFalse(t, exec(t, OperatorIsNotNull, of(value.Null())))
	assertTrue(t, exec(t, OperatorIsNotNull, of(value.Integer(1))))
}

func TestIsNullOnUnsetStaysUnset(t *testing.T) {
	// An absent field answers neither way.
	assert.True(t, exec(t, OperatorIsNull, result.Unset()).IsUnset())
	assert.True(t, exec(t, OperatorIsNotNull, result.Unset()).IsUnset())
}

func TestExistsPredicate(t *testing.T) {
	assertTrue(t, exec(t, OperatorExists, of(value.Null())))
	assertTrue(t, exec(t, OperatorExists, of(value.Integer(0))))
	assertFalse(t, exec(t, OperatorExists, result.Unset()))
	assertErrorKind(t, exec(t, OperatorExists, boom()), result.ErrInvalidArgument)
}
