package operators

import (
	"math"
	"testing"

	"github.com/krew-solutions/doceval-go/doceval/result"
	"github.com/krew-solutions/doceval-go/doceval/value"
)

func TestEqCrossNumeric(t *testing.T) {
	assertTrue(t, exec(t, OperatorEq, of(value.Integer(1)), of(value.Double(1.0))))
	assertFalse(t, exec(t, OperatorEq, of(value.Integer(1)), of(value.Double(1.5))))
}

func TestEqNaNIsNeverEqual(t *testing.T) {
	nan := of(value.Double(math.NaN()))
	assertFalse(t, exec(t, OperatorEq, nan, nan))
	assertTrue(t, exec(t, OperatorNeq, nan, nan))
}

func TestEqDifferentTypeClasses(t *testing.T) {
	assertFalse(t, exec(t, OperatorEq, of(value.Integer(1)), of(value.String("1"))))
	assertTrue(t, exec(t, OperatorNeq, of(value.Integer(1)), of(value.String("1"))))
}

func TestEqNullMirrors(t *testing.T) {
	assertNull(t, exec(t, OperatorEq, of(value.Null()), of(value.Integer(1))))
	assertNull(t, exec(t, OperatorEq, result.Unset(), of(value.Integer(1))))
	assertNull(t, exec(t, OperatorNeq, of(value.Null()), of(value.Null())))
}

func TestEqErrorDominates(t *testing.T) {
	r := exec(t, OperatorEq, boom(), of(value.Integer(1)))
	assertErrorKind(t, r, result.ErrInvalidArgument)
}

func TestEqComposites(t *testing.T) {
	t.Run("definitive difference beats null", func(t *testing.T) {
		// [null, 1] vs [null, 2]: the 1 vs 2 mismatch settles false even
		// though a null pair is present.
		a := of(value.Array(value.Null(), value.Integer(1)))
		b := of(value.Array(value.Null(), value.Integer(2)))
		assertFalse(t, exec(t, OperatorEq, a, b))
	})
	t.Run("null-only difference is unknown", func(t *testing.T) {
		a := of(value.Array(value.Null(), value.Integer(1)))
		b := of(value.Array(value.Null(), value.Integer(1)))
		assertNull(t, exec(t, OperatorEq, a, b))
	})
	t.Run("length mismatch is false", func(t *testing.T) {
		a := of(value.Array(value.Null()))
		b := of(value.Array(value.Null(), value.Null()))
		assertFalse(t, exec(t, OperatorEq, a, b))
	})
	t.Run("maps fold the same way", func(t *testing.T) {
		a := of(value.Map(map[string]value.Value{"x": value.Null(), "y": value.Integer(1)}))
		b := of(value.Map(map[string]value.Value{"x": value.Null(), "y": value.Integer(1)}))
		assertNull(t, exec(t, OperatorEq, a, b))
	})
	t.Run("map key mismatch is false", func(t *testing.T) {
		a := of(value.Map(map[string]value.Value{"x": value.Null()}))
		b := of(value.Map(map[string]value.Value{"y": value.Null()}))
		assertFalse(t, exec(t, OperatorEq, a, b))
	})
}

func TestOrderingOperators(t *testing.T) {
	one, two := of(value.Integer(1)), of(value.Integer(2))
	assertTrue(t, exec(t, OperatorLt, one, two))
	assertFalse(t, exec(t, OperatorLt, two, one))
	assertTrue(t, exec(t, OperatorLte, one, one))
	assertTrue(t, exec(t, OperatorGt, two, one))
	assertTrue(t, exec(t, OperatorGte, two, two))
	assertFalse(t, exec(t, OperatorGte, one, two))
}

func TestOrderingMixedNumerics(t *testing.T) {
	assertTrue(t, exec(t, OperatorLt, of(value.Integer(1)), of(value.Double(1.5))))
	assertTrue(t, exec(t, OperatorGte, of(value.Double(2.0)), of(value.Integer(2))))
	// Exactness near the top of the int64 range.
	assertTrue(t, exec(t, OperatorLt,
		of(value.Integer(math.MaxInt64)), of(value.Double(math.Ldexp(1, 63)))))
}

func TestOrderingDifferentTypeClassesIsFalse(t *testing.T) {
	// No cross-class ordering: both directions are false.
	assertFalse(t, exec(t, OperatorLt, of(value.Integer(1)), of(value.String("a"))))
	assertFalse(t, exec(t, OperatorGt, of(value.Integer(1)), of(value.String("a"))))
}

func TestOrderingNaNIsFalse(t *testing.T) {
	nan := of(value.Double(math.NaN()))
	assertFalse(t, exec(t, OperatorLt, nan, of(value.Integer(1))))
	assertFalse(t, exec(t, OperatorGte, nan, nan))
	assertFalse(t, exec(t, OperatorLte, nan, nan))
}

func TestOrderingNullMirrors(t *testing.T) {
	assertNull(t, exec(t, OperatorLt, of(value.Null()), of(value.Integer(1))))
	assertNull(t, exec(t, OperatorGte, result.Unset(), of(value.Integer(1))))
}

func TestEqAny(t *testing.T) {
	candidates := of(value.Array(value.Integer(1), value.Integer(2)))
	assertTrue(t, exec(t, OperatorEqAny, of(value.Integer(2)), candidates))
	assertFalse(t, exec(t, OperatorEqAny, of(value.Integer(3)), candidates))
	assertFalse(t, exec(t, OperatorNotEqAny, of(value.Integer(2)), candidates))
	assertTrue(t, exec(t, OperatorNotEqAny, of(value.Integer(3)), candidates))
}

func TestEqAnyMatchBeatsNullCandidate(t *testing.T) {
	candidates := of(value.Array(value.Null(), value.Integer(2)))
	assertTrue(t, exec(t, OperatorEqAny, of(value.Integer(2)), candidates))
}

func TestEqAnyNullCandidateLeavesUnknown(t *testing.T) {
	candidates := of(value.Array(value.Null(), value.Integer(2)))
	assertNull(t, exec(t, OperatorEqAny, of(value.Integer(3)), candidates))
	assertNull(t, exec(t, OperatorNotEqAny, of(value.Integer(3)), candidates))
}

func TestEqAnyNonArrayCandidates(t *testing.T) {
	r := exec(t, OperatorEqAny, of(value.Integer(1)), of(value.Integer(1)))
	assertErrorKind(t, r, result.ErrTypeMismatch)
}

func TestEqAnyEmptyCandidates(t *testing.T) {
	assertFalse(t, exec(t, OperatorEqAny, of(value.Integer(1)), of(value.Array())))
}

func TestLogicalMaximum(t *testing.T) {
	r := exec(t, OperatorLogicalMaximum,
		of(value.Integer(1)), of(value.Integer(3)), of(value.Integer(2)))
	assertInteger(t, r, 3)
}

func TestLogicalExtremeSkipsNullsAndErrors(t *testing.T) {
	r := exec(t, OperatorLogicalMinimum,
		of(value.Null()), boom(), of(value.Integer(5)))
	assertInteger(t, r, 5)
}

func TestLogicalExtremeAcrossTypeClasses(t *testing.T) {
	// Strings outrank numbers in the total order.
	r := exec(t, OperatorLogicalMaximum, of(value.Integer(99)), of(value.String("a")))
	assertString(t, r, "a")
}

func TestLogicalExtremeTieKeepsEarlierOperand(t *testing.T) {
	r := exec(t, OperatorLogicalMaximum, of(value.Integer(1)), of(value.Double(1.0)))
	assertInteger(t, r, 1)
}

func TestLogicalExtremeErrorWhenNoValue(t *testing.T) {
	r := exec(t, OperatorLogicalMaximum, boom(), of(value.Null()))
	assertErrorKind(t, r, result.ErrInvalidArgument)
}

func TestLogicalExtremeAllNull(t *testing.T) {
	assertNull(t, exec(t, OperatorLogicalMinimum, of(value.Null()), result.Unset()))
}
