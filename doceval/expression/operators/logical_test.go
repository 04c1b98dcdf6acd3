package operators

import (
	"testing"

	"github.com/krew-solutions/doceval-go/doceval/result"
	"github.com/krew-solutions/doceval-go/doceval/value"
)

var (
	vTrue  = of(value.Boolean(true))
	vFalse = of(value.Boolean(false))
	vNull  = of(value.Null())
)

func TestAndFalseDominatesError(t *testing.T) {
	assertFalse(t, exec(t, OperatorAnd, boom(), vFalse))
	assertFalse(t, exec(t, OperatorAnd, vNull, vFalse, vTrue))
}

func TestAndErrorDominatesNull(t *testing.T) {
	r := exec(t, OperatorAnd, boom(), vNull, vTrue)
	assertErrorKind(t, r, result.ErrInvalidArgument)
}

func TestAndNullDominatesTrue(t *testing.T) {
	assertNull(t, exec(t, OperatorAnd, vTrue, vNull))
}

func TestAndAllTrue(t *testing.T) {
	assertTrue(t, exec(t, OperatorAnd, vTrue, vTrue, vTrue))
}

func TestAndNonBooleanOperandIsError(t *testing.T) {
	r := exec(t, OperatorAnd, vTrue, of(value.Integer(1)))
	assertErrorKind(t, r, result.ErrTypeMismatch)
}

func TestOrTrueDominatesError(t *testing.T) {
	assertTrue(t, exec(t, OperatorOr, boom(), vTrue))
	assertTrue(t, exec(t, OperatorOr, vNull, vTrue))
}

func TestOrErrorDominatesNull(t *testing.T) {
	r := exec(t, OperatorOr, boom(), vNull, vFalse)
	assertErrorKind(t, r, result.ErrInvalidArgument)
}

func TestOrNullDominatesFalse(t *testing.T) {
	assertNull(t, exec(t, OperatorOr, vFalse, vNull))
}

func TestOrAllFalse(t *testing.T) {
	assertFalse(t, exec(t, OperatorOr, vFalse, vFalse))
}

func TestXorParity(t *testing.T) {
	assertTrue(t, exec(t, OperatorXor, vTrue, vFalse))
	assertFalse(t, exec(t, OperatorXor, vTrue, vTrue))
	assertTrue(t, exec(t, OperatorXor, vTrue, vTrue, vTrue))
}

func TestXorHasNoDominantValue(t *testing.T) {
	// Unlike or, a true operand does not rescue xor from an error or null.
	r := exec(t, OperatorXor, boom(), vTrue)
	assertErrorKind(t, r, result.ErrInvalidArgument)
	assertNull(t, exec(t, OperatorXor, vNull, vTrue))
}

func TestXorErrorBeatsNull(t *testing.T) {
	r := exec(t, OperatorXor, vNull, boom())
	assertErrorKind(t, r, result.ErrInvalidArgument)
}

func TestXorTypeErrorBeatsNull(t *testing.T) {
	r := exec(t, OperatorXor, vNull, of(value.Integer(1)))
	assertErrorKind(t, r, result.ErrTypeMismatch)
}

func TestNot(t *testing.T) {
	assertFalse(t, exec(t, OperatorNot, vTrue))
	assertTrue(t, exec(t, OperatorNot, vFalse))
	assertNull(t, exec(t, OperatorNot, vNull))
	assertNull(t, exec(t, OperatorNot, result.Unset()))
	assertErrorKind(t, exec(t, OperatorNot, of(value.String("x"))), result.ErrTypeMismatch)
}

func TestAndEmptyOperands(t *testing.T) {
	// Vacuous truth, matching the SQL aggregate convention.
	assertTrue(t, exec(t, OperatorAnd))
	assertFalse(t, exec(t, OperatorOr))
}
