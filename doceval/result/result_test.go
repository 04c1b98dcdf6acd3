package result

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/krew-solutions/doceval-go/doceval/value"
)

func TestZeroResultIsNullValue(t *testing.T) {
	var r Result
	assert.True(t, r.IsValue())
	assert.True(t, r.Value().IsNull())
}

func TestUnsetIsNotNull(t *testing.T) {
	u := Unset()
	assert.True(t, u.IsUnset())
	assert.False(t, u.IsValue())
	assert.True(t, u.IsNullish())
}

func TestNullishCoversBothStates(t *testing.T) {
	assert.True(t, Null().IsNullish())
	assert.True(t, Unset().IsNullish())
	assert.False(t, Of(value.Integer(0)).IsNullish())
	assert.False(t, Err(errors.New("x")).IsNullish())
}

func TestIsTrue(t *testing.T) {
	assert.True(t, BooleanOf(true).IsTrue())
	assert.False(t, BooleanOf(false).IsTrue())
	assert.False(t, Null().IsTrue())
	assert.False(t, Unset().IsTrue())
	assert.False(t, Of(value.Integer(1)).IsTrue())
}

func TestErrorClassification(t *testing.T) {
	err := TypeMismatch("expected %s", "string")
	assert.True(t, IsKind(err, ErrTypeMismatch))
	assert.False(t, IsKind(err, ErrInvalidArgument))
	assert.Contains(t, err.Error(), "expected string")
}

func TestIsKindSeesThroughWrapping(t *testing.T) {
	err := errors.Wrap(OutOfRange("overflow"), "outer context")
	assert.True(t, IsKind(err, ErrOutOfRange))
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "unset", Unset().String())
	assert.Contains(t, Err(errors.New("boom")).String(), "boom")
}
