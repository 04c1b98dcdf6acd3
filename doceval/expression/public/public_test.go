package public

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krew-solutions/doceval-go/doceval/document"
	"github.com/krew-solutions/doceval-go/doceval/expression"
	"github.com/krew-solutions/doceval-go/doceval/value"
)

func profileDoc() document.Document {
	return document.Document{
		"name":  value.String("Grace Hopper"),
		"born":  value.Integer(1906),
		"tags":  value.Array(value.String("navy"), value.String("compilers")),
		"score": value.Double(9.5),
	}
}

func evaluate(t *testing.T, c Chain) value.Value {
	t.Helper()
	r, err := expression.Evaluate(c.Delegate(), profileDoc())
	require.NoError(t, err)
	require.True(t, r.IsValue(), "expected a value, got %s", r)
	return r.Value()
}

func TestChainComparison(t *testing.T) {
	got := evaluate(t, FieldOf("born").Lt(Int(1950)).Chain)
	assert.True(t, got.Boolean())
}

func TestChainLogicalComposition(t *testing.T) {
	pred := FieldOf("born").Gte(Int(1900)).
		And(FieldOf("tags").ArrayContains(Str("navy"))).
		Or(FieldOf("name").Eq(Str("nobody")))
	got := evaluate(t, pred.Chain)
	assert.True(t, got.Boolean())
}

func TestChainArithmetic(t *testing.T) {
	got := evaluate(t, FieldOf("born").Add(Int(44)).Mul(Int(2)))
	assert.Equal(t, int64(3900), got.Integer())
}

func TestChainStringPipeline(t *testing.T) {
	got := evaluate(t, FieldOf("name").ToUpper())
	assert.Equal(t, "GRACE HOPPER", got.Str())
}

func TestChainConditional(t *testing.T) {
	c := FieldOf("score").Gt(Float(9.0)).Cond(Str("excellent"), Str("ordinary"))
	got := evaluate(t, c)
	assert.Equal(t, "excellent", got.Str())
}

func TestChainNotAndXor(t *testing.T) {
	p := FieldOf("born").Eq(Int(1906))
	got := evaluate(t, p.Not().Chain)
	assert.False(t, got.Boolean())

	got = evaluate(t, p.Xor(FieldOf("name").Eq(Str("nobody"))).Chain)
	assert.True(t, got.Boolean())
}

func TestChainValueTests(t *testing.T) {
	assert.True(t, evaluate(t, FieldOf("name").Exists().Chain).Boolean())
	assert.False(t, evaluate(t, FieldOf("salary").Exists().Chain).Boolean())
	assert.False(t, evaluate(t, FieldOf("score").IsNan().Chain).Boolean())
}

func TestWrapInteroperatesWithRawBuilders(t *testing.T) {
	raw := expression.ArrayLength(expression.Field("tags"))
	got := evaluate(t, Wrap(raw).Eq(Int(2)).Chain)
	assert.True(t, got.Boolean())
}
