// Package public is the fluent facade over the expression builders. It lets
// callers chain operations off a field or a literal instead of nesting
// constructor calls.
package public

import (
	e "github.com/krew-solutions/doceval-go/doceval/expression"
	"github.com/krew-solutions/doceval-go/doceval/value"
)

// Chain wraps any expression node and exposes the operator set as methods.
type Chain struct {
	delegate e.Visitable
}

// Wrap lifts an already built node into the fluent API.
func Wrap(delegate e.Visitable) Chain {
	return Chain{delegate: delegate}
}

// FieldOf starts a chain from a dotted document path.
func FieldOf(path string) Chain {
	return Wrap(e.Field(path))
}

// ValueOf starts a chain from a literal.
func ValueOf(v value.Value) Chain {
	return Wrap(e.Constant(v))
}

// Int starts a chain from an integer literal.
func Int(n int64) Chain {
	return ValueOf(value.Integer(n))
}

// Float starts a chain from a double literal.
func Float(f float64) Chain {
	return ValueOf(value.Double(f))
}

// Str starts a chain from a string literal.
func Str(s string) Chain {
	return ValueOf(value.String(s))
}

// Bool starts a chain from a boolean literal.
func Bool(b bool) Chain {
	return ValueOf(value.Boolean(b))
}

// Delegate returns the wrapped node.
func (c Chain) Delegate() e.Visitable {
	return c.delegate
}

// Predicate is a chain known to produce a boolean.
type Predicate struct {
	Chain
}

func predicate(b e.BooleanExpression) Predicate {
	return Predicate{Chain: Wrap(b)}
}

// Boolean returns the underlying boolean view, for the logical builders.
func (p Predicate) Boolean() e.BooleanExpression {
	return e.AsBoolean(p.delegate)
}

// Comparison

func (c Chain) Eq(other Chain) Predicate {
	return predicate(e.Equal(c.delegate, other.delegate))
}

func (c Chain) Ne(other Chain) Predicate {
	return predicate(e.NotEqual(c.delegate, other.delegate))
}

func (c Chain) Lt(other Chain) Predicate {
	return predicate(e.LessThan(c.delegate, other.delegate))
}

func (c Chain) Lte(other Chain) Predicate {
	return predicate(e.LessThanOrEqual(c.delegate, other.delegate))
}

func (c Chain) Gt(other Chain) Predicate {
	return predicate(e.GreaterThan(c.delegate, other.delegate))
}

func (c Chain) Gte(other Chain) Predicate {
	return predicate(e.GreaterThanOrEqual(c.delegate, other.delegate))
}

func (c Chain) EqAny(candidates Chain) Predicate {
	return predicate(e.EqualAny(c.delegate, candidates.delegate))
}

func (c Chain) NotEqAny(candidates Chain) Predicate {
	return predicate(e.NotEqualAny(c.delegate, candidates.delegate))
}

// Value tests

func (c Chain) IsNull() Predicate {
	return predicate(e.IsNull(c.delegate))
}

func (c Chain) IsNotNull() Predicate {
	return predicate(e.IsNotNull(c.delegate))
}

func (c Chain) IsNan() Predicate {
	return predicate(e.IsNan(c.delegate))
}

func (c Chain) IsNotNan() Predicate {
	return predicate(e.IsNotNan(c.delegate))
}

func (c Chain) Exists() Predicate {
	return predicate(e.Exists(c.delegate))
}

// Logical

func (p Predicate) And(others ...Predicate) Predicate {
	return predicate(e.And(booleans(p, others)...))
}

func (p Predicate) Or(others ...Predicate) Predicate {
	return predicate(e.Or(booleans(p, others)...))
}

func (p Predicate) Xor(others ...Predicate) Predicate {
	return predicate(e.Xor(booleans(p, others)...))
}

func (p Predicate) Not() Predicate {
	return predicate(e.Not(p.Boolean()))
}

// Cond selects whenTrue or whenFalse by this predicate; only the selected
// branch is evaluated.
func (p Predicate) Cond(whenTrue, whenFalse Chain) Chain {
	return Wrap(e.Conditional(p.Boolean(), whenTrue.delegate, whenFalse.delegate))
}

// Arithmetic

func (c Chain) Add(other Chain) Chain {
	return Wrap(e.Add(c.delegate, other.delegate))
}

func (c Chain) Sub(other Chain) Chain {
	return Wrap(e.Subtract(c.delegate, other.delegate))
}

func (c Chain) Mul(other Chain) Chain {
	return Wrap(e.Multiply(c.delegate, other.delegate))
}

func (c Chain) Div(other Chain) Chain {
	return Wrap(e.Divide(c.delegate, other.delegate))
}

func (c Chain) Mod(other Chain) Chain {
	return Wrap(e.Mod(c.delegate, other.delegate))
}

func (c Chain) Sqrt() Chain {
	return Wrap(e.Sqrt(c.delegate))
}

// Array

func (c Chain) ArrayConcat(others ...Chain) Chain {
	args := make([]e.Visitable, 0, len(others)+1)
	args = append(args, c.delegate)
	for _, o := range others {
		args = append(args, o.delegate)
	}
	return Wrap(e.ArrayConcat(args...))
}

func (c Chain) ArrayContains(element Chain) Predicate {
	return predicate(e.ArrayContains(c.delegate, element.delegate))
}

func (c Chain) ArrayContainsAll(elements Chain) Predicate {
	return predicate(e.ArrayContainsAll(c.delegate, elements.delegate))
}

func (c Chain) ArrayContainsAny(elements Chain) Predicate {
	return predicate(e.ArrayContainsAny(c.delegate, elements.delegate))
}

func (c Chain) ArrayFirst() Chain {
	return Wrap(e.ArrayFirst(c.delegate))
}

func (c Chain) ArrayLength() Chain {
	return Wrap(e.ArrayLength(c.delegate))
}

// Map

func (c Chain) MapGet(key Chain) Chain {
	return Wrap(e.MapGet(c.delegate, key.delegate))
}

// String

func (c Chain) StrConcat(others ...Chain) Chain {
	args := make([]e.Visitable, 0, len(others)+1)
	args = append(args, c.delegate)
	for _, o := range others {
		args = append(args, o.delegate)
	}
	return Wrap(e.StrConcat(args...))
}

func (c Chain) ToLower() Chain {
	return Wrap(e.ToLower(c.delegate))
}

func (c Chain) ToUpper() Chain {
	return Wrap(e.ToUpper(c.delegate))
}

func (c Chain) Trim() Chain {
	return Wrap(e.Trim(c.delegate))
}

func (c Chain) StrContains(probe Chain) Predicate {
	return predicate(e.StrContains(c.delegate, probe.delegate))
}

func (c Chain) StartsWith(prefix Chain) Predicate {
	return predicate(e.StartsWith(c.delegate, prefix.delegate))
}

func (c Chain) EndsWith(suffix Chain) Predicate {
	return predicate(e.EndsWith(c.delegate, suffix.delegate))
}

func (c Chain) Like(pattern Chain) Predicate {
	return predicate(e.Like(c.delegate, pattern.delegate))
}

func (c Chain) RegexContains(pattern Chain) Predicate {
	return predicate(e.RegexContains(c.delegate, pattern.delegate))
}

func (c Chain) RegexMatch(pattern Chain) Predicate {
	return predicate(e.RegexMatch(c.delegate, pattern.delegate))
}

func (c Chain) CharLength() Chain {
	return Wrap(e.CharLength(c.delegate))
}

func (c Chain) ByteLength() Chain {
	return Wrap(e.ByteLength(c.delegate))
}

func (c Chain) Substr(position, length Chain) Chain {
	return Wrap(e.Substr(c.delegate, position.delegate, length.delegate))
}

// Timestamp

func (c Chain) TimestampAdd(unit, amount Chain) Chain {
	return Wrap(e.TimestampAdd(c.delegate, unit.delegate, amount.delegate))
}

func (c Chain) TimestampSub(unit, amount Chain) Chain {
	return Wrap(e.TimestampSub(c.delegate, unit.delegate, amount.delegate))
}

func (c Chain) ToUnixSeconds() Chain {
	return Wrap(e.TimestampToUnixSeconds(c.delegate))
}

func (c Chain) ToUnixMillis() Chain {
	return Wrap(e.TimestampToUnixMillis(c.delegate))
}

func (c Chain) ToUnixMicros() Chain {
	return Wrap(e.TimestampToUnixMicros(c.delegate))
}

func (c Chain) UnixSecondsToTimestamp() Chain {
	return Wrap(e.UnixSecondsToTimestamp(c.delegate))
}

func (c Chain) UnixMillisToTimestamp() Chain {
	return Wrap(e.UnixMillisToTimestamp(c.delegate))
}

func (c Chain) UnixMicrosToTimestamp() Chain {
	return Wrap(e.UnixMicrosToTimestamp(c.delegate))
}

// Vector

func (c Chain) VectorLength() Chain {
	return Wrap(e.VectorLength(c.delegate))
}

func (c Chain) DotProduct(other Chain) Chain {
	return Wrap(e.DotProduct(c.delegate, other.delegate))
}

func (c Chain) CosineDistance(other Chain) Chain {
	return Wrap(e.CosineDistance(c.delegate, other.delegate))
}

func (c Chain) EuclideanDistance(other Chain) Chain {
	return Wrap(e.EuclideanDistance(c.delegate, other.delegate))
}

func booleans(first Predicate, rest []Predicate) []e.BooleanExpression {
	out := make([]e.BooleanExpression, 0, len(rest)+1)
	out = append(out, first.Boolean())
	for _, p := range rest {
		out = append(out, p.Boolean())
	}
	return out
}
