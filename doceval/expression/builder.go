package expression

import (
	"github.com/krew-solutions/doceval-go/doceval/expression/operators"
)

// Predicate constructors return the BooleanExpression view so they compose
// directly into the logical operators; everything else returns the bare
// CallNode.

func boolCall(op operators.Operator, args ...Visitable) BooleanExpression {
	return AsBoolean(Call(op, args...))
}

// Comparison

func Equal(left, right Visitable) BooleanExpression {
	return boolCall(operators.OperatorEq, left, right)
}

func NotEqual(left, right Visitable) BooleanExpression {
	return boolCall(operators.OperatorNeq, left, right)
}

func LessThan(left, right Visitable) BooleanExpression {
	return boolCall(operators.OperatorLt, left, right)
}

func LessThanOrEqual(left, right Visitable) BooleanExpression {
	return boolCall(operators.OperatorLte, left, right)
}

func GreaterThan(left, right Visitable) BooleanExpression {
	return boolCall(operators.OperatorGt, left, right)
}

func GreaterThanOrEqual(left, right Visitable) BooleanExpression {
	return boolCall(operators.OperatorGte, left, right)
}

func EqualAny(subject, candidates Visitable) BooleanExpression {
	return boolCall(operators.OperatorEqAny, subject, candidates)
}

func NotEqualAny(subject, candidates Visitable) BooleanExpression {
	return boolCall(operators.OperatorNotEqAny, subject, candidates)
}

// Logical

func And(operands ...BooleanExpression) BooleanExpression {
	return boolCall(operators.OperatorAnd, unwrap(operands)...)
}

func Or(operands ...BooleanExpression) BooleanExpression {
	return boolCall(operators.OperatorOr, unwrap(operands)...)
}

func Xor(operands ...BooleanExpression) BooleanExpression {
	return boolCall(operators.OperatorXor, unwrap(operands)...)
}

func Not(operand BooleanExpression) BooleanExpression {
	return boolCall(operators.OperatorNot, operand)
}

// Conditional evaluates only the branch selected by the predicate; the
// other branch is never evaluated.
func Conditional(predicate BooleanExpression, whenTrue, whenFalse Visitable) CallNode {
	return Call(operators.OperatorCond, predicate, whenTrue, whenFalse)
}

func LogicalMaximum(operands ...Visitable) CallNode {
	return Call(operators.OperatorLogicalMaximum, operands...)
}

func LogicalMinimum(operands ...Visitable) CallNode {
	return Call(operators.OperatorLogicalMinimum, operands...)
}

// Value tests

func IsNull(operand Visitable) BooleanExpression {
	return boolCall(operators.OperatorIsNull, operand)
}

func IsNotNull(operand Visitable) BooleanExpression {
	return boolCall(operators.OperatorIsNotNull, operand)
}

func IsNan(operand Visitable) BooleanExpression {
	return boolCall(operators.OperatorIsNan, operand)
}

func IsNotNan(operand Visitable) BooleanExpression {
	return boolCall(operators.OperatorIsNotNan, operand)
}

func Exists(operand Visitable) BooleanExpression {
	return boolCall(operators.OperatorExists, operand)
}

// Arithmetic

func Add(left, right Visitable) CallNode {
	return Call(operators.OperatorAdd, left, right)
}

func Subtract(left, right Visitable) CallNode {
	return Call(operators.OperatorSubtract, left, right)
}

func Multiply(left, right Visitable) CallNode {
	return Call(operators.OperatorMultiply, left, right)
}

func Divide(left, right Visitable) CallNode {
	return Call(operators.OperatorDivide, left, right)
}

func Mod(left, right Visitable) CallNode {
	return Call(operators.OperatorMod, left, right)
}

func Sqrt(operand Visitable) CallNode {
	return Call(operators.OperatorSqrt, operand)
}

// Array

func ArrayConcat(arrays ...Visitable) CallNode {
	return Call(operators.OperatorArrayConcat, arrays...)
}

func ArrayContains(array, element Visitable) BooleanExpression {
	return boolCall(operators.OperatorArrayContains, array, element)
}

func ArrayContainsAll(array, elements Visitable) BooleanExpression {
	return boolCall(operators.OperatorArrayContainsAll, array, elements)
}

func ArrayContainsAny(array, elements Visitable) BooleanExpression {
	return boolCall(operators.OperatorArrayContainsAny, array, elements)
}

func ArrayFirst(array Visitable) CallNode {
	return Call(operators.OperatorArrayFirst, array)
}

func ArrayLength(array Visitable) CallNode {
	return Call(operators.OperatorArrayLength, array)
}

// Map

func MapGet(subject, key Visitable) CallNode {
	return Call(operators.OperatorMapGet, subject, key)
}

// String

func StrConcat(operands ...Visitable) CallNode {
	return Call(operators.OperatorStrConcat, operands...)
}

func ToLower(operand Visitable) CallNode {
	return Call(operators.OperatorToLower, operand)
}

func ToUpper(operand Visitable) CallNode {
	return Call(operators.OperatorToUpper, operand)
}

func Trim(operand Visitable) CallNode {
	return Call(operators.OperatorTrim, operand)
}

func StrContains(subject, probe Visitable) BooleanExpression {
	return boolCall(operators.OperatorStrContains, subject, probe)
}

func StartsWith(subject, prefix Visitable) BooleanExpression {
	return boolCall(operators.OperatorStartsWith, subject, prefix)
}

func EndsWith(subject, suffix Visitable) BooleanExpression {
	return boolCall(operators.OperatorEndsWith, subject, suffix)
}

func Like(subject, pattern Visitable) BooleanExpression {
	return boolCall(operators.OperatorLike, subject, pattern)
}

func RegexContains(subject, pattern Visitable) BooleanExpression {
	return boolCall(operators.OperatorRegexContains, subject, pattern)
}

func RegexMatch(subject, pattern Visitable) BooleanExpression {
	return boolCall(operators.OperatorRegexMatch, subject, pattern)
}

func CharLength(operand Visitable) CallNode {
	return Call(operators.OperatorCharLength, operand)
}

func ByteLength(operand Visitable) CallNode {
	return Call(operators.OperatorByteLength, operand)
}

func Substr(subject, position, length Visitable) CallNode {
	return Call(operators.OperatorSubstr, subject, position, length)
}

// Timestamp

func TimestampAdd(timestamp, unit, amount Visitable) CallNode {
	return Call(operators.OperatorTimestampAdd, timestamp, unit, amount)
}

func TimestampSub(timestamp, unit, amount Visitable) CallNode {
	return Call(operators.OperatorTimestampSub, timestamp, unit, amount)
}

func TimestampToUnixSeconds(timestamp Visitable) CallNode {
	return Call(operators.OperatorTimestampToUnixSeconds, timestamp)
}

func TimestampToUnixMillis(timestamp Visitable) CallNode {
	return Call(operators.OperatorTimestampToUnixMillis, timestamp)
}

func TimestampToUnixMicros(timestamp Visitable) CallNode {
	return Call(operators.OperatorTimestampToUnixMicros, timestamp)
}

func UnixSecondsToTimestamp(seconds Visitable) CallNode {
	return Call(operators.OperatorUnixSecondsToTimestamp, seconds)
}

func UnixMillisToTimestamp(millis Visitable) CallNode {
	return Call(operators.OperatorUnixMillisToTimestamp, millis)
}

func UnixMicrosToTimestamp(micros Visitable) CallNode {
	return Call(operators.OperatorUnixMicrosToTimestamp, micros)
}

// Vector

func VectorLength(operand Visitable) CallNode {
	return Call(operators.OperatorVectorLength, operand)
}

func DotProduct(left, right Visitable) CallNode {
	return Call(operators.OperatorDotProduct, left, right)
}

func CosineDistance(left, right Visitable) CallNode {
	return Call(operators.OperatorCosineDistance, left, right)
}

func EuclideanDistance(left, right Visitable) CallNode {
	return Call(operators.OperatorEuclideanDistance, left, right)
}

func unwrap(operands []BooleanExpression) []Visitable {
	out := make([]Visitable, len(operands))
	for i := range operands {
		out[i] = operands[i]
	}
	return out
}
