package operators

import (
	"strings"

	"github.com/krew-solutions/doceval-go/doceval/value"
)

var defaultRegistry = NewDefaultRegistry()

// DefaultRegistry returns the shared registry with the full operator set.
// It is never mutated after package init.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// NewDefaultRegistry builds a fresh registry covering every Operator.
// The conditional operator is absent on purpose: it is the one operator the
// evaluator handles lazily, before operand evaluation.
func NewDefaultRegistry() *Registry {
	reg := NewRegistry()

	// Comparison
	reg.Register(OperatorEq, evalEq)
	reg.Register(OperatorNeq, evalNeq)
	reg.Register(OperatorLt, ordering(OperatorLt, func(c int) bool { return c < 0 }))
	reg.Register(OperatorLte, ordering(OperatorLte, func(c int) bool { return c <= 0 }))
	reg.Register(OperatorGt, ordering(OperatorGt, func(c int) bool { return c > 0 }))
	reg.Register(OperatorGte, ordering(OperatorGte, func(c int) bool { return c >= 0 }))
	reg.Register(OperatorEqAny, evalEqAny)
	reg.Register(OperatorNotEqAny, evalNotEqAny)

	// Logical
	reg.Register(OperatorAnd, evalAnd)
	reg.Register(OperatorOr, evalOr)
	reg.Register(OperatorXor, evalXor)
	reg.Register(OperatorNot, evalNot)
	reg.Register(OperatorLogicalMaximum, logicalExtreme(OperatorLogicalMaximum, true))
	reg.Register(OperatorLogicalMinimum, logicalExtreme(OperatorLogicalMinimum, false))

	// Value tests
	reg.Register(OperatorIsNull, evalIsNull)
	reg.Register(OperatorIsNotNull, evalIsNotNull)
	reg.Register(OperatorIsNan, evalIsNan)
	reg.Register(OperatorIsNotNan, evalIsNotNan)
	reg.Register(OperatorExists, evalExists)

	// Arithmetic
	reg.Register(OperatorAdd, binaryNumeric(OperatorAdd, addInt64, func(a, b float64) float64 { return a + b }))
	reg.Register(OperatorSubtract, binaryNumeric(OperatorSubtract, subInt64, func(a, b float64) float64 { return a - b }))
	reg.Register(OperatorMultiply, binaryNumeric(OperatorMultiply, mulInt64, func(a, b float64) float64 { return a * b }))
	reg.Register(OperatorDivide, evalDivide)
	reg.Register(OperatorMod, evalMod)
	reg.Register(OperatorSqrt, evalSqrt)

	// Array
	reg.Register(OperatorArrayConcat, evalArrayConcat)
	reg.Register(OperatorArrayContains, evalArrayContains)
	reg.Register(OperatorArrayContainsAll, containsAllOrAny(OperatorArrayContainsAll, true))
	reg.Register(OperatorArrayContainsAny, containsAllOrAny(OperatorArrayContainsAny, false))
	reg.Register(OperatorArrayFirst, evalArrayFirst)
	reg.Register(OperatorArrayLength, evalArrayLength)

	// Map
	reg.Register(OperatorMapGet, evalMapGet)

	// String
	reg.Register(OperatorStrConcat, evalStrConcat)
	reg.Register(OperatorToLower, unaryString(OperatorToLower, func(s string) value.Value {
		return value.String(strings.ToLower(s))
	}))
	reg.Register(OperatorToUpper, unaryString(OperatorToUpper, func(s string) value.Value {
		return value.String(strings.ToUpper(s))
	}))
	reg.Register(OperatorTrim, unaryString(OperatorTrim, func(s string) value.Value {
		return value.String(strings.TrimSpace(s))
	}))
	reg.Register(OperatorStrContains, binaryString(OperatorStrContains, func(subject, probe string) value.Value {
		return value.Boolean(strings.Contains(subject, probe))
	}))
	reg.Register(OperatorStartsWith, binaryString(OperatorStartsWith, func(subject, probe string) value.Value {
		return value.Boolean(strings.HasPrefix(subject, probe))
	}))
	reg.Register(OperatorEndsWith, binaryString(OperatorEndsWith, func(subject, probe string) value.Value {
		return value.Boolean(strings.HasSuffix(subject, probe))
	}))
	reg.Register(OperatorLike, evalLike)
	reg.Register(OperatorRegexContains, regexOp(OperatorRegexContains, false))
	reg.Register(OperatorRegexMatch, regexOp(OperatorRegexMatch, true))
	reg.Register(OperatorCharLength, unaryString(OperatorCharLength, charLength))
	reg.Register(OperatorByteLength, evalByteLength)
	reg.Register(OperatorSubstr, evalSubstr)

	// Timestamp
	reg.Register(OperatorTimestampAdd, timestampAdd(OperatorTimestampAdd, false))
	reg.Register(OperatorTimestampSub, timestampAdd(OperatorTimestampSub, true))
	reg.Register(OperatorTimestampToUnixSeconds, timestampToUnix(OperatorTimestampToUnixSeconds, 1, 0))
	reg.Register(OperatorTimestampToUnixMillis, timestampToUnix(OperatorTimestampToUnixMillis, 1000, 1_000_000))
	reg.Register(OperatorTimestampToUnixMicros, timestampToUnix(OperatorTimestampToUnixMicros, 1_000_000, 1000))
	reg.Register(OperatorUnixSecondsToTimestamp, unixToTimestamp(OperatorUnixSecondsToTimestamp, 1, 0))
	reg.Register(OperatorUnixMillisToTimestamp, unixToTimestamp(OperatorUnixMillisToTimestamp, 1000, 1_000_000))
	reg.Register(OperatorUnixMicrosToTimestamp, unixToTimestamp(OperatorUnixMicrosToTimestamp, 1_000_000, 1000))

	// Vector
	reg.Register(OperatorVectorLength, evalVectorLength)
	reg.Register(OperatorDotProduct, binaryVector(OperatorDotProduct, dotProduct))
	reg.Register(OperatorCosineDistance, binaryVector(OperatorCosineDistance, cosineDistance))
	reg.Register(OperatorEuclideanDistance, binaryVector(OperatorEuclideanDistance, euclideanDistance))

	return reg
}
