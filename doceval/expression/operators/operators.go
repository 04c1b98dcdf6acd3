package operators

// Operator names the semantic rule applied to a function call's evaluated
// operands. The set is closed; the default registry covers all of it.
type Operator string

const (
	// Comparison

	OperatorEq       Operator = "eq"
	OperatorNeq      Operator = "neq"
	OperatorLt       Operator = "lt"
	OperatorLte      Operator = "lte"
	OperatorGt       Operator = "gt"
	OperatorGte      Operator = "gte"
	OperatorEqAny    Operator = "eq_any"
	OperatorNotEqAny Operator = "not_eq_any"

	// Logical

	OperatorAnd  Operator = "and"
	OperatorOr   Operator = "or"
	OperatorXor  Operator = "xor"
	OperatorNot  Operator = "not"
	OperatorCond Operator = "cond"

	OperatorLogicalMaximum Operator = "logical_maximum"
	OperatorLogicalMinimum Operator = "logical_minimum"

	// Value tests

	OperatorIsNull    Operator = "is_null"
	OperatorIsNotNull Operator = "is_not_null"
	OperatorIsNan     Operator = "is_nan"
	OperatorIsNotNan  Operator = "is_not_nan"
	OperatorExists    Operator = "exists"

	// Arithmetic

	OperatorAdd      Operator = "add"
	OperatorSubtract Operator = "subtract"
	OperatorMultiply Operator = "multiply"
	OperatorDivide   Operator = "divide"
	OperatorMod      Operator = "mod"
	OperatorSqrt     Operator = "sqrt"

	// Array

	OperatorArrayConcat      Operator = "array_concat"
	OperatorArrayContains    Operator = "array_contains"
	OperatorArrayContainsAll Operator = "array_contains_all"
	OperatorArrayContainsAny Operator = "array_contains_any"
	OperatorArrayFirst       Operator = "array_first"
	OperatorArrayLength      Operator = "array_length"

	// Map

	OperatorMapGet Operator = "map_get"

	// String

	OperatorStrConcat     Operator = "str_concat"
	OperatorToLower       Operator = "to_lower"
	OperatorToUpper       Operator = "to_upper"
	OperatorTrim          Operator = "trim"
	OperatorStrContains   Operator = "str_contains"
	OperatorStartsWith    Operator = "starts_with"
	OperatorEndsWith      Operator = "ends_with"
	OperatorLike          Operator = "like"
	OperatorRegexContains Operator = "regex_contains"
	OperatorRegexMatch    Operator = "regex_match"
	OperatorCharLength    Operator = "char_length"
	OperatorByteLength    Operator = "byte_length"
	OperatorSubstr        Operator = "substr"

	// Timestamp

	OperatorTimestampAdd           Operator = "timestamp_add"
	OperatorTimestampSub           Operator = "timestamp_sub"
	OperatorTimestampToUnixSeconds Operator = "timestamp_to_unix_seconds"
	OperatorTimestampToUnixMillis  Operator = "timestamp_to_unix_millis"
	OperatorTimestampToUnixMicros  Operator = "timestamp_to_unix_micros"
	OperatorUnixSecondsToTimestamp Operator = "unix_seconds_to_timestamp"
	OperatorUnixMillisToTimestamp  Operator = "unix_millis_to_timestamp"
	OperatorUnixMicrosToTimestamp  Operator = "unix_micros_to_timestamp"

	// Vector

	OperatorVectorLength      Operator = "vector_length"
	OperatorDotProduct        Operator = "dot_product"
	OperatorCosineDistance    Operator = "cosine_distance"
	OperatorEuclideanDistance Operator = "euclidean_distance"
)
