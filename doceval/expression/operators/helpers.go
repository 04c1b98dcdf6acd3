package operators

import (
	"github.com/krew-solutions/doceval-go/doceval/result"
	"github.com/krew-solutions/doceval-go/doceval/value"
)

// firstError returns the error of the first Error operand, or nil. Error is
// the default-dominant outcome; operators with an error-tolerant reduction
// (or, and, logical_maximum, logical_minimum) do not use this helper.
func firstError(args []result.Result) error {
	for _, a := range args {
		if a.IsError() {
			return a.Err()
		}
	}
	return nil
}

func anyNullish(args []result.Result) bool {
	for _, a := range args {
		if a.IsNullish() {
			return true
		}
	}
	return false
}

func wrongArity(op Operator, got, want int) result.Result {
	return result.Err(result.InvalidArgument("%s expects %d operands, got %d", op, want, got))
}

// ternary is the three-valued outcome of an equality check: false, true, or
// unknown (a null was involved and nothing else settled the answer).
type ternary int

const (
	ternFalse ternary = iota
	ternTrue
	ternUnknown
)

func (t ternary) negate() ternary {
	switch t {
	case ternTrue:
		return ternFalse
	case ternFalse:
		return ternTrue
	}
	return ternUnknown
}

func (t ternary) result() result.Result {
	switch t {
	case ternTrue:
		return result.BooleanOf(true)
	case ternFalse:
		return result.BooleanOf(false)
	}
	return result.Null()
}

// equalsTernary implements eq's three-valued equality. A null on either side
// of a scalar comparison is unknown; NaN is never equal to anything,
// including itself. Composites settle to false when lengths or non-null
// members definitively differ, and to unknown when nulls are the only thing
// standing between the operands and equality.
func equalsTernary(a, b value.Value) ternary {
	if a.IsNull() || b.IsNull() {
		return ternUnknown
	}
	if value.TypeOrder(a) != value.TypeOrder(b) {
		return ternFalse
	}
	if a.IsNumber() {
		if a.IsNaN() || b.IsNaN() {
			return ternFalse
		}
		if value.CompareNumbers(a, b) == 0 {
			return ternTrue
		}
		return ternFalse
	}
	if a.IsArray() {
		return arrayEqualsTernary(a.Array(), b.Array())
	}
	if a.IsMap() {
		return mapEqualsTernary(a.Fields(), b.Fields())
	}
	if value.Equals(a, b) {
		return ternTrue
	}
	return ternFalse
}

func arrayEqualsTernary(a, b []value.Value) ternary {
	if len(a) != len(b) {
		return ternFalse
	}
	out := ternTrue
	for i := range a {
		switch equalsTernary(a[i], b[i]) {
		case ternFalse:
			return ternFalse
		case ternUnknown:
			out = ternUnknown
		}
	}
	return out
}

func mapEqualsTernary(a, b map[string]value.Value) ternary {
	if len(a) != len(b) {
		return ternFalse
	}
	out := ternTrue
	for k, av := range a {
		bv, ok := b[k]
		if !ok {
			return ternFalse
		}
		switch equalsTernary(av, bv) {
		case ternFalse:
			return ternFalse
		case ternUnknown:
			out = ternUnknown
		}
	}
	return out
}
