package operators

import (
	"github.com/krew-solutions/doceval-go/doceval/result"
)

// is_null asks about the value, not about presence: an absent field stays
// Unset rather than answering either way. Presence is exists's job.
func evalIsNull(args []result.Result) result.Result {
	if len(args) != 1 {
		return wrongArity(OperatorIsNull, len(args), 1)
	}
	a := args[0]
	switch {
	case a.IsError():
		return result.Err(a.Err())
	case a.IsUnset():
		return result.Unset()
	}
	return result.BooleanOf(a.Value().IsNull())
}

func evalIsNotNull(args []result.Result) result.Result {
	r := evalIsNull(args)
	if r.IsValue() {
		return result.BooleanOf(!r.Value().Boolean())
	}
	return r
}

func evalExists(args []result.Result) result.Result {
	if len(args) != 1 {
		return wrongArity(OperatorExists, len(args), 1)
	}
	a := args[0]
	switch {
	case a.IsError():
		return result.Err(a.Err())
	case a.IsUnset():
		return result.BooleanOf(false)
	}
	return result.BooleanOf(true)
}

func evalIsNan(args []result.Result) result.Result {
	if len(args) != 1 {
		return wrongArity(OperatorIsNan, len(args), 1)
	}
	a := args[0]
	switch {
	case a.IsError():
		return result.Err(a.Err())
	case a.IsNullish():
		return result.Null()
	case a.Value().IsNumber():
		return result.BooleanOf(a.Value().IsNaN())
	}
	return result.Err(result.TypeMismatch("is_nan expects a number, got %s", a.Value().Kind()))
}

func evalIsNotNan(args []result.Result) result.Result {
	r := evalIsNan(args)
	if r.IsValue() && !r.Value().IsNull() {
		return result.BooleanOf(!r.Value().Boolean())
	}
	return r
}
