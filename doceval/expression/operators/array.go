package operators

import (
	"github.com/krew-solutions/doceval-go/doceval/result"
	"github.com/krew-solutions/doceval-go/doceval/value"
)

// array_concat type-checks every operand before honoring a null: a non-array
// operand after a null still forces an error.
func evalArrayConcat(args []result.Result) result.Result {
	if len(args) == 0 {
		return result.Err(result.InvalidArgument("array_concat expects at least one operand"))
	}
	if err := firstError(args); err != nil {
		return result.Err(err)
	}
	for _, a := range args {
		if !a.IsNullish() && !a.Value().IsArray() {
			return result.Err(result.TypeMismatch(
				"array_concat expects arrays, got %s", a.Value().Kind()))
		}
	}
	if anyNullish(args) {
		return result.Null()
	}
	var elements []value.Value
	for _, a := range args {
		elements = append(elements, a.Value().Array()...)
	}
	return result.Of(value.Array(elements...))
}

func evalArrayContains(args []result.Result) result.Result {
	if len(args) != 2 {
		return wrongArity(OperatorArrayContains, len(args), 2)
	}
	if err := firstError(args); err != nil {
		return result.Err(err)
	}
	if args[0].IsNullish() {
		return result.Null()
	}
	if !args[0].Value().IsArray() {
		return result.Err(result.TypeMismatch(
			"array_contains expects an array, got %s", args[0].Value().Kind()))
	}
	if args[1].IsNullish() {
		return result.Null()
	}
	needle := args[1].Value()
	for _, element := range args[0].Value().Array() {
		if value.Equals(element, needle) {
			return result.BooleanOf(true)
		}
	}
	return result.BooleanOf(false)
}

// Containment uses value.Equals, under which NaN is a member of an array
// holding NaN and explicit nulls match explicit nulls. This intentionally
// diverges from eq's NaN and null rules.
func containsAllOrAny(op Operator, all bool) Func {
	return func(args []result.Result) result.Result {
		if len(args) != 2 {
			return wrongArity(op, len(args), 2)
		}
		if err := firstError(args); err != nil {
			return result.Err(err)
		}
		if anyNullish(args) {
			return result.Null()
		}
		haystack, needles := args[0].Value(), args[1].Value()
		if !haystack.IsArray() || !needles.IsArray() {
			return result.Err(result.TypeMismatch(
				"%s expects two arrays, got %s and %s", op, haystack.Kind(), needles.Kind()))
		}
		for _, needle := range needles.Array() {
			found := false
			for _, element := range haystack.Array() {
				if value.Equals(element, needle) {
					found = true
					break
				}
			}
			if all && !found {
				return result.BooleanOf(false)
			}
			if !all && found {
				return result.BooleanOf(true)
			}
		}
		return result.BooleanOf(all)
	}
}

func evalArrayFirst(args []result.Result) result.Result {
	if len(args) != 1 {
		return wrongArity(OperatorArrayFirst, len(args), 1)
	}
	a := args[0]
	switch {
	case a.IsError():
		return result.Err(a.Err())
	case a.IsNullish():
		return result.Null()
	}
	if !a.Value().IsArray() {
		return result.Err(result.TypeMismatch("array_first expects an array, got %s", a.Value().Kind()))
	}
	elements := a.Value().Array()
	if len(elements) == 0 {
		return result.Unset()
	}
	return result.Of(elements[0])
}

func evalArrayLength(args []result.Result) result.Result {
	if len(args) != 1 {
		return wrongArity(OperatorArrayLength, len(args), 1)
	}
	a := args[0]
	switch {
	case a.IsError():
		return result.Err(a.Err())
	case a.IsNullish():
		return result.Null()
	}
	if !a.Value().IsArray() {
		return result.Err(result.TypeMismatch("array_length expects an array, got %s", a.Value().Kind()))
	}
	return result.Of(value.Integer(int64(len(a.Value().Array()))))
}
