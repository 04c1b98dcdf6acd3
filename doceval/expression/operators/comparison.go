package operators

import (
	"github.com/krew-solutions/doceval-go/doceval/result"
	"github.com/krew-solutions/doceval-go/doceval/value"
)

func evalEq(args []result.Result) result.Result {
	if len(args) != 2 {
		return wrongArity(OperatorEq, len(args), 2)
	}
	if err := firstError(args); err != nil {
		return result.Err(err)
	}
	if args[0].IsNullish() || args[1].IsNullish() {
		return result.Null()
	}
	return equalsTernary(args[0].Value(), args[1].Value()).result()
}

func evalNeq(args []result.Result) result.Result {
	if len(args) != 2 {
		return wrongArity(OperatorNeq, len(args), 2)
	}
	if err := firstError(args); err != nil {
		return result.Err(err)
	}
	if args[0].IsNullish() || args[1].IsNullish() {
		return result.Null()
	}
	return equalsTernary(args[0].Value(), args[1].Value()).negate().result()
}

// ordering builds lt/lte/gt/gte. Operands of different type classes never
// satisfy an ordering comparison; NaN satisfies none either.
func ordering(op Operator, accept func(c int) bool) Func {
	return func(args []result.Result) result.Result {
		if len(args) != 2 {
			return wrongArity(op, len(args), 2)
		}
		if err := firstError(args); err != nil {
			return result.Err(err)
		}
		if args[0].IsNullish() || args[1].IsNullish() {
			return result.Null()
		}
		a, b := args[0].Value(), args[1].Value()
		if value.TypeOrder(a) != value.TypeOrder(b) {
			return result.BooleanOf(false)
		}
		if a.IsNaN() || b.IsNaN() {
			return result.BooleanOf(false)
		}
		return result.BooleanOf(accept(value.Compare(a, b)))
	}
}

// evalEqAny: membership with three-valued equality. Any definite match wins;
// otherwise a null-tainted candidate leaves the answer unknown.
func evalEqAny(args []result.Result) result.Result {
	return eqAnyResult(OperatorEqAny, args)
}

func evalNotEqAny(args []result.Result) result.Result {
	r := eqAnyResult(OperatorNotEqAny, args)
	if r.IsValue() && r.Value().Kind() == value.KindBoolean {
		return result.BooleanOf(!r.Value().Boolean())
	}
	return r
}

func eqAnyResult(op Operator, args []result.Result) result.Result {
	if len(args) != 2 {
		return wrongArity(op, len(args), 2)
	}
	if err := firstError(args); err != nil {
		return result.Err(err)
	}
	if args[1].IsNullish() {
		return result.Null()
	}
	if !args[1].Value().IsArray() {
		return result.Err(result.TypeMismatch(
			"%s expects an array of candidates, got %s", op, args[1].Value().Kind()))
	}
	if args[0].IsNullish() {
		return result.Null()
	}
	needle := args[0].Value()
	folded := ternFalse
	for _, candidate := range args[1].Value().Array() {
		switch equalsTernary(needle, candidate) {
		case ternTrue:
			return result.BooleanOf(true)
		case ternUnknown:
			folded = ternUnknown
		}
	}
	return folded.result()
}

// logicalExtreme implements logical_maximum/logical_minimum: error and null
// operands are skipped whenever at least one concrete value exists. Values
// of different type classes compare by the total type-class order, so a
// number loses to a string under logical_maximum. Ties across the
// Integer/Double divide keep the earlier operand.
func logicalExtreme(op Operator, wantGreater bool) Func {
	return func(args []result.Result) result.Result {
		if len(args) == 0 {
			return result.Err(result.InvalidArgument("%s expects at least one operand", op))
		}
		var best *value.Value
		var firstErr error
		sawNullish := false
		for _, a := range args {
			switch {
			case a.IsError():
				if firstErr == nil {
					firstErr = a.Err()
				}
			case a.IsNullish():
				sawNullish = true
			default:
				v := a.Value()
				if best == nil {
					best = &v
					continue
				}
				c := value.Compare(v, *best)
				if (wantGreater && c > 0) || (!wantGreater && c < 0) {
					best = &v
				}
			}
		}
		switch {
		case best != nil:
			return result.Of(*best)
		case firstErr != nil:
			return result.Err(firstErr)
		case sawNullish:
			return result.Null()
		}
		return result.Null()
	}
}
