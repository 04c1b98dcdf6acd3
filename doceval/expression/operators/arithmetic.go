package operators

import (
	"math"

	"github.com/krew-solutions/doceval-go/doceval/result"
	"github.com/krew-solutions/doceval-go/doceval/value"
)

// binaryNumeric builds add/subtract/multiply. Two integers stay integral
// with overflow checked; any double operand promotes the computation to
// doubles, where overflow is representable as ±Inf.
func binaryNumeric(op Operator, ints func(a, b int64) (int64, bool), doubles func(a, b float64) float64) Func {
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
		a, b := args[0].Value(), args[1].Value()
		if !a.IsNumber() || !b.IsNumber() {
			return result.Err(result.TypeMismatch("%s expects numbers, got %s and %s", op, a.Kind(), b.Kind()))
		}
		if a.Kind() == value.KindInteger && b.Kind() == value.KindInteger {
			out, ok := ints(a.Integer(), b.Integer())
			if !ok {
				return result.Err(result.OutOfRange("integer overflow in %s", op))
			}
			return result.Of(value.Integer(out))
		}
		return result.Of(value.Double(doubles(a.AsDouble(), b.AsDouble())))
	}
}

func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0) {
		return 0, false
	}
	return sum, true
}

func subInt64(a, b int64) (int64, bool) {
	if b == math.MinInt64 {
		if a >= 0 {
			return 0, false
		}
		return a - b, true
	}
	return addInt64(a, -b)
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == math.MinInt64 && b == -1 || b == math.MinInt64 && a == -1 {
		return 0, false
	}
	product := a * b
	if product/b != a {
		return 0, false
	}
	return product, true
}

func evalDivide(args []result.Result) result.Result {
	if len(args) != 2 {
		return wrongArity(OperatorDivide, len(args), 2)
	}
	if err := firstError(args); err != nil {
		return result.Err(err)
	}
	if anyNullish(args) {
		return result.Null()
	}
	a, b := args[0].Value(), args[1].Value()
	if !a.IsNumber() || !b.IsNumber() {
		return result.Err(result.TypeMismatch("divide expects numbers, got %s and %s", a.Kind(), b.Kind()))
	}
	if a.Kind() == value.KindInteger && b.Kind() == value.KindInteger {
		if b.Integer() == 0 {
			return result.Err(result.InvalidArgument("integer division by zero"))
		}
		if a.Integer() == math.MinInt64 && b.Integer() == -1 {
			return result.Err(result.OutOfRange("integer overflow in divide"))
		}
		return result.Of(value.Integer(a.Integer() / b.Integer()))
	}
	// Double division by zero yields ±Inf or NaN, which are values here.
	return result.Of(value.Double(a.AsDouble() / b.AsDouble()))
}

func evalMod(args []result.Result) result.Result {
	if len(args) != 2 {
		return wrongArity(OperatorMod, len(args), 2)
	}
	if err := firstError(args); err != nil {
		return result.Err(err)
	}
	if anyNullish(args) {
		return result.Null()
	}
	a, b := args[0].Value(), args[1].Value()
	if !a.IsNumber() || !b.IsNumber() {
		return result.Err(result.TypeMismatch("mod expects numbers, got %s and %s", a.Kind(), b.Kind()))
	}
	if a.Kind() == value.KindInteger && b.Kind() == value.KindInteger {
		if b.Integer() == 0 {
			return result.Err(result.InvalidArgument("integer modulo by zero"))
		}
		if a.Integer() == math.MinInt64 && b.Integer() == -1 {
			return result.Of(value.Integer(0))
		}
		return result.Of(value.Integer(a.Integer() % b.Integer()))
	}
	return result.Of(value.Double(math.Mod(a.AsDouble(), b.AsDouble())))
}

// sqrt mirrors null, errors on the negative domain (negative infinity
// included), passes NaN through, and preserves the sign of -0.0.
func evalSqrt(args []result.Result) result.Result {
	if len(args) != 1 {
		return wrongArity(OperatorSqrt, len(args), 1)
	}
	a := args[0]
	switch {
	case a.IsError():
		return result.Err(a.Err())
	case a.IsNullish():
		return result.Null()
	}
	v := a.Value()
	if !v.IsNumber() {
		return result.Err(result.TypeMismatch("sqrt expects a number, got %s", v.Kind()))
	}
	d := v.AsDouble()
	if math.IsNaN(d) {
		return result.Of(value.Double(math.NaN()))
	}
	if d < 0 {
		return result.Err(result.InvalidArgument("sqrt of negative number"))
	}
	// math.Sqrt(-0.0) is -0.0; d < 0 is false for the negative zero.
	return result.Of(value.Double(math.Sqrt(d)))
}
