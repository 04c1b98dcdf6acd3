package operators

import (
	"github.com/krew-solutions/doceval-go/doceval/result"
	"github.com/krew-solutions/doceval-go/doceval/value"
)

// classifyBoolean maps one operand into the three-valued logic domain.
// A concrete non-boolean operand is an error of its own.
func classifyBoolean(op Operator, a result.Result) (t ternary, err error) {
	switch {
	case a.IsError():
		return ternUnknown, a.Err()
	case a.IsNullish():
		return ternUnknown, nil
	case a.Value().Kind() == value.KindBoolean:
		if a.Value().Boolean() {
			return ternTrue, nil
		}
		return ternFalse, nil
	}
	return ternUnknown, result.TypeMismatch("%s expects boolean operands, got %s", op, a.Value().Kind())
}

// evalAnd: false dominates every other operand including errors; otherwise
// error dominates null, and null dominates true.
func evalAnd(args []result.Result) result.Result {
	var firstErr error
	sawNull := false
	for _, a := range args {
		t, err := classifyBoolean(OperatorAnd, a)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		switch t {
		case ternFalse:
			return result.BooleanOf(false)
		case ternUnknown:
			sawNull = true
		}
	}
	switch {
	case firstErr != nil:
		return result.Err(firstErr)
	case sawNull:
		return result.Null()
	}
	return result.BooleanOf(true)
}

// evalOr: the mirror image of evalAnd, with true dominant.
func evalOr(args []result.Result) result.Result {
	var firstErr error
	sawNull := false
	for _, a := range args {
		t, err := classifyBoolean(OperatorOr, a)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		switch t {
		case ternTrue:
			return result.BooleanOf(true)
		case ternUnknown:
			sawNull = true
		}
	}
	switch {
	case firstErr != nil:
		return result.Err(firstErr)
	case sawNull:
		return result.Null()
	}
	return result.BooleanOf(false)
}

// evalXor has no dominant value: the parity of true operands only exists if
// every operand is a concrete boolean, so errors beat nulls and nulls beat
// any answer. This is deliberately stricter than or/and.
func evalXor(args []result.Result) result.Result {
	for _, a := range args {
		if a.IsError() {
			return result.Err(a.Err())
		}
	}
	for _, a := range args {
		if !a.IsNullish() && a.Value().Kind() != value.KindBoolean {
			return result.Err(result.TypeMismatch(
				"xor expects boolean operands, got %s", a.Value().Kind()))
		}
	}
	if anyNullish(args) {
		return result.Null()
	}
	parity := false
	for _, a := range args {
		if a.Value().Boolean() {
			parity = !parity
		}
	}
	return result.BooleanOf(parity)
}

func evalNot(args []result.Result) result.Result {
	if len(args) != 1 {
		return wrongArity(OperatorNot, len(args), 1)
	}
	a := args[0]
	switch {
	case a.IsError():
		return result.Err(a.Err())
	case a.IsNullish():
		return result.Null()
	case a.Value().Kind() == value.KindBoolean:
		return result.BooleanOf(!a.Value().Boolean())
	}
	return result.Err(result.TypeMismatch("not expects a boolean operand, got %s", a.Value().Kind()))
}
