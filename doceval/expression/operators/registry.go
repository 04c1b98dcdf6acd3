package operators

import (
	"github.com/pkg/errors"

	"github.com/krew-solutions/doceval-go/doceval/result"
)

// Func is one operator's semantic rule: a pure function from the already
// evaluated operands to an evaluation outcome. Semantic failures (wrong
// operand kind, bad argument, overflow) are Error results, never Go errors.
type Func func(args []result.Result) result.Result

// Registry maps operator kinds to their rules. A populated registry is
// read-only and safe for concurrent evaluations.
type Registry struct {
	funcs map[Operator]Func
}

func NewRegistry() *Registry {
	return &Registry{funcs: make(map[Operator]Func)}
}

func (r *Registry) Register(op Operator, fn Func) {
	r.funcs[op] = fn
}

// Exec dispatches to the registered rule. The Go error is reserved for an
// unknown operator, which is a malformed tree rather than a data-dependent
// evaluation failure.
func (r *Registry) Exec(op Operator, args []result.Result) (result.Result, error) {
	fn, ok := r.funcs[op]
	if !ok {
		return result.Result{}, errors.Errorf("operator %q is not registered", op)
	}
	return fn(args), nil
}

func (r *Registry) Supports(op Operator) bool {
	_, ok := r.funcs[op]
	return ok
}
