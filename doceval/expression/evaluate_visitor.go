package expression

import (
	"github.com/pkg/errors"

	"github.com/krew-solutions/doceval-go/doceval/document"
	"github.com/krew-solutions/doceval-go/doceval/expression/operators"
	"github.com/krew-solutions/doceval-go/doceval/result"
	"github.com/krew-solutions/doceval-go/doceval/value"
)

// Evaluate walks the expression against one document using the default
// operator set. The returned Go error is reserved for malformed trees
// (unknown operator, conditional with the wrong arity); data-dependent
// failures come back as an Error result instead.
func Evaluate(expr Visitable, doc document.Document) (result.Result, error) {
	return EvaluateWith(expr, doc, operators.DefaultRegistry())
}

// EvaluateWith is Evaluate with a caller-supplied registry.
func EvaluateWith(expr Visitable, doc document.Document, registry *operators.Registry) (result.Result, error) {
	v := NewEvaluateVisitor(doc, registry)
	if err := expr.Accept(v); err != nil {
		return result.Result{}, err
	}
	return v.Current(), nil
}

func NewEvaluateVisitor(doc document.Document, registry *operators.Registry) *EvaluateVisitor {
	return &EvaluateVisitor{
		doc:      doc,
		registry: registry,
	}
}

// EvaluateVisitor computes the result of each visited node into current.
// A visitor is single-use state for one evaluation; build a fresh one per
// document (or use Evaluate, which does).
type EvaluateVisitor struct {
	doc      document.Document
	registry *operators.Registry
	current  result.Result
}

func (v *EvaluateVisitor) Current() result.Result {
	return v.current
}

func (v *EvaluateVisitor) VisitConstant(n ConstantNode) error {
	v.current = result.Of(n.Value())
	return nil
}

func (v *EvaluateVisitor) VisitField(n FieldNode) error {
	v.current = v.doc.Resolve(n.Path())
	return nil
}

func (v *EvaluateVisitor) VisitCall(n CallNode) error {
	if n.Operator() == operators.OperatorCond {
		return v.visitCond(n)
	}
	args := make([]result.Result, len(n.Args()))
	for i, arg := range n.Args() {
		if err := arg.Accept(v); err != nil {
			return err
		}
		args[i] = v.current
	}
	out, err := v.registry.Exec(n.Operator(), args)
	if err != nil {
		return err
	}
	v.current = out
	return nil
}

// visitCond is the one lazy operator: only the branch selected by the
// predicate is evaluated, so errors in the untaken branch never surface.
func (v *EvaluateVisitor) visitCond(n CallNode) error {
	if len(n.Args()) != 3 {
		return errors.Errorf("cond expects 3 operands, got %d", len(n.Args()))
	}
	if err := n.Args()[0].Accept(v); err != nil {
		return err
	}
	cond := v.current
	if cond.IsError() {
		return nil
	}
	if !cond.IsValue() || cond.Value().Kind() != value.KindBoolean {
		v.current = result.Err(result.TypeMismatch("cond expects a boolean condition"))
		return nil
	}
	branch := n.Args()[2]
	if cond.Value().Boolean() {
		branch = n.Args()[1]
	}
	return branch.Accept(v)
}
