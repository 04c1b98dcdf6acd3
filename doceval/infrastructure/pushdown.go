package infrastructure

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/krew-solutions/doceval-go/doceval/expression"
	"github.com/krew-solutions/doceval-go/doceval/expression/operators"
	"github.com/krew-solutions/doceval-go/doceval/value"
)

// ErrUnsupportedPushdown marks an expression the SQL compiler cannot narrow
// with. Callers fall back to a full scan plus in-process evaluation.
var ErrUnsupportedPushdown = errors.New("expression is not pushdown-compatible")

// Compile renders a predicate as a WHERE fragment over one jsonb column.
//
// The fragment is a SUPERSET filter: it may admit rows the evaluator later
// rejects, but it never drops a row the evaluator would accept. The store
// re-evaluates every fetched row, so approximation only costs bandwidth.
// Operators that cannot keep the superset guarantee return
// ErrUnsupportedPushdown.
func Compile(column string, expr expression.Visitable) (sql string, params []any, err error) {
	v := NewPushdownVisitor(column)
	if err := expr.Accept(v); err != nil {
		return "", nil, err
	}
	return v.Result()
}

func NewPushdownVisitor(column string) *PushdownVisitor {
	return &PushdownVisitor{column: column}
}

// PushdownVisitor compiles the supported predicate subset to SQL. It tracks
// whether the fragment built so far is exact or merely a superset: NOT flips
// false positives into false negatives, so it only accepts exact operands.
type PushdownVisitor struct {
	column string
	sql    strings.Builder
	params []any
	exact  bool
}

func (v *PushdownVisitor) Result() (sql string, params []any, err error) {
	return v.sql.String(), v.params, nil
}

func (v *PushdownVisitor) VisitConstant(n expression.ConstantNode) error {
	// Constants only appear as operands of supported calls; a bare constant
	// predicate has nothing to narrow with.
	return ErrUnsupportedPushdown
}

func (v *PushdownVisitor) VisitField(n expression.FieldNode) error {
	return ErrUnsupportedPushdown
}

func (v *PushdownVisitor) VisitCall(n expression.CallNode) error {
	switch n.Operator() {
	case operators.OperatorAnd, operators.OperatorOr:
		return v.visitLogical(n)
	case operators.OperatorNot:
		return v.visitNot(n)
	case operators.OperatorExists:
		return v.visitExists(n)
	case operators.OperatorIsNull:
		return v.visitIsNull(n)
	case operators.OperatorEq:
		return v.visitEquality(n, "=", true)
	case operators.OperatorNeq:
		return v.visitEquality(n, "<>", false)
	}
	return ErrUnsupportedPushdown
}

func (v *PushdownVisitor) visitLogical(n expression.CallNode) error {
	if len(n.Args()) == 0 {
		return ErrUnsupportedPushdown
	}
	joiner := " AND "
	if n.Operator() == operators.OperatorOr {
		joiner = " OR "
	}
	allExact := true
	v.sql.WriteString("(")
	for i, arg := range n.Args() {
		if i > 0 {
			v.sql.WriteString(joiner)
		}
		if err := arg.Accept(v); err != nil {
			return err
		}
		allExact = allExact && v.exact
	}
	v.sql.WriteString(")")
	v.exact = allExact
	return nil
}

func (v *PushdownVisitor) visitNot(n expression.CallNode) error {
	if len(n.Args()) != 1 {
		return ErrUnsupportedPushdown
	}
	v.sql.WriteString("NOT (")
	if err := n.Args()[0].Accept(v); err != nil {
		return err
	}
	if !v.exact {
		// Negating an approximate fragment would turn its false positives
		// into lost rows.
		return ErrUnsupportedPushdown
	}
	v.sql.WriteString(")")
	return nil
}

func (v *PushdownVisitor) visitExists(n expression.CallNode) error {
	path, ok := fieldPathArg(n, 0, 1)
	if !ok {
		return ErrUnsupportedPushdown
	}
	// jsonb #> yields SQL NULL only when the path is absent; a stored JSON
	// null is a non-NULL 'null'::jsonb. That matches exists semantics.
	fmt.Fprintf(&v.sql, "(%s #> '%s') IS NOT NULL", v.column, pgPath(path))
	v.exact = true
	return nil
}

func (v *PushdownVisitor) visitIsNull(n expression.CallNode) error {
	path, ok := fieldPathArg(n, 0, 1)
	if !ok {
		return ErrUnsupportedPushdown
	}
	fmt.Fprintf(&v.sql, "(%s #> '%s') = 'null'::jsonb", v.column, pgPath(path))
	v.exact = true
	return nil
}

// visitEquality pushes eq and neq when one side is a field and the other a
// string or boolean constant. Those kinds encode without an envelope, so
// jsonb equality agrees with evaluator equality and eq stays exact. neq is
// a superset only: a stored JSON null compares unequal in SQL but yields
// null in the evaluator.
func (v *PushdownVisitor) visitEquality(n expression.CallNode, sqlOp string, exact bool) error {
	if len(n.Args()) != 2 {
		return ErrUnsupportedPushdown
	}
	field, constant, ok := fieldConstPair(n.Args()[0], n.Args()[1])
	if !ok || !safePath(field.Path()) {
		return ErrUnsupportedPushdown
	}
	kind := constant.Value().Kind()
	if kind != value.KindString && kind != value.KindBoolean {
		return ErrUnsupportedPushdown
	}
	encoded, err := EncodeValue(constant.Value())
	if err != nil {
		return err
	}
	v.params = append(v.params, string(encoded))
	fmt.Fprintf(&v.sql, "(%s #> '%s') %s $%d::jsonb", v.column, pgPath(field.Path()), sqlOp, len(v.params))
	v.exact = exact
	return nil
}

func fieldConstPair(a, b expression.Visitable) (expression.FieldNode, expression.ConstantNode, bool) {
	if f, ok := unwrapBoolean(a).(expression.FieldNode); ok {
		if c, ok := unwrapBoolean(b).(expression.ConstantNode); ok {
			return f, c, true
		}
	}
	if f, ok := unwrapBoolean(b).(expression.FieldNode); ok {
		if c, ok := unwrapBoolean(a).(expression.ConstantNode); ok {
			return f, c, true
		}
	}
	return expression.FieldNode{}, expression.ConstantNode{}, false
}

func fieldPathArg(n expression.CallNode, idx, arity int) ([]string, bool) {
	if len(n.Args()) != arity {
		return nil, false
	}
	f, ok := unwrapBoolean(n.Args()[idx]).(expression.FieldNode)
	if !ok || !safePath(f.Path()) {
		return nil, false
	}
	return f.Path(), true
}

// unwrapBoolean strips the BooleanExpression view so the type switches see
// the concrete node.
func unwrapBoolean(e expression.Visitable) expression.Visitable {
	if b, ok := e.(expression.BooleanExpression); ok {
		return b.Visitable
	}
	return e
}

// pgPath renders a field path as a jsonb text-array literal, e.g. {a,b}.
func pgPath(path []string) string {
	return "{" + strings.Join(path, ",") + "}"
}

// safePath admits only identifier-like segments so pgPath never needs
// quoting. Anything else falls back to a scan.
func safePath(path []string) bool {
	for _, seg := range path {
		if seg == "" {
			return false
		}
		for _, r := range seg {
			switch {
			case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			default:
				return false
			}
		}
	}
	return true
}
