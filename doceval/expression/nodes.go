// Package expression holds the immutable expression tree, its builder
// constructors and the tree-walking evaluator. Trees are built once and
// evaluated repeatedly; nothing in this package mutates a node after
// construction, so one tree may be evaluated from many goroutines.
package expression

import (
	"github.com/krew-solutions/doceval-go/doceval/document"
	"github.com/krew-solutions/doceval-go/doceval/expression/operators"
	"github.com/krew-solutions/doceval-go/doceval/value"
)

type Visitable interface {
	Accept(Visitor) error
}

type Visitor interface {
	VisitConstant(ConstantNode) error
	VisitField(FieldNode) error
	VisitCall(CallNode) error
}

func Constant(v value.Value) ConstantNode {
	return ConstantNode{value: v}
}

type ConstantNode struct {
	value value.Value
}

func (n ConstantNode) Value() value.Value {
	return n.value
}

func (n ConstantNode) Accept(v Visitor) error {
	return v.VisitConstant(n)
}

// Field references a dotted path into the document, e.g. "awards.hugo".
func Field(path string) FieldNode {
	return FieldNode{path: document.ParsePath(path)}
}

type FieldNode struct {
	path document.FieldPath
}

func (n FieldNode) Path() document.FieldPath {
	return n.path
}

func (n FieldNode) Accept(v Visitor) error {
	return v.VisitField(n)
}

func Call(op operators.Operator, args ...Visitable) CallNode {
	copied := make([]Visitable, len(args))
	copy(copied, args)
	return CallNode{op: op, args: copied}
}

type CallNode struct {
	op   operators.Operator
	args []Visitable
}

func (n CallNode) Operator() operators.Operator {
	return n.op
}

func (n CallNode) Args() []Visitable {
	return n.args
}

func (n CallNode) Accept(v Visitor) error {
	return v.VisitCall(n)
}

// BooleanExpression is a static view over a node expected to produce a
// boolean. It changes nothing about evaluation; it only lets the builder
// API state its expectations in signatures.
type BooleanExpression struct {
	Visitable
}

// AsBoolean coerces any expression into the boolean view.
func AsBoolean(e Visitable) BooleanExpression {
	return BooleanExpression{Visitable: e}
}
