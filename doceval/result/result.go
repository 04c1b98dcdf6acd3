package result

import (
	"github.com/krew-solutions/doceval-go/doceval/value"
)

// Kind discriminates the three evaluation outcomes. Unset means the
// expression referred to data that does not exist, which is not the same
// thing as an explicit null value.
type Kind int

const (
	KindValue Kind = iota
	KindUnset
	KindError
)

// Result is the outcome of evaluating one expression node against one
// document. The zero Result is a null value.
type Result struct {
	kind  Kind
	value value.Value
	err   error
}

func Of(v value.Value) Result {
	return Result{kind: KindValue, value: v}
}

func Unset() Result {
	return Result{kind: KindUnset}
}

func Err(err error) Result {
	return Result{kind: KindError, err: err}
}

// Null is shorthand for Of(value.Null()), the "unknown" state of
// three-valued logic.
func Null() Result {
	return Of(value.Null())
}

func BooleanOf(b bool) Result {
	return Of(value.Boolean(b))
}

func (r Result) Kind() Kind {
	return r.kind
}

func (r Result) IsValue() bool {
	return r.kind == KindValue
}

func (r Result) IsUnset() bool {
	return r.kind == KindUnset
}

func (r Result) IsError() bool {
	return r.kind == KindError
}

// IsNullish reports whether the result is Unset or an explicit null value.
// Most operators mirror both states the same way.
func (r Result) IsNullish() bool {
	return r.kind == KindUnset || (r.kind == KindValue && r.value.IsNull())
}

func (r Result) Value() value.Value {
	return r.value
}

func (r Result) Err() error {
	return r.err
}

// IsTrue reports a concrete boolean true. Null, Unset, Error and non-boolean
// values are all not true.
func (r Result) IsTrue() bool {
	return r.kind == KindValue && r.value.Kind() == value.KindBoolean && r.value.Boolean()
}

func (r Result) String() string {
	switch r.kind {
	case KindUnset:
		return "unset"
	case KindError:
		return "error(" + r.err.Error() + ")"
	}
	return r.value.String()
}
