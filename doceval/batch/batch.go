// Package batch filters document collections through a boolean expression.
package batch

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/krew-solutions/doceval-go/doceval/document"
	"github.com/krew-solutions/doceval-go/doceval/expression"
)

// ErrorPolicy decides what happens to a document whose predicate does not
// settle on true or false.
type ErrorPolicy int

const (
	// PolicySkip drops documents with Error or Unset outcomes silently.
	// Null outcomes are treated as not-matching.
	PolicySkip ErrorPolicy = iota
	// PolicyCollect drops them too but reports every Error outcome in the
	// aggregated return error.
	PolicyCollect
	// PolicyFailFast stops on the first Error outcome.
	PolicyFailFast
)

// Filter keeps the documents for which the predicate evaluates to true.
// Unset and null outcomes never match under any policy. The Go error is
// non-nil for malformed trees regardless of policy.
func Filter(predicate expression.BooleanExpression, docs []document.Document, policy ErrorPolicy) ([]document.Document, error) {
	var matched []document.Document
	var collected *multierror.Error
	for i, doc := range docs {
		res, err := expression.Evaluate(predicate, doc)
		if err != nil {
			return nil, err
		}
		if res.IsError() {
			switch policy {
			case PolicyFailFast:
				return nil, errors.Wrapf(res.Err(), "document %d", i)
			case PolicyCollect:
				collected = multierror.Append(collected, errors.Wrapf(res.Err(), "document %d", i))
			}
			continue
		}
		if res.IsTrue() {
			matched = append(matched, doc)
		}
	}
	return matched, collected.ErrorOrNil()
}
