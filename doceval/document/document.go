// Package document adapts a decoded document snapshot for field-reference
// resolution. Documents are read-only inputs; one evaluation never mutates
// or retains them.
package document

import (
	"strings"

	"github.com/krew-solutions/doceval-go/doceval/result"
	"github.com/krew-solutions/doceval-go/doceval/value"
)

// FieldPath is a parsed dotted path, one segment per nesting level.
type FieldPath []string

func ParsePath(path string) FieldPath {
	return strings.Split(path, ".")
}

func (p FieldPath) String() string {
	return strings.Join(p, ".")
}

// Document maps top-level field names to values.
type Document map[string]value.Value

func New(fields map[string]value.Value) Document {
	d := make(Document, len(fields))
	for k, v := range fields {
		d[k] = v
	}
	return d
}

// Resolve walks a field path through the document. A field absent at any
// single level is Unset; navigating through a value that is not a map is a
// path traversal error. The two are deliberately distinct outcomes.
func (d Document) Resolve(path FieldPath) result.Result {
	if len(path) == 0 || path[0] == "" {
		return result.Err(result.InvalidArgument("empty field path"))
	}
	current, ok := d[path[0]]
	if !ok {
		return result.Unset()
	}
	for _, segment := range path[1:] {
		if !current.IsMap() {
			return result.Err(result.PathTraversal(
				"cannot navigate %q through %s value", segment, current.Kind()))
		}
		child, ok := current.Fields()[segment]
		if !ok {
			return result.Unset()
		}
		current = child
	}
	return result.Of(current)
}
