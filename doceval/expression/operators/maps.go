package operators

import (
	"github.com/krew-solutions/doceval-go/doceval/result"
	"github.com/krew-solutions/doceval-go/doceval/value"
)

// map_get distinguishes absence from failure: a missing key is Unset, a
// non-map subject or non-string key is an error.
func evalMapGet(args []result.Result) result.Result {
	if len(args) != 2 {
		return wrongArity(OperatorMapGet, len(args), 2)
	}
	if err := firstError(args); err != nil {
		return result.Err(err)
	}
	subject, key := args[0], args[1]
	if !key.IsNullish() && key.Value().Kind() != value.KindString {
		return result.Err(result.TypeMismatch("map_get expects a string key, got %s", key.Value().Kind()))
	}
	if subject.IsNullish() {
		return result.Null()
	}
	if !subject.Value().IsMap() {
		return result.Err(result.TypeMismatch("map_get expects a map, got %s", subject.Value().Kind()))
	}
	if key.IsNullish() {
		return result.Null()
	}
	entry, ok := subject.Value().Fields()[key.Value().Str()]
	if !ok {
		return result.Unset()
	}
	return result.Of(entry)
}
