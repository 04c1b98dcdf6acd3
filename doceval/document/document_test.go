package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krew-solutions/doceval-go/doceval/result"
	"github.com/krew-solutions/doceval-go/doceval/value"
)

func TestParsePath(t *testing.T) {
	assert.Equal(t, FieldPath{"a"}, ParsePath("a"))
	assert.Equal(t, FieldPath{"a", "b", "c"}, ParsePath("a.b.c"))
}

func sampleDoc() Document {
	return Document{
		"name": value.String("ada"),
		"age":  value.Integer(36),
		"address": value.Map(map[string]value.Value{
			"city": value.String("London"),
			"geo":  value.GeoPoint(51.5, -0.1),
		}),
		"tags":    value.Array(value.String("math")),
		"retired": value.Null(),
	}
}

func TestResolveTopLevel(t *testing.T) {
	res := sampleDoc().Resolve(ParsePath("name"))
	require.True(t, res.IsValue())
	assert.Equal(t, "ada", res.Value().Str())
}

func TestResolveNested(t *testing.T) {
	res := sampleDoc().Resolve(ParsePath("address.city"))
	require.True(t, res.IsValue())
	assert.Equal(t, "London", res.Value().Str())
}

func TestResolveAbsentFieldIsUnset(t *testing.T) {
	assert.True(t, sampleDoc().Resolve(ParsePath("salary")).IsUnset())
}

func TestResolveAbsentNestedFieldIsUnset(t *testing.T) {
	// The map exists but the key does not: still unset, not an error.
	assert.True(t, sampleDoc().Resolve(ParsePath("address.zip")).IsUnset())
}

func TestResolveNullIsAValue(t *testing.T) {
	res := sampleDoc().Resolve(ParsePath("retired"))
	require.True(t, res.IsValue())
	assert.True(t, res.Value().IsNull())
	assert.False(t, res.IsUnset())
}

func TestResolveThroughNonMapIsError(t *testing.T) {
	res := sampleDoc().Resolve(ParsePath("name.first"))
	require.True(t, res.IsError())
	assert.True(t, result.IsKind(res.Err(), result.ErrPathTraversal))
}

func TestResolveThroughArrayIsError(t *testing.T) {
	// Arrays do not support dotted navigation.
	res := sampleDoc().Resolve(ParsePath("tags.0"))
	require.True(t, res.IsError())
	assert.True(t, result.IsKind(res.Err(), result.ErrPathTraversal))
}

func TestResolveUnsetBeatsTraversalWhenFieldAbsent(t *testing.T) {
	// Navigation through an absent field is unset even with more segments
	// left: absence wins over traversal.
	assert.True(t, sampleDoc().Resolve(ParsePath("missing.deep.path")).IsUnset())
}

func TestResolveEmptyPath(t *testing.T) {
	res := sampleDoc().Resolve(nil)
	require.True(t, res.IsError())
	assert.True(t, result.IsKind(res.Err(), result.ErrInvalidArgument))
}
