package infrastructure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krew-solutions/doceval-go/doceval/document"
	"github.com/krew-solutions/doceval-go/doceval/value"
)

func roundTrip(t *testing.T, doc document.Document) document.Document {
	t.Helper()
	data, err := EncodeDocument(doc)
	require.NoError(t, err)
	out, err := DecodeDocument(data)
	require.NoError(t, err)
	return out
}

func TestCodecRoundTripScalars(t *testing.T) {
	doc := document.Document{
		"null":   value.Null(),
		"bool":   value.Boolean(true),
		"int":    value.Integer(math.MaxInt64),
		"double": value.Double(1.5),
		"string": value.String("héllo"),
	}
	out := roundTrip(t, doc)
	for k, want := range doc {
		got, ok := out[k]
		require.True(t, ok, "field %q missing after round trip", k)
		assert.Equal(t, want.Kind(), got.Kind(), "field %q", k)
		assert.True(t, value.Equals(want, got), "field %q: %s != %s", k, value.CanonicalID(want), value.CanonicalID(got))
	}
}

func TestCodecIntegerDoubleStayDistinct(t *testing.T) {
	// 1 and 1.0 are the same JSON number; the envelope keeps the kinds
	// apart across a round trip.
	out := roundTrip(t, document.Document{
		"i": value.Integer(1),
		"d": value.Double(1.0),
	})
	assert.Equal(t, value.KindInteger, out["i"].Kind())
	assert.Equal(t, value.KindDouble, out["d"].Kind())
}

func TestCodecNonFiniteDoubles(t *testing.T) {
	out := roundTrip(t, document.Document{
		"nan":  value.Double(math.NaN()),
		"pinf": value.Double(math.Inf(1)),
		"ninf": value.Double(math.Inf(-1)),
	})
	assert.True(t, out["nan"].IsNaN())
	assert.True(t, math.IsInf(out["pinf"].Double(), 1))
	assert.True(t, math.IsInf(out["ninf"].Double(), -1))
}

func TestCodecEnvelopedKinds(t *testing.T) {
	doc := document.Document{
		"bytes": value.Bytes([]byte{0x00, 0xff, 0x10}),
		"ts":    value.Timestamp(253402300799, 999999999),
		"geo":   value.GeoPoint(51.5, -0.1),
		"ref":   value.Reference("users/ada/posts/1"),
		"vec":   value.Vector(0.1, 0.2, 0.3),
	}
	out := roundTrip(t, doc)
	for k, want := range doc {
		got := out[k]
		assert.Equal(t, want.Kind(), got.Kind(), "field %q", k)
		assert.True(t, value.Equals(want, got), "field %q", k)
	}
}

func TestCodecNestedComposites(t *testing.T) {
	doc := document.Document{
		"profile": value.Map(map[string]value.Value{
			"scores": value.Array(value.Integer(1), value.Double(2.5), value.Null()),
			"joined": value.Timestamp(1700000000, 0),
		}),
	}
	out := roundTrip(t, doc)
	assert.True(t, value.Equals(doc["profile"], out["profile"]))
	// Kinds survive inside composites too.
	assert.Equal(t, value.KindDouble, out["profile"].Fields()["scores"].Array()[1].Kind())
}

func TestCodecUserMapWithReservedKey(t *testing.T) {
	doc := document.Document{
		"tricky": value.Map(map[string]value.Value{
			"__type__": value.String("not an envelope"),
			"other":    value.Integer(1),
		}),
	}
	out := roundTrip(t, doc)
	require.Equal(t, value.KindMap, out["tricky"].Kind())
	assert.True(t, value.Equals(doc["tricky"], out["tricky"]))
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := DecodeDocument([]byte(`{"x": `))
	require.Error(t, err)
	_, err = DecodeDocument([]byte(`{"x": {"__type__": "wat"}}`))
	require.Error(t, err)
}

func TestDecodeBareFractionalNumber(t *testing.T) {
	// Hand-written jsonb without an envelope still decodes, as a double.
	doc, err := DecodeDocument([]byte(`{"x": 2.5}`))
	require.NoError(t, err)
	assert.Equal(t, value.KindDouble, doc["x"].Kind())
	assert.Equal(t, 2.5, doc["x"].Double())
}
