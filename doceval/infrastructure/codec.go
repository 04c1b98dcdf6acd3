package infrastructure

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"math"
	"strings"

	"github.com/pkg/errors"

	"github.com/krew-solutions/doceval-go/doceval/document"
	"github.com/krew-solutions/doceval-go/doceval/value"
)

// The jsonb codec keeps kinds that JSON cannot express natively inside an
// envelope object keyed by typeKey. Integers travel as plain JSON numbers;
// doubles always take the envelope so 1 and 1.0 survive a round trip.
const typeKey = "__type__"

const (
	typeDouble    = "double"
	typeBytes     = "bytes"
	typeTimestamp = "timestamp"
	typeGeoPoint  = "geopoint"
	typeReference = "reference"
	typeVector    = "vector"
	typeMap       = "map"
)

// EncodeDocument renders a document as jsonb-ready JSON text.
func EncodeDocument(doc document.Document) ([]byte, error) {
	fields := make(map[string]any, len(doc))
	for k, v := range doc {
		enc, err := encodeValue(v)
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", k)
		}
		fields[k] = enc
	}
	return json.Marshal(fields)
}

// DecodeDocument parses jsonb text produced by EncodeDocument.
func DecodeDocument(data []byte) (document.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "decode document")
	}
	doc := make(document.Document, len(raw))
	for k, rv := range raw {
		v, err := decodeValue(rv)
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", k)
		}
		doc[k] = v
	}
	return doc, nil
}

// EncodeValue renders a single value as JSON text, used for pushdown
// parameters.
func EncodeValue(v value.Value) ([]byte, error) {
	enc, err := encodeValue(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(enc)
}

func encodeValue(v value.Value) (any, error) {
	switch v.Kind() {
	case value.KindNull:
		return nil, nil
	case value.KindBoolean:
		return v.Boolean(), nil
	case value.KindInteger:
		return v.Integer(), nil
	case value.KindDouble:
		return envelope(typeDouble, map[string]any{"value": encodeDouble(v.Double())}), nil
	case value.KindString:
		return v.Str(), nil
	case value.KindBytes:
		return envelope(typeBytes, map[string]any{"value": base64.StdEncoding.EncodeToString(v.Bytes())}), nil
	case value.KindTimestamp:
		return envelope(typeTimestamp, map[string]any{"seconds": v.Seconds(), "nanos": v.Nanos()}), nil
	case value.KindGeoPoint:
		return envelope(typeGeoPoint, map[string]any{"latitude": v.Latitude(), "longitude": v.Longitude()}), nil
	case value.KindReference:
		return envelope(typeReference, map[string]any{"path": v.ReferencePath()}), nil
	case value.KindVector:
		return envelope(typeVector, map[string]any{"value": v.Vector()}), nil
	case value.KindArray:
		arr := v.Array()
		out := make([]any, len(arr))
		for i, el := range arr {
			enc, err := encodeValue(el)
			if err != nil {
				return nil, err
			}
			out[i] = enc
		}
		return out, nil
	case value.KindMap:
		fields := v.Fields()
		out := make(map[string]any, len(fields))
		for k, el := range fields {
			enc, err := encodeValue(el)
			if err != nil {
				return nil, err
			}
			out[k] = enc
		}
		// A user map holding the envelope key needs its own envelope to
		// stay distinguishable on decode.
		if _, clash := fields[typeKey]; clash {
			return envelope(typeMap, map[string]any{"value": out}), nil
		}
		return out, nil
	}
	return nil, errors.Errorf("unsupported kind %s", v.Kind())
}

func encodeDouble(f float64) any {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return f
}

func envelope(typ string, fields map[string]any) map[string]any {
	fields[typeKey] = typ
	return fields
}

func decodeValue(raw any) (value.Value, error) {
	switch rv := raw.(type) {
	case nil:
		return value.Null(), nil
	case bool:
		return value.Boolean(rv), nil
	case string:
		return value.String(rv), nil
	case json.Number:
		return decodeNumber(rv)
	case []any:
		out := make([]value.Value, len(rv))
		for i, el := range rv {
			dec, err := decodeValue(el)
			if err != nil {
				return value.Value{}, err
			}
			out[i] = dec
		}
		return value.Array(out...), nil
	case map[string]any:
		if typ, ok := rv[typeKey].(string); ok {
			return decodeEnvelope(typ, rv)
		}
		return decodeMap(rv)
	}
	return value.Value{}, errors.Errorf("unsupported JSON value %T", raw)
}

// decodeNumber maps bare JSON numbers to integers. Doubles are enveloped on
// encode, so a fractional bare number only appears in hand-written data;
// tolerate it as a double.
func decodeNumber(n json.Number) (value.Value, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		i, err := n.Int64()
		if err == nil {
			return value.Integer(i), nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return value.Value{}, errors.Wrapf(err, "number %q", s)
	}
	return value.Double(f), nil
}

func decodeMap(raw map[string]any) (value.Value, error) {
	out := make(map[string]value.Value, len(raw))
	for k, el := range raw {
		dec, err := decodeValue(el)
		if err != nil {
			return value.Value{}, err
		}
		out[k] = dec
	}
	return value.Map(out), nil
}

func decodeEnvelope(typ string, raw map[string]any) (value.Value, error) {
	switch typ {
	case typeDouble:
		switch inner := raw["value"].(type) {
		case string:
			return decodeNonFinite(inner)
		case json.Number:
			f, err := inner.Float64()
			if err != nil {
				return value.Value{}, errors.Wrap(err, "double envelope")
			}
			return value.Double(f), nil
		}
		return value.Value{}, errors.New("double envelope: missing value")
	case typeBytes:
		s, ok := raw["value"].(string)
		if !ok {
			return value.Value{}, errors.New("bytes envelope: missing value")
		}
		b, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return value.Value{}, errors.Wrap(err, "bytes envelope")
		}
		return value.Bytes(b), nil
	case typeTimestamp:
		seconds, err := int64Field(raw, "seconds")
		if err != nil {
			return value.Value{}, err
		}
		nanos, err := int64Field(raw, "nanos")
		if err != nil {
			return value.Value{}, err
		}
		return value.Timestamp(seconds, int32(nanos)), nil
	case typeGeoPoint:
		lat, err := float64Field(raw, "latitude")
		if err != nil {
			return value.Value{}, err
		}
		lng, err := float64Field(raw, "longitude")
		if err != nil {
			return value.Value{}, err
		}
		return value.GeoPoint(lat, lng), nil
	case typeReference:
		path, ok := raw["path"].(string)
		if !ok {
			return value.Value{}, errors.New("reference envelope: missing path")
		}
		return value.Reference(path), nil
	case typeVector:
		arr, ok := raw["value"].([]any)
		if !ok {
			return value.Value{}, errors.New("vector envelope: missing value")
		}
		out := make([]float64, len(arr))
		for i, el := range arr {
			n, ok := el.(json.Number)
			if !ok {
				return value.Value{}, errors.Errorf("vector envelope: component %d is %T", i, el)
			}
			f, err := n.Float64()
			if err != nil {
				return value.Value{}, errors.Wrapf(err, "vector envelope: component %d", i)
			}
			out[i] = f
		}
		return value.Vector(out...), nil
	case typeMap:
		inner, ok := raw["value"].(map[string]any)
		if !ok {
			return value.Value{}, errors.New("map envelope: missing value")
		}
		return decodeMap(inner)
	}
	return value.Value{}, errors.Errorf("unknown envelope type %q", typ)
}

func decodeNonFinite(s string) (value.Value, error) {
	switch s {
	case "NaN":
		return value.Double(math.NaN()), nil
	case "Infinity":
		return value.Double(math.Inf(1)), nil
	case "-Infinity":
		return value.Double(math.Inf(-1)), nil
	}
	return value.Value{}, errors.Errorf("unknown double literal %q", s)
}

func int64Field(raw map[string]any, key string) (int64, error) {
	n, ok := raw[key].(json.Number)
	if !ok {
		return 0, errors.Errorf("envelope: missing %s", key)
	}
	i, err := n.Int64()
	if err != nil {
		return 0, errors.Wrapf(err, "envelope: %s", key)
	}
	return i, nil
}

func float64Field(raw map[string]any, key string) (float64, error) {
	n, ok := raw[key].(json.Number)
	if !ok {
		return 0, errors.Errorf("envelope: missing %s", key)
	}
	f, err := n.Float64()
	if err != nil {
		return 0, errors.Wrapf(err, "envelope: %s", key)
	}
	return f, nil
}
