package value

// Kind enumerates the closed set of value variants. The set mirrors the
// backend value universe; evaluation-only states (unset, error) live in the
// result package, not here.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindInteger
	KindDouble
	KindString
	KindBytes
	KindTimestamp
	KindGeoPoint
	KindReference
	KindArray
	KindMap
	KindVector
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindTimestamp:
		return "timestamp"
	case KindGeoPoint:
		return "geopoint"
	case KindReference:
		return "reference"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindVector:
		return "vector"
	}
	return "invalid"
}

// Timestamp domain, in seconds since the Unix epoch. 0001-01-01T00:00:00Z
// through 9999-12-31T23:59:59.999999999Z.
const (
	MinTimestampSeconds int64 = -62135596800
	MaxTimestampSeconds int64 = 253402300799
	MaxTimestampNanos   int32 = 999999999
)

// Value is an immutable tagged union. Construct with the package-level
// constructors; the zero Value is Null.
type Value struct {
	kind    Kind
	boolean bool
	integer int64
	double  float64
	str     string
	bytes   []byte
	seconds int64
	nanos   int32
	lat     float64
	lng     float64
	array   []Value
	fields  map[string]Value
	vector  []float64
}

func Null() Value {
	return Value{kind: KindNull}
}

func Boolean(b bool) Value {
	return Value{kind: KindBoolean, boolean: b}
}

func Integer(i int64) Value {
	return Value{kind: KindInteger, integer: i}
}

func Double(d float64) Value {
	return Value{kind: KindDouble, double: d}
}

func String(s string) Value {
	return Value{kind: KindString, str: s}
}

func Bytes(b []byte) Value {
	copied := make([]byte, len(b))
	copy(copied, b)
	return Value{kind: KindBytes, bytes: copied}
}

// Timestamp does not validate the range; range enforcement belongs to the
// operators that produce new timestamps.
func Timestamp(seconds int64, nanos int32) Value {
	return Value{kind: KindTimestamp, seconds: seconds, nanos: nanos}
}

func GeoPoint(latitude, longitude float64) Value {
	return Value{kind: KindGeoPoint, lat: latitude, lng: longitude}
}

func Reference(path string) Value {
	return Value{kind: KindReference, str: path}
}

func Array(elements ...Value) Value {
	copied := make([]Value, len(elements))
	copy(copied, elements)
	return Value{kind: KindArray, array: copied}
}

func Map(fields map[string]Value) Value {
	copied := make(map[string]Value, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return Value{kind: KindMap, fields: copied}
}

func Vector(components ...float64) Value {
	copied := make([]float64, len(components))
	copy(copied, components)
	return Value{kind: KindVector, vector: copied}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) Boolean() bool {
	return v.boolean
}

func (v Value) Integer() int64 {
	return v.integer
}

func (v Value) Double() float64 {
	return v.double
}

func (v Value) Str() string {
	return v.str
}

func (v Value) Bytes() []byte {
	return v.bytes
}

func (v Value) Seconds() int64 {
	return v.seconds
}

func (v Value) Nanos() int32 {
	return v.nanos
}

func (v Value) Latitude() float64 {
	return v.lat
}

func (v Value) Longitude() float64 {
	return v.lng
}

func (v Value) ReferencePath() string {
	return v.str
}

func (v Value) Array() []Value {
	return v.array
}

func (v Value) Fields() map[string]Value {
	return v.fields
}

func (v Value) Vector() []float64 {
	return v.vector
}

func (v Value) IsNull() bool {
	return v.kind == KindNull
}

func (v Value) IsNumber() bool {
	return v.kind == KindInteger || v.kind == KindDouble
}

func (v Value) IsNaN() bool {
	return v.kind == KindDouble && v.double != v.double
}

func (v Value) IsMap() bool {
	return v.kind == KindMap
}

func (v Value) IsArray() bool {
	return v.kind == KindArray
}

// AsDouble widens Integer to Double. Only meaningful for numbers.
func (v Value) AsDouble() float64 {
	if v.kind == KindInteger {
		return float64(v.integer)
	}
	return v.double
}

// InTimestampRange reports whether a timestamp value lies inside the valid
// domain. False for non-timestamps.
func (v Value) InTimestampRange() bool {
	if v.kind != KindTimestamp {
		return false
	}
	if v.seconds < MinTimestampSeconds || v.seconds > MaxTimestampSeconds {
		return false
	}
	return v.nanos >= 0 && v.nanos <= MaxTimestampNanos
}

func (v Value) String() string {
	return CanonicalID(v)
}
