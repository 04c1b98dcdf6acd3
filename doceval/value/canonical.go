package value

import (
	"encoding/hex"
	"strconv"
	"strings"
)

// CanonicalID renders a deterministic textual form of a value, independent
// of map insertion order. Used for diagnostics and test failure output; not
// a serialization format.
func CanonicalID(v Value) string {
	var b strings.Builder
	canonify(&b, v)
	return b.String()
}

func canonify(b *strings.Builder, v Value) {
	switch v.kind {
	case KindNull:
		b.WriteString("null")
	case KindBoolean:
		b.WriteString(strconv.FormatBool(v.boolean))
	case KindInteger:
		b.WriteString(strconv.FormatInt(v.integer, 10))
	case KindDouble:
		b.WriteString(strconv.FormatFloat(v.double, 'g', -1, 64))
	case KindString:
		b.WriteString(v.str)
	case KindBytes:
		b.WriteString(hex.EncodeToString(v.bytes))
	case KindTimestamp:
		b.WriteString("time(")
		b.WriteString(strconv.FormatInt(v.seconds, 10))
		b.WriteString(",")
		b.WriteString(strconv.FormatInt(int64(v.nanos), 10))
		b.WriteString(")")
	case KindGeoPoint:
		b.WriteString("geo(")
		b.WriteString(strconv.FormatFloat(v.lat, 'g', -1, 64))
		b.WriteString(",")
		b.WriteString(strconv.FormatFloat(v.lng, 'g', -1, 64))
		b.WriteString(")")
	case KindReference:
		b.WriteString(v.str)
	case KindArray:
		b.WriteString("[")
		for i, e := range v.array {
			if i > 0 {
				b.WriteString(",")
			}
			canonify(b, e)
		}
		b.WriteString("]")
	case KindMap:
		b.WriteString("{")
		for i, k := range sortedKeys(v.fields) {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(k)
			b.WriteString(":")
			canonify(b, v.fields[k])
		}
		b.WriteString("}")
	case KindVector:
		b.WriteString("vec[")
		for i, c := range v.vector {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		}
		b.WriteString("]")
	}
}
