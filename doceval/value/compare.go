package value

import (
	"bytes"
	"math"
	"sort"
	"strings"
)

// Type-class ranks. Integer and Double share one rank so that cross-type
// numeric comparison stays inside a single class.
const (
	typeOrderNull = iota
	typeOrderBoolean
	typeOrderNumber
	typeOrderTimestamp
	typeOrderString
	typeOrderBytes
	typeOrderReference
	typeOrderGeoPoint
	typeOrderArray
	typeOrderMap
	typeOrderVector
)

// TypeOrder returns the rank of the value's type class in the total order
// null < boolean < number < timestamp < string < bytes < reference <
// geopoint < array < map < vector.
func TypeOrder(v Value) int {
	switch v.kind {
	case KindNull:
		return typeOrderNull
	case KindBoolean:
		return typeOrderBoolean
	case KindInteger, KindDouble:
		return typeOrderNumber
	case KindTimestamp:
		return typeOrderTimestamp
	case KindString:
		return typeOrderString
	case KindBytes:
		return typeOrderBytes
	case KindReference:
		return typeOrderReference
	case KindGeoPoint:
		return typeOrderGeoPoint
	case KindArray:
		return typeOrderArray
	case KindMap:
		return typeOrderMap
	case KindVector:
		return typeOrderVector
	}
	return typeOrderNull
}

// Equals is the containment equality used by array membership operators.
// Integer and Double holding the same quantity are equal, and NaN is equal
// to NaN. The eq operator layers its own NaN and null rules on top of the
// numeric helpers; it does not call Equals.
func Equals(a, b Value) bool {
	if TypeOrder(a) != TypeOrder(b) {
		return false
	}
	switch TypeOrder(a) {
	case typeOrderNull:
		return true
	case typeOrderBoolean:
		return a.boolean == b.boolean
	case typeOrderNumber:
		return CompareNumbers(a, b) == 0
	case typeOrderTimestamp:
		return a.seconds == b.seconds && a.nanos == b.nanos
	case typeOrderString:
		return a.str == b.str
	case typeOrderBytes:
		return bytes.Equal(a.bytes, b.bytes)
	case typeOrderReference:
		return a.str == b.str
	case typeOrderGeoPoint:
		return compareDoubles(a.lat, b.lat) == 0 && compareDoubles(a.lng, b.lng) == 0
	case typeOrderArray:
		return arrayEquals(a, b)
	case typeOrderMap:
		return mapEquals(a, b)
	case typeOrderVector:
		return compareVectors(a.vector, b.vector) == 0
	}
	return false
}

func arrayEquals(a, b Value) bool {
	if len(a.array) != len(b.array) {
		return false
	}
	for i := range a.array {
		if !Equals(a.array[i], b.array[i]) {
			return false
		}
	}
	return true
}

func mapEquals(a, b Value) bool {
	if len(a.fields) != len(b.fields) {
		return false
	}
	for k, av := range a.fields {
		bv, ok := b.fields[k]
		if !ok || !Equals(av, bv) {
			return false
		}
	}
	return true
}

// Compare imposes a total order over all values. Values of different type
// classes order by TypeOrder rank; values of the same class order per kind.
// NaN sorts before every other number and compares equal to itself.
func Compare(a, b Value) int {
	at, bt := TypeOrder(a), TypeOrder(b)
	if at != bt {
		return compareInts(at, bt)
	}
	switch at {
	case typeOrderNull:
		return 0
	case typeOrderBoolean:
		return compareBooleans(a.boolean, b.boolean)
	case typeOrderNumber:
		return CompareNumbers(a, b)
	case typeOrderTimestamp:
		if c := compareInt64s(a.seconds, b.seconds); c != 0 {
			return c
		}
		return compareInts(int(a.nanos), int(b.nanos))
	case typeOrderString:
		return strings.Compare(a.str, b.str)
	case typeOrderBytes:
		return bytes.Compare(a.bytes, b.bytes)
	case typeOrderReference:
		return compareReferences(a.str, b.str)
	case typeOrderGeoPoint:
		if c := compareDoubles(a.lat, b.lat); c != 0 {
			return c
		}
		return compareDoubles(a.lng, b.lng)
	case typeOrderArray:
		return compareArrays(a.array, b.array)
	case typeOrderMap:
		return compareMaps(a.fields, b.fields)
	case typeOrderVector:
		return compareVectors(a.vector, b.vector)
	}
	return 0
}

// CompareNumbers compares two numeric values across the Integer/Double
// divide without losing precision for large integers. This is the single
// place where cross-type numeric semantics and NaN ordering live.
func CompareNumbers(a, b Value) int {
	if a.kind == KindInteger && b.kind == KindInteger {
		return compareInt64s(a.integer, b.integer)
	}
	if a.kind == KindDouble && b.kind == KindDouble {
		return compareDoubles(a.double, b.double)
	}
	if a.kind == KindInteger {
		return -compareMixed(b.double, a.integer)
	}
	return compareMixed(a.double, b.integer)
}

func compareBooleans(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}

func compareInts(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareInt64s(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// compareDoubles treats NaN as smaller than every other double and equal to
// itself, matching the backend sort order.
func compareDoubles(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// compareMixed compares a double against an int64 exactly, even where the
// integer is not representable as a float64.
func compareMixed(d float64, i int64) int {
	if math.IsNaN(d) {
		return -1
	}
	if math.IsInf(d, -1) {
		return -1
	}
	if math.IsInf(d, 1) {
		return 1
	}
	// float64(math.MaxInt64) is exactly 2^63, so >= catches every double
	// past the top of the int64 range.
	if d >= float64(math.MaxInt64) {
		return 1
	}
	if d < float64(math.MinInt64) {
		return -1
	}
	truncated := int64(d)
	if c := compareInt64s(truncated, i); c != 0 {
		return c
	}
	frac := d - math.Trunc(d)
	switch {
	case frac > 0:
		return 1
	case frac < 0:
		return -1
	}
	return 0
}

func compareReferences(a, b string) int {
	aSegments := strings.Split(a, "/")
	bSegments := strings.Split(b, "/")
	n := len(aSegments)
	if len(bSegments) < n {
		n = len(bSegments)
	}
	for i := 0; i < n; i++ {
		if c := strings.Compare(aSegments[i], bSegments[i]); c != 0 {
			return c
		}
	}
	return compareInts(len(aSegments), len(bSegments))
}

func compareArrays(a, b []Value) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return compareInts(len(a), len(b))
}

// Maps order by sorted key, comparing key then value pairwise; the shorter
// map wins on a common prefix.
func compareMaps(a, b map[string]Value) int {
	aKeys := sortedKeys(a)
	bKeys := sortedKeys(b)
	n := len(aKeys)
	if len(bKeys) < n {
		n = len(bKeys)
	}
	for i := 0; i < n; i++ {
		if c := strings.Compare(aKeys[i], bKeys[i]); c != 0 {
			return c
		}
		if c := Compare(a[aKeys[i]], b[bKeys[i]]); c != 0 {
			return c
		}
	}
	return compareInts(len(aKeys), len(bKeys))
}

// Vectors order by dimension before components, so a shorter vector sorts
// first regardless of its values.
func compareVectors(a, b []float64) int {
	if c := compareInts(len(a), len(b)); c != 0 {
		return c
	}
	for i := range a {
		if c := compareDoubles(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

func sortedKeys(m map[string]Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
