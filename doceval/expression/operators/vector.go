package operators

import (
	"math"

	"github.com/krew-solutions/doceval-go/doceval/result"
	"github.com/krew-solutions/doceval-go/doceval/value"
)

func evalVectorLength(args []result.Result) result.Result {
	if len(args) != 1 {
		return wrongArity(OperatorVectorLength, len(args), 1)
	}
	a := args[0]
	switch {
	case a.IsError():
		return result.Err(a.Err())
	case a.IsNullish():
		return result.Null()
	}
	if a.Value().Kind() != value.KindVector {
		return result.Err(result.TypeMismatch("vector_length expects a vector, got %s", a.Value().Kind()))
	}
	return result.Of(value.Integer(int64(len(a.Value().Vector()))))
}

// binaryVector builds the pairwise vector operators. Dimension mismatch is
// an invalid argument; NaN outcomes (e.g. cosine distance of a zero vector)
// are returned as double values.
func binaryVector(op Operator, fn func(a, b []float64) float64) Func {
	return func(args []result.Result) result.Result {
		if len(args) != 2 {
			return wrongArity(op, len(args), 2)
		}
		if err := firstError(args); err != nil {
			return result.Err(err)
		}
		if anyNullish(args) {
			return result.Null()
		}
		a, b := args[0].Value(), args[1].Value()
		if a.Kind() != value.KindVector || b.Kind() != value.KindVector {
			return result.Err(result.TypeMismatch("%s expects vectors, got %s and %s", op, a.Kind(), b.Kind()))
		}
		if len(a.Vector()) != len(b.Vector()) {
			return result.Err(result.InvalidArgument(
				"%s: dimension mismatch, %d vs %d", op, len(a.Vector()), len(b.Vector())))
		}
		return result.Of(value.Double(fn(a.Vector(), b.Vector())))
	}
}

func dotProduct(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func cosineDistance(a, b []float64) float64 {
	var dot, aMag, bMag float64
	for i := range a {
		dot += a[i] * b[i]
		aMag += a[i] * a[i]
		bMag += b[i] * b[i]
	}
	return 1 - dot/(math.Sqrt(aMag)*math.Sqrt(bMag))
}

func euclideanDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
