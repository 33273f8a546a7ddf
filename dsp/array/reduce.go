package array

import (
	"math"
	"slices"

	"github.com/onshore-digital/python-audio-tools/internal/vecmath"
)

// reduce runs the int or float64 kernel matching T.
func reduce[T Element](x []T, ints func([]int) int, floats func([]float64) float64) T {
	if v, ok := any(x).([]int); ok {
		return any(ints(v)).(T)
	}
	return any(floats(any(x).([]float64))).(T)
}

// Min returns the smallest element. An empty array returns the largest
// representable T (math.MaxInt or math.MaxFloat64), so callers must check
// Len first when that sentinel is ambiguous. NaN never wins.
func (a *Array[T]) Min() T {
	return reduce(a.Values(), vecmath.MinInt, vecmath.Min)
}

// Max returns the largest element. An empty array returns the smallest
// representable T (math.MinInt or -math.MaxFloat64). NaN never wins.
func (a *Array[T]) Max() T {
	return reduce(a.Values(), vecmath.MaxInt, vecmath.Max)
}

// Sum returns the sum of all elements, 0 when empty. Floats accumulate
// left to right; ints wrap on overflow.
func (a *Array[T]) Sum() T {
	return reduce(a.Values(), vecmath.SumInt, vecmath.Sum)
}

// Equal reports whether a and other have the same size and identical
// elements. Floats compare by bit pattern: an identical NaN is equal,
// while 0 and -0 are not.
func (a *Array[T]) Equal(other *Array[T]) bool {
	if a.size != other.size {
		return false
	}
	if a == other {
		return true
	}
	if x, ok := any(a.Values()).([]float64); ok {
		y := any(other.Values()).([]float64)
		for i := range x {
			if math.Float64bits(x[i]) != math.Float64bits(y[i]) {
				return false
			}
		}
		return true
	}
	return slices.Equal(a.Values(), other.Values())
}
