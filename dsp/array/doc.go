// Package array provides growable homogeneous arrays of int and float64
// samples and a nested array-of-arrays variant for per-channel data.
//
// An Array tracks a logical size inside an owned buffer whose length is
// the capacity. Capacity grows on demand (doubling on Append) and never
// shrinks, so arrays can be Reset and refilled without reallocating.
//
// Extraction operations (Head, Tail, Split, Slice) write into a caller
// supplied destination. The destination may be the source array itself,
// in which case the operation rewrites the array in place:
//
//	a := array.FromSlice([]int{1, 2, 3, 4, 5})
//	tail := array.New[int](0)
//	a.Split(2, a, tail) // a == [1, 2], tail == [3, 4, 5]
//
// Out-of-range counts and bounds are clamped. Only the Slice preconditions
// start <= end and step >= 1 panic.
//
// Arrays are not safe for concurrent use.
package array
