package array

import "iter"

// Element is the set of sample types an Array can hold.
type Element interface {
	int | float64
}

// Array is a growable array of T with explicit size and capacity.
type Array[T Element] struct {
	buf  []T // len(buf) is the capacity
	size int
}

// Ints is an array of integer samples.
type Ints = Array[int]

// Floats is an array of floating-point samples.
type Floats = Array[float64]

// New returns an empty Array able to hold capacity elements before it
// grows. Negative capacity is treated as 0.
func New[T Element](capacity int) *Array[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Array[T]{buf: make([]T, capacity)}
}

// Wrap adopts buf without copying. The first size elements are the
// contents and cap(buf) becomes the capacity. The Array owns buf
// afterwards; the caller must not keep using it.
//
// Wrap panics if size is outside [0, cap(buf)].
func Wrap[T Element](buf []T, size int) *Array[T] {
	if size < 0 || size > cap(buf) {
		panic("array: Wrap size out of range")
	}
	return &Array[T]{buf: buf[:cap(buf)], size: size}
}

// FromSlice adopts values as the full contents of a new Array.
// Ownership rules match Wrap.
func FromSlice[T Element](values []T) *Array[T] {
	return Wrap(values, len(values))
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return a.size
}

// Cap returns the number of elements the array can hold without growing.
func (a *Array[T]) Cap() int {
	return len(a.buf)
}

// At returns element i. It panics if i is outside [0, Len()).
func (a *Array[T]) At(i int) T {
	if i < 0 || i >= a.size {
		panic("array: index out of range")
	}
	return a.buf[i]
}

// Set overwrites element i. It panics if i is outside [0, Len()).
func (a *Array[T]) Set(i int, v T) {
	if i < 0 || i >= a.size {
		panic("array: index out of range")
	}
	a.buf[i] = v
}

// Values returns the elements as a slice sharing the array's storage.
// The slice is invalidated by any operation that grows the array.
func (a *Array[T]) Values() []T {
	return a.buf[:a.size:a.size]
}

// All yields index/value pairs in order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, a.buf[i]) {
				return
			}
		}
	}
}

// Resize ensures the capacity is at least minimum, preserving existing
// elements. If the capacity is already sufficient this is a no-op.
func (a *Array[T]) Resize(minimum int) {
	if minimum <= len(a.buf) {
		return
	}
	grown := make([]T, minimum)
	copy(grown, a.buf[:a.size])
	a.buf = grown
}

// Reset empties the array and keeps its capacity.
func (a *Array[T]) Reset() {
	a.size = 0
}

// Append adds v at the end, doubling the capacity when full.
func (a *Array[T]) Append(v T) {
	if a.size == len(a.buf) {
		a.Resize(grownCapacity(len(a.buf)))
	}
	a.buf[a.size] = v
	a.size++
}

// AppendValues adds values at the end in order, growing at most once.
func (a *Array[T]) AppendValues(values []T) {
	a.Resize(a.size + len(values))
	copy(a.buf[a.size:], values)
	a.size += len(values)
}

// Extend appends all elements of other, growing at most once.
// other may be a itself, which doubles the contents.
func (a *Array[T]) Extend(other *Array[T]) {
	n := other.size
	a.Resize(a.size + n)
	// read other.buf after Resize: when other == a it was just replaced
	copy(a.buf[a.size:], other.buf[:n])
	a.size += n
}

// CopyTo replaces the contents of dst with a copy of a.
// It is a no-op when dst is a.
func (a *Array[T]) CopyTo(dst *Array[T]) {
	if dst == a {
		return
	}
	dst.install(a.buf[:a.size])
}

// grownCapacity is the doubling policy shared by Array and Nested.
func grownCapacity(capacity int) int {
	if capacity == 0 {
		return 1
	}
	return capacity * 2
}
