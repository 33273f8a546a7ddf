package array

import (
	"cmp"
	"slices"
)

// Reverse reverses the elements in place.
func (a *Array[T]) Reverse() {
	for i, j := 0, a.size-1; i < j; i, j = i+1, j-1 {
		a.buf[i], a.buf[j] = a.buf[j], a.buf[i]
	}
}

// Sort orders the elements ascending. NaN values sort first.
func (a *Array[T]) Sort() {
	slices.SortFunc(a.Values(), cmp.Compare[T])
}
