package array

// clampCount limits count to [0, size].
func clampCount(count, size int) int {
	if count < 0 {
		return 0
	}
	if count > size {
		return size
	}
	return count
}

// install replaces the contents of a with src. src must not alias a.
func (a *Array[T]) install(src []T) {
	a.Resize(len(src))
	copy(a.buf, src)
	a.size = len(src)
}

// Head writes the first min(count, Len()) elements to dst.
// When dst is a, the array is truncated in place.
func (a *Array[T]) Head(count int, dst *Array[T]) {
	n := clampCount(count, a.size)
	if dst == a {
		a.size = n
		return
	}
	dst.install(a.buf[:n])
}

// Tail writes the last min(count, Len()) elements to dst.
// When dst is a, the kept elements are moved to the front in place.
func (a *Array[T]) Tail(count int, dst *Array[T]) {
	n := clampCount(count, a.size)
	if dst == a {
		copy(a.buf, a.buf[a.size-n:a.size])
		a.size = n
		return
	}
	dst.install(a.buf[a.size-n : a.size])
}

// Split writes the first min(count, Len()) elements to head and the rest
// to tail. Either destination may be a:
//
//   - head and tail both a: nothing changes
//   - only tail is a: head gets the first part, a keeps the remainder
//   - only head is a: tail gets the remainder, a is truncated
//   - neither is a: both receive copies and a is unchanged
//
// When head and tail are the same array other than a, it ends up holding
// the remainder.
func (a *Array[T]) Split(count int, head, tail *Array[T]) {
	toHead := clampCount(count, a.size)
	toTail := a.size - toHead

	switch {
	case head == a && tail == a:
		return
	case tail == a:
		head.install(a.buf[:toHead])
		copy(a.buf, a.buf[toHead:a.size])
		a.size = toTail
	case head == a:
		tail.install(a.buf[toHead:a.size])
		a.size = toHead
	default:
		head.install(a.buf[:toHead])
		tail.install(a.buf[toHead:a.size])
	}
}

// Slice writes every step-th element of [start, end) to dst. Bounds are
// clamped to [0, Len()]. When dst is a, the array is rewritten in place.
//
// Slice panics if start > end or step < 1.
func (a *Array[T]) Slice(start, end, step int, dst *Array[T]) {
	if start > end {
		panic("array: Slice start > end")
	}
	if step < 1 {
		panic("array: Slice step < 1")
	}
	start = clampCount(start, a.size)
	end = clampCount(end, a.size)

	if step == 1 {
		if dst == a {
			copy(a.buf, a.buf[start:end])
			a.size = end - start
			return
		}
		dst.install(a.buf[start:end])
		return
	}

	// a step past the range selects only start; keeps i+step from overflowing
	if span := end - start; step > span && span > 0 {
		step = span
	}
	n := (end - start + step - 1) / step
	if dst == a {
		// write index k never passes read index start+k*step
		k := 0
		for i := start; i < end; i += step {
			a.buf[k] = a.buf[i]
			k++
		}
		a.size = k
		return
	}

	dst.Resize(n)
	k := 0
	for i := start; i < end; i += step {
		dst.buf[k] = a.buf[i]
		k++
	}
	dst.size = n
}
