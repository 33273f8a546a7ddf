package array

import "io"

// rowSeedCapacity is the capacity of every placeholder row.
const rowSeedCapacity = 1

// Nested is a growable array of rows, each row an Array[T] owned by the
// Nested value. Every slot up to the capacity holds a live row, so
// appending copies into an existing row instead of allocating one.
type Nested[T Element] struct {
	rows []*Array[T] // len(rows) is the capacity
	size int
}

// IntRows is a nested array of integer rows.
type IntRows = Nested[int]

// FloatRows is a nested array of floating-point rows.
type FloatRows = Nested[float64]

// NewNested returns an empty Nested with capacity placeholder rows.
// Negative capacity is treated as 0.
func NewNested[T Element](capacity int) *Nested[T] {
	if capacity < 0 {
		capacity = 0
	}
	n := &Nested[T]{}
	n.Resize(capacity)
	return n
}

// Len returns the number of rows.
func (n *Nested[T]) Len() int {
	return n.size
}

// Cap returns the number of row slots, including placeholders.
func (n *Nested[T]) Cap() int {
	return len(n.rows)
}

// Row returns row i. The row stays owned by n and is overwritten by later
// appends into that slot. Row panics if i is outside [0, Len()).
func (n *Nested[T]) Row(i int) *Array[T] {
	if i < 0 || i >= n.size {
		panic("array: row index out of range")
	}
	return n.rows[i]
}

// Resize ensures there are at least minimum row slots, filling new slots
// with empty placeholder rows. Existing rows are kept.
func (n *Nested[T]) Resize(minimum int) {
	if minimum <= len(n.rows) {
		return
	}
	grown := make([]*Array[T], minimum)
	copy(grown, n.rows)
	for i := len(n.rows); i < minimum; i++ {
		grown[i] = New[T](rowSeedCapacity)
	}
	n.rows = grown
}

// Reset empties n. Rows keep their buffers for reuse.
func (n *Nested[T]) Reset() {
	n.size = 0
}

// Append copies row into the next slot, doubling the slot count when
// full. The caller keeps ownership of row.
func (n *Nested[T]) Append(row *Array[T]) {
	if n.size == len(n.rows) {
		n.Resize(grownCapacity(len(n.rows)))
	}
	row.CopyTo(n.rows[n.size])
	n.size++
}

// AppendRows copies each of rows in order, growing at most once.
func (n *Nested[T]) AppendRows(rows []*Array[T]) {
	n.Resize(n.size + len(rows))
	for _, row := range rows {
		row.CopyTo(n.rows[n.size])
		n.size++
	}
}

// Extend copies every row of other, growing at most once.
// other may be n itself.
func (n *Nested[T]) Extend(other *Nested[T]) {
	count := other.size
	n.Resize(n.size + count)
	for i := 0; i < count; i++ {
		other.rows[i].CopyTo(n.rows[n.size])
		n.size++
	}
}

// Equal reports whether n and other have the same number of rows and
// each pair of rows is Equal.
func (n *Nested[T]) Equal(other *Nested[T]) bool {
	if n.size != other.size {
		return false
	}
	for i := 0; i < n.size; i++ {
		if !n.rows[i].Equal(other.rows[i]) {
			return false
		}
	}
	return true
}

func (n *Nested[T]) appendText(b []byte) []byte {
	b = append(b, '[')
	for i := 0; i < n.size; i++ {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = n.rows[i].appendText(b)
	}
	return append(b, ']')
}

// String renders n as [[...], [...]], or [] when empty.
func (n *Nested[T]) String() string {
	return string(n.appendText(nil))
}

// WriteTo writes the String form to w. It implements io.WriterTo.
func (n *Nested[T]) WriteTo(w io.Writer) (int64, error) {
	written, err := w.Write(n.appendText(nil))
	return int64(written), err
}
