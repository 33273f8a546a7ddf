package array

import (
	"io"
	"math"
	"strconv"
)

// appendElement formats v the way the audio tools always have: integers
// in decimal, floats with six fractional digits, and non-finite floats as
// nan, inf and -inf.
func appendElement[T Element](b []byte, v T) []byte {
	switch x := any(v).(type) {
	case int:
		return strconv.AppendInt(b, int64(x), 10)
	case float64:
		switch {
		case math.IsNaN(x):
			return append(b, "nan"...)
		case math.IsInf(x, 1):
			return append(b, "inf"...)
		case math.IsInf(x, -1):
			return append(b, "-inf"...)
		}
		return strconv.AppendFloat(b, x, 'f', 6, 64)
	}
	return b
}

func (a *Array[T]) appendText(b []byte) []byte {
	b = append(b, '[')
	for i := 0; i < a.size; i++ {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = appendElement(b, a.buf[i])
	}
	return append(b, ']')
}

// String renders the array as [e0, e1, ..., en], or [] when empty.
func (a *Array[T]) String() string {
	return string(a.appendText(nil))
}

// WriteTo writes the String form to w. It implements io.WriterTo.
func (a *Array[T]) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(a.appendText(nil))
	return int64(n), err
}
