package generic

// SumFloat64 returns the sum of all elements in x, accumulated strictly
// left to right. Returns 0 for an empty slice.
func SumFloat64(x []float64) float64 {
	sum := 0.0
	for i := range x {
		sum += x[i]
	}
	return sum
}

// SumInt returns the sum of all elements in x. Overflow wraps.
// Returns 0 for an empty slice.
func SumInt(x []int) int {
	sum := 0
	for i := range x {
		sum += x[i]
	}
	return sum
}
