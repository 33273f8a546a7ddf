package generic

import "math"

// MinFloat64 returns the smallest element of x, or math.MaxFloat64 when x
// is empty. NaN elements are skipped by the comparison.
func MinFloat64(x []float64) float64 {
	min := math.MaxFloat64
	for _, v := range x {
		if v < min {
			min = v
		}
	}
	return min
}

// MaxFloat64 returns the largest element of x, or -math.MaxFloat64 when x
// is empty. NaN elements are skipped by the comparison.
func MaxFloat64(x []float64) float64 {
	max := -math.MaxFloat64
	for _, v := range x {
		if v > max {
			max = v
		}
	}
	return max
}

// MinInt returns the smallest element of x, or math.MaxInt when x is empty.
func MinInt(x []int) int {
	min := math.MaxInt
	for _, v := range x {
		if v < min {
			min = v
		}
	}
	return min
}

// MaxInt returns the largest element of x, or math.MinInt when x is empty.
func MaxInt(x []int) int {
	max := math.MinInt
	for _, v := range x {
		if v > max {
			max = v
		}
	}
	return max
}
