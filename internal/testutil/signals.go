package testutil

import "math/rand"

// DeterministicNoise generates uniform values in [-amplitude, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicInts generates integers in [-limit, limit] with a fixed seed.
func DeterministicInts(seed int64, limit, length int) []int {
	out := make([]int, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.Intn(2*limit+1) - limit
	}
	return out
}

// Ramp returns 0, 1, ..., n-1.
func Ramp(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
