// Package vecmath provides the reduction kernels behind array Sum, Min and
// Max. The best registered implementation for the current CPU is selected
// on first use and cached.
package vecmath

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
	"github.com/onshore-digital/python-audio-tools/internal/vecmath/registry"

	// Pure Go kernels, registered for every architecture.
	_ "github.com/onshore-digital/python-audio-tools/internal/vecmath/arch/generic"
)

var (
	impl     *registry.OpEntry
	implOnce sync.Once
)

func initOperations() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("vecmath: no implementation registered")
	}
	if entry.SumFloat64 == nil || entry.MinFloat64 == nil || entry.MaxFloat64 == nil ||
		entry.SumInt == nil || entry.MinInt == nil || entry.MaxInt == nil {
		panic("vecmath: selected implementation " + entry.Name + " is missing a reduction")
	}
	impl = entry
}

func selected() *registry.OpEntry {
	implOnce.Do(initOperations)
	return impl
}

// Implementation returns the name of the selected kernel set.
func Implementation() string {
	return selected().Name
}

// Sum returns the sum of all elements in x, accumulated left to right.
// Returns 0 for an empty slice.
func Sum(x []float64) float64 {
	return selected().SumFloat64(x)
}

// Min returns the smallest element in x.
// Returns math.MaxFloat64 for an empty slice.
func Min(x []float64) float64 {
	return selected().MinFloat64(x)
}

// Max returns the largest element in x.
// Returns -math.MaxFloat64 for an empty slice.
func Max(x []float64) float64 {
	return selected().MaxFloat64(x)
}

// SumInt returns the sum of all elements in x. Returns 0 for an empty slice.
func SumInt(x []int) int {
	return selected().SumInt(x)
}

// MinInt returns the smallest element in x.
// Returns math.MaxInt for an empty slice.
func MinInt(x []int) int {
	return selected().MinInt(x)
}

// MaxInt returns the largest element in x.
// Returns math.MinInt for an empty slice.
func MaxInt(x []int) int {
	return selected().MaxInt(x)
}
