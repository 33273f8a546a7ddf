// Package registry holds the reduction kernels available to the array
// package, one entry per instruction-set variant.
//
// Architecture packages register themselves from init(). Lookup picks the
// highest-priority entry the detected CPU supports.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// OpEntry is one registered kernel set.
//
// Fields left nil are unsupported by that variant; callers must check
// before use.
type OpEntry struct {
	// Name identifies the variant, e.g. "generic".
	Name string

	// SIMDLevel is the instruction set the entry requires.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible entries, higher wins. Generic is 0.
	Priority int

	// SumFloat64 returns the left-to-right sum of x, 0 when empty.
	SumFloat64 func(x []float64) float64

	// MinFloat64 returns the smallest element, math.MaxFloat64 when empty.
	MinFloat64 func(x []float64) float64

	// MaxFloat64 returns the largest element, -math.MaxFloat64 when empty.
	MaxFloat64 func(x []float64) float64

	// SumInt returns the sum of x with wrapping overflow, 0 when empty.
	SumInt func(x []int) int

	// MinInt returns the smallest element, math.MaxInt when empty.
	MinInt func(x []int) int

	// MaxInt returns the largest element, math.MinInt when empty.
	MaxInt func(x []int) int
}

// OpRegistry stores the registered entries.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // entries ordered by descending priority
}

// Global is the registry consulted by the vecmath package.
var Global = &OpRegistry{}

// Register adds entry. All registrations should happen before the first
// Lookup.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority entry supported by features, or nil
// when nothing matches.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// sortByPriority must be called with r.mu held for writing.
func (r *OpRegistry) sortByPriority() {
	// insertion sort, the registry holds a handful of entries
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of the registered entries.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
