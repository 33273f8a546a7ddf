package array

import (
	"math"
	"testing"

	"github.com/onshore-digital/python-audio-tools/internal/testutil"
)

func TestHead(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  []int
	}{
		{name: "partial", count: 2, want: []int{1, 2}},
		{name: "all", count: 4, want: []int{1, 2, 3, 4}},
		{name: "clamped", count: 100, want: []int{1, 2, 3, 4}},
		{name: "zero", count: 0, want: []int{}},
		{name: "negative", count: -2, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := FromSlice([]int{1, 2, 3, 4})
			dst := FromSlice([]int{9, 9, 9, 9, 9, 9})
			a.Head(tt.count, dst)
			testutil.RequireSliceEqual(t, dst.Values(), tt.want)
			testutil.RequireSliceEqual(t, a.Values(), []int{1, 2, 3, 4})

			a.Head(tt.count, a)
			testutil.RequireSliceEqual(t, a.Values(), tt.want)
			requireInvariant(t, a)
		})
	}
}

func TestTail(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  []int
	}{
		{name: "partial", count: 2, want: []int{3, 4}},
		{name: "all", count: 4, want: []int{1, 2, 3, 4}},
		{name: "clamped", count: 9, want: []int{1, 2, 3, 4}},
		{name: "zero", count: 0, want: []int{}},
		{name: "negative", count: -1, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := FromSlice([]int{1, 2, 3, 4})
			dst := New[int](0)
			a.Tail(tt.count, dst)
			testutil.RequireSliceEqual(t, dst.Values(), tt.want)
			testutil.RequireSliceEqual(t, a.Values(), []int{1, 2, 3, 4})

			a.Tail(tt.count, a)
			testutil.RequireSliceEqual(t, a.Values(), tt.want)
			requireInvariant(t, a)
		})
	}
}

func TestSelfTailFullIsNoOp(t *testing.T) {
	a := FromSlice([]float64{1, 2, 3})
	a.Tail(a.Len(), a)
	testutil.RequireSliceEqual(t, a.Values(), []float64{1, 2, 3})
}

func TestSelfHeadZeroEmpties(t *testing.T) {
	a := FromSlice([]float64{1, 2, 3})
	a.Head(0, a)
	if a.Len() != 0 || a.Cap() != 3 {
		t.Fatalf("Len/Cap = %d/%d, want 0/3", a.Len(), a.Cap())
	}
}

func TestSelfTailOverlappingMove(t *testing.T) {
	a := FromSlice(testutil.Ramp(10))
	a.Tail(7, a)
	testutil.RequireSliceEqual(t, a.Values(), []int{3, 4, 5, 6, 7, 8, 9})
}

func TestSplitAliasing(t *testing.T) {
	src := []int{1, 2, 3, 4, 5}

	t.Run("neither", func(t *testing.T) {
		a := FromSlice(append([]int(nil), src...))
		head, tail := New[int](0), New[int](0)
		a.Split(2, head, tail)
		testutil.RequireSliceEqual(t, head.Values(), []int{1, 2})
		testutil.RequireSliceEqual(t, tail.Values(), []int{3, 4, 5})
		testutil.RequireSliceEqual(t, a.Values(), src)
	})

	t.Run("head is self", func(t *testing.T) {
		a := FromSlice(append([]int(nil), src...))
		tail := New[int](0)
		a.Split(2, a, tail)
		testutil.RequireSliceEqual(t, a.Values(), []int{1, 2})
		testutil.RequireSliceEqual(t, tail.Values(), []int{3, 4, 5})
	})

	t.Run("tail is self", func(t *testing.T) {
		a := FromSlice(append([]int(nil), src...))
		head := New[int](0)
		a.Split(2, head, a)
		testutil.RequireSliceEqual(t, head.Values(), []int{1, 2})
		testutil.RequireSliceEqual(t, a.Values(), []int{3, 4, 5})
	})

	t.Run("both self", func(t *testing.T) {
		a := FromSlice(append([]int(nil), src...))
		a.Split(2, a, a)
		testutil.RequireSliceEqual(t, a.Values(), src)
	})

	t.Run("shared destination", func(t *testing.T) {
		a := FromSlice(append([]int(nil), src...))
		d := New[int](0)
		a.Split(2, d, d)
		testutil.RequireSliceEqual(t, d.Values(), []int{3, 4, 5})
	})
}

func TestSplitClamps(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	head, tail := New[int](0), FromSlice([]int{7, 7})

	a.Split(10, head, tail)
	testutil.RequireSliceEqual(t, head.Values(), []int{1, 2, 3})
	testutil.RequireSliceEqual(t, tail.Values(), []int{})

	a.Split(-4, head, tail)
	testutil.RequireSliceEqual(t, head.Values(), []int{})
	testutil.RequireSliceEqual(t, tail.Values(), []int{1, 2, 3})
}

func TestSplitThenExtendReconstructs(t *testing.T) {
	orig := FromSlice(testutil.DeterministicInts(11, 1000, 37))
	for count := 0; count <= orig.Len()+2; count++ {
		head, tail := New[int](0), New[int](4)
		orig.Split(count, head, tail)
		head.Extend(tail)
		if !head.Equal(orig) {
			t.Fatalf("count %d: got %v, want %v", count, head, orig)
		}
	}
}

func TestSliceContiguous(t *testing.T) {
	a := FromSlice([]int{0, 1, 2, 3, 4, 5})
	dst := New[int](0)

	a.Slice(1, 4, 1, dst)
	testutil.RequireSliceEqual(t, dst.Values(), []int{1, 2, 3})

	a.Slice(-3, 100, 1, dst)
	testutil.RequireSliceEqual(t, dst.Values(), []int{0, 1, 2, 3, 4, 5})

	a.Slice(8, 10, 1, dst)
	testutil.RequireSliceEqual(t, dst.Values(), []int{})

	a.Slice(2, 5, 1, a)
	testutil.RequireSliceEqual(t, a.Values(), []int{2, 3, 4})
}

func TestSliceStrided(t *testing.T) {
	tests := []struct {
		name             string
		start, end, step int
		want             []int
	}{
		{name: "every other", start: 0, end: 10, step: 2, want: []int{0, 2, 4, 6, 8}},
		{name: "offset", start: 1, end: 10, step: 3, want: []int{1, 4, 7}},
		{name: "step past end", start: 2, end: 5, step: 7, want: []int{2}},
		{name: "empty range", start: 4, end: 4, step: 2, want: []int{}},
		{name: "clamped end", start: 5, end: 50, step: 2, want: []int{5, 7, 9}},
		{name: "max step", start: 1, end: 3, step: math.MaxInt, want: []int{1}},
		{name: "max step empty range", start: 3, end: 3, step: math.MaxInt, want: []int{}},
		{name: "max step full range", start: 0, end: math.MaxInt, step: math.MaxInt, want: []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := FromSlice(testutil.Ramp(10))
			dst := FromSlice([]int{-1, -1})
			a.Slice(tt.start, tt.end, tt.step, dst)
			testutil.RequireSliceEqual(t, dst.Values(), tt.want)

			a.Slice(tt.start, tt.end, tt.step, a)
			testutil.RequireSliceEqual(t, a.Values(), tt.want)
			requireInvariant(t, a)
		})
	}
}

func TestSliceFullEqualsCopy(t *testing.T) {
	a := FromSlice(testutil.DeterministicNoise(5, 1, 33))
	sliced, copied := New[float64](0), New[float64](0)
	a.Slice(0, a.Len(), 1, sliced)
	a.CopyTo(copied)
	if !sliced.Equal(copied) {
		t.Fatalf("Slice(0, n, 1) = %v, want %v", sliced, copied)
	}
}

func TestSlicePreconditions(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	testutil.RequirePanic(t, "start > end", func() { a.Slice(2, 1, 1, New[int](0)) })
	testutil.RequirePanic(t, "zero step", func() { a.Slice(0, 3, 0, New[int](0)) })
	testutil.RequirePanic(t, "negative step", func() { a.Slice(0, 3, -1, a) })
}
