package stats

import (
	"math"
	"testing"
)

func TestAccumulatorEmpty(t *testing.T) {
	t.Parallel()

	var acc Accumulator

	if acc.Mean() != 0 {
		t.Errorf("empty Mean() = %f, want 0", acc.Mean())
	}
	if acc.Variance() != 0 {
		t.Errorf("empty Variance() = %f, want 0", acc.Variance())
	}
	if acc.StdError() != 0 {
		t.Errorf("empty StdError() = %f, want 0", acc.StdError())
	}
	if acc.Median() != 0 {
		t.Errorf("empty Median() = %f, want 0", acc.Median())
	}
}

func TestAccumulatorAdd(t *testing.T) {
	t.Parallel()

	var acc Accumulator
	for _, v := range []uint64{2, 4, 4, 4, 5, 5, 7, 9} {
		acc.Add(v)
	}

	if acc.Trials != 8 {
		t.Errorf("Trials = %d, want 8", acc.Trials)
	}
	if acc.MinTotal != 2 || acc.MaxTotal != 9 {
		t.Errorf("extremes = [%d, %d], want [2, 9]", acc.MinTotal, acc.MaxTotal)
	}
	if acc.Counts[4] != 3 {
		t.Errorf("Counts[4] = %d, want 3", acc.Counts[4])
	}
	if got := acc.Mean(); got != 5.0 {
		t.Errorf("Mean() = %f, want 5.0", got)
	}
	if got, want := acc.Variance(), 32.0/7.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("Variance() = %f, want %f", got, want)
	}
	if got, want := acc.StdDev(), math.Sqrt(32.0/7.0); math.Abs(got-want) > 1e-9 {
		t.Errorf("StdDev() = %f, want %f", got, want)
	}
	if got := acc.Median(); got != 4.5 {
		t.Errorf("Median() = %f, want 4.5", got)
	}
}

func TestAccumulatorMedianOdd(t *testing.T) {
	t.Parallel()

	var acc Accumulator
	for _, v := range []uint64{5, 1, 3} {
		acc.Add(v)
	}
	if got := acc.Median(); got != 3 {
		t.Errorf("Median() = %f, want 3", got)
	}
}

func TestAccumulatorMerge(t *testing.T) {
	t.Parallel()

	var whole, left, right Accumulator
	values := []uint64{2, 4, 4, 4, 5, 5, 7, 9}
	for i, v := range values {
		whole.Add(v)
		if i < 4 {
			left.Add(v)
		} else {
			right.Add(v)
		}
	}

	left.Merge(&right)

	if left.Trials != whole.Trials {
		t.Errorf("merged Trials = %d, want %d", left.Trials, whole.Trials)
	}
	if left.MinTotal != whole.MinTotal || left.MaxTotal != whole.MaxTotal {
		t.Errorf("merged extremes = [%d, %d], want [%d, %d]",
			left.MinTotal, left.MaxTotal, whole.MinTotal, whole.MaxTotal)
	}
	if got, want := left.Mean(), whole.Mean(); math.Abs(got-want) > 1e-9 {
		t.Errorf("merged Mean() = %f, want %f", got, want)
	}
	if got, want := left.Variance(), whole.Variance(); math.Abs(got-want) > 1e-9 {
		t.Errorf("merged Variance() = %f, want %f", got, want)
	}
	for total, n := range whole.Counts {
		if left.Counts[total] != n {
			t.Errorf("merged Counts[%d] = %d, want %d", total, left.Counts[total], n)
		}
	}
}

func TestAccumulatorMergeIntoEmpty(t *testing.T) {
	t.Parallel()

	var dst, src Accumulator
	src.Add(3)
	src.Add(7)

	dst.Merge(&src)

	if dst.Trials != 2 {
		t.Errorf("Trials = %d, want 2", dst.Trials)
	}
	if dst.MinTotal != 3 || dst.MaxTotal != 7 {
		t.Errorf("extremes = [%d, %d], want [3, 7]", dst.MinTotal, dst.MaxTotal)
	}

	// Merging an empty accumulator is a no-op.
	var empty Accumulator
	dst.Merge(&empty)
	if dst.Trials != 2 {
		t.Errorf("Trials after empty merge = %d, want 2", dst.Trials)
	}
}

func TestConfidenceInterval95(t *testing.T) {
	t.Parallel()

	var acc Accumulator
	for _, v := range []uint64{2, 4, 4, 4, 5, 5, 7, 9} {
		acc.Add(v)
	}

	lo, hi := acc.ConfidenceInterval95()
	if lo >= hi {
		t.Fatalf("interval [%f, %f] is empty", lo, hi)
	}
	if mean := acc.Mean(); mean < lo || mean > hi {
		t.Errorf("mean %f outside interval [%f, %f]", mean, lo, hi)
	}

	margin := 1.96 * math.Sqrt(32.0/7.0) / math.Sqrt(8)
	if got, want := hi-lo, 2*margin; math.Abs(got-want) > 1e-9 {
		t.Errorf("interval width = %f, want %f", got, want)
	}
}

func TestChiSquareUniform(t *testing.T) {
	t.Parallel()

	if got := ChiSquareUniform([]int{100, 100, 100, 100}); got != 0 {
		t.Errorf("uniform counts chi-square = %f, want 0", got)
	}

	// All 200 observations in the first of four categories: expected 50
	// per category, so chi = 150*150/50 + 3 * 50*50/50 = 600.
	if got := ChiSquareUniform([]int{200, 0, 0, 0}); math.Abs(got-600) > 1e-9 {
		t.Errorf("skewed counts chi-square = %f, want 600", got)
	}

	if got := ChiSquareUniform(nil); got != 0 {
		t.Errorf("nil counts chi-square = %f, want 0", got)
	}
	if got := ChiSquareUniform([]int{0, 0}); got != 0 {
		t.Errorf("zero counts chi-square = %f, want 0", got)
	}
}
