// Package stats accumulates summary statistics over repeated roll trials.
package stats

import (
	"math"
	"slices"
)

// Accumulator tracks running moments, extremes and the full count
// distribution of a stream of roll totals. The zero value is ready to use,
// and accumulators filled on separate goroutines can be folded together with
// Merge.
type Accumulator struct {
	Trials   int
	Sum      float64
	Sum2     float64 // sum of squares for the variance calculation
	MinTotal uint64
	MaxTotal uint64

	Counts map[uint64]int // occurrences of each observed total
}

// Add incorporates one observed total.
func (a *Accumulator) Add(total uint64) {
	if a.Trials == 0 {
		a.MinTotal, a.MaxTotal = total, total
	} else {
		if total < a.MinTotal {
			a.MinTotal = total
		}
		if total > a.MaxTotal {
			a.MaxTotal = total
		}
	}
	a.Trials++
	v := float64(total)
	a.Sum += v
	a.Sum2 += v * v
	if a.Counts == nil {
		a.Counts = make(map[uint64]int)
	}
	a.Counts[total]++
}

// Merge folds other's observations into a, leaving other unchanged.
func (a *Accumulator) Merge(other *Accumulator) {
	if other.Trials == 0 {
		return
	}
	if a.Trials == 0 {
		a.MinTotal, a.MaxTotal = other.MinTotal, other.MaxTotal
	} else {
		if other.MinTotal < a.MinTotal {
			a.MinTotal = other.MinTotal
		}
		if other.MaxTotal > a.MaxTotal {
			a.MaxTotal = other.MaxTotal
		}
	}
	a.Trials += other.Trials
	a.Sum += other.Sum
	a.Sum2 += other.Sum2
	if a.Counts == nil {
		a.Counts = make(map[uint64]int, len(other.Counts))
	}
	for total, n := range other.Counts {
		a.Counts[total] += n
	}
}

// Mean returns the arithmetic mean of all observed totals.
func (a *Accumulator) Mean() float64 {
	if a.Trials == 0 {
		return 0
	}
	return a.Sum / float64(a.Trials)
}

// Variance returns the sample variance of all observed totals.
func (a *Accumulator) Variance() float64 {
	if a.Trials < 2 {
		return 0
	}
	mean := a.Mean()
	return (a.Sum2 - float64(a.Trials)*mean*mean) / float64(a.Trials-1)
}

// StdDev returns the sample standard deviation of all observed totals.
func (a *Accumulator) StdDev() float64 {
	return math.Sqrt(a.Variance())
}

// StdError returns the standard error of the mean.
func (a *Accumulator) StdError() float64 {
	if a.Trials == 0 {
		return 0
	}
	return a.StdDev() / math.Sqrt(float64(a.Trials))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (a *Accumulator) ConfidenceInterval95() (float64, float64) {
	mean := a.Mean()
	margin := 1.96 * a.StdError()
	return mean - margin, mean + margin
}

// Median returns the middle observed total, averaging the two central
// observations when the trial count is even.
func (a *Accumulator) Median() float64 {
	if a.Trials == 0 {
		return 0
	}
	totals := a.SortedTotals()
	if a.Trials%2 == 1 {
		return float64(a.totalAtRank(totals, a.Trials/2))
	}
	lo := a.totalAtRank(totals, a.Trials/2-1)
	hi := a.totalAtRank(totals, a.Trials/2)
	return (float64(lo) + float64(hi)) / 2
}

// SortedTotals returns every distinct observed total in ascending order.
func (a *Accumulator) SortedTotals() []uint64 {
	totals := make([]uint64, 0, len(a.Counts))
	for t := range a.Counts {
		totals = append(totals, t)
	}
	slices.Sort(totals)
	return totals
}

// totalAtRank returns the rank-th smallest observation, 0-based, by walking
// the count distribution.
func (a *Accumulator) totalAtRank(sorted []uint64, rank int) uint64 {
	cum := 0
	for _, t := range sorted {
		cum += a.Counts[t]
		if cum > rank {
			return t
		}
	}
	return 0
}

// ChiSquareUniform returns the chi-square statistic of the observed counts
// against a uniform distribution over len(counts) categories.
func ChiSquareUniform(counts []int) float64 {
	if len(counts) == 0 {
		return 0
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 0
	}
	expected := float64(total) / float64(len(counts))
	var chi float64
	for _, c := range counts {
		diff := float64(c) - expected
		chi += diff * diff / expected
	}
	return chi
}
