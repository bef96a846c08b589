package core

import (
	"math"
	"sort"
)

// StabilityScore converts a set of latency samples (ms) into a 0-100
// stability score. The score is derived from the coefficient of
// variation of the samples: CV 0 means perfect stability (100), CV 0.5
// or higher means poor stability (0).
func StabilityScore(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	mean := Mean(samples)
	if mean <= 0 {
		return 0
	}
	cv := Stddev(samples) / mean
	score := 100 * (1 - 2*cv)
	return math.Round(math.Max(0, math.Min(100, score))*100) / 100
}

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Stddev returns the sample standard deviation of values. Fewer than
// two samples yield 0, mirroring the single-sample stability fallback.
func Stddev(values []float64) float64 {
	n := float64(len(values))
	if n < 2 {
		return 0
	}
	mean := Mean(values)
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / (n - 1))
}

// Median returns the median of values, or 0 for an empty slice.
// The input is not modified.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
