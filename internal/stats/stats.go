// Package stats provides null-aware column statistics for imputation and
// scaling. Every function takes a validity mask alongside the values; cells
// with valid[i] == false are missing and excluded from the computation.
// Functions report ok == false instead of propagating NaN when a column has
// no observed values.
package stats

import (
	"math"
	"sort"

	"golang.org/x/exp/constraints"
)

// Mean returns the arithmetic mean of the observed values
func Mean(values []float64, valid []bool) (float64, bool) {
	sum := 0.0
	n := 0
	for i, v := range values {
		if valid[i] {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// Median returns the median of the observed values
func Median(values []float64, valid []bool) (float64, bool) {
	observed := make([]float64, 0, len(values))
	for i, v := range values {
		if valid[i] {
			observed = append(observed, v)
		}
	}
	if len(observed) == 0 {
		return 0, false
	}
	sort.Float64s(observed)
	mid := len(observed) / 2
	if len(observed)%2 == 0 {
		return (observed[mid-1] + observed[mid]) / 2, true
	}
	return observed[mid], true
}

// StdDev returns the population standard deviation of the observed values
func StdDev(values []float64, valid []bool) (float64, bool) {
	mean, ok := Mean(values, valid)
	if !ok {
		return 0, false
	}
	sumSq := 0.0
	n := 0
	for i, v := range values {
		if valid[i] {
			d := v - mean
			sumSq += d * d
			n++
		}
	}
	return math.Sqrt(sumSq / float64(n)), true
}

// Min returns the smallest observed value
func Min[T constraints.Ordered](values []T, valid []bool) (T, bool) {
	var best T
	found := false
	for i, v := range values {
		if !valid[i] {
			continue
		}
		if !found || v < best {
			best = v
			found = true
		}
	}
	return best, found
}

// Max returns the largest observed value
func Max[T constraints.Ordered](values []T, valid []bool) (T, bool) {
	var best T
	found := false
	for i, v := range values {
		if !valid[i] {
			continue
		}
		if !found || v > best {
			best = v
			found = true
		}
	}
	return best, found
}

// Mode returns the most frequent observed value. Ties go to the value that
// first reaches the winning count.
func Mode[T comparable](values []T, valid []bool) (T, bool) {
	counts := make(map[T]int)
	var best T
	bestCount := 0
	for i, v := range values {
		if !valid[i] {
			continue
		}
		counts[v]++
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best, bestCount > 0
}

// DistinctCount returns the number of distinct observed values
func DistinctCount[T comparable](values []T, valid []bool) int {
	seen := make(map[T]struct{})
	for i, v := range values {
		if valid[i] {
			seen[v] = struct{}{}
		}
	}
	return len(seen)
}
