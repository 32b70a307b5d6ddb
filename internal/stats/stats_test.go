package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marinelab/bottleprep/internal/stats"
)

func allValid(n int) []bool {
	valid := make([]bool, n)
	for i := range valid {
		valid[i] = true
	}
	return valid
}

func TestMean(t *testing.T) {
	t.Run("skips masked cells", func(t *testing.T) {
		mean, ok := stats.Mean([]float64{10, 0, 20}, []bool{true, false, true})
		require.True(t, ok)
		assert.InDelta(t, 15.0, mean, 1e-9)
	})

	t.Run("all null reports not ok", func(t *testing.T) {
		_, ok := stats.Mean([]float64{1, 2}, []bool{false, false})
		assert.False(t, ok)
	})
}

func TestMedian(t *testing.T) {
	t.Run("odd count", func(t *testing.T) {
		median, ok := stats.Median([]float64{30, 10, 20}, allValid(3))
		require.True(t, ok)
		assert.InDelta(t, 20.0, median, 1e-9)
	})

	t.Run("even count averages the middle pair", func(t *testing.T) {
		median, ok := stats.Median([]float64{40, 10, 30, 20}, allValid(4))
		require.True(t, ok)
		assert.InDelta(t, 25.0, median, 1e-9)
	})

	t.Run("ignores masked cells", func(t *testing.T) {
		median, ok := stats.Median([]float64{1000, 10, 20, 30}, []bool{false, true, true, true})
		require.True(t, ok)
		assert.InDelta(t, 20.0, median, 1e-9)
	})

	t.Run("all null reports not ok", func(t *testing.T) {
		_, ok := stats.Median([]float64{1}, []bool{false})
		assert.False(t, ok)
	})
}

func TestStdDev(t *testing.T) {
	t.Run("population standard deviation", func(t *testing.T) {
		std, ok := stats.StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9}, allValid(8))
		require.True(t, ok)
		assert.InDelta(t, 2.0, std, 1e-9)
	})

	t.Run("constant column has zero deviation", func(t *testing.T) {
		std, ok := stats.StdDev([]float64{3, 3, 3}, allValid(3))
		require.True(t, ok)
		assert.InDelta(t, 0.0, std, 1e-9)
	})
}

func TestMinMax(t *testing.T) {
	values := []float64{5, 1, 0, 9}
	valid := []bool{true, true, false, true}

	minVal, ok := stats.Min(values, valid)
	require.True(t, ok)
	assert.InDelta(t, 1.0, minVal, 1e-9)

	maxVal, ok := stats.Max(values, valid)
	require.True(t, ok)
	assert.InDelta(t, 9.0, maxVal, 1e-9)

	t.Run("all null reports not ok", func(t *testing.T) {
		_, ok := stats.Min([]float64{1}, []bool{false})
		assert.False(t, ok)
	})
}

func TestMode(t *testing.T) {
	t.Run("most frequent value", func(t *testing.T) {
		mode, ok := stats.Mode([]int64{9, 0, 9, 2, 9}, allValid(5))
		require.True(t, ok)
		assert.Equal(t, int64(9), mode)
	})

	t.Run("tie broken by first value to reach the count", func(t *testing.T) {
		mode, ok := stats.Mode([]string{"b", "a", "a", "b"}, allValid(4))
		require.True(t, ok)
		assert.Equal(t, "a", mode)
	})

	t.Run("masked cells do not vote", func(t *testing.T) {
		mode, ok := stats.Mode([]int64{0, 0, 9, 9, 9}, []bool{true, true, false, false, true})
		require.True(t, ok)
		assert.Equal(t, int64(0), mode)
	})

	t.Run("all null reports not ok", func(t *testing.T) {
		_, ok := stats.Mode([]int64{1}, []bool{false})
		assert.False(t, ok)
	})
}

func TestDistinctCount(t *testing.T) {
	assert.Equal(t, 3, stats.DistinctCount([]int64{9, 0, 2, 9, 0}, allValid(5)))
	assert.Equal(t, 2, stats.DistinctCount([]int64{9, 0, 2, 9, 0}, []bool{true, true, false, true, true}))
	assert.Equal(t, 0, stats.DistinctCount([]int64{}, []bool{}))
}
