// Package testutil provides shared helpers for building null-aware test
// frames and asserting pipeline postconditions.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marinelab/bottleprep/internal/dataframe"
	"github.com/marinelab/bottleprep/internal/series"
)

// FloatColumn builds a float64 column with the given validity mask
func FloatColumn(t *testing.T, name string, values []float64, valid []bool) dataframe.ISeries {
	t.Helper()
	s, err := series.NewWithNulls(name, values, valid, nil)
	require.NoError(t, err)
	return s
}

// IntColumn builds an int64 column with the given validity mask
func IntColumn(t *testing.T, name string, values []int64, valid []bool) dataframe.ISeries {
	t.Helper()
	s, err := series.NewWithNulls(name, values, valid, nil)
	require.NoError(t, err)
	return s
}

// StringColumn builds a string column with the given validity mask
func StringColumn(t *testing.T, name string, values []string, valid []bool) dataframe.ISeries {
	t.Helper()
	s, err := series.NewWithNulls(name, values, valid, nil)
	require.NoError(t, err)
	return s
}

// Valid returns an all-true validity mask of the given length
func Valid(n int) []bool {
	valid := make([]bool, n)
	for i := range valid {
		valid[i] = true
	}
	return valid
}

// BottleFrame builds a small frame shaped like the bottle dataset: four
// complete identifier columns followed by a complete Salinity target and
// feature columns with missing cells.
//
// Feature layout over 10 rows:
//
//	Temperature:  8 distinct values, 2 nulls (continuous)
//	Depth:        8 distinct values, complete (continuous)
//	Quality Flag: 3 distinct values, 3 nulls (categorical)
//	Sparse:       9 of 10 cells null (dropped at the default threshold)
func BottleFrame(t *testing.T) *dataframe.DataFrame {
	t.Helper()

	rows := 10
	casts := make([]int64, rows)
	bottles := make([]int64, rows)
	stations := make([]string, rows)
	depthIDs := make([]string, rows)
	for i := 0; i < rows; i++ {
		casts[i] = int64(i + 1)
		bottles[i] = int64(100 + i)
		stations[i] = "090.0 070.0"
		depthIDs[i] = "19-4903CR-HY-060-0930-05400560"
	}

	salinity := []float64{33.44, 33.44, 33.46, 33.5, 33.52, 33.6, 33.61, 33.7, 33.8, 33.9}

	temperature := []float64{10.5, 10.4, 0, 10.2, 10.1, 9.9, 0, 9.7, 9.6, 9.5}
	tempValid := []bool{true, true, false, true, true, true, false, true, true, true}

	depth := []float64{0, 8, 10, 19, 20, 31, 39, 50, 8, 10}

	flags := []int64{9, 9, 0, 2, 9, 0, 0, 9, 9, 0}
	flagValid := []bool{true, true, false, true, true, false, true, true, false, true}

	sparse := make([]float64, rows)
	sparseValid := make([]bool, rows)
	sparse[0] = 1.5
	sparseValid[0] = true

	return dataframe.New(
		IntColumn(t, "Cast Count", casts, nil),
		IntColumn(t, "Bottle Count", bottles, nil),
		StringColumn(t, "Station ID", stations, nil),
		StringColumn(t, "Depth ID", depthIDs, nil),
		FloatColumn(t, "Salinity", salinity, nil),
		FloatColumn(t, "Temperature", temperature, tempValid),
		FloatColumn(t, "Depth", depth, nil),
		IntColumn(t, "Quality Flag", flags, flagValid),
		FloatColumn(t, "Sparse", sparse, sparseValid),
	)
}

// AssertNoNulls asserts that every cell of the frame is filled
func AssertNoNulls(t *testing.T, df *dataframe.DataFrame) {
	t.Helper()
	assert.Zero(t, df.TotalNulls(), "frame should contain no null cells")
}

// AssertColumns asserts the frame has exactly the given columns in order
func AssertColumns(t *testing.T, df *dataframe.DataFrame, want []string) {
	t.Helper()
	assert.Equal(t, want, df.Columns())
}
