package bottleprep_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marinelab/bottleprep"
)

func sampleFrame(t *testing.T) *bottleprep.DataFrame {
	t.Helper()

	temp, err := bottleprep.NewSeriesWithNulls("Temperature",
		[]float64{10.5, 10.4, 0, 9.9, 9.8, 9.7, 0, 9.5, 9.4, 9.3},
		[]bool{true, true, false, true, true, true, false, true, true, true}, nil)
	require.NoError(t, err)

	flags, err := bottleprep.NewSeriesWithNulls("Quality Flag",
		[]int64{9, 9, 0, 0, 2, 0, 9, 9, 0, 9},
		[]bool{true, true, false, true, true, false, true, true, false, true}, nil)
	require.NoError(t, err)

	return bottleprep.NewDataFrame(
		bottleprep.NewSeries("Cast Count", []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, nil),
		bottleprep.NewSeries("Bottle Count", []int64{101, 102, 103, 104, 105, 106, 107, 108, 109, 110}, nil),
		bottleprep.NewSeries("Station ID", []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}, nil),
		bottleprep.NewSeries("Depth ID", []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}, nil),
		bottleprep.NewSeries("Salinity",
			[]float64{33.44, 33.44, 33.43, 33.42, 33.41, 33.45, 33.46, 33.47, 33.48, 33.49}, nil),
		temp,
		flags,
	)
}

func TestPreprocessEndToEnd(t *testing.T) {
	df := sampleFrame(t)
	defer df.Release()

	result, err := bottleprep.Preprocess(df, bottleprep.DefaultOptions())
	require.NoError(t, err)
	defer result.Frame.Release()

	assert.Equal(t, []string{
		"Cast Count", "Bottle Count", "Station ID", "Depth ID",
		"Salinity", "Temperature",
		"Quality Flag",
	}, result.Frame.Columns())

	assert.Equal(t, []string{"Salinity", "Temperature"}, result.NumAttributes)
	assert.Equal(t, []string{"Quality Flag"}, result.CatAttributes)
	assert.Zero(t, result.Frame.TotalNulls())
	assert.Equal(t, 10, result.Frame.Len())
	assert.Zero(t, result.DroppedCols)
	assert.Zero(t, result.DroppedRows)

	// The target column is a feature like any other and gets scaled too.
	salinity, ok := result.Frame.Column("Salinity")
	require.True(t, ok)
	assert.Equal(t, "float64", salinity.DataType().Name())
}

func TestPreprocessIsRepeatable(t *testing.T) {
	df := sampleFrame(t)
	defer df.Release()

	first, err := bottleprep.Preprocess(df, bottleprep.DefaultOptions())
	require.NoError(t, err)
	defer first.Frame.Release()

	second, err := bottleprep.Preprocess(df, bottleprep.DefaultOptions())
	require.NoError(t, err)
	defer second.Frame.Release()

	assert.Equal(t, first.Frame.Fingerprint(), second.Frame.Fingerprint())
}

func TestWriteCSV(t *testing.T) {
	df := sampleFrame(t)
	defer df.Release()

	result, err := bottleprep.Preprocess(df, bottleprep.DefaultOptions())
	require.NoError(t, err)
	defer result.Frame.Release()

	var sb strings.Builder
	require.NoError(t, result.Frame.WriteCSV(&sb))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, result.Frame.Len()+1)
	assert.Equal(t, strings.Join(result.Frame.Columns(), ","), lines[0])
	for _, line := range lines[1:] {
		assert.NotContains(t, line, ",,", "prepared output must have no empty cells")
	}
}

func TestReadCSV(t *testing.T) {
	csvData := "Depth,Temperature\n0,10.5\n8,\n"

	df, err := bottleprep.ReadCSV(strings.NewReader(csvData), nil)
	require.NoError(t, err)
	defer df.Release()

	assert.Equal(t, 2, df.Len())
	assert.Equal(t, 1, df.TotalNulls())
}

func TestIdentifierColumns(t *testing.T) {
	assert.Equal(t, []string{"Cast Count", "Bottle Count", "Station ID", "Depth ID"},
		bottleprep.IdentifierColumns())
	assert.Equal(t, "Salinity", bottleprep.TargetColumn)
}
