package prep

import (
	"fmt"

	"github.com/marinelab/bottleprep/internal/config"
	"github.com/marinelab/bottleprep/internal/dataframe"
	"github.com/marinelab/bottleprep/internal/errors"
	"github.com/marinelab/bottleprep/internal/series"
	"github.com/marinelab/bottleprep/internal/stats"
)

// scaleNumeric rescales every column of the imputed numeric frame using the
// requested mode. Parameters are fit from the column itself and applied in
// the same call; nothing is persisted between runs. The frame must already
// be null-free, so imputed constants participate in the fitted statistics.
func scaleNumeric(df *dataframe.DataFrame, mode string) (*dataframe.DataFrame, error) {
	scaled := make([]dataframe.ISeries, 0, df.Width())

	for _, name := range df.Columns() {
		col, _ := df.Column(name)
		values, valid, err := floatColumn(col)
		if err != nil {
			releaseAll(scaled)
			return nil, err
		}

		switch mode {
		case config.ScalingStandard:
			standardize(values, valid)
		case config.ScalingNormal:
			minMaxScale(values, valid)
		default:
			releaseAll(scaled)
			return nil, errors.NewConfigurationError("Scale", fmt.Sprintf("unsupported scaling %q", mode))
		}

		scaled = append(scaled, series.New(name, values, nil))
	}

	return dataframe.New(scaled...), nil
}

// standardize centers values to zero mean and unit variance in place.
// A constant column has no variance to normalize by and becomes all zeros.
func standardize(values []float64, valid []bool) {
	mean, ok := stats.Mean(values, valid)
	if !ok {
		return
	}
	std, _ := stats.StdDev(values, valid)

	for i := range values {
		if std != 0 {
			values[i] = (values[i] - mean) / std
		} else {
			values[i] = 0
		}
	}
}

// minMaxScale rescales values to the [0, 1] range in place.
// A constant column collapses to all zeros.
func minMaxScale(values []float64, valid []bool) {
	minVal, ok := stats.Min(values, valid)
	if !ok {
		return
	}
	maxVal, _ := stats.Max(values, valid)

	for i := range values {
		if maxVal != minVal {
			values[i] = (values[i] - minVal) / (maxVal - minVal)
		} else {
			values[i] = 0
		}
	}
}
