package prep

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/marinelab/bottleprep/internal/config"
	"github.com/marinelab/bottleprep/internal/dataframe"
	"github.com/marinelab/bottleprep/internal/errors"
	"github.com/marinelab/bottleprep/internal/series"
	"github.com/marinelab/bottleprep/internal/stats"
)

// imputeNumeric returns a frame holding only the given columns, widened to
// float64 and with every null replaced according to the strategy. After this
// call no null remains in the result.
func imputeNumeric(df *dataframe.DataFrame, cols []string, strategy string, fillValue float64) (*dataframe.DataFrame, error) {
	imputed := make([]dataframe.ISeries, 0, len(cols))

	for _, name := range cols {
		col, exists := df.Column(name)
		if !exists {
			releaseAll(imputed)
			return nil, errors.NewColumnNotFoundError("Impute", name)
		}

		values, valid, err := floatColumn(col)
		if err != nil {
			releaseAll(imputed)
			return nil, err
		}

		var replacement float64
		switch strategy {
		case config.StrategyMean:
			mean, ok := stats.Mean(values, valid)
			if !ok {
				releaseAll(imputed)
				return nil, errors.NewInvariantViolationError("Impute", name, "column has no observed values to average")
			}
			replacement = mean
		case config.StrategyMedian:
			median, ok := stats.Median(values, valid)
			if !ok {
				releaseAll(imputed)
				return nil, errors.NewInvariantViolationError("Impute", name, "column has no observed values to take a median of")
			}
			replacement = median
		case config.StrategyConstant:
			replacement = fillValue
		default:
			releaseAll(imputed)
			return nil, errors.NewConfigurationError("Impute", fmt.Sprintf("unsupported numeric strategy %q", strategy))
		}

		for i := range values {
			if !valid[i] {
				values[i] = replacement
			}
		}

		imputed = append(imputed, series.New(name, values, nil))
	}

	return dataframe.New(imputed...), nil
}

// imputeCategorical returns a frame holding only the given columns with every
// null replaced by the column's most frequent non-null value. Column types
// are preserved; category codes are not rescaled or re-encoded.
func imputeCategorical(df *dataframe.DataFrame, cols []string) (*dataframe.DataFrame, error) {
	imputed := make([]dataframe.ISeries, 0, len(cols))

	for _, name := range cols {
		col, exists := df.Column(name)
		if !exists {
			releaseAll(imputed)
			return nil, errors.NewColumnNotFoundError("Impute", name)
		}

		s, err := imputeMode(col)
		if err != nil {
			releaseAll(imputed)
			return nil, err
		}
		imputed = append(imputed, s)
	}

	return dataframe.New(imputed...), nil
}

// imputeMode fills a single column's nulls with its mode
func imputeMode(s dataframe.ISeries) (dataframe.ISeries, error) {
	arr := s.Array()
	defer arr.Release()

	length := s.Len()
	valid := make([]bool, length)
	for i := 0; i < length; i++ {
		valid[i] = !s.IsNull(i)
	}

	switch typed := arr.(type) {
	case *array.Float64:
		values := make([]float64, length)
		for i := 0; i < length; i++ {
			if valid[i] {
				values[i] = typed.Value(i)
			}
		}
		return fillWithMode(s.Name(), values, valid)
	case *array.Int64:
		values := make([]int64, length)
		for i := 0; i < length; i++ {
			if valid[i] {
				values[i] = typed.Value(i)
			}
		}
		return fillWithMode(s.Name(), values, valid)
	case *array.String:
		values := make([]string, length)
		for i := 0; i < length; i++ {
			if valid[i] {
				values[i] = typed.Value(i)
			}
		}
		return fillWithMode(s.Name(), values, valid)
	case *array.Boolean:
		values := make([]bool, length)
		for i := 0; i < length; i++ {
			if valid[i] {
				values[i] = typed.Value(i)
			}
		}
		return fillWithMode(s.Name(), values, valid)
	default:
		return nil, errors.NewUnsupportedTypeError("Impute", fmt.Sprintf("%T", arr))
	}
}

// fillWithMode replaces masked-out entries with the most frequent value
func fillWithMode[T comparable](name string, values []T, valid []bool) (dataframe.ISeries, error) {
	mode, ok := stats.Mode(values, valid)
	if !ok {
		return nil, errors.NewInvariantViolationError("Impute", name, "column has no observed values to take a mode of")
	}
	for i := range values {
		if !valid[i] {
			values[i] = mode
		}
	}
	return series.New(name, values, nil), nil
}

// releaseAll releases partially built column sets on error paths
func releaseAll(built []dataframe.ISeries) {
	for _, s := range built {
		s.Release()
	}
}
