// Package prep implements the bottle-data preprocessing pipeline: column
// pruning by missingness, continuous/categorical classification, per-partition
// imputation, numeric scaling and reassembly with the identifier columns.
//
// The stages are plain sequential functions over immutable frames; every
// stage returns a new frame and the caller's input is never modified.
package prep

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/marinelab/bottleprep/internal/dataframe"
	"github.com/marinelab/bottleprep/internal/errors"
	"github.com/marinelab/bottleprep/internal/stats"
)

// floatColumn extracts a column as float64 values plus validity mask.
// Integer columns are widened; string and boolean columns are rejected
// because they cannot participate in numeric imputation or scaling.
func floatColumn(s dataframe.ISeries) ([]float64, []bool, error) {
	arr := s.Array()
	defer arr.Release()

	length := s.Len()
	values := make([]float64, length)
	valid := make([]bool, length)

	switch typed := arr.(type) {
	case *array.Float64:
		for i := 0; i < length; i++ {
			if !typed.IsNull(i) {
				values[i] = typed.Value(i)
				valid[i] = true
			}
		}
	case *array.Int64:
		for i := 0; i < length; i++ {
			if !typed.IsNull(i) {
				values[i] = float64(typed.Value(i))
				valid[i] = true
			}
		}
	default:
		return nil, nil, errors.NewUnsupportedTypeError("Impute", fmt.Sprintf("%T", arr))
	}

	return values, valid, nil
}

// distinctCount returns the number of distinct non-null values in a column
func distinctCount(s dataframe.ISeries) int {
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
		return stats.DistinctCount(values, valid)
	case *array.Int64:
		values := make([]int64, length)
		for i := 0; i < length; i++ {
			if valid[i] {
				values[i] = typed.Value(i)
			}
		}
		return stats.DistinctCount(values, valid)
	case *array.String:
		values := make([]string, length)
		for i := 0; i < length; i++ {
			if valid[i] {
				values[i] = typed.Value(i)
			}
		}
		return stats.DistinctCount(values, valid)
	case *array.Boolean:
		values := make([]bool, length)
		for i := 0; i < length; i++ {
			if valid[i] {
				values[i] = typed.Value(i)
			}
		}
		return stats.DistinctCount(values, valid)
	default:
		return 0
	}
}
