package prep

import (
	"fmt"

	"github.com/marinelab/bottleprep/internal/dataframe"
	"github.com/marinelab/bottleprep/internal/errors"
)

// pruneColumns drops every column whose missing percentage strictly exceeds
// the threshold. If the target column itself exceeds the threshold the run
// is misconfigured: dropping the prediction target must be visible to the
// caller, so this is a configuration error rather than a silent exemption.
func pruneColumns(df *dataframe.DataFrame, target string, threshold float64) (*dataframe.DataFrame, error) {
	rows := df.Len()
	if rows == 0 {
		return df.Select(df.Columns()...), nil
	}

	var toDrop []string
	for name, nulls := range df.NullCounts() {
		percent := float64(nulls) / float64(rows) * 100
		if percent > threshold {
			if name == target {
				return nil, errors.NewConfigurationError("Prune",
					fmt.Sprintf("target column %q is %.2f%% missing, above drop_threshold %v; "+
						"raise the threshold or fix the source data", name, percent, threshold))
			}
			toDrop = append(toDrop, name)
		}
	}

	return df.Drop(toDrop...), nil
}

// dropNullTarget removes every row whose target value is null. The target
// is only ever observed, never synthesized.
func dropNullTarget(df *dataframe.DataFrame, target string) (*dataframe.DataFrame, error) {
	col, exists := df.Column(target)
	if !exists {
		return nil, errors.NewColumnNotFoundError("Prune", target)
	}

	keep := make([]bool, df.Len())
	for i := range keep {
		keep[i] = !col.IsNull(i)
	}

	return df.FilterRows(keep)
}
