package prep

import (
	"github.com/marinelab/bottleprep/internal/dataframe"
)

// CategoricalCutoff is the distinct-value count at or below which a feature
// column is treated as categorical. Quality-flag codes are small enumerations
// even though they are numerically encoded, so a unique-count rule separates
// them from genuinely continuous measurements.
const CategoricalCutoff = 6

// classify partitions the given feature columns into continuous and
// categorical attributes by distinct non-null value count. Classification is
// recomputed from the current column set on every call; it is never cached,
// so a different pruning threshold can shift columns between partitions.
// Each partition preserves the columns' relative order as given.
func classify(df *dataframe.DataFrame, features []string) (numAttributes, catAttributes []string) {
	numAttributes = []string{}
	catAttributes = []string{}

	for _, name := range features {
		col, exists := df.Column(name)
		if !exists {
			continue
		}
		if distinctCount(col) > CategoricalCutoff {
			numAttributes = append(numAttributes, name)
		} else {
			catAttributes = append(catAttributes, name)
		}
	}

	return numAttributes, catAttributes
}
