package prep

import (
	"fmt"

	"github.com/marinelab/bottleprep/internal/dataframe"
	"github.com/marinelab/bottleprep/internal/errors"
)

// reassemble concatenates the untouched identifier columns with the
// transformed numeric and categorical partitions, in that order. All three
// parts are row-aligned to the pruned row set and already re-indexed to a
// contiguous zero-based sequence by the stages that produced them.
//
// A weaker postcondition, that not every column has missing values, would
// pass even with an entirely null column as long as another is complete.
// The check here is the precise one: zero null cells anywhere in the
// prepared table.
func reassemble(ids, nums, cats *dataframe.DataFrame) (*dataframe.DataFrame, error) {
	prepared, err := ids.ConcatColumns(nums, cats)
	if err != nil {
		return nil, err
	}

	if nulls := prepared.TotalNulls(); nulls != 0 {
		prepared.Release()
		return nil, errors.NewInvariantViolationError("Reassemble", "",
			fmt.Sprintf("prepared table still contains %d null cells", nulls))
	}

	return prepared, nil
}
