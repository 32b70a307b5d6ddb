package prep

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marinelab/bottleprep/internal/dataframe"
	"github.com/marinelab/bottleprep/internal/series"
	"github.com/marinelab/bottleprep/internal/testutil"
)

func TestClassify(t *testing.T) {
	t.Run("splits by distinct non-null count", func(t *testing.T) {
		df := testutil.BottleFrame(t)
		defer df.Release()

		features := df.Columns()[4:]
		num, cat := classify(df, features)

		assert.Equal(t, []string{"Salinity", "Temperature", "Depth"}, num)
		assert.Equal(t, []string{"Quality Flag", "Sparse"}, cat)
	})

	t.Run("cutoff boundary", func(t *testing.T) {
		six := series.New("Six", []int64{1, 2, 3, 4, 5, 6, 1}, nil)
		seven := series.New("Seven", []int64{1, 2, 3, 4, 5, 6, 7}, nil)
		df := dataframe.New(six, seven)
		defer df.Release()

		num, cat := classify(df, []string{"Six", "Seven"})

		assert.Equal(t, []string{"Seven"}, num)
		assert.Equal(t, []string{"Six"}, cat)
	})

	t.Run("nulls do not count as a distinct value", func(t *testing.T) {
		flags := testutil.IntColumn(t, "Quality Flag",
			[]int64{9, 0, 2, 0, 0, 0, 0},
			[]bool{true, true, true, false, false, false, false})
		df := dataframe.New(flags)
		defer df.Release()

		num, cat := classify(df, []string{"Quality Flag"})

		assert.Empty(t, num)
		assert.Equal(t, []string{"Quality Flag"}, cat)
	})

	t.Run("partitions are a disjoint cover", func(t *testing.T) {
		df := testutil.BottleFrame(t)
		defer df.Release()

		features := df.Columns()[4:]
		num, cat := classify(df, features)

		seen := make(map[string]int)
		for _, name := range num {
			seen[name]++
		}
		for _, name := range cat {
			seen[name]++
		}
		assert.Len(t, seen, len(features))
		for name, count := range seen {
			assert.Equal(t, 1, count, "column %s classified twice", name)
		}
	})

	t.Run("zero feature columns", func(t *testing.T) {
		df := dataframe.New()
		num, cat := classify(df, nil)

		assert.Empty(t, num)
		assert.Empty(t, cat)
	})
}
