// Package dataframe provides an ordered, null-aware column table backed by
// Apache Arrow arrays. It supports the column and row operations the
// preprocessing pipeline needs: selection, dropping, row filtering by mask,
// horizontal concatenation, and null accounting.
package dataframe

import (
	"fmt"
	"strings"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	xxhash "github.com/cespare/xxhash/v2"

	"github.com/marinelab/bottleprep/internal/errors"
	"github.com/marinelab/bottleprep/internal/series"
)

// DataFrame represents a table of data with typed columns
type DataFrame struct {
	columns map[string]ISeries
	order   []string // Maintains column order
}

// New creates a new DataFrame from a slice of ISeries.
// The first occurrence of a column name wins; later duplicates are ignored.
func New(seriesList ...ISeries) *DataFrame {
	columns := make(map[string]ISeries)
	order := make([]string, 0, len(seriesList))

	for _, s := range seriesList {
		name := s.Name()
		if _, exists := columns[name]; exists {
			continue
		}
		columns[name] = s
		order = append(order, name)
	}

	return &DataFrame{
		columns: columns,
		order:   order,
	}
}

// Columns returns the names of all columns in order
func (df *DataFrame) Columns() []string {
	if len(df.order) == 0 {
		return []string{}
	}
	return append([]string(nil), df.order...)
}

// Len returns the number of rows (assumes all columns have same length)
func (df *DataFrame) Len() int {
	if len(df.order) > 0 {
		if s, exists := df.columns[df.order[0]]; exists {
			return s.Len()
		}
	}
	return 0
}

// Width returns the number of columns
func (df *DataFrame) Width() int {
	return len(df.columns)
}

// Column returns the series for the given column name
func (df *DataFrame) Column(name string) (ISeries, bool) {
	s, exists := df.columns[name]
	return s, exists
}

// HasColumn checks if a column exists
func (df *DataFrame) HasColumn(name string) bool {
	_, exists := df.columns[name]
	return exists
}

// Select returns a new DataFrame with only the specified columns
func (df *DataFrame) Select(names ...string) *DataFrame {
	newColumns := make(map[string]ISeries)
	newOrder := make([]string, 0, len(names))

	for _, name := range names {
		if s, exists := df.columns[name]; exists {
			newColumns[name] = s
			newOrder = append(newOrder, name)
		}
	}

	return &DataFrame{
		columns: newColumns,
		order:   newOrder,
	}
}

// Drop returns a new DataFrame without the specified columns
func (df *DataFrame) Drop(names ...string) *DataFrame {
	dropSet := make(map[string]bool)
	for _, name := range names {
		dropSet[name] = true
	}

	newColumns := make(map[string]ISeries)
	newOrder := make([]string, 0, len(df.order))

	for _, name := range df.order {
		if !dropSet[name] {
			newColumns[name] = df.columns[name]
			newOrder = append(newOrder, name)
		}
	}

	return &DataFrame{
		columns: newColumns,
		order:   newOrder,
	}
}

// NullCounts returns the number of null cells per column
func (df *DataFrame) NullCounts() map[string]int {
	counts := make(map[string]int, len(df.order))
	for _, name := range df.order {
		counts[name] = df.columns[name].NullCount()
	}
	return counts
}

// TotalNulls returns the total number of null cells in the frame
func (df *DataFrame) TotalNulls() int {
	total := 0
	for _, name := range df.order {
		total += df.columns[name].NullCount()
	}
	return total
}

// FilterRows returns a new DataFrame containing only the rows where
// keep[i] is true. Row order is preserved and the result is re-indexed
// to a contiguous zero-based sequence. Nulls survive filtering.
func (df *DataFrame) FilterRows(keep []bool) (*DataFrame, error) {
	if len(keep) != df.Len() {
		return nil, errors.ErrMismatchedLength
	}

	filtered := make([]ISeries, 0, len(df.order))
	for _, name := range df.order {
		s, err := rebuildSeries(df.columns[name], keep)
		if err != nil {
			for _, f := range filtered {
				f.Release()
			}
			return nil, err
		}
		filtered = append(filtered, s)
	}

	return New(filtered...), nil
}

// ConcatColumns concatenates frames horizontally (column-wise). All frames
// must have the same row count; column names must not collide.
func (df *DataFrame) ConcatColumns(others ...*DataFrame) (*DataFrame, error) {
	rows := df.Len()
	combined := make([]ISeries, 0, len(df.order))
	seen := make(map[string]bool, len(df.order))

	for _, name := range df.order {
		combined = append(combined, df.columns[name])
		seen[name] = true
	}

	for _, other := range others {
		if other.Width() == 0 {
			continue
		}
		if df.Width() == 0 && len(combined) == 0 {
			rows = other.Len()
		}
		if other.Len() != rows {
			return nil, errors.ErrMismatchedLength
		}
		for _, name := range other.order {
			if seen[name] {
				return nil, errors.NewInvariantViolationError("ConcatColumns", name, "duplicate column name")
			}
			combined = append(combined, other.columns[name])
			seen[name] = true
		}
	}

	return New(combined...), nil
}

// Copy returns a deep copy of the frame with independent Arrow memory
func (df *DataFrame) Copy() (*DataFrame, error) {
	keep := make([]bool, df.Len())
	for i := range keep {
		keep[i] = true
	}
	return df.FilterRows(keep)
}

// Fingerprint returns a content hash of the frame covering column names,
// types, values and null positions. Equal frames hash equal, so repeated
// runs of a deterministic transform can be compared cheaply.
func (df *DataFrame) Fingerprint() uint64 {
	digest := xxhash.New()

	for _, name := range df.order {
		s := df.columns[name]
		_, _ = digest.WriteString(name)
		_, _ = digest.WriteString("\x1e")
		_, _ = digest.WriteString(s.DataType().String())
		_, _ = digest.WriteString("\x1e")
		for i := 0; i < s.Len(); i++ {
			if s.IsNull(i) {
				_, _ = digest.WriteString("\x00")
			} else {
				_, _ = digest.WriteString(s.GetAsString(i))
			}
			_, _ = digest.WriteString("\x1f")
		}
	}

	return digest.Sum64()
}

// String returns a string representation of the DataFrame
func (df *DataFrame) String() string {
	if len(df.columns) == 0 {
		return "DataFrame[empty]"
	}

	parts := []string{fmt.Sprintf("DataFrame[%dx%d]", df.Len(), df.Width())}

	for _, name := range df.order {
		s := df.columns[name]
		parts = append(parts, fmt.Sprintf("  %s: %s (nulls=%d)", name, s.DataType().String(), s.NullCount()))
	}

	return strings.Join(parts, "\n")
}

// Release releases all underlying Arrow memory
func (df *DataFrame) Release() {
	for _, s := range df.columns {
		s.Release()
	}
}

// rebuildSeries materializes a filtered copy of a series with independent
// memory, preserving nulls among the kept rows
func rebuildSeries(s ISeries, keep []bool) (ISeries, error) {
	arr := s.Array()
	defer arr.Release()

	mem := memory.NewGoAllocator()

	switch typedArr := arr.(type) {
	case *array.String:
		values, valid := filterTyped(typedArr.Len(), keep, typedArr.IsNull, typedArr.Value)
		return series.NewWithNulls(s.Name(), values, valid, mem)
	case *array.Int64:
		values, valid := filterTyped(typedArr.Len(), keep, typedArr.IsNull, typedArr.Value)
		return series.NewWithNulls(s.Name(), values, valid, mem)
	case *array.Float64:
		values, valid := filterTyped(typedArr.Len(), keep, typedArr.IsNull, typedArr.Value)
		return series.NewWithNulls(s.Name(), values, valid, mem)
	case *array.Boolean:
		values, valid := filterTyped(typedArr.Len(), keep, typedArr.IsNull, typedArr.Value)
		return series.NewWithNulls(s.Name(), values, valid, mem)
	default:
		return nil, errors.NewUnsupportedTypeError("FilterRows", fmt.Sprintf("%T", arr))
	}
}

// filterTyped collects the kept values and validity entries for one column
func filterTyped[T any](length int, keep []bool, isNull func(int) bool, value func(int) T) ([]T, []bool) {
	values := make([]T, 0, length)
	valid := make([]bool, 0, length)
	for i := 0; i < length; i++ {
		if !keep[i] {
			continue
		}
		if isNull(i) {
			var zero T
			values = append(values, zero)
			valid = append(valid, false)
		} else {
			values = append(values, value(i))
			valid = append(valid, true)
		}
	}
	return values, valid
}
