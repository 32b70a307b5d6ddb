package frameio

import (
	"fmt"
	"os"

	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/marinelab/bottleprep/internal/dataframe"
	"github.com/marinelab/bottleprep/internal/schema"
)

// ReadBottleFile loads a raw bottle CSV and renames its columns by position
// against the fixed schema. The file's own header row is read and discarded;
// only the column count matters.
func ReadBottleFile(path string, mem memory.Allocator) (*dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening bottle file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	raw, err := NewCSVReader(f, DefaultCSVOptions(), mem).Read()
	if err != nil {
		return nil, err
	}
	defer raw.Release()

	return schema.Rename(raw)
}

// WriteFile writes a frame to a CSV file at the given path
func WriteFile(path string, df *dataframe.DataFrame) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return NewCSVWriter(f, DefaultCSVOptions()).Write(df)
}
