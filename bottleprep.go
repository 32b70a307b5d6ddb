// Package bottleprep cleans and normalizes the bottle water-sample dataset
// into a model-ready table. This package is the sole public API.
//
// The transform is a single-shot batch operation: columns are renamed by
// position against the fixed bottle schema, columns above a missingness
// threshold are dropped, rows with a missing salinity target are dropped,
// the remaining feature columns are split into continuous and categorical
// attributes, each partition is imputed independently, the continuous
// partition is scaled, and the untouched identifier columns are reattached.
package bottleprep

import (
	"io"

	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/marinelab/bottleprep/internal/config"
	"github.com/marinelab/bottleprep/internal/dataframe"
	"github.com/marinelab/bottleprep/internal/frameio"
	"github.com/marinelab/bottleprep/internal/prep"
	"github.com/marinelab/bottleprep/internal/schema"
	"github.com/marinelab/bottleprep/internal/series"
)

// ISeries provides a type-erased interface for Series of any type
type ISeries = dataframe.ISeries

// Options holds the parameters of one preprocessing run
type Options = config.Options

// TargetColumn is the prediction target; rows missing it are dropped and it
// is never imputed.
const TargetColumn = schema.Target

// DataFrame is the public type for a column table.
// It wraps the internal frame to hide implementation details.
type DataFrame struct {
	df *dataframe.DataFrame
}

// Result holds the prepared table and a summary of what the transform did
type Result struct {
	// Frame is the prepared table: identifiers, then continuous
	// attributes, then categorical attributes.
	Frame *DataFrame
	// NumAttributes are the feature columns classified as continuous.
	NumAttributes []string
	// CatAttributes are the feature columns classified as categorical.
	CatAttributes []string
	// DroppedCols is the number of columns removed by pruning.
	DroppedCols int
	// DroppedRows is the number of rows removed for a missing target.
	DroppedRows int
}

// DefaultOptions returns the standard parameter set
func DefaultOptions() Options {
	return config.Default()
}

// LoadOptions loads options from a YAML or JSON file
func LoadOptions(path string) (Options, error) {
	return config.LoadFromFile(path)
}

// OptionsFromEnv loads options from BOTTLEPREP_* environment variables
func OptionsFromEnv() Options {
	return config.LoadFromEnv()
}

// IdentifierColumns returns the names of the identifier columns
func IdentifierColumns() []string {
	return schema.Identifiers()
}

// NewSeries creates a new typed Series from values with no nulls
func NewSeries[T any](name string, values []T, mem memory.Allocator) ISeries {
	return series.New(name, values, mem)
}

// NewSeriesWithNulls creates a typed Series with a validity mask;
// valid[i] == false marks row i as missing
func NewSeriesWithNulls[T any](name string, values []T, valid []bool, mem memory.Allocator) (ISeries, error) {
	return series.NewWithNulls(name, values, valid, mem)
}

// NewDataFrame creates a new DataFrame from ISeries
func NewDataFrame(seriesList ...ISeries) *DataFrame {
	internal := make([]dataframe.ISeries, len(seriesList))
	for i, s := range seriesList {
		internal[i] = s
	}
	return &DataFrame{df: dataframe.New(internal...)}
}

// ReadBottleFile loads a raw bottle CSV and renames its columns by position
// against the fixed 74-name schema
func ReadBottleFile(path string, mem memory.Allocator) (*DataFrame, error) {
	df, err := frameio.ReadBottleFile(path, mem)
	if err != nil {
		return nil, err
	}
	return &DataFrame{df: df}, nil
}

// ReadCSV reads delimited data with a header row into a DataFrame
func ReadCSV(r io.Reader, mem memory.Allocator) (*DataFrame, error) {
	df, err := frameio.NewCSVReader(r, frameio.DefaultCSVOptions(), mem).Read()
	if err != nil {
		return nil, err
	}
	return &DataFrame{df: df}, nil
}

// Preprocess runs the full cleaning pipeline over a renamed bottle frame.
// The input frame is never modified; re-running with identical options
// yields an identical result.
func Preprocess(d *DataFrame, opts Options) (*Result, error) {
	res, err := prep.Preprocess(d.df, opts)
	if err != nil {
		return nil, err
	}
	return &Result{
		Frame:         &DataFrame{df: res.Frame},
		NumAttributes: res.NumAttributes,
		CatAttributes: res.CatAttributes,
		DroppedCols:   res.DroppedCols,
		DroppedRows:   res.DroppedRows,
	}, nil
}

// DataFrame methods

// Columns returns the column names in order
func (d *DataFrame) Columns() []string {
	return d.df.Columns()
}

// Len returns the number of rows
func (d *DataFrame) Len() int {
	return d.df.Len()
}

// Width returns the number of columns
func (d *DataFrame) Width() int {
	return d.df.Width()
}

// Column returns the column with the given name
func (d *DataFrame) Column(name string) (ISeries, bool) {
	return d.df.Column(name)
}

// HasColumn checks if a column exists
func (d *DataFrame) HasColumn(name string) bool {
	return d.df.HasColumn(name)
}

// NullCounts returns the number of null cells per column
func (d *DataFrame) NullCounts() map[string]int {
	return d.df.NullCounts()
}

// TotalNulls returns the total number of null cells
func (d *DataFrame) TotalNulls() int {
	return d.df.TotalNulls()
}

// Fingerprint returns a content hash covering names, types, values and
// null positions
func (d *DataFrame) Fingerprint() uint64 {
	return d.df.Fingerprint()
}

// WriteCSV writes the frame as delimited text with a header row
func (d *DataFrame) WriteCSV(w io.Writer) error {
	return frameio.NewCSVWriter(w, frameio.DefaultCSVOptions()).Write(d.df)
}

// WriteFile writes the frame to a CSV file at the given path
func (d *DataFrame) WriteFile(path string) error {
	return frameio.WriteFile(path, d.df)
}

// String returns a string representation of the DataFrame
func (d *DataFrame) String() string {
	return d.df.String()
}

// Release releases all underlying Arrow memory
func (d *DataFrame) Release() {
	d.df.Release()
}
