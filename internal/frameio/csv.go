// Package frameio provides delimited-file input and output for frames.
//
// Reading infers a type per column (int64, float64, bool or string) and maps
// empty cells to Arrow nulls rather than zero values: the preprocessing
// stages need to see genuinely missing cells to count, impute and prune
// them. A numeric column containing any empty cell is widened to float64 so
// observed values and later imputed statistics share one type.
package frameio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/marinelab/bottleprep/internal/dataframe"
	"github.com/marinelab/bottleprep/internal/series"
)

const (
	trueStr  = "true"
	falseStr = "false"
)

// CSVOptions contains configuration options for CSV operations
type CSVOptions struct {
	// Delimiter is the field delimiter (default: comma)
	Delimiter rune
	// Comment is the comment character (default: 0 = disabled)
	Comment rune
	// Header indicates whether the first row contains headers
	Header bool
	// SkipInitialSpace indicates whether to skip initial whitespace
	SkipInitialSpace bool
}

// DefaultCSVOptions returns default CSV options
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{
		Delimiter:        ',',
		Comment:          0,
		Header:           true,
		SkipInitialSpace: false,
	}
}

// CSVReader reads CSV data and converts it to frames
type CSVReader struct {
	reader  io.Reader
	options CSVOptions
	mem     memory.Allocator
}

// NewCSVReader creates a new CSV reader with the specified options
func NewCSVReader(reader io.Reader, options CSVOptions, mem memory.Allocator) *CSVReader {
	return &CSVReader{
		reader:  reader,
		options: options,
		mem:     mem,
	}
}

// CSVWriter writes frames to CSV format
type CSVWriter struct {
	writer  io.Writer
	options CSVOptions
}

// NewCSVWriter creates a new CSV writer with the specified options
func NewCSVWriter(writer io.Writer, options CSVOptions) *CSVWriter {
	return &CSVWriter{
		writer:  writer,
		options: options,
	}
}

// Read reads CSV data and returns a frame
func (r *CSVReader) Read() (*dataframe.DataFrame, error) {
	csvReader := csv.NewReader(r.reader)
	csvReader.Comma = r.options.Delimiter
	csvReader.Comment = r.options.Comment
	csvReader.TrimLeadingSpace = r.options.SkipInitialSpace

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	if len(records) == 0 {
		return dataframe.New(), nil
	}

	var headers []string
	var dataRows [][]string

	if r.options.Header {
		headers = records[0]
		dataRows = records[1:]
	} else {
		numCols := len(records[0])
		headers = make([]string, numCols)
		for i := 0; i < numCols; i++ {
			headers[i] = fmt.Sprintf("column_%d", i)
		}
		dataRows = records
	}

	// Transpose to per-column string slices
	numCols := len(headers)
	columns := make([][]string, numCols)
	for i := 0; i < numCols; i++ {
		columns[i] = make([]string, len(dataRows))
		for j, row := range dataRows {
			if i < len(row) {
				columns[i][j] = row[i]
			}
		}
	}

	seriesList := make([]dataframe.ISeries, 0, numCols)
	for i, header := range headers {
		s, err := r.createSeriesFromStrings(header, columns[i])
		if err != nil {
			for _, built := range seriesList {
				built.Release()
			}
			return nil, fmt.Errorf("creating series for column %s: %w", header, err)
		}
		seriesList = append(seriesList, s)
	}

	return dataframe.New(seriesList...), nil
}

// createSeriesFromStrings creates a series from string data, inferring the
// appropriate type and marking empty cells as null
func (r *CSVReader) createSeriesFromStrings(name string, data []string) (dataframe.ISeries, error) {
	valid := make([]bool, len(data))
	for i, value := range data {
		valid[i] = value != ""
	}

	switch r.inferDataType(data) {
	case "bool":
		return r.createBoolSeries(name, data, valid)
	case "int":
		return r.createIntSeries(name, data, valid)
	case "float":
		return r.createFloatSeries(name, data, valid)
	default:
		return series.NewWithNulls(name, data, valid, r.mem)
	}
}

// inferDataType determines the most appropriate data type for the column.
// Empty cells are skipped during inference, but their presence demotes an
// integer column to float so null cells and imputed statistics can coexist.
func (r *CSVReader) inferDataType(data []string) string {
	canBeInt := true
	canBeFloat := true
	canBeBool := true
	hasEmpty := false
	hasNonEmptyValue := false

	for _, value := range data {
		if value == "" {
			hasEmpty = true
			continue
		}
		hasNonEmptyValue = true

		if canBeBool {
			lower := strings.ToLower(value)
			if lower != trueStr && lower != falseStr {
				canBeBool = false
			}
		}

		if canBeInt {
			if _, err := strconv.ParseInt(value, 10, 64); err != nil {
				canBeInt = false
			}
		}

		if canBeFloat {
			if _, err := strconv.ParseFloat(value, 64); err != nil {
				canBeFloat = false
			}
		}
	}

	if !hasNonEmptyValue {
		return "string"
	}

	if canBeBool {
		return "bool"
	}
	if canBeInt && !hasEmpty {
		return "int"
	}
	if canBeFloat {
		return "float"
	}
	return "string"
}

// createBoolSeries creates a boolean series from string data
func (r *CSVReader) createBoolSeries(name string, data []string, valid []bool) (dataframe.ISeries, error) {
	boolData := make([]bool, len(data))
	for i, value := range data {
		if valid[i] {
			boolData[i] = strings.EqualFold(value, trueStr)
		}
	}
	return series.NewWithNulls(name, boolData, valid, r.mem)
}

// createIntSeries creates an integer series from string data
func (r *CSVReader) createIntSeries(name string, data []string, valid []bool) (dataframe.ISeries, error) {
	intData := make([]int64, len(data))
	for i, value := range data {
		if valid[i] {
			val, _ := strconv.ParseInt(value, 10, 64)
			intData[i] = val
		}
	}
	return series.NewWithNulls(name, intData, valid, r.mem)
}

// createFloatSeries creates a float series from string data
func (r *CSVReader) createFloatSeries(name string, data []string, valid []bool) (dataframe.ISeries, error) {
	floatData := make([]float64, len(data))
	for i, value := range data {
		if valid[i] {
			val, _ := strconv.ParseFloat(value, 64)
			floatData[i] = val
		}
	}
	return series.NewWithNulls(name, floatData, valid, r.mem)
}

// Write writes the frame to CSV format. Null cells render as empty fields;
// no row-index column is written.
func (w *CSVWriter) Write(df *dataframe.DataFrame) error {
	csvWriter := csv.NewWriter(w.writer)
	csvWriter.Comma = w.options.Delimiter
	defer csvWriter.Flush()

	if w.options.Header {
		if err := csvWriter.Write(df.Columns()); err != nil {
			return fmt.Errorf("writing headers: %w", err)
		}
	}

	names := df.Columns()
	for i := 0; i < df.Len(); i++ {
		row := make([]string, df.Width())
		for j, colName := range names {
			column, exists := df.Column(colName)
			if !exists {
				continue
			}
			row[j] = column.GetAsString(i)
		}
		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}

	return csvWriter.Error()
}
