// Package schema holds the fixed bottle-file column schema. The source file
// is positional: columns are renamed by position against this list, never
// matched by header content.
package schema

import (
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/marinelab/bottleprep/internal/dataframe"
	"github.com/marinelab/bottleprep/internal/errors"
	"github.com/marinelab/bottleprep/internal/series"
)

// IdentifierCount is the number of leading identifier columns. Identifiers
// are always complete and are never imputed or scaled.
const IdentifierCount = 4

// Target is the prediction target column. Rows missing it are dropped; the
// target is never imputed.
const Target = "Salinity"

// ColumnNames lists the 74 column names of the bottle file in file order
var ColumnNames = []string{
	"Cast Count", "Bottle Count", "Station ID", "Depth ID", "Depth", "Temperature", "Salinity",
	"O2_mL/L", "H2O Density", "O2 Sat", "O2_µmol/Kg", "Bottle No", "Record Indicator",
	"Temperature Precision", "Temperature Quality", "Salinity Precision", "Salinity Quality",
	"Pressure Quality", "O2 Quality", "H20_Density Quality", "O2_Saturation Quality",
	"Chlorophyll-a", "Chlorophyll-a Quality", "Phaeophytin_Concentration", "Phaeophytin Quality",
	"Phosphate Concentration", "Phosphate Quality", "Silicate Concentration", "Silicate Quality",
	"Nitrite Concentration", "Nitrite Quality", "Nitrate Concentration", "Nitrate Quality",
	"NH4 Concentration", "NH4 Quality",
	"C14_As1", "C14_As1 Precision", "C14_As1 Quality", "C14_As2", "C14_As2 Precision", "C14_As2 Quality",
	"C14_As_Dark", "C14_As_Dark Precision", "C14_As_Dark Quality", "Mean_C14_As", "Mean_C14_As Precision",
	"Mean_C14_As Quality", "Incubation Time", "Light Intensity", "Reported Depth", "Reported Temperature",
	"Reported Potential Temperature", "Reported Salinity", "Reported Potential Density",
	"Reported Specific Volume Anomaly", "Reported Dynamic Height", "Reported O2_mL/L", "Reported O2 Sat",
	"Reported Silicate Concentration", "Reported Phosphate Concentration", "Reported Nitrate Concentration",
	"Reported Nitrite Concentration", "Reported NH4 Concentration", "Reported Chlorophyll-a",
	"Reported Phaeophytin", "Pressure (decibars)", "Sample No", "Dissolved_Inorganic_Carbon1",
	"Dissolved_Inorganic_Carbon2", "Total Alkalinity1", "Total Alkalinity2", "pH2", "pH1",
	"DIC Quality Comment",
}

// Identifiers returns the identifier column names in order
func Identifiers() []string {
	return append([]string(nil), ColumnNames[:IdentifierCount]...)
}

// FeatureNames returns the non-identifier column names in schema order
func FeatureNames() []string {
	return append([]string(nil), ColumnNames[IdentifierCount:]...)
}

// Rename returns a new frame with columns renamed by position against
// ColumnNames. The input must have exactly len(ColumnNames) columns;
// positional renaming cannot proceed safely otherwise.
func Rename(df *dataframe.DataFrame) (*dataframe.DataFrame, error) {
	if df.Width() != len(ColumnNames) {
		return nil, errors.NewSchemaMismatchError("Rename", len(ColumnNames), df.Width())
	}

	renamed := make([]dataframe.ISeries, 0, df.Width())
	for i, old := range df.Columns() {
		col, _ := df.Column(old)
		s, err := renameSeries(col, ColumnNames[i])
		if err != nil {
			for _, r := range renamed {
				r.Release()
			}
			return nil, err
		}
		renamed = append(renamed, s)
	}

	return dataframe.New(renamed...), nil
}

// renameSeries copies a column under a new name, preserving values and nulls
func renameSeries(s dataframe.ISeries, name string) (dataframe.ISeries, error) {
	arr := s.Array()
	defer arr.Release()

	length := s.Len()
	valid := make([]bool, length)
	for i := 0; i < length; i++ {
		valid[i] = !s.IsNull(i)
	}

	switch typed := arr.(type) {
	case *array.String:
		values := make([]string, length)
		for i := 0; i < length; i++ {
			if valid[i] {
				values[i] = typed.Value(i)
			}
		}
		return series.NewWithNulls(name, values, valid, nil)
	case *array.Int64:
		values := make([]int64, length)
		for i := 0; i < length; i++ {
			if valid[i] {
				values[i] = typed.Value(i)
			}
		}
		return series.NewWithNulls(name, values, valid, nil)
	case *array.Float64:
		values := make([]float64, length)
		for i := 0; i < length; i++ {
			if valid[i] {
				values[i] = typed.Value(i)
			}
		}
		return series.NewWithNulls(name, values, valid, nil)
	case *array.Boolean:
		values := make([]bool, length)
		for i := 0; i < length; i++ {
			if valid[i] {
				values[i] = typed.Value(i)
			}
		}
		return series.NewWithNulls(name, values, valid, nil)
	default:
		return nil, errors.NewUnsupportedTypeError("Rename", s.DataType().String())
	}
}
