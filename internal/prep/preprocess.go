package prep

import (
	"github.com/marinelab/bottleprep/internal/config"
	"github.com/marinelab/bottleprep/internal/dataframe"
	"github.com/marinelab/bottleprep/internal/errors"
	"github.com/marinelab/bottleprep/internal/schema"
)

// Result carries the prepared table together with the classification that
// produced it, so callers can report which columns went where.
type Result struct {
	Frame         *dataframe.DataFrame
	NumAttributes []string
	CatAttributes []string
	DroppedCols   int
	DroppedRows   int
}

// Preprocess runs the full pipeline over a renamed bottle frame:
//
//	prune columns over the missing threshold and rows with a null target,
//	classify features as continuous or categorical,
//	impute each partition independently,
//	scale the continuous partition,
//	reassemble identifiers + numeric + categorical.
//
// The input frame is never modified; every stage builds new columns. Given
// the same frame and options the output is identical, so callers may re-run
// freely. The prepared frame's columns are the identifier columns followed
// by the continuous attributes followed by the categorical attributes.
func Preprocess(df *dataframe.DataFrame, opts config.Options) (*Result, error) {
	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, errors.NewConfigurationError("Preprocess", err.Error())
	}

	pruned, err := pruneColumns(df, schema.Target, opts.DropThreshold)
	if err != nil {
		return nil, err
	}

	data, err := dropNullTarget(pruned, schema.Target)
	if err != nil {
		return nil, err
	}
	defer data.Release()

	// The first IdentifierCount columns are identifiers: complete by
	// contract, excluded from classification, imputation and scaling.
	columns := data.Columns()
	idCols := columns
	featureCols := []string{}
	if len(columns) > schema.IdentifierCount {
		idCols = columns[:schema.IdentifierCount]
		featureCols = columns[schema.IdentifierCount:]
	}
	// Deep copy so the prepared frame owns its identifier columns after the
	// intermediate frame is released.
	ids, err := data.Select(idCols...).Copy()
	if err != nil {
		return nil, err
	}

	numAttributes, catAttributes := classify(data, featureCols)

	nums, err := imputeNumeric(data, numAttributes, opts.NumStrategy, *opts.FillValue)
	if err != nil {
		return nil, err
	}

	scaled, err := scaleNumeric(nums, opts.Scaling)
	nums.Release()
	if err != nil {
		return nil, err
	}

	cats, err := imputeCategorical(data, catAttributes)
	if err != nil {
		scaled.Release()
		return nil, err
	}

	prepared, err := reassemble(ids, scaled, cats)
	if err != nil {
		return nil, err
	}

	return &Result{
		Frame:         prepared,
		NumAttributes: numAttributes,
		CatAttributes: catAttributes,
		DroppedCols:   df.Width() - data.Width(),
		DroppedRows:   df.Len() - data.Len(),
	}, nil
}
