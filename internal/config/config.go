// Package config provides configuration management for the preprocessing
// transform. Options can come from defaults, a YAML/JSON file, environment
// variables, or direct construction; validation happens once, up front, and
// an unsupported strategy name always fails rather than silently defaulting.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Numeric imputation strategies
const (
	StrategyMean     = "mean"
	StrategyMedian   = "median"
	StrategyConstant = "constant"
)

// Categorical imputation strategies
const (
	StrategyMostFrequent = "most_frequent"
)

// Scaling modes
const (
	ScalingStandard = "standard" // zero mean, unit variance
	ScalingNormal   = "normal"   // min-max to [0, 1]
)

// Default parameter values
const (
	DefaultDropThreshold = 70.0
	DefaultFillValue     = -999.0
)

// Options holds the parameters of one preprocessing run
type Options struct {
	// DropThreshold is the missing-percentage cutoff in (0, 100]. Columns
	// strictly above it are dropped.
	DropThreshold float64 `json:"drop_threshold" yaml:"drop_threshold"`

	// NumStrategy selects imputation for continuous attributes:
	// mean, median or constant.
	NumStrategy string `json:"num_strategy" yaml:"num_strategy"`

	// CatStrategy selects imputation for categorical attributes.
	// Only most_frequent is supported.
	CatStrategy string `json:"cat_strategy" yaml:"cat_strategy"`

	// FillValue is the constant used when NumStrategy is constant.
	// It must be supplied in that case; nil means unset.
	FillValue *float64 `json:"fill_value" yaml:"fill_value"`

	// Scaling selects the numeric rescaling: standard or normal.
	Scaling string `json:"scaling" yaml:"scaling"`

	// OutputFile is the optional destination for the prepared table.
	// Empty means no file is written.
	OutputFile string `json:"output_file" yaml:"output_file"`
}

// Default returns the standard parameter set: 70% threshold, mean
// imputation, modal imputation, -999 fill constant, standardization.
func Default() Options {
	fill := DefaultFillValue
	return Options{
		DropThreshold: DefaultDropThreshold,
		NumStrategy:   StrategyMean,
		CatStrategy:   StrategyMostFrequent,
		FillValue:     &fill,
		Scaling:       ScalingStandard,
	}
}

// WithDefaults returns a copy with default values filled in for unset fields
func (o Options) WithDefaults() Options {
	defaults := Default()

	if o.DropThreshold == 0 {
		o.DropThreshold = defaults.DropThreshold
	}
	if o.NumStrategy == "" {
		o.NumStrategy = defaults.NumStrategy
	}
	if o.CatStrategy == "" {
		o.CatStrategy = defaults.CatStrategy
	}
	if o.FillValue == nil {
		o.FillValue = defaults.FillValue
	}
	if o.Scaling == "" {
		o.Scaling = defaults.Scaling
	}

	return o
}

// Validate validates the options and returns an error if invalid
func (o Options) Validate() error {
	if o.DropThreshold <= 0 || o.DropThreshold > 100 {
		return fmt.Errorf("drop_threshold must be in (0, 100], got %v", o.DropThreshold)
	}

	switch o.NumStrategy {
	case StrategyMean, StrategyMedian:
	case StrategyConstant:
		if o.FillValue == nil {
			return fmt.Errorf("num_strategy %q requires fill_value", StrategyConstant)
		}
	default:
		return fmt.Errorf("unsupported num_strategy %q (want %s, %s or %s)",
			o.NumStrategy, StrategyMean, StrategyMedian, StrategyConstant)
	}

	if o.CatStrategy != StrategyMostFrequent {
		return fmt.Errorf("unsupported cat_strategy %q (want %s)", o.CatStrategy, StrategyMostFrequent)
	}

	switch o.Scaling {
	case ScalingStandard, ScalingNormal:
	default:
		return fmt.Errorf("unsupported scaling %q (want %s or %s)", o.Scaling, ScalingStandard, ScalingNormal)
	}

	return nil
}

// LoadFromFile loads options from a file (supports JSON and YAML)
func LoadFromFile(filename string) (Options, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Options{}, fmt.Errorf("reading config file %s: %w", filename, err)
	}

	var opts Options
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".json":
		err = json.Unmarshal(data, &opts)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &opts)
	default:
		return Options{}, fmt.Errorf("unsupported config file format: %s", ext)
	}

	if err != nil {
		return Options{}, fmt.Errorf("parsing config file %s: %w", filename, err)
	}

	return opts.WithDefaults(), nil
}

// LoadFromEnv loads options from BOTTLEPREP_* environment variables,
// starting from defaults
func LoadFromEnv() Options {
	opts := Default()

	if val := os.Getenv("BOTTLEPREP_DROP_THRESHOLD"); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			opts.DropThreshold = parsed
		}
	}

	if val := os.Getenv("BOTTLEPREP_NUM_STRATEGY"); val != "" {
		opts.NumStrategy = val
	}

	if val := os.Getenv("BOTTLEPREP_CAT_STRATEGY"); val != "" {
		opts.CatStrategy = val
	}

	if val := os.Getenv("BOTTLEPREP_FILL_VALUE"); val != "" {
		if parsed, err := strconv.ParseFloat(val, 64); err == nil {
			opts.FillValue = &parsed
		}
	}

	if val := os.Getenv("BOTTLEPREP_SCALING"); val != "" {
		opts.Scaling = val
	}

	if val := os.Getenv("BOTTLEPREP_OUTPUT_FILE"); val != "" {
		opts.OutputFile = val
	}

	return opts
}
