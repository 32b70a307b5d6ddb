package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marinelab/bottleprep/internal/config"
)

func TestDefault(t *testing.T) {
	opts := config.Default()

	assert.InDelta(t, 70.0, opts.DropThreshold, 1e-9)
	assert.Equal(t, config.StrategyMean, opts.NumStrategy)
	assert.Equal(t, config.StrategyMostFrequent, opts.CatStrategy)
	require.NotNil(t, opts.FillValue)
	assert.InDelta(t, -999.0, *opts.FillValue, 1e-9)
	assert.Equal(t, config.ScalingStandard, opts.Scaling)
	assert.Empty(t, opts.OutputFile)
	assert.NoError(t, opts.Validate())
}

func TestWithDefaults(t *testing.T) {
	opts := config.Options{NumStrategy: config.StrategyMedian}.WithDefaults()

	assert.Equal(t, config.StrategyMedian, opts.NumStrategy)
	assert.InDelta(t, 70.0, opts.DropThreshold, 1e-9)
	assert.Equal(t, config.ScalingStandard, opts.Scaling)
	require.NotNil(t, opts.FillValue)
}

func TestValidate(t *testing.T) {
	valid := config.Default()

	tests := []struct {
		name    string
		modify  func(*config.Options)
		wantErr string
	}{
		{"zero threshold", func(o *config.Options) { o.DropThreshold = 0 }, "drop_threshold"},
		{"negative threshold", func(o *config.Options) { o.DropThreshold = -5 }, "drop_threshold"},
		{"threshold above 100", func(o *config.Options) { o.DropThreshold = 101 }, "drop_threshold"},
		{"unknown num strategy", func(o *config.Options) { o.NumStrategy = "mode" }, "num_strategy"},
		{"unknown cat strategy", func(o *config.Options) { o.CatStrategy = "mean" }, "cat_strategy"},
		{"unknown scaling", func(o *config.Options) { o.Scaling = "robust" }, "scaling"},
		{
			"constant without fill value",
			func(o *config.Options) { o.NumStrategy = config.StrategyConstant; o.FillValue = nil },
			"fill_value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid
			tt.modify(&opts)
			err := opts.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("constant with fill value", func(t *testing.T) {
		opts := valid
		fill := -999.0
		opts.NumStrategy = config.StrategyConstant
		opts.FillValue = &fill
		assert.NoError(t, opts.Validate())
	})

	t.Run("threshold of exactly 100", func(t *testing.T) {
		opts := valid
		opts.DropThreshold = 100
		assert.NoError(t, opts.Validate())
	})
}

func TestLoadFromFile(t *testing.T) {
	t.Run("loads YAML and fills defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "opts.yaml")
		data := "drop_threshold: 50\nnum_strategy: median\nscaling: normal\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

		opts, err := config.LoadFromFile(path)
		require.NoError(t, err)

		assert.InDelta(t, 50.0, opts.DropThreshold, 1e-9)
		assert.Equal(t, config.StrategyMedian, opts.NumStrategy)
		assert.Equal(t, config.ScalingNormal, opts.Scaling)
		assert.Equal(t, config.StrategyMostFrequent, opts.CatStrategy)
		require.NotNil(t, opts.FillValue)
	})

	t.Run("loads JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "opts.json")
		data := `{"num_strategy": "constant", "fill_value": -1}`
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

		opts, err := config.LoadFromFile(path)
		require.NoError(t, err)

		assert.Equal(t, config.StrategyConstant, opts.NumStrategy)
		require.NotNil(t, opts.FillValue)
		assert.InDelta(t, -1.0, *opts.FillValue, 1e-9)
	})

	t.Run("rejects unknown extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "opts.toml")
		require.NoError(t, os.WriteFile(path, []byte("x = 1"), 0o600))

		_, err := config.LoadFromFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported config file format")
	})

	t.Run("rejects missing file", func(t *testing.T) {
		_, err := config.LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}

func TestLoadFromEnv(t *testing.T) {
	t.Run("overrides defaults from environment", func(t *testing.T) {
		t.Setenv("BOTTLEPREP_DROP_THRESHOLD", "40")
		t.Setenv("BOTTLEPREP_NUM_STRATEGY", "constant")
		t.Setenv("BOTTLEPREP_FILL_VALUE", "-1")
		t.Setenv("BOTTLEPREP_SCALING", "normal")
		t.Setenv("BOTTLEPREP_OUTPUT_FILE", "prepared.csv")

		opts := config.LoadFromEnv()

		assert.InDelta(t, 40.0, opts.DropThreshold, 1e-9)
		assert.Equal(t, config.StrategyConstant, opts.NumStrategy)
		require.NotNil(t, opts.FillValue)
		assert.InDelta(t, -1.0, *opts.FillValue, 1e-9)
		assert.Equal(t, config.ScalingNormal, opts.Scaling)
		assert.Equal(t, "prepared.csv", opts.OutputFile)
	})

	t.Run("keeps defaults when unset", func(t *testing.T) {
		opts := config.LoadFromEnv()
		assert.Equal(t, config.Default().NumStrategy, opts.NumStrategy)
	})

	t.Run("bad strategy from env fails validation, not silently", func(t *testing.T) {
		t.Setenv("BOTTLEPREP_NUM_STRATEGY", "mode")
		opts := config.LoadFromEnv()
		require.Error(t, opts.Validate())
	})
}
