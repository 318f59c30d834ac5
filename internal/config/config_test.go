package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SQMAP_OUTPUT_DIR", "SQMAP_LOG_LEVEL", "SQMAP_LOG_PRETTY",
		"SQMAP_PLOT_WIDTH_CM", "SQMAP_PLOT_HEIGHT_CM", "SQMAP_GRID_N",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.LogPretty)
	assert.Equal(t, 24.0, cfg.PlotWidthCm)
	assert.Equal(t, 14.0, cfg.PlotHeightCm)
	assert.Equal(t, 200, cfg.GridN)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SQMAP_OUTPUT_DIR", "/tmp/figures")
	t.Setenv("SQMAP_LOG_LEVEL", "debug")
	t.Setenv("SQMAP_LOG_PRETTY", "false")
	t.Setenv("SQMAP_PLOT_WIDTH_CM", "30")
	t.Setenv("SQMAP_GRID_N", "400")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/figures", cfg.OutputDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.LogPretty)
	assert.Equal(t, 30.0, cfg.PlotWidthCm)
	assert.Equal(t, 400, cfg.GridN)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("SQMAP_GRID_N", "not-a-number")
	t.Setenv("SQMAP_LOG_PRETTY", "maybe")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.GridN)
	assert.True(t, cfg.LogPretty)
}

func TestValidate(t *testing.T) {
	cfg := &Config{PlotWidthCm: 10, PlotHeightCm: 10, GridN: 50}
	assert.NoError(t, cfg.Validate())

	cfg.PlotWidthCm = 0
	assert.Error(t, cfg.Validate())

	cfg.PlotWidthCm = 10
	cfg.GridN = 1
	assert.Error(t, cfg.Validate())

	// A resolution below 4 would degenerate to a single heatmap row.
	cfg.GridN = 3
	assert.Error(t, cfg.Validate())
}
