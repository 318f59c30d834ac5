// Package config loads tool configuration from the environment, with .env
// support so a working directory can pin its own defaults.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration. CLI flags override these values.
type Config struct {
	// OutputDir is where figures are written when no explicit output path
	// is given. Defaults to the current directory.
	OutputDir string
	LogLevel  string
	LogPretty bool
	// Figure geometry.
	PlotWidthCm  float64
	PlotHeightCm float64
	// GridN is the heatmap interpolation resolution.
	GridN int
}

// Load reads configuration from environment variables, loading a .env
// file first if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		OutputDir:    getEnv("SQMAP_OUTPUT_DIR", "."),
		LogLevel:     getEnv("SQMAP_LOG_LEVEL", "info"),
		LogPretty:    getEnvAsBool("SQMAP_LOG_PRETTY", true),
		PlotWidthCm:  getEnvAsFloat("SQMAP_PLOT_WIDTH_CM", 24),
		PlotHeightCm: getEnvAsFloat("SQMAP_PLOT_HEIGHT_CM", 14),
		GridN:        getEnvAsInt("SQMAP_GRID_N", 200),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration consistency.
func (c *Config) Validate() error {
	if c.PlotWidthCm <= 0 || c.PlotHeightCm <= 0 {
		return fmt.Errorf("plot dimensions must be positive, got %gx%g cm", c.PlotWidthCm, c.PlotHeightCm)
	}
	if c.GridN < 4 {
		return fmt.Errorf("interpolation grid resolution must be at least 4, got %d", c.GridN)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvAsFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
