// Package config loads the lbpsig command configuration.
//
// The file is JSON with every field optional; omitted fields fall back to
// the defaults returned by the getters, so partial files are safe.
//
//	{
//	  "workers": 4,
//	  "metric": "hellinger",
//	  "image_scale": 8,
//	  "db_driver": "sqlite",
//	  "db_dsn": "signatures.db",
//	  "log_level": "debug"
//	}
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lbptrace/similarity"
	"github.com/katalvlaran/lbptrace/store"
)

// ErrInvalidConfig indicates a field with an unusable value.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Defaults applied when a field is omitted.
const (
	DefaultWorkers       = 1
	DefaultMetric        = "l1"
	DefaultImageScale    = 8
	DefaultChartWidthIn  = 10.0
	DefaultChartHeightIn = 4.0
	DefaultDBDriver      = store.DriverSQLite
	DefaultLogLevel      = "info"
)

// maxFileSize bounds config files (1 MiB).
const maxFileSize = 1 << 20

// Config is the root configuration object.
type Config struct {
	Workers       *int     `json:"workers,omitempty"`
	Metric        *string  `json:"metric,omitempty"`
	ImageScale    *int     `json:"image_scale,omitempty"`
	ChartWidthIn  *float64 `json:"chart_width_in,omitempty"`
	ChartHeightIn *float64 `json:"chart_height_in,omitempty"`
	DBDriver      *string  `json:"db_driver,omitempty"`
	DBDSN         *string  `json:"db_dsn,omitempty"`
	LogLevel      *string  `json:"log_level,omitempty"`
}

// Default returns a Config with every field unset.
func Default() *Config {
	return &Config{}
}

// Load reads and validates a Config from a JSON file.
// The path must have a .json extension and the file must not exceed 1 MiB.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}
	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every set field.
func (c *Config) Validate() error {
	if c.Workers != nil && *c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidConfig, *c.Workers)
	}
	if c.Metric != nil {
		if _, err := similarity.ParseMetric(*c.Metric); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	if c.ImageScale != nil && *c.ImageScale < 1 {
		return fmt.Errorf("%w: image_scale must be >= 1, got %d", ErrInvalidConfig, *c.ImageScale)
	}
	if c.ChartWidthIn != nil && !(*c.ChartWidthIn > 0) {
		return fmt.Errorf("%w: chart_width_in must be > 0", ErrInvalidConfig)
	}
	if c.ChartHeightIn != nil && !(*c.ChartHeightIn > 0) {
		return fmt.Errorf("%w: chart_height_in must be > 0", ErrInvalidConfig)
	}
	if c.DBDriver != nil && *c.DBDriver != store.DriverSQLite && *c.DBDriver != store.DriverPostgres {
		return fmt.Errorf("%w: db_driver %q", ErrInvalidConfig, *c.DBDriver)
	}
	if c.LogLevel != nil {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(strings.TrimSpace(*c.LogLevel))); err != nil {
			return fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// GetWorkers returns the segment fan-out width.
func (c *Config) GetWorkers() int {
	if c.Workers == nil {
		return DefaultWorkers
	}
	return *c.Workers
}

// GetMetric returns the parsed distance metric.
func (c *Config) GetMetric() similarity.Metric {
	name := DefaultMetric
	if c.Metric != nil {
		name = *c.Metric
	}
	m, err := similarity.ParseMetric(name)
	if err != nil {
		m, _ = similarity.ParseMetric(DefaultMetric)
	}
	return m
}

// GetImageScale returns the occupancy image pixels per cell.
func (c *Config) GetImageScale() int {
	if c.ImageScale == nil {
		return DefaultImageScale
	}
	return *c.ImageScale
}

// GetChartSize returns the chart width and height in inches.
func (c *Config) GetChartSize() (width, height float64) {
	width, height = DefaultChartWidthIn, DefaultChartHeightIn
	if c.ChartWidthIn != nil {
		width = *c.ChartWidthIn
	}
	if c.ChartHeightIn != nil {
		height = *c.ChartHeightIn
	}
	return width, height
}

// GetDB returns the database driver and DSN. An empty DSN means no store.
func (c *Config) GetDB() (driver, dsn string) {
	driver = DefaultDBDriver
	if c.DBDriver != nil {
		driver = *c.DBDriver
	}
	if c.DBDSN != nil {
		dsn = *c.DBDSN
	}
	return driver, dsn
}

// GetLogLevel returns the slog level, defaulting to info.
func (c *Config) GetLogLevel() slog.Level {
	var lvl slog.Level
	name := DefaultLogLevel
	if c.LogLevel != nil {
		name = strings.TrimSpace(*c.LogLevel)
	}
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
