package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// envPrefix is the prefix for environment variable overrides,
// e.g. ODATLAS_LOGGING_LEVEL.
const envPrefix = "ODATLAS"

// Config is the complete report-generator configuration.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Paths    PathsConfig    `yaml:"paths"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Render   RenderConfig   `yaml:"render"`
	Geo      GeoConfig      `yaml:"geo"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json text"`
	Output string `yaml:"output" validate:"oneof=stdout file both"`
	File   string `yaml:"file"`
}

// PathsConfig holds the filesystem layout. Relative paths resolve
// against BaseDir.
type PathsConfig struct {
	BaseDir    string `yaml:"base_dir"`
	ReportsDir string `yaml:"reports_dir" validate:"required"`
}

// PipelineConfig holds the data inputs and the reporting window.
type PipelineConfig struct {
	InputFile string `yaml:"input_file" validate:"required"`
	GeoFile   string `yaml:"geo_file" validate:"required"`
	// Month is the 12-month-ending reporting month every year is
	// filtered to, so all years cover an equivalent window.
	Month string `yaml:"month" validate:"required"`
}

// RenderConfig controls artifact size and format.
type RenderConfig struct {
	Format        string  `yaml:"format" validate:"oneof=png svg pdf"`
	MapWidthIn    float64 `yaml:"map_width_in" validate:"gt=0"`
	MapHeightIn   float64 `yaml:"map_height_in" validate:"gt=0"`
	ChartWidthIn  float64 `yaml:"chart_width_in" validate:"gt=0"`
	ChartHeightIn float64 `yaml:"chart_height_in" validate:"gt=0"`
}

// AnchorOverride repositions one state's map label.
type AnchorOverride struct {
	Lon float64 `yaml:"lon"`
	Lat float64 `yaml:"lat"`
}

// GeoConfig describes the polygon source and label placement.
type GeoConfig struct {
	// NameProperty is the GeoJSON feature property carrying the state name.
	NameProperty string `yaml:"name_property" validate:"required"`
	// LabelOverrides replaces the bounding-box midpoint anchor for
	// states whose midpoint falls outside their visible shape, keyed by
	// full state name.
	LabelOverrides map[string]AnchorOverride `yaml:"label_overrides"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stdout",
			File:   "logs/odatlas.log",
		},
		Paths: PathsConfig{
			BaseDir:    ".",
			ReportsDir: "reports",
		},
		Pipeline: PipelineConfig{
			InputFile: "data/vsrr_overdose_deaths.csv",
			GeoFile:   "data/us_states.geojson",
			Month:     "August",
		},
		Render: RenderConfig{
			Format:        "png",
			MapWidthIn:    10,
			MapHeightIn:   6,
			ChartWidthIn:  7,
			ChartHeightIn: 4.5,
		},
		Geo: GeoConfig{
			NameProperty: "name",
		},
	}
}

// Load builds the configuration: defaults, overlaid by the YAML file at
// path (skipped when path is empty or absent), overlaid by ODATLAS_*
// environment variables, then validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file %s: %w", path, err)
			}
		case os.IsNotExist(err):
			// Optional file; defaults and environment still apply.
		default:
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("apply environment overrides: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.resolvePaths()
	return &cfg, nil
}

// resolvePaths makes relative paths absolute against BaseDir.
func (c *Config) resolvePaths() {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(c.Paths.BaseDir, p)
	}
	c.Paths.ReportsDir = resolve(c.Paths.ReportsDir)
	c.Pipeline.InputFile = resolve(c.Pipeline.InputFile)
	c.Pipeline.GeoFile = resolve(c.Pipeline.GeoFile)
	c.Logging.File = resolve(c.Logging.File)
}

// ReportPath returns the path of a report artifact under ReportsDir.
func (c *Config) ReportPath(name string) string {
	return filepath.Join(c.Paths.ReportsDir, name)
}

// EnsureReportsDir creates the reports directory tree.
func (c *Config) EnsureReportsDir() error {
	if err := os.MkdirAll(c.Paths.ReportsDir, 0755); err != nil {
		return fmt.Errorf("create reports directory: %w", err)
	}
	return nil
}
