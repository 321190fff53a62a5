package contract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/huangsam/kdstats/schema"
)

// Default values for configuration.
const (
	DefaultOutputDir   = "output"
	DefaultChartFile   = "game_statistics_graph.pdf"
	DefaultTableFile   = "game_statistics_data.pdf"
	DefaultRowsPerPage = schema.DefaultPageRows
	DefaultXTickStep   = schema.DefaultTickStep
	MaxRowsPerPage     = 200
)

// Config holds the runtime configuration for a report run.
// This struct is the "final, validated" config.
type Config struct {
	OutputDir     string
	ChartFile     string
	TableFile     string
	RowsPerPage   int
	XTickStep     int
	SkipMalformed bool // Skip rows with bad numbers instead of aborting the run
	UseColors     bool // Enable colored labels in console output
	ShowSummary   bool // Print the run summary table after a successful run
	Width         int  // Terminal width override (0 = auto-detect)
	Version       string
}

// ConfigRawInput holds the raw inputs from all sources (config file, env, flags).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	OutputDir     string `mapstructure:"output-dir"`
	ChartFile     string `mapstructure:"chart-file"`
	TableFile     string `mapstructure:"table-file"`
	RowsPerPage   int    `mapstructure:"rows-per-page"`
	XTickStep     int    `mapstructure:"xtick-step"`
	SkipMalformed string `mapstructure:"skip-malformed"`
	Color         string `mapstructure:"color"`
	Summary       string `mapstructure:"summary"`
	Width         int    `mapstructure:"width"`
}

// DefaultRawInput returns the raw input matching the documented defaults.
func DefaultRawInput() *ConfigRawInput {
	return &ConfigRawInput{
		OutputDir:     DefaultOutputDir,
		ChartFile:     DefaultChartFile,
		TableFile:     DefaultTableFile,
		RowsPerPage:   DefaultRowsPerPage,
		XTickStep:     DefaultXTickStep,
		SkipMalformed: "yes",
		Color:         "yes",
		Summary:       "yes",
	}
}

// ChartPath returns where the chart document is written.
func (c *Config) ChartPath() string {
	return filepath.Join(c.OutputDir, c.ChartFile)
}

// TablePath returns where the table document is written.
func (c *Config) TablePath() string {
	return filepath.Join(c.OutputDir, c.TableFile)
}

// Creator returns the producer string stamped into generated documents.
func (c *Config) Creator() string {
	if c.Version == "" {
		return schema.DefaultCreator
	}
	return schema.DefaultCreator + " " + c.Version
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateToggles(cfg, input); err != nil {
		return err
	}
	if err := validateLayout(cfg, input); err != nil {
		return err
	}
	if err := validateOutputs(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateToggles parses the yes/no style switches.
func validateToggles(cfg *Config, input *ConfigRawInput) error {
	skip, err := ParseBoolString(input.SkipMalformed)
	if err != nil {
		return fmt.Errorf("invalid skip-malformed value: %w", err)
	}
	cfg.SkipMalformed = skip

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color value: %w", err)
	}
	cfg.UseColors = colors

	summary, err := ParseBoolString(input.Summary)
	if err != nil {
		return fmt.Errorf("invalid summary value: %w", err)
	}
	cfg.ShowSummary = summary
	return nil
}

// validateLayout checks pagination, tick spacing and width.
func validateLayout(cfg *Config, input *ConfigRawInput) error {
	if input.RowsPerPage <= 0 || input.RowsPerPage > MaxRowsPerPage {
		return fmt.Errorf("rows-per-page must be greater than 0 and cannot exceed %d (received %d)", MaxRowsPerPage, input.RowsPerPage)
	}
	cfg.RowsPerPage = input.RowsPerPage

	if input.XTickStep <= 0 {
		return fmt.Errorf("xtick-step must be greater than 0 (received %d)", input.XTickStep)
	}
	cfg.XTickStep = input.XTickStep

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width
	return nil
}

// validateOutputs checks the output directory and document names.
func validateOutputs(cfg *Config, input *ConfigRawInput) error {
	cfg.OutputDir = strings.TrimSpace(input.OutputDir)
	if cfg.OutputDir == "" {
		return fmt.Errorf("output-dir cannot be empty")
	}

	chart, err := validateDocumentName("chart-file", input.ChartFile)
	if err != nil {
		return err
	}
	table, err := validateDocumentName("table-file", input.TableFile)
	if err != nil {
		return err
	}
	if chart == table {
		return fmt.Errorf("chart-file and table-file must differ (both are %q)", chart)
	}
	cfg.ChartFile = chart
	cfg.TableFile = table
	return nil
}

// validateDocumentName requires a bare file name with a .pdf extension.
func validateDocumentName(key, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%s cannot be empty", key)
	}
	if filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%s must be a file name without directories (received %q)", key, name)
	}
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		return "", fmt.Errorf("%s must end with .pdf (received %q)", key, name)
	}
	return name, nil
}
