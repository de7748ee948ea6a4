package contract

import (
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/kwtrend/schema"
)

// Default values for configuration.
const (
	DefaultCacheTTL = 5 * time.Minute
	MaxResultLimit  = 1000
	StdinSource     = "-"
)

// Config holds the runtime configuration for every view.
// This struct remains the "final, validated" config.
type Config struct {
	Source       string
	Week         string // Empty means all periods
	Limit        int    // 0 means the view default (all rows for the ranking)
	View         schema.ViewMode
	Output       schema.OutputMode
	OutputFile   string
	Dir          string
	Width        int // Terminal width override (0 = auto-detect)
	CacheTTL     time.Duration
	StrictHeader bool
	Columns      schema.Columns

	UseColors bool // Enable colored trend labels in table output
}

// ColumnsRawInput holds optional header name overrides from the YAML config file.
type ColumnsRawInput struct {
	Period string `mapstructure:"period"`
	Entity string `mapstructure:"entity"`
	Metric string `mapstructure:"metric"`
	Risk   string `mapstructure:"risk"`
	Trend  string `mapstructure:"trend"`
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	SourceArg string

	// --- Fields from rootCmd.PersistentFlags() ---
	Source       string `mapstructure:"source"`
	Week         string `mapstructure:"week"`
	Limit        int    `mapstructure:"limit"`
	View         string `mapstructure:"view"`
	Output       string `mapstructure:"output"`
	OutputFile   string `mapstructure:"output-file"`
	Dir          string `mapstructure:"dir"`
	Width        int    `mapstructure:"width"`
	Color        string `mapstructure:"color"`
	CacheTTL     string `mapstructure:"cache-ttl"`
	StrictHeader bool   `mapstructure:"strict-header"`

	// --- Header overrides from config file ---
	Columns ColumnsRawInput `mapstructure:"columns"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// LimitOr returns the configured limit, or fallback when none was given.
func (c *Config) LimitOr(fallback int) int {
	if c.Limit > 0 {
		return c.Limit
	}
	return fallback
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processCacheTTL(cfg, input); err != nil {
		return err
	}
	return processColumns(cfg, input)
}

// validateSimpleInputs processes and validates all scalar fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.Source = strings.TrimSpace(input.Source)
	if arg := strings.TrimSpace(input.SourceArg); arg != "" {
		cfg.Source = arg
	}
	cfg.Week = input.Week
	cfg.OutputFile = input.OutputFile
	cfg.Dir = input.Dir
	cfg.StrictHeader = input.StrictHeader

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. Limit Validation ---
	if input.Limit < 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit cannot be negative or exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.Limit = input.Limit

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	// --- 2. View and Output Validation ---
	cfg.View = schema.BarView
	if input.View != "" {
		cfg.View = schema.ViewMode(strings.ToLower(input.View))
		if _, ok := schema.ValidViewModes[cfg.View]; !ok {
			return fmt.Errorf("invalid view '%s'. must be bar, line, weekly", input.View)
		}
	}

	cfg.Output = schema.TextOut
	if input.Output != "" {
		cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
		if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
			return fmt.Errorf("invalid output format '%s'. must be text, csv, json, yaml, parquet", input.Output)
		}
	}

	return nil
}

// processCacheTTL parses the engine cache lifetime used by the MCP server.
func processCacheTTL(cfg *Config, input *ConfigRawInput) error {
	cfg.CacheTTL = DefaultCacheTTL
	if input.CacheTTL == "" {
		return nil
	}
	ttl, err := time.ParseDuration(input.CacheTTL)
	if err != nil {
		return fmt.Errorf("invalid cache-ttl '%s': %w", input.CacheTTL, err)
	}
	if ttl <= 0 {
		return fmt.Errorf("cache-ttl must be positive (received %s)", input.CacheTTL)
	}
	cfg.CacheTTL = ttl
	return nil
}

// processColumns layers the header overrides on top of the default column layout.
func processColumns(cfg *Config, input *ConfigRawInput) error {
	cols := schema.DefaultColumns()
	override := func(dst *string, value string) {
		if v := strings.TrimSpace(value); v != "" {
			*dst = v
		}
	}
	override(&cols.Period, input.Columns.Period)
	override(&cols.Entity, input.Columns.Entity)
	override(&cols.Metric, input.Columns.Metric)
	override(&cols.Risk, input.Columns.Risk)
	override(&cols.Trend, input.Columns.Trend)

	if cols.Period == cols.Entity || cols.Period == cols.Metric || cols.Entity == cols.Metric {
		return fmt.Errorf("columns period (%s), entity (%s) and metric (%s) must be distinct", cols.Period, cols.Entity, cols.Metric)
	}
	cfg.Columns = cols
	return nil
}
