// Package outwriter has output and writer logic.
package outwriter

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/kwtrend/internal/contract"
	"github.com/huangsam/kwtrend/schema"
	"golang.org/x/term"
)

// ErrUnsupportedOutput is returned when a view cannot be rendered in the configured format.
var ErrUnsupportedOutput = errors.New("unsupported output format")

// view is the render model shared by every printer: one payload for the
// structured encoders plus a header and rows for csv and tables.
type view struct {
	what   string               // Human name used in write confirmations
	data   any                  // Payload for JSON and YAML
	header []string             // Header for CSV and table output
	rows   func(bool) [][]string // Rows; true asks for table formatting
}

// render dispatches a view based on the output format configured.
func render(v view, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, v.data)
		}, "JSON "+v.what); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.YAMLOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeYAML(w, v.data)
		}, "YAML "+v.what); err != nil {
			return fmt.Errorf("error writing YAML output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVRows(w, v.header, v.rows(false))
		}, "CSV "+v.what); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("%w: %s only supports parquet for export", ErrUnsupportedOutput, v.what)
	default:
		// Default to human-readable table
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTable(w, v.header, v.rows(true))
		}, "table of "+v.what); err != nil {
			return fmt.Errorf("error writing table output: %w", err)
		}
	}
	return nil
}

// keywordWidth is resolved once per table render.
var keywordWidth = GetMaxTableKeywordWidth

// GetMaxTableKeywordWidth calculates the maximum width for keywords in table output
// based on terminal width and table configuration.
func GetMaxTableKeywordWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Rank + Week + Count + Avg Risk + Trend with borders/padding
	baseWidth := 45 + 20

	available := termWidth - baseWidth
	if available < 15 {
		return 15
	}
	if available > 60 {
		return 60
	}
	return available
}

// trendLabel renders a trend for tables, coloured when enabled.
func trendLabel(trend string, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorLabel(trend)
	}
	return contract.GetPlainLabel(trend)
}
