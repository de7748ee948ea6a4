package outwriter

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/huangsam/kwtrend/core/agg"
	"github.com/huangsam/kwtrend/internal/contract"
	"github.com/huangsam/kwtrend/internal/parquet"
	"github.com/huangsam/kwtrend/schema"
)

const (
	// ParquetFileSuffix replaces the delimited suffix of suggested filenames in parquet mode.
	ParquetFileSuffix = ".parquet"

	// StdoutTarget as an output file sends the export to stdout.
	StdoutTarget = "-"
)

// WriteExport saves an export report. Text and csv modes write the delimited
// content byte for byte, parquet mode writes the rows as columns, JSON and YAML
// describe the report itself. It returns the path written, or "" for stdout.
func WriteExport(report schema.ExportReport, rows []schema.ExportRow, cfg *contract.Config) (string, error) {
	target := cfg.OutputFile
	if target == StdoutTarget {
		target = ""
	}
	switch cfg.Output {
	case schema.JSONOut:
		return target, writeWithFile(target, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "JSON report")
	case schema.YAMLOut:
		return target, writeWithFile(target, func(w io.Writer) error {
			return writeYAML(w, report)
		}, "YAML report")
	}

	path := ExportPath(report.Filename, cfg)
	var writer func(io.Writer) error
	if cfg.Output == schema.ParquetOut {
		writer = func(w io.Writer) error {
			return parquet.WriteReportRows(w, parquet.FromExportRows(rows, agg.ParseMetric))
		}
	} else {
		writer = func(w io.Writer) error {
			_, err := io.WriteString(w, report.Content)
			return err
		}
	}
	if err := writeWithFile(path, writer, fmt.Sprintf("%d rows", report.Rows)); err != nil {
		return "", fmt.Errorf("error writing export: %w", err)
	}
	return path, nil
}

// ExportPath resolves where an export lands: the explicit output file, stdout
// for "-", or the suggested filename inside the configured directory.
func ExportPath(filename string, cfg *contract.Config) string {
	if cfg.OutputFile == StdoutTarget {
		return ""
	}
	if cfg.OutputFile != "" {
		return cfg.OutputFile
	}
	if cfg.Output == schema.ParquetOut {
		filename = strings.TrimSuffix(filename, schema.ExportFileSuffix) + ParquetFileSuffix
	}
	return filepath.Join(cfg.Dir, filename)
}
