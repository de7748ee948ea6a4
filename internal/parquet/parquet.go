// Package parquet provides data structures and functions for exporting weekly
// keyword reports to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"os"

	"github.com/huangsam/kwtrend/schema"
	"github.com/parquet-go/parquet-go"
)

// ReportRow represents one ranked keyword of an exported report.
// Its columns mirror the delimited export header.
type ReportRow struct {
	// Week is the exact period key the keyword was grouped under
	Week string `parquet:"week,snappy"`

	// Keyword is the ranked subject
	Keyword string `parquet:"keyword,snappy"`

	// Count is the raw metric text, kept verbatim
	Count string `parquet:"count,snappy"`

	// CountValue is the parsed metric used for ranking (0 when not numeric)
	CountValue int64 `parquet:"count_value,snappy"`

	// AvgRisk is the pass-through risk score (nullable when the column was empty)
	AvgRisk *string `parquet:"avg_risk,optional,snappy"`

	// Trend is the pass-through trend label (nullable when the column was empty)
	Trend *string `parquet:"trend,optional,snappy"`

	// Rank is the 1-based position within the week
	Rank int32 `parquet:"rank,snappy"`
}

// FromExportRows converts export rows into Parquet rows.
func FromExportRows(rows []schema.ExportRow, metric func(string) int) []ReportRow {
	out := make([]ReportRow, len(rows))
	for i, r := range rows {
		out[i] = ReportRow{
			Week:       r.Week,
			Keyword:    r.Keyword,
			Count:      r.Count,
			CountValue: int64(metric(r.Count)),
			AvgRisk:    optional(r.AvgRisk),
			Trend:      optional(r.Trend),
			Rank:       int32(r.Rank),
		}
	}
	return out
}

// WriteReportRows writes a slice of ReportRow structs as Parquet to w.
func WriteReportRows(w io.Writer, data []ReportRow) error {
	// The schema is automatically derived from the ReportRow struct tags
	writer := parquet.NewGenericWriter[ReportRow](w)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WriteReportRowsParquet writes a slice of ReportRow structs to a Parquet file.
func WriteReportRowsParquet(data []ReportRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return WriteReportRows(file, data)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
