package core

import (
	"strings"

	"github.com/huangsam/kwtrend/schema"
)

// ExportRows builds the export rows for one period, or for every period in
// canonical order when period is empty. Ranks restart at 1 per period.
func ExportRows(e *Engine, period string) []schema.ExportRow {
	return RowsOf(e.Ranked(period), e.Columns())
}

// RowsOf flattens ranked records into export rows, reading the pass-through
// risk and trend values from the columns named by cols.
func RowsOf(ranked []schema.RankedRecord, cols schema.Columns) []schema.ExportRow {
	rows := make([]schema.ExportRow, len(ranked))
	for i, r := range ranked {
		rows[i] = schema.ExportRow{
			Week:    r.Period,
			Keyword: r.Entity,
			Count:   r.Count,
			AvgRisk: r.Field(cols.Risk),
			Trend:   r.Field(cols.Trend),
			Rank:    r.Rank,
		}
	}
	return rows
}

// EncodeCSV renders rows as delimited text: a byte-order marker, the fixed
// header, then one line per row, lines joined by LF with no trailing newline.
// The output depends only on rows.
func EncodeCSV(rows []schema.ExportRow) string {
	var b strings.Builder
	b.WriteString(schema.ByteOrderMark)
	writeLine(&b, schema.ExportHeader)
	for _, row := range rows {
		b.WriteByte('\n')
		writeLine(&b, row.Fields())
	}
	return b.String()
}

// Export answers an export request for one period, or all when period is empty.
func Export(e *Engine, period string) schema.ExportReport {
	rows := ExportRows(e, period)
	return schema.ExportReport{
		Filename:  schema.ExportFilename(period),
		MediaType: schema.ExportMediaType,
		Content:   EncodeCSV(rows),
		Rows:      len(rows),
	}
}

func writeLine(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteRune(schema.ExportFieldDivider)
		}
		b.WriteString(quoteField(f))
	}
}

// quoteField wraps fields holding the delimiter, a quote or a line break in
// quotes and doubles the inner quotes. Everything else is emitted bare.
func quoteField(field string) string {
	if !strings.ContainsAny(field, `,"`+"\r\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
