package schema

import "strconv"

// ExportRow is the fixed 6-column tuple emitted by the export encoder.
type ExportRow struct {
	Week    string `json:"week" yaml:"week"`
	Keyword string `json:"keyword" yaml:"keyword"`
	Count   string `json:"count" yaml:"count"`
	AvgRisk string `json:"avg_risk" yaml:"avg_risk"`
	Trend   string `json:"trend" yaml:"trend"`
	Rank    int    `json:"rank" yaml:"rank"`
}

// Fields returns the row in export column order.
func (r ExportRow) Fields() []string {
	return []string{r.Week, r.Keyword, r.Count, r.AvgRisk, r.Trend, strconv.Itoa(r.Rank)}
}

// ExportReport is the response to an export request: delimited text plus a
// suggested filename. Content already carries the byte-order marker.
type ExportReport struct {
	Filename  string `json:"filename" yaml:"filename"`
	MediaType string `json:"media_type" yaml:"media_type"`
	Content   string `json:"content" yaml:"content"`
	Rows      int    `json:"rows" yaml:"rows"`
}

// ExportFilename returns the suggested filename for a period, or for all
// periods when period is empty.
func ExportFilename(period string) string {
	if period == "" {
		return ExportAllFilename
	}
	return ExportFilePrefix + period + ExportFileSuffix
}
