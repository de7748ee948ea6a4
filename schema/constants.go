package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// ViewMode represents the chart view a series is built for.
	ViewMode string

	// TrendLabel represents the pass-through trend direction of a keyword.
	TrendLabel string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	YAMLOut    OutputMode = "yaml"
	ParquetOut OutputMode = "parquet"
)

// All chart views supported.
const (
	BarView    ViewMode = "bar" // default
	LineView   ViewMode = "line"
	WeeklyView ViewMode = "weekly"
)

// Trend labels with special rendering. Any other label is shown as-is.
const (
	TrendUp   TrendLabel = "up"
	TrendDown TrendLabel = "down"
	TrendFlat TrendLabel = "flat"
)

// Default slice sizes for each view.
const (
	DefaultBarLimit   = 10
	DefaultTrendLimit = 5
)

// Export layout.
const (
	ExportMediaType    = "text/csv;charset=utf-8;"
	ExportAllFilename  = "weekly_report_all.csv"
	ExportFilePrefix   = "weekly_report_"
	ExportFileSuffix   = ".csv"
	ByteOrderMark      = "\uFEFF"
	ExportFieldDivider = ','
)

// ExportHeader is the literal header row of every export.
var ExportHeader = []string{"Week", "Keyword", "Count", "Avg_Risk", "Trend", "Rank"}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	YAMLOut:    {},
	ParquetOut: {},
}

// ValidViewModes lists all valid chart views.
var ValidViewModes = map[ViewMode]struct{}{
	BarView:    {},
	LineView:   {},
	WeeklyView: {},
}
