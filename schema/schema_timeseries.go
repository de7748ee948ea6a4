package schema

// SeriesPoint is one (keyword, metric) pair of a single-period series.
type SeriesPoint struct {
	Entity string `json:"keyword" yaml:"keyword"`
	Metric int    `json:"count" yaml:"count"`
}

// TrendLine is one keyword's values aligned to the canonical period axis.
type TrendLine struct {
	Entity string `json:"keyword" yaml:"keyword"`
	Total  int    `json:"total" yaml:"total"`   // Sum over the periods where the keyword appears
	Values []int  `json:"values" yaml:"values"` // One value per period, 0 where absent
}

// TrendSeries holds the cross-period comparison of the top keywords.
type TrendSeries struct {
	Periods []string    `json:"weeks" yaml:"weeks"`
	Lines   []TrendLine `json:"lines" yaml:"lines"`
}

// TotalsSeries holds the summed metric of every period on the canonical axis.
type TotalsSeries struct {
	Periods []string `json:"weeks" yaml:"weeks"`
	Values  []int    `json:"values" yaml:"values"`
}
