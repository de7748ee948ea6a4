// Package schema has configs, models and constants for all parts of kwtrend.
package schema

// Columns names the header fields the engine reasons about.
// Any header column not named here is carried through as an auxiliary field.
type Columns struct {
	Period string `json:"period" yaml:"period"` // Grouping key column, e.g. "week"
	Entity string `json:"entity" yaml:"entity"` // Ranked subject column, e.g. "keyword"
	Metric string `json:"metric" yaml:"metric"` // Integer ranking column, e.g. "count"
	Risk   string `json:"risk" yaml:"risk"`     // Pass-through risk score column
	Trend  string `json:"trend" yaml:"trend"`   // Pass-through trend label column
}

// DefaultColumns returns the column layout of the weekly keyword report.
func DefaultColumns() Columns {
	return Columns{
		Period: "week",
		Entity: "keyword",
		Metric: "count",
		Risk:   "avg_risk",
		Trend:  "trend",
	}
}

// Required returns the column names a header must contain for records to be useful.
func (c Columns) Required() []string {
	return []string{c.Period, c.Entity, c.Metric, c.Risk, c.Trend}
}

// Record is one parsed row of the weekly keyword statistics.
// Records are created once at parse time and never mutated afterwards.
type Record struct {
	Period string            `json:"week" yaml:"week"`       // Exact period key, never normalized
	Entity string            `json:"keyword" yaml:"keyword"` // Keyword being ranked
	Count  string            `json:"count" yaml:"count"`     // Raw metric text, exported verbatim
	Metric int               `json:"-" yaml:"-"`             // Parsed metric; 0 when Count is not numeric
	Aux    map[string]string `json:"aux,omitempty" yaml:"aux,omitempty"`
}

// Field returns the pass-through column with the given header name, or "".
func (r Record) Field(name string) string {
	return r.Aux[name]
}

// RankedRecord pairs a Record with its 1-based position inside its period group.
type RankedRecord struct {
	Rank   int `json:"rank" yaml:"rank"`
	Record `yaml:",inline"`
}

// PeriodSummary describes one entry of the period selector.
type PeriodSummary struct {
	Period  string `json:"week" yaml:"week"`
	Records int    `json:"records" yaml:"records"`
	Total   int    `json:"total" yaml:"total"`
	Leader  string `json:"leader" yaml:"leader"` // Top-ranked keyword, empty for an empty group
}
