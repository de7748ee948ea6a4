// Package algo has the ranking algorithms shared by every view.
package algo

import (
	"cmp"
	"slices"

	"github.com/huangsam/kwtrend/schema"
)

// RankRecords returns a copy of records sorted by metric in descending order.
// Records with equal metrics keep their input order. The input is not modified.
func RankRecords(records []schema.Record) []schema.Record {
	ranked := slices.Clone(records)
	slices.SortStableFunc(ranked, compareByMetric)
	return ranked
}

// TopN returns the first min(n, len(records)) records. It never copies and
// never fails: n <= 0 or an empty input yields an empty slice.
func TopN[T any](records []T, n int) []T {
	if n <= 0 || len(records) == 0 {
		return []T{}
	}
	if n >= len(records) {
		return records
	}
	return records[:n]
}

// WithRanks attaches 1-based ranks to an already ranked group.
func WithRanks(ranked []schema.Record) []schema.RankedRecord {
	out := make([]schema.RankedRecord, len(ranked))
	for i, r := range ranked {
		out[i] = schema.RankedRecord{Rank: i + 1, Record: r}
	}
	return out
}

// EntityTotal is a keyword together with its summed metric.
type EntityTotal struct {
	Entity string
	Total  int
}

// RankTotals sorts totals by Total in descending order, keeping the input
// order of equal totals, and returns the top k.
func RankTotals(totals []EntityTotal, k int) []EntityTotal {
	ranked := slices.Clone(totals)
	slices.SortStableFunc(ranked, func(a, b EntityTotal) int {
		return cmp.Compare(b.Total, a.Total)
	})
	return TopN(ranked, k)
}

// compareByMetric orders records from the highest metric to the lowest.
func compareByMetric(a, b schema.Record) int {
	return cmp.Compare(b.Metric, a.Metric)
}
