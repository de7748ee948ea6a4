package core

import (
	"github.com/huangsam/kwtrend/core/algo"
	"github.com/huangsam/kwtrend/schema"
)

// PeriodSeries returns the top-n records of one period as (keyword, count)
// pairs, in rank order.
func PeriodSeries(e *Engine, period string, n int) []schema.SeriesPoint {
	top := algo.TopN(e.Group(period), n)
	points := make([]schema.SeriesPoint, len(top))
	for i, r := range top {
		points[i] = schema.SeriesPoint{Entity: r.Entity, Metric: r.Metric}
	}
	return points
}

// TopRecords returns the records for the bar view. With a period it is that
// group's top-n. Without one, every record of every period is re-ranked by
// metric (ties keep canonical period order) and cut to n.
func TopRecords(e *Engine, period string, n int) []schema.Record {
	if period != "" {
		return algo.TopN(e.Group(period), n)
	}
	return algo.TopN(algo.RankRecords(e.All()), n)
}

// CrossPeriodSeries compares the top-k keywords across all periods.
//
// Keywords are totalled over the periods where they appear, ranked by that
// total (ties keep first-discovery order, walking periods canonically and each
// group in rank order) and the top k are aligned onto the full canonical
// period axis with 0 where a keyword has no record. When a period holds the
// same keyword more than once, the lowest ranked occurrence is the value used.
func CrossPeriodSeries(e *Engine, k int) schema.TrendSeries {
	periods := e.Periods()
	byEntity := make(map[string]map[string]int)
	var discovered []string

	for _, period := range periods {
		for _, r := range e.groups[period] {
			values, ok := byEntity[r.Entity]
			if !ok {
				values = make(map[string]int)
				byEntity[r.Entity] = values
				discovered = append(discovered, r.Entity)
			}
			values[period] = r.Metric
		}
	}

	totals := make([]algo.EntityTotal, len(discovered))
	for i, entity := range discovered {
		sum := 0
		for _, v := range byEntity[entity] {
			sum += v
		}
		totals[i] = algo.EntityTotal{Entity: entity, Total: sum}
	}

	top := algo.RankTotals(totals, k)
	lines := make([]schema.TrendLine, len(top))
	for i, t := range top {
		values := make([]int, len(periods))
		for j, period := range periods {
			values[j] = byEntity[t.Entity][period]
		}
		lines[i] = schema.TrendLine{Entity: t.Entity, Total: t.Total, Values: values}
	}

	return schema.TrendSeries{Periods: periods, Lines: lines}
}

// WeeklyTotals sums every period's metrics on the canonical period axis.
func WeeklyTotals(e *Engine) schema.TotalsSeries {
	periods := e.Periods()
	values := make([]int, len(periods))
	for i, period := range periods {
		values[i] = schema.SumMetrics(e.groups[period])
	}
	return schema.TotalsSeries{Periods: periods, Values: values}
}

// Summaries describes every canonical period for a period selector.
func Summaries(e *Engine) []schema.PeriodSummary {
	periods := e.Periods()
	out := make([]schema.PeriodSummary, len(periods))
	for i, period := range periods {
		group := e.groups[period]
		s := schema.PeriodSummary{
			Period:  period,
			Records: len(group),
			Total:   schema.SumMetrics(group),
		}
		if len(group) > 0 {
			s.Leader = group[0].Entity
		}
		out[i] = s
	}
	return out
}
