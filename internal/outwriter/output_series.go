package outwriter

import (
	"strconv"

	"github.com/huangsam/kwtrend/internal/contract"
	"github.com/huangsam/kwtrend/schema"
)

// PrintPeriodSeries outputs the top keywords of a single week.
func PrintPeriodSeries(points []schema.SeriesPoint, cfg *contract.Config) error {
	return render(periodSeriesView(points, cfg), cfg)
}

func periodSeriesView(points []schema.SeriesPoint, cfg *contract.Config) view {
	return view{
		what:   "series",
		data:   points,
		header: []string{"Rank", "Keyword", "Count"},
		rows: func(table bool) [][]string {
			data := make([][]string, 0, len(points))
			var maxWidth int
			if table {
				maxWidth = keywordWidth(cfg)
			}
			for i, p := range points {
				keyword := p.Entity
				if table {
					keyword = contract.TruncateText(keyword, maxWidth)
				}
				data = append(data, []string{strconv.Itoa(i + 1), keyword, strconv.Itoa(p.Metric)})
			}
			return data
		},
	}
}

// PrintTrendSeries outputs the aligned cross-week comparison, one row per keyword
// and one column per week.
func PrintTrendSeries(series schema.TrendSeries, cfg *contract.Config) error {
	return render(trendSeriesView(series, cfg), cfg)
}

func trendSeriesView(series schema.TrendSeries, cfg *contract.Config) view {
	header := append([]string{"Keyword", "Total"}, series.Periods...)
	return view{
		what:   "trends",
		data:   series,
		header: header,
		rows: func(table bool) [][]string {
			data := make([][]string, 0, len(series.Lines))
			var maxWidth int
			if table {
				maxWidth = keywordWidth(cfg)
			}
			for _, line := range series.Lines {
				keyword := line.Entity
				if table {
					keyword = contract.TruncateText(keyword, maxWidth)
				}
				row := []string{keyword, strconv.Itoa(line.Total)}
				for _, v := range line.Values {
					row = append(row, strconv.Itoa(v))
				}
				data = append(data, row)
			}
			return data
		},
	}
}

// PrintTotals outputs the summed count of every week.
func PrintTotals(series schema.TotalsSeries, cfg *contract.Config) error {
	return render(totalsView(series), cfg)
}

func totalsView(series schema.TotalsSeries) view {
	return view{
		what:   "totals",
		data:   series,
		header: []string{"Week", "Total"},
		rows: func(bool) [][]string {
			data := make([][]string, 0, len(series.Periods))
			for i, period := range series.Periods {
				data = append(data, []string{period, strconv.Itoa(series.Values[i])})
			}
			return data
		},
	}
}
