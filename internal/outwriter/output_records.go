package outwriter

import (
	"strconv"

	"github.com/huangsam/kwtrend/internal/contract"
	"github.com/huangsam/kwtrend/schema"
)

// PrintRecords outputs ranked keyword rows, dispatching based on the output format configured.
// It backs both the ranking table and the bar view.
func PrintRecords(rows []schema.ExportRow, cfg *contract.Config) error {
	return render(recordsView(rows, cfg), cfg)
}

func recordsView(rows []schema.ExportRow, cfg *contract.Config) view {
	return view{
		what:   "keywords",
		data:   rows,
		header: []string{"Rank", "Week", "Keyword", "Count", "Avg Risk", "Trend"},
		rows: func(table bool) [][]string {
			data := make([][]string, 0, len(rows))
			var maxWidth int
			if table {
				maxWidth = keywordWidth(cfg)
			}
			for _, r := range rows {
				if !table {
					data = append(data, []string{strconv.Itoa(r.Rank), r.Week, r.Keyword, r.Count, r.AvgRisk, r.Trend})
					continue
				}
				data = append(data, []string{
					strconv.Itoa(r.Rank),
					r.Week,
					contract.TruncateText(r.Keyword, maxWidth),
					r.Count,
					r.AvgRisk,
					trendLabel(r.Trend, cfg),
				})
			}
			return data
		},
	}
}

// PrintPeriods outputs the period selector summary.
func PrintPeriods(summaries []schema.PeriodSummary, cfg *contract.Config) error {
	return render(periodsView(summaries, cfg), cfg)
}

func periodsView(summaries []schema.PeriodSummary, cfg *contract.Config) view {
	return view{
		what:   "weeks",
		data:   summaries,
		header: []string{"Week", "Records", "Total", "Leader"},
		rows: func(table bool) [][]string {
			data := make([][]string, 0, len(summaries))
			var maxWidth int
			if table {
				maxWidth = keywordWidth(cfg)
			}
			for _, s := range summaries {
				leader := s.Leader
				if table {
					leader = contract.TruncateText(leader, maxWidth)
				}
				data = append(data, []string{s.Period, strconv.Itoa(s.Records), strconv.Itoa(s.Total), leader})
			}
			return data
		},
	}
}
