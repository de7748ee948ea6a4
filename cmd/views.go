package cmd

import (
	"github.com/huangsam/kwtrend/core"
	"github.com/huangsam/kwtrend/schema"
	"github.com/spf13/cobra"
)

// periodsCmd lists the weeks of a report.
var periodsCmd = &cobra.Command{
	Use:   "periods [source]",
	Short: "List every week with its record count, total and leader.",
	Long: `List the weeks found in a report in canonical order.

Each week shows how many records it holds, its summed count and the
top-ranked keyword. Use the week names with --week on other commands.

Examples:
  kwtrend periods report.csv
  cat report.csv | kwtrend periods -`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("periods view", core.ExecutePeriods)
	},
}

// rankingCmd prints the ranked table.
var rankingCmd = &cobra.Command{
	Use:   "ranking [source]",
	Short: "Show keywords ranked by count within each week.",
	Long: `Show the ranked table for one week, or for every week in canonical order.

Ranks restart at 1 for each week. Ties keep their order from the report.

Examples:
  kwtrend ranking report.csv --week 2024-W10
  kwtrend ranking report.csv --limit 20 --output csv --output-file ranking.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("ranking view", core.ExecuteRanking)
	},
}

// topCmd prints the bar chart series.
var topCmd = &cobra.Command{
	Use:   "top [source]",
	Short: "Show the top keywords by count (default 10).",
	Long: `Show the top keywords of one week, or of every record across all weeks.

Examples:
  kwtrend top report.csv
  kwtrend top report.csv --week 2024-W10 --limit 3`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: viewSetup(schema.BarView),
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("top view", core.ExecuteChart)
	},
}

// trendsCmd prints the line chart series.
var trendsCmd = &cobra.Command{
	Use:   "trends [source]",
	Short: "Compare the top keywords across weeks (default 5).",
	Long: `Compare keyword counts week over week.

Without --week, the keywords with the highest totals are aligned to every week,
with 0 where a keyword is absent. With --week, the top points of that week are shown.

Examples:
  kwtrend trends report.csv --limit 3
  kwtrend trends report.csv --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: viewSetup(schema.LineView),
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("trends view", core.ExecuteChart)
	},
}

// totalsCmd prints the weekly totals series.
var totalsCmd = &cobra.Command{
	Use:     "totals [source]",
	Short:   "Show the summed count of every week.",
	Args:    cobra.MaximumNArgs(1),
	PreRunE: viewSetup(schema.WeeklyView),
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("totals view", core.ExecuteChart)
	},
}

// chartCmd prints the series of the configured view.
var chartCmd = &cobra.Command{
	Use:   "chart [source]",
	Short: "Show the series behind the configured chart view.",
	Long: `Show the series of the bar, line or weekly view, chosen by --view
or the view key of the config file.

Examples:
  kwtrend chart report.csv --view weekly`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("chart view", core.ExecuteChart)
	},
}

// exportCmd saves the delimited report.
var exportCmd = &cobra.Command{
	Use:   "export [source]",
	Short: "Export one week, or every week, as a delimited report.",
	Long: `Export the ranked report with a byte order mark and 6 columns:
Week, Keyword, Count, Avg_Risk, Trend and Rank.

The file is named weekly_report_<week>.csv (or weekly_report_all.csv) inside --dir,
unless --output-file is given. Use --output-file - to write to stdout.
With --output parquet the rows are written as a Parquet file instead.

Examples:
  kwtrend export report.csv --week 2024-W10 --dir reports
  kwtrend export report.csv --output parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		runExecutor("export", core.ExecuteExport)
	},
}
