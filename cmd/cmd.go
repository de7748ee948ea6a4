// Package cmd defines the command-line interface for kwtrend.
package cmd

import (
	"github.com/huangsam/kwtrend/internal/contract"
	"github.com/huangsam/kwtrend/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(periodsCmd)
	rootCmd.AddCommand(rankingCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(trendsCmd)
	rootCmd.AddCommand(totalsCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("source", "", "Path to the weekly report, or - for stdin")
	rootCmd.PersistentFlags().StringP("week", "w", "", "Week to select (empty = all weeks)")
	rootCmd.PersistentFlags().IntP("limit", "l", 0, "Number of results to display (0 = view default)")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or yaml or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to (- for stdout)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored trend labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Bool("strict-header", false, "Fail when the header lacks a required column")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of chartCmd to Viper
	chartCmd.Flags().String("view", string(schema.BarView), "Chart view: bar or line or weekly")
	if err := viper.BindPFlags(chartCmd.Flags()); err != nil {
		contract.LogFatal("Error binding chart flags", err)
	}

	// Bind all flags of exportCmd to Viper
	exportCmd.Flags().String("dir", "", "Directory for the suggested export filename")
	if err := viper.BindPFlags(exportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding export flags", err)
	}

	// Bind all flags of mcpCmd to Viper
	mcpCmd.Flags().String("cache-ttl", contract.DefaultCacheTTL.String(), "How long built reports stay cached")
	if err := viper.BindPFlags(mcpCmd.Flags()); err != nil {
		contract.LogFatal("Error binding mcp flags", err)
	}
}
