package cmd

import (
	"github.com/huangsam/kwtrend/internal/iocache"
	"github.com/huangsam/kwtrend/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:     "mcp [source]",
	Short:   "Start the kwtrend MCP server",
	Long:    `Launch an MCP server that allows AI agents to rank, chart and export keyword reports via standard tools.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, iocache.NewEngineStore(cfg.CacheTTL), loader)
	},
}
