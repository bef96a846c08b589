package cmd

import (
	"github.com/spf13/cobra"

	"github.com/huangsam/speedcheck/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Speedcheck MCP server",
	Long:  `Launch an MCP server that lets AI agents query the recorded speed test history, summary statistics, and improvement tips via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Keep setup quiet: stdio carries the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, historyStore())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
