package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huangsam/speedcheck/internal/contract"
	"github.com/huangsam/speedcheck/internal/outwriter"
)

// historyCmd lists the recorded runs.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded speed test runs.",
	Long: `List the most recent recorded runs as a table, CSV, or JSON.

Examples:
  # Show the last 25 runs
  speedcheck history

  # Show the last 100 runs as CSV
  speedcheck history --limit 100 --output csv

  # Write the full history to a file
  speedcheck history --limit 1000 --output json --output-file history.json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := executeHistory(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot list history", err)
		}
	},
}

// executeHistory loads and prints the most recent runs.
func executeHistory(_ context.Context, cfg *contract.Config) error {
	results, err := historyStore().Load()
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	if len(results) > cfg.ResultLimit {
		results = results[len(results)-cfg.ResultLimit:]
	}
	return outwriter.NewOutWriter().WriteHistory(results, cfg)
}
