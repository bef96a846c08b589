package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huangsam/speedcheck/core"
	"github.com/huangsam/speedcheck/internal/contract"
	"github.com/huangsam/speedcheck/internal/outwriter"
)

// summaryCmd prints aggregate statistics over the recorded history.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show aggregate statistics over the recorded history.",
	Long: `Aggregate the recorded history into trend statistics.

Reports mean/median/min/max for download, upload and ping, the mean
stability score, the variability of download speed across runs, and
whether download speed is trending up or down.

Examples:
  # Show the summary table
  speedcheck summary

  # Summary as JSON for dashboards
  speedcheck summary --output json --output-file summary.json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := executeSummary(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot summarize history", err)
		}
	},
}

// executeSummary aggregates the history and prints the statistics.
func executeSummary(_ context.Context, cfg *contract.Config) error {
	results, err := historyStore().Load()
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}
	return outwriter.NewOutWriter().WriteSummary(core.Summarize(results), cfg)
}
