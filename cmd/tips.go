package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huangsam/speedcheck/core"
	"github.com/huangsam/speedcheck/internal/contract"
	"github.com/huangsam/speedcheck/internal/outwriter"
)

// tipsCmd prints improvement advice based on the latest recorded run.
var tipsCmd = &cobra.Command{
	Use:   "tips",
	Short: "Show tips for improving your connection.",
	Long: `Show targeted advice based on your most recent recorded run.

Tips cover low download/upload speed, high ping, and an unstable
connection, plus general housekeeping advice. With no recorded runs,
you are asked to run a test first.

Examples:
  # Show tips based on the latest run
  speedcheck tips

  # Tips as JSON for other tools
  speedcheck tips --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := executeTips(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot show tips", err)
		}
	},
}

// executeTips loads the latest run and prints advice for it.
func executeTips(_ context.Context, cfg *contract.Config) error {
	results, err := historyStore().Load()
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	var tips []string
	if len(results) == 0 {
		tips = core.ImprovementTips(nil)
	} else {
		tips = core.ImprovementTips(&results[len(results)-1])
	}

	return outwriter.NewOutWriter().WriteTips(tips, cfg)
}
