package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huangsam/speedcheck/internal/chartgen"
	"github.com/huangsam/speedcheck/internal/contract"
)

// chartCmd groups the chart rendering subcommands.
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render PNG charts of your speed test results.",
	Long: `Render PNG charts from the recorded history.

Subcommands:
  current  - Bar charts of the most recent run
  history  - Line charts of download/upload and ping over time

Examples:
  # Chart the latest run
  speedcheck chart current

  # Chart the full history to a custom path
  speedcheck chart history --history-chart trends.png`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// chartCurrentCmd renders bar charts of the most recent run.
var chartCurrentCmd = &cobra.Command{
	Use:     "current",
	Short:   "Render bar charts of the most recent run.",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := executeChartCurrent(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot render current chart", err)
		}
	},
}

// chartHistoryCmd renders line charts of the recorded history.
var chartHistoryCmd = &cobra.Command{
	Use:     "history",
	Short:   "Render line charts of speed and ping over time.",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := executeChartHistory(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot render history chart", err)
		}
	},
}

// executeChartCurrent charts the latest run, if any.
func executeChartCurrent(_ context.Context, cfg *contract.Config) error {
	results, err := historyStore().Load()
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}
	if len(results) == 0 {
		fmt.Println("No results to visualize. Run a speed test first.")
		return nil
	}

	last := results[len(results)-1]
	if err := chartgen.RenderCurrent(&last, cfg.CurrentChartFile); err != nil {
		return err
	}
	fmt.Printf("Chart saved as '%s'\n", cfg.CurrentChartFile)
	return nil
}

// executeChartHistory charts the recorded history, if any.
func executeChartHistory(_ context.Context, cfg *contract.Config) error {
	results, err := historyStore().Load()
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	rendered, err := chartgen.RenderHistory(results, cfg.HistoryChartFile)
	if err != nil {
		return err
	}
	if !rendered {
		fmt.Println("No history to visualize. Run a speed test first.")
		return nil
	}
	fmt.Printf("Chart saved as '%s'\n", cfg.HistoryChartFile)
	return nil
}
