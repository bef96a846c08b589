package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huangsam/speedcheck/internal/contract"
	"github.com/huangsam/speedcheck/internal/parquet"
)

// defaultExportFile is used when no output file is configured.
const defaultExportFile = "speed_history.parquet"

// exportCmd exports the recorded history to a Parquet file.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the recorded history to Parquet.",
	Long: `Export the full recorded history to a Parquet file for analytics.

The columnar format is suitable for DuckDB, Spark, pandas and BI tools.

Examples:
  # Export to the default speed_history.parquet
  speedcheck export

  # Export to a custom path
  speedcheck export --output-file runs/august.parquet`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := executeExport(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot export history", err)
		}
	},
}

// executeExport converts the history log into parquet records and writes them.
func executeExport(_ context.Context, cfg *contract.Config) error {
	results, err := historyStore().Load()
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	outputPath := cfg.OutputFile
	if outputPath == "" {
		outputPath = defaultExportFile
	}

	records := parquet.FromTestResults(results)
	if err := parquet.WriteSpeedRecordsParquet(records, outputPath); err != nil {
		return err
	}
	fmt.Printf("Exported %d runs to %s\n", len(records), outputPath)
	return nil
}
