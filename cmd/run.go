package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huangsam/speedcheck/core"
	"github.com/huangsam/speedcheck/internal/contract"
	"github.com/huangsam/speedcheck/internal/histdb"
	"github.com/huangsam/speedcheck/internal/outwriter"
	"github.com/huangsam/speedcheck/internal/probe"
	"github.com/huangsam/speedcheck/schema"
)

// runCmd executes one speed test and records the result.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a speed test and record the result.",
	Long: `Run a full speed test against the closest measurement server.

Measures:
- Download speed (Mbps)
- Upload speed (Mbps)
- Ping latency (ms) plus repeated samples for a stability score

The result is printed, appended to the JSON history log, and mirrored
into the configured database backend.

Examples:
  # Run a test with defaults
  speedcheck run

  # Tag the run with a network context and use a shorter timeout
  speedcheck run --situation "Office VPN" --timeout 90s

  # Record without the database mirror
  speedcheck run --db-backend none

  # Emit the result as JSON for scripting
  speedcheck run --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := executeRun(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run speed test", err)
		}
	},
}

// executeRun performs one measurement and persists the result. It is
// shared by the run command and the interactive menu.
func executeRun(ctx context.Context, cfg *contract.Config) error {
	runCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	fmt.Println("Running speed test... this may take a minute.")
	runner := core.NewRunner(probe.New())
	result, err := runner.Run(runCtx, cfg)
	if err != nil {
		return err
	}

	if err := historyStore().Append(result); err != nil {
		return fmt.Errorf("recording result: %w", err)
	}
	mirrorInsert(result)

	return outwriter.NewOutWriter().WriteResult(result, cfg)
}

// mirrorInsert writes the result through to the database mirror.
// Mirror failures are warnings; the JSON log is the source of truth.
func mirrorInsert(result *schema.TestResult) {
	mirror := histdb.Manager.Get()
	if mirror == nil {
		return
	}
	if err := mirror.Insert(result); err != nil {
		contract.LogWarn("history mirror insert failed", err)
	}
}
