package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/huangsam/speedcheck/internal/contract"
	"github.com/huangsam/speedcheck/internal/histdb"
	"github.com/huangsam/speedcheck/internal/outwriter"
	"github.com/huangsam/speedcheck/schema"
)

// logCmd groups history log and mirror management subcommands.
var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Manage the history log and its database mirror.",
	Long: `Manage the JSON history log and the optional database mirror.

The JSON log is the source of truth; the mirror is a write-through copy
in SQLite (default), MySQL, or PostgreSQL for querying with SQL tools.

Subcommands:
  status   - Show log and mirror statistics
  clear    - Remove all recorded runs
  migrate  - Run schema migrations on the mirror database

Examples:
  # Check what is recorded where
  speedcheck log status

  # Start over
  speedcheck log clear

  # Bring a fresh MySQL mirror up to the latest schema
  speedcheck log migrate --db-backend mysql --db-connect "user:pass@tcp(localhost:3306)/speedcheck"`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// logStatusCmd shows log and mirror statistics.
var logStatusCmd = &cobra.Command{
	Use:     "status",
	Short:   "Show history log and mirror statistics.",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := executeLogStatus(); err != nil {
			contract.LogFatal("Cannot get log status", err)
		}
	},
}

// logClearCmd removes all recorded runs.
var logClearCmd = &cobra.Command{
	Use:     "clear",
	Short:   "Remove all recorded runs from the log and mirror.",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := executeLogClear(); err != nil {
			contract.LogFatal("Cannot clear log", err)
		}
	},
}

// logMigrateCmd runs schema migrations on the mirror database.
//
// Note: migrate uses minimal initialization instead of the full shared
// setup so migrations can run against a fresh database before any
// tables exist.
var logMigrateCmd = &cobra.Command{
	Use:     "migrate",
	Short:   "Run schema migrations on the mirror database.",
	PreRunE: migrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := histdb.Migrate(cfg.DBBackend, cfg.DBConnect, targetVersion); err != nil {
			contract.LogFatal("Cannot run migration", err)
		}
	},
}

// executeLogStatus prints history log status, then mirror status.
func executeLogStatus() error {
	status, err := historyStore().Status()
	if err != nil {
		return fmt.Errorf("reading log status: %w", err)
	}
	outwriter.PrintHistoryStatus(status)

	if mirror := histdb.Manager.Get(); mirror != nil {
		fmt.Println()
		mirrorStatus, err := mirror.GetStatus()
		if err != nil {
			return fmt.Errorf("reading mirror status: %w", err)
		}
		outwriter.PrintMirrorStatus(mirrorStatus)
	}
	return nil
}

// executeLogClear removes the history log and all mirrored rows.
func executeLogClear() error {
	if err := historyStore().Clear(); err != nil {
		return err
	}
	if mirror := histdb.Manager.Get(); mirror != nil {
		if err := mirror.Clear(); err != nil {
			return fmt.Errorf("clearing mirror: %w", err)
		}
	}
	fmt.Println("History cleared.")
	return nil
}

// migrateSetup loads minimal configuration needed for migrate operations.
// It does NOT initialize the mirror or create tables, allowing migrations
// to run on a fresh database.
func migrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backendStr := viper.GetString("db-backend")
	connStr := viper.GetString("db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetMirrorDBFilePath()
	}

	cfg.DBBackend = backend
	cfg.DBConnect = connStr

	return nil
}

// migrateSetupWrapper wraps migrateSetup to provide PreRunE for the migrate command.
func migrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return migrateSetup()
}
