// Package cmd defines the command-line interface for speedcheck.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/huangsam/speedcheck/internal/contract"
	"github.com/huangsam/speedcheck/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(tipsCmd)
	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the chart subcommands to the parent chart command
	chartCmd.AddCommand(chartCurrentCmd)
	chartCmd.AddCommand(chartHistoryCmd)

	// Add the log subcommands to the parent log command
	logCmd.AddCommand(logStatusCmd)
	logCmd.AddCommand(logClearCmd)
	logCmd.AddCommand(logMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("log-file", contract.DefaultLogFile, "Path to the JSON history log")
	rootCmd.PersistentFlags().Int("samples", contract.DefaultStabilitySamples, "Number of ping samples for stability scoring")
	rootCmd.PersistentFlags().StringP("situation", "s", "", "Network context label to record with each run (e.g. Home, Office, VPN)")
	rootCmd.PersistentFlags().String("timeout", contract.DefaultTimeout.String(), "Overall measurement timeout (e.g. 90s, 2m)")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of history entries to display")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored ratings in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("db-backend", string(schema.SQLiteBackend), "History mirror backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of the chart subcommands to Viper
	chartCurrentCmd.Flags().String("current-chart", contract.DefaultCurrentChart, "Output path for the current-result chart")
	if err := viper.BindPFlags(chartCurrentCmd.Flags()); err != nil {
		contract.LogFatal("Error binding chart current flags", err)
	}
	chartHistoryCmd.Flags().String("history-chart", contract.DefaultHistoryChart, "Output path for the history chart")
	if err := viper.BindPFlags(chartHistoryCmd.Flags()); err != nil {
		contract.LogFatal("Error binding chart history flags", err)
	}

	// Bind all flags of logMigrateCmd to Viper
	logMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(logMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding log migrate flags", err)
	}
}
