package contract

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/huangsam/speedcheck/schema"
)

// Default values for configuration.
const (
	DefaultLogFile          = "logs/speed_test_log.json"
	DefaultStabilitySamples = 10
	MaxStabilitySamples     = 100
	DefaultResultLimit      = 25
	MaxResultLimit          = 1000
	DefaultPrecision        = 2
	DefaultTimeout          = 2 * time.Minute
	DefaultCurrentChart     = "current_speed_test.png"
	DefaultHistoryChart     = "speed_test_history.png"
)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// Config holds the runtime configuration for speedcheck.
// This struct remains the "final, validated" config.
type Config struct {
	LogFile          string
	StabilitySamples int
	Situation        string
	Timeout          time.Duration
	ResultLimit      int
	Precision        int
	Output           schema.OutputMode
	OutputFile       string
	Width            int // Terminal width override (0 = auto-detect)

	CurrentChartFile string
	HistoryChartFile string

	DBBackend schema.DatabaseBackend
	DBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored ratings in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	LogFile    string `mapstructure:"log-file"`
	Samples    int    `mapstructure:"samples"`
	Situation  string `mapstructure:"situation"`
	Timeout    string `mapstructure:"timeout"`
	Limit      int    `mapstructure:"limit"`
	Precision  int    `mapstructure:"precision"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Width      int    `mapstructure:"width"`
	Color      string `mapstructure:"color"`
	DBBackend  string `mapstructure:"db-backend"`
	DBConnect  string `mapstructure:"db-connect"`

	// --- Fields from chart subcommands ---
	CurrentChartFile string `mapstructure:"current-chart"`
	HistoryChartFile string `mapstructure:"history-chart"`
}

// ProcessAndValidate validates the raw input and populates cfg from it.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs handles the flat fields that need bounds or enum checks.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.LogFile = input.LogFile
	if cfg.LogFile == "" {
		cfg.LogFile = DefaultLogFile
	}
	cfg.LogFile = filepath.Clean(cfg.LogFile)

	cfg.StabilitySamples = input.Samples
	if cfg.StabilitySamples < 1 || cfg.StabilitySamples > MaxStabilitySamples {
		return fmt.Errorf("samples must be between 1 and %d, got %d", MaxStabilitySamples, input.Samples)
	}

	cfg.Situation = strings.TrimSpace(input.Situation)

	if input.Timeout != "" {
		d, err := time.ParseDuration(input.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", input.Timeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("timeout must be positive, got %s", d)
		}
		cfg.Timeout = d
	} else {
		cfg.Timeout = DefaultTimeout
	}

	cfg.ResultLimit = input.Limit
	if cfg.ResultLimit < 1 || cfg.ResultLimit > MaxResultLimit {
		return fmt.Errorf("limit must be between 1 and %d, got %d", MaxResultLimit, input.Limit)
	}

	cfg.Precision = input.Precision
	if cfg.Precision < 0 || cfg.Precision > 6 {
		return fmt.Errorf("precision must be between 0 and 6, got %d", input.Precision)
	}

	output := schema.OutputMode(input.Output)
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode %q: must be text, csv, or json", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	cfg.CurrentChartFile = input.CurrentChartFile
	if cfg.CurrentChartFile == "" {
		cfg.CurrentChartFile = DefaultCurrentChart
	}
	cfg.HistoryChartFile = input.HistoryChartFile
	if cfg.HistoryChartFile == "" {
		cfg.HistoryChartFile = DefaultHistoryChart
	}

	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color value %q: %w", input.Color, err)
	}
	cfg.UseColors = useColors

	return nil
}

// validateBackendConfig handles the database mirror fields.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	backend := schema.DatabaseBackend(input.DBBackend)
	if _, ok := schema.ValidDatabaseBackends[backend]; !ok {
		return fmt.Errorf("invalid db backend %q: must be sqlite, mysql, postgresql, or none", input.DBBackend)
	}
	if err := ValidateDatabaseConnectionString(backend, input.DBConnect); err != nil {
		return err
	}
	cfg.DBBackend = backend
	cfg.DBConnect = input.DBConnect
	return nil
}

// ValidateDatabaseConnectionString performs basic validation of connection
// strings for networked backends. SQLite accepts an empty string (default
// file path) or a file path.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("mysql backend requires a connection string (user:pass@tcp(host:port)/dbname)")
		}
		if !strings.Contains(connStr, "@") {
			return fmt.Errorf("mysql connection string %q looks malformed: expected user:pass@tcp(host:port)/dbname", connStr)
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("postgresql backend requires a connection string (host=... port=... user=... dbname=...)")
		}
	}
	return nil
}
