package contract

import (
	"testing"
	"time"

	"github.com/huangsam/speedcheck/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input that passes validation, for tests to tweak.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		LogFile:   "logs/speed_test_log.json",
		Samples:   10,
		Timeout:   "2m",
		Limit:     25,
		Precision: 2,
		Output:    "text",
		Color:     "yes",
		DBBackend: "sqlite",
	}
}

func TestProcessAndValidateDefaults(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.LogFile = ""
	input.Timeout = ""

	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, DefaultLogFile, cfg.LogFile)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultCurrentChart, cfg.CurrentChartFile)
	assert.Equal(t, DefaultHistoryChart, cfg.HistoryChartFile)
	assert.Equal(t, schema.TextOut, cfg.Output)
	assert.True(t, cfg.UseColors)
}

func TestProcessAndValidateTimeout(t *testing.T) {
	cfg := &Config{}
	input := validInput()
	input.Timeout = "90s"
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, 90*time.Second, cfg.Timeout)

	input.Timeout = "not-a-duration"
	assert.Error(t, ProcessAndValidate(&Config{}, input))

	input.Timeout = "-5s"
	assert.Error(t, ProcessAndValidate(&Config{}, input))
}

func TestProcessAndValidateBounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConfigRawInput)
	}{
		{"zero samples", func(i *ConfigRawInput) { i.Samples = 0 }},
		{"too many samples", func(i *ConfigRawInput) { i.Samples = MaxStabilitySamples + 1 }},
		{"zero limit", func(i *ConfigRawInput) { i.Limit = 0 }},
		{"huge limit", func(i *ConfigRawInput) { i.Limit = MaxResultLimit + 1 }},
		{"negative precision", func(i *ConfigRawInput) { i.Precision = -1 }},
		{"bad output", func(i *ConfigRawInput) { i.Output = "yaml" }},
		{"bad color", func(i *ConfigRawInput) { i.Color = "maybe" }},
		{"bad backend", func(i *ConfigRawInput) { i.DBBackend = "oracle" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			assert.Error(t, ProcessAndValidate(&Config{}, input))
		})
	}
}

func TestValidateDatabaseConnectionString(t *testing.T) {
	assert.NoError(t, ValidateDatabaseConnectionString(schema.SQLiteBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.NoneBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, ""))
	assert.Error(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "no-at-sign"))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.MySQLBackend, "user:pass@tcp(localhost:3306)/speedcheck"))
	assert.Error(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, ""))
	assert.NoError(t, ValidateDatabaseConnectionString(schema.PostgreSQLBackend, "host=localhost port=5432 user=postgres dbname=speedcheck"))
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "true", "1", "on", "", "YES"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.True(t, v, s)
	}
	for _, s := range []string{"no", "false", "0", "off"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err, s)
		assert.False(t, v, s)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}
