//go:build basic

package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSpeedcheckWithoutMirror exercises the CLI with the database mirror
// disabled. None of these subcommands need network access.
func TestSpeedcheckWithoutMirror(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "speed_test_log.json")

	_ = os.Setenv("SPEEDCHECK_DB_BACKEND", "none")
	_ = os.Setenv("SPEEDCHECK_LOG_FILE", logFile)
	defer func() { _ = os.Unsetenv("SPEEDCHECK_DB_BACKEND") }()
	defer func() { _ = os.Unsetenv("SPEEDCHECK_LOG_FILE") }()

	// Run speedcheck version
	err := runSpeedcheckCommand(t, "version")
	require.NoError(t, err)

	// Run speedcheck tips (generic tips, no history)
	err = runSpeedcheckCommand(t, "tips")
	require.NoError(t, err)

	// Run speedcheck history on an empty log
	err = runSpeedcheckCommand(t, "history", "--limit", "5")
	require.NoError(t, err)

	// Run speedcheck summary on an empty log
	err = runSpeedcheckCommand(t, "summary")
	require.NoError(t, err)

	// Run speedcheck log status
	err = runSpeedcheckCommand(t, "log", "status")
	require.NoError(t, err)

	// Run speedcheck log clear
	err = runSpeedcheckCommand(t, "log", "clear")
	require.NoError(t, err)
}
