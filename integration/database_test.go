//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestSpeedcheckWithMySQL tests the speedcheck CLI with a MySQL mirror backend.
func TestSpeedcheckWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "speedcheck",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/speedcheck?parseTime=true", host, port.Port())

	runMirrorCommands(t, "mysql", connStr)
}

// TestSpeedcheckWithPostgres tests the speedcheck CLI with a PostgreSQL mirror backend.
func TestSpeedcheckWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())

	runMirrorCommands(t, "postgresql", connStr)
}

// runMirrorCommands drives the mirror-touching subcommands against a live backend.
func runMirrorCommands(t *testing.T, backend, connStr string) {
	logFile := filepath.Join(t.TempDir(), "speed_test_log.json")

	// Set environment variables
	_ = os.Setenv("SPEEDCHECK_DB_BACKEND", backend)
	_ = os.Setenv("SPEEDCHECK_DB_CONNECT", connStr)
	_ = os.Setenv("SPEEDCHECK_LOG_FILE", logFile)
	defer func() { _ = os.Unsetenv("SPEEDCHECK_DB_BACKEND") }()
	defer func() { _ = os.Unsetenv("SPEEDCHECK_DB_CONNECT") }()
	defer func() { _ = os.Unsetenv("SPEEDCHECK_LOG_FILE") }()

	// Run speedcheck log migrate (brings the mirror table to the latest version)
	err := runSpeedcheckCommand(t, "log", "migrate")
	require.NoError(t, err)

	// Run speedcheck log clear
	err = runSpeedcheckCommand(t, "log", "clear")
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

	// Run speedcheck log migrate down (rolls the mirror table back off)
	err = runSpeedcheckCommand(t, "log", "migrate", "--target-version", "0")
	require.NoError(t, err)
}
