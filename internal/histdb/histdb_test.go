package histdb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/speedcheck/schema"
)

func mirrorResult(ts time.Time) *schema.TestResult {
	return &schema.TestResult{
		Timestamp:       ts,
		DownloadMbps:    54.32,
		UploadMbps:      12.35,
		PingMs:          23.46,
		JitterMs:        1.7,
		StabilityScore:  91.5,
		StabilityRating: schema.ExcellentRating,
		ServerName:      "Test Server",
		ServerHost:      "speedtest.example.com:8080",
		ServerCountry:   "United States",
		Situation:       "Home",
		SchemaVersion:   schema.SchemaVersion,
	}
}

func TestMirror_NoneBackend(t *testing.T) {
	mirror, err := NewMirror(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, mirror)

	// Operations should be no-ops
	err = mirror.Insert(mirrorResult(time.Now()))
	assert.NoError(t, err)

	status, err := mirror.GetStatus()
	assert.NoError(t, err)
	assert.False(t, status.Connected)
	assert.Equal(t, string(schema.NoneBackend), status.Backend)

	err = mirror.Close()
	assert.NoError(t, err)
}

func TestMirror_SQLite(t *testing.T) {
	// Use in-memory SQLite for testing
	mirror, err := NewMirror(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, mirror)
	defer func() { _ = mirror.Close() }()

	base := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	require.NoError(t, mirror.Insert(mirrorResult(base)))
	require.NoError(t, mirror.Insert(mirrorResult(base.Add(time.Hour))))

	status, err := mirror.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, 2, status.TotalRows)
	assert.True(t, status.OldestRowTime.Equal(base))
	assert.True(t, status.LastRowTime.Equal(base.Add(time.Hour)))
}

func TestMirror_Clear(t *testing.T) {
	mirror, err := NewMirror(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = mirror.Close() }()

	require.NoError(t, mirror.Insert(mirrorResult(time.Now())))
	require.NoError(t, mirror.Clear())

	status, err := mirror.GetStatus()
	require.NoError(t, err)
	assert.Zero(t, status.TotalRows)
}

func TestMirror_UnsupportedBackend(t *testing.T) {
	_, err := NewMirror(schema.DatabaseBackend("oracle"), "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported backend")
}

func TestMigrate_NoneBackend(t *testing.T) {
	err := Migrate(schema.NoneBackend, "", -1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrations are not supported for NoneBackend")
}

func TestMigrate_SQLiteInMemory(t *testing.T) {
	err := Migrate(schema.SQLiteBackend, ":memory:", -1)
	require.NoError(t, err)
}
