package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huangsam/speedcheck/internal/contract"
	"github.com/huangsam/speedcheck/schema"
)

func testConfig() *contract.Config {
	return &contract.Config{
		Precision: 2,
		Output:    schema.TextOut,
		Width:     120,
	}
}

func testResult() *schema.TestResult {
	return &schema.TestResult{
		Timestamp:       time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
		DownloadMbps:    54.32,
		UploadMbps:      12.35,
		PingMs:          23.46,
		StabilityScore:  91.5,
		StabilityRating: schema.ExcellentRating,
		ServerName:      "Test Server",
		ServerCountry:   "United States",
		Situation:       "Home",
	}
}

func TestWriteResultTable(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat := createFormatters(2)

	err := writeResultTable(testResult(), testConfig(), fmtFloat, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "54.32 Mbps")
	assert.Contains(t, out, "12.35 Mbps")
	assert.Contains(t, out, "23.46 ms")
	assert.Contains(t, out, "Excellent")
	assert.Contains(t, out, "Connection stability")
}

func TestWriteResultCSV(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	fmtFloat := createFormatters(2)

	require.NoError(t, writeResultCSV(w, testResult(), fmtFloat))
	w.Flush()

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, resultCSVHeader, records[0])
	assert.Equal(t, "54.32", records[1][1])
	assert.Equal(t, "Excellent", records[1][6])
}

func TestWriteHistoryTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat := createFormatters(2)

	err := writeHistoryTable(nil, testConfig(), fmtFloat, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No speed test runs recorded yet")
}

func TestWriteHistoryTable(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat := createFormatters(2)
	results := []schema.TestResult{*testResult(), *testResult()}

	err := writeHistoryTable(results, testConfig(), fmtFloat, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Showing 2 runs")
	assert.Contains(t, out, "2026-08-30 10:00")
}

func TestWriteHistoryCSV(t *testing.T) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	fmtFloat := createFormatters(2)
	results := []schema.TestResult{*testResult(), *testResult(), *testResult()}

	require.NoError(t, writeHistoryCSV(w, results, fmtFloat))
	w.Flush()

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 4) // header + 3 runs
}

func TestWriteSummaryTable(t *testing.T) {
	var buf bytes.Buffer
	fmtFloat := createFormatters(2)
	summary := &schema.HistorySummary{
		Runs:     4,
		FirstRun: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		LastRun:  time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		Download: schema.MetricSummary{Mean: 50, Median: 49.5, Min: 40, Max: 60},
		Upload:   schema.MetricSummary{Mean: 12, Median: 12, Min: 10, Max: 14},
		Ping:     schema.MetricSummary{Mean: 25, Median: 24, Min: 20, Max: 30},

		MeanStability:            85.5,
		DownloadCoefVariationPct: 12.3,
		DownloadTrendMbpsPerRun:  -1.5,
	}

	err := writeSummaryTable(summary, fmtFloat, &buf)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Runs: 4")
	assert.Contains(t, out, "Mean stability: 85.50%")
	assert.Contains(t, out, "declining")
}

func TestWriteTipsJSON(t *testing.T) {
	tips := []string{"Tips for improving your internet speed:", "- Restart your router."}
	cfg := testConfig()
	cfg.Output = schema.JSONOut

	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, map[string][]string{"tips": tips}))

	var decoded map[string][]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, tips, decoded["tips"])
}

func TestTruncateLabel(t *testing.T) {
	assert.Equal(t, "short", truncateLabel("short", 10))
	assert.Equal(t, "a very...", truncateLabel("a very long server name", 9))
	assert.Equal(t, "ab", truncateLabel("abcdef", 2))
}

func TestRatingCellPlain(t *testing.T) {
	cfg := testConfig()
	cfg.UseColors = false
	cell := ratingCell(schema.PoorRating, cfg)
	assert.Equal(t, "Poor", cell)
	assert.False(t, strings.Contains(cell, "\x1b["))
}
