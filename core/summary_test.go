package core

import (
	"testing"
	"time"

	"github.com/huangsam/speedcheck/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyFixture() []schema.TestResult {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	downloads := []float64{50, 60, 70, 80}
	uploads := []float64{10, 12, 14, 16}
	pings := []float64{30, 25, 20, 15}
	results := make([]schema.TestResult, len(downloads))
	for i := range downloads {
		results[i] = schema.TestResult{
			Timestamp:      base.Add(time.Duration(i) * 24 * time.Hour),
			DownloadMbps:   downloads[i],
			UploadMbps:     uploads[i],
			PingMs:         pings[i],
			StabilityScore: 90,
		}
	}
	return results
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Nil(t, Summarize(nil))
	assert.Nil(t, Summarize([]schema.TestResult{}))
}

func TestSummarize(t *testing.T) {
	results := historyFixture()
	s := Summarize(results)
	require.NotNil(t, s)

	assert.Equal(t, 4, s.Runs)
	assert.Equal(t, results[0].Timestamp, s.FirstRun)
	assert.Equal(t, results[3].Timestamp, s.LastRun)

	assert.InDelta(t, 65.0, s.Download.Mean, 1e-9)
	assert.InDelta(t, 65.0, s.Download.Median, 1e-9)
	assert.Equal(t, 50.0, s.Download.Min)
	assert.Equal(t, 80.0, s.Download.Max)

	assert.InDelta(t, 13.0, s.Upload.Mean, 1e-9)
	assert.InDelta(t, 22.5, s.Ping.Mean, 1e-9)
	assert.InDelta(t, 90.0, s.MeanStability, 1e-9)

	// Strictly increasing by 10 Mbps per run.
	assert.InDelta(t, 10.0, s.DownloadTrendMbpsPerRun, 1e-9)
	assert.Greater(t, s.DownloadCoefVariationPct, 0.0)
}

func TestSummarizeSingleRun(t *testing.T) {
	s := Summarize(historyFixture()[:1])
	require.NotNil(t, s)
	assert.Equal(t, 1, s.Runs)
	assert.Equal(t, 0.0, s.DownloadTrendMbpsPerRun)
	assert.Equal(t, 0.0, s.DownloadCoefVariationPct)
}

func TestTrendSlopeFlat(t *testing.T) {
	assert.Equal(t, 0.0, trendSlope([]float64{5}))
	assert.InDelta(t, 0.0, trendSlope([]float64{5, 5, 5}), 1e-9)
}
