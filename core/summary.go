package core

import (
	"github.com/huangsam/speedcheck/schema"
)

// Summarize aggregates the recorded history into trend statistics.
// It returns nil for an empty history.
func Summarize(results []schema.TestResult) *schema.HistorySummary {
	if len(results) == 0 {
		return nil
	}

	downloads := make([]float64, len(results))
	uploads := make([]float64, len(results))
	pings := make([]float64, len(results))
	stabilities := make([]float64, len(results))
	for i, r := range results {
		downloads[i] = r.DownloadMbps
		uploads[i] = r.UploadMbps
		pings[i] = r.PingMs
		stabilities[i] = r.StabilityScore
	}

	s := &schema.HistorySummary{
		Runs:          len(results),
		FirstRun:      results[0].Timestamp,
		LastRun:       results[len(results)-1].Timestamp,
		Download:      metricSummary(downloads),
		Upload:        metricSummary(uploads),
		Ping:          metricSummary(pings),
		MeanStability: schema.Round2(Mean(stabilities)),
	}

	if mean := Mean(downloads); mean > 0 {
		s.DownloadCoefVariationPct = schema.Round2(Stddev(downloads) / mean * 100)
	}
	s.DownloadTrendMbpsPerRun = schema.Round2(trendSlope(downloads))

	return s
}

// metricSummary computes the per-metric aggregate block.
func metricSummary(values []float64) schema.MetricSummary {
	minV, maxV := values[0], values[0]
	for _, v := range values[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	return schema.MetricSummary{
		Mean:   schema.Round2(Mean(values)),
		Median: schema.Round2(Median(values)),
		Min:    minV,
		Max:    maxV,
	}
}

// trendSlope computes the least-squares slope of values over their
// index. Fewer than two points have no trend.
func trendSlope(values []float64) float64 {
	n := float64(len(values))
	if n < 2 {
		return 0
	}
	var sumX, sumY, sumXY, sumXX float64
	for i, v := range values {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0
	}
	return (n*sumXY - sumX*sumY) / denom
}
