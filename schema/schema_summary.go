package schema

import "time"

// MetricSummary holds aggregate statistics for one measured metric
// across the recorded history.
type MetricSummary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// HistorySummary aggregates the recorded history into trend statistics.
type HistorySummary struct {
	Runs          int           `json:"runs"`
	FirstRun      time.Time     `json:"first_run"`
	LastRun       time.Time     `json:"last_run"`
	Download      MetricSummary `json:"download_mbps"`
	Upload        MetricSummary `json:"upload_mbps"`
	Ping          MetricSummary `json:"ping_ms"`
	MeanStability float64       `json:"mean_stability"`

	// DownloadCoefVariationPct is the coefficient of variation of the
	// download speed across runs, as a percentage. High values indicate
	// an inconsistent connection over time.
	DownloadCoefVariationPct float64 `json:"download_coef_variation_pct"`

	// DownloadTrendMbpsPerRun is the least-squares slope of download
	// speed over run index. Positive means the connection is improving.
	DownloadTrendMbpsPerRun float64 `json:"download_trend_mbps_per_run"`
}
