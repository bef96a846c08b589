// Package schema has configs, models and global variables for all parts of speedcheck.
package schema

import "time"

// SchemaVersion is bumped whenever the persisted record shape changes
// in a way older readers cannot handle.
const SchemaVersion = 1

// TestResult represents the outcome of a single speed test run.
// It includes the measured throughput and latency figures from the
// external measurement engine plus the derived stability fields.
// JSON field names match the historical on-disk log format.
type TestResult struct {
	Timestamp       time.Time       `json:"timestamp"`                // When the run finished
	DownloadMbps    float64         `json:"download_speed"`           // Download speed in Mbps, rounded to 2 decimals
	UploadMbps      float64         `json:"upload_speed"`             // Upload speed in Mbps, rounded to 2 decimals
	PingMs          float64         `json:"ping"`                     // Round-trip latency in ms, rounded to 2 decimals
	JitterMs        float64         `json:"jitter_ms,omitempty"`      // Latency jitter in ms as reported by the engine
	StabilityScore  float64         `json:"stability_score"`          // Connection stability score (0-100)
	StabilityRating StabilityRating `json:"stability_rating"`         // Human-readable stability rating
	ServerName      string          `json:"server_name,omitempty"`    // Measurement server display name
	ServerHost      string          `json:"server_host,omitempty"`    // Measurement server host:port
	ServerCountry   string          `json:"server_country,omitempty"` // Measurement server country
	Situation       string          `json:"situation,omitempty"`      // Network context label (e.g. Home, Office, VPN)
	SchemaVersion   int             `json:"schema_version,omitempty"` // Record schema version
}
