// Package parquet exports the recorded speed test history to Parquet
// files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/huangsam/speedcheck/schema"
)

// SpeedRecord represents a single logged speed test run in columnar form.
// This struct maps one-to-one to the entries of the JSON history log.
type SpeedRecord struct {
	// Timestamp is when the run finished (stored as TIMESTAMP with nanosecond precision)
	Timestamp time.Time `parquet:"timestamp,snappy"`

	// DownloadMbps is the measured download speed in Mbps
	DownloadMbps float64 `parquet:"download_mbps,snappy"`

	// UploadMbps is the measured upload speed in Mbps
	UploadMbps float64 `parquet:"upload_mbps,snappy"`

	// PingMs is the measured round-trip latency in milliseconds
	PingMs float64 `parquet:"ping_ms,snappy"`

	// JitterMs is the latency jitter in milliseconds (nullable)
	JitterMs *float64 `parquet:"jitter_ms,optional,snappy"`

	// StabilityScore is the derived connection stability score (0-100)
	StabilityScore float64 `parquet:"stability_score,snappy"`

	// StabilityRating is the qualitative rating derived from the score
	StabilityRating string `parquet:"stability_rating,snappy"`

	// ServerName is the measurement server display name (nullable)
	ServerName *string `parquet:"server_name,optional,snappy"`

	// ServerCountry is the measurement server country (nullable)
	ServerCountry *string `parquet:"server_country,optional,snappy"`

	// Situation is the network context label recorded with the run (nullable)
	Situation *string `parquet:"situation,optional,snappy"`
}

// FromTestResults converts logged runs into parquet records.
func FromTestResults(results []schema.TestResult) []SpeedRecord {
	records := make([]SpeedRecord, len(results))
	for i, r := range results {
		rec := SpeedRecord{
			Timestamp:       r.Timestamp,
			DownloadMbps:    r.DownloadMbps,
			UploadMbps:      r.UploadMbps,
			PingMs:          r.PingMs,
			StabilityScore:  r.StabilityScore,
			StabilityRating: string(r.StabilityRating),
		}
		if r.JitterMs > 0 {
			jitter := r.JitterMs
			rec.JitterMs = &jitter
		}
		if r.ServerName != "" {
			name := r.ServerName
			rec.ServerName = &name
		}
		if r.ServerCountry != "" {
			country := r.ServerCountry
			rec.ServerCountry = &country
		}
		if r.Situation != "" {
			situation := r.Situation
			rec.Situation = &situation
		}
		records[i] = rec
	}
	return records
}

// WriteSpeedRecordsParquet writes a slice of SpeedRecord structs to a Parquet file.
func WriteSpeedRecordsParquet(data []SpeedRecord, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the SpeedRecord struct tags
	writer := parquet.NewGenericWriter[SpeedRecord](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
