// Package core has core logic for running speed tests and deriving trends.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/speedcheck/internal/contract"
	"github.com/huangsam/speedcheck/schema"
)

// Measurement holds the raw figures returned by the external
// measurement engine for one test pass.
type Measurement struct {
	DownloadMbps  float64
	UploadMbps    float64
	PingMs        float64
	JitterMs      float64
	ServerName    string
	ServerHost    string
	ServerCountry string
}

// Prober defines the necessary operations of the external speed
// measurement engine. This allows the run logic to be tested without
// network access.
type Prober interface {
	// Measure runs a full download/upload/latency pass against the best
	// available server.
	Measure(ctx context.Context) (*Measurement, error)

	// PingSamples collects n additional latency samples (in ms) against
	// the server chosen by Measure, for stability scoring.
	PingSamples(ctx context.Context, n int) ([]float64, error)
}

// Runner orchestrates one speed test run: measure, sample latency,
// derive stability, and shape the persisted record.
type Runner struct {
	prober Prober
	now    func() time.Time
}

// NewRunner creates a Runner around the given prober.
func NewRunner(p Prober) *Runner {
	return &Runner{prober: p, now: time.Now}
}

// Run executes a full speed test and returns the record to persist.
func (r *Runner) Run(ctx context.Context, cfg *contract.Config) (*schema.TestResult, error) {
	m, err := r.prober.Measure(ctx)
	if err != nil {
		return nil, fmt.Errorf("speed test failed: %w", err)
	}

	samples, err := r.prober.PingSamples(ctx, cfg.StabilitySamples)
	if err != nil {
		// Stability is a derived nicety; a failed sampling pass should not
		// discard an otherwise complete measurement.
		contract.LogWarn("stability sampling failed", err)
		samples = nil
	}
	score := StabilityScore(samples)

	return &schema.TestResult{
		Timestamp:       r.now(),
		DownloadMbps:    schema.Round2(m.DownloadMbps),
		UploadMbps:      schema.Round2(m.UploadMbps),
		PingMs:          schema.Round2(m.PingMs),
		JitterMs:        schema.Round2(m.JitterMs),
		StabilityScore:  score,
		StabilityRating: schema.RatingForScore(score),
		ServerName:      m.ServerName,
		ServerHost:      m.ServerHost,
		ServerCountry:   m.ServerCountry,
		Situation:       cfg.Situation,
		SchemaVersion:   schema.SchemaVersion,
	}, nil
}
