// Package probe adapts the external speedtest engine to the core.Prober
// seam. All measurement logic lives in the library; this package only
// selects a server and translates units.
package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/speedcheck/core"
	"github.com/showwin/speedtest-go/speedtest"
)

// SpeedtestProber runs speed tests through speedtest.net servers.
type SpeedtestProber struct {
	client *speedtest.Speedtest

	// server is the server chosen by Measure, reused by PingSamples so
	// stability samples hit the same target as the main pass.
	server *speedtest.Server
}

var _ core.Prober = &SpeedtestProber{} // Compile-time check

// New creates a prober backed by the public speedtest.net server list.
func New() *SpeedtestProber {
	return &SpeedtestProber{client: speedtest.New()}
}

// Measure fetches the server list, picks the closest server, and runs
// the full latency/download/upload sequence against it.
func (p *SpeedtestProber) Measure(ctx context.Context) (*core.Measurement, error) {
	serverList, err := p.client.FetchServerListContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch server list: %w", err)
	}
	targets, err := serverList.FindServer(nil)
	if err != nil {
		return nil, fmt.Errorf("find server: %w", err)
	}
	if len(targets) == 0 {
		return nil, fmt.Errorf("no speed test servers available")
	}
	server := targets[0]
	p.server = server

	if err := server.PingTestContext(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping test: %w", err)
	}
	if err := server.DownloadTestContext(ctx); err != nil {
		return nil, fmt.Errorf("download test: %w", err)
	}
	if err := server.UploadTestContext(ctx); err != nil {
		return nil, fmt.Errorf("upload test: %w", err)
	}

	return &core.Measurement{
		DownloadMbps:  server.DLSpeed.Mbps(),
		UploadMbps:    server.ULSpeed.Mbps(),
		PingMs:        durationMs(server.Latency),
		JitterMs:      durationMs(server.Jitter),
		ServerName:    server.Name,
		ServerHost:    server.Host,
		ServerCountry: server.Country,
	}, nil
}

// PingSamples collects n latency samples against the server chosen by
// Measure. Each echo reported by the engine contributes one sample.
func (p *SpeedtestProber) PingSamples(ctx context.Context, n int) ([]float64, error) {
	if p.server == nil {
		return nil, fmt.Errorf("no server selected: run a measurement first")
	}
	samples := make([]float64, 0, n)
	for len(samples) < n {
		before := len(samples)
		err := p.server.PingTestContext(ctx, func(latency time.Duration) {
			if len(samples) < n {
				samples = append(samples, durationMs(latency))
			}
		})
		if err != nil {
			if len(samples) > 0 {
				break // partial samples still allow a stability estimate
			}
			return nil, fmt.Errorf("stability ping: %w", err)
		}
		if len(samples) == before {
			break // engine produced no echoes; avoid spinning
		}
	}
	return samples, nil
}

// durationMs converts a duration to fractional milliseconds.
func durationMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
