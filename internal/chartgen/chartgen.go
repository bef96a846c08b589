// Package chartgen renders speed test results to PNG charts.
package chartgen

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/huangsam/speedcheck/schema"
)

// Chart panel dimensions.
const (
	panelWidth  = 800
	panelHeight = 400
)

// RenderCurrent renders the most recent run as two stacked bar chart
// panels: throughput in Mbps, then ping and stability. The panels are
// composited vertically into a single PNG at path.
func RenderCurrent(result *schema.TestResult, path string) error {
	speedPanel := chart.BarChart{
		Title:      fmt.Sprintf("Speed Test Results (%s)", schema.FormatTimestamp(result.Timestamp)),
		Width:      panelWidth,
		Height:     panelHeight,
		BarWidth:   120,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 28}},
		Bars: []chart.Value{
			{Label: "Download (Mbps)", Value: result.DownloadMbps},
			{Label: "Upload (Mbps)", Value: result.UploadMbps},
		},
	}

	qualityPanel := chart.BarChart{
		Title:      "Latency and Stability",
		Width:      panelWidth,
		Height:     panelHeight,
		BarWidth:   120,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 28}},
		Bars: []chart.Value{
			{Label: "Ping (ms)", Value: result.PingMs},
			{Label: fmt.Sprintf("Stability %% (%s)", result.StabilityRating), Value: result.StabilityScore},
		},
	}

	panels := make([]image.Image, 0, 2)
	for _, panel := range []chart.BarChart{speedPanel, qualityPanel} {
		var buf bytes.Buffer
		if err := panel.Render(chart.PNG, &buf); err != nil {
			return fmt.Errorf("render bar chart %q: %w", panel.Title, err)
		}
		img, err := png.Decode(&buf)
		if err != nil {
			return fmt.Errorf("decode bar chart %q: %w", panel.Title, err)
		}
		panels = append(panels, img)
	}

	return writeStacked(panels, path)
}

// RenderHistory renders the download/upload and ping trends over time
// as two stacked line chart panels composited into a single PNG.
// An empty history renders nothing and returns false.
func RenderHistory(results []schema.TestResult, path string) (bool, error) {
	if len(results) == 0 {
		return false, nil
	}

	times := make([]time.Time, len(results))
	downloads := make([]float64, len(results))
	uploads := make([]float64, len(results))
	pings := make([]float64, len(results))
	for i, r := range results {
		times[i] = r.Timestamp
		downloads[i] = r.DownloadMbps
		uploads[i] = r.UploadMbps
		pings[i] = r.PingMs
	}

	// go-chart cannot place an x-range over a single point
	if len(times) == 1 {
		times = append(times, times[0].Add(time.Second))
		downloads = append(downloads, downloads[0])
		uploads = append(uploads, uploads[0])
		pings = append(pings, pings[0])
	}

	speedPanel := chart.Chart{
		Title:      "Internet Speed Over Time",
		Width:      panelWidth,
		Height:     panelHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 28}},
		YAxis:      chart.YAxis{Name: "Mbps"},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Download (Mbps)",
				XValues: times,
				YValues: downloads,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, DotColor: chart.ColorBlue, DotWidth: 3},
			},
			chart.TimeSeries{
				Name:    "Upload (Mbps)",
				XValues: times,
				YValues: uploads,
				Style:   chart.Style{StrokeColor: chart.ColorGreen, DotColor: chart.ColorGreen, DotWidth: 3},
			},
		},
	}
	speedPanel.Elements = []chart.Renderable{chart.Legend(&speedPanel)}

	pingPanel := chart.Chart{
		Title:      "Ping Over Time",
		Width:      panelWidth,
		Height:     panelHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 28}},
		YAxis:      chart.YAxis{Name: "ms"},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Ping (ms)",
				XValues: times,
				YValues: pings,
				Style:   chart.Style{StrokeColor: chart.ColorRed, DotColor: chart.ColorRed, DotWidth: 3},
			},
		},
	}
	pingPanel.Elements = []chart.Renderable{chart.Legend(&pingPanel)}

	panels := make([]image.Image, 0, 2)
	for _, panel := range []chart.Chart{speedPanel, pingPanel} {
		var buf bytes.Buffer
		if err := panel.Render(chart.PNG, &buf); err != nil {
			return false, fmt.Errorf("render line chart %q: %w", panel.Title, err)
		}
		img, err := png.Decode(&buf)
		if err != nil {
			return false, fmt.Errorf("decode line chart %q: %w", panel.Title, err)
		}
		panels = append(panels, img)
	}

	if err := writeStacked(panels, path); err != nil {
		return false, err
	}
	return true, nil
}

// writeStacked composites the panel images vertically and writes the
// result to path as PNG.
func writeStacked(panels []image.Image, path string) error {
	width, height := 0, 0
	for _, p := range panels {
		b := p.Bounds()
		if b.Dx() > width {
			width = b.Dx()
		}
		height += b.Dy()
	}

	combined := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(combined, combined.Bounds(), image.White, image.Point{}, draw.Src)
	offsetY := 0
	for _, p := range panels {
		b := p.Bounds()
		dst := image.Rect(0, offsetY, b.Dx(), offsetY+b.Dy())
		draw.Draw(combined, dst, p, b.Min, draw.Src)
		offsetY += b.Dy()
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := png.Encode(f, combined); err != nil {
		return fmt.Errorf("encode chart file %s: %w", path, err)
	}
	return nil
}
