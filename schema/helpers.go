package schema

import (
	"fmt"
	"math"
	"time"
)

// Round2 rounds a value to two decimal places, matching the precision
// of the persisted log format.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatMbps formats a speed value for display.
func FormatMbps(v float64) string {
	return fmt.Sprintf("%.2f Mbps", v)
}

// FormatMs formats a latency value for display.
func FormatMs(v float64) string {
	return fmt.Sprintf("%.2f ms", v)
}

// FormatStability formats a stability score with its rating.
func FormatStability(score float64, rating StabilityRating) string {
	return fmt.Sprintf("%.2f%% (%s)", score, rating)
}

// FormatTimestamp formats a record timestamp for tables and charts.
func FormatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}
