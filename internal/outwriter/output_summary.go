package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/huangsam/speedcheck/internal/contract"
	"github.com/huangsam/speedcheck/schema"
)

// writeSummary outputs history statistics, dispatching based on the output format configured.
func writeSummary(summary *schema.HistorySummary, cfg *contract.Config) error {
	if summary == nil {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, "No speed test runs recorded yet. Run a test first.")
			return err
		}, "Wrote summary")
	}

	fmtFloat := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, summary)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeSummaryCSV(csvWriter, summary, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryTable(summary, fmtFloat, w)
		}, "Wrote table")
	}
}

// writeSummaryTable generates and writes the human-readable summary table.
func writeSummaryTable(summary *schema.HistorySummary, fmtFloat func(float64) string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Metric", "Mean", "Median", "Min", "Max"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	metricRow := func(name string, m schema.MetricSummary) []string {
		return []string{name, fmtFloat(m.Mean), fmtFloat(m.Median), fmtFloat(m.Min), fmtFloat(m.Max)}
	}
	data := [][]string{
		metricRow("Download (Mbps)", summary.Download),
		metricRow("Upload (Mbps)", summary.Upload),
		metricRow("Ping (ms)", summary.Ping),
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Runs: %d (%s to %s)\n",
		summary.Runs,
		schema.FormatTimestamp(summary.FirstRun),
		schema.FormatTimestamp(summary.LastRun)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Mean stability: %s%%\n", fmtFloat(summary.MeanStability)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Download variability: %s%% of mean\n", fmtFloat(summary.DownloadCoefVariationPct)); err != nil {
		return err
	}
	trendWord := "improving"
	if summary.DownloadTrendMbpsPerRun < 0 {
		trendWord = "declining"
	}
	_, err := fmt.Fprintf(writer, "Download trend: %s Mbps per run (%s)\n",
		fmtFloat(summary.DownloadTrendMbpsPerRun), trendWord)
	return err
}

// writeSummaryCSV writes history statistics in CSV format, one metric per row.
func writeSummaryCSV(w *csv.Writer, summary *schema.HistorySummary, fmtFloat func(float64) string) error {
	if err := w.Write([]string{"metric", "mean", "median", "min", "max"}); err != nil {
		return err
	}
	rows := []struct {
		name string
		m    schema.MetricSummary
	}{
		{"download_mbps", summary.Download},
		{"upload_mbps", summary.Upload},
		{"ping_ms", summary.Ping},
	}
	for _, row := range rows {
		rec := []string{row.name, fmtFloat(row.m.Mean), fmtFloat(row.m.Median), fmtFloat(row.m.Min), fmtFloat(row.m.Max)}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
