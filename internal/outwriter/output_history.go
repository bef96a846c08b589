package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/huangsam/speedcheck/internal/contract"
	"github.com/huangsam/speedcheck/schema"
)

// writeHistory outputs recorded runs, dispatching based on the output format configured.
func writeHistory(results []schema.TestResult, cfg *contract.Config) error {
	fmtFloat := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, results)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeHistoryCSV(csvWriter, results, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryTable(results, cfg, fmtFloat, w)
		}, "Wrote table")
	}
}

// writeHistoryTable generates and writes the human-readable history table.
func writeHistoryTable(results []schema.TestResult, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(writer, "No speed test runs recorded yet. Run a test first.")
		return err
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"#", "Time", "Download", "Upload", "Ping", "Stability", "Rating"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, r := range results {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			schema.FormatTimestamp(r.Timestamp),
			fmtFloat(r.DownloadMbps),
			fmtFloat(r.UploadMbps),
			fmtFloat(r.PingMs),
			fmtFloat(r.StabilityScore),
			ratingCell(r.StabilityRating, cfg),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Showing %d runs (download/upload in Mbps, ping in ms)\n", len(results))
	return err
}

// writeHistoryCSV writes recorded runs in CSV format.
func writeHistoryCSV(w *csv.Writer, results []schema.TestResult, fmtFloat func(float64) string) error {
	if err := w.Write(resultCSVHeader); err != nil {
		return err
	}
	for i := range results {
		if err := w.Write(resultCSVRecord(&results[i], fmtFloat)); err != nil {
			return err
		}
	}
	return nil
}
