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

// writeResult outputs a single run, dispatching based on the output format configured.
func writeResult(result *schema.TestResult, cfg *contract.Config) error {
	fmtFloat := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeResultCSV(csvWriter, result, fmtFloat)
		}, "Wrote CSV")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeResultTable(result, cfg, fmtFloat, w)
		}, "Wrote table")
	}
}

// writeResultTable generates and writes the human-readable table for one run.
func writeResultTable(result *schema.TestResult, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Metric", "Value"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	data := [][]string{
		{"Time", schema.FormatTimestamp(result.Timestamp)},
		{"Download", fmtFloat(result.DownloadMbps) + " Mbps"},
		{"Upload", fmtFloat(result.UploadMbps) + " Mbps"},
		{"Ping", fmtFloat(result.PingMs) + " ms"},
		{"Stability", fmtFloat(result.StabilityScore) + "%"},
		{"Rating", ratingCell(result.StabilityRating, cfg)},
	}
	if result.JitterMs > 0 {
		data = append(data, []string{"Jitter", fmtFloat(result.JitterMs) + " ms"})
	}
	if result.ServerName != "" {
		server := result.ServerName
		if result.ServerCountry != "" {
			server += " (" + result.ServerCountry + ")"
		}
		data = append(data, []string{"Server", truncateLabel(server, maxServerColumnWidth(cfg))})
	}
	if result.Situation != "" {
		data = append(data, []string{"Situation", result.Situation})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "Connection stability: %s (%s)\n",
		fmtFloat(result.StabilityScore)+"%", result.StabilityRating)
	return err
}

// resultCSVHeader is the column order shared by single-run and history CSV output.
var resultCSVHeader = []string{
	"timestamp",
	"download_mbps",
	"upload_mbps",
	"ping_ms",
	"jitter_ms",
	"stability_score",
	"stability_rating",
	"server_name",
	"server_country",
	"situation",
}

// resultCSVRecord converts one run into a CSV record.
func resultCSVRecord(result *schema.TestResult, fmtFloat func(float64) string) []string {
	return []string{
		result.Timestamp.Format(contract.DateTimeFormat),
		fmtFloat(result.DownloadMbps),
		fmtFloat(result.UploadMbps),
		fmtFloat(result.PingMs),
		fmtFloat(result.JitterMs),
		fmtFloat(result.StabilityScore),
		string(result.StabilityRating),
		result.ServerName,
		result.ServerCountry,
		result.Situation,
	}
}

// writeResultCSV writes one run in CSV format.
func writeResultCSV(w *csv.Writer, result *schema.TestResult, fmtFloat func(float64) string) error {
	if err := w.Write(resultCSVHeader); err != nil {
		return err
	}
	return w.Write(resultCSVRecord(result, fmtFloat))
}
