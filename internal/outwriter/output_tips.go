package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/huangsam/speedcheck/internal/contract"
	"github.com/huangsam/speedcheck/schema"
)

// writeTips outputs improvement tips, dispatching based on the output format configured.
func writeTips(tips []string, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, map[string][]string{"tips": tips})
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			if err := csvWriter.Write([]string{"tip"}); err != nil {
				return err
			}
			for _, tip := range tips {
				if err := csvWriter.Write([]string{tip}); err != nil {
					return err
				}
			}
			return nil
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			for _, tip := range tips {
				if _, err := fmt.Fprintln(w, tip); err != nil {
					return err
				}
			}
			return nil
		}, "Wrote tips")
	}
}
