// Package outwriter has output and writer logic.
package outwriter

import (
	"github.com/huangsam/speedcheck/internal/contract"
	"github.com/huangsam/speedcheck/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the command logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteResult prints a single speed test run using the configured output format.
func (ow *OutWriter) WriteResult(result *schema.TestResult, cfg *contract.Config) error {
	return writeResult(result, cfg)
}

// WriteHistory prints recorded runs using the configured output format.
func (ow *OutWriter) WriteHistory(results []schema.TestResult, cfg *contract.Config) error {
	return writeHistory(results, cfg)
}

// WriteSummary prints aggregate history statistics using the configured output format.
func (ow *OutWriter) WriteSummary(summary *schema.HistorySummary, cfg *contract.Config) error {
	return writeSummary(summary, cfg)
}

// WriteTips prints improvement tips using the configured output format.
func (ow *OutWriter) WriteTips(tips []string, cfg *contract.Config) error {
	return writeTips(tips, cfg)
}
