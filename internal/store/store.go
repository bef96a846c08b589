// Package store persists the speed test history as a JSON array on disk.
// The log format is shared with earlier versions of the tool, so records
// are kept as a plain indented JSON list rather than a binary format.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/huangsam/speedcheck/internal/contract"
	"github.com/huangsam/speedcheck/schema"
)

// Store reads and appends the JSON history log.
type Store struct {
	path string
}

var _ contract.HistoryStore = &Store{} // Compile-time check

// New creates a Store for the given log path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the log file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns all recorded runs in append order.
// A missing file reads as an empty history. A corrupt file also reads
// as empty, with a warning; history loss is preferable to making every
// command fail permanently.
func (s *Store) Load() ([]schema.TestResult, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []schema.TestResult{}, nil
		}
		return nil, fmt.Errorf("read history log %s: %w", s.path, err)
	}

	var results []schema.TestResult
	if err := json.Unmarshal(data, &results); err != nil {
		contract.LogWarn(fmt.Sprintf("history log %s is corrupt, treating as empty", s.path), err)
		return []schema.TestResult{}, nil
	}
	if results == nil {
		results = []schema.TestResult{}
	}
	return results, nil
}

// Append adds one run to the end of the history, creating the log
// directory and file on first use.
func (s *Store) Append(result *schema.TestResult) error {
	results, err := s.Load()
	if err != nil {
		return err
	}
	results = append(results, *result)

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log directory %s: %w", dir, err)
		}
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history log: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write history log %s: %w", s.path, err)
	}
	return nil
}

// Status returns status information about the history log.
func (s *Store) Status() (schema.HistoryStatus, error) {
	status := schema.HistoryStatus{Path: s.path}

	info, err := os.Stat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return status, nil
		}
		return status, fmt.Errorf("stat history log %s: %w", s.path, err)
	}
	status.Exists = true
	status.FileSizeBytes = info.Size()

	results, err := s.Load()
	if err != nil {
		return status, err
	}
	status.TotalRuns = len(results)
	if len(results) > 0 {
		status.OldestRunTime = results[0].Timestamp
		status.LastRunTime = results[len(results)-1].Timestamp
	}
	return status, nil
}

// Clear removes the history log. A missing log is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove history log %s: %w", s.path, err)
	}
	return nil
}
