// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"github.com/huangsam/speedcheck/schema"
)

// HistoryStore defines the operations on the persisted speed test history.
// This allows command logic to be tested against an in-memory history.
type HistoryStore interface {
	// Load returns all recorded runs in append order. A missing log file
	// reads as an empty history.
	Load() ([]schema.TestResult, error)

	// Append adds one run to the end of the history.
	Append(result *schema.TestResult) error

	// Status returns status information about the history log.
	Status() (schema.HistoryStatus, error)

	// Clear removes the history log.
	Clear() error
}

// MirrorStore defines the interface for the optional database mirror of
// the history. The mirror is write-through only; the JSON log remains
// the source of truth.
type MirrorStore interface {
	Insert(result *schema.TestResult) error
	GetStatus() (schema.MirrorStatus, error)
	Clear() error
	Close() error
}
