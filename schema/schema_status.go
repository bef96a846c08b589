package schema

import "time"

// HistoryStatus represents the status of the JSON history log.
type HistoryStatus struct {
	Path          string    `json:"path"`
	Exists        bool      `json:"exists"`
	TotalRuns     int       `json:"total_runs"`
	LastRunTime   time.Time `json:"last_run_time"`
	OldestRunTime time.Time `json:"oldest_run_time"`
	FileSizeBytes int64     `json:"file_size_bytes"`
}

// MirrorStatus represents the status of the database history mirror.
type MirrorStatus struct {
	Backend       string    `json:"backend"`
	Connected     bool      `json:"connected"`
	TotalRows     int       `json:"total_rows"`
	LastRowTime   time.Time `json:"last_row_time"`
	OldestRowTime time.Time `json:"oldest_row_time"`
}
