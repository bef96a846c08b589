package outwriter

import (
	"fmt"

	"github.com/huangsam/speedcheck/schema"
)

// PrintHistoryStatus prints history log status information.
func PrintHistoryStatus(status schema.HistoryStatus) {
	fmt.Printf("Log File: %s\n", status.Path)
	fmt.Printf("Exists: %t\n", status.Exists)
	if !status.Exists {
		return
	}
	fmt.Printf("Total Runs: %d\n", status.TotalRuns)
	if status.TotalRuns > 0 {
		fmt.Printf("Last Run: %s\n", status.LastRunTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest Run: %s\n", status.OldestRunTime.Format("2006-01-02 15:04:05"))
	}
	fmt.Printf("File Size: %d bytes\n", status.FileSizeBytes)
}

// PrintMirrorStatus prints database mirror status information.
func PrintMirrorStatus(status schema.MirrorStatus) {
	fmt.Printf("Mirror Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Rows: %d\n", status.TotalRows)
	if status.TotalRows > 0 {
		fmt.Printf("Last Row: %s\n", status.LastRowTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest Row: %s\n", status.OldestRowTime.Format("2006-01-02 15:04:05"))
	}
}
