package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/speedcheck/schema"
)

// Color variables for console output.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold) // excellentColor represents a rock-solid connection.
	GoodColor      = color.New(color.FgCyan)              // goodColor represents a healthy connection.
	FairColor      = color.New(color.FgYellow)            // fairColor represents standard caution, not bold.
	PoorColor      = color.New(color.FgMagenta)           // poorColor represents a strong, distinct warning.
	VeryPoorColor  = color.New(color.FgRed, color.Bold)   // veryPoorColor represents standard danger.
)

// GetColorRating returns a colored text rating for console output (table).
// The plain rating string comes from schema.RatingForScore.
func GetColorRating(rating schema.StabilityRating) string {
	switch rating {
	case schema.ExcellentRating:
		return ExcellentColor.Sprint(string(rating))
	case schema.GoodRating:
		return GoodColor.Sprint(string(rating))
	case schema.FairRating:
		return FairColor.Sprint(string(rating))
	case schema.PoorRating:
		return PoorColor.Sprint(string(rating))
	default: // "Very Poor"
		return VeryPoorColor.Sprint(string(rating))
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It returns os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetMirrorDBFilePath returns the path to the SQLite DB file for the history mirror.
func GetMirrorDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".speedcheck_history.db"
	}
	return filepath.Join(homeDir, ".speedcheck_history.db")
}

// ParseBoolString parses common yes/no style values used by the --color flag.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1", "on", "":
		return true, nil
	case "no", "false", "0", "off":
		return false, nil
	default:
		return false, fmt.Errorf("expected yes/no/true/false/1/0")
	}
}
