package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// StabilityRating represents the qualitative stability of a connection.
	StabilityRating string

	// DatabaseBackend represents the database backend for the history mirror.
	DatabaseBackend string
)

// All output modes supported.
const (
	CSVOut  OutputMode = "csv"
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
)

// All stability ratings supported, ordered from best to worst.
const (
	ExcellentRating StabilityRating = "Excellent"
	GoodRating      StabilityRating = "Good"
	FairRating      StabilityRating = "Fair"
	PoorRating      StabilityRating = "Poor"
	VeryPoorRating  StabilityRating = "Very Poor"
)

// All database backends supported for the history mirror.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:  {},
	TextOut: {},
	JSONOut: {},
}

// ValidDatabaseBackends lists all valid history mirror backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// Stability score thresholds for each rating band.
const (
	ExcellentThreshold = 90
	GoodThreshold      = 70
	FairThreshold      = 50
	PoorThreshold      = 30
)

// RatingForScore converts a stability score to its qualitative rating.
func RatingForScore(score float64) StabilityRating {
	switch {
	case score >= ExcellentThreshold:
		return ExcellentRating
	case score >= GoodThreshold:
		return GoodRating
	case score >= FairThreshold:
		return FairRating
	case score >= PoorThreshold:
		return PoorRating
	default:
		return VeryPoorRating
	}
}
