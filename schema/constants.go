package schema

// Custom string types for type safety.
type (
	// Dimension represents one of the three scored axes of an answer.
	Dimension string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for history tracking.
	DatabaseBackend string
)

// Scored dimensions, in canonical iteration order. Ties between dimensions
// always resolve to the earliest entry in this order.
const (
	RelevanceDimension  Dimension = "relevance"
	ConfidenceDimension Dimension = "confidence"
	ClarityDimension    Dimension = "clarity"
)

// AllDimensions lists the scored dimensions in canonical order.
var AllDimensions = []Dimension{RelevanceDimension, ConfidenceDimension, ClarityDimension}

// Label returns the display form of a dimension ("relevance" -> "Relevance").
func (d Dimension) Label() string {
	switch d {
	case RelevanceDimension:
		return "Relevance"
	case ConfidenceDimension:
		return "Confidence"
	case ClarityDimension:
		return "Clarity"
	default:
		return string(d)
	}
}

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
	CSVOut  OutputMode = "csv"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	JSONOut: {},
	CSVOut:  {},
}

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidDatabaseBackends lists all valid history backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// Display separators for joined feedback and summary text.
const (
	FeedbackSeparator = " • "
	SummarySeparator  = " | "
)
