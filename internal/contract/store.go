package contract

import (
	"time"

	"github.com/vinsol-ai/parley/schema"
)

// HistoryStore persists interview sessions and their scored responses. The
// None backend yields a no-op implementation so callers never branch on
// whether history is enabled.
type HistoryStore interface {
	// BeginSession creates a new session row and returns its unique ID.
	BeginSession(startTime time.Time, role string, configParams map[string]any) (int64, error)

	// EndSession marks a session complete with its question count and the
	// rendered performance summary.
	EndSession(sessionID int64, endTime time.Time, totalQuestions int, summary string) error

	// RecordResponse stores one scored response at its 1-based position.
	RecordResponse(sessionID int64, questionNum int, record schema.ResponseRecord) error

	// GetStatus returns status information about the history store.
	GetStatus() (schema.HistoryStatus, error)

	// GetAllSessionRuns retrieves every session row in session order.
	GetAllSessionRuns() ([]schema.SessionRunRecord, error)

	// GetAllResponseScores retrieves every response row ordered by session
	// and question position.
	GetAllResponseScores() ([]schema.StoredResponseRecord, error)

	// Clear removes all history rows from both tables.
	Clear() error

	// Close closes the underlying connection.
	Close() error
}
