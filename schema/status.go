package schema

import "time"

// HistoryStatus represents the status of the history store.
type HistoryStatus struct {
	Backend           string           `json:"backend"`
	Connected         bool             `json:"connected"`
	TotalSessions     int              `json:"total_sessions"`
	LastSessionID     int64            `json:"last_session_id"`
	LastSessionTime   time.Time        `json:"last_session_time"`
	OldestSessionTime time.Time        `json:"oldest_session_time"`
	TotalResponses    int              `json:"total_responses"`
	TableSizes        map[string]int64 `json:"table_sizes"`
}

// SessionRunRecord represents a row from the parley_sessions table.
type SessionRunRecord struct {
	SessionID      int64
	StartTime      time.Time
	EndTime        *time.Time
	Role           string
	TotalQuestions *int32
	ConfigParams   *string
	SummaryText    *string
}

// StoredResponseRecord represents a row from the parley_responses table.
type StoredResponseRecord struct {
	SessionID   int64
	QuestionNum int32
	Question    string
	Answer      string
	Relevance   int32
	Confidence  int32
	Clarity     int32
	Score       int32
	Feedback    string
	AnsweredAt  time.Time
}
