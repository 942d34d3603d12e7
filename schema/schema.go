// Package schema has configs, models and shared constants for all parts of parley.
package schema

import "time"

// Metrics holds the four bounded scores computed for a single answer.
// Relevance, Confidence and Clarity are percentages in [0,100]; Score is the
// weighted combination of the other three and is never computed independently.
type Metrics struct {
	Relevance  int `json:"relevance"`  // Semantic similarity between question and answer (0-100)
	Confidence int `json:"confidence"` // Heuristic proxy for assertiveness (0-100, clamped to [20,98] on the scored path)
	Clarity    int `json:"clarity"`    // Heuristic proxy for fluency (0-100, clamped to [15,98] on the scored path)
	Score      int `json:"score"`      // Weighted overall score (0-100)
}

// ResponseRecord captures one answered question. Records are immutable after
// creation and ordered by arrival within a session; question numbering in
// reports refers to that position, not to question identity.
type ResponseRecord struct {
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Metrics   Metrics   `json:"metrics"`
	Feedback  string    `json:"feedback"` // Statements joined by FeedbackSeparator
	Timestamp time.Time `json:"timestamp"`
}

// ExchangePair is a question/answer pair queued for analysis. The answer text
// is already a confirmed transcript (see TranscriptResult).
type ExchangePair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SessionStatistics is derived from a ResponseRecord collection and is always
// recomputable from it; persisted copies are caches, never a source of truth.
type SessionStatistics struct {
	OverallAverageScore float64   `json:"overall_average_score"` // Mean overall score, 1 decimal
	HighestScore        int       `json:"highest_score"`
	LowestScore         int       `json:"lowest_score"`
	AverageRelevance    float64   `json:"average_relevance"` // 1 decimal
	AverageConfidence   float64   `json:"average_confidence"`
	AverageClarity      float64   `json:"average_clarity"`
	TotalQuestions      int       `json:"total_questions"`
	StrongestArea       Dimension `json:"strongest_area"`
	AreaForImprovement  Dimension `json:"area_for_improvement"`
}

// DimensionAverage returns the session mean for the given dimension.
func (s *SessionStatistics) DimensionAverage(d Dimension) float64 {
	switch d {
	case ConfidenceDimension:
		return s.AverageConfidence
	case ClarityDimension:
		return s.AverageClarity
	default:
		return s.AverageRelevance
	}
}
