// Package parquet provides data structures and functions for exporting
// interview history data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/vinsol-ai/parley/schema"
)

// SessionRun represents a single interview session with metadata.
// This struct maps to the parley_sessions database table.
type SessionRun struct {
	// SessionID is the unique identifier for this session
	SessionID int64 `parquet:"session_id,snappy"`

	// StartTime is when the session began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the session completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// Role is the interview role the questions were drawn for
	Role string `parquet:"role,snappy"`

	// TotalQuestions is the number of questions answered in this session (nullable)
	TotalQuestions *int32 `parquet:"total_questions,optional,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`

	// SummaryText is the rendered performance summary (nullable)
	SummaryText *string `parquet:"summary_text,optional,snappy"`
}

// ResponseScore represents the scores for a single answer in a session.
// This struct maps to the parley_responses database table.
type ResponseScore struct {
	// SessionID references the parent session
	SessionID int64 `parquet:"session_id,snappy"`

	// QuestionNum is the 1-based position of the question in the session
	QuestionNum int32 `parquet:"question_num,snappy"`

	// Question is the interview question that was asked
	Question string `parquet:"question,snappy"`

	// Answer is the confirmed transcript of the candidate's response
	Answer string `parquet:"answer,snappy"`

	// AnsweredAt is when the answer was scored (stored as TIMESTAMP with nanosecond precision)
	AnsweredAt time.Time `parquet:"answered_at,snappy"`

	// Relevance is the semantic relevance score (0-100)
	Relevance int32 `parquet:"relevance,snappy"`

	// Confidence is the heuristic confidence score (0-100)
	Confidence int32 `parquet:"confidence,snappy"`

	// Clarity is the heuristic clarity score (0-100)
	Clarity int32 `parquet:"clarity,snappy"`

	// Score is the weighted overall score (0-100)
	Score int32 `parquet:"score,snappy"`

	// Feedback is the joined feedback statements for this answer
	Feedback string `parquet:"feedback,snappy"`
}

// WriteSessionRunsParquet writes a slice of SessionRun structs to a Parquet file.
func WriteSessionRunsParquet(data []SessionRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the SessionRun struct tags
	writer := parquet.NewGenericWriter[SessionRun](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteResponseScoresParquet writes a slice of ResponseScore structs to a Parquet file.
func WriteResponseScoresParquet(data []ResponseScore, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the ResponseScore struct tags
	writer := parquet.NewGenericWriter[ResponseScore](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// MockFetchSessionRuns generates sample SessionRun data for demonstration.
func MockFetchSessionRuns() []SessionRun {
	now := time.Now()
	startTime1 := now.Add(-2 * time.Hour)
	endTime1 := now.Add(-1*time.Hour - 40*time.Minute)
	totalQuestions1 := int32(4)
	configParams1 := `{"relevance_weight":0.5,"confidence_weight":0.25,"clarity_weight":0.25,"workers":4}`
	summary1 := "Overall Performance: 78.5/100 | Your strongest dimension was Relevance. | Greatest opportunity lies in improving Clarity. | Strong performance with clear strengths."

	startTime2 := now.Add(-24 * time.Hour)
	endTime2 := now.Add(-23*time.Hour - 45*time.Minute)
	totalQuestions2 := int32(3)
	configParams2 := `{"relevance_weight":0.4,"confidence_weight":0.3,"clarity_weight":0.3,"workers":8}`
	summary2 := "Overall Performance: 64.0/100 | Your strongest dimension was Confidence. | Greatest opportunity lies in improving Relevance. | Solid foundation - focused practice will yield rapid improvement."

	startTime3 := now.Add(-10 * time.Minute)

	return []SessionRun{
		{
			SessionID:      1,
			StartTime:      startTime1,
			EndTime:        &endTime1,
			Role:           "Software Engineer",
			TotalQuestions: &totalQuestions1,
			ConfigParams:   &configParams1,
			SummaryText:    &summary1,
		},
		{
			SessionID:      2,
			StartTime:      startTime2,
			EndTime:        &endTime2,
			Role:           "Data Scientist",
			TotalQuestions: &totalQuestions2,
			ConfigParams:   &configParams2,
			SummaryText:    &summary2,
		},
		{
			SessionID:      3,
			StartTime:      startTime3,
			EndTime:        nil, // Still in progress - nullable field
			Role:           "Product Manager",
			TotalQuestions: nil, // Not yet recorded - nullable field
			ConfigParams:   nil, // No config stored - nullable field
			SummaryText:    nil,
		},
	}
}

// MockFetchResponseScores generates sample ResponseScore data for demonstration.
func MockFetchResponseScores() []ResponseScore {
	now := time.Now()

	return []ResponseScore{
		{
			SessionID:   1,
			QuestionNum: 1,
			Question:    "Tell me about a challenging project you led.",
			Answer:      "Last year I led the migration of our billing system to a new platform with zero downtime.",
			AnsweredAt:  now.Add(-110 * time.Minute),
			Relevance:   92,
			Confidence:  84,
			Clarity:     88,
			Score:       89,
			Feedback:    "Strong relevance with excellent focus on key points. • Appropriate use of examples to support points.",
		},
		{
			SessionID:   1,
			QuestionNum: 2,
			Question:    "How do you handle disagreement with a teammate?",
			Answer:      "I listen first.",
			AnsweredAt:  now.Add(-105 * time.Minute),
			Relevance:   5,
			Confidence:  15,
			Clarity:     20,
			Score:       13,
			Feedback:    "Response too brief - please provide a detailed answer (at least 45 seconds of speech).",
		},
		{
			SessionID:   2,
			QuestionNum: 1,
			Question:    "Explain the difference between supervised and unsupervised learning.",
			Answer:      "Supervised learning trains on labeled examples while unsupervised learning finds structure without labels.",
			AnsweredAt:  now.Add(-23*time.Hour - 50*time.Minute),
			Relevance:   85,
			Confidence:  62,
			Clarity:     74,
			Score:       76,
			Feedback:    "Good relevance and clear connection to the question. • High fluency with minimal fillers (1).",
		},
	}
}

// ConvertSessionRunRecords converts schema.SessionRunRecord to SessionRun for Parquet export.
func ConvertSessionRunRecords(records []schema.SessionRunRecord) []SessionRun {
	result := make([]SessionRun, len(records))
	for i, record := range records {
		result[i] = SessionRun{
			SessionID:      record.SessionID,
			StartTime:      record.StartTime,
			EndTime:        record.EndTime,
			Role:           record.Role,
			TotalQuestions: record.TotalQuestions,
			ConfigParams:   record.ConfigParams,
			SummaryText:    record.SummaryText,
		}
	}
	return result
}

// ConvertStoredResponseRecords converts schema.StoredResponseRecord to ResponseScore for Parquet export.
func ConvertStoredResponseRecords(records []schema.StoredResponseRecord) []ResponseScore {
	result := make([]ResponseScore, len(records))
	for i, record := range records {
		result[i] = ResponseScore{
			SessionID:   record.SessionID,
			QuestionNum: record.QuestionNum,
			Question:    record.Question,
			Answer:      record.Answer,
			AnsweredAt:  record.AnsweredAt,
			Relevance:   record.Relevance,
			Confidence:  record.Confidence,
			Clarity:     record.Clarity,
			Score:       record.Score,
			Feedback:    record.Feedback,
		}
	}
	return result
}
