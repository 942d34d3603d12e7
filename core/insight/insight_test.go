package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vinsol-ai/parley/schema"
)

func recordsWithScores(scores ...int) []schema.ResponseRecord {
	records := make([]schema.ResponseRecord, len(scores))
	for i, s := range scores {
		records[i] = schema.ResponseRecord{
			Metrics: schema.Metrics{Relevance: s, Confidence: s, Clarity: s, Score: s},
		}
	}
	return records
}

// TestComputeStatistics checks averages, extrema and rounding.
func TestComputeStatistics(t *testing.T) {
	stats, err := ComputeStatistics(recordsWithScores(95, 60, 88, 40))
	require.NoError(t, err)

	assert.Equal(t, 70.8, stats.OverallAverageScore) // 283/4 = 70.75 rounds up
	assert.Equal(t, 95, stats.HighestScore)
	assert.Equal(t, 40, stats.LowestScore)
	assert.Equal(t, 4, stats.TotalQuestions)
	assert.Equal(t, 70.8, stats.AverageRelevance)
	assert.Equal(t, 70.8, stats.AverageConfidence)
	assert.Equal(t, 70.8, stats.AverageClarity)
}

// TestComputeStatisticsEmpty rejects empty sessions.
func TestComputeStatisticsEmpty(t *testing.T) {
	_, err := ComputeStatistics(nil)
	assert.ErrorIs(t, err, ErrNoRecords)

	_, err = Compute(nil)
	assert.ErrorIs(t, err, ErrNoRecords)
}

// TestDimensionTieBreaks verifies equal averages resolve in canonical order:
// relevance before confidence before clarity.
func TestDimensionTieBreaks(t *testing.T) {
	stats, err := ComputeStatistics(recordsWithScores(80, 80))
	require.NoError(t, err)
	assert.Equal(t, schema.RelevanceDimension, stats.StrongestArea)
	assert.Equal(t, schema.RelevanceDimension, stats.AreaForImprovement)

	stats, err = ComputeStatistics([]schema.ResponseRecord{
		{Metrics: schema.Metrics{Relevance: 50, Confidence: 80, Clarity: 80, Score: 70}},
	})
	require.NoError(t, err)
	assert.Equal(t, schema.ConfidenceDimension, stats.StrongestArea, "confidence wins ties over clarity")
	assert.Equal(t, schema.RelevanceDimension, stats.AreaForImprovement)
}

// TestDimensionExtremes verifies the strongest/weakest picks with distinct averages.
func TestDimensionExtremes(t *testing.T) {
	stats, err := ComputeStatistics([]schema.ResponseRecord{
		{Metrics: schema.Metrics{Relevance: 60, Confidence: 90, Clarity: 75, Score: 73}},
	})
	require.NoError(t, err)
	assert.Equal(t, schema.ConfidenceDimension, stats.StrongestArea)
	assert.Equal(t, schema.RelevanceDimension, stats.AreaForImprovement)
}

// TestExtractStrengthsAndWeaknesses covers the per-question pattern rules.
func TestExtractStrengthsAndWeaknesses(t *testing.T) {
	records := []schema.ResponseRecord{
		{Metrics: schema.Metrics{Relevance: 95, Confidence: 90, Clarity: 92, Score: 93}}, // high score
		{Metrics: schema.Metrics{Relevance: 65, Confidence: 55, Clarity: 60, Score: 61}}, // low everything
		{Metrics: schema.Metrics{Relevance: 85, Confidence: 80, Clarity: 82, Score: 83}},
		{Metrics: schema.Metrics{Relevance: 68, Confidence: 75, Clarity: 65, Score: 69}}, // low rel + clarity
	}

	strengths, weaknesses := ExtractStrengthsAndWeaknesses(records)

	assert.Equal(t, []string{
		"Stay on topic more closely (Questions 2, 4)",
		"Project more confidence through pacing and examples (Questions 2)",
		"Reduce fillers and pauses for smoother delivery (Questions 2, 4)",
	}, weaknesses)
	assert.Equal(t, []string{"Excellent structured responses (Questions 1)"}, strengths)
}

// TestBlanketRelevanceStrength fires when every answer stays on topic.
func TestBlanketRelevanceStrength(t *testing.T) {
	records := []schema.ResponseRecord{
		{Metrics: schema.Metrics{Relevance: 82, Confidence: 70, Clarity: 72, Score: 76}},
		{Metrics: schema.Metrics{Relevance: 90, Confidence: 75, Clarity: 80, Score: 83}},
		{Metrics: schema.Metrics{Relevance: 80, Confidence: 72, Clarity: 75, Score: 76}},
	}

	strengths, _ := ExtractStrengthsAndWeaknesses(records)
	assert.Contains(t, strengths, "Consistently high relevance across all answers")
}

// TestStrengthWeaknessFallbacks guarantees neither list is ever empty.
func TestStrengthWeaknessFallbacks(t *testing.T) {
	// Middling everywhere: no rule fires on either side.
	records := []schema.ResponseRecord{
		{Metrics: schema.Metrics{Relevance: 75, Confidence: 70, Clarity: 75, Score: 73}},
	}

	strengths, weaknesses := ExtractStrengthsAndWeaknesses(records)
	assert.Equal(t, []string{"Consistent effort shown"}, strengths)
	assert.Equal(t, []string{"Continue practicing regularly"}, weaknesses)
}

// TestRecommendPracticeAreas covers the session-average thresholds.
func TestRecommendPracticeAreas(t *testing.T) {
	tests := []struct {
		name     string
		stats    schema.SessionStatistics
		expected []string
	}{
		{
			name:  "all areas weak",
			stats: schema.SessionStatistics{AverageRelevance: 60, AverageConfidence: 60, AverageClarity: 60},
			expected: []string{
				"Practice directly addressing the question prompt",
				"Build confidence through structured examples (STAR method)",
				"Work on fluency and reducing filler words",
			},
		},
		{
			name:     "only confidence weak",
			stats:    schema.SessionStatistics{AverageRelevance: 80, AverageConfidence: 65, AverageClarity: 80},
			expected: []string{"Build confidence through structured examples (STAR method)"},
		},
		{
			name:     "thresholds are strict",
			stats:    schema.SessionStatistics{AverageRelevance: 75, AverageConfidence: 70, AverageClarity: 75},
			expected: []string{"Continue refining advanced communication skills"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RecommendPracticeAreas(&tt.stats))
		})
	}
}

// TestSummarizePerformance checks the exact joined summary line.
func TestSummarizePerformance(t *testing.T) {
	stats := &schema.SessionStatistics{
		OverallAverageScore: 84,
		StrongestArea:       schema.RelevanceDimension,
		AreaForImprovement:  schema.ClarityDimension,
	}

	assert.Equal(t,
		"Overall Performance: 84.0/100 | "+
			"Your strongest dimension was Relevance. | "+
			"Greatest opportunity lies in improving Clarity. | "+
			"Strong performance with clear strengths.",
		SummarizePerformance(stats))
}

// TestSummarizePerformanceBands checks the closing-line score bands.
func TestSummarizePerformanceBands(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{85, "Excellent performance - ready for senior-level interviews."},
		{70, "Strong performance with clear strengths."},
		{69.9, "Solid foundation - focused practice will yield rapid improvement."},
	}
	for _, tt := range tests {
		stats := &schema.SessionStatistics{
			OverallAverageScore: tt.score,
			StrongestArea:       schema.RelevanceDimension,
			AreaForImprovement:  schema.ClarityDimension,
		}
		assert.Contains(t, SummarizePerformance(stats), tt.expected)
	}
}

// TestComputeFullReport exercises the assembled report.
func TestComputeFullReport(t *testing.T) {
	report, err := Compute(recordsWithScores(95, 60, 88, 40))
	require.NoError(t, err)

	assert.Equal(t, 70.8, report.Stats.OverallAverageScore)
	assert.NotEmpty(t, report.Strengths)
	assert.NotEmpty(t, report.Weaknesses)
	assert.NotEmpty(t, report.Recommendations)
	assert.Contains(t, report.Summary, "Overall Performance: 70.8/100")
}
