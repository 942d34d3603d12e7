// Package insight derives session-level statistics, strengths, weaknesses and
// recommendations from a collection of scored responses.
package insight

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vinsol-ai/parley/schema"
)

// ErrNoRecords is returned when a report is requested for an empty session.
var ErrNoRecords = errors.New("no responses available")

// Per-question thresholds for strength/weakness extraction.
const (
	lowRelevanceThreshold  = 70
	lowConfidenceThreshold = 60
	lowClarityThreshold    = 70
	highScoreThreshold     = 85
	blanketRelevanceFloor  = 80
)

// Session-average thresholds for practice recommendations.
const (
	recommendRelevanceBelow  = 75
	recommendConfidenceBelow = 70
	recommendClarityBelow    = 75
)

// Report is the complete insight bundle for one session.
type Report struct {
	Stats           schema.SessionStatistics `json:"statistics"`
	Strengths       []string                 `json:"strengths"`
	Weaknesses      []string                 `json:"weaknesses"`
	Recommendations []string                 `json:"recommendations"`
	Summary         string                   `json:"summary"`
}

// Compute derives the full report from scored responses. Records must be in
// session order; question numbers in the output are 1-based positions.
func Compute(records []schema.ResponseRecord) (*Report, error) {
	stats, err := ComputeStatistics(records)
	if err != nil {
		return nil, err
	}

	strengths, weaknesses := ExtractStrengthsAndWeaknesses(records)
	return &Report{
		Stats:           *stats,
		Strengths:       strengths,
		Weaknesses:      weaknesses,
		Recommendations: RecommendPracticeAreas(stats),
		Summary:         SummarizePerformance(stats),
	}, nil
}

// ComputeStatistics computes session averages and extrema. Averages are
// rounded half away from zero to 1 decimal place.
func ComputeStatistics(records []schema.ResponseRecord) (*schema.SessionStatistics, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	var scoreSum, relevanceSum, confidenceSum, claritySum int
	highest, lowest := records[0].Metrics.Score, records[0].Metrics.Score
	for _, r := range records {
		scoreSum += r.Metrics.Score
		relevanceSum += r.Metrics.Relevance
		confidenceSum += r.Metrics.Confidence
		claritySum += r.Metrics.Clarity
		highest = max(highest, r.Metrics.Score)
		lowest = min(lowest, r.Metrics.Score)
	}

	n := len(records)
	stats := &schema.SessionStatistics{
		OverallAverageScore: roundTo1(float64(scoreSum) / float64(n)),
		HighestScore:        highest,
		LowestScore:         lowest,
		AverageRelevance:    roundTo1(float64(relevanceSum) / float64(n)),
		AverageConfidence:   roundTo1(float64(confidenceSum) / float64(n)),
		AverageClarity:      roundTo1(float64(claritySum) / float64(n)),
		TotalQuestions:      n,
	}
	stats.StrongestArea = argBestDimension(stats, func(a, b float64) bool { return a > b })
	stats.AreaForImprovement = argBestDimension(stats, func(a, b float64) bool { return a < b })
	return stats, nil
}

// argBestDimension picks the first dimension (in canonical order) whose
// average strictly beats all later ones. Ties resolve to the earlier
// dimension, so relevance wins over confidence wins over clarity.
func argBestDimension(stats *schema.SessionStatistics, beats func(a, b float64) bool) schema.Dimension {
	best := schema.AllDimensions[0]
	bestValue := stats.DimensionAverage(best)
	for _, d := range schema.AllDimensions[1:] {
		if v := stats.DimensionAverage(d); beats(v, bestValue) {
			best, bestValue = d, v
		}
	}
	return best
}

// ExtractStrengthsAndWeaknesses scans per-question metrics for recurring
// patterns. Both lists are guaranteed non-empty via fallback entries.
func ExtractStrengthsAndWeaknesses(records []schema.ResponseRecord) (strengths, weaknesses []string) {
	var lowRelevance, lowConfidence, lowClarity, highScores []int
	allRelevant := true
	for i, r := range records {
		questionNum := i + 1
		if r.Metrics.Relevance < lowRelevanceThreshold {
			lowRelevance = append(lowRelevance, questionNum)
		}
		if r.Metrics.Confidence < lowConfidenceThreshold {
			lowConfidence = append(lowConfidence, questionNum)
		}
		if r.Metrics.Clarity < lowClarityThreshold {
			lowClarity = append(lowClarity, questionNum)
		}
		if r.Metrics.Score >= highScoreThreshold {
			highScores = append(highScores, questionNum)
		}
		if r.Metrics.Relevance < blanketRelevanceFloor {
			allRelevant = false
		}
	}

	if len(lowRelevance) > 0 {
		weaknesses = append(weaknesses, fmt.Sprintf("Stay on topic more closely (Questions %s)", joinQuestionNumbers(lowRelevance)))
	}
	if len(lowConfidence) > 0 {
		weaknesses = append(weaknesses, fmt.Sprintf("Project more confidence through pacing and examples (Questions %s)", joinQuestionNumbers(lowConfidence)))
	}
	if len(lowClarity) > 0 {
		weaknesses = append(weaknesses, fmt.Sprintf("Reduce fillers and pauses for smoother delivery (Questions %s)", joinQuestionNumbers(lowClarity)))
	}

	if len(highScores) > 0 {
		strengths = append(strengths, fmt.Sprintf("Excellent structured responses (Questions %s)", joinQuestionNumbers(highScores)))
	}
	if allRelevant && len(records) > 0 {
		strengths = append(strengths, "Consistently high relevance across all answers")
	}

	if len(strengths) == 0 {
		strengths = []string{"Consistent effort shown"}
	}
	if len(weaknesses) == 0 {
		weaknesses = []string{"Continue practicing regularly"}
	}
	return strengths, weaknesses
}

// RecommendPracticeAreas suggests focus areas from session averages.
func RecommendPracticeAreas(stats *schema.SessionStatistics) []string {
	var recommendations []string
	if stats.AverageRelevance < recommendRelevanceBelow {
		recommendations = append(recommendations, "Practice directly addressing the question prompt")
	}
	if stats.AverageConfidence < recommendConfidenceBelow {
		recommendations = append(recommendations, "Build confidence through structured examples (STAR method)")
	}
	if stats.AverageClarity < recommendClarityBelow {
		recommendations = append(recommendations, "Work on fluency and reducing filler words")
	}
	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Continue refining advanced communication skills")
	}
	return recommendations
}

// SummarizePerformance renders the single-line session summary.
func SummarizePerformance(stats *schema.SessionStatistics) string {
	lines := []string{
		fmt.Sprintf("Overall Performance: %s/100", strconv.FormatFloat(stats.OverallAverageScore, 'f', 1, 64)),
		fmt.Sprintf("Your strongest dimension was %s.", stats.StrongestArea.Label()),
		fmt.Sprintf("Greatest opportunity lies in improving %s.", stats.AreaForImprovement.Label()),
	}

	switch {
	case stats.OverallAverageScore >= 85:
		lines = append(lines, "Excellent performance - ready for senior-level interviews.")
	case stats.OverallAverageScore >= 70:
		lines = append(lines, "Strong performance with clear strengths.")
	default:
		lines = append(lines, "Solid foundation - focused practice will yield rapid improvement.")
	}

	return strings.Join(lines, schema.SummarySeparator)
}

// roundTo1 rounds half away from zero to one decimal place.
func roundTo1(v float64) float64 {
	return math.Round(v*10) / 10
}

func joinQuestionNumbers(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
