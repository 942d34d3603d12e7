package core

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/vinsol-ai/parley/internal/contract"
	"github.com/vinsol-ai/parley/schema"
)

// maxFeedbackStatements caps how many statements a single answer receives.
const maxFeedbackStatements = 6

// FeedbackGenerator turns computed metrics plus the raw answer text into a
// curated set of feedback statements. The statement *set* is fully determined
// by its inputs; only the presentation order is randomized per call, via the
// injected random source.
type FeedbackGenerator struct {
	cfg *contract.Config

	mu  sync.Mutex
	rng *rand.Rand
}

// NewFeedbackGenerator creates a generator using the given random source.
// A nil source falls back to a time-seeded one.
func NewFeedbackGenerator(cfg *contract.Config, src rand.Source) *FeedbackGenerator {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &FeedbackGenerator{cfg: cfg, rng: rand.New(src)}
}

// Generate produces the ranked-then-shuffled feedback statements for one
// scored answer, capped at 6 entries.
func (g *FeedbackGenerator) Generate(m schema.Metrics, answer string) []string {
	statements := []string{g.relevanceStatement(m.Relevance)}

	if DetectStarStructure(answer, g.cfg.StarMethodKeywords) {
		statements = append(statements, "Effective use of structured response framework (STAR method).")
	}

	wordCount := WordCount(answer)
	if DetectExampleUsage(answer, g.cfg.ExampleKeywords) {
		if wordCount > 120 {
			statements = append(statements, "Strong incorporation of detailed real-world examples.")
		} else {
			statements = append(statements, "Appropriate use of examples to support points.")
		}
	}

	statements = append(statements, wordCountStatement(wordCount))
	statements = append(statements, fillerStatement(CountFillerWords(answer, g.cfg.FillerWords)))

	if closing, ok := overallStatement(m.Score); ok {
		statements = append(statements, closing)
	}

	g.mu.Lock()
	g.rng.Shuffle(len(statements), func(i, j int) {
		statements[i], statements[j] = statements[j], statements[i]
	})
	g.mu.Unlock()

	if len(statements) > maxFeedbackStatements {
		statements = statements[:maxFeedbackStatements]
	}
	return statements
}

// relevanceStatement maps a relevance score to its tier statement. The top
// tier picks among equivalent phrasings.
func (g *FeedbackGenerator) relevanceStatement(relevance int) string {
	switch {
	case relevance >= 95:
		exceptional := []string{
			"Exceptional relevance - perfectly aligned with the question.",
			"Outstanding understanding of the core topic.",
		}
		g.mu.Lock()
		pick := exceptional[g.rng.Intn(len(exceptional))]
		g.mu.Unlock()
		return pick
	case relevance >= 88:
		return "Strong relevance with excellent focus on key points."
	case relevance >= 80:
		return "Good relevance and clear connection to the question."
	case relevance >= 65:
		return "Moderate relevance - mostly on track with room for tighter focus."
	default:
		return "Limited relevance - consider addressing the question more directly."
	}
}

// wordCountStatement maps the answer length to its depth statement.
func wordCountStatement(wordCount int) string {
	switch {
	case wordCount >= 180:
		return "Excellent depth and comprehensive coverage."
	case wordCount >= 130:
		return "Solid depth with good level of detail."
	case wordCount >= 90:
		return "Adequate content - consider expanding with examples."
	default:
		return fmt.Sprintf("Response length: %d words - aim for more elaboration.", wordCount)
	}
}

// fillerStatement maps the filler count to its fluency statement.
func fillerStatement(fillers int) string {
	switch {
	case fillers == 0:
		return "Excellent fluency with no filler words."
	case fillers <= 2:
		return fmt.Sprintf("High fluency with minimal fillers (%d).", fillers)
	case fillers <= 6:
		return fmt.Sprintf("Moderate filler word usage (%d) - practice confident pauses.", fillers)
	default:
		return fmt.Sprintf("Significant filler usage (%d) - focus on reducing for stronger delivery.", fillers)
	}
}

// overallStatement returns the optional closing statement for strong answers.
// Answers scoring below 75 get no closing statement at all.
func overallStatement(score int) (string, bool) {
	switch {
	case score >= 92:
		return "Outstanding overall performance.", true
	case score >= 85:
		return "Strong performance suitable for advanced rounds.", true
	case score >= 75:
		return "Solid performance with clear potential.", true
	default:
		return "", false
	}
}

// JoinFeedback renders feedback statements as a single display string.
func JoinFeedback(statements []string) string {
	return strings.Join(statements, schema.FeedbackSeparator)
}
