package core

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/vinsol-ai/parley/internal/contract"
	"github.com/vinsol-ai/parley/schema"
)

// shortAnswerChars is the trimmed character-count threshold below which an
// answer is scored degenerately without touching the embedding service.
const shortAnswerChars = 30

// shortAnswerFeedback is the single feedback statement for too-brief answers.
const shortAnswerFeedback = "Response too brief - please provide a detailed answer (at least 45 seconds of speech)."

// shortAnswerMetrics is the fixed metric set for too-brief answers. Score is
// intentionally NOT the weighted combination of the other three.
var shortAnswerMetrics = schema.Metrics{Relevance: 5, Confidence: 15, Clarity: 20, Score: 13}

// Analyzer scores interview answers. It is safe for concurrent use: the
// config is read-only, the relevance scorer is stateless, and the feedback
// generator serializes access to its random source.
type Analyzer struct {
	cfg      *contract.Config
	scorer   *RelevanceScorer
	feedback *FeedbackGenerator
}

// NewAnalyzer creates an analyzer from a validated config. The random source
// seeds feedback shuffling only; pass nil for time-based seeding.
func NewAnalyzer(cfg *contract.Config, embedder contract.Embedder, src rand.Source) *Analyzer {
	return &Analyzer{
		cfg:      cfg,
		scorer:   NewRelevanceScorer(embedder),
		feedback: NewFeedbackGenerator(cfg, src),
	}
}

// AnalyzeResponse scores a single question/answer pair. Answers whose trimmed
// text is under 30 characters short-circuit to fixed degenerate metrics and a
// fixed feedback statement; everything else goes through relevance scoring,
// the heuristic estimators, weighted aggregation and feedback generation.
func (a *Analyzer) AnalyzeResponse(ctx context.Context, question, answer string) (*schema.ResponseRecord, error) {
	record := &schema.ResponseRecord{
		Question:  question,
		Answer:    answer,
		Timestamp: time.Now(),
	}

	if utf8.RuneCountInString(strings.TrimSpace(answer)) < shortAnswerChars {
		record.Metrics = shortAnswerMetrics
		record.Feedback = shortAnswerFeedback
		return record, nil
	}

	relevance, err := a.scorer.Score(ctx, question, answer)
	if err != nil {
		return nil, fmt.Errorf("failed to score relevance: %w", err)
	}

	wordCount := WordCount(answer)
	fillers := CountFillerWords(answer, a.cfg.FillerWords)
	pauses := CountPauseIndicators(answer, a.cfg.PauseIndicators)
	hasExample := DetectExampleUsage(answer, a.cfg.ExampleKeywords)

	metrics := schema.Metrics{
		Relevance:  relevance,
		Confidence: EstimateConfidence(wordCount, fillers, hasExample),
		Clarity:    EstimateClarity(fillers, pauses, wordCount),
	}
	metrics.Score = a.WeightedScore(metrics)

	record.Metrics = metrics
	record.Feedback = JoinFeedback(a.feedback.Generate(metrics, answer))
	return record, nil
}

// WeightedScore combines the three dimension scores into the overall score
// using the configured weights, truncating toward zero.
func (a *Analyzer) WeightedScore(m schema.Metrics) int {
	weighted := a.cfg.RelevanceWeight*float64(m.Relevance) +
		a.cfg.ConfidenceWeight*float64(m.Confidence) +
		a.cfg.ClarityWeight*float64(m.Clarity)
	return int(weighted)
}

// AnalyzeSession scores a batch of exchanges concurrently with cfg.Workers
// workers, preserving input order in the returned records. Failed exchanges
// are dropped from the result and their errors joined; partial results are
// still returned so a mostly-good session survives one bad embedding call.
func (a *Analyzer) AnalyzeSession(ctx context.Context, exchanges []schema.ExchangePair) ([]schema.ResponseRecord, error) {
	if len(exchanges) == 0 {
		return nil, nil
	}

	type indexedPair struct {
		index int
		pair  schema.ExchangePair
	}

	pairCh := make(chan indexedPair, len(exchanges))
	results := make([]*schema.ResponseRecord, len(exchanges))
	errs := make([]error, len(exchanges))

	var wg sync.WaitGroup
	for range a.cfg.Workers {
		wg.Go(func() {
			for ip := range pairCh {
				record, err := a.AnalyzeResponse(ctx, ip.pair.Question, ip.pair.Answer)
				if err != nil {
					errs[ip.index] = fmt.Errorf("question %d: %w", ip.index+1, err)
					continue
				}
				results[ip.index] = record
			}
		})
	}

	for i, pair := range exchanges {
		pairCh <- indexedPair{index: i, pair: pair}
	}
	close(pairCh)
	wg.Wait()

	records := make([]schema.ResponseRecord, 0, len(exchanges))
	for _, r := range results {
		if r != nil {
			records = append(records, *r)
		}
	}
	return records, errors.Join(errs...)
}
