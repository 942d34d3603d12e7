package core

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/vinsol-ai/parley/internal/contract"
)

// ErrNoEmbedder is returned when relevance scoring is attempted without a
// configured embedding service.
var ErrNoEmbedder = errors.New("no embedding service configured")

// RelevanceScorer measures how semantically close an answer is to its
// question using the external embedding service. It holds no per-call state
// and is safe for concurrent use when its Embedder is.
type RelevanceScorer struct {
	embedder contract.Embedder
}

// NewRelevanceScorer creates a scorer backed by the given embedder.
func NewRelevanceScorer(embedder contract.Embedder) *RelevanceScorer {
	return &RelevanceScorer{embedder: embedder}
}

// Score computes the relevance score (0-100) between a question and answer.
// Both texts are embedded and compared by cosine similarity; the similarity is
// clamped before scaling since floating-point noise can push it slightly
// outside [0,1]. Embedding failures propagate: a failed relevance computation
// never yields a fabricated score.
func (s *RelevanceScorer) Score(ctx context.Context, question, answer string) (int, error) {
	if s.embedder == nil {
		return 0, ErrNoEmbedder
	}

	questionVec, err := s.embedder.Embed(ctx, question)
	if err != nil {
		return 0, fmt.Errorf("failed to embed question: %w", err)
	}
	answerVec, err := s.embedder.Embed(ctx, answer)
	if err != nil {
		return 0, fmt.Errorf("failed to embed answer: %w", err)
	}

	similarity, err := cosineSimilarity(questionVec, answerVec)
	if err != nil {
		return 0, err
	}

	return clampInt(int(similarity*100), 0, 100), nil
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// A zero-magnitude vector has no direction, so similarity against it is 0.
func cosineSimilarity(a, b []float64) (float64, error) {
	if len(a) == 0 || len(a) != len(b) {
		return 0, fmt.Errorf("embedding dimension mismatch: %d vs %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
