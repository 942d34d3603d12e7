package core

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEmbedder returns canned vectors keyed by input text. Safe for use from
// concurrent analysis workers.
type fakeEmbedder struct {
	vectors map[string][]float64
	err     error

	mu    sync.Mutex
	calls int
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.vectors[text], nil
}

func (f *fakeEmbedder) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// TestRelevanceScore tests the embed-compare-scale pipeline.
func TestRelevanceScore(t *testing.T) {
	tests := []struct {
		name     string
		qVec     []float64
		aVec     []float64
		expected int
	}{
		{name: "identical vectors", qVec: []float64{1, 2, 3}, aVec: []float64{1, 2, 3}, expected: 100},
		{name: "orthogonal vectors", qVec: []float64{1, 0}, aVec: []float64{0, 1}, expected: 0},
		{name: "opposite vectors clamp to zero", qVec: []float64{1, 0}, aVec: []float64{-1, 0}, expected: 0},
		{name: "zero vector has no direction", qVec: []float64{0, 0}, aVec: []float64{1, 1}, expected: 0},
		{name: "partial similarity truncates", qVec: []float64{1, 0}, aVec: []float64{1, 1}, expected: 70}, // cos = 0.7071
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scorer := NewRelevanceScorer(&fakeEmbedder{vectors: map[string][]float64{
				"q": tt.qVec,
				"a": tt.aVec,
			}})
			score, err := scorer.Score(context.Background(), "q", "a")
			require.NoError(t, err)
			assert.Equal(t, tt.expected, score)
		})
	}
}

// TestRelevanceScoreIdempotent ensures repeated scoring returns the same value.
func TestRelevanceScoreIdempotent(t *testing.T) {
	scorer := NewRelevanceScorer(&fakeEmbedder{vectors: map[string][]float64{
		"q": {0.2, 0.5, 0.1},
		"a": {0.3, 0.4, 0.2},
	}})

	first, err := scorer.Score(context.Background(), "q", "a")
	require.NoError(t, err)
	second, err := scorer.Score(context.Background(), "q", "a")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestRelevanceScoreErrors tests error propagation from the embedder.
func TestRelevanceScoreErrors(t *testing.T) {
	embedErr := errors.New("service down")
	scorer := NewRelevanceScorer(&fakeEmbedder{err: embedErr})

	_, err := scorer.Score(context.Background(), "q", "a")
	require.Error(t, err)
	assert.ErrorIs(t, err, embedErr)
}

// TestRelevanceScoreWithoutEmbedder errors instead of dereferencing a nil
// embedder when no embedding service is configured.
func TestRelevanceScoreWithoutEmbedder(t *testing.T) {
	scorer := NewRelevanceScorer(nil)

	_, err := scorer.Score(context.Background(), "q", "a")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoEmbedder)
}

// TestRelevanceScoreDimensionMismatch rejects vectors of different sizes.
func TestRelevanceScoreDimensionMismatch(t *testing.T) {
	scorer := NewRelevanceScorer(&fakeEmbedder{vectors: map[string][]float64{
		"q": {1, 2, 3},
		"a": {1, 2},
	}})

	_, err := scorer.Score(context.Background(), "q", "a")
	assert.ErrorContains(t, err, "dimension mismatch")
}
