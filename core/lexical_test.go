package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vinsol-ai/parley/internal/contract"
)

// TestCountFillerWords tests filler phrase counting.
func TestCountFillerWords(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		fillers  []string
		expected int
	}{
		{
			name:     "empty text",
			text:     "",
			fillers:  contract.DefaultFillerWords,
			expected: 0,
		},
		{
			name:     "no fillers",
			text:     "The design used a message queue between services.",
			fillers:  []string{"um", "uh"},
			expected: 0,
		},
		{
			name:     "case insensitive",
			text:     "Um, I think, UM, we shipped it.",
			fillers:  []string{"um"},
			expected: 2,
		},
		{
			name:     "multi word phrase",
			text:     "you know, it was, you know, hard",
			fillers:  []string{"you know"},
			expected: 2,
		},
		{
			name:     "overlapping phrases count additively",
			text:     "umm that was tough",
			fillers:  []string{"um", "umm"},
			expected: 2,
		},
		{
			name:     "empty filler list",
			text:     "um uh like",
			fillers:  []string{},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountFillerWords(tt.text, tt.fillers))
		})
	}
}

// TestCountPauseIndicators tests literal pause marker counting.
func TestCountPauseIndicators(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{name: "no pauses", text: "We deployed it on Friday.", expected: 0},
		{name: "ellipsis", text: "So... we waited... a while", expected: 2},
		{name: "double dash", text: "it was -- complicated", expected: 1},
		{name: "unicode ellipsis", text: "then… nothing", expected: 1},
		{name: "mixed markers", text: "well... it -- broke…", expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountPauseIndicators(tt.text, contract.DefaultPauseIndicators))
		})
	}
}

// TestDetectExampleUsage tests whole-word example keyword detection.
func TestDetectExampleUsage(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		keywords []string
		expected bool
	}{
		{
			name:     "direct keyword",
			text:     "For example, on my last project we cut latency in half.",
			keywords: contract.DefaultExampleKeywords,
			expected: true,
		},
		{
			name:     "case insensitive",
			text:     "I BUILT a pipeline for ingest.",
			keywords: contract.DefaultExampleKeywords,
			expected: true,
		},
		{
			name:     "no substring match inside larger word",
			text:     "the staircase was steep",
			keywords: []string{"case"},
			expected: false,
		},
		{
			name:     "multi word keyword",
			text:     "I worked on the billing system last year.",
			keywords: contract.DefaultExampleKeywords,
			expected: true,
		},
		{
			name:     "no keywords present",
			text:     "It went fine overall.",
			keywords: contract.DefaultExampleKeywords,
			expected: false,
		},
		{
			name:     "empty keyword list never matches",
			text:     "for example",
			keywords: []string{},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectExampleUsage(tt.text, tt.keywords))
		})
	}
}

// TestDetectStarStructure tests the 3-distinct-keyword STAR threshold.
func TestDetectStarStructure(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{
			name:     "three distinct keywords",
			text:     "The situation was bad, my task was clear, and the result was great.",
			expected: true,
		},
		{
			name:     "two keywords is not enough",
			text:     "The situation demanded action.",
			expected: false,
		},
		{
			name:     "repeats of one keyword count once",
			text:     "result result result result",
			expected: false,
		},
		{
			name:     "substring match inside larger word counts",
			text:     "the goaltender faced a challenge with great impact",
			expected: true,
		},
		{
			name:     "empty text",
			text:     "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectStarStructure(tt.text, contract.DefaultStarMethodKeywords))
		})
	}
}

// TestCountTechnicalVocabulary tests distinct technical term counting.
func TestCountTechnicalVocabulary(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{name: "none", text: "We talked it through as a team.", expected: 0},
		{name: "distinct terms", text: "The API hits the database through a cache.", expected: 3},
		{name: "repeats count once", text: "cache cache cache", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountTechnicalVocabulary(tt.text, contract.DefaultTechnicalKeywords))
		})
	}
}

// TestWordCount tests whitespace tokenization.
func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, WordCount(""))
	assert.Equal(t, 0, WordCount("   \n\t  "))
	assert.Equal(t, 3, WordCount("one  two\nthree"))
}

// BenchmarkCountFillerWords benchmarks filler counting on a realistic answer.
func BenchmarkCountFillerWords(b *testing.B) {
	text := "Um, so basically the situation was that, you know, our deploy pipeline " +
		"kept failing and, uh, I sort of took over the task of actually fixing it."

	for b.Loop() {
		CountFillerWords(text, contract.DefaultFillerWords)
	}
}

// BenchmarkDetectStarStructure benchmarks STAR keyword detection.
func BenchmarkDetectStarStructure(b *testing.B) {
	text := "The situation demanded a clear task, decisive action, and a measurable result " +
		"that I could present as an achievement with real impact."

	for b.Loop() {
		DetectStarStructure(text, contract.DefaultStarMethodKeywords)
	}
}
