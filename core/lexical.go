// Package core implements the response analysis and scoring engine.
package core

import (
	"regexp"
	"strings"
	"sync"
)

// CountFillerWords counts occurrences of the configured filler phrases in the
// text (case-insensitive). Counts across different phrases are additive: if
// both "um" and "umm" are configured, an "umm" in the text contributes to both.
func CountFillerWords(text string, fillers []string) int {
	lowered := strings.ToLower(text)
	total := 0
	for _, word := range fillers {
		total += strings.Count(lowered, strings.ToLower(word))
	}
	return total
}

// CountPauseIndicators counts literal occurrences of pause markers in the raw
// transcribed text. Markers are matched case-sensitively since they are
// punctuation, not words.
func CountPauseIndicators(text string, markers []string) int {
	total := 0
	for _, marker := range markers {
		total += strings.Count(text, marker)
	}
	return total
}

// examplePatterns caches compiled word-boundary patterns per keyword list.
// Keyword lists come from the shared read-only config, so the cache stays
// small and the same pattern is reused across a whole session.
var examplePatterns sync.Map // map[string]*regexp.Regexp

// DetectExampleUsage reports whether the response includes a concrete example,
// determined by a whole-word, case-insensitive match of any configured keyword.
func DetectExampleUsage(text string, keywords []string) bool {
	if len(keywords) == 0 {
		return false
	}

	quoted := make([]string, len(keywords))
	for i, kw := range keywords {
		quoted[i] = regexp.QuoteMeta(kw)
	}
	expr := `(?i)\b(` + strings.Join(quoted, "|") + `)\b`

	var pattern *regexp.Regexp
	if cached, ok := examplePatterns.Load(expr); ok {
		pattern = cached.(*regexp.Regexp)
	} else {
		pattern = regexp.MustCompile(expr)
		examplePatterns.Store(expr, pattern)
	}

	return pattern.MatchString(text)
}

// DetectStarStructure reports whether the response likely follows the STAR
// method, defined as at least 3 distinct configured keywords appearing in the
// lowered text. Matching is deliberately by substring, not word boundary
// ("goal" inside "goaltender" counts); tightening it would change scoring
// behavior for existing transcripts.
func DetectStarStructure(text string, keywords []string) bool {
	lowered := strings.ToLower(text)
	matches := 0
	for _, kw := range keywords {
		if strings.Contains(lowered, strings.ToLower(kw)) {
			matches++
		}
	}
	return matches >= 3
}

// CountTechnicalVocabulary counts how many distinct configured technical terms
// appear in the response. Each keyword contributes at most 1 regardless of how
// often it repeats.
func CountTechnicalVocabulary(text string, keywords []string) int {
	lowered := strings.ToLower(text)
	count := 0
	for _, kw := range keywords {
		if strings.Contains(lowered, strings.ToLower(kw)) {
			count++
		}
	}
	return count
}

// WordCount returns the whitespace-tokenized word count of the text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
