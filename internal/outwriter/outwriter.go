// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/vinsol-ai/parley/core/insight"
	"github.com/vinsol-ai/parley/internal/contract"
	"github.com/vinsol-ai/parley/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteResponses prints scored responses using the configured output format.
func (ow *OutWriter) WriteResponses(records []schema.ResponseRecord, cfg *contract.Config, duration time.Duration) error {
	return PrintResponseResults(records, cfg, duration)
}

// WriteReport prints the session insight report using the configured output format.
func (ow *OutWriter) WriteReport(report *insight.Report, cfg *contract.Config) error {
	return PrintSessionReport(report, cfg)
}

// WriteQuestions prints sampled questions using the configured output format.
func (ow *OutWriter) WriteQuestions(role string, questions []string, cfg *contract.Config) error {
	return PrintQuestionList(role, questions, cfg)
}

// GetMaxTableQuestionWidth calculates the maximum width for question text in
// table output based on terminal width and table configuration.
func GetMaxTableQuestionWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for fixed columns with table formatting: position, the
	// four score columns, label, plus borders and padding
	baseWidth := 50

	// Calculate available space for question text
	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable question width
		return 15
	}
	if available > 70 {
		// Maximum question width to prevent overly long rows
		return 70
	}
	return available
}
