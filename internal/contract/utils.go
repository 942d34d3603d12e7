package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Scoring label constants.
const (
	ExcellentValue = "Excellent" // Excellent value
	StrongValue    = "Strong"    // Strong value
	SolidValue     = "Solid"     // Solid value
	WeakValue      = "Weak"      // Weak value
)

// Color variables for console output.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold) // excellentColor marks standout answers.
	StrongColor    = color.New(color.FgCyan, color.Bold)  // strongColor marks above-average answers.
	SolidColor     = color.New(color.FgYellow)            // solidColor marks acceptable answers, not bold.
	WeakColor      = color.New(color.FgRed)               // weakColor marks answers needing work.
)

// GetPlainLabel returns a plain text label for an overall answer score.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(score int) string {
	switch {
	case score >= 85:
		return ExcellentValue
	case score >= 70:
		return StrongValue
	case score >= 50:
		return SolidValue
	default:
		return WeakValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(score int) string {
	text := GetPlainLabel(score)

	switch text {
	case ExcellentValue:
		return ExcellentColor.Sprint(text)
	case StrongValue:
		return StrongColor.Sprint(text)
	case SolidValue:
		return SolidColor.Sprint(text)
	default: // "Weak"
		return WeakColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// TruncateText shortens text to maxLen runes, appending "..." when truncated.
func TruncateText(text string, maxLen int) string {
	if maxLen <= 3 {
		maxLen = 3
	}
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen-3]) + "..."
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for history storage.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".parley_history.db"
	}
	return filepath.Join(homeDir, ".parley_history.db")
}
