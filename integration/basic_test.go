//go:build basic

package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runParleyOutput runs a parley subcommand and returns its stdout.
func runParleyOutput(t *testing.T, args ...string) string {
	t.Helper()
	cmd := exec.Command(getParleyBinary(), args...)
	cmd.Dir = "../"
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr
	require.NoError(t, cmd.Run(), "parley %s", strings.Join(args, " "))
	return stdout.String()
}

// TestParleyVersion checks the version command runs.
func TestParleyVersion(t *testing.T) {
	out := runParleyOutput(t, "version")
	assert.Contains(t, out, "Version:")
}

// TestParleyQuestionsSeeded checks seeded sampling is reproducible end to end.
func TestParleyQuestionsSeeded(t *testing.T) {
	args := []string{"questions", "--role", "Software Engineer", "--count", "4", "--seed", "7", "--history-backend", "none"}
	first := runParleyOutput(t, args...)
	second := runParleyOutput(t, args...)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "Questions for Software Engineer:")
}

// TestParleyQuestionsRoles lists the embedded bank roles.
func TestParleyQuestionsRoles(t *testing.T) {
	out := runParleyOutput(t, "questions", "roles", "--history-backend", "none")
	for _, role := range []string{"Software Engineer", "Data Scientist", "Product Manager", "UX Designer"} {
		assert.Contains(t, out, role)
	}
}

// TestParleyAnalyzeShortAnswer scores a too-brief answer with a stub embedder.
func TestParleyAnalyzeShortAnswer(t *testing.T) {
	_ = os.Setenv("PARLEY_EMBED_URL", startEmbedStub(t))
	defer func() { _ = os.Unsetenv("PARLEY_EMBED_URL") }()

	out := runParleyOutput(t, "analyze",
		"-q", "Tell me about yourself.",
		"-a", "I code.",
		"--output", "json",
		"--history-backend", "none")

	assert.Contains(t, out, `"score": 13`)
	assert.Contains(t, out, "Response too brief")
}

// TestParleyAnalyzeRecordsHistory verifies a single analyzed answer is stored
// as a one-question session in the history backend.
func TestParleyAnalyzeRecordsHistory(t *testing.T) {
	_ = os.Setenv("PARLEY_EMBED_URL", startEmbedStub(t))
	defer func() { _ = os.Unsetenv("PARLEY_EMBED_URL") }()

	dbPath := filepath.Join(t.TempDir(), "history.db")

	runParleyOutput(t, "analyze",
		"-q", "Tell me about yourself.",
		"-a", "I code.",
		"--history-backend", "sqlite",
		"--history-db-connect", dbPath)

	out := runParleyOutput(t, "history", "status",
		"--history-backend", "sqlite",
		"--history-db-connect", dbPath)

	assert.Contains(t, out, "Total Sessions: 1")
	assert.Contains(t, out, "Total Responses Recorded: 1")
}

// TestParleySessionWithoutHistory scores a full session with history disabled.
func TestParleySessionWithoutHistory(t *testing.T) {
	_ = os.Setenv("PARLEY_EMBED_URL", startEmbedStub(t))
	defer func() { _ = os.Unsetenv("PARLEY_EMBED_URL") }()

	out := runParleyOutput(t, "session",
		"--input", writeSessionInput(t),
		"--history-backend", "none",
		"--width", "120")

	assert.Contains(t, out, "Scored 2 responses")
	assert.Contains(t, out, "Overall Performance:")
}
