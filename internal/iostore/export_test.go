package iostore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExecuteHistoryExportRequiresOutputFile rejects a missing output path.
func TestExecuteHistoryExportRequiresOutputFile(t *testing.T) {
	store := newSQLiteStore(t)
	err := ExecuteHistoryExport(store, "")
	assert.ErrorContains(t, err, "--output-file is required")
}

// TestExecuteHistoryExportEmptyStore rejects exporting when nothing is stored.
func TestExecuteHistoryExportEmptyStore(t *testing.T) {
	store := newSQLiteStore(t)
	err := ExecuteHistoryExport(store, filepath.Join(t.TempDir(), "history"))
	assert.ErrorContains(t, err, "no history data found")
}

// TestExecuteHistoryExport writes both Parquet files for a stored session.
func TestExecuteHistoryExport(t *testing.T) {
	store := newSQLiteStore(t)

	sessionID, err := store.BeginSession(time.Now().UTC(), "Software Engineer", map[string]any{"workers": 4})
	require.NoError(t, err)
	require.NoError(t, store.RecordResponse(sessionID, 1, sampleRecord("Tell me about a hard bug.")))
	require.NoError(t, store.EndSession(sessionID, time.Now().UTC(), 1, "Overall Performance: 83.0/100"))

	outputPrefix := filepath.Join(t.TempDir(), "history")
	require.NoError(t, ExecuteHistoryExport(store, outputPrefix))

	for _, suffix := range []string{".sessions.parquet", ".responses.parquet"} {
		info, err := os.Stat(outputPrefix + suffix)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), "%s should not be empty", suffix)
	}
}
