package iostore

import (
	"errors"
	"fmt"

	"github.com/vinsol-ai/parley/internal/contract"
	"github.com/vinsol-ai/parley/internal/parquet"
)

// ExecuteHistoryExport performs the actual export of history data to Parquet files.
func ExecuteHistoryExport(store contract.HistoryStore, outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}

	if status.TotalSessions == 0 {
		return errors.New("no history data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total sessions: %d\n", status.TotalSessions)
	fmt.Printf("Total response records: %d\n", status.TableSizes[responsesTable])

	// Retrieve all sessions
	sessions, err := store.GetAllSessionRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve sessions: %w", err)
	}

	// Retrieve all scored responses
	responses, err := store.GetAllResponseScores()
	if err != nil {
		return fmt.Errorf("failed to retrieve responses: %w", err)
	}

	// Convert to Parquet format
	parquetSessions := parquet.ConvertSessionRunRecords(sessions)
	parquetResponses := parquet.ConvertStoredResponseRecords(responses)

	// Write sessions to Parquet
	sessionsFile := outputFile + ".sessions.parquet"
	if err := parquet.WriteSessionRunsParquet(parquetSessions, sessionsFile); err != nil {
		return fmt.Errorf("failed to write sessions: %w", err)
	}
	fmt.Printf("Exported %d sessions to: %s\n", len(parquetSessions), sessionsFile)

	// Write responses to Parquet
	responsesFile := outputFile + ".responses.parquet"
	if err := parquet.WriteResponseScoresParquet(parquetResponses, responsesFile); err != nil {
		return fmt.Errorf("failed to write responses: %w", err)
	}
	fmt.Printf("Exported %d response records to: %s\n", len(parquetResponses), responsesFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
