package iostore

import (
	"fmt"

	"github.com/vinsol-ai/parley/schema"
)

// PrintHistoryStatus prints history status information.
func PrintHistoryStatus(status schema.HistoryStatus) {
	fmt.Printf("History Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Sessions: %d\n", status.TotalSessions)
	if status.TotalSessions > 0 {
		fmt.Printf("Last Session ID: %d\n", status.LastSessionID)
		fmt.Printf("Last Session: %s\n", status.LastSessionTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest Session: %s\n", status.OldestSessionTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Total Responses Recorded: %d\n", status.TotalResponses)
	}
	fmt.Println("Table Sizes:")
	for table, size := range status.TableSizes {
		fmt.Printf("  %s: %d rows\n", table, size)
	}
}
