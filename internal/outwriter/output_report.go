package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/vinsol-ai/parley/core/insight"
	"github.com/vinsol-ai/parley/internal/contract"
	"github.com/vinsol-ai/parley/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintSessionReport outputs the session insight report, dispatching based on
// the output format configured.
func PrintSessionReport(report *insight.Report, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForReport(w, report)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportText(report, w)
		}, "Wrote report")
	}
}

// writeReportText generates the human-readable session report: a statistics
// table followed by strengths, weaknesses, recommendations and the summary.
func writeReportText(report *insight.Report, writer io.Writer) error {
	stats := report.Stats

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Metric", "Value"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	data := [][]string{
		{"Questions Answered", strconv.Itoa(stats.TotalQuestions)},
		{"Overall Average", fmtAverage(stats.OverallAverageScore)},
		{"Highest Score", strconv.Itoa(stats.HighestScore)},
		{"Lowest Score", strconv.Itoa(stats.LowestScore)},
		{"Avg Relevance", fmtAverage(stats.AverageRelevance)},
		{"Avg Confidence", fmtAverage(stats.AverageConfidence)},
		{"Avg Clarity", fmtAverage(stats.AverageClarity)},
		{"Strongest Area", stats.StrongestArea.Label()},
		{"Area For Improvement", stats.AreaForImprovement.Label()},
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	sections := []struct {
		title string
		items []string
	}{
		{"Strengths", report.Strengths},
		{"Areas for Improvement", report.Weaknesses},
		{"Recommended Practice", report.Recommendations},
	}
	for _, section := range sections {
		if _, err := fmt.Fprintf(writer, "\n%s:\n", section.title); err != nil {
			return err
		}
		for _, item := range section.items {
			if _, err := fmt.Fprintf(writer, "  - %s\n", item); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(writer, "\n%s\n", report.Summary); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForReport writes the session statistics in CSV format, one
// metric per row so downstream tools never deal with a ragged layout.
func writeCSVResultsForReport(w io.Writer, report *insight.Report) error {
	stats := report.Stats
	return writeCSVWithHeader(w, []string{"metric", "value"}, func(csvWriter *csv.Writer) error {
		rows := [][]string{
			{"total_questions", strconv.Itoa(stats.TotalQuestions)},
			{"overall_average_score", fmtAverage(stats.OverallAverageScore)},
			{"highest_score", strconv.Itoa(stats.HighestScore)},
			{"lowest_score", strconv.Itoa(stats.LowestScore)},
			{"average_relevance", fmtAverage(stats.AverageRelevance)},
			{"average_confidence", fmtAverage(stats.AverageConfidence)},
			{"average_clarity", fmtAverage(stats.AverageClarity)},
			{"strongest_area", string(stats.StrongestArea)},
			{"area_for_improvement", string(stats.AreaForImprovement)},
			{"summary", report.Summary},
		}
		for _, row := range rows {
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// fmtAverage renders a 1-decimal average for display.
func fmtAverage(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
