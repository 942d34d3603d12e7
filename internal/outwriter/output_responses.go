package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/vinsol-ai/parley/core"
	"github.com/vinsol-ai/parley/internal/contract"
	"github.com/vinsol-ai/parley/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintResponseResults outputs scored responses, dispatching based on the
// output format configured.
func PrintResponseResults(records []schema.ResponseRecord, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONResultsForResponses(w, records)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForResponses(w, records)
		}, "Wrote CSV")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeResponseTable(records, cfg, duration, w)
		}, "Wrote table")
	}
}

// writeResponseTable generates and writes the human-readable table, followed
// by each answer's feedback statements.
func writeResponseTable(records []schema.ResponseRecord, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"#", "Question", "Rel", "Conf", "Clar", "Score", "Label"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := GetMaxTableQuestionWidth(cfg)
	var data [][]string
	for i, r := range records {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateText(r.Question, maxWidth),
			strconv.Itoa(r.Metrics.Relevance),
			strconv.Itoa(r.Metrics.Confidence),
			strconv.Itoa(r.Metrics.Clarity),
			strconv.Itoa(r.Metrics.Score),
			contract.GetColorLabel(r.Metrics.Score),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Feedback statements below the table, one block per answer
	for i, r := range records {
		if _, err := fmt.Fprintf(writer, "\nQuestion %d feedback:\n", i+1); err != nil {
			return err
		}
		for _, statement := range strings.Split(r.Feedback, schema.FeedbackSeparator) {
			if _, err := fmt.Fprintf(writer, "  - %s\n", statement); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(writer, "\nScored %d responses in %v with %d workers. History backend: %s\n",
		len(records), duration, cfg.Workers, cfg.HistoryBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForResponses writes scored responses in CSV format.
func writeCSVResultsForResponses(w io.Writer, records []schema.ResponseRecord) error {
	header := []string{
		"question_num",
		"question",
		"answer_words",
		"relevance",
		"confidence",
		"clarity",
		"score",
		"label",
		"answered_at",
		"feedback",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i, r := range records {
			rec := []string{
				strconv.Itoa(i + 1),
				r.Question,
				strconv.Itoa(core.WordCount(r.Answer)),
				strconv.Itoa(r.Metrics.Relevance),
				strconv.Itoa(r.Metrics.Confidence),
				strconv.Itoa(r.Metrics.Clarity),
				strconv.Itoa(r.Metrics.Score),
				contract.GetPlainLabel(r.Metrics.Score),
				r.Timestamp.Format(contract.DateTimeFormat),
				r.Feedback,
			}
			if err := csvWriter.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeJSONResultsForResponses writes scored responses in JSON format.
func writeJSONResultsForResponses(w io.Writer, records []schema.ResponseRecord) error {
	// Prepare the data structure for JSON with position and label added
	type JSONResponseResult struct {
		QuestionNum int    `json:"question_num"`
		Label       string `json:"label"`
		schema.ResponseRecord
	}

	output := make([]JSONResponseResult, len(records))
	for i, r := range records {
		output[i] = JSONResponseResult{
			QuestionNum:    i + 1,
			Label:          contract.GetPlainLabel(r.Metrics.Score),
			ResponseRecord: r,
		}
	}

	return writeJSON(w, output)
}

// PrintQuestionList outputs sampled questions for a role.
func PrintQuestionList(role string, questions []string, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, map[string]any{"role": role, "questions": questions})
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"question_num", "role", "question"}, func(csvWriter *csv.Writer) error {
				for i, q := range questions {
					if err := csvWriter.Write([]string{strconv.Itoa(i + 1), role, q}); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if _, err := fmt.Fprintf(w, "Questions for %s:\n", role); err != nil {
				return err
			}
			for i, q := range questions {
				if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, q); err != nil {
					return err
				}
			}
			return nil
		}, "Wrote questions")
	}
}
