package cmd

import (
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vinsol-ai/parley/core"
	"github.com/vinsol-ai/parley/core/insight"
	"github.com/vinsol-ai/parley/internal/contract"
	"github.com/vinsol-ai/parley/internal/outwriter"
	"github.com/vinsol-ai/parley/schema"
)

// analyzeCmd scores a single question/answer pair.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a single interview answer",
	Long: `Score one transcribed answer against its question.

Computes four metrics:
- Relevance (0-100): semantic similarity between question and answer
- Confidence (0-100): heuristic based on length, examples and fillers
- Clarity (0-100): heuristic based on fillers, pauses and length
- Score (0-100): weighted combination of the three

Also generates targeted feedback statements for the answer.

Requires a running embedding service (--embed-url) for relevance scoring.
Answers under 30 characters are flagged as too brief and receive fixed
minimum scores without contacting the embedding service.

When a history backend is configured, the scored answer is persisted as a
one-question session for later export and trend analysis.

Examples:
  # Score an inline answer
  parley analyze -q "Tell me about yourself." -a "I am a backend engineer who..."

  # Score a transcript from a file
  parley analyze -q "Describe a challenging problem you solved." --answer-file transcript.txt

  # Score from stdin as JSON
  cat transcript.txt | parley analyze -q "..." --answer-file - --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		question := viper.GetString("question")
		if question == "" {
			contract.LogFatal("Missing required flag", errors.New("--question must be provided"))
		}

		answer, err := resolveAnswerText()
		if err != nil {
			contract.LogFatal("Failed to read answer", err)
		}

		embedder, err := newEmbedder()
		if err != nil {
			contract.LogFatal("Embedding service unavailable", err)
		}

		start := time.Now()
		analyzer := core.NewAnalyzer(cfg, embedder, nil)
		record, err := analyzer.AnalyzeResponse(rootCtx, question, answer)
		if err != nil {
			contract.LogFatal("Failed to analyze response", err)
		}

		records := []schema.ResponseRecord{*record}
		if report, rerr := insight.Compute(records); rerr == nil {
			persistScoredSession(historyStore, start, records, report.Summary)
		}

		ow := outwriter.NewOutWriter()
		if err := ow.WriteResponses(records, cfg, time.Since(start)); err != nil {
			contract.LogFatal("Failed to write results", err)
		}
	},
}

// resolveAnswerText returns the answer from --answer or --answer-file, running
// transcript classification so failed transcriptions are never scored as
// speech. A failed transcript degrades to an empty answer, which takes the
// too-brief scoring path.
func resolveAnswerText() (string, error) {
	raw := viper.GetString("answer")
	if answerFile := viper.GetString("answer-file"); answerFile != "" {
		var data []byte
		var err error
		if answerFile == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(answerFile)
		}
		if err != nil {
			return "", err
		}
		raw = strings.TrimSpace(string(data))
	}

	result := schema.ClassifyTranscript(raw)
	text, ok := result.Text()
	if !ok {
		contract.LogWarn("Transcript unusable, scoring as empty answer", errors.New(result.Reason()))
		return "", nil
	}
	return text, nil
}
