package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vinsol-ai/parley/core"
	"github.com/vinsol-ai/parley/core/insight"
	"github.com/vinsol-ai/parley/internal/contract"
	"github.com/vinsol-ai/parley/internal/outwriter"
	"github.com/vinsol-ai/parley/schema"
)

// sessionCmd scores a full interview session and produces the insight report.
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Score a full interview session and report insights",
	Long: `Score every answer of a recorded interview session, then derive
session-level statistics, strengths, weaknesses and recommendations.

Input is a JSON array of question/answer pairs in session order:

  [
    {"question": "Tell me about yourself.", "answer": "I am a ..."},
    {"question": "Describe a project you led.", "answer": "Last year ..."}
  ]

Answers are scored concurrently with --workers workers; results keep the
input order. Failed transcriptions (bracketed sentinels such as
"[No speech detected]") are scored as empty answers.

When a history backend is configured, the session and its scored responses
are persisted for later export and trend analysis.

Examples:
  # Score a recorded session
  parley session --input session.json

  # Score from stdin and emit JSON
  cat session.json | parley session -i - --output json

  # Score without persisting
  parley session -i session.json --history-backend none`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		exchanges, err := readExchanges(viper.GetString("input"))
		if err != nil {
			contract.LogFatal("Failed to read session input", err)
		}
		if len(exchanges) == 0 {
			contract.LogFatal("Empty session", errors.New("input holds no question/answer pairs"))
		}

		embedder, err := newEmbedder()
		if err != nil {
			contract.LogFatal("Embedding service unavailable", err)
		}

		startTime := time.Now()
		analyzer := core.NewAnalyzer(cfg, embedder, nil)
		records, err := analyzer.AnalyzeSession(rootCtx, exchanges)
		if err != nil {
			if len(records) == 0 {
				contract.LogFatal("Failed to analyze session", err)
			}
			contract.LogWarn("Some answers could not be scored", err)
		}

		report, err := insight.Compute(records)
		if err != nil {
			contract.LogFatal("Failed to compute session report", err)
		}

		persistScoredSession(historyStore, startTime, records, report.Summary)

		ow := outwriter.NewOutWriter()
		if err := ow.WriteResponses(records, cfg, time.Since(startTime)); err != nil {
			contract.LogFatal("Failed to write results", err)
		}
		if err := ow.WriteReport(report, cfg); err != nil {
			contract.LogFatal("Failed to write report", err)
		}
	},
}

// readExchanges loads the session input as question/answer pairs, classifying
// each transcript so failed transcriptions degrade to empty answers.
func readExchanges(inputPath string) ([]schema.ExchangePair, error) {
	if inputPath == "" {
		return nil, errors.New("--input must be provided")
	}

	var data []byte
	var err error
	if inputPath == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(inputPath)
	}
	if err != nil {
		return nil, err
	}

	var exchanges []schema.ExchangePair
	if err := json.Unmarshal(data, &exchanges); err != nil {
		return nil, fmt.Errorf("invalid session input: %w", err)
	}

	for i := range exchanges {
		result := schema.ClassifyTranscript(exchanges[i].Answer)
		text, ok := result.Text()
		if !ok {
			contract.LogWarn(fmt.Sprintf("Question %d transcript unusable, scoring as empty answer", i+1), errors.New(result.Reason()))
			text = ""
		}
		exchanges[i].Answer = text
	}
	return exchanges, nil
}

// persistScoredSession records scored responses in the history store as one
// session. History failures are warnings: a scored session is still reported
// even when the store is down.
func persistScoredSession(store contract.HistoryStore, startTime time.Time, records []schema.ResponseRecord, summary string) {
	configParams := map[string]any{
		"relevance_weight":  cfg.RelevanceWeight,
		"confidence_weight": cfg.ConfidenceWeight,
		"clarity_weight":    cfg.ClarityWeight,
		"embed_model":       cfg.EmbedModel,
		"workers":           cfg.Workers,
	}

	sessionID, err := store.BeginSession(startTime, cfg.Role, configParams)
	if err != nil {
		contract.LogWarn("Failed to begin history session", err)
		return
	}

	for i, record := range records {
		if err := store.RecordResponse(sessionID, i+1, record); err != nil {
			contract.LogWarn("Failed to record response in history", err)
		}
	}

	if err := store.EndSession(sessionID, time.Now(), len(records), summary); err != nil {
		contract.LogWarn("Failed to end history session", err)
	}
}
