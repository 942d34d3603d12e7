// Package cmd defines the command-line interface for parley.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vinsol-ai/parley/internal/contract"
	"github.com/vinsol-ai/parley/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(historyCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no)")
	rootCmd.PersistentFlags().Float64("relevance-weight", contract.DefaultRelevanceWeight, "Weight of relevance in the overall score")
	rootCmd.PersistentFlags().Float64("confidence-weight", contract.DefaultConfidenceWeight, "Weight of confidence in the overall score")
	rootCmd.PersistentFlags().Float64("clarity-weight", contract.DefaultClarityWeight, "Weight of clarity in the overall score")
	rootCmd.PersistentFlags().Int("minimum-answer-words", contract.DefaultMinimumAnswerWords, "Advisory target answer length in words (not enforced during scoring)")
	rootCmd.PersistentFlags().String("embed-url", "", "Base URL of the embedding service (e.g., http://localhost:8080)")
	rootCmd.PersistentFlags().String("embed-model", contract.DefaultEmbedModel, "Embedding model identity")
	rootCmd.PersistentFlags().String("history-backend", string(schema.SQLiteBackend), "History backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("question-bank", "", "Path to a custom question bank JSON file")
	rootCmd.PersistentFlags().StringP("role", "r", "Software Engineer", "Interview role to draw questions for")
	rootCmd.PersistentFlags().IntP("count", "c", contract.DefaultQuestionCount, "Number of questions to sample")
	rootCmd.PersistentFlags().Int64("seed", 0, "Random seed for reproducible question sampling (0 = random)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of analyzeCmd to Viper
	analyzeCmd.Flags().StringP("question", "q", "", "The interview question that was asked")
	analyzeCmd.Flags().StringP("answer", "a", "", "The transcribed answer text")
	analyzeCmd.Flags().String("answer-file", "", "Path to a file holding the transcribed answer ('-' for stdin)")
	if err := viper.BindPFlags(analyzeCmd.Flags()); err != nil {
		contract.LogFatal("Error binding analyze flags", err)
	}

	// Bind all flags of sessionCmd to Viper
	sessionCmd.Flags().StringP("input", "i", "", "Path to a JSON file of question/answer pairs ('-' for stdin)")
	if err := viper.BindPFlags(sessionCmd.Flags()); err != nil {
		contract.LogFatal("Error binding session flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}
