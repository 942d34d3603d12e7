package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vinsol-ai/parley/internal/bank"
	"github.com/vinsol-ai/parley/internal/contract"
	"github.com/vinsol-ai/parley/internal/outwriter"
)

// questionsCmd samples interview questions for a role.
var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Sample interview questions for a role",
	Long: `Draw interview questions from the question bank for a given role.

The built-in bank covers Software Engineer, Data Scientist, Product Manager
and UX Designer. A custom bank can be supplied with --question-bank as a
JSON object mapping role names to question lists.

Sampling is without replacement. With --seed the draw is reproducible, which
is useful for scripted practice sessions and tests. Asking for more questions
than a role's pool holds returns the whole pool.

Examples:
  # Four questions for the default role
  parley questions

  # Reproducible draw for another role
  parley questions --role "Data Scientist" --count 3 --seed 42

  # List available roles
  parley questions roles`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		b, err := bank.Load(cfg.QuestionBankPath)
		if err != nil {
			contract.LogFatal("Failed to load question bank", err)
		}

		questions, err := b.Sample(cfg.Role, cfg.QuestionCount, cfg.Seed, cfg.SeedSet)
		if err != nil {
			contract.LogFatal("Failed to sample questions", err)
		}

		ow := outwriter.NewOutWriter()
		if err := ow.WriteQuestions(cfg.Role, questions, cfg); err != nil {
			contract.LogFatal("Failed to write questions", err)
		}
	},
}

// questionsRolesCmd lists the roles available in the question bank.
var questionsRolesCmd = &cobra.Command{
	Use:     "roles",
	Short:   "List the roles available in the question bank",
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		b, err := bank.Load(cfg.QuestionBankPath)
		if err != nil {
			contract.LogFatal("Failed to load question bank", err)
		}
		for _, role := range b.Roles() {
			fmt.Println(role)
		}
	},
}

func init() {
	questionsCmd.AddCommand(questionsRolesCmd)
}
