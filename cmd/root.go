package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/eduquest/internal/app"
	"github.com/abhisek/eduquest/internal/intent"
	"github.com/abhisek/eduquest/internal/llm"
	"github.com/abhisek/eduquest/internal/log"
	"github.com/abhisek/eduquest/internal/orchestrator"
	"github.com/abhisek/eduquest/internal/planner"
	"github.com/abhisek/eduquest/internal/quiz"
)

var rootCmd = &cobra.Command{
	Use:   "eduquest",
	Short: "Intelligent study companion",
	Long:  "EduQuest — conversational study assistant that plans your studies and quizzes your knowledge.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd.Context())
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(doctorCmd)
}

// runApp wires the provider, services, and orchestrator, then hands the
// terminal to the chat interface.
func runApp(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := log.FromEnv()

	provider, err := llm.NewProviderFromEnv(ctx, logger)
	if err != nil {
		return fmt.Errorf("configure LLM provider: %w (run 'eduquest doctor' to diagnose)", err)
	}

	orch := orchestrator.New(
		intent.NewClassifier(provider, logger),
		planner.NewService(provider, logger),
		quiz.NewService(provider, logger),
		logger,
	)

	return app.Run(ctx, orch)
}
