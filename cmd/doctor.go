package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/eduquest/internal/llm"
	"github.com/abhisek/eduquest/internal/log"
	"github.com/abhisek/eduquest/internal/setup"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the environment is ready for a study session",
	RunE: func(cmd *cobra.Command, args []string) error {
		probe, _ := cmd.Flags().GetBool("probe")

		checks := setup.Run()

		if probe && setup.AllOK(checks) {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			provider, err := llm.NewProviderFromEnv(ctx, log.Nop())
			if err != nil {
				checks = append(checks, setup.Check{Name: "live probe", Detail: err.Error()})
			} else {
				checks = append(checks, setup.Probe(ctx, provider))
			}
		}

		for _, c := range checks {
			mark := "✓"
			if !c.OK {
				mark = "✗"
			}
			fmt.Printf("%s %-24s %s\n", mark, c.Name, c.Detail)
		}

		if !setup.AllOK(checks) {
			return fmt.Errorf("environment is not ready")
		}
		fmt.Println("\nAll good. Run 'eduquest' to start studying.")
		return nil
	},
}

func init() {
	doctorCmd.Flags().Bool("probe", false, "Send a test request to the configured model")
}
