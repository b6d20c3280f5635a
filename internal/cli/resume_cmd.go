package cli

import (
	"context"
	"fmt"

	"github.com/averyhale/briefer/internal/wizard"
	"github.com/spf13/cobra"
)

func newResumeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Continue the saved brief where you left off",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("the wizard needs an interactive terminal")
			}
			ctx := context.Background()

			restored, err := app.Store.Hydrate(ctx)
			if err != nil {
				return fmt.Errorf("loading saved session: %w", err)
			}
			if !restored || app.Store.Role() == "" {
				return fmt.Errorf("no saved brief found; run \"briefer new\" to start one")
			}

			machine := wizard.New(app.Store.Role())
			machine.GoTo(app.Store.StepIndex())
			return runWizard(app, machine)
		},
	}
}
