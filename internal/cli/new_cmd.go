package cli

import (
	"context"
	"fmt"

	"github.com/averyhale/briefer/internal/role"
	"github.com/averyhale/briefer/internal/wizard"
	"github.com/spf13/cobra"
)

func newNewCmd(app *App) *cobra.Command {
	var roleFlag string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new brief",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("the wizard needs an interactive terminal")
			}
			ctx := context.Background()

			restored, err := app.Store.Hydrate(ctx)
			if err != nil {
				return fmt.Errorf("loading saved session: %w", err)
			}
			if restored {
				var discard bool
				if err := wizardConfirm("A saved brief exists. Discard it and start fresh?", &discard).Run(); err != nil {
					return err
				}
				if !discard {
					return fmt.Errorf("keeping the saved brief; run \"briefer resume\" to continue it")
				}
				if err := app.Store.Reset(ctx); err != nil {
					return fmt.Errorf("clearing saved session: %w", err)
				}
			}

			r := role.Role(roleFlag)
			if !role.Valid(r) {
				var picked string
				if err := wizardSelectRole(&picked).Run(); err != nil {
					return err
				}
				r = role.Role(picked)
			}

			app.Store.SetRole(r)
			cfg := role.Get(r)
			fmt.Println()
			fmt.Println("  " + cfg.WelcomeMessage)

			return runWizard(app, wizard.New(r))
		},
	}

	cmd.Flags().StringVar(&roleFlag, "role", "", "Skip role selection (Client, Photographer, or Producer)")
	return cmd
}
