package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard the saved brief and start over",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				var confirmed bool
				if err := wizardConfirm("Discard the saved brief? This cannot be undone.", &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					return nil
				}
			}

			if err := app.Store.Reset(context.Background()); err != nil {
				return fmt.Errorf("resetting session: %w", err)
			}
			fmt.Println("Brief cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")
	return cmd
}
