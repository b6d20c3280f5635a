package cli

import (
	"context"
	"fmt"

	"github.com/averyhale/briefer/internal/cli/formatter"
	"github.com/averyhale/briefer/internal/listops"
	"github.com/spf13/cobra"
)

func newShotsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shots",
		Short: "Show the shot list grouped by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Store.Hydrate(context.Background()); err != nil {
				return fmt.Errorf("loading saved session: %w", err)
			}

			shots := app.Store.Snapshot().ShotList
			groups := make([]formatter.ShotGroup, 0)
			for _, bucket := range listops.GroupByCategory(shots) {
				groups = append(groups, formatter.ShotGroup{Label: bucket.Label, Shots: bucket.Items})
			}
			fmt.Println(formatter.FormatShotList(groups))
			return nil
		},
	}
}
