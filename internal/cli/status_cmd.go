package cli

import (
	"context"
	"fmt"

	"github.com/averyhale/briefer/internal/cli/formatter"
	"github.com/averyhale/briefer/internal/role"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show brief completion and section counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := app.Store.Hydrate(ctx); err != nil {
				return fmt.Errorf("loading saved session: %w", err)
			}

			cfg := role.Get(app.Store.Role())
			fmt.Print(formatter.FormatStatus(app.Store.Snapshot(), cfg, app.Store.LastSaved()))

			if app.ExportLog != nil {
				records, err := app.ExportLog.ListRecent(ctx, 5)
				if err != nil {
					return fmt.Errorf("listing exports: %w", err)
				}
				if len(records) > 0 {
					fmt.Println()
					fmt.Println(formatter.Bold("Recent exports:"))
					for _, rec := range records {
						fmt.Printf("  %s %s %s\n",
							formatter.Dim(rec.CreatedAt.Local().Format("2006-01-02 15:04")),
							rec.Format,
							formatter.Dim(rec.Path))
					}
				}
			}
			return nil
		},
	}
}
