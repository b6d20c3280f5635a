package cli

import (
	"github.com/averyhale/briefer/internal/assist"
	"github.com/averyhale/briefer/internal/repository"
	"github.com/averyhale/briefer/internal/store"
	"github.com/spf13/cobra"
)

// App holds the wired dependencies used by CLI commands.
type App struct {
	Store     *store.Store
	ExportLog repository.ExportLogRepo

	// Generation services are nil unless enabled in config.
	ShotDraft     assist.ShotDraftService
	OverviewDraft assist.OverviewDraftService
	Drafts        *assist.Tracker

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "briefer" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "briefer",
		Short: "Role-driven production brief builder",
	}

	root.AddCommand(
		newNewCmd(app),
		newResumeCmd(app),
		newStatusCmd(app),
		newShotsCmd(app),
		newExportCmd(app),
		newResetCmd(app),
	)

	return root
}
