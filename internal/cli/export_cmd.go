package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/averyhale/briefer/internal/domain"
	"github.com/averyhale/briefer/internal/export"
	"github.com/averyhale/briefer/internal/repository"
	"github.com/averyhale/briefer/internal/role"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// exportFormat couples a subcommand to its writer and file extension.
// permitted, when set, restricts the format to roles carrying the flag.
type exportFormat struct {
	name      string
	short     string
	ext       string
	write     func(w io.Writer, b *domain.Brief) error
	permitted func(role.Permissions) bool
}

var exportFormats = []exportFormat{
	{name: "md", short: "Export the full brief as Markdown", ext: "md", write: export.MarkdownSummary},
	{name: "ics", short: "Export the shoot as a calendar event", ext: "ics", write: export.CalendarICS,
		permitted: func(p role.Permissions) bool { return p.ExportCalendar }},
	{name: "shots-csv", short: "Export the shot list as CSV", ext: "csv", write: export.ShotListCSV,
		permitted: func(p role.Permissions) bool { return p.ExportCSV }},
	{name: "budget-csv", short: "Export the budget breakdown as CSV", ext: "csv", write: export.BudgetCSV,
		permitted: func(p role.Permissions) bool { return p.ExportCSV }},
	{name: "crew-csv", short: "Export the crew list as CSV", ext: "csv", write: export.CrewCSV,
		permitted: func(p role.Permissions) bool { return p.ExportCSV }},
}

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the brief to a file",
	}

	for _, f := range exportFormats {
		cmd.AddCommand(newExportFormatCmd(app, f))
	}
	return cmd
}

func newExportFormatCmd(app *App, f exportFormat) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   f.name,
		Short: f.short,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := app.Store.Hydrate(ctx); err != nil {
				return fmt.Errorf("loading saved session: %w", err)
			}
			if f.permitted != nil && !role.HasPermission(app.Store.Role(), f.permitted) {
				return fmt.Errorf("the %s role cannot export %s", role.Get(app.Store.Role()).DisplayName, f.name)
			}

			// Exporters always see a consistent snapshot; a failed write
			// leaves the document untouched.
			snapshot := app.Store.Snapshot()
			path := outPath
			if path == "" {
				path = defaultExportName(snapshot, f)
			}

			file, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("creating %s: %w", path, err)
			}
			if err := f.write(file, snapshot); err != nil {
				file.Close()
				os.Remove(path)
				return fmt.Errorf("writing %s export: %w", f.name, err)
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", path, err)
			}

			if app.ExportLog != nil {
				rec := &repository.ExportRecord{
					ID:        uuid.New().String(),
					Format:    f.name,
					Path:      path,
					CreatedAt: time.Now().UTC(),
				}
				if err := app.ExportLog.Add(ctx, rec); err != nil {
					fmt.Fprintf(os.Stderr, "warning: recording export: %v\n", err)
				}
			}

			fmt.Printf("Exported %s\n", path)
			return nil
		},
	}

	addOutputFlag(cmd.Flags(), &outPath)
	return cmd
}

// addOutputFlag registers the shared --out flag on an export subcommand.
func addOutputFlag(fs *pflag.FlagSet, out *string) {
	fs.StringVarP(out, "out", "o", "", "Output file path (default: derived from the project name)")
}

// defaultExportName derives a filename like brief-autumn-lookbook-1a2b3c4d.md.
// The short unique suffix keeps repeated exports from silently overwriting
// each other.
func defaultExportName(b *domain.Brief, f exportFormat) string {
	slug := strings.ToLower(strings.TrimSpace(b.ProjectName))
	slug = strings.Join(strings.Fields(slug), "-")
	if slug == "" {
		slug = "brief"
	}
	suffix := uuid.New().String()[:8]
	return fmt.Sprintf("%s-%s.%s", slug, suffix, f.ext)
}
