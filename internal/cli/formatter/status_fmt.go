package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/averyhale/briefer/internal/domain"
	"github.com/averyhale/briefer/internal/progress"
	"github.com/averyhale/briefer/internal/role"
	"github.com/jedib0t/go-pretty/v6/table"
)

// FormatStatus renders the status overview: role, completion bar, per-section
// counts, and the list of required fields still missing.
func FormatStatus(brief *domain.Brief, cfg role.Config, lastSaved time.Time) string {
	var b strings.Builder

	b.WriteString(Header("Brief Status"))
	b.WriteString("\n\n")

	name := brief.ProjectName
	if name == "" {
		name = Dim("(untitled)")
	}
	fmt.Fprintf(&b, "  %s %s\n", Bold("Project:"), name)
	fmt.Fprintf(&b, "  %s %s\n", Bold("Role:"), cfg.DisplayName)

	pct := progress.Percentage(brief, cfg.RequiredFields)
	fmt.Fprintf(&b, "  %s %s\n", Bold("Complete:"), RenderProgress(float64(pct)/100, 20))

	if !lastSaved.IsZero() {
		fmt.Fprintf(&b, "  %s %s\n", Bold("Saved:"), Dim(lastSaved.Local().Format("2006-01-02 15:04:05")))
	}
	b.WriteString("\n")

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Section", "Entries"})
	tw.AppendRow(table.Row{"Shots", len(brief.ShotList)})
	tw.AppendRow(table.Row{"Crew", len(brief.Crew)})
	tw.AppendRow(table.Row{"Budget lines", len(brief.BudgetLineItems)})
	tw.AppendRow(table.Row{"Equipment", len(brief.Equipment)})
	if len(brief.BudgetLineItems) > 0 {
		tw.AppendFooter(table.Row{"Budget total", fmt.Sprintf("%.2f %s", domain.BudgetTotal(brief.BudgetLineItems), brief.Currency)})
	}
	b.WriteString(tw.Render())
	b.WriteString("\n")

	if missing := progress.Missing(brief, cfg.RequiredFields); len(missing) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render("Still needed:"))
		b.WriteString("\n")
		for _, f := range missing {
			fmt.Fprintf(&b, "  %s %s\n", StyleYellow.Render("•"), domain.Label(f))
		}
	} else {
		b.WriteString("\n")
		b.WriteString(StyleGreen.Render("All required fields are filled."))
		b.WriteString("\n")
	}

	return b.String()
}

// FormatShotList renders the shot list grouped by category for read-only
// display outside the wizard.
func FormatShotList(groups []ShotGroup) string {
	var b strings.Builder
	b.WriteString(Header("Shot List"))
	b.WriteString("\n")

	if len(groups) == 0 {
		b.WriteString("\n  " + Dim("No shots yet.") + "\n")
		return b.String()
	}

	for _, g := range groups {
		b.WriteString("\n  " + StyleBlue.Render(g.Label) + "\n")
		for _, s := range g.Shots {
			marker := "  "
			if s.Priority {
				marker = StyleYellow.Render("★ ")
			}
			fmt.Fprintf(&b, "  %s%s %s %s\n",
				marker,
				Dim(fmt.Sprintf("%2d.", s.Order)),
				s.Description,
				Dim(fmt.Sprintf("(%s, %s)", s.ShotType, s.Angle)),
			)
		}
	}
	return b.String()
}

// ShotGroup pairs a category label with its shots for display.
type ShotGroup struct {
	Label string
	Shots []domain.Shot
}
