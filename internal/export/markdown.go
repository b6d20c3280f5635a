package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/averyhale/briefer/internal/domain"
	"github.com/averyhale/briefer/internal/listops"
)

// MarkdownSummary writes a sectioned rendering of the brief. Empty sections
// are omitted entirely so a sparse brief still reads cleanly.
func MarkdownSummary(w io.Writer, brief *domain.Brief) error {
	var b strings.Builder

	title := brief.ProjectName
	if title == "" {
		title = "Production Brief"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	if brief.ClientName != "" {
		fmt.Fprintf(&b, "**Created by:** %s  \n", brief.ClientName)
	}
	fmt.Fprintf(&b, "**Date:** %s  \n\n", time.Now().Format("2006-01-02"))

	if brief.ProjectType != "" || brief.Overview != "" {
		b.WriteString("## Project Overview\n\n")
		if brief.ProjectType != "" {
			fmt.Fprintf(&b, "**Type:** %s  \n", brief.ProjectType)
		}
		if brief.Overview != "" {
			fmt.Fprintf(&b, "%s\n", brief.Overview)
		}
		b.WriteString("\n")
	}

	if brief.Objectives != "" {
		fmt.Fprintf(&b, "## Objectives\n\n%s\n\n", brief.Objectives)
	}
	if brief.Audience != "" {
		fmt.Fprintf(&b, "## Target Audience\n\n%s\n\n", brief.Audience)
	}

	writeContactSection(&b, brief)
	writeShootSection(&b, brief)

	if len(brief.Deliverables) > 0 {
		b.WriteString("## Deliverables\n\n")
		for _, d := range brief.Deliverables {
			fmt.Fprintf(&b, "- %s\n", d)
		}
		b.WriteString("\n")
	}

	writeShotSection(&b, brief)
	writeCrewSection(&b, brief)
	writeEquipmentSection(&b, brief)
	writeBudgetSection(&b, brief)

	if brief.Notes != "" {
		fmt.Fprintf(&b, "## Additional Notes\n\n%s\n\n", brief.Notes)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeContactSection(b *strings.Builder, brief *domain.Brief) {
	if brief.ClientName == "" && brief.ClientCompany == "" && brief.ClientEmail == "" && brief.ClientPhone == "" {
		return
	}
	b.WriteString("## Contact Information\n\n")
	if brief.ClientName != "" {
		fmt.Fprintf(b, "**Name:** %s  \n", brief.ClientName)
	}
	if brief.ClientCompany != "" {
		fmt.Fprintf(b, "**Company:** %s  \n", brief.ClientCompany)
	}
	if brief.ClientEmail != "" {
		fmt.Fprintf(b, "**Email:** %s  \n", brief.ClientEmail)
	}
	if brief.ClientPhone != "" {
		fmt.Fprintf(b, "**Phone:** %s  \n", brief.ClientPhone)
	}
	b.WriteString("\n")
}

func writeShootSection(b *strings.Builder, brief *domain.Brief) {
	if brief.ShootDates == "" && brief.Location == "" {
		return
	}
	b.WriteString("## Shoot Details\n\n")
	if brief.ShootDates != "" {
		fmt.Fprintf(b, "**Date(s):** %s  \n", brief.ShootDates)
	}
	if brief.ShootStatus != "" {
		fmt.Fprintf(b, "**Status:** %s  \n", brief.ShootStatus)
	}
	if brief.Location != "" {
		fmt.Fprintf(b, "**Location:** %s  \n", brief.Location)
	}
	b.WriteString("\n")
}

func writeShotSection(b *strings.Builder, brief *domain.Brief) {
	if len(brief.ShotList) == 0 {
		return
	}
	b.WriteString("## Shot List\n\n")
	for _, shot := range brief.ShotList {
		marker := ""
		if shot.Priority {
			marker = " (priority)"
		}
		fmt.Fprintf(b, "### Shot %d%s\n\n", shot.Order, marker)
		fmt.Fprintf(b, "**Description:** %s  \n", shot.Description)
		fmt.Fprintf(b, "**Type:** %s | **Angle:** %s  \n", shot.ShotType, shot.Angle)
		if shot.Category != "" {
			fmt.Fprintf(b, "**Category:** %s  \n", shot.Category)
		}
		if shot.Quantity > 1 {
			fmt.Fprintf(b, "**Quantity:** %d  \n", shot.Quantity)
		}
		if shot.Notes != "" {
			fmt.Fprintf(b, "**Notes:** %s  \n", shot.Notes)
		}
		b.WriteString("\n")
	}
}

func writeCrewSection(b *strings.Builder, brief *domain.Brief) {
	if len(brief.Crew) == 0 {
		return
	}
	b.WriteString("## Crew\n\n")
	b.WriteString("| Name | Role | Call Time | Contact |\n")
	b.WriteString("|------|------|-----------|---------|\n")
	for _, m := range brief.Crew {
		call := m.CallTime
		if call == "" {
			call = "TBD"
		}
		contact := m.Contact
		if contact == "" {
			contact = "TBD"
		}
		fmt.Fprintf(b, "| %s | %s | %s | %s |\n", m.Name, m.Role, call, contact)
	}
	b.WriteString("\n")
}

func writeEquipmentSection(b *strings.Builder, brief *domain.Brief) {
	if len(brief.Equipment) == 0 {
		return
	}
	b.WriteString("## Equipment List\n\n")
	for _, bucket := range listops.GroupByCategory(brief.Equipment) {
		fmt.Fprintf(b, "### %s\n\n", bucket.Label)
		for _, item := range bucket.Items {
			fmt.Fprintf(b, "- %s", item.Name)
			if item.Quantity > 1 {
				fmt.Fprintf(b, " (x%d)", item.Quantity)
			}
			if item.IsRental {
				b.WriteString(" [RENTAL]")
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
}

func writeBudgetSection(b *strings.Builder, brief *domain.Brief) {
	if brief.Budget == "" && len(brief.BudgetLineItems) == 0 {
		return
	}
	b.WriteString("## Budget\n\n")
	if brief.Budget != "" {
		fmt.Fprintf(b, "**Range:** %s  \n\n", brief.Budget)
	}
	if len(brief.BudgetLineItems) > 0 {
		fmt.Fprintf(b, "**Estimated Total:** %.2f %s  \n\n", domain.BudgetTotal(brief.BudgetLineItems), brief.Currency)
		b.WriteString("| Category | Description | Qty | Unit Cost | Total |\n")
		b.WriteString("|----------|-------------|-----|-----------|-------|\n")
		for _, item := range brief.BudgetLineItems {
			fmt.Fprintf(b, "| %s | %s | %g | %.2f | %.2f |\n",
				item.Category, item.Description, item.Quantity, item.UnitCost, item.Total)
		}
		b.WriteString("\n")
	}
}
