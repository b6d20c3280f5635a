package formatter

import (
	"testing"
	"time"

	"github.com/averyhale/briefer/internal/domain"
	"github.com/averyhale/briefer/internal/role"
	"github.com/stretchr/testify/assert"
)

func TestFormatStatus_EmptyBrief(t *testing.T) {
	out := FormatStatus(domain.NewBrief(), role.Get(role.Client), time.Time{})

	assert.Contains(t, out, "BRIEF STATUS")
	assert.Contains(t, out, "(untitled)")
	assert.Contains(t, out, "Still needed:")
	assert.Contains(t, out, "Project Name")
	assert.NotContains(t, out, "Saved:")
	assert.NotContains(t, out, "Budget total")
}

func TestFormatStatus_FilledBrief(t *testing.T) {
	b := domain.NewBrief()
	b.ProjectName = "Harbor Campaign"
	b.ProjectType = "Photography"
	b.Overview = "Dockside shoot"
	b.Objectives = "Launch imagery"
	b.ClientName = "Avery Hale"
	b.ClientEmail = "avery@example.com"
	b.ShootDates = "2026-09-12"
	b.Location = "Pier 7"
	b.Deliverables = []string{"Photography"}
	b.BudgetLineItems = []domain.BudgetLineItem{
		{ID: 1, Description: "Permits", Quantity: 1, UnitCost: 450, Total: 450, Order: 1},
	}

	out := FormatStatus(b, role.Get(role.Client), time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))

	assert.Contains(t, out, "Harbor Campaign")
	assert.Contains(t, out, "Saved:")
	assert.Contains(t, out, "450.00 USD")
	assert.Contains(t, out, "All required fields are filled.")
	assert.NotContains(t, out, "Still needed:")
}

func TestFormatShotList_Empty(t *testing.T) {
	out := FormatShotList(nil)
	assert.Contains(t, out, "No shots yet.")
}

func TestFormatShotList_GroupsAndPriority(t *testing.T) {
	groups := []ShotGroup{
		{Label: "Exterior", Shots: []domain.Shot{
			{ID: 1, Description: "wide establishing", ShotType: domain.ShotWide, Angle: domain.AngleEyeLevel, Order: 1, Priority: true},
		}},
		{Label: "Uncategorized", Shots: []domain.Shot{
			{ID: 2, Description: "detail of rigging", ShotType: domain.ShotDetail, Angle: domain.AngleLow, Order: 2},
		}},
	}

	out := FormatShotList(groups)

	assert.Contains(t, out, "Exterior")
	assert.Contains(t, out, "Uncategorized")
	assert.Contains(t, out, "wide establishing")
	assert.Contains(t, out, "(Wide, Eye-level)")
	assert.Contains(t, out, "★")
}
