package progress

import (
	"testing"

	"github.com/averyhale/briefer/internal/domain"
	"github.com/averyhale/briefer/internal/role"
	"github.com/stretchr/testify/assert"
)

func TestPercentage_EmptyRequiredSetIsComplete(t *testing.T) {
	assert.Equal(t, 100, Percentage(domain.NewBrief(), nil))
}

func TestPercentage_RoundsShareOfPresentFields(t *testing.T) {
	b := domain.NewBrief()
	required := []domain.Field{
		domain.FieldProjectName, domain.FieldLocation, domain.FieldShootDates,
	}

	assert.Equal(t, 0, Percentage(b, required))

	b.ProjectName = "Harbor Campaign"
	assert.Equal(t, 33, Percentage(b, required))

	b.Location = "Pier 7"
	assert.Equal(t, 67, Percentage(b, required))

	b.ShootDates = "2026-09-12"
	assert.Equal(t, 100, Percentage(b, required))
}

func TestPercentage_CountsListFields(t *testing.T) {
	b := domain.NewBrief()
	required := []domain.Field{domain.FieldShotList, domain.FieldCrew}

	assert.Equal(t, 0, Percentage(b, required))

	b.ShotList = append(b.ShotList, domain.Shot{ID: 1, Description: "wide", Order: 1})
	assert.Equal(t, 50, Percentage(b, required))
}

func TestMissing_PreservesDeclarationOrder(t *testing.T) {
	b := domain.NewBrief()
	b.ProjectType = "Photography"
	required := []domain.Field{
		domain.FieldProjectName, domain.FieldProjectType, domain.FieldOverview,
	}

	assert.Equal(t,
		[]domain.Field{domain.FieldProjectName, domain.FieldOverview},
		Missing(b, required))
}

func TestMissing_RoleRequiredSet(t *testing.T) {
	b := domain.NewBrief()
	cfg := role.Get(role.Producer)

	missing := Missing(b, cfg.RequiredFields)
	assert.Len(t, missing, len(cfg.RequiredFields), "empty brief misses everything")

	b.Budget = "$12,000"
	missing = Missing(b, cfg.RequiredFields)
	assert.NotContains(t, missing, domain.FieldBudget)
}
