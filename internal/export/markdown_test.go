package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/averyhale/briefer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownSummaryFullBrief(t *testing.T) {
	b := exportBrief()
	b.ProjectType = "Commercial"
	b.Overview = "Dawn-to-dusk harbor campaign."
	b.Objectives = "Show the working waterfront."
	b.ShootDates = "2026-09-14"
	b.Location = "Pier 39"
	b.Deliverables = []string{"30 retouched stills", "1 cutdown reel"}
	b.Equipment = []domain.EquipmentItem{
		{ID: 6, Name: "A7 IV", Category: domain.EquipCamera, Quantity: 2, Order: 1},
		{ID: 7, Name: "Aputure 600d", Category: domain.EquipLighting, Quantity: 1, IsRental: true, Order: 2},
	}

	var buf bytes.Buffer
	require.NoError(t, MarkdownSummary(&buf, b))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# Harbor Campaign\n"))
	assert.Contains(t, out, "## Project Overview")
	assert.Contains(t, out, "**Type:** Commercial")
	assert.Contains(t, out, "## Objectives\n\nShow the working waterfront.")
	assert.Contains(t, out, "## Deliverables\n\n- 30 retouched stills\n- 1 cutdown reel")
	assert.Contains(t, out, "### Shot 1 (priority)")
	assert.Contains(t, out, "| Sam Ortiz | Gaffer | 06:30 |")
	assert.Contains(t, out, "### Camera\n\n- A7 IV (x2)")
	assert.Contains(t, out, "- Aputure 600d [RENTAL]")
	assert.Contains(t, out, "**Estimated Total:** 1780.50 USD")
}

func TestMarkdownSummaryOmitsEmptySections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MarkdownSummary(&buf, domain.NewBrief()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# Production Brief\n"))
	assert.NotContains(t, out, "## Shot List")
	assert.NotContains(t, out, "## Crew")
	assert.NotContains(t, out, "## Equipment List")
	assert.NotContains(t, out, "## Budget")
	assert.NotContains(t, out, "## Contact Information")
}

func TestMarkdownSummaryGroupsEquipmentByCategory(t *testing.T) {
	b := domain.NewBrief()
	b.Equipment = []domain.EquipmentItem{
		{ID: 1, Name: "Body", Category: domain.EquipCamera, Quantity: 1, Order: 1},
		{ID: 2, Name: "Key light", Category: domain.EquipLighting, Quantity: 1, Order: 2},
		{ID: 3, Name: "Backup body", Category: domain.EquipCamera, Quantity: 1, Order: 3},
	}

	var buf bytes.Buffer
	require.NoError(t, MarkdownSummary(&buf, b))
	out := buf.String()

	cameraIdx := strings.Index(out, "### Camera")
	lightingIdx := strings.Index(out, "### Lighting")
	require.NotEqual(t, -1, cameraIdx)
	require.NotEqual(t, -1, lightingIdx)
	assert.Less(t, cameraIdx, lightingIdx, "first-appearance category order")

	cameraSection := out[cameraIdx:lightingIdx]
	assert.Contains(t, cameraSection, "- Body")
	assert.Contains(t, cameraSection, "- Backup body")
}
