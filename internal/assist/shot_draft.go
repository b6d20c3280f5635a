package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/averyhale/briefer/internal/domain"
	"github.com/averyhale/briefer/internal/llm"
	"github.com/averyhale/briefer/internal/role"
)

// shotDraft is the JSON shape the model outputs for one proposed shot.
type shotDraft struct {
	Description string `json:"description"`
	ShotType    string `json:"shotType"`
	Angle       string `json:"angle"`
	Orientation string `json:"orientation"`
	Priority    bool   `json:"priority"`
	Notes       string `json:"notes"`
	Category    string `json:"category"`
	Quantity    int    `json:"quantity"`
}

// ShotDraftService proposes shot list entries from the brief's creative
// context. Drafts are all-or-nothing: any invalid entry fails the whole
// batch so a partial list never reaches the document.
type ShotDraftService interface {
	// Draft returns proposed shots with zero IDs; the document store
	// assigns IDs when the shots are added.
	Draft(ctx context.Context, brief *domain.Brief, r role.Role) ([]domain.Shot, error)
}

type shotDraftService struct {
	client llm.Client
}

// NewShotDraftService creates a ShotDraftService backed by a model client.
func NewShotDraftService(client llm.Client) ShotDraftService {
	return &shotDraftService{client: client}
}

func (s *shotDraftService) Draft(ctx context.Context, brief *domain.Brief, r role.Role) ([]domain.Shot, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskShotDraft,
		SystemPrompt: shotDraftSystemPrompt,
		UserPrompt:   buildShotDraftPrompt(brief, r),
	})
	if err != nil {
		return nil, fmt.Errorf("shot draft generation failed: %w", err)
	}

	drafts, err := llm.ExtractJSON[[]shotDraft](resp.Text, validateShotDrafts)
	if err != nil {
		return nil, fmt.Errorf("failed to extract shot drafts: %w", err)
	}

	shots := make([]domain.Shot, 0, len(drafts))
	for _, d := range drafts {
		qty := d.Quantity
		if qty <= 0 {
			qty = 1
		}
		shots = append(shots, domain.Shot{
			Description: d.Description,
			ShotType:    domain.ShotType(d.ShotType),
			Angle:       domain.ShotAngle(d.Angle),
			Orientation: domain.Orientation(d.Orientation),
			Priority:    d.Priority,
			Notes:       d.Notes,
			Category:    d.Category,
			Quantity:    qty,
		})
	}
	return shots, nil
}

func buildShotDraftPrompt(brief *domain.Brief, r role.Role) string {
	cfg := role.Get(r)

	var b strings.Builder
	b.WriteString("Production brief:\n")
	writeField(&b, "Project", brief.ProjectName)
	writeField(&b, "Type", brief.ProjectType)
	writeField(&b, "Overview", brief.Overview)
	writeField(&b, "Objectives", brief.Objectives)
	writeField(&b, "Location", brief.Location)
	if len(brief.Deliverables) > 0 {
		writeField(&b, "Deliverables", strings.Join(brief.Deliverables, ", "))
	}
	b.WriteString("\nAudience guidance: ")
	b.WriteString(cfg.AssistContext)
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(value)
	b.WriteString("\n")
}

func validateShotDrafts(drafts []shotDraft) error {
	if len(drafts) == 0 {
		return fmt.Errorf("draft contains no shots")
	}
	for i, d := range drafts {
		if strings.TrimSpace(d.Description) == "" {
			return fmt.Errorf("shot %d: description must not be empty", i+1)
		}
		if !domain.ValidShotTypes[d.ShotType] {
			return fmt.Errorf("shot %d: unknown shot type %q", i+1, d.ShotType)
		}
		if !domain.ValidShotAngles[d.Angle] {
			return fmt.Errorf("shot %d: unknown angle %q", i+1, d.Angle)
		}
		if d.Orientation != "" && !domain.ValidOrientations[d.Orientation] {
			return fmt.Errorf("shot %d: unknown orientation %q", i+1, d.Orientation)
		}
	}
	return nil
}
