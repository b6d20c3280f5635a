package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/averyhale/briefer/internal/domain"
	"github.com/averyhale/briefer/internal/llm"
	"github.com/averyhale/briefer/internal/role"
)

// OverviewDraftService suggests free-text overview copy for the brief.
type OverviewDraftService interface {
	Draft(ctx context.Context, brief *domain.Brief, r role.Role) (string, error)
}

type overviewDraftService struct {
	client llm.Client
}

// NewOverviewDraftService creates an OverviewDraftService backed by a model client.
func NewOverviewDraftService(client llm.Client) OverviewDraftService {
	return &overviewDraftService{client: client}
}

func (s *overviewDraftService) Draft(ctx context.Context, brief *domain.Brief, r role.Role) (string, error) {
	cfg := role.Get(r)

	var b strings.Builder
	b.WriteString("What is known about the project so far:\n")
	writeField(&b, "Project", brief.ProjectName)
	writeField(&b, "Type", brief.ProjectType)
	writeField(&b, "Objectives", brief.Objectives)
	writeField(&b, "Location", brief.Location)
	writeField(&b, "Client", brief.ClientCompany)
	b.WriteString("\nAudience guidance: ")
	b.WriteString(cfg.AssistContext)

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskOverviewDraft,
		SystemPrompt: overviewDraftSystemPrompt,
		UserPrompt:   b.String(),
	})
	if err != nil {
		return "", fmt.Errorf("overview draft generation failed: %w", err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", fmt.Errorf("%w: empty overview draft", llm.ErrInvalidOutput)
	}
	return text, nil
}
