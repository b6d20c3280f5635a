package assist

import (
	"context"
	"errors"
	"testing"

	"github.com/averyhale/briefer/internal/domain"
	"github.com/averyhale/briefer/internal/llm"
	"github.com/averyhale/briefer/internal/role"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockClient struct {
	response string
	err      error
	lastReq  llm.GenerateRequest
}

func (m *mockClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "llama3.2"}, nil
}

func (m *mockClient) Available(_ context.Context) bool { return m.err == nil }

func draftBrief() *domain.Brief {
	b := domain.NewBrief()
	b.ProjectName = "Autumn Lookbook"
	b.ProjectType = "Fashion Editorial"
	b.Overview = "A moody outdoor lookbook for the fall collection."
	b.Objectives = "Showcase texture and layering."
	b.Location = "Portland, OR"
	return b
}

func TestShotDraftMapsValidShots(t *testing.T) {
	client := &mockClient{
		response: `[
			{"description": "Wide of model against fog", "shotType": "Wide", "angle": "Eye-level", "priority": true, "category": "Exteriors"},
			{"description": "Fabric texture close", "shotType": "Detail", "angle": "High Angle", "quantity": 3}
		]`,
	}

	svc := NewShotDraftService(client)
	shots, err := svc.Draft(context.Background(), draftBrief(), role.Photographer)

	require.NoError(t, err)
	require.Len(t, shots, 2)
	assert.Equal(t, "Wide of model against fog", shots[0].Description)
	assert.Equal(t, domain.ShotWide, shots[0].ShotType)
	assert.True(t, shots[0].Priority)
	assert.Equal(t, "Exteriors", shots[0].Category)
	assert.Equal(t, 1, shots[0].Quantity) // defaulted
	assert.Equal(t, 3, shots[1].Quantity)

	// IDs and order are assigned by the document store, not the draft.
	assert.Zero(t, shots[0].ID)
	assert.Zero(t, shots[0].Order)
}

func TestShotDraftPromptIncludesBriefContext(t *testing.T) {
	client := &mockClient{
		response: `[{"description": "Opening wide", "shotType": "Wide", "angle": "Eye-level"}]`,
	}

	svc := NewShotDraftService(client)
	_, err := svc.Draft(context.Background(), draftBrief(), role.Photographer)

	require.NoError(t, err)
	assert.Equal(t, llm.TaskShotDraft, client.lastReq.Task)
	assert.Contains(t, client.lastReq.UserPrompt, "Autumn Lookbook")
	assert.Contains(t, client.lastReq.UserPrompt, "moody outdoor lookbook")
	assert.Contains(t, client.lastReq.UserPrompt, "Portland, OR")
}

func TestShotDraftNonJSONResponseFailsWholeBatch(t *testing.T) {
	client := &mockClient{response: "not json"}

	svc := NewShotDraftService(client)
	shots, err := svc.Draft(context.Background(), draftBrief(), role.Photographer)

	require.Error(t, err)
	assert.True(t, errors.Is(err, llm.ErrInvalidOutput))
	assert.Nil(t, shots)
}

func TestShotDraftRejectsUnknownShotType(t *testing.T) {
	client := &mockClient{
		response: `[
			{"description": "Fine shot", "shotType": "Wide", "angle": "Eye-level"},
			{"description": "Bad shot", "shotType": "Panoramic", "angle": "Eye-level"}
		]`,
	}

	svc := NewShotDraftService(client)
	shots, err := svc.Draft(context.Background(), draftBrief(), role.Photographer)

	require.Error(t, err)
	assert.True(t, errors.Is(err, llm.ErrInvalidOutput))
	assert.Nil(t, shots, "a batch with any invalid entry yields no shots at all")
}

func TestShotDraftRejectsEmptyDescription(t *testing.T) {
	client := &mockClient{
		response: `[{"description": "   ", "shotType": "Wide", "angle": "Eye-level"}]`,
	}

	svc := NewShotDraftService(client)
	_, err := svc.Draft(context.Background(), draftBrief(), role.Photographer)

	require.Error(t, err)
	assert.True(t, errors.Is(err, llm.ErrInvalidOutput))
}

func TestShotDraftRejectsEmptyArray(t *testing.T) {
	client := &mockClient{response: `[]`}

	svc := NewShotDraftService(client)
	_, err := svc.Draft(context.Background(), draftBrief(), role.Photographer)

	require.Error(t, err)
	assert.True(t, errors.Is(err, llm.ErrInvalidOutput))
}

func TestShotDraftPropagatesClientError(t *testing.T) {
	client := &mockClient{err: llm.ErrUnavailable}

	svc := NewShotDraftService(client)
	_, err := svc.Draft(context.Background(), draftBrief(), role.Photographer)

	require.Error(t, err)
	assert.True(t, errors.Is(err, llm.ErrUnavailable))
}

func TestShotDraftToleratesCodeFences(t *testing.T) {
	client := &mockClient{
		response: "```json\n[{\"description\": \"Hero product on seamless\", \"shotType\": \"Medium\", \"angle\": \"Eye-level\"}]\n```",
	}

	svc := NewShotDraftService(client)
	shots, err := svc.Draft(context.Background(), draftBrief(), role.Client)

	require.NoError(t, err)
	require.Len(t, shots, 1)
	assert.Equal(t, "Hero product on seamless", shots[0].Description)
}
