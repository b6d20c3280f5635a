package assist

import (
	"context"
	"errors"
	"testing"

	"github.com/averyhale/briefer/internal/llm"
	"github.com/averyhale/briefer/internal/role"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverviewDraftReturnsTrimmedText(t *testing.T) {
	client := &mockClient{
		response: "\n  A cinematic fall lookbook shot on location in Portland.  \n",
	}

	svc := NewOverviewDraftService(client)
	text, err := svc.Draft(context.Background(), draftBrief(), role.Client)

	require.NoError(t, err)
	assert.Equal(t, "A cinematic fall lookbook shot on location in Portland.", text)
	assert.Equal(t, llm.TaskOverviewDraft, client.lastReq.Task)
}

func TestOverviewDraftIncludesRoleGuidance(t *testing.T) {
	client := &mockClient{response: "Overview copy."}

	svc := NewOverviewDraftService(client)
	_, err := svc.Draft(context.Background(), draftBrief(), role.Producer)

	require.NoError(t, err)
	assert.Contains(t, client.lastReq.UserPrompt, "production logistics")
}

func TestOverviewDraftEmptyResponseIsInvalid(t *testing.T) {
	client := &mockClient{response: "   "}

	svc := NewOverviewDraftService(client)
	_, err := svc.Draft(context.Background(), draftBrief(), role.Client)

	require.Error(t, err)
	assert.True(t, errors.Is(err, llm.ErrInvalidOutput))
}

func TestOverviewDraftPropagatesClientError(t *testing.T) {
	client := &mockClient{err: llm.ErrTimeout}

	svc := NewOverviewDraftService(client)
	_, err := svc.Draft(context.Background(), draftBrief(), role.Client)

	require.Error(t, err)
	assert.True(t, errors.Is(err, llm.ErrTimeout))
}
