package store

import (
	"context"
	"testing"

	"github.com/averyhale/briefer/internal/domain"
	"github.com/averyhale/briefer/internal/repository"
	"github.com/averyhale/briefer/internal/role"
	"github.com/averyhale/briefer/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, repository.StateRepo) {
	t.Helper()
	repo := repository.NewSQLiteStateRepo(testutil.NewTestDB(t))
	return New(repo), repo
}

func TestStore_StartsCleanAndEmpty(t *testing.T) {
	s, _ := newTestStore(t)

	assert.False(t, s.Dirty())
	assert.Empty(t, s.Role())
	assert.Zero(t, s.LastSaved())
	assert.Empty(t, s.Snapshot().ProjectName)
}

func TestUpdateField_MarksDirty(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.UpdateField(domain.FieldProjectName, "Harbor Campaign"))

	assert.True(t, s.Dirty())
	assert.Equal(t, "Harbor Campaign", s.Snapshot().ProjectName)
}

func TestUpdateField_RejectedWriteStaysClean(t *testing.T) {
	s, _ := newTestStore(t)

	err := s.UpdateField(domain.FieldProjectName, 42)

	require.Error(t, err)
	assert.False(t, s.Dirty(), "a failed apply must not dirty the session")
}

func TestSnapshot_IsIsolatedFromLiveDocument(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddShot(domain.Shot{Description: "wide"})

	snap := s.Snapshot()
	snap.ShotList[0].Description = "mutated"
	snap.ProjectName = "mutated"

	assert.Equal(t, "wide", s.Snapshot().ShotList[0].Description)
	assert.Empty(t, s.Snapshot().ProjectName)
}

func TestSaveNow_ClearsDirtyAndStampsLastSaved(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.UpdateField(domain.FieldProjectName, "Harbor Campaign"))

	require.NoError(t, s.SaveNow(ctx))

	assert.False(t, s.Dirty())
	assert.False(t, s.LastSaved().IsZero())
}

// gateRepo blocks inside Save until released, so a test can interleave a
// mutation with an in-flight write.
type gateRepo struct {
	entered chan struct{}
	release chan struct{}
	saved   *repository.SavedState
}

func newGateRepo() *gateRepo {
	return &gateRepo{entered: make(chan struct{}), release: make(chan struct{})}
}

func (r *gateRepo) Save(ctx context.Context, state *repository.SavedState) error {
	close(r.entered)
	<-r.release
	r.saved = state
	return nil
}

func (r *gateRepo) Load(ctx context.Context) (*repository.SavedState, error) {
	return r.saved, nil
}

func (r *gateRepo) Clear(ctx context.Context) error {
	r.saved = nil
	return nil
}

func TestSaveNow_EditDuringSaveStaysDirty(t *testing.T) {
	repo := newGateRepo()
	s := New(repo)
	ctx := context.Background()
	require.NoError(t, s.UpdateField(domain.FieldOverview, "first"))

	done := make(chan error, 1)
	go func() { done <- s.SaveNow(ctx) }()

	<-repo.entered
	require.NoError(t, s.UpdateField(domain.FieldOverview, "second"))
	close(repo.release)
	require.NoError(t, <-done)

	assert.True(t, s.Dirty(), "the edit made mid-save has not been persisted")
	assert.Equal(t, "first", repo.saved.Brief.Overview)
	assert.Equal(t, "second", s.Snapshot().Overview)
}

func TestHydrate_NothingSaved(t *testing.T) {
	s, _ := newTestStore(t)

	restored, err := s.Hydrate(context.Background())

	require.NoError(t, err)
	assert.False(t, restored)
}

func TestHydrate_RestoresFullSession(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteStateRepo(db)
	ctx := context.Background()

	first := New(repo)
	first.SetRole(role.Photographer)
	first.SetStepIndex(3)
	require.NoError(t, first.UpdateField(domain.FieldProjectName, "Harbor Campaign"))
	first.AddShot(domain.Shot{Description: "wide"})
	require.NoError(t, first.SaveNow(ctx))

	second := New(repo)
	restored, err := second.Hydrate(ctx)

	require.NoError(t, err)
	assert.True(t, restored)
	assert.Equal(t, role.Photographer, second.Role())
	assert.Equal(t, 3, second.StepIndex())
	assert.Equal(t, "Harbor Campaign", second.Snapshot().ProjectName)
	assert.False(t, second.Dirty())
	assert.False(t, second.LastSaved().IsZero())
}

func TestHydrate_NeverReissuesRemovedIDs(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteStateRepo(db)
	ctx := context.Background()

	first := New(repo)
	a := first.AddShot(domain.Shot{Description: "a"})
	b := first.AddShot(domain.Shot{Description: "b"})
	first.RemoveShot(b.ID)
	require.NoError(t, first.SaveNow(ctx))

	second := New(repo)
	restored, err := second.Hydrate(ctx)
	require.NoError(t, err)
	require.True(t, restored)

	c := second.AddShot(domain.Shot{Description: "c"})
	assert.Greater(t, c.ID, b.ID, "removed ID %d must not be recycled after restart", b.ID)
	assert.NotEqual(t, a.ID, c.ID)
}

func TestSetStepIndex_DoesNotDirty(t *testing.T) {
	s, _ := newTestStore(t)

	s.SetStepIndex(4)

	assert.Equal(t, 4, s.StepIndex())
	assert.False(t, s.Dirty(), "navigation alone is not a document change")
}

func TestSetRole_PreservesEnteredFields(t *testing.T) {
	s, _ := newTestStore(t)
	require.NoError(t, s.UpdateField(domain.FieldProjectName, "Harbor Campaign"))

	s.SetRole(role.Producer)

	assert.Equal(t, role.Producer, s.Role())
	assert.Equal(t, "Harbor Campaign", s.Snapshot().ProjectName)
	assert.True(t, s.Dirty())
}

func TestReset_ClearsSessionAndPersistence(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSQLiteStateRepo(db)
	ctx := context.Background()

	s := New(repo)
	s.SetRole(role.Client)
	require.NoError(t, s.UpdateField(domain.FieldProjectName, "Harbor Campaign"))
	require.NoError(t, s.SaveNow(ctx))

	require.NoError(t, s.Reset(ctx))

	assert.Empty(t, s.Role())
	assert.Empty(t, s.Snapshot().ProjectName)
	assert.False(t, s.Dirty())
	assert.Zero(t, s.LastSaved())

	fresh := New(repo)
	restored, err := fresh.Hydrate(ctx)
	require.NoError(t, err)
	assert.False(t, restored, "reset must remove the persisted session")
}
