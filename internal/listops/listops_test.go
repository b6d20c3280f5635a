package listops

import (
	"testing"

	"github.com/averyhale/briefer/internal/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeShots(descriptions ...string) []domain.Shot {
	shots := make([]domain.Shot, 0, len(descriptions))
	for i, d := range descriptions {
		shots = append(shots, domain.Shot{
			ID:          int64(i + 1),
			Description: d,
			Order:       i + 1,
		})
	}
	return shots
}

func descriptions(shots []domain.Shot) []string {
	out := make([]string, 0, len(shots))
	for _, s := range shots {
		out = append(out, s.Description)
	}
	return out
}

func assertContiguousOrder(t *testing.T, shots []domain.Shot) {
	t.Helper()
	for i, s := range shots {
		assert.Equal(t, i+1, s.Order, "order must match array position, shot %q", s.Description)
	}
}

func TestRestamp_AssignsContiguousSequence(t *testing.T) {
	shots := makeShots("a", "b", "c")
	shots[0].Order = 7
	shots[1].Order = 0
	shots[2].Order = 7

	out := Restamp(shots)

	assertContiguousOrder(t, out)
	assert.Equal(t, 7, shots[0].Order, "input slice must not be mutated")
}

func TestAppend_AddsAtEndAndRestamps(t *testing.T) {
	shots := makeShots("a", "b")

	out := Append(shots, domain.Shot{ID: 9, Description: "c"})

	require.Len(t, out, 3)
	assert.Equal(t, []string{"a", "b", "c"}, descriptions(out))
	assertContiguousOrder(t, out)
}

func TestReorder_MovesForwardStably(t *testing.T) {
	shots := makeShots("a", "b", "c", "d")

	out := Reorder(shots, 1, 3)

	assert.Equal(t, []string{"b", "c", "a", "d"}, descriptions(out))
	assertContiguousOrder(t, out)
}

func TestReorder_MovesBackwardStably(t *testing.T) {
	shots := makeShots("a", "b", "c", "d")

	out := Reorder(shots, 4, 2)

	assert.Equal(t, []string{"a", "d", "b", "c"}, descriptions(out))
	assertContiguousOrder(t, out)
}

func TestReorder_IsPermutation(t *testing.T) {
	shots := makeShots("a", "b", "c", "d", "e")

	out := Reorder(shots, 2, 5)

	require.Len(t, out, len(shots))
	seen := map[int64]bool{}
	for _, s := range out {
		assert.False(t, seen[s.ID], "no ID may appear twice")
		seen[s.ID] = true
	}
	for _, s := range shots {
		assert.True(t, seen[s.ID], "no ID may be lost")
	}
}

func TestReorder_UnknownIDIsNoOp(t *testing.T) {
	shots := makeShots("a", "b", "c")

	if diff := cmp.Diff(shots, Reorder(shots, 99, 2)); diff != "" {
		t.Errorf("unknown fromID changed list (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(shots, Reorder(shots, 1, 99)); diff != "" {
		t.Errorf("unknown toID changed list (-want +got):\n%s", diff)
	}
}

func TestReorder_SamePositionIsNoOp(t *testing.T) {
	shots := makeShots("a", "b", "c")

	out := Reorder(shots, 2, 2)

	if diff := cmp.Diff(shots, out); diff != "" {
		t.Errorf("same-position move changed list (-want +got):\n%s", diff)
	}
}

func TestDuplicate_AppendsCloneWithFreshID(t *testing.T) {
	alloc := NewAllocator(3)
	shots := makeShots("a", "b", "c")
	shots[1].Notes = "golden hour"

	out := Duplicate(shots, 2, alloc)

	require.Len(t, out, 4)
	clone := out[3]
	assert.Equal(t, int64(4), clone.ID, "clone takes the next allocator ID")
	assert.Equal(t, "b", clone.Description)
	assert.Equal(t, "golden hour", clone.Notes)
	assertContiguousOrder(t, out)
}

func TestDuplicate_UnknownIDIsNoOp(t *testing.T) {
	alloc := NewAllocator(3)
	shots := makeShots("a", "b", "c")

	out := Duplicate(shots, 42, alloc)

	if diff := cmp.Diff(shots, out); diff != "" {
		t.Errorf("unknown ID changed list (-want +got):\n%s", diff)
	}
	assert.Equal(t, int64(4), alloc.NextID(), "a no-op duplicate must not burn an ID")
}

func TestRemove_ClosesGap(t *testing.T) {
	shots := makeShots("a", "b", "c")

	out := Remove(shots, 2)

	assert.Equal(t, []string{"a", "c"}, descriptions(out))
	assertContiguousOrder(t, out)
}

func TestRemove_DoubleFireIsIdempotent(t *testing.T) {
	shots := makeShots("a", "b", "c")

	once := Remove(shots, 2)
	twice := Remove(once, 2)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("second remove of same ID changed list (-want +got):\n%s", diff)
	}
}

func TestUpdate_PreservesIdentityAndPosition(t *testing.T) {
	shots := makeShots("a", "b", "c")

	out := Update(shots, 2, func(s domain.Shot) domain.Shot {
		s.Description = "b updated"
		s.ID = 999
		s.Order = 999
		return s
	})

	require.Len(t, out, 3)
	assert.Equal(t, "b updated", out[1].Description)
	assert.Equal(t, int64(2), out[1].ID, "patch cannot change identity")
	assert.Equal(t, 2, out[1].Order, "patch cannot change position")
}

func TestUpdate_UnknownIDIsNoOp(t *testing.T) {
	shots := makeShots("a", "b")

	out := Update(shots, 42, func(s domain.Shot) domain.Shot {
		s.Description = "mutated"
		return s
	})

	if diff := cmp.Diff(shots, out); diff != "" {
		t.Errorf("unknown ID changed list (-want +got):\n%s", diff)
	}
}

func TestGroupByCategory_FirstAppearanceOrder(t *testing.T) {
	shots := makeShots("a", "b", "c", "d", "e")
	shots[0].Category = "Exterior"
	shots[1].Category = "Interior"
	shots[2].Category = "Exterior"
	shots[4].Category = "Interior"

	buckets := GroupByCategory(shots)

	require.Len(t, buckets, 3)
	assert.Equal(t, "Exterior", buckets[0].Label)
	assert.Equal(t, []string{"a", "c"}, descriptions(buckets[0].Items))
	assert.Equal(t, "Interior", buckets[1].Label)
	assert.Equal(t, []string{"b", "e"}, descriptions(buckets[1].Items))
	assert.Equal(t, UncategorizedLabel, buckets[2].Label)
	assert.Equal(t, []string{"d"}, descriptions(buckets[2].Items))
}

func TestGroupByCategory_DoesNotTouchFlatOrder(t *testing.T) {
	shots := makeShots("a", "b", "c")
	shots[0].Category = "B"
	shots[2].Category = "A"

	GroupByCategory(shots)

	assertContiguousOrder(t, shots)
}

func TestGroupByCategory_FlattenReconstructsEveryItem(t *testing.T) {
	shots := makeShots("a", "b", "c", "d")
	shots[1].Category = "Detail"
	shots[3].Category = "Detail"

	var flattened []domain.Shot
	for _, b := range GroupByCategory(shots) {
		flattened = append(flattened, b.Items...)
	}

	require.Len(t, flattened, len(shots))
	seen := map[int64]bool{}
	for _, s := range flattened {
		seen[s.ID] = true
	}
	assert.Len(t, seen, len(shots), "grouping must neither drop nor duplicate items")
}

func TestMaxKey(t *testing.T) {
	assert.Equal(t, int64(0), MaxKey([]domain.Shot{}))

	shots := makeShots("a", "b")
	shots[0].ID = 17
	shots[1].ID = 4
	assert.Equal(t, int64(17), MaxKey(shots))
}
