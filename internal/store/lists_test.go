package store

import (
	"testing"

	"github.com/averyhale/briefer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shotDescriptions(b *domain.Brief) []string {
	out := make([]string, 0, len(b.ShotList))
	for _, s := range b.ShotList {
		out = append(out, s.Description)
	}
	return out
}

func TestAddShot_AllocatesIDAndOrder(t *testing.T) {
	s, _ := newTestStore(t)

	first := s.AddShot(domain.Shot{Description: "wide establishing"})
	second := s.AddShot(domain.Shot{Description: "detail"})

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, 1, first.Order)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, 2, second.Order)
	assert.True(t, s.Dirty())
}

func TestAddShots_BatchKeepsRelativeOrder(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddShot(domain.Shot{Description: "existing"})

	s.AddShots([]domain.Shot{
		{Description: "drafted one"},
		{Description: "drafted two"},
	})

	snap := s.Snapshot()
	require.Len(t, snap.ShotList, 3)
	assert.Equal(t, []string{"existing", "drafted one", "drafted two"}, shotDescriptions(snap))
	assert.Equal(t, int64(2), snap.ShotList[1].ID)
	assert.Equal(t, int64(3), snap.ShotList[2].ID)
}

func TestAddShots_EmptyBatchIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)

	s.AddShots(nil)

	assert.False(t, s.Dirty())
	assert.Empty(t, s.Snapshot().ShotList)
}

func TestUpdateShot_KeepsIdentity(t *testing.T) {
	s, _ := newTestStore(t)
	shot := s.AddShot(domain.Shot{Description: "wide"})

	s.UpdateShot(shot.ID, func(sh domain.Shot) domain.Shot {
		sh.Description = "wide, golden hour"
		sh.Priority = true
		return sh
	})

	got := s.Snapshot().ShotList[0]
	assert.Equal(t, shot.ID, got.ID)
	assert.Equal(t, "wide, golden hour", got.Description)
	assert.True(t, got.Priority)
}

func TestReorderShots_RestampsSequence(t *testing.T) {
	s, _ := newTestStore(t)
	a := s.AddShot(domain.Shot{Description: "a"})
	s.AddShot(domain.Shot{Description: "b"})
	c := s.AddShot(domain.Shot{Description: "c"})

	s.ReorderShots(a.ID, c.ID)

	snap := s.Snapshot()
	assert.Equal(t, []string{"b", "c", "a"}, shotDescriptions(snap))
	for i, sh := range snap.ShotList {
		assert.Equal(t, i+1, sh.Order)
	}
}

func TestDuplicateShot_FreshIDAtEnd(t *testing.T) {
	s, _ := newTestStore(t)
	shot := s.AddShot(domain.Shot{Description: "hero product", Notes: "50mm"})
	s.AddShot(domain.Shot{Description: "other"})

	s.DuplicateShot(shot.ID)

	snap := s.Snapshot()
	require.Len(t, snap.ShotList, 3)
	clone := snap.ShotList[2]
	assert.Equal(t, "hero product", clone.Description)
	assert.Equal(t, "50mm", clone.Notes)
	assert.Equal(t, int64(3), clone.ID)
	assert.Equal(t, 3, clone.Order)
}

func TestRemoveShot_IDNeverReused(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddShot(domain.Shot{Description: "a"})
	b := s.AddShot(domain.Shot{Description: "b"})

	s.RemoveShot(b.ID)
	replacement := s.AddShot(domain.Shot{Description: "c"})

	assert.Equal(t, int64(3), replacement.ID)
	snap := s.Snapshot()
	assert.Equal(t, []string{"a", "c"}, shotDescriptions(snap))
	assert.Equal(t, 2, snap.ShotList[1].Order)
}

func TestCrewMutators(t *testing.T) {
	s, _ := newTestStore(t)

	m := s.AddCrewMember(domain.CrewMember{Name: "Sam Ortiz", Role: "Gaffer"})
	assert.Equal(t, 1, m.Order)

	s.UpdateCrewMember(m.ID, func(c domain.CrewMember) domain.CrewMember {
		c.CallTime = "07:30"
		return c
	})
	assert.Equal(t, "07:30", s.Snapshot().Crew[0].CallTime)

	s.RemoveCrewMember(m.ID)
	assert.Empty(t, s.Snapshot().Crew)
}

func TestAddBudgetItem_RecomputesTotal(t *testing.T) {
	s, _ := newTestStore(t)

	item := s.AddBudgetItem(domain.BudgetLineItem{
		Category: "Crew", Description: "Gaffer day rate",
		Quantity: 2, UnitCost: 650, Total: 1,
	})

	assert.InDelta(t, 1300, item.Total, 0.001, "total is derived, caller value discarded")
}

func TestUpdateBudgetItem_TotalStaysDerived(t *testing.T) {
	s, _ := newTestStore(t)
	item := s.AddBudgetItem(domain.BudgetLineItem{Quantity: 1, UnitCost: 100})

	s.UpdateBudgetItem(item.ID, func(i domain.BudgetLineItem) domain.BudgetLineItem {
		i.Quantity = 3
		return i
	})

	got := s.Snapshot().BudgetLineItems[0]
	assert.InDelta(t, 300, got.Total, 0.001)
}

func TestAddEquipmentItem_DefaultsQuantity(t *testing.T) {
	s, _ := newTestStore(t)

	item := s.AddEquipmentItem(domain.EquipmentItem{Name: "C-stand", Category: domain.EquipGrip})

	assert.Equal(t, 1, item.Quantity)
}

func TestToggleEquipmentChecked(t *testing.T) {
	s, _ := newTestStore(t)
	item := s.AddEquipmentItem(domain.EquipmentItem{Name: "Profoto B10", Category: domain.EquipLighting})

	s.ToggleEquipmentChecked(item.ID)
	assert.True(t, s.Snapshot().Equipment[0].Checked)

	s.ToggleEquipmentChecked(item.ID)
	assert.False(t, s.Snapshot().Equipment[0].Checked)
}

func TestListMutators_SharedAllocatorAcrossLists(t *testing.T) {
	s, _ := newTestStore(t)

	shot := s.AddShot(domain.Shot{Description: "wide"})
	crew := s.AddCrewMember(domain.CrewMember{Name: "Sam Ortiz"})
	budget := s.AddBudgetItem(domain.BudgetLineItem{Description: "Permits"})
	equip := s.AddEquipmentItem(domain.EquipmentItem{Name: "Reflector"})

	ids := []int64{shot.ID, crew.ID, budget.ID, equip.ID}
	assert.Equal(t, []int64{1, 2, 3, 4}, ids, "one allocator serves every list")
}
