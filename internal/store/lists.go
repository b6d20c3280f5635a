package store

import (
	"github.com/averyhale/briefer/internal/domain"
	"github.com/averyhale/briefer/internal/listops"
)

// List mutators. Each delegates to the list engine, which restamps Order to
// contiguous 1..N and treats unknown IDs as no-ops.

// AddShot appends a shot with a freshly allocated ID and returns it.
func (s *Store) AddShot(shot domain.Shot) domain.Shot {
	shot.ID = s.alloc.NextID()
	s.mutate(func(b *domain.Brief) {
		b.ShotList = listops.Append(b.ShotList, shot)
		shot = b.ShotList[len(b.ShotList)-1]
	})
	return shot
}

// AddShots appends a batch of shots (an accepted generated draft), allocating
// IDs for each. The batch is applied atomically: either all entries land or,
// when the slice is empty, nothing changes.
func (s *Store) AddShots(shots []domain.Shot) {
	if len(shots) == 0 {
		return
	}
	s.mutate(func(b *domain.Brief) {
		for _, shot := range shots {
			shot.ID = s.alloc.NextID()
			b.ShotList = listops.Append(b.ShotList, shot)
		}
	})
}

// UpdateShot patches one shot; identity and position are preserved.
func (s *Store) UpdateShot(id int64, fn func(domain.Shot) domain.Shot) {
	s.mutate(func(b *domain.Brief) {
		b.ShotList = listops.Update(b.ShotList, id, fn)
	})
}

// ReorderShots moves fromID to the position where toID sits.
func (s *Store) ReorderShots(fromID, toID int64) {
	s.mutate(func(b *domain.Brief) {
		b.ShotList = listops.Reorder(b.ShotList, fromID, toID)
	})
}

// DuplicateShot clones a shot to the end of the list with a fresh ID.
func (s *Store) DuplicateShot(id int64) {
	s.mutate(func(b *domain.Brief) {
		b.ShotList = listops.Duplicate(b.ShotList, id, s.alloc)
	})
}

// RemoveShot deletes a shot. The ID is never reused.
func (s *Store) RemoveShot(id int64) {
	s.mutate(func(b *domain.Brief) {
		b.ShotList = listops.Remove(b.ShotList, id)
	})
}

// AddCrewMember appends a crew member with a fresh ID and returns it.
func (s *Store) AddCrewMember(m domain.CrewMember) domain.CrewMember {
	m.ID = s.alloc.NextID()
	s.mutate(func(b *domain.Brief) {
		b.Crew = listops.Append(b.Crew, m)
		m = b.Crew[len(b.Crew)-1]
	})
	return m
}

// UpdateCrewMember patches one crew member.
func (s *Store) UpdateCrewMember(id int64, fn func(domain.CrewMember) domain.CrewMember) {
	s.mutate(func(b *domain.Brief) {
		b.Crew = listops.Update(b.Crew, id, fn)
	})
}

// RemoveCrewMember deletes a crew member.
func (s *Store) RemoveCrewMember(id int64) {
	s.mutate(func(b *domain.Brief) {
		b.Crew = listops.Remove(b.Crew, id)
	})
}

// AddBudgetItem appends a budget line with a fresh ID. The derived total is
// recomputed on the way in, whatever the caller set.
func (s *Store) AddBudgetItem(item domain.BudgetLineItem) domain.BudgetLineItem {
	item.ID = s.alloc.NextID()
	item = item.Recalculated()
	s.mutate(func(b *domain.Brief) {
		b.BudgetLineItems = listops.Append(b.BudgetLineItems, item)
		item = b.BudgetLineItems[len(b.BudgetLineItems)-1]
	})
	return item
}

// UpdateBudgetItem patches one budget line and recomputes its total, so
// Total == Quantity x UnitCost holds after every partial update.
func (s *Store) UpdateBudgetItem(id int64, fn func(domain.BudgetLineItem) domain.BudgetLineItem) {
	s.mutate(func(b *domain.Brief) {
		b.BudgetLineItems = listops.Update(b.BudgetLineItems, id, func(i domain.BudgetLineItem) domain.BudgetLineItem {
			return fn(i).Recalculated()
		})
	})
}

// RemoveBudgetItem deletes a budget line.
func (s *Store) RemoveBudgetItem(id int64) {
	s.mutate(func(b *domain.Brief) {
		b.BudgetLineItems = listops.Remove(b.BudgetLineItems, id)
	})
}

// AddEquipmentItem appends an equipment entry with a fresh ID.
func (s *Store) AddEquipmentItem(item domain.EquipmentItem) domain.EquipmentItem {
	item.ID = s.alloc.NextID()
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	s.mutate(func(b *domain.Brief) {
		b.Equipment = listops.Append(b.Equipment, item)
		item = b.Equipment[len(b.Equipment)-1]
	})
	return item
}

// UpdateEquipmentItem patches one equipment entry.
func (s *Store) UpdateEquipmentItem(id int64, fn func(domain.EquipmentItem) domain.EquipmentItem) {
	s.mutate(func(b *domain.Brief) {
		b.Equipment = listops.Update(b.Equipment, id, fn)
	})
}

// RemoveEquipmentItem deletes an equipment entry.
func (s *Store) RemoveEquipmentItem(id int64) {
	s.mutate(func(b *domain.Brief) {
		b.Equipment = listops.Remove(b.Equipment, id)
	})
}

// ToggleEquipmentChecked flips the checked flag on one equipment entry.
func (s *Store) ToggleEquipmentChecked(id int64) {
	s.UpdateEquipmentItem(id, func(e domain.EquipmentItem) domain.EquipmentItem {
		e.Checked = !e.Checked
		return e
	})
}
