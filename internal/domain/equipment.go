package domain

// EquipmentItem is one entry in the equipment checklist.
type EquipmentItem struct {
	ID       int64             `json:"id"`
	Name     string            `json:"name"`
	Category EquipmentCategory `json:"category"`
	Quantity int               `json:"quantity"`
	IsRental bool              `json:"isRental"`
	Checked  bool              `json:"checked"`
	Notes    string            `json:"notes,omitempty"`
	Order    int               `json:"order"`
}

func (e EquipmentItem) Key() int64   { return e.ID }
func (e EquipmentItem) Ordinal() int { return e.Order }

func (e EquipmentItem) Stamped(order int) EquipmentItem {
	e.Order = order
	return e
}

func (e EquipmentItem) CloneWith(id int64) EquipmentItem {
	e.ID = id
	return e
}

func (e EquipmentItem) Group() string { return string(e.Category) }
