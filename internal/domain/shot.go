package domain

// Shot is one entry in the ordered shot list. Order is always a contiguous
// 1..N sequence matching the list's array position; the list engine restamps
// it after every mutation.
type Shot struct {
	ID          int64       `json:"id"`
	Description string      `json:"description"`
	ShotType    ShotType    `json:"shotType"`
	Angle       ShotAngle   `json:"angle"`
	Orientation Orientation `json:"orientation,omitempty"`
	Priority    bool        `json:"priority"`
	Notes       string      `json:"notes"`
	Category    string      `json:"category,omitempty"`
	Quantity    int         `json:"quantity,omitempty"`
	Order       int         `json:"order"`
}

func (s Shot) Key() int64   { return s.ID }
func (s Shot) Ordinal() int { return s.Order }

func (s Shot) Stamped(order int) Shot {
	s.Order = order
	return s
}

func (s Shot) CloneWith(id int64) Shot {
	s.ID = id
	return s
}

func (s Shot) Group() string { return s.Category }
