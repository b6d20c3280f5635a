package domain

// CrewMember is one entry in the ordered crew list.
type CrewMember struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	CallTime string `json:"callTime"`
	Contact  string `json:"contact"`
	Notes    string `json:"notes,omitempty"`
	Order    int    `json:"order"`
}

func (c CrewMember) Key() int64   { return c.ID }
func (c CrewMember) Ordinal() int { return c.Order }

func (c CrewMember) Stamped(order int) CrewMember {
	c.Order = order
	return c
}

func (c CrewMember) CloneWith(id int64) CrewMember {
	c.ID = id
	return c
}

func (c CrewMember) Group() string { return c.Role }
