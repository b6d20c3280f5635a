package domain

// BudgetLineItem is one entry in the ordered budget breakdown.
// Total is derived, never set independently: any update touching Quantity or
// UnitCost must go through Recalculated.
type BudgetLineItem struct {
	ID          int64   `json:"id"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitCost    float64 `json:"unitCost"`
	Total       float64 `json:"total"`
	Notes       string  `json:"notes,omitempty"`
	Order       int     `json:"order"`
}

// Recalculated returns a copy with Total recomputed from Quantity and UnitCost.
func (i BudgetLineItem) Recalculated() BudgetLineItem {
	i.Total = i.Quantity * i.UnitCost
	return i
}

func (i BudgetLineItem) Key() int64   { return i.ID }
func (i BudgetLineItem) Ordinal() int { return i.Order }

func (i BudgetLineItem) Stamped(order int) BudgetLineItem {
	i.Order = order
	return i
}

func (i BudgetLineItem) CloneWith(id int64) BudgetLineItem {
	i.ID = id
	return i
}

func (i BudgetLineItem) Group() string { return i.Category }

// BudgetTotal sums the line item totals.
func BudgetTotal(items []BudgetLineItem) float64 {
	var sum float64
	for _, i := range items {
		sum += i.Total
	}
	return sum
}
