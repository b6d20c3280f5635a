package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/averyhale/briefer/internal/domain"
)

// ShotListCSV writes the shot list as CSV rows ordered by shot number.
func ShotListCSV(w io.Writer, brief *domain.Brief) error {
	cw := csv.NewWriter(w)

	header := []string{"Shot #", "Description", "Shot Type", "Angle", "Orientation", "Priority", "Category", "Quantity", "Notes"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing shot list header: %w", err)
	}

	for _, shot := range brief.ShotList {
		priority := "No"
		if shot.Priority {
			priority = "Yes"
		}
		qty := shot.Quantity
		if qty <= 0 {
			qty = 1
		}
		row := []string{
			strconv.Itoa(shot.Order),
			shot.Description,
			string(shot.ShotType),
			string(shot.Angle),
			string(shot.Orientation),
			priority,
			shot.Category,
			strconv.Itoa(qty),
			shot.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing shot %d: %w", shot.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// BudgetCSV writes the budget breakdown as CSV, ending with a TOTAL row.
func BudgetCSV(w io.Writer, brief *domain.Brief) error {
	cw := csv.NewWriter(w)

	header := []string{"Category", "Description", "Quantity", "Unit Cost", "Total", "Notes"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing budget header: %w", err)
	}

	for _, item := range brief.BudgetLineItems {
		row := []string{
			item.Category,
			item.Description,
			strconv.FormatFloat(item.Quantity, 'f', -1, 64),
			strconv.FormatFloat(item.UnitCost, 'f', 2, 64),
			strconv.FormatFloat(item.Total, 'f', 2, 64),
			item.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing budget item %d: %w", item.ID, err)
		}
	}

	total := domain.BudgetTotal(brief.BudgetLineItems)
	totalRow := []string{"", "", "", "TOTAL", strconv.FormatFloat(total, 'f', 2, 64), ""}
	if err := cw.Write(totalRow); err != nil {
		return fmt.Errorf("writing budget total: %w", err)
	}

	cw.Flush()
	return cw.Error()
}

// CrewCSV writes the crew list as CSV rows in call order.
func CrewCSV(w io.Writer, brief *domain.Brief) error {
	cw := csv.NewWriter(w)

	header := []string{"#", "Name", "Role", "Call Time", "Contact", "Notes"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing crew header: %w", err)
	}

	for _, m := range brief.Crew {
		row := []string{
			strconv.Itoa(m.Order),
			m.Name,
			m.Role,
			m.CallTime,
			m.Contact,
			m.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing crew member %d: %w", m.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
