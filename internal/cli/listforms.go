package cli

import (
	"fmt"
	"strconv"

	"github.com/averyhale/briefer/internal/cli/formatter"
	"github.com/averyhale/briefer/internal/domain"
	"github.com/averyhale/briefer/internal/role"
	"github.com/charmbracelet/huh"
)

// runCrewEditor loops an add/edit/remove menu over the crew list.
func runCrewEditor(app *App) error {
	for {
		crew := app.Store.Snapshot().Crew
		printCrewList(crew)

		choice, id, err := listMenu("crew member", len(crew) > 0, crewOptions(crew))
		if err != nil {
			return err
		}
		switch choice {
		case listAdd:
			m, ok, err := crewForm(domain.CrewMember{})
			if err != nil {
				return err
			}
			if ok {
				app.Store.AddCrewMember(m)
			}
		case listEdit:
			existing := findCrew(crew, id)
			edited, ok, err := crewForm(existing)
			if err != nil {
				return err
			}
			if ok {
				app.Store.UpdateCrewMember(id, func(domain.CrewMember) domain.CrewMember {
					return edited
				})
			}
		case listRemove:
			app.Store.RemoveCrewMember(id)
		case listDone:
			return nil
		}
	}
}

// runEquipmentEditor loops an add/toggle/remove menu over the equipment list.
func runEquipmentEditor(app *App) error {
	for {
		equipment := app.Store.Snapshot().Equipment
		printEquipmentList(equipment)

		choice, id, err := listMenu("equipment item", len(equipment) > 0, equipmentOptions(equipment))
		if err != nil {
			return err
		}
		switch choice {
		case listAdd:
			item, ok, err := equipmentForm()
			if err != nil {
				return err
			}
			if ok {
				app.Store.AddEquipmentItem(item)
			}
		case listEdit:
			app.Store.ToggleEquipmentChecked(id)
		case listRemove:
			app.Store.RemoveEquipmentItem(id)
		case listDone:
			return nil
		}
	}
}

// runBudgetStep edits the budget scalars, then loops the line-item editor.
func runBudgetStep(app *App, step role.Step, cfg role.Config) error {
	scalarStep := step
	scalarStep.Fields = []domain.Field{domain.FieldBudget, domain.FieldCurrency}
	if err := runFormStep(app, scalarStep, cfg); err != nil {
		return err
	}

	for {
		items := app.Store.Snapshot().BudgetLineItems
		printBudgetList(items, app.Store.Snapshot().Currency)

		choice, id, err := listMenu("budget line", len(items) > 0, budgetOptions(items))
		if err != nil {
			return err
		}
		switch choice {
		case listAdd:
			item, ok, err := budgetForm(domain.BudgetLineItem{Quantity: 1})
			if err != nil {
				return err
			}
			if ok {
				app.Store.AddBudgetItem(item)
			}
		case listEdit:
			existing := findBudget(items, id)
			edited, ok, err := budgetForm(existing)
			if err != nil {
				return err
			}
			if ok {
				app.Store.UpdateBudgetItem(id, func(domain.BudgetLineItem) domain.BudgetLineItem {
					return edited
				})
			}
		case listRemove:
			app.Store.RemoveBudgetItem(id)
		case listDone:
			return nil
		}
	}
}

// ── shared menu plumbing ────────────────────────────────────────────────────

type listChoice string

const (
	listAdd    listChoice = "add"
	listEdit   listChoice = "edit"
	listRemove listChoice = "remove"
	listDone   listChoice = "done"
)

// listMenu presents add/edit/remove/done, then an entry picker for edit and
// remove. itemOptions supplies the labels keyed by item ID.
func listMenu(noun string, hasItems bool, itemOptions []huh.Option[string]) (listChoice, int64, error) {
	options := []huh.Option[string]{
		huh.NewOption("Add "+noun, string(listAdd)),
	}
	if hasItems {
		options = append(options,
			huh.NewOption("Edit "+noun, string(listEdit)),
			huh.NewOption("Remove "+noun, string(listRemove)),
		)
	}
	options = append(options, huh.NewOption("Done with this step", string(listDone)))

	var choice string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What next?").
				Options(options...).
				Value(&choice),
		),
	).WithTheme(brieferHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return listDone, 0, err
	}

	c := listChoice(choice)
	if c != listEdit && c != listRemove {
		return c, 0, nil
	}

	var picked string
	pickForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which "+noun+"?").
				Options(itemOptions...).
				Value(&picked),
		),
	).WithTheme(brieferHuhTheme()).WithShowHelp(false)
	if err := pickForm.Run(); err != nil {
		return listDone, 0, err
	}
	id, err := strconv.ParseInt(picked, 10, 64)
	if err != nil {
		return listDone, 0, fmt.Errorf("parsing selection: %w", err)
	}
	return c, id, nil
}

func crewOptions(crew []domain.CrewMember) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(crew))
	for _, m := range crew {
		options = append(options, huh.NewOption(
			fmt.Sprintf("%d. %s (%s)", m.Order, m.Name, m.Role),
			strconv.FormatInt(m.ID, 10)))
	}
	return options
}

func equipmentOptions(items []domain.EquipmentItem) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(items))
	for _, e := range items {
		options = append(options, huh.NewOption(
			fmt.Sprintf("%d. %s (%s)", e.Order, e.Name, e.Category),
			strconv.FormatInt(e.ID, 10)))
	}
	return options
}

func budgetOptions(items []domain.BudgetLineItem) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(items))
	for _, i := range items {
		options = append(options, huh.NewOption(
			fmt.Sprintf("%d. %s — %s (%.2f)", i.Order, i.Category, i.Description, i.Total),
			strconv.FormatInt(i.ID, 10)))
	}
	return options
}

func findCrew(crew []domain.CrewMember, id int64) domain.CrewMember {
	for _, m := range crew {
		if m.ID == id {
			return m
		}
	}
	return domain.CrewMember{}
}

func findBudget(items []domain.BudgetLineItem, id int64) domain.BudgetLineItem {
	for _, i := range items {
		if i.ID == id {
			return i
		}
	}
	return domain.BudgetLineItem{}
}

// ── entry forms ─────────────────────────────────────────────────────────────

// crewForm edits one crew member. Returns ok=false when the name is empty.
func crewForm(m domain.CrewMember) (domain.CrewMember, bool, error) {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&m.Name),
			huh.NewInput().Title("Role").Placeholder("e.g., Gaffer, MUA, Assistant").Value(&m.Role),
			huh.NewInput().Title("Call Time").Placeholder("HH:MM").Validate(validateOptionalTime).Value(&m.CallTime),
			huh.NewInput().Title("Contact").Value(&m.Contact),
			huh.NewInput().Title("Notes").Value(&m.Notes),
		),
	).WithTheme(brieferHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return m, false, err
	}
	return m, m.Name != "", nil
}

// equipmentForm collects one equipment entry.
func equipmentForm() (domain.EquipmentItem, bool, error) {
	var item domain.EquipmentItem
	category := string(domain.EquipCamera)
	qty := "1"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(&item.Name),
			huh.NewSelect[string]().Title("Category").
				Options(
					huh.NewOption("Camera", string(domain.EquipCamera)),
					huh.NewOption("Lens", string(domain.EquipLens)),
					huh.NewOption("Lighting", string(domain.EquipLighting)),
					huh.NewOption("Audio", string(domain.EquipAudio)),
					huh.NewOption("Grip", string(domain.EquipGrip)),
					huh.NewOption("Props", string(domain.EquipProps)),
					huh.NewOption("Other", string(domain.EquipOther)),
				).
				Value(&category),
			huh.NewInput().Title("Quantity").Validate(validatePositiveInt).Value(&qty),
			huh.NewConfirm().Title("Rental?").Value(&item.IsRental),
		),
	).WithTheme(brieferHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return item, false, err
	}
	item.Category = domain.EquipmentCategory(category)
	item.Quantity = parsePositiveInt(qty, 1)
	return item, item.Name != "", nil
}

// budgetForm edits one budget line. Total is derived downstream; the form
// never asks for it.
func budgetForm(item domain.BudgetLineItem) (domain.BudgetLineItem, bool, error) {
	qty := strconv.FormatFloat(item.Quantity, 'f', -1, 64)
	unit := strconv.FormatFloat(item.UnitCost, 'f', -1, 64)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Category").Placeholder("e.g., Crew, Equipment, Location").Value(&item.Category),
			huh.NewInput().Title("Description").Value(&item.Description),
			huh.NewInput().Title("Quantity").Validate(validatePositiveFloat).Value(&qty),
			huh.NewInput().Title("Unit Cost").Validate(validateNonNegativeFloat).Value(&unit),
			huh.NewInput().Title("Notes").Value(&item.Notes),
		),
	).WithTheme(brieferHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return item, false, err
	}
	item.Quantity, _ = strconv.ParseFloat(qty, 64)
	item.UnitCost, _ = strconv.ParseFloat(unit, 64)
	return item, item.Category != "" || item.Description != "", nil
}

// ── rendering ───────────────────────────────────────────────────────────────

func printCrewList(crew []domain.CrewMember) {
	if len(crew) == 0 {
		fmt.Println("  " + formatter.Dim("No crew yet."))
		return
	}
	for _, m := range crew {
		call := m.CallTime
		if call == "" {
			call = "TBD"
		}
		fmt.Printf("  %s %s %s %s\n",
			formatter.Dim(fmt.Sprintf("%2d.", m.Order)),
			formatter.Bold(m.Name),
			formatter.StyleBlue.Render(m.Role),
			formatter.Dim("call "+call))
	}
}

func printEquipmentList(items []domain.EquipmentItem) {
	if len(items) == 0 {
		fmt.Println("  " + formatter.Dim("No equipment yet."))
		return
	}
	for _, e := range items {
		check := "[ ]"
		if e.Checked {
			check = formatter.StyleGreen.Render("[x]")
		}
		line := fmt.Sprintf("  %s %s", check, e.Name)
		if e.Quantity > 1 {
			line += fmt.Sprintf(" (x%d)", e.Quantity)
		}
		if e.IsRental {
			line += " " + formatter.StyleYellow.Render("[RENTAL]")
		}
		fmt.Println(line + " " + formatter.Dim(string(e.Category)))
	}
}

func printBudgetList(items []domain.BudgetLineItem, currency domain.Currency) {
	if len(items) == 0 {
		fmt.Println("  " + formatter.Dim("No budget lines yet."))
		return
	}
	for _, i := range items {
		fmt.Printf("  %s %s — %s  %s\n",
			formatter.Dim(fmt.Sprintf("%2d.", i.Order)),
			formatter.StyleBlue.Render(i.Category),
			i.Description,
			formatter.Bold(fmt.Sprintf("%.2f", i.Total)))
	}
	fmt.Printf("  %s %s\n",
		formatter.Dim("Total:"),
		formatter.StyleGreen.Render(fmt.Sprintf("%.2f %s", domain.BudgetTotal(items), currency)))
}

// parsePositiveInt parses s as a positive integer, returning fallback
// otherwise. The huh validator has already vetted the string.
func parsePositiveInt(s string, fallback int) int {
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// validatePositiveInt accepts empty or a positive integer.
func validatePositiveInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validatePositiveFloat accepts empty or a positive number.
func validatePositiveFloat(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateNonNegativeFloat accepts empty or a non-negative number.
func validateNonNegativeFloat(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}
