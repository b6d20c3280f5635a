package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/averyhale/briefer/internal/cli/formatter"
	"github.com/averyhale/briefer/internal/domain"
	"github.com/averyhale/briefer/internal/listops"
	"github.com/averyhale/briefer/internal/role"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

const shotDraftKey = "shot-draft"

// shotDraftMsg carries the result of a background generation call.
type shotDraftMsg struct {
	shots []domain.Shot
	err   error
}

// shotBoardDoneMsg is returned by the model when the user leaves the board.
type shotBoardOutcome int

const (
	boardDone shotBoardOutcome = iota
	boardAddShot
	boardEditShot
)

// shotBoard is the interactive shot list editor. Reorder, duplicate, and
// remove act on the store immediately; the view re-reads a snapshot after
// every mutation so Order labels always show the restamped 1..N sequence.
type shotBoard struct {
	app      *App
	perms    role.Permissions
	shots    []domain.Shot
	cursor   int
	grouped  bool
	drafting bool
	spin     spinner.Model
	status   string

	outcome shotBoardOutcome
	editID  int64
}

func newShotBoard(app *App) *shotBoard {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple
	return &shotBoard{
		app:   app,
		perms: role.Get(app.Store.Role()).Permissions,
		shots: app.Store.Snapshot().ShotList,
		spin:  sp,
	}
}

func (m *shotBoard) Init() tea.Cmd { return nil }

func (m *shotBoard) refresh() {
	m.shots = m.app.Store.Snapshot().ShotList
	if m.cursor >= len(m.shots) {
		m.cursor = len(m.shots) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *shotBoard) current() (domain.Shot, bool) {
	if m.cursor < 0 || m.cursor >= len(m.shots) {
		return domain.Shot{}, false
	}
	return m.shots[m.cursor], true
}

func (m *shotBoard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.drafting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case shotDraftMsg:
		m.drafting = false
		if msg.err != nil {
			m.status = formatter.StyleRed.Render("Draft failed: " + msg.err.Error())
			return m, nil
		}
		m.app.Store.AddShots(msg.shots)
		m.refresh()
		m.status = formatter.StyleGreen.Render(fmt.Sprintf("Added %d drafted shots.", len(msg.shots)))
		return m, nil

	case tea.KeyMsg:
		// The draft control is disabled while a call is in flight.
		switch msg.String() {
		case "q", "esc", "enter":
			m.outcome = boardDone
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.shots)-1 {
				m.cursor++
			}
		case "K", "shift+up":
			if !m.perms.ReorderShots {
				break
			}
			if shot, ok := m.current(); ok && m.cursor > 0 {
				m.app.Store.ReorderShots(shot.ID, m.shots[m.cursor-1].ID)
				m.cursor--
				m.refresh()
			}
		case "J", "shift+down":
			if !m.perms.ReorderShots {
				break
			}
			if shot, ok := m.current(); ok && m.cursor < len(m.shots)-1 {
				m.app.Store.ReorderShots(shot.ID, m.shots[m.cursor+1].ID)
				m.cursor++
				m.refresh()
			}
		case "d":
			if shot, ok := m.current(); ok {
				m.app.Store.DuplicateShot(shot.ID)
				m.refresh()
				m.status = formatter.Dim("Duplicated to end of list.")
			}
		case "x":
			if shot, ok := m.current(); ok {
				m.app.Store.RemoveShot(shot.ID)
				m.refresh()
			}
		case "p":
			if !m.perms.SetShotPriority {
				break
			}
			if shot, ok := m.current(); ok {
				m.app.Store.UpdateShot(shot.ID, func(s domain.Shot) domain.Shot {
					s.Priority = !s.Priority
					return s
				})
				m.refresh()
			}
		case "g":
			m.grouped = !m.grouped
		case "a":
			m.outcome = boardAddShot
			return m, tea.Quit
		case "e":
			if shot, ok := m.current(); ok {
				m.outcome = boardEditShot
				m.editID = shot.ID
				return m, tea.Quit
			}
		case "i":
			if !m.perms.UseAssist {
				break
			}
			if m.app.ShotDraft == nil {
				m.status = formatter.Dim("Drafting is not enabled (set BRIEFER_LLM_ENABLED=true).")
				return m, nil
			}
			if m.drafting {
				return m, nil
			}
			release, ok := m.app.Drafts.Begin(shotDraftKey)
			if !ok {
				return m, nil
			}
			m.drafting = true
			m.status = ""
			return m, tea.Batch(m.spin.Tick, m.draftShots(release))
		}
	}
	return m, nil
}

// draftShots requests a generated shot list off the UI loop. The release is
// held for the lifetime of the call so repeated presses cannot stack requests.
func (m *shotBoard) draftShots(release func()) tea.Cmd {
	app := m.app
	brief := app.Store.Snapshot()
	r := app.Store.Role()
	return func() tea.Msg {
		defer release()
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		shots, err := app.ShotDraft.Draft(ctx, brief, r)
		return shotDraftMsg{shots: shots, err: err}
	}
}

func (m *shotBoard) View() string {
	var b strings.Builder
	b.WriteString("\n")

	if len(m.shots) == 0 {
		b.WriteString("  " + formatter.Dim("No shots yet. Press a to add one"))
		if m.app.ShotDraft != nil {
			b.WriteString(formatter.Dim(", or i to draft a list."))
		} else {
			b.WriteString(formatter.Dim("."))
		}
		b.WriteString("\n")
	} else if m.grouped {
		b.WriteString(m.renderGrouped())
	} else {
		for i, shot := range m.shots {
			b.WriteString(m.renderShot(shot, i == m.cursor))
		}
	}

	if m.drafting {
		b.WriteString(fmt.Sprintf("\n  %s %s\n", m.spin.View(), formatter.Dim("Drafting shot ideas...")))
	} else if m.status != "" {
		b.WriteString("\n  " + m.status + "\n")
	}

	help := "j/k move"
	if m.perms.ReorderShots {
		help += " · J/K reorder"
	}
	help += " · a add · e edit · d duplicate · x remove"
	if m.perms.SetShotPriority {
		help += " · p priority"
	}
	help += " · g group · enter done"
	b.WriteString("\n  " + formatter.Dim(help) + "\n")
	return b.String()
}

func (m *shotBoard) renderShot(shot domain.Shot, isCursor bool) string {
	cursor := "  "
	if isCursor {
		cursor = formatter.StyleGreen.Render("▸ ")
	}
	marker := "  "
	if shot.Priority {
		marker = formatter.StyleYellow.Render("★ ")
	}
	return fmt.Sprintf("%s%s%s %s %s\n",
		cursor, marker,
		formatter.Dim(fmt.Sprintf("%2d.", shot.Order)),
		shot.Description,
		formatter.Dim(fmt.Sprintf("(%s, %s)", shot.ShotType, shot.Angle)))
}

// renderGrouped shows shots bucketed by category. Cursor movement and
// mutations still act on the flat order; grouping is display-only.
func (m *shotBoard) renderGrouped() string {
	var b strings.Builder
	selected, hasSelection := m.current()
	for _, bucket := range listops.GroupByCategory(m.shots) {
		b.WriteString("  " + formatter.StyleBlue.Render(bucket.Label) + "\n")
		for _, shot := range bucket.Items {
			b.WriteString(m.renderShot(shot, hasSelection && shot.ID == selected.ID))
		}
	}
	return b.String()
}

// runShotBoard runs the interactive board, handing off to huh forms for add
// and edit, until the user leaves the step.
func runShotBoard(app *App) error {
	for {
		board := newShotBoard(app)
		if _, err := tea.NewProgram(board).Run(); err != nil {
			return fmt.Errorf("running shot board: %w", err)
		}

		switch board.outcome {
		case boardDone:
			return nil
		case boardAddShot:
			shot, ok, err := shotForm(domain.Shot{Quantity: 1})
			if err != nil {
				return err
			}
			if ok {
				app.Store.AddShot(shot)
			}
		case boardEditShot:
			existing, found := findShot(app.Store.Snapshot().ShotList, board.editID)
			if !found {
				continue
			}
			edited, ok, err := shotForm(existing)
			if err != nil {
				return err
			}
			if ok {
				app.Store.UpdateShot(board.editID, func(domain.Shot) domain.Shot {
					return edited
				})
			}
		}
	}
}

func findShot(shots []domain.Shot, id int64) (domain.Shot, bool) {
	for _, s := range shots {
		if s.ID == id {
			return s, true
		}
	}
	return domain.Shot{}, false
}

// shotForm edits one shot. Returns ok=false when the description is empty.
func shotForm(shot domain.Shot) (domain.Shot, bool, error) {
	shotType := string(shot.ShotType)
	if shotType == "" {
		shotType = string(domain.ShotWide)
	}
	angle := string(shot.Angle)
	if angle == "" {
		angle = string(domain.AngleEyeLevel)
	}
	orientation := string(shot.Orientation)
	qty := "1"
	if shot.Quantity > 0 {
		qty = strconv.Itoa(shot.Quantity)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Description").Value(&shot.Description),
			huh.NewSelect[string]().Title("Shot Type").
				Options(
					huh.NewOption("Wide", string(domain.ShotWide)),
					huh.NewOption("Medium", string(domain.ShotMedium)),
					huh.NewOption("Close-up", string(domain.ShotCloseUp)),
					huh.NewOption("Detail", string(domain.ShotDetail)),
					huh.NewOption("Overhead", string(domain.ShotOverhead)),
					huh.NewOption("Other", string(domain.ShotOther)),
				).
				Value(&shotType),
			huh.NewSelect[string]().Title("Angle").
				Options(
					huh.NewOption("Eye-level", string(domain.AngleEyeLevel)),
					huh.NewOption("High Angle", string(domain.AngleHigh)),
					huh.NewOption("Low Angle", string(domain.AngleLow)),
					huh.NewOption("Dutch Angle", string(domain.AngleDutch)),
					huh.NewOption("Other", string(domain.AngleOther)),
				).
				Value(&angle),
			huh.NewSelect[string]().Title("Orientation").
				Options(
					huh.NewOption("Any", string(domain.OrientationAny)),
					huh.NewOption("Portrait", string(domain.OrientationPortrait)),
					huh.NewOption("Landscape", string(domain.OrientationLandscape)),
					huh.NewOption("Square", string(domain.OrientationSquare)),
				).
				Value(&orientation),
			huh.NewInput().Title("Category").Placeholder("e.g., Exteriors, Portraits").Value(&shot.Category),
			huh.NewInput().Title("Quantity").Validate(validatePositiveInt).Value(&qty),
			huh.NewInput().Title("Notes").Value(&shot.Notes),
			huh.NewConfirm().Title("Priority shot?").Value(&shot.Priority),
		),
	).WithTheme(brieferHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return shot, false, err
	}
	shot.ShotType = domain.ShotType(shotType)
	shot.Angle = domain.ShotAngle(angle)
	shot.Orientation = domain.Orientation(orientation)
	shot.Quantity = parsePositiveInt(qty, 1)
	return shot, shot.Description != "", nil
}
