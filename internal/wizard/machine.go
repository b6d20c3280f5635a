// Package wizard holds the step navigation state machine. It owns the current
// step index and the gating rule; the document itself lives in the store and
// is only read here to evaluate gating.
package wizard

import (
	"github.com/averyhale/briefer/internal/domain"
	"github.com/averyhale/briefer/internal/role"
)

// Machine sequences the wizard steps for one role. errorsVisible is only set
// after a refused advance, so untouched fields are not red-lined prematurely.
type Machine struct {
	role          role.Role
	steps         []role.Step
	index         int
	errorsVisible bool
}

// New constructs a machine positioned at step 0 of the role's sequence.
func New(r role.Role) *Machine {
	return &Machine{
		role:  r,
		steps: role.Get(r).Steps,
	}
}

// Role returns the active role.
func (m *Machine) Role() role.Role { return m.role }

// Steps returns the ordered step sequence.
func (m *Machine) Steps() []role.Step { return m.steps }

// Index returns the current step index.
func (m *Machine) Index() int { return m.index }

// Current returns the active step.
func (m *Machine) Current() role.Step { return m.steps[m.index] }

// AtEnd reports whether the machine sits on the terminal review step.
func (m *Machine) AtEnd() bool { return m.index == len(m.steps)-1 }

// ErrorsVisible reports whether gating failures should be surfaced.
func (m *Machine) ErrorsVisible() bool { return m.errorsVisible }

// MissingGatingFields returns the current step's gating fields that are still
// empty on the brief.
func (m *Machine) MissingGatingFields(b *domain.Brief) []domain.Field {
	var missing []domain.Field
	for _, f := range m.Current().Gating {
		if !domain.Present(b, f) {
			missing = append(missing, f)
		}
	}
	return missing
}

// Next advances one step if the current step's gating fields are all present
// on the brief. A refused advance stays put and makes errors visible; a
// successful one clears them. On the terminal step Next is a no-op.
func (m *Machine) Next(b *domain.Brief) bool {
	if len(m.MissingGatingFields(b)) > 0 {
		m.errorsVisible = true
		return false
	}
	if m.index < len(m.steps)-1 {
		m.index++
	}
	m.errorsVisible = false
	return true
}

// Prev moves back one step, clamped at 0. Never gated.
func (m *Machine) Prev() {
	if m.index > 0 {
		m.index--
	}
	m.errorsVisible = false
}

// GoTo jumps straight to a step index. The jump deliberately bypasses gating
// (a user may revisit a completed step from the sidebar); gating re-applies
// on the next forward attempt. Out-of-range indexes are clamped.
func (m *Machine) GoTo(index int) {
	if index < 0 {
		index = 0
	}
	if index > len(m.steps)-1 {
		index = len(m.steps) - 1
	}
	m.index = index
	m.errorsVisible = false
}

// SetRole swaps the step sequence for a new role and resets to step 0.
// The brief's field values are untouched; only navigation state changes.
func (m *Machine) SetRole(r role.Role) {
	m.role = r
	m.steps = role.Get(r).Steps
	m.index = 0
	m.errorsVisible = false
}
