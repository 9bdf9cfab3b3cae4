package coordinator

import "github.com/tessro/dialogcoach/internal/roster"

// Action is a user intent. Apply must be pure.
type Action interface {
	Apply(d *roster.Dataset, s State) State
}

// SelectCoach confirms a choice in the coach modal.
type SelectCoach struct {
	CoachID string
}

func (a SelectCoach) Apply(d *roster.Dataset, s State) State {
	return SwitchRoster(d, s, a.CoachID)
}

// Reset returns to the default coach.
type Reset struct{}

func (Reset) Apply(d *roster.Dataset, s State) State {
	return ResetCoach(d, s)
}

// SetQuery updates the search text.
type SetQuery struct {
	Query string
}

func (a SetQuery) Apply(_ *roster.Dataset, s State) State {
	s.Query = a.Query
	return s
}

// AssignCycle confirms a choice in the assignment modal and closes it.
// It is ignored when the viewer cannot assign on the current roster.
type AssignCycle struct {
	EmployeeID string
}

func (a AssignCycle) Apply(_ *roster.Dataset, s State) State {
	if !s.CanAssign() {
		return s
	}
	s.Employees = AssignDefaultCycle(s.Employees, a.EmployeeID)
	s.Modal = ModalNone
	return s
}

// OpenModal opens m. The assignment modal only opens on the viewer's own roster.
type OpenModal struct {
	Modal Modal
}

func (a OpenModal) Apply(_ *roster.Dataset, s State) State {
	if a.Modal == ModalAssign && !s.CanAssign() {
		return s
	}
	s.Modal = a.Modal
	return s
}

// CloseModal closes whichever modal is open.
type CloseModal struct{}

func (CloseModal) Apply(_ *roster.Dataset, s State) State {
	s.Modal = ModalNone
	return s
}

// Reduce applies a to s. A nil action returns s unchanged.
func Reduce(d *roster.Dataset, s State, a Action) State {
	if a == nil {
		return s
	}
	return a.Apply(d, s)
}
