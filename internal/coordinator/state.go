// Package coordinator owns the roster screen's UI state and turns user
// intents into new immutable snapshots.
package coordinator

import (
	"slices"

	"github.com/tessro/dialogcoach/internal/roster"
)

// DefaultAssignedCycle is the cycle given to an employee resolved through
// the assignment modal.
const DefaultAssignedCycle = roster.CycleWeekly

// Modal identifies which modal, if any, is open.
type Modal int

const (
	ModalNone Modal = iota
	// ModalAssign lists employees without a cycle.
	ModalAssign
	// ModalCoach lets the viewer pick another coach.
	ModalCoach
)

func (m Modal) String() string {
	switch m {
	case ModalNone:
		return "none"
	case ModalAssign:
		return "assign"
	case ModalCoach:
		return "coach"
	default:
		return "unknown"
	}
}

// State is one immutable snapshot of the screen. Transitions return a new
// State and never modify the slices of the old one.
type State struct {
	Coach     roster.Coach
	Employees []roster.Employee
	Query     string
	Modal     Modal
}

// Initial returns the state for coachID, or for the dataset's default coach
// when coachID is empty or unknown.
func Initial(d *roster.Dataset, coachID string) State {
	coach, ok := d.Coach(coachID)
	if !ok {
		coach = d.DefaultCoach()
	}
	return State{
		Coach:     coach,
		Employees: d.RosterFor(coach.ID),
	}
}

// CanAssign reports whether the viewer may assign cycles, which is only the
// case on their own roster.
func (s State) CanAssign() bool {
	return s.Coach.IsSelf
}

// IsDefaultCoach reports whether the state shows the dataset's default coach.
func (s State) IsDefaultCoach(d *roster.Dataset) bool {
	return s.Coach.ID == d.DefaultCoach().ID
}

// AssignDefaultCycle returns a copy of employees where the employee with id
// has DefaultAssignedCycle. Unknown ids leave the list as it was.
func AssignDefaultCycle(employees []roster.Employee, id string) []roster.Employee {
	out := slices.Clone(employees)
	for i := range out {
		if out[i].ID == id {
			out[i].Cycle = DefaultAssignedCycle
		}
	}
	return out
}

// SwitchRoster selects coachID and replaces the working list with that
// coach's roster (or the default roster). For an unknown coach only the
// coach modal is closed.
func SwitchRoster(d *roster.Dataset, s State, coachID string) State {
	s.Modal = ModalNone
	coach, ok := d.Coach(coachID)
	if !ok {
		return s
	}
	s.Coach = coach
	s.Employees = d.RosterFor(coach.ID)
	return s
}

// ResetCoach goes back to the default coach and roster.
func ResetCoach(d *roster.Dataset, s State) State {
	return SwitchRoster(d, s, d.DefaultCoach().ID)
}
