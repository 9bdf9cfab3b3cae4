// Package roster holds the dialog coach reference data: coaches, their
// employee rosters and the meeting cycle tables.
package roster

import "time"

// Cycle is the cadence at which a coach meets an employee.
type Cycle string

const (
	CycleWeekly   Cycle = "weekly"
	CycleBiweekly Cycle = "biweekly"
	CycleMonthly  Cycle = "monthly"
	CycleNone     Cycle = "noCycle"
)

// cycleOrder is the display order used by every summary.
var cycleOrder = []Cycle{CycleWeekly, CycleBiweekly, CycleMonthly, CycleNone}

// Cycles returns all cycle values in display order.
func Cycles() []Cycle {
	out := make([]Cycle, len(cycleOrder))
	copy(out, cycleOrder)
	return out
}

var cycleLabels = map[Cycle]string{
	CycleWeekly:   "Раз в неделю",
	CycleBiweekly: "Раз в 2 недели",
	CycleMonthly:  "Раз в месяц",
	CycleNone:     "Без цикла",
}

var cycleLegendLabels = map[Cycle]string{
	CycleWeekly:   "Неделя",
	CycleBiweekly: "2 недели",
	CycleMonthly:  "Месяц",
	CycleNone:     "Без цикла",
}

var cycleColors = map[Cycle]string{
	CycleWeekly:   "#de9c7e", // sand
	CycleBiweekly: "#82bad4", // sky
	CycleMonthly:  "#d796c1", // flamingo
	CycleNone:     "#e1e1e1", // neutral
}

// Valid reports whether c is one of the four known cycles.
func (c Cycle) Valid() bool {
	_, ok := cycleLabels[c]
	return ok
}

// Label returns the long label shown next to an employee, e.g. "Раз в неделю".
func (c Cycle) Label() string {
	return cycleLabels[c]
}

// LegendLabel returns the short label used in the distribution legend.
func (c Cycle) LegendLabel() string {
	return cycleLegendLabels[c]
}

// Color returns the hex color of the cycle's segment.
func (c Cycle) Color() string {
	return cycleColors[c]
}

func (c Cycle) String() string {
	return string(c)
}

// Employee is a single person on a coach's roster.
type Employee struct {
	ID          string
	FirstName   string
	LastName    string
	Patronymic  string
	Initials    string
	AvatarColor string
	Role        string
	Channels    []string

	// NextMeetingDate is a calendar date; the time of day is always midnight UTC.
	NextMeetingDate time.Time
	Cycle           Cycle

	// ActiveCoach names another coach currently working with the employee.
	// Display only.
	ActiveCoach string
}

// FullName returns "<last> <first> <patronymic>", the form used for search.
func (e Employee) FullName() string {
	return e.LastName + " " + e.FirstName + " " + e.Patronymic
}

// Coach is a dialog coach. Coaches are immutable reference data.
type Coach struct {
	ID          string
	FirstName   string
	LastName    string
	Patronymic  string
	IsSelf      bool
	Description string
	Label       string
}

// FullName returns "<last> <first> <patronymic>".
func (c Coach) FullName() string {
	return c.LastName + " " + c.FirstName + " " + c.Patronymic
}

// DisplayName returns the two-line form shown in the coach widget.
func (c Coach) DisplayName() string {
	return c.LastName + "\n" + c.FirstName
}

// Dataset is the complete set of coaches and rosters for one process.
type Dataset struct {
	Coaches []Coach
	Rosters map[string][]Employee

	// Default is the roster used for a coach with no dedicated entry.
	Default []Employee
}

// Coach looks up a coach by id.
func (d *Dataset) Coach(id string) (Coach, bool) {
	if d == nil {
		return Coach{}, false
	}
	for _, c := range d.Coaches {
		if c.ID == id {
			return c, true
		}
	}
	return Coach{}, false
}

// DefaultCoach returns the first coach, or the zero Coach for an empty dataset.
func (d *Dataset) DefaultCoach() Coach {
	if d == nil || len(d.Coaches) == 0 {
		return Coach{}
	}
	return d.Coaches[0]
}

// RosterFor returns the roster for coachID, falling back to Default.
func (d *Dataset) RosterFor(coachID string) []Employee {
	if d == nil {
		return nil
	}
	if employees, ok := d.Rosters[coachID]; ok {
		return employees
	}
	return d.Default
}

// Date returns the calendar date y-m-d as midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
