// Package pipeline derives what the roster view renders from a coach's
// working employee list and the current search text.
//
// Every function here is pure: inputs are never modified and each result is a
// freshly allocated slice.
package pipeline

import (
	"slices"
	"strings"

	"github.com/tessro/dialogcoach/internal/roster"
)

// Segment is one cadence bucket of the distribution summary.
type Segment struct {
	Cycle      roster.Cycle
	Count      int
	Percentage float64
	Color      string
	Label      string
}

// SortByNextMeeting orders employees by next meeting date, earliest first.
// Employees with the same date keep their input order.
func SortByNextMeeting(employees []roster.Employee) []roster.Employee {
	out := slices.Clone(employees)
	slices.SortStableFunc(out, func(a, b roster.Employee) int {
		return a.NextMeetingDate.Compare(b.NextMeetingDate)
	})
	return out
}

// FilterBySearch keeps employees whose "<last> <first> <patronymic>" contains
// the trimmed query, ignoring case. A blank query keeps everyone.
func FilterBySearch(employees []roster.Employee, query string) []roster.Employee {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return slices.Clone(employees)
	}
	out := make([]roster.Employee, 0, len(employees))
	for _, e := range employees {
		if strings.Contains(strings.ToLower(e.FullName()), q) {
			out = append(out, e)
		}
	}
	return out
}

// FilterVisibleCycle drops employees without a meeting cycle.
func FilterVisibleCycle(employees []roster.Employee) []roster.Employee {
	out := make([]roster.Employee, 0, len(employees))
	for _, e := range employees {
		if e.Cycle != roster.CycleNone {
			out = append(out, e)
		}
	}
	return out
}

// PartitionWithoutCycle returns the employees without a meeting cycle, in
// input order, and how many there are.
func PartitionWithoutCycle(employees []roster.Employee) ([]roster.Employee, int) {
	out := make([]roster.Employee, 0)
	for _, e := range employees {
		if e.Cycle == roster.CycleNone {
			out = append(out, e)
		}
	}
	return out, len(out)
}

// ComputeDistribution counts employees per cycle. Segments come out in
// weekly, biweekly, monthly, noCycle order and empty cycles are omitted.
// Percentages are not normalized and need not sum to exactly 100.
func ComputeDistribution(employees []roster.Employee) []Segment {
	counts := make(map[roster.Cycle]int, 4)
	for _, e := range employees {
		counts[e.Cycle]++
	}
	total := len(employees)

	segments := make([]Segment, 0, 4)
	for _, c := range roster.Cycles() {
		n := counts[c]
		if n == 0 {
			continue
		}
		var pct float64
		if total > 0 {
			pct = 100 * float64(n) / float64(total)
		}
		segments = append(segments, Segment{
			Cycle:      c,
			Count:      n,
			Percentage: pct,
			Color:      c.Color(),
			Label:      c.LegendLabel(),
		})
	}
	return segments
}
