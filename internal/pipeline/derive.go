package pipeline

import "github.com/tessro/dialogcoach/internal/roster"

// Input is the state the view is derived from.
type Input struct {
	// Employees is the selected coach's working list.
	Employees []roster.Employee
	CoachID   string
	Query     string
}

// View is everything the roster screen renders. The fields come from
// different stages on purpose and must not be collapsed into one list:
//
//   - Roster and Distribution ignore the search query, so the cadence widget
//     always describes the whole roster.
//   - WithoutCycle ignores both augmentation and the search query; the banner
//     speaks about the coach's real employees.
//   - Visible is the only search-filtered output.
type View struct {
	// Roster is the augmented roster sorted by next meeting date.
	Roster []roster.Employee
	// Visible is Roster filtered by the query, minus employees without a cycle.
	Visible      []roster.Employee
	Distribution []Segment

	WithoutCycle      []roster.Employee
	WithoutCycleCount int
}

// Derive runs augment, sort, search filter and cycle filter in that order.
// A nil augmenter behaves like NoAugment.
func Derive(in Input, aug Augmenter) View {
	if aug == nil {
		aug = NoAugment{}
	}

	sorted := SortByNextMeeting(aug.Augment(in.CoachID, in.Employees))
	visible := FilterVisibleCycle(FilterBySearch(sorted, in.Query))
	without, count := PartitionWithoutCycle(in.Employees)

	return View{
		Roster:            sorted,
		Visible:           visible,
		Distribution:      ComputeDistribution(sorted),
		WithoutCycle:      without,
		WithoutCycleCount: count,
	}
}

// Total is the number of employees on the (augmented) roster.
func (v View) Total() int {
	return len(v.Roster)
}
