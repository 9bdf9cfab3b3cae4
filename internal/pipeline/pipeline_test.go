package pipeline

import (
	"math/rand/v2"
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/tessro/dialogcoach/internal/roster"
)

func feb(day int) time.Time {
	return roster.Date(2026, time.February, day)
}

// sampleRoster is coach-1's roster in the order the examples use.
func sampleRoster() []roster.Employee {
	return []roster.Employee{
		{ID: "1", LastName: "Иванова", FirstName: "Евгения", Patronymic: "Алексеевна", NextMeetingDate: feb(12), Cycle: roster.CycleWeekly},
		{ID: "2", LastName: "Петров", FirstName: "Алексей", Patronymic: "Сергеевич", NextMeetingDate: feb(15), Cycle: roster.CycleBiweekly},
		{ID: "3", LastName: "Камойлова", FirstName: "Ксения", Patronymic: "Дмитриевна", NextMeetingDate: feb(20), Cycle: roster.CycleMonthly},
		{ID: "4", LastName: "Смирнов", FirstName: "Иван", Patronymic: "Павлович", NextMeetingDate: feb(22), Cycle: roster.CycleNone},
		{ID: "5", LastName: "Кузнецова", FirstName: "Мария", Patronymic: "Игоревна", NextMeetingDate: feb(25), Cycle: roster.CycleNone},
	}
}

func ids(employees []roster.Employee) []string {
	out := make([]string, 0, len(employees))
	for _, e := range employees {
		out = append(out, e.ID)
	}
	return out
}

func TestSortByNextMeeting(t *testing.T) {
	in := []roster.Employee{
		{ID: "c", NextMeetingDate: feb(20)},
		{ID: "a", NextMeetingDate: feb(12)},
		{ID: "d", NextMeetingDate: feb(20)},
		{ID: "b", NextMeetingDate: feb(15)},
		{ID: "e", NextMeetingDate: feb(12)},
	}
	got := SortByNextMeeting(in)

	if diff := cmp.Diff([]string{"a", "e", "b", "c", "d"}, ids(got)); diff != "" {
		t.Errorf("SortByNextMeeting() order mismatch (-want +got):\n%s", diff)
	}
	if in[0].ID != "c" {
		t.Error("SortByNextMeeting() modified its input")
	}
}

func TestSortByNextMeeting_PermutationAndStable(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for round := 0; round < 50; round++ {
		n := rng.IntN(30)
		in := make([]roster.Employee, n)
		for i := range in {
			in[i] = roster.Employee{ID: strconv.Itoa(i), NextMeetingDate: feb(1 + rng.IntN(5))}
		}

		got := SortByNextMeeting(in)
		if len(got) != n {
			t.Fatalf("round %d: len = %d, want %d", round, len(got), n)
		}
		seen := make(map[string]bool, n)
		for i, e := range got {
			seen[e.ID] = true
			if i == 0 {
				continue
			}
			prev := got[i-1]
			if e.NextMeetingDate.Before(prev.NextMeetingDate) {
				t.Fatalf("round %d: dates decrease at %d", round, i)
			}
			if e.NextMeetingDate.Equal(prev.NextMeetingDate) {
				a, _ := strconv.Atoi(prev.ID)
				b, _ := strconv.Atoi(e.ID)
				if a > b {
					t.Fatalf("round %d: equal dates reordered (%s before %s)", round, prev.ID, e.ID)
				}
			}
		}
		if len(seen) != n {
			t.Fatalf("round %d: output is not a permutation", round)
		}
	}
}

func TestSortByNextMeeting_Empty(t *testing.T) {
	if got := SortByNextMeeting(nil); len(got) != 0 {
		t.Errorf("SortByNextMeeting(nil) = %v", got)
	}
}

func TestFilterBySearch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query", "", []string{"1", "2", "3", "4", "5"}},
		{"whitespace query", "   ", []string{"1", "2", "3", "4", "5"}},
		{"last name lowercase", "смирнов", []string{"4"}},
		{"mixed case with padding", "  ПЕТРОВ ", []string{"2"}},
		{"across name parts", "иванова евгения", []string{"1"}},
		{"patronymic", "игоревна", []string{"5"}},
		{"substring in several", "ов", []string{"1", "2", "3", "4", "5"}},
		{"no match", "сидорова", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(FilterBySearch(sampleRoster(), tt.query))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FilterBySearch(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestFilterVisibleCycle(t *testing.T) {
	in := sampleRoster()
	got := FilterVisibleCycle(in)

	if diff := cmp.Diff([]string{"1", "2", "3"}, ids(got)); diff != "" {
		t.Errorf("FilterVisibleCycle() mismatch (-want +got):\n%s", diff)
	}
	for _, e := range got {
		if e.Cycle == roster.CycleNone {
			t.Errorf("FilterVisibleCycle() kept %s without cycle", e.ID)
		}
	}
	if len(FilterVisibleCycle(nil)) != 0 {
		t.Error("FilterVisibleCycle(nil) not empty")
	}
}

func TestPartitionWithoutCycle(t *testing.T) {
	without, count := PartitionWithoutCycle(sampleRoster())
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	if diff := cmp.Diff([]string{"4", "5"}, ids(without)); diff != "" {
		t.Errorf("PartitionWithoutCycle() mismatch (-want +got):\n%s", diff)
	}

	without, count = PartitionWithoutCycle(nil)
	if count != 0 || len(without) != 0 {
		t.Errorf("PartitionWithoutCycle(nil) = %v, %d", without, count)
	}
}

func TestComputeDistribution(t *testing.T) {
	got := ComputeDistribution(sampleRoster())
	want := []Segment{
		{Cycle: roster.CycleWeekly, Count: 1, Percentage: 20, Color: "#de9c7e", Label: "Неделя"},
		{Cycle: roster.CycleBiweekly, Count: 1, Percentage: 20, Color: "#82bad4", Label: "2 недели"},
		{Cycle: roster.CycleMonthly, Count: 1, Percentage: 20, Color: "#d796c1", Label: "Месяц"},
		{Cycle: roster.CycleNone, Count: 2, Percentage: 40, Color: "#e1e1e1", Label: "Без цикла"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ComputeDistribution() mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeDistribution_Empty(t *testing.T) {
	if got := ComputeDistribution(nil); len(got) != 0 {
		t.Errorf("ComputeDistribution(nil) = %v, want empty", got)
	}
}

func TestComputeDistribution_OrderAndOmission(t *testing.T) {
	in := []roster.Employee{
		{ID: "1", Cycle: roster.CycleNone},
		{ID: "2", Cycle: roster.CycleMonthly},
		{ID: "3", Cycle: roster.CycleMonthly},
	}
	got := ComputeDistribution(in)
	if len(got) != 2 {
		t.Fatalf("segments = %d, want 2", len(got))
	}
	if got[0].Cycle != roster.CycleMonthly || got[1].Cycle != roster.CycleNone {
		t.Errorf("order = %s, %s; want monthly, noCycle", got[0].Cycle, got[1].Cycle)
	}
}

func TestComputeDistribution_NoNormalization(t *testing.T) {
	in := []roster.Employee{
		{ID: "1", Cycle: roster.CycleWeekly},
		{ID: "2", Cycle: roster.CycleBiweekly},
		{ID: "3", Cycle: roster.CycleMonthly},
	}
	var sum float64
	for _, s := range ComputeDistribution(in) {
		if s.Percentage != 100*1.0/3.0 {
			t.Errorf("%s percentage = %v, want %v", s.Cycle, s.Percentage, 100*1.0/3.0)
		}
		sum += s.Percentage
	}
	if sum < 99.99 || sum > 100.01 {
		t.Errorf("sum = %v, want about 100", sum)
	}
}
