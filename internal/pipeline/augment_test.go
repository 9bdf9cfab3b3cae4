package pipeline

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tessro/dialogcoach/internal/roster"
)

func TestSynthetic_GeneratedFields(t *testing.T) {
	base := sampleRoster()
	got := NewSynthetic("coach-1", 10, 7).Augment("coach-1", base)

	if len(got) != len(base)+10 {
		t.Fatalf("len = %d, want %d", len(got), len(base)+10)
	}
	if diff := cmp.Diff(ids(base), ids(got[:len(base)])); diff != "" {
		t.Errorf("base employees changed (-want +got):\n%s", diff)
	}

	wantCycles := []roster.Cycle{roster.CycleWeekly, roster.CycleBiweekly, roster.CycleMonthly}
	earliest := feb(12)
	for i, e := range got[len(base):] {
		if want := wantCycles[i%3]; e.Cycle != want {
			t.Errorf("synthetic[%d].Cycle = %s, want %s", i, e.Cycle, want)
		}
		wantDate := earliest.AddDate(0, 0, 1+(i*3)%28)
		if !e.NextMeetingDate.Equal(wantDate) {
			t.Errorf("synthetic[%d].NextMeetingDate = %s, want %s", i, e.NextMeetingDate.Format("2006-01-02"), wantDate.Format("2006-01-02"))
		}
		if !slices.Contains(syntheticFirstNames, e.FirstName) {
			t.Errorf("synthetic[%d].FirstName = %q not from pool", i, e.FirstName)
		}
		if !slices.Contains(syntheticLastNames, e.LastName) {
			t.Errorf("synthetic[%d].LastName = %q not from pool", i, e.LastName)
		}
		if !slices.Contains(syntheticColors, e.AvatarColor) {
			t.Errorf("synthetic[%d].AvatarColor = %q not from pool", i, e.AvatarColor)
		}
		if len(e.Channels) != 3 {
			t.Errorf("synthetic[%d].Channels = %v", i, e.Channels)
		}
		if e.Initials != roster.InitialsOf(e.LastName, e.FirstName) {
			t.Errorf("synthetic[%d].Initials = %q", i, e.Initials)
		}
		if e.Role != "Дайвер" {
			t.Errorf("synthetic[%d].Role = %q", i, e.Role)
		}
	}
}

func TestSynthetic_SameSeedSameOutput(t *testing.T) {
	a := NewSynthetic("coach-1", 10, 99).Augment("coach-1", sampleRoster())
	b := NewSynthetic("coach-1", 10, 99).Augment("coach-1", sampleRoster())
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different rosters (-a +b):\n%s", diff)
	}

	// Repeated calls on one augmenter are stable too.
	aug := NewSynthetic("coach-1", 10, 99)
	if diff := cmp.Diff(aug.Augment("coach-1", sampleRoster()), aug.Augment("coach-1", sampleRoster())); diff != "" {
		t.Errorf("repeated Augment() differs:\n%s", diff)
	}
}

func TestSynthetic_UniqueIDs(t *testing.T) {
	base := []roster.Employee{
		{ID: "synthetic-1", NextMeetingDate: feb(1), Cycle: roster.CycleWeekly},
		{ID: "synthetic-synthetic-1", NextMeetingDate: feb(2), Cycle: roster.CycleWeekly},
		{ID: "synthetic-3", NextMeetingDate: feb(3), Cycle: roster.CycleWeekly},
	}
	got := NewSynthetic("x", 3, 1).Augment("x", base)

	want := []string{
		"synthetic-1", "synthetic-synthetic-1", "synthetic-3",
		"synthetic-synthetic-synthetic-1", "synthetic-2", "synthetic-synthetic-3",
	}
	if diff := cmp.Diff(want, ids(got)); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestSynthetic_PassThrough(t *testing.T) {
	tests := []struct {
		name    string
		aug     *Synthetic
		coachID string
		base    []roster.Employee
		wantLen int
	}{
		{"other coach", NewSynthetic("coach-1", 10, 1), "coach-2", sampleRoster(), 5},
		{"empty base", NewSynthetic("coach-1", 10, 1), "coach-1", nil, 0},
		{"negative count", NewSynthetic("coach-1", -1, 1), "coach-1", sampleRoster(), 5},
		{"disabled", NewSynthetic("", 10, 1), "", sampleRoster(), 5},
		{"nil augmenter", nil, "coach-1", sampleRoster(), 5},
		{"default count", NewSynthetic("coach-1", 0, 1), "coach-1", sampleRoster(), 5 + DefaultSyntheticCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.aug.Augment(tt.coachID, tt.base)
			if len(got) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(got), tt.wantLen)
			}
		})
	}
}

func TestNoAugment(t *testing.T) {
	base := sampleRoster()
	got := NoAugment{}.Augment("coach-1", base)
	if diff := cmp.Diff(base, got); diff != "" {
		t.Errorf("NoAugment changed roster:\n%s", diff)
	}
	got[0].ID = "changed"
	if base[0].ID == "changed" {
		t.Error("NoAugment returned the input slice")
	}
}
