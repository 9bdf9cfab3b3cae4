package pipeline

import (
	"math/rand/v2"
	"slices"
	"strconv"

	"github.com/tessro/dialogcoach/internal/roster"
)

// DefaultSyntheticCount is how many demo employees Synthetic adds when Count is unset.
const DefaultSyntheticCount = 10

// Augmenter extends a coach's roster before it is sorted and filtered.
type Augmenter interface {
	Augment(coachID string, employees []roster.Employee) []roster.Employee
}

// NoAugment passes rosters through unchanged.
type NoAugment struct{}

// Augment returns a copy of employees.
func (NoAugment) Augment(_ string, employees []roster.Employee) []roster.Employee {
	return slices.Clone(employees)
}

// Fixed pools for generated demo employees.
var (
	syntheticCycles      = []roster.Cycle{roster.CycleWeekly, roster.CycleBiweekly, roster.CycleMonthly}
	syntheticFirstNames  = []string{"Олег", "Наталья", "Фёдор", "Софья", "Роман", "Елена"}
	syntheticLastNames   = []string{"Александров", "Борисова", "Карпов", "Лебедев", "Орлова"}
	syntheticPatronymics = []string{"Игоревич", "Алексеевна", "Павлович", "Сергеевна", "Дмитриевна"}
	syntheticColors      = []string{"#e59594", "#95aee2", "#de9c7e", "#82bad4", "#d796c1"}
	syntheticChannels    = [][]string{
		{"Blocks", "[Команда]", "Чат"},
		{"Blocks", "[Команда]", "Чат + телефон"},
	}
)

// Synthetic pads one coach's roster with generated demo employees.
//
// Generation draws from a PCG source seeded with Seed on every call, so the
// same seed and roster always produce the same employees.
type Synthetic struct {
	// CoachID is the only coach whose roster is padded.
	CoachID string
	// Count is the number of employees to add; 0 means DefaultSyntheticCount.
	Count int
	Seed  uint64
}

// NewSynthetic returns a Synthetic augmenter for coachID.
func NewSynthetic(coachID string, count int, seed uint64) *Synthetic {
	return &Synthetic{CoachID: coachID, Count: count, Seed: seed}
}

// Augment appends generated employees when coachID matches; otherwise it
// returns a copy of employees.
func (s *Synthetic) Augment(coachID string, employees []roster.Employee) []roster.Employee {
	out := slices.Clone(employees)
	if s == nil || s.CoachID == "" || coachID != s.CoachID {
		return out
	}
	count := s.Count
	if count == 0 {
		count = DefaultSyntheticCount
	}
	return append(out, s.generate(employees, count)...)
}

func (s *Synthetic) generate(base []roster.Employee, count int) []roster.Employee {
	if len(base) == 0 || count <= 0 {
		return nil
	}

	existing := make(map[string]bool, len(base)+count)
	earliest := base[0].NextMeetingDate
	for _, e := range base {
		existing[e.ID] = true
		if e.NextMeetingDate.Before(earliest) {
			earliest = e.NextMeetingDate
		}
	}

	rng := rand.New(rand.NewPCG(s.Seed, s.Seed^0x9e3779b97f4a7c15))
	pick := func(pool []string) string { return pool[rng.IntN(len(pool))] }

	generated := make([]roster.Employee, 0, count)
	for i := 0; i < count; i++ {
		firstName := pick(syntheticFirstNames)
		lastName := pick(syntheticLastNames)
		patronymic := pick(syntheticPatronymics)
		color := pick(syntheticColors)
		channels := slices.Clone(syntheticChannels[rng.IntN(len(syntheticChannels))])

		// Spread meetings across the month after the earliest one.
		offset := 1 + (i*3)%28

		id := "synthetic-" + strconv.Itoa(i+1)
		for existing[id] {
			id = "synthetic-" + id
		}
		existing[id] = true

		generated = append(generated, roster.Employee{
			ID:              id,
			FirstName:       firstName,
			LastName:        lastName,
			Patronymic:      patronymic,
			Initials:        roster.InitialsOf(lastName, firstName),
			AvatarColor:     color,
			Role:            "Дайвер",
			Channels:        channels,
			NextMeetingDate: earliest.AddDate(0, 0, offset),
			Cycle:           syntheticCycles[i%len(syntheticCycles)],
		})
	}
	return generated
}
