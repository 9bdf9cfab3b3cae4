package roster

import "time"

var standardChannels = []string{"Blocks", "[Команда]", "Чат"}

func channels(extra ...string) []string {
	if len(extra) == 0 {
		out := make([]string, len(standardChannels))
		copy(out, standardChannels)
		return out
	}
	return append([]string{"Blocks", "[Команда]"}, extra...)
}

func builtinSelfRoster() []Employee {
	return []Employee{
		{
			ID: "1", FirstName: "Евгения", LastName: "Иванова", Patronymic: "Алексеевна",
			Initials: "ИЕ", AvatarColor: "#e59594", Role: "Дайвер",
			Channels:        channels(),
			NextMeetingDate: Date(2026, time.February, 12),
			Cycle:           CycleWeekly,
		},
		{
			ID: "2", FirstName: "Алексей", LastName: "Петров", Patronymic: "Сергеевич",
			Initials: "ПА", AvatarColor: "#95aee2", Role: "Дайвер",
			Channels:        channels("Чат + телефон"),
			NextMeetingDate: Date(2026, time.February, 15),
			Cycle:           CycleBiweekly,
		},
		{
			ID: "3", FirstName: "Ксения", LastName: "Камойлова", Patronymic: "Дмитриевна",
			Initials: "КК", AvatarColor: "#de9c7e", Role: "Дайвер",
			Channels:        channels(),
			NextMeetingDate: Date(2026, time.February, 20),
			Cycle:           CycleMonthly,
			ActiveCoach:     "Иванов Алексей",
		},
		{
			ID: "4", FirstName: "Иван", LastName: "Смирнов", Patronymic: "Павлович",
			Initials: "ИС", AvatarColor: "#82bad4", Role: "Дайвер",
			Channels:        channels(),
			NextMeetingDate: Date(2026, time.February, 22),
			Cycle:           CycleNone,
		},
		{
			ID: "5", FirstName: "Мария", LastName: "Кузнецова", Patronymic: "Игоревна",
			Initials: "МК", AvatarColor: "#d796c1", Role: "Дайвер",
			Channels:        channels(),
			NextMeetingDate: Date(2026, time.February, 25),
			Cycle:           CycleNone,
		},
	}
}

// Builtin returns the demo dataset shipped with the binary. Each call
// returns fresh slices, so callers may hold on to them freely.
func Builtin() *Dataset {
	self := builtinSelfRoster()
	return &Dataset{
		Coaches: []Coach{
			{
				ID: "coach-1", FirstName: "Александр", LastName: "Константинопольский", Patronymic: "Игоревич",
				IsSelf: true, Description: "Эксперт", Label: "Налоговый джедай",
			},
			{
				ID: "coach-2", FirstName: "Мария", LastName: "Сидорова", Patronymic: "Павловна",
				Description: "Эксперт", Label: "Команда роста выручки",
			},
			{
				ID: "coach-3", FirstName: "Дмитрий", LastName: "Козлов", Patronymic: "Алексеевич",
				Description: "Эксперт", Label: "Команда клиентского сервиса",
			},
			{
				ID: "coach-4", FirstName: "Ольга", LastName: "Николаева", Patronymic: "Сергеевна",
				Description: "Эксперт", Label: "Команда цифровых сервисов",
			},
		},
		Rosters: map[string][]Employee{
			"coach-1": self,
			"coach-2": {
				{
					ID: "c2-1", FirstName: "Светлана", LastName: "Громова", Patronymic: "Викторовна",
					Initials: "ГС", AvatarColor: "#e5a77f", Role: "Финансовый аналитик",
					Channels:        channels(),
					NextMeetingDate: Date(2026, time.March, 3),
					Cycle:           CycleWeekly,
				},
				{
					ID: "c2-2", FirstName: "Никита", LastName: "Фролов", Patronymic: "Ильич",
					Initials: "ФН", AvatarColor: "#8fb3e5", Role: "Кредитный эксперт",
					Channels:        channels("Чат + телефон"),
					NextMeetingDate: Date(2026, time.March, 7),
					Cycle:           CycleBiweekly,
				},
				{
					ID: "c2-3", FirstName: "Анна", LastName: "Чернова", Patronymic: "Олеговна",
					Initials: "ЧА", AvatarColor: "#d89bc7", Role: "Специалист по рискам",
					Channels:        []string{"Blocks", "[Команда]"},
					NextMeetingDate: Date(2026, time.March, 11),
					Cycle:           CycleMonthly,
					ActiveCoach:     "Мария Сидорова",
				},
			},
			"coach-3": {
				{
					ID: "c3-1", FirstName: "Татьяна", LastName: "Романова", Patronymic: "Андреевна",
					Initials: "РТ", AvatarColor: "#e5c07b", Role: "Оператор поддержки",
					Channels:        channels(),
					NextMeetingDate: Date(2026, time.March, 2),
					Cycle:           CycleWeekly,
				},
				{
					ID: "c3-2", FirstName: "Вадим", LastName: "Егоров", Patronymic: "Станиславович",
					Initials: "ЕВ", AvatarColor: "#7fb8de", Role: "Старший оператор поддержки",
					Channels:        channels("Чат + телефон"),
					NextMeetingDate: Date(2026, time.March, 6),
					Cycle:           CycleBiweekly,
					ActiveCoach:     "Дмитрий Козлов",
				},
				{
					ID: "c3-3", FirstName: "Инна", LastName: "Соколова", Patronymic: "Романовна",
					Initials: "СИ", AvatarColor: "#d999b8", Role: "Эксперт поддержки",
					Channels:        []string{"Blocks", "[Команда]"},
					NextMeetingDate: Date(2026, time.March, 9),
					Cycle:           CycleMonthly,
				},
				{
					ID: "c3-4", FirstName: "Максим", LastName: "Орлов", Patronymic: "Игоревич",
					Initials: "ОМ", AvatarColor: "#82bad4", Role: "Специалист по качеству",
					Channels:        channels(),
					NextMeetingDate: Date(2026, time.March, 15),
					Cycle:           CycleNone,
				},
			},
			"coach-4": {
				{
					ID: "c4-1", FirstName: "Полина", LastName: "Лебедева", Patronymic: "Михайловна",
					Initials: "ЛП", AvatarColor: "#f0a8a8", Role: "Продакт-менеджер",
					Channels:        []string{"Blocks", "[Команда]"},
					NextMeetingDate: Date(2026, time.March, 4),
					Cycle:           CycleWeekly,
				},
				{
					ID: "c4-2", FirstName: "Григорий", LastName: "Князев", Patronymic: "Дмитриевич",
					Initials: "КГ", AvatarColor: "#9bc0f5", Role: "Бизнес-аналитик",
					Channels:        channels(),
					NextMeetingDate: Date(2026, time.March, 8),
					Cycle:           CycleBiweekly,
				},
			},
		},
		Default: self,
	}
}
