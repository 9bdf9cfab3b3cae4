package roster

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleTOML = `
default_roster = "c1"

[[coaches]]
id = "c1"
first_name = "Александр"
last_name = "Константинопольский"
patronymic = "Игоревич"
is_self = true
label = "Налоговый джедай"

[[coaches]]
id = "c2"
first_name = "Мария"
last_name = "Сидорова"
patronymic = "Павловна"

[[rosters.c1]]
id = "1"
first_name = "Евгения"
last_name = "Иванова"
patronymic = "Алексеевна"
channels = ["Blocks", "Чат"]
next_meeting = "2026-02-12"
cycle = "weekly"

[[rosters.c1]]
id = "2"
first_name = "Иван"
last_name = "Смирнов"
patronymic = "Павлович"
initials = "ИС"
channels = ["Blocks"]
next_meeting = "2026-02-22"
cycle = "noCycle"
active_coach = "Иванов Алексей"
`

const sampleYAML = `
coaches:
  - id: c1
    first_name: Ольга
    last_name: Николаева
    patronymic: Сергеевна
rosters:
  c1:
    - id: "1"
      first_name: Полина
      last_name: Лебедева
      patronymic: Михайловна
      channels: [Blocks]
      next_meeting: "2026-03-04"
      cycle: biweekly
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_TOML(t *testing.T) {
	d, err := Load(writeFile(t, "roster.toml", sampleTOML))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(d.Coaches) != 2 {
		t.Fatalf("coaches = %d, want 2", len(d.Coaches))
	}
	if !d.Coaches[0].IsSelf || d.Coaches[0].Label != "Налоговый джедай" {
		t.Errorf("coach[0] = %+v", d.Coaches[0])
	}

	employees := d.RosterFor("c1")
	if len(employees) != 2 {
		t.Fatalf("roster c1 = %d employees, want 2", len(employees))
	}
	first := employees[0]
	if first.Initials != "ИЕ" {
		t.Errorf("derived initials = %q, want ИЕ", first.Initials)
	}
	if !first.NextMeetingDate.Equal(Date(2026, time.February, 12)) {
		t.Errorf("NextMeetingDate = %v", first.NextMeetingDate)
	}
	if employees[1].Cycle != CycleNone || employees[1].ActiveCoach != "Иванов Алексей" {
		t.Errorf("employee[1] = %+v", employees[1])
	}

	// c2 has no roster, so it gets the default (c1's).
	if got := d.RosterFor("c2"); len(got) != 2 {
		t.Errorf("RosterFor(c2) = %d employees, want default 2", len(got))
	}
}

func TestLoad_YAML(t *testing.T) {
	d, err := Load(writeFile(t, "roster.yaml", sampleYAML))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	// No default_roster: first coach's roster is the default.
	if len(d.Default) != 1 || d.Default[0].Cycle != CycleBiweekly {
		t.Errorf("Default = %+v", d.Default)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{
			name:    "unknown cycle",
			file:    "r.toml",
			content: "[[coaches]]\nid = \"c1\"\n[[rosters.c1]]\nid = \"1\"\nchannels = [\"Чат\"]\nnext_meeting = \"2026-01-01\"\ncycle = \"daily\"\n",
			wantErr: ErrInvalidCycle,
		},
		{
			name:    "roster for unknown coach",
			file:    "r.yml",
			content: "coaches:\n  - id: c1\nrosters:\n  c9:\n    - id: \"1\"\n      channels: [Чат]\n      next_meeting: \"2026-01-01\"\n      cycle: weekly\n",
			wantErr: ErrUnknownRosterCoach,
		},
		{
			name:    "default roster for unknown coach",
			file:    "r.toml",
			content: "default_roster = \"nope\"\n[[coaches]]\nid = \"c\"\n[[coaches]]\nid = \"d\"\n[[rosters.c]]\nid = \"1\"\nchannels = [\"Чат\"]\nnext_meeting = \"2026-01-01\"\ncycle = \"weekly\"\n",
			wantErr: ErrUnknownDefaultRoster,
		},
		{
			name:    "default roster for coach without roster",
			file:    "r.yaml",
			content: "default_roster: d\ncoaches:\n  - id: c\n  - id: d\nrosters:\n  c:\n    - id: \"1\"\n      channels: [Чат]\n      next_meeting: \"2026-01-01\"\n      cycle: weekly\n",
			wantErr: ErrUnknownDefaultRoster,
		},
		{
			name:    "unsupported extension",
			file:    "r.json",
			content: "{}",
			wantErr: ErrUnsupportedFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_BadDate(t *testing.T) {
	content := "[[coaches]]\nid = \"c1\"\n[[rosters.c1]]\nid = \"1\"\nchannels = [\"Чат\"]\nnext_meeting = \"12.02.2026\"\ncycle = \"weekly\"\n"
	_, err := Load(writeFile(t, "r.toml", content))
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Load() = %v, want *ValidationError", err)
	}
	if ve.Value != "12.02.2026" {
		t.Errorf("ValidationError.Value = %q", ve.Value)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !os.IsNotExist(err) {
		t.Errorf("Load(missing) = %v, want not-exist", err)
	}
}

func TestEncode_BuiltinLoadsBack(t *testing.T) {
	for _, format := range []string{"toml", "yaml"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, FileFrom(Builtin(), "coach-1"), format); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			d, err := Load(writeFile(t, "roster."+format, buf.String()))
			if err != nil {
				t.Fatalf("Load() error = %v\n%s", err, buf.String())
			}
			if len(d.Coaches) != 4 {
				t.Errorf("coaches = %d, want 4", len(d.Coaches))
			}
			if len(d.Default) != 5 {
				t.Errorf("default roster = %d, want 5", len(d.Default))
			}
		})
	}
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, File{}, "json"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Encode(json) = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoad_NativeTOMLDate(t *testing.T) {
	content := "[[coaches]]\nid = \"c1\"\n[[rosters.c1]]\nid = \"1\"\nchannels = [\"Чат\"]\nnext_meeting = 2026-02-12\ncycle = \"weekly\"\n"
	d, err := Load(writeFile(t, "r.toml", content))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got, want := d.RosterFor("c1")[0].NextMeetingDate, Date(2026, time.February, 12); !got.Equal(want) {
		t.Errorf("NextMeetingDate = %v, want %v", got, want)
	}
}

func TestMeetingDate_UnmarshalTOML(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    MeetingDate
		wantErr bool
	}{
		{"string", "2026-02-12", "2026-02-12", false},
		{"local date", time.Date(2026, time.February, 12, 0, 0, 0, 0, time.UTC), "2026-02-12", false},
		{"integer", int64(20260212), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m MeetingDate
			err := m.UnmarshalTOML(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalTOML() error = %v, wantErr %v", err, tt.wantErr)
			}
			if m != tt.want {
				t.Errorf("MeetingDate = %q, want %q", m, tt.want)
			}
		})
	}
}
