package roster

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DateLayout is the on-disk format of meeting dates.
const DateLayout = "2006-01-02"

// ErrUnsupportedFormat is returned for roster files that are neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported roster file format")

// File is the on-disk shape of a roster file.
type File struct {
	// DefaultRoster names the coach whose roster is used as the fallback.
	// Empty means the first coach.
	DefaultRoster string                     `toml:"default_roster" yaml:"default_roster"`
	Coaches       []CoachEntry               `toml:"coaches" yaml:"coaches"`
	Rosters       map[string][]EmployeeEntry `toml:"rosters" yaml:"rosters"`
}

// CoachEntry is a coach in a roster file.
type CoachEntry struct {
	ID          string `toml:"id" yaml:"id"`
	FirstName   string `toml:"first_name" yaml:"first_name"`
	LastName    string `toml:"last_name" yaml:"last_name"`
	Patronymic  string `toml:"patronymic" yaml:"patronymic"`
	IsSelf      bool   `toml:"is_self,omitempty" yaml:"is_self,omitempty"`
	Description string `toml:"description,omitempty" yaml:"description,omitempty"`
	Label       string `toml:"label,omitempty" yaml:"label,omitempty"`
}

// MeetingDate is a YYYY-MM-DD date in a roster file. TOML files may write it
// quoted or as a native local date.
type MeetingDate string

// UnmarshalTOML implements toml.Unmarshaler.
func (m *MeetingDate) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		*m = MeetingDate(v)
	case time.Time:
		*m = MeetingDate(v.Format(DateLayout))
	default:
		return fmt.Errorf("next_meeting: want a YYYY-MM-DD date, got %T", v)
	}
	return nil
}

// EmployeeEntry is an employee in a roster file.
type EmployeeEntry struct {
	ID          string      `toml:"id" yaml:"id"`
	FirstName   string      `toml:"first_name" yaml:"first_name"`
	LastName    string      `toml:"last_name" yaml:"last_name"`
	Patronymic  string      `toml:"patronymic" yaml:"patronymic"`
	Initials    string      `toml:"initials,omitempty" yaml:"initials,omitempty"`
	AvatarColor string      `toml:"avatar_color,omitempty" yaml:"avatar_color,omitempty"`
	Role        string      `toml:"role,omitempty" yaml:"role,omitempty"`
	Channels    []string    `toml:"channels" yaml:"channels"`
	NextMeeting MeetingDate `toml:"next_meeting" yaml:"next_meeting"`
	Cycle       string      `toml:"cycle" yaml:"cycle"`
	ActiveCoach string      `toml:"active_coach,omitempty" yaml:"active_coach,omitempty"`
}

// Load reads and validates a roster file. The format is chosen by extension:
// .toml, .yaml or .yml.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &f); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	d, err := f.Dataset()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := Validate(d); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Dataset converts the file into a Dataset. It does not validate.
func (f *File) Dataset() (*Dataset, error) {
	d := &Dataset{
		Coaches: make([]Coach, 0, len(f.Coaches)),
		Rosters: make(map[string][]Employee, len(f.Rosters)),
	}
	for _, c := range f.Coaches {
		d.Coaches = append(d.Coaches, Coach(c))
	}

	for coachID, entries := range f.Rosters {
		employees := make([]Employee, 0, len(entries))
		for i, e := range entries {
			emp, err := e.employee()
			if err != nil {
				return nil, &ValidationError{
					Field:   fmt.Sprintf("rosters.%s[%d].next_meeting", coachID, i),
					Value:   string(e.NextMeeting),
					Message: "must be a YYYY-MM-DD date",
					Err:     err,
				}
			}
			employees = append(employees, emp)
		}
		d.Rosters[coachID] = employees
	}

	defaultID := f.DefaultRoster
	if defaultID != "" {
		if _, ok := d.Rosters[defaultID]; !ok {
			return nil, &ValidationError{
				Field:   "default_roster",
				Value:   defaultID,
				Message: "no roster for this coach",
				Err:     ErrUnknownDefaultRoster,
			}
		}
	} else if len(d.Coaches) > 0 {
		defaultID = d.Coaches[0].ID
	}
	d.Default = d.Rosters[defaultID]
	return d, nil
}

func (e EmployeeEntry) employee() (Employee, error) {
	var date time.Time
	if e.NextMeeting != "" {
		var err error
		date, err = time.Parse(DateLayout, string(e.NextMeeting))
		if err != nil {
			return Employee{}, err
		}
	}
	initials := e.Initials
	if initials == "" {
		initials = InitialsOf(e.LastName, e.FirstName)
	}
	return Employee{
		ID:              e.ID,
		FirstName:       e.FirstName,
		LastName:        e.LastName,
		Patronymic:      e.Patronymic,
		Initials:        initials,
		AvatarColor:     e.AvatarColor,
		Role:            e.Role,
		Channels:        e.Channels,
		NextMeetingDate: date,
		Cycle:           Cycle(e.Cycle),
		ActiveCoach:     e.ActiveCoach,
	}, nil
}

// FileFrom converts a dataset back into its on-disk shape. defaultRoster
// names the coach whose roster is the fallback.
func FileFrom(d *Dataset, defaultRoster string) File {
	f := File{
		DefaultRoster: defaultRoster,
		Coaches:       make([]CoachEntry, 0, len(d.Coaches)),
		Rosters:       make(map[string][]EmployeeEntry, len(d.Rosters)),
	}
	for _, c := range d.Coaches {
		f.Coaches = append(f.Coaches, CoachEntry(c))
	}
	for coachID, employees := range d.Rosters {
		entries := make([]EmployeeEntry, 0, len(employees))
		for _, e := range employees {
			entries = append(entries, EmployeeEntry{
				ID:          e.ID,
				FirstName:   e.FirstName,
				LastName:    e.LastName,
				Patronymic:  e.Patronymic,
				Initials:    e.Initials,
				AvatarColor: e.AvatarColor,
				Role:        e.Role,
				Channels:    e.Channels,
				NextMeeting: MeetingDate(e.NextMeetingDate.Format(DateLayout)),
				Cycle:       string(e.Cycle),
				ActiveCoach: e.ActiveCoach,
			})
		}
		f.Rosters[coachID] = entries
	}
	return f
}

// Encode writes f to w as "toml" or "yaml".
func Encode(w io.Writer, f File, format string) error {
	switch strings.ToLower(format) {
	case "toml":
		return toml.NewEncoder(w).Encode(f)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
}

// InitialsOf returns the first letters of last and first name, e.g. "ИЕ".
func InitialsOf(lastName, firstName string) string {
	return firstRune(lastName) + firstRune(firstName)
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
