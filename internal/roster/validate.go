package roster

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrNoCoaches            = errors.New("dataset has no coaches")
	ErrEmptyCoachID         = errors.New("coach id cannot be empty")
	ErrDuplicateCoachID     = errors.New("duplicate coach id")
	ErrUnknownRosterCoach   = errors.New("roster references an unknown coach")
	ErrUnknownDefaultRoster = errors.New("default roster names a coach without a roster")
	ErrEmptyEmployeeID      = errors.New("employee id cannot be empty")
	ErrDuplicateEmployeeID  = errors.New("duplicate employee id")
	ErrInvalidCycle         = errors.New("unknown meeting cycle")
	ErrNoChannels           = errors.New("employee has no communication channels")
	ErrMissingMeetingDate   = errors.New("employee has no next meeting date")
)

// ValidationError wraps a validation error with the offending field.
type ValidationError struct {
	Field   string
	Value   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks a dataset at the data-entry boundary. Everything downstream
// assumes a validated dataset and does not re-check.
func Validate(d *Dataset) error {
	if d == nil || len(d.Coaches) == 0 {
		return &ValidationError{Field: "coaches", Message: "at least one coach is required", Err: ErrNoCoaches}
	}

	coachIDs := make(map[string]bool, len(d.Coaches))
	for i, c := range d.Coaches {
		field := fmt.Sprintf("coaches[%d].id", i)
		if c.ID == "" {
			return &ValidationError{Field: field, Message: "cannot be empty", Err: ErrEmptyCoachID}
		}
		if coachIDs[c.ID] {
			return &ValidationError{Field: field, Value: c.ID, Message: "is used by another coach", Err: ErrDuplicateCoachID}
		}
		coachIDs[c.ID] = true
	}

	for coachID, employees := range d.Rosters {
		if !coachIDs[coachID] {
			return &ValidationError{Field: "rosters", Value: coachID, Message: "no coach with this id", Err: ErrUnknownRosterCoach}
		}
		if err := ValidateEmployees("rosters."+coachID, employees); err != nil {
			return err
		}
	}
	return ValidateEmployees("default", d.Default)
}

// ValidateEmployees checks a single roster. prefix names the roster in errors.
func ValidateEmployees(prefix string, employees []Employee) error {
	seen := make(map[string]bool, len(employees))
	for i, e := range employees {
		field := fmt.Sprintf("%s[%d]", prefix, i)
		if e.ID == "" {
			return &ValidationError{Field: field + ".id", Message: "cannot be empty", Err: ErrEmptyEmployeeID}
		}
		if seen[e.ID] {
			return &ValidationError{Field: field + ".id", Value: e.ID, Message: "is used by another employee", Err: ErrDuplicateEmployeeID}
		}
		seen[e.ID] = true

		if !e.Cycle.Valid() {
			return &ValidationError{
				Field:   field + ".cycle",
				Value:   string(e.Cycle),
				Message: "must be one of weekly, biweekly, monthly, noCycle",
				Err:     ErrInvalidCycle,
			}
		}
		if len(e.Channels) == 0 {
			return &ValidationError{Field: field + ".channels", Message: "cannot be empty", Err: ErrNoChannels}
		}
		if e.NextMeetingDate.IsZero() {
			return &ValidationError{Field: field + ".next_meeting", Message: "is required", Err: ErrMissingMeetingDate}
		}
	}
	return nil
}
