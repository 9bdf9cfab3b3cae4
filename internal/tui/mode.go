package tui

import (
	"errors"

	"github.com/tessro/dialogcoach/internal/coordinator"
)

// Mode represents the current interaction mode of the TUI.
// Only one mode can be active at a time.
type Mode int

const (
	// ModeNormal is the default mode for navigating the roster.
	ModeNormal Mode = iota
	// ModeSearch means the user is typing in the search line.
	ModeSearch
	// ModeAssign means the assign modal is open.
	ModeAssign
	// ModeCoach means the coach selector modal is open.
	ModeCoach
)

// String returns the string representation of a Mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeSearch:
		return "search"
	case ModeAssign:
		return "assign"
	case ModeCoach:
		return "coach"
	default:
		return "unknown"
	}
}

// ModeState centralizes the interaction mode of the TUI.
type ModeState struct {
	Mode Mode
}

// NewModeState creates a new ModeState in normal mode.
func NewModeState() ModeState {
	return ModeState{Mode: ModeNormal}
}

// Validation errors for mode state transitions.
var (
	ErrInvalidModeTransition = errors.New("invalid mode transition")
	ErrAlreadyInMode         = errors.New("already in this mode")
	ErrAssignUnavailable     = errors.New("assigning is only available on your own roster")
)

// EnterSearch transitions to search mode.
// Returns an error if already searching or a modal is open.
func (s *ModeState) EnterSearch() error {
	if s.Mode == ModeSearch {
		return ErrAlreadyInMode
	}
	if s.IsModal() {
		return ErrInvalidModeTransition
	}
	s.Mode = ModeSearch
	return nil
}

// ExitSearch returns from search mode to normal mode.
func (s *ModeState) ExitSearch() error {
	if s.Mode != ModeSearch {
		return ErrInvalidModeTransition
	}
	s.Mode = ModeNormal
	return nil
}

// OpenAssign opens the assign modal. canAssign reports whether the current
// roster belongs to the viewer.
func (s *ModeState) OpenAssign(canAssign bool) error {
	if !canAssign {
		return ErrAssignUnavailable
	}
	return s.openModal(ModeAssign)
}

// OpenCoach opens the coach selector modal.
func (s *ModeState) OpenCoach() error {
	return s.openModal(ModeCoach)
}

func (s *ModeState) openModal(m Mode) error {
	if s.Mode == m {
		return ErrAlreadyInMode
	}
	if s.IsModal() {
		return ErrInvalidModeTransition
	}
	s.Mode = m
	return nil
}

// CloseModal returns from either modal to normal mode.
func (s *ModeState) CloseModal() error {
	if !s.IsModal() {
		return ErrInvalidModeTransition
	}
	s.Mode = ModeNormal
	return nil
}

// SyncModal drops a modal mode that the coordinator no longer has open,
// for example after a dataset reload.
func (s *ModeState) SyncModal(open coordinator.Modal) {
	if s.IsModal() && s.Modal() != open {
		s.Mode = ModeNormal
	}
}

// Modal returns the coordinator modal matching the current mode.
func (s *ModeState) Modal() coordinator.Modal {
	switch s.Mode {
	case ModeAssign:
		return coordinator.ModalAssign
	case ModeCoach:
		return coordinator.ModalCoach
	default:
		return coordinator.ModalNone
	}
}

// IsNormal returns true if in normal mode.
func (s *ModeState) IsNormal() bool {
	return s.Mode == ModeNormal
}

// IsSearching returns true if in search mode.
func (s *ModeState) IsSearching() bool {
	return s.Mode == ModeSearch
}

// IsModal returns true if either modal is open.
func (s *ModeState) IsModal() bool {
	return s.Mode == ModeAssign || s.Mode == ModeCoach
}
