package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// maxQueryLength limits the search query.
const maxQueryLength = 128

// SearchLine is the single-line name filter above the employee list.
type SearchLine struct {
	width   int
	focused bool
	input   textinput.Model
}

// NewSearchLine creates a new search line component.
func NewSearchLine() SearchLine {
	ti := textinput.New()
	ti.Placeholder = "Поиск по имени"
	ti.Prompt = "⌕ "
	ti.CharLimit = maxQueryLength
	return SearchLine{input: ti}
}

// SetWidth updates the component width.
func (s *SearchLine) SetWidth(width int) {
	s.width = width
	s.input.Width = width - 4 // padding (2) and prompt (2)
}

// SetFocused sets the focus state and returns the cursor blink command.
func (s *SearchLine) SetFocused(focused bool) tea.Cmd {
	s.focused = focused
	if focused {
		return s.input.Focus()
	}
	s.input.Blur()
	return nil
}

// IsFocused returns whether the search line is focused.
func (s *SearchLine) IsFocused() bool {
	return s.focused
}

// Update handles input events and returns a command.
func (s *SearchLine) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// Value returns the current query.
func (s *SearchLine) Value() string {
	return s.input.Value()
}

// SetValue replaces the query.
func (s *SearchLine) SetValue(v string) {
	s.input.SetValue(v)
}

// View renders the search line.
func (s SearchLine) View() string {
	style := searchLineStyle
	if s.focused {
		style = searchLineFocusedStyle
	}
	return style.Width(s.width).Render(s.input.View())
}
