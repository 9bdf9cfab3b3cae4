package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tessro/dialogcoach/internal/roster"
)

const (
	headerTitle        = "Список сотрудников"
	coachWidgetTitle   = "Диалог-коуч"
	ownRosterLabel     = "Ты смотришь своих сотрудников"
	foreignRosterLabel = "Ты смотришь сотрудников другого диалог-коуча"
)

// Header displays the page title and the dialog coach widget.
type Header struct {
	width int

	coach     roster.Coach
	isDefault bool
}

// NewHeader creates a new header component.
func NewHeader() Header {
	return Header{isDefault: true}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetCoach updates the coach shown in the widget. isDefault hides the reset hint.
func (h *Header) SetCoach(coach roster.Coach, isDefault bool) {
	h.coach = coach
	h.isDefault = isDefault
}

// CoachLabel returns the widget caption for the current coach.
func (h Header) CoachLabel() string {
	if h.coach.IsSelf {
		return ownRosterLabel
	}
	return foreignRosterLabel
}

// View renders the header.
func (h Header) View() string {
	title := headerTitleStyle.Render(headerTitle)

	lines := []string{coachWidgetTitleStyle.Render(coachWidgetTitle)}
	for _, part := range strings.Split(h.coach.DisplayName(), "\n") {
		lines = append(lines, coachNameStyle.Render(part))
	}
	lines = append(lines, coachLabelStyle.Render(h.CoachLabel()))
	if !h.isDefault {
		lines = append(lines, resetHintStyle.Render("r: Сбросить"))
	}
	widget := coachWidgetStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	spacerWidth := h.width - lipgloss.Width(title) - lipgloss.Width(widget)
	if spacerWidth < 1 {
		spacerWidth = 1
	}
	spacer := strings.Repeat(" ", spacerWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, title, spacer, widget)
}
