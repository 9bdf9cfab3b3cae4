package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tessro/dialogcoach/internal/locale"
)

// Banner is the notification about employees without a meeting cycle.
type Banner struct {
	width      int
	count      int
	showAction bool
}

// NewBanner creates a new banner component.
func NewBanner() Banner {
	return Banner{}
}

// SetWidth updates the banner width.
func (b *Banner) SetWidth(width int) {
	b.width = width
}

// Set updates the count and whether the action hint is offered.
func (b *Banner) Set(count int, showAction bool) {
	b.count = count
	b.showAction = showAction
}

// Visible reports whether the banner renders anything.
func (b Banner) Visible() bool {
	return b.count > 0
}

// View renders the banner, or "" when there is nothing to report.
func (b Banner) View() string {
	if !b.Visible() {
		return ""
	}
	lines := []string{
		bannerTitleStyle.Render("⚠ Обратите внимание"),
		locale.WithoutActivity(b.count),
	}
	if b.showAction {
		lines = append(lines, bannerActionStyle.Render("a: Перейти к сотрудникам"))
	}
	return bannerStyle.Width(b.width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
