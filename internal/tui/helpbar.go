package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// HelpBar displays context-sensitive keyboard shortcuts at the bottom of the TUI.
type HelpBar struct {
	width int
	keys  KeyBindings

	// Current context
	mode      Mode
	canAssign bool
	canReset  bool

	// Error display
	errorMsg string
}

// NewHelpBar creates a new help bar component.
func NewHelpBar() HelpBar {
	return HelpBar{
		keys: DefaultKeyBindings(),
	}
}

// SetWidth updates the help bar width.
func (h *HelpBar) SetWidth(width int) {
	h.width = width
}

// SetContext updates the help bar's context for rendering appropriate shortcuts.
func (h *HelpBar) SetContext(mode Mode, canAssign, canReset bool) {
	h.mode = mode
	h.canAssign = canAssign
	h.canReset = canReset
}

// SetError sets the error message to display.
func (h *HelpBar) SetError(msg string) {
	h.errorMsg = msg
}

// ClearError clears the error message.
func (h *HelpBar) ClearError() {
	h.errorMsg = ""
}

// Bindings returns the shortcuts shown for the current context.
func (h HelpBar) Bindings() []key.Binding {
	switch h.mode {
	case ModeSearch:
		return []key.Binding{h.keys.Submit, h.keys.Cancel}
	case ModeAssign, ModeCoach:
		return []key.Binding{h.keys.Down, h.keys.Choose, h.keys.Submit, h.keys.Cancel}
	}

	bindings := []key.Binding{h.keys.Down, h.keys.Search, h.keys.Coach}
	if h.canAssign {
		bindings = append(bindings, h.keys.Assign)
	}
	if h.canReset {
		bindings = append(bindings, h.keys.Reset)
	}
	return append(bindings, h.keys.Quit)
}

// View renders the help bar with context-sensitive keyboard shortcuts.
func (h HelpBar) View() string {
	// Error display takes top priority
	if h.errorMsg != "" {
		return errorBarStyle.Width(h.width).Render("Ошибка: " + h.errorMsg)
	}
	return statusStyle.Width(h.width).Render(formatHelp(h.Bindings()))
}

// formatHelp formats a list of key bindings as help text.
func formatHelp(bindings []key.Binding) string {
	var parts []string
	for _, b := range bindings {
		help := b.Help()
		parts = append(parts, help.Key+": "+help.Desc)
	}
	return strings.Join(parts, "  ")
}
