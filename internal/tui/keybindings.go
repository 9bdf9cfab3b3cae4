package tui

import "github.com/charmbracelet/bubbles/key"

// KeyBindings defines all keyboard shortcuts for the TUI.
type KeyBindings struct {
	// Global keys
	Quit      key.Binding
	ForceQuit key.Binding

	// Navigation keys
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Roster actions
	Search key.Binding
	Assign key.Binding
	Coach  key.Binding
	Reset  key.Binding

	// Modal and input keys
	Choose key.Binding
	Submit key.Binding
	Cancel key.Binding
}

// DefaultKeyBindings returns the default key bindings.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "выход"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "выход"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "вверх"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "вниз"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "в начало"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "в конец"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "поиск"),
		),
		Assign: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "сотрудники без цикла"),
		),
		Coach: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "диалог-коуч"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "сбросить"),
		),

		Choose: key.NewBinding(
			key.WithKeys(" ", "space", "x"),
			key.WithHelp("space", "выбрать"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "подтвердить"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "закрыть"),
		),
	}
}
