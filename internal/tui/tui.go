// Package tui provides the Bubbletea-based terminal user interface for dialogcoach.
package tui

import (
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tessro/dialogcoach/internal/coordinator"
	"github.com/tessro/dialogcoach/internal/roster"
)

// Options configures the TUI.
type Options struct {
	// Store is the coordinator the TUI dispatches to. Required.
	Store *coordinator.Store

	// Reloads delivers replacement datasets, typically from a file watcher.
	Reloads <-chan *roster.Dataset
	// ReloadErrors delivers failed reloads for display.
	ReloadErrors <-chan error
}

// Model is the main Bubbletea model for the roster screen.
type Model struct {
	// Window dimensions
	width  int
	height int

	// UI state
	ready bool

	// Mode state (centralized mode management)
	modeState ModeState

	// Coordinator and the latest snapshot from it
	store *coordinator.Store
	snap  coordinator.Snapshot

	// Components
	header   Header
	banner   Banner
	search   SearchLine
	list     EmployeeList
	segments SegmentBar
	assign   Picker
	coach    Picker
	helpBar  HelpBar

	// Key bindings
	keys KeyBindings

	// Live reload sources
	reloads      <-chan *roster.Dataset
	reloadErrors <-chan error
}

// New creates a new TUI model.
func New(opts Options) Model {
	m := Model{
		modeState:    NewModeState(),
		store:        opts.Store,
		header:       NewHeader(),
		banner:       NewBanner(),
		search:       NewSearchLine(),
		list:         NewEmployeeList(),
		segments:     NewSegmentBar(),
		assign:       NewAssignPicker(),
		coach:        NewCoachPicker(),
		helpBar:      NewHelpBar(),
		keys:         DefaultKeyBindings(),
		reloads:      opts.Reloads,
		reloadErrors: opts.ReloadErrors,
	}
	m.applySnapshot(opts.Store.Snapshot())
	m.search.SetValue(m.snap.State.Query)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	slog.Debug("tui.Init: starting",
		"coach", m.snap.State.Coach.ID,
		"live_reload", m.reloads != nil,
	)
	return waitForReload(m.reloads, m.reloadErrors)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Загрузка..."
	}

	top := []string{m.header.View()}
	if m.banner.Visible() {
		top = append(top, m.banner.View())
	}
	top = append(top, m.search.View())
	bottom := []string{m.segments.View(), m.helpBar.View()}

	var body string
	switch m.modeState.Mode {
	case ModeAssign:
		body = m.placeModal(m.assign.View())
	case ModeCoach:
		body = m.placeModal(m.coach.View())
	default:
		body = m.list.View()
	}

	parts := append(top, body)
	parts = append(parts, bottom...)
	return strings.Join(parts, "\n")
}

// placeModal centers a modal in the list area.
func (m Model) placeModal(modal string) string {
	return lipgloss.Place(m.width, m.listHeight(), lipgloss.Center, lipgloss.Center, modal)
}

// Snapshot returns the latest snapshot the model rendered.
func (m Model) Snapshot() coordinator.Snapshot {
	return m.snap
}

// Mode returns the current interaction mode.
func (m Model) Mode() Mode {
	return m.modeState.Mode
}

// Run starts the TUI and blocks until it exits.
func Run(opts Options) error {
	slog.Debug("tui.Run: starting", "coach", opts.Store.Snapshot().State.Coach.ID)
	p := tea.NewProgram(
		New(opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	slog.Debug("tui.Run: program exited", "error", err)
	return err
}
