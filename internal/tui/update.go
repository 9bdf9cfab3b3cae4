package tui

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tessro/dialogcoach/internal/coordinator"
	"github.com/tessro/dialogcoach/internal/roster"
)

// errorDisplayDuration is how long a reload error stays in the help bar.
const errorDisplayDuration = 5 * time.Second

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}

		switch m.modeState.Mode {
		case ModeSearch:
			cmds = append(cmds, m.handleSearchKey(msg))
		case ModeAssign, ModeCoach:
			m.handleModalKey(msg)
		default:
			cmd, quit := m.handleNormalKey(msg)
			if quit {
				return m, tea.Quit
			}
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.updateLayout()

	case rosterReloadedMsg:
		m.applySnapshot(m.store.ReplaceDataset(msg.Dataset))
		// Refresh the open modal's options; the choice survives if still listed.
		switch m.modeState.Mode {
		case ModeAssign:
			m.assign.Open(EmployeeItems(m.snap.View.WithoutCycle), m.assign.Chosen())
		case ModeCoach:
			m.coach.Open(CoachItems(m.store.Dataset().Coaches), m.coach.Chosen())
		}
		cmds = append(cmds, waitForReload(m.reloads, m.reloadErrors))

	case rosterErrorMsg:
		slog.Warn("tui: roster reload failed", "error", msg.Err)
		m.helpBar.SetError(msg.Err.Error())
		cmds = append(cmds, clearErrorAfter(errorDisplayDuration))
		cmds = append(cmds, waitForReload(m.reloads, m.reloadErrors))

	case clearErrorMsg:
		m.helpBar.ClearError()
	}

	return m, tea.Batch(cmds...)
}

// handleSearchKey edits the query. Enter and esc leave search mode and keep
// the query; the list filters as the user types.
func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Submit), key.Matches(msg, m.keys.Cancel):
		_ = m.modeState.ExitSearch()
		m.search.SetFocused(false)
		m.syncHelp()
		return nil
	}

	cmd := m.search.Update(msg)
	if q := m.search.Value(); q != m.snap.State.Query {
		m.dispatch(coordinator.SetQuery{Query: q})
	}
	return cmd
}

// handleModalKey drives whichever modal is open.
func (m *Model) handleModalKey(msg tea.KeyMsg) {
	picker := &m.coach
	if m.modeState.Mode == ModeAssign {
		picker = &m.assign
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeModal()
	case key.Matches(msg, m.keys.Up):
		picker.MoveUp()
	case key.Matches(msg, m.keys.Down):
		picker.MoveDown()
	case key.Matches(msg, m.keys.Choose):
		picker.Choose()
	case key.Matches(msg, m.keys.Submit):
		id, ok := picker.Confirm()
		if !ok {
			return
		}
		if m.modeState.Mode == ModeAssign {
			slog.Debug("tui: assigning cycle", "employee", id)
			m.dispatch(coordinator.AssignCycle{EmployeeID: id})
		} else {
			slog.Debug("tui: switching coach", "coach", id)
			m.dispatch(coordinator.SelectCoach{CoachID: id})
		}
		_ = m.modeState.CloseModal()
		m.syncHelp()
	}
}

// handleNormalKey handles navigation and roster actions. The second result
// is true when the program should quit.
func (m *Model) handleNormalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return nil, true
	case key.Matches(msg, m.keys.Up):
		m.list.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.list.MoveDown()
	case key.Matches(msg, m.keys.Top):
		m.list.MoveToTop()
	case key.Matches(msg, m.keys.Bottom):
		m.list.MoveToBottom()

	case key.Matches(msg, m.keys.Search):
		if err := m.modeState.EnterSearch(); err == nil {
			m.syncHelp()
			return m.search.SetFocused(true), false
		}

	case key.Matches(msg, m.keys.Cancel):
		if m.snap.State.Query != "" {
			m.search.SetValue("")
			m.dispatch(coordinator.SetQuery{Query: ""})
		}

	case key.Matches(msg, m.keys.Assign):
		if err := m.modeState.OpenAssign(m.snap.State.CanAssign()); err != nil {
			slog.Debug("tui: assign modal unavailable", "error", err)
			return nil, false
		}
		m.dispatch(coordinator.OpenModal{Modal: coordinator.ModalAssign})
		m.assign.Open(EmployeeItems(m.snap.View.WithoutCycle), "")
		m.syncHelp()

	case key.Matches(msg, m.keys.Coach):
		if err := m.modeState.OpenCoach(); err != nil {
			return nil, false
		}
		m.dispatch(coordinator.OpenModal{Modal: coordinator.ModalCoach})
		m.coach.Open(CoachItems(m.store.Dataset().Coaches), m.snap.State.Coach.ID)
		m.syncHelp()

	case key.Matches(msg, m.keys.Reset):
		if !m.snap.State.IsDefaultCoach(m.store.Dataset()) {
			m.dispatch(coordinator.Reset{})
		}
	}
	return nil, false
}

// closeModal closes the open modal without applying it.
func (m *Model) closeModal() {
	_ = m.modeState.CloseModal()
	m.dispatch(coordinator.CloseModal{})
}

// dispatch sends a to the store and renders the result.
func (m *Model) dispatch(a coordinator.Action) {
	m.applySnapshot(m.store.Dispatch(a))
}

// applySnapshot pushes a snapshot into every component.
func (m *Model) applySnapshot(snap coordinator.Snapshot) {
	m.snap = snap
	st := snap.State

	m.modeState.SyncModal(st.Modal)
	m.header.SetCoach(st.Coach, st.IsDefaultCoach(m.store.Dataset()))
	m.banner.Set(snap.View.WithoutCycleCount, st.CanAssign())
	m.list.SetEmployees(snap.View.Visible, st.Query)
	m.segments.Set(snap.View.Distribution, snap.View.Total())
	if m.search.Value() != st.Query {
		m.search.SetValue(st.Query)
	}
	m.syncHelp()
	if m.ready {
		m.updateLayout()
	}
}

// syncHelp updates the help bar context from the current mode and state.
func (m *Model) syncHelp() {
	st := m.snap.State
	m.helpBar.SetContext(m.modeState.Mode, st.CanAssign(), !st.IsDefaultCoach(m.store.Dataset()))
}

// listHeight is the space left for the employee list (or a modal).
func (m Model) listHeight() int {
	used := lipgloss.Height(m.header.View()) +
		lipgloss.Height(m.search.View()) +
		lipgloss.Height(m.segments.View()) +
		lipgloss.Height(m.helpBar.View())
	if m.banner.Visible() {
		used += lipgloss.Height(m.banner.View())
	}
	h := m.height - used
	if h < 1 {
		h = 1
	}
	return h
}

// updateLayout recalculates component dimensions.
func (m *Model) updateLayout() {
	m.header.SetWidth(m.width)
	m.banner.SetWidth(m.width)
	m.search.SetWidth(m.width)
	m.segments.SetWidth(m.width)
	m.helpBar.SetWidth(m.width)

	h := m.listHeight()
	m.list.SetSize(m.width, h)
	m.assign.SetSize(m.width*2/3, h)
	m.coach.SetSize(m.width*2/3, h)
}

// waitForReload waits for the next reload result. It returns nil when there
// is nothing to listen to.
func waitForReload(reloads <-chan *roster.Dataset, errs <-chan error) tea.Cmd {
	if reloads == nil && errs == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case d, ok := <-reloads:
			if !ok {
				return nil
			}
			return rosterReloadedMsg{Dataset: d}
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			return rosterErrorMsg{Err: err}
		}
	}
}

// clearErrorAfter returns a command that clears the error display after d.
func clearErrorAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}
