package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/tessro/dialogcoach/internal/locale"
	"github.com/tessro/dialogcoach/internal/roster"
)

// rowHeight is the number of lines one employee occupies, separator included.
const rowHeight = 4

// EmployeeList displays a navigable list of employees.
type EmployeeList struct {
	width     int
	height    int
	employees []roster.Employee
	selected  int
	offset    int
	query     string
}

// NewEmployeeList creates a new employee list component.
func NewEmployeeList() EmployeeList {
	return EmployeeList{}
}

// SetSize updates the component dimensions.
func (l *EmployeeList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.clampOffset()
}

// SetEmployees replaces the rendered employees. query is only used for the
// empty state text.
func (l *EmployeeList) SetEmployees(employees []roster.Employee, query string) {
	l.employees = employees
	l.query = query
	// Adjust selection if list shrunk
	if l.selected >= len(employees) && len(employees) > 0 {
		l.selected = len(employees) - 1
	}
	if len(employees) == 0 {
		l.selected = 0
	}
	l.clampOffset()
}

// Employees returns the current list.
func (l *EmployeeList) Employees() []roster.Employee {
	return l.employees
}

// Selected returns the currently selected employee, or nil if none.
func (l *EmployeeList) Selected() *roster.Employee {
	if len(l.employees) == 0 || l.selected < 0 || l.selected >= len(l.employees) {
		return nil
	}
	return &l.employees[l.selected]
}

// SelectedIndex returns the current selection index.
func (l *EmployeeList) SelectedIndex() int {
	return l.selected
}

// MoveUp moves selection up one item.
func (l *EmployeeList) MoveUp() {
	if l.selected > 0 {
		l.selected--
	}
	l.clampOffset()
}

// MoveDown moves selection down one item.
func (l *EmployeeList) MoveDown() {
	if l.selected < len(l.employees)-1 {
		l.selected++
	}
	l.clampOffset()
}

// MoveToTop moves selection to the first item.
func (l *EmployeeList) MoveToTop() {
	l.selected = 0
	l.clampOffset()
}

// MoveToBottom moves selection to the last item.
func (l *EmployeeList) MoveToBottom() {
	if len(l.employees) > 0 {
		l.selected = len(l.employees) - 1
	}
	l.clampOffset()
}

// pageSize is how many rows fit in the current height.
func (l *EmployeeList) pageSize() int {
	n := l.height / rowHeight
	if n < 1 {
		n = 1
	}
	return n
}

// clampOffset scrolls so the selection stays on screen.
func (l *EmployeeList) clampOffset() {
	page := l.pageSize()
	if l.selected < l.offset {
		l.offset = l.selected
	}
	if l.selected >= l.offset+page {
		l.offset = l.selected - page + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// EmptyText is shown when no employee is visible.
func (l EmployeeList) EmptyText() string {
	if strings.TrimSpace(l.query) != "" {
		return "Никого не нашли по запросу «" + strings.TrimSpace(l.query) + "»"
	}
	return "Нет сотрудников"
}

// View renders the employee list.
func (l EmployeeList) View() string {
	if len(l.employees) == 0 {
		return listEmptyStyle.Width(l.width).Height(l.height).Render(l.EmptyText())
	}

	end := l.offset + l.pageSize()
	if end > len(l.employees) {
		end = len(l.employees)
	}
	var rows []string
	for i := l.offset; i < end; i++ {
		rows = append(rows, l.renderEmployee(i, l.employees[i]))
	}
	lines := strings.Split(strings.Join(rows, "\n\n"), "\n")
	if l.height > 0 && len(lines) > l.height {
		lines = lines[:l.height]
	}
	return lipgloss.NewStyle().Width(l.width).Height(l.height).Render(strings.Join(lines, "\n"))
}

// renderEmployee renders one employee as three lines: role and date, name
// and cycle, channels and the active coach chip.
func (l EmployeeList) renderEmployee(index int, e roster.Employee) string {
	avatar := avatarStyle.Background(lipgloss.Color(e.AvatarColor)).Render(e.Initials)
	indent := strings.Repeat(" ", lipgloss.Width(avatar)+1)

	inner := l.width - 2 // row padding
	left := inner - lipgloss.Width(avatar) - 1

	date := dateStyle.Render(locale.DayMonth(e.NextMeetingDate))
	cycle := cycleStyle.Render(e.Cycle.Label())
	rightWidth := max(lipgloss.Width(date), lipgloss.Width(cycle))

	lines := []string{
		avatar + " " + spread(roleStyle.Render(cell(e.Role, left-rightWidth-1)), date, left),
		indent + spread(nameStyle.Render(cell(e.FullName(), left-rightWidth-1)), cycle, left),
	}

	third := channelsStyle.Render(cell(strings.Join(e.Channels, ", "), left))
	if e.ActiveCoach != "" {
		chip := chipStyle.Render(cell("С активностью работает "+e.ActiveCoach, left-2))
		third = lipgloss.JoinVertical(lipgloss.Left, third, indent+chip)
	}
	lines = append(lines, indent+third)

	row := strings.Join(lines, "\n")
	if index == l.selected {
		return rowSelectedStyle.Width(l.width).Render(row)
	}
	return rowStyle.Width(l.width).Render(row)
}

// cell truncates s to width columns with an ellipsis.
func cell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return truncate.StringWithTail(s, uint(width), "…")
}

// spread places right at the end of a line of the given width.
func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
