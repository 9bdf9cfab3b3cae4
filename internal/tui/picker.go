package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tessro/dialogcoach/internal/roster"
)

// PickerItem is one radio option in a modal.
type PickerItem struct {
	ID       string
	Title    string
	Subtitle string
	Label    string

	// Avatar is rendered on AvatarColor before the title when set.
	Avatar      string
	AvatarColor string
}

// Picker is a modal radio list with a confirm button. Moving the cursor
// does not choose; the user picks explicitly and confirming without a
// choice shows the validation message.
type Picker struct {
	width  int
	height int

	title      string
	confirm    string
	empty      string
	validation string

	items   []PickerItem
	cursor  int
	chosen  string
	invalid bool
}

// NewPicker creates a picker with static texts.
func NewPicker(title, confirm, empty, validation string) Picker {
	return Picker{
		title:      title,
		confirm:    confirm,
		empty:      empty,
		validation: validation,
	}
}

// NewAssignPicker creates the modal listing employees without a cycle.
func NewAssignPicker() Picker {
	return NewPicker(
		"Выбрать сотрудника",
		"Создать активность",
		"Нет сотрудников без цикла для выбора.",
		"Выберите сотрудника, чтобы продолжить",
	)
}

// NewCoachPicker creates the coach selector modal.
func NewCoachPicker() Picker {
	return NewPicker(
		"Выбрать диалог-коуча",
		"Выбрать коуча",
		"Нет доступных диалог-коучей для выбора.",
		"Выберите диалог-коуча, чтобы продолжить",
	)
}

// EmployeeItems converts employees into picker options.
func EmployeeItems(employees []roster.Employee) []PickerItem {
	items := make([]PickerItem, 0, len(employees))
	for _, e := range employees {
		items = append(items, PickerItem{
			ID:          e.ID,
			Title:       e.LastName + " " + e.FirstName,
			Subtitle:    e.Role,
			Label:       strings.Join(e.Channels, " · "),
			Avatar:      e.Initials,
			AvatarColor: e.AvatarColor,
		})
	}
	return items
}

// CoachItems converts coaches into picker options.
func CoachItems(coaches []roster.Coach) []PickerItem {
	items := make([]PickerItem, 0, len(coaches))
	for _, c := range coaches {
		items = append(items, PickerItem{
			ID:       c.ID,
			Title:    c.FullName(),
			Subtitle: c.Description,
			Label:    c.Label,
		})
	}
	return items
}

// SetSize updates the maximum modal dimensions.
func (p *Picker) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Open resets the picker with items. preselect, when it names an item, is
// chosen and under the cursor.
func (p *Picker) Open(items []PickerItem, preselect string) {
	p.items = items
	p.cursor = 0
	p.chosen = ""
	p.invalid = false
	for i, it := range items {
		if it.ID == preselect {
			p.cursor = i
			p.chosen = preselect
			break
		}
	}
}

// Items returns the current options.
func (p *Picker) Items() []PickerItem {
	return p.items
}

// Cursor returns the index under the cursor.
func (p *Picker) Cursor() int {
	return p.cursor
}

// Chosen returns the chosen item ID, or "".
func (p *Picker) Chosen() string {
	return p.chosen
}

// ValidationMessage returns the message shown after an empty confirm, or "".
func (p *Picker) ValidationMessage() string {
	if p.invalid {
		return p.validation
	}
	return ""
}

// MoveUp moves the cursor up one item.
func (p *Picker) MoveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// MoveDown moves the cursor down one item.
func (p *Picker) MoveDown() {
	if p.cursor < len(p.items)-1 {
		p.cursor++
	}
}

// Choose marks the item under the cursor and clears the validation message.
func (p *Picker) Choose() {
	if p.cursor < 0 || p.cursor >= len(p.items) {
		return
	}
	p.chosen = p.items[p.cursor].ID
	p.invalid = false
}

// Confirm returns the chosen ID. Without a choice it returns false and
// raises the validation message.
func (p *Picker) Confirm() (string, bool) {
	if p.chosen == "" {
		p.invalid = true
		return "", false
	}
	return p.chosen, true
}

// View renders the modal box.
func (p Picker) View() string {
	inner := p.width - 6 // border (2) and padding (4)
	if inner < 20 {
		inner = 20
	}

	parts := []string{modalTitleStyle.Render(p.title)}
	if len(p.items) == 0 {
		parts = append(parts, modalSubtitleStyle.Render(p.empty))
	}
	for i, it := range p.items {
		parts = append(parts, p.renderItem(i, it, inner))
	}
	parts = append(parts, "")
	if msg := p.ValidationMessage(); msg != "" {
		parts = append(parts, modalValidationStyle.Render(msg))
	}
	parts = append(parts, modalConfirmStyle.Render(p.confirm))

	return modalStyle.Width(inner + 4).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (p Picker) renderItem(index int, it PickerItem, width int) string {
	radio := "( )"
	if it.ID == p.chosen {
		radio = "(•)"
	}
	pointer := "  "
	if index == p.cursor {
		pointer = modalCursorStyle.Render("> ")
	}

	title := it.Title
	if it.Avatar != "" {
		title = avatarStyle.Background(lipgloss.Color(it.AvatarColor)).Render(it.Avatar) + " " + title
	}
	first := pointer + radio + " " + cell(title, width-6)

	lines := []string{first}
	for _, sub := range []string{it.Subtitle, it.Label} {
		if sub != "" {
			lines = append(lines, "      "+modalSubtitleStyle.Render(cell(sub, width-6)))
		}
	}
	return strings.Join(lines, "\n")
}
