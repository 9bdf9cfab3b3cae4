package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor = lipgloss.Color("#7C3AED") // Purple
	mutedColor   = lipgloss.Color("#6B7280") // Gray
	errorColor   = lipgloss.Color("#EF4444") // Red
	warningColor = lipgloss.Color("#F59E0B") // Amber

	// Header styles
	headerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF")).
				Padding(0, 1)

	coachWidgetStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(mutedColor).
				Padding(0, 1)

	coachWidgetTitleStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	coachNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	coachLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A0A0A0"))

	resetHintStyle = lipgloss.NewStyle().
			Foreground(primaryColor)

	// Notification banner
	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(warningColor).
			Padding(0, 1)

	bannerTitleStyle = lipgloss.NewStyle().
				Foreground(warningColor).
				Bold(true)

	bannerActionStyle = lipgloss.NewStyle().
				Foreground(primaryColor)

	// Search line
	searchLineStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#2D2D2D")).
			Padding(0, 1)

	searchLineFocusedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#3B3B3B")).
				Padding(0, 1)

	// Employee list
	listEmptyStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(1, 2)

	rowStyle = lipgloss.NewStyle().
			Padding(0, 1)

	rowSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#3B3B3B")).
				Padding(0, 1)

	avatarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1F1F1F")).
			Bold(true).
			Padding(0, 1)

	roleStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	channelsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A0A0A0"))

	chipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#4B3B6B")).
			Padding(0, 1)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	cycleStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// Segment bar
	segmentHeaderStyle = lipgloss.NewStyle().
				Bold(true)

	segmentCountStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	// Modals
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)

	modalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	modalCursorStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	modalSubtitleStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	modalValidationStyle = lipgloss.NewStyle().
				Foreground(errorColor)

	modalConfirmStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(primaryColor).
				Padding(0, 2)

	// Status bar style
	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)

	// Error display styles
	errorBarStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Padding(0, 1)
)
