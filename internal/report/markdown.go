// Package report renders a coach's roster view as Markdown or as a standalone HTML page.
package report

import (
	"fmt"
	"strings"

	"github.com/tessro/dialogcoach/internal/locale"
	"github.com/tessro/dialogcoach/internal/pipeline"
	"github.com/tessro/dialogcoach/internal/roster"
)

// Markdown renders the roster summary for coach: the cadence distribution,
// employees without a cycle and the visible list.
func Markdown(view pipeline.View, coach roster.Coach) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Список сотрудников: %s\n\n", escapeText(coach.FullName()))
	if coach.Label != "" {
		fmt.Fprintf(&b, "_%s_\n\n", escapeText(coach.Label))
	}

	fmt.Fprintf(&b, "## В работе: %s\n\n", locale.Employees(view.Total()))
	b.WriteString("| Цикл | Сотрудников | Доля |\n")
	b.WriteString("|---|---:|---:|\n")
	for _, seg := range view.Distribution {
		fmt.Fprintf(&b, "| %s | %d | %.0f%% |\n", seg.Label, seg.Count, seg.Percentage)
	}
	b.WriteString("\n")

	b.WriteString("## Без цикла\n\n")
	if view.WithoutCycleCount == 0 {
		b.WriteString("Нет сотрудников без цикла.\n\n")
	} else {
		fmt.Fprintf(&b, "%s.\n\n", locale.WithoutActivity(view.WithoutCycleCount))
		for _, e := range view.WithoutCycle {
			fmt.Fprintf(&b, "- %s (%s)\n", escapeText(e.FullName()), escapeText(e.Role))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Сотрудники\n\n")
	if len(view.Visible) == 0 {
		b.WriteString("Нет сотрудников.\n")
		return b.String()
	}
	b.WriteString("| Сотрудник | Роль | Каналы | Встреча | Цикл |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, e := range view.Visible {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			escapeText(e.FullName()),
			escapeText(e.Role),
			escapeText(strings.Join(e.Channels, ", ")),
			locale.DayMonth(e.NextMeetingDate),
			e.Cycle.Label(),
		)
	}
	return b.String()
}

// markdownEscaper backslash-escapes the characters that start inline
// Markdown constructs.
var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"~", `\~`,
	"|", `\|`,
	"\n", " ",
)

// escapeText keeps a value from changing the layout of the report or breaking
// a table row: inline markup is escaped and newlines are folded.
func escapeText(s string) string {
	return markdownEscaper.Replace(s)
}
