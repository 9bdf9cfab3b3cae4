// Package locale formats counts and dates for the ru-RU locale used by the roster screens.
package locale

import (
	"fmt"
	"time"
)

// genitiveMonths are month names in the form used after a day number.
var genitiveMonths = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// Plural picks the Russian plural form for n: one ("1 сотрудник"),
// few ("2 сотрудника") or many ("5 сотрудников"). 11-19 are always many.
func Plural(n int, one, few, many string) string {
	if n < 0 {
		n = -n
	}
	lastTwo := n % 100
	last := n % 10
	if lastTwo >= 11 && lastTwo <= 19 {
		return many
	}
	switch {
	case last == 1:
		return one
	case last >= 2 && last <= 4:
		return few
	default:
		return many
	}
}

// Employees returns "<n> сотрудник(а/ов)".
func Employees(n int) string {
	return fmt.Sprintf("%d %s", n, Plural(n, "сотрудник", "сотрудника", "сотрудников"))
}

// WithoutActivity returns the banner subtitle, e.g. "2 сотрудника без активности".
func WithoutActivity(n int) string {
	return Employees(n) + " без активности"
}

// DayMonth formats t as "12 февраля".
func DayMonth(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), genitiveMonths[t.Month()-1])
}
