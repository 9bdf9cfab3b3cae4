package locale

import (
	"testing"
	"time"
)

func TestEmployees(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 сотрудников"},
		{1, "1 сотрудник"},
		{2, "2 сотрудника"},
		{4, "4 сотрудника"},
		{5, "5 сотрудников"},
		{11, "11 сотрудников"},
		{12, "12 сотрудников"},
		{19, "19 сотрудников"},
		{21, "21 сотрудник"},
		{22, "22 сотрудника"},
		{111, "111 сотрудников"},
		{101, "101 сотрудник"},
	}
	for _, tt := range tests {
		if got := Employees(tt.n); got != tt.want {
			t.Errorf("Employees(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestWithoutActivity(t *testing.T) {
	if got := WithoutActivity(2); got != "2 сотрудника без активности" {
		t.Errorf("WithoutActivity(2) = %q", got)
	}
}

func TestDayMonth(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		{time.Date(2026, time.February, 12, 0, 0, 0, 0, time.UTC), "12 февраля"},
		{time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC), "3 марта"},
		{time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC), "31 января"},
		{time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC), "1 декабря"},
	}
	for _, tt := range tests {
		if got := DayMonth(tt.date); got != tt.want {
			t.Errorf("DayMonth(%s) = %q, want %q", tt.date.Format("2006-01-02"), got, tt.want)
		}
	}
}
