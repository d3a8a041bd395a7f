// Package calendar computes the week structure of a timesheet month: the
// ISO-week span covering a month, per-day descriptors, and the month-selector
// entries shown before a timesheet is opened.
package calendar

import (
	"fmt"
	"time"
)

// WireMonth is the YYYY-MM format used by the timesheet service.
const WireMonth = "2006-01"

// WireDate is the YYYY-MM-DD format used for daily entries.
const WireDate = "2006-01-02"

// DayLabel is the DD-MMM-YYYY format used in validation messages and exports.
const DayLabel = "02-Jan-2006"

// Month is a calendar month anchor.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a YYYY-MM wire value.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(WireMonth, s)
	if err != nil {
		return Month{}, fmt.Errorf("parsing month %q: %w", s, err)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) String() string {
	return m.First().Format(WireMonth)
}

// First returns midnight UTC on the first day of the month.
func (m Month) First() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Last returns midnight UTC on the last day of the month.
func (m Month) Last() time.Time {
	return m.First().AddDate(0, 1, -1)
}

// Add returns the month n months after m (negative n goes back).
func (m Month) Add(n int) Month {
	return MonthOf(m.First().AddDate(0, n, 0))
}

// Contains reports whether t falls inside the month, ignoring time of day.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == m.Year && t.Month() == m.Month
}

// Range returns the "Feb 01 - Feb 29, 2024" display label for the month.
func (m Month) Range() string {
	return fmt.Sprintf("%s - %s, %d",
		m.First().Format("Jan 02"), m.Last().Format("Jan 02"), m.Year)
}

// Days returns every day of the month in order.
func (m Month) Days() []time.Time {
	var days []time.Time
	for d := m.First(); m.Contains(d); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// SameDay reports calendar-date equality, ignoring time of day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
