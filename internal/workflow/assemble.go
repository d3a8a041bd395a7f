package workflow

import (
	"fmt"
	"strings"

	"github.com/nconsulting/timecard/internal/calendar"
	"github.com/nconsulting/timecard/internal/domain"
	"github.com/nconsulting/timecard/internal/grid"
)

// ValidationError lists the in-month days that carry an explicit zero with no
// comment. No partial assembly happens when any day fails.
type ValidationError struct {
	Days []string // DD-MMM-YYYY labels in grid order
}

func (e *ValidationError) Error() string {
	return "comment is missing for the following days: " + strings.Join(e.Days, ", ")
}

// Assembly is the flattened month ready for the save/submit request, along
// with the client-computed totals the server stores as-is.
type Assembly struct {
	Entries     []domain.DailyEntry
	WorkingDays int     // Regular Time entries with hours > 0
	TotalHours  float64 // sum of Overtime hours
}

// Assemble walks every in-month day of every week across every row and
// flattens the grid into daily records. An untouched cell produces an entry
// with nil hours, which the server distinguishes from an explicit 0; the 0
// value is only accepted when the cell carries a comment.
func Assemble(weeks []calendar.WeekBucket, rowsByWeek map[int][]*grid.Row) (*Assembly, error) {
	var entries []domain.DailyEntry
	var invalid []string

	for weekIndex, week := range weeks {
		rows := rowsByWeek[weekIndex]
		for dayIndex, day := range week.Days {
			if !day.InMonth {
				continue
			}
			for _, r := range rows {
				hours, _ := r.HoursAt(dayIndex)
				note := r.Notes[dayIndex]
				payCode := r.PayCode
				if payCode == "" {
					payCode = domain.PayCodeRegular
				}

				if hours != nil && *hours == 0 && note.Comment == "" {
					invalid = append(invalid, day.Date.Format(calendar.DayLabel))
				}

				entries = append(entries, domain.DailyEntry{
					Date:         day.Date.Format(calendar.WireDate),
					WorkingHours: hours,
					LeaveType:    note.LeaveType,
					Comment:      note.Comment,
					PayCode:      payCode,
				})
			}
		}
	}

	if len(invalid) > 0 {
		return nil, &ValidationError{Days: invalid}
	}

	a := &Assembly{Entries: entries}
	for _, e := range entries {
		if e.WorkingHours == nil {
			continue
		}
		switch e.PayCode {
		case domain.PayCodeRegular:
			if *e.WorkingHours > 0 {
				a.WorkingDays++
			}
		case domain.PayCodeOvertime:
			a.TotalHours += *e.WorkingHours
		}
	}
	return a, nil
}

// Assemble flattens and validates the session's current grid.
func (s *Session) Assemble() (*Assembly, error) {
	a, err := Assemble(s.Weeks, s.Rows)
	if err != nil {
		return nil, fmt.Errorf("assembling %s: %w", s.Month, err)
	}
	return a, nil
}
