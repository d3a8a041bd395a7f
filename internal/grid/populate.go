package grid

import (
	"time"

	"github.com/nconsulting/timecard/internal/calendar"
	"github.com/nconsulting/timecard/internal/domain"
)

// Populate rebuilds the full week→rows mapping from the server's daily
// entries. Entries are bucketed into weeks by calendar-date membership and
// grouped by pay code, one row per distinct pay code present. A week with no
// entries yields a single empty Regular Time row so every week is editable
// even on a brand-new timesheet.
//
// The result is always a complete rebuild; callers must not run it over a
// grid holding unsaved edits they intend to keep.
func Populate(entries []domain.DailyEntry, weeks []calendar.WeekBucket) map[int][]*Row {
	parsed := make([]struct {
		date  time.Time
		entry domain.DailyEntry
	}, 0, len(entries))
	for _, e := range entries {
		d, err := time.Parse(calendar.WireDate, e.Date)
		if err != nil {
			// Undated rows cannot be placed in any week; skip them.
			continue
		}
		parsed = append(parsed, struct {
			date  time.Time
			entry domain.DailyEntry
		}{d, e})
	}

	rowsByWeek := make(map[int][]*Row, len(weeks))
	for weekIndex, week := range weeks {
		// Group this week's entries by pay code, keeping first-seen order.
		var order []domain.PayCode
		byCode := map[domain.PayCode]*Row{}

		for _, p := range parsed {
			dayIndex := -1
			for i, d := range week.Days {
				if calendar.SameDay(d.Date, p.date) {
					dayIndex = i
					break
				}
			}
			if dayIndex == -1 {
				continue
			}

			code := p.entry.PayCode
			if code == "" {
				code = domain.PayCodeRegular
			}
			row, ok := byCode[code]
			if !ok {
				row = NewRow(code)
				byCode[code] = row
				order = append(order, code)
			}
			row.Hours[dayIndex] = p.entry.WorkingHours
			row.Notes[dayIndex] = Note{LeaveType: p.entry.LeaveType, Comment: p.entry.Comment}
		}

		rows := make([]*Row, 0, len(order))
		for _, code := range order {
			rows = append(rows, byCode[code])
		}
		if len(rows) == 0 {
			rows = append(rows, NewRow(domain.PayCodeRegular))
		}
		rowsByWeek[weekIndex] = rows
	}
	return rowsByWeek
}

// FilledDayCount counts in-month days that carry any value at all (hours,
// leave type, or comment) across all rows; an explicit 0 counts as a value.
func FilledDayCount(weeks []calendar.WeekBucket, rowsByWeek map[int][]*Row) int {
	count := 0
	for weekIndex, week := range weeks {
		rows := rowsByWeek[weekIndex]
		for dayIndex, day := range week.Days {
			if !day.InMonth {
				continue
			}
			for _, r := range rows {
				_, touched := r.Hours[dayIndex]
				note := r.Notes[dayIndex]
				if touched || note.LeaveType != "" || note.Comment != "" {
					count++
					break
				}
			}
		}
	}
	return count
}
