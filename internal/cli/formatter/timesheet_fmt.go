package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nconsulting/timecard/internal/calendar"
	"github.com/nconsulting/timecard/internal/grid"
	"github.com/nconsulting/timecard/internal/workflow"
)

// FormatHours renders one cell value: untouched cells show a dot, explicit
// zeros show "0" so they are distinguishable from blanks.
func FormatHours(v *float64) string {
	if v == nil {
		return "·"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// FormatWeekGrid renders one week of the timesheet grid as a table. Blocked
// cells (out of month, weekend without policy, holiday) render as "×".
func FormatWeekGrid(s *workflow.Session, weekIndex int) string {
	if weekIndex < 0 || weekIndex >= len(s.Weeks) {
		return ""
	}
	week := s.Weeks[weekIndex]

	headers := make([]string, 0, calendar.DaysPerWeek+2)
	headers = append(headers, "Pay Code")
	for _, day := range week.Days {
		h := day.Date.Format("Mon 02")
		if !day.InMonth {
			h = StyleDim.Render(h)
		}
		headers = append(headers, h)
	}
	headers = append(headers, "Total")

	rows := make([][]string, 0, len(s.Rows[weekIndex]))
	for _, row := range s.Rows[weekIndex] {
		cells := make([]string, 0, len(headers))
		cells = append(cells, string(row.PayCode))
		total := 0.0
		for di := range week.Days {
			if cellBlocked(s, week.Days[di]) && row.Hours[di] == nil {
				cells = append(cells, StyleDim.Render("×"))
				continue
			}
			cell := FormatHours(row.Hours[di])
			if note, ok := row.Notes[di]; ok && (note.Comment != "" || note.LeaveType != "") {
				cell += StyleYellow.Render("*")
			}
			cells = append(cells, cell)
			if v := row.Hours[di]; v != nil {
				total += *v
			}
		}
		cells = append(cells, strconv.FormatFloat(total, 'f', -1, 64))
		rows = append(rows, cells)
	}

	var b strings.Builder
	b.WriteString(StyleBold.Render(week.Label))
	b.WriteString("\n")
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

// cellBlocked mirrors the day-level edit constraints, independent of the
// sheet status, so blocked cells stay marked on submitted sheets too.
func cellBlocked(s *workflow.Session, day calendar.DayDescriptor) bool {
	if !day.InMonth {
		return true
	}
	if day.IsWeekend && !s.AllowWeekendEdit {
		return true
	}
	return s.Holidays[day.Date.Format(calendar.WireDate)]
}

// FormatMonthHeader renders the line above the grid: month range, status and
// the filled-day badge.
func FormatMonthHeader(s *workflow.Session) string {
	who := s.Viewer.DisplayName()
	if s.TargetUser != "" {
		who = s.TargetUser
	}
	return fmt.Sprintf("%s  %s  %s  %s",
		StyleHeader.Render(who),
		s.Month.Range(),
		Status(s.UIStatus),
		StyleDim.Render(fmt.Sprintf("(%d days filled)", s.FilledDayCount())),
	)
}

// FormatNotes lists every cell note of a week, one line per note.
func FormatNotes(s *workflow.Session, weekIndex int) string {
	if weekIndex < 0 || weekIndex >= len(s.Weeks) {
		return ""
	}
	week := s.Weeks[weekIndex]

	var b strings.Builder
	for _, row := range s.Rows[weekIndex] {
		for di := 0; di < calendar.DaysPerWeek; di++ {
			note, ok := row.Notes[di]
			if !ok || (note.Comment == "" && note.LeaveType == "") {
				continue
			}
			b.WriteString(fmt.Sprintf("  %s %s: %s\n",
				week.Days[di].Date.Format(calendar.DayLabel),
				StyleDim.Render(noteLabel(note)),
				note.Comment,
			))
		}
	}
	return b.String()
}

func noteLabel(n grid.Note) string {
	if n.LeaveType == "" {
		return "note"
	}
	return n.LeaveType
}

// FormatSelector renders the month selector cards.
func FormatSelector(entries []calendar.SelectorEntry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Month.String(),
			e.Range,
			Status(e.Status),
			strconv.Itoa(e.WorkingDays),
		})
	}
	return RenderTable([]string{"Month", "Range", "Status", "Working Days"}, rows)
}
