package calendar

import (
	"time"

	"github.com/nconsulting/timecard/internal/domain"
)

// SelectorEntry is one month card in the month selector: the current month
// and the next one, annotated with the server summary when one exists.
type SelectorEntry struct {
	Month       Month
	Range       string
	Status      domain.Status
	WorkingDays int
}

// SelectorEntries builds the selector cards for now's month and the month
// after. A month with no server summary defaults to Not Submitted if current
// and Future otherwise.
func SelectorEntries(now time.Time, summaries map[string]domain.TimesheetSummary) []SelectorEntry {
	entries := make([]SelectorEntry, 0, 2)
	for i := 0; i <= 1; i++ {
		m := MonthOf(now).Add(i)

		status := domain.StatusNotSubmitted
		if i > 0 {
			status = domain.StatusFuture
		}
		days := 0
		if s, ok := summaries[m.String()]; ok {
			if s.Status != "" {
				status = s.Status
			}
			days = s.WorkingDays
		}

		entries = append(entries, SelectorEntry{
			Month:       m,
			Range:       m.Range(),
			Status:      status,
			WorkingDays: days,
		})
	}
	return entries
}
