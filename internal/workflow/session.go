// Package workflow owns the month editing session: the status state machine
// that decides when grid cells are editable and which actions are available,
// and the assembler that validates and flattens the grid for save or submit.
package workflow

import (
	"errors"
	"time"

	"github.com/nconsulting/timecard/internal/calendar"
	"github.com/nconsulting/timecard/internal/domain"
	"github.com/nconsulting/timecard/internal/grid"
	"github.com/nconsulting/timecard/internal/session"
)

var (
	// ErrLocked blocks every edit-derived transition on a locked sheet.
	ErrLocked = errors.New("timesheet is locked")

	// ErrNotEditable indicates the sheet must be reopened with Edit before
	// cells accept input.
	ErrNotEditable = errors.New("timesheet is not editable in its current status")

	// ErrCellNotEditable indicates the specific cell is blocked by the
	// weekend policy or a holiday.
	ErrCellNotEditable = errors.New("cell is not editable")
)

// Session is the editing state for one employee-month. It is rebuilt from
// server data on every load; the UIStatus field mirrors the server status but
// may diverge locally the moment the user edits a submitted or approved sheet.
type Session struct {
	Viewer     session.Context
	TargetUser string // non-empty when an approver views a subordinate
	Month      calendar.Month

	Summary  *domain.TimesheetSummary
	Task     *domain.TaskAssignment
	Holidays map[string]bool // WireDate → true

	AllowOvertime    bool
	AllowWeekendEdit bool

	UIStatus domain.Status
	Weeks    []calendar.WeekBucket
	Rows     map[int][]*grid.Row
}

// NewSession creates an empty session for the month; ApplyServerState must be
// called with fetched data before the grid is meaningful.
func NewSession(viewer session.Context, month calendar.Month) *Session {
	s := &Session{
		Viewer:   viewer,
		Month:    month,
		Holidays: map[string]bool{},
		UIStatus: domain.StatusNotSubmitted,
	}
	s.rebuild(nil)
	return s
}

// ApplyServerState replaces all derived state from a fresh month fetch. The
// grid is rebuilt in full; any unsaved local edits are discarded, so callers
// must not apply a background refresh over an edit in progress.
func (s *Session) ApplyServerState(
	summary *domain.TimesheetSummary,
	entries []domain.DailyEntry,
	tasks []domain.TaskAssignment,
	holidays []domain.HolidayEvent,
) {
	s.Summary = summary
	if summary != nil && summary.Status != "" {
		s.UIStatus = summary.Status
	} else {
		s.UIStatus = domain.StatusNotSubmitted
	}

	s.Task = nil
	s.AllowOvertime = false
	s.AllowWeekendEdit = false
	if len(tasks) > 0 {
		t := tasks[0]
		s.Task = &t
		s.AllowOvertime = t.AllowOvertime
		s.AllowWeekendEdit = t.EnableWeekend
	}

	s.Holidays = map[string]bool{}
	for _, h := range holidays {
		if h.EventType == domain.EventTypeHoliday {
			if d, err := time.Parse(calendar.WireDate, h.EventDate); err == nil {
				s.Holidays[d.Format(calendar.WireDate)] = true
			}
		}
	}

	s.rebuild(entries)
}

func (s *Session) rebuild(entries []domain.DailyEntry) {
	s.Weeks = calendar.WeeksOf(s.Month, s.AllowWeekendEdit)
	s.Rows = grid.Populate(entries, s.Weeks)
}

// Locked reports the server lock flag. A locked sheet blocks save, submit,
// and every edit-derived status transition until an authorized role unlocks it.
func (s *Session) Locked() bool {
	return (s.Summary != nil && s.Summary.IsLocked) || s.UIStatus == domain.StatusLocked
}

// Editable reports whether grid inputs currently accept edits.
func (s *Session) Editable() bool {
	if s.Locked() {
		return false
	}
	return s.UIStatus == domain.StatusSaved || s.UIStatus == domain.StatusNotSubmitted
}

// CanSave reports whether the Save and Submit actions are enabled.
func (s *Session) CanSave() bool {
	return s.Editable()
}

// CellEditable reports whether a specific day cell accepts input: the sheet
// must be editable, the day in-month, weekends gated by the task policy, and
// holidays always blocked.
func (s *Session) CellEditable(weekIndex, dayIndex int) bool {
	if !s.Editable() {
		return false
	}
	if weekIndex < 0 || weekIndex >= len(s.Weeks) || dayIndex < 0 || dayIndex >= calendar.DaysPerWeek {
		return false
	}
	day := s.Weeks[weekIndex].Days[dayIndex]
	if !day.InMonth {
		return false
	}
	if day.IsWeekend && !s.AllowWeekendEdit {
		return false
	}
	return !s.Holidays[day.Date.Format(calendar.WireDate)]
}

// SetHours applies a cell edit. Editing while the sheet is Submitted or
// Approved drops UIStatus back to Not Submitted locally without any server
// call; the approval only returns once the sheet is resaved and reapproved.
func (s *Session) SetHours(weekIndex int, rowID string, dayIndex int, hours float64) error {
	row, err := s.editableRow(weekIndex, rowID, dayIndex)
	if err != nil {
		return err
	}
	row.SetHours(dayIndex, hours)
	s.markEdited()
	return nil
}

// SetNote attaches a leave type / comment to a cell.
func (s *Session) SetNote(weekIndex int, rowID string, dayIndex int, n grid.Note) error {
	row, err := s.editableRow(weekIndex, rowID, dayIndex)
	if err != nil {
		return err
	}
	row.SetNote(dayIndex, n)
	s.markEdited()
	return nil
}

// ClearHours empties a cell back to the untouched state.
func (s *Session) ClearHours(weekIndex int, rowID string, dayIndex int) error {
	row, err := s.editableRow(weekIndex, rowID, dayIndex)
	if err != nil {
		return err
	}
	row.ClearHours(dayIndex)
	s.markEdited()
	return nil
}

func (s *Session) editableRow(weekIndex int, rowID string, dayIndex int) (*grid.Row, error) {
	if s.Locked() {
		return nil, ErrLocked
	}
	switch s.UIStatus {
	case domain.StatusSaved, domain.StatusNotSubmitted,
		domain.StatusSubmitted, domain.StatusApproved, domain.StatusRejected:
	default:
		return nil, ErrNotEditable
	}
	if !s.cellReachable(weekIndex, dayIndex) {
		return nil, ErrCellNotEditable
	}
	for _, r := range s.Rows[weekIndex] {
		if r.ID == rowID {
			return r, nil
		}
	}
	return nil, errors.New("row not found in week")
}

// cellReachable checks the cell-level constraints without the status check,
// so that an edit on a Submitted sheet can both land and trigger the local
// drop to Not Submitted.
func (s *Session) cellReachable(weekIndex, dayIndex int) bool {
	if weekIndex < 0 || weekIndex >= len(s.Weeks) || dayIndex < 0 || dayIndex >= calendar.DaysPerWeek {
		return false
	}
	day := s.Weeks[weekIndex].Days[dayIndex]
	if !day.InMonth {
		return false
	}
	if day.IsWeekend && !s.AllowWeekendEdit {
		return false
	}
	return !s.Holidays[day.Date.Format(calendar.WireDate)]
}

func (s *Session) markEdited() {
	s.UIStatus = domain.StatusNotSubmitted
}

// AddRow adds a pay-code row to a week, enforcing the one-row-per-pay-code
// and overtime-policy invariants.
func (s *Session) AddRow(weekIndex int, payCode domain.PayCode) error {
	if s.Locked() {
		return ErrLocked
	}
	if !s.Editable() {
		return ErrNotEditable
	}
	rows, err := grid.AddRow(s.Rows[weekIndex], payCode, s.AllowOvertime)
	if err != nil {
		return err
	}
	s.Rows[weekIndex] = rows
	return nil
}

// RemoveRow removes a row from a week.
func (s *Session) RemoveRow(weekIndex int, rowID string) error {
	if s.Locked() {
		return ErrLocked
	}
	if !s.Editable() {
		return ErrNotEditable
	}
	s.Rows[weekIndex] = grid.RemoveRow(s.Rows[weekIndex], rowID)
	s.markEdited()
	return nil
}

// EditTimesheet reopens a Submitted or Approved sheet for editing, locally
// only. A locked sheet cannot be reopened.
func (s *Session) EditTimesheet() error {
	if s.Locked() {
		return ErrLocked
	}
	if s.UIStatus == domain.StatusSubmitted || s.UIStatus == domain.StatusApproved {
		s.UIStatus = domain.StatusNotSubmitted
	}
	return nil
}

// FilledDayCount is the "n days" badge: in-month days carrying any input.
func (s *Session) FilledDayCount() int {
	return grid.FilledDayCount(s.Weeks, s.Rows)
}
