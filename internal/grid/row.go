// Package grid holds the client-side editable week grid: one Row per pay code
// per week, populated from the server's daily entries and mutated by cell
// edits until the month is assembled for save or submit.
package grid

import (
	"errors"

	"github.com/google/uuid"
	"github.com/nconsulting/timecard/internal/domain"
)

var (
	ErrDuplicatePayCode   = errors.New("a row for this pay code already exists in the week")
	ErrOvertimeNotAllowed = errors.New("overtime is not enabled for the assigned task")
)

// Note is the leave type and comment attached to a single cell.
type Note struct {
	LeaveType string
	Comment   string
}

// Row is one editable grid row for a week. Hours and Notes are keyed by day
// index within the week (Monday=0). A present Hours key with a nil value
// mirrors a server entry whose workingHours was null.
type Row struct {
	ID      string
	PayCode domain.PayCode
	Hours   map[int]*float64
	Notes   map[int]Note
}

// NewRow returns an empty row for the given pay code.
func NewRow(payCode domain.PayCode) *Row {
	return &Row{
		ID:      uuid.NewString(),
		PayCode: payCode,
		Hours:   make(map[int]*float64),
		Notes:   make(map[int]Note),
	}
}

// SetHours records an hours value for a day. Entering a non-zero value clears
// any note on the cell, since a comment is only mandatory for explicit zeros.
func (r *Row) SetHours(dayIndex int, hours float64) {
	v := hours
	r.Hours[dayIndex] = &v
	if hours != 0 {
		delete(r.Notes, dayIndex)
	}
}

// ClearHours removes the entry for a day entirely, returning the cell to the
// untouched state.
func (r *Row) ClearHours(dayIndex int) {
	delete(r.Hours, dayIndex)
	delete(r.Notes, dayIndex)
}

// SetNote attaches a leave type and comment to a day cell.
func (r *Row) SetNote(dayIndex int, n Note) {
	r.Notes[dayIndex] = n
}

// HoursAt returns the entered value and whether the cell has been touched.
func (r *Row) HoursAt(dayIndex int) (*float64, bool) {
	v, ok := r.Hours[dayIndex]
	return v, ok
}

// AddRow appends a new row for payCode to rows, enforcing the week
// invariants: at most one row per pay code, and an Overtime row only when the
// task policy allows overtime.
func AddRow(rows []*Row, payCode domain.PayCode, allowOvertime bool) ([]*Row, error) {
	if payCode == domain.PayCodeOvertime && !allowOvertime {
		return rows, ErrOvertimeNotAllowed
	}
	for _, r := range rows {
		if r.PayCode == payCode {
			return rows, ErrDuplicatePayCode
		}
	}
	return append(rows, NewRow(payCode)), nil
}

// RemoveRow deletes the row with the given id, keeping at least one row in
// the week so the grid always has something to edit.
func RemoveRow(rows []*Row, id string) []*Row {
	if len(rows) <= 1 {
		return rows
	}
	out := rows[:0]
	for _, r := range rows {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}
