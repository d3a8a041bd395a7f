package workflow

import (
	"testing"
	"time"

	"github.com/nconsulting/timecard/internal/calendar"
	"github.com/nconsulting/timecard/internal/domain"
	"github.com/nconsulting/timecard/internal/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyGrid(t *testing.T, m calendar.Month) ([]calendar.WeekBucket, map[int][]*grid.Row) {
	t.Helper()
	weeks := calendar.WeeksOf(m, false)
	return weeks, grid.Populate(nil, weeks)
}

func TestAssemble_ZeroWithoutCommentFails(t *testing.T) {
	weeks, rows := emptyGrid(t, feb2024())

	rows[1][0].SetHours(0, 0) // Feb 5, explicit zero, no comment
	_, err := Assemble(weeks, rows)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"05-Feb-2024"}, verr.Days)
	assert.Contains(t, verr.Error(), "05-Feb-2024")
}

func TestAssemble_ZeroWithCommentSucceeds(t *testing.T) {
	weeks, rows := emptyGrid(t, feb2024())

	rows[1][0].SetHours(0, 0)
	rows[1][0].SetNote(0, grid.Note{Comment: "Public holiday makeup"})

	a, err := Assemble(weeks, rows)
	require.NoError(t, err)
	assert.Equal(t, 0, a.WorkingDays)
	assert.Equal(t, 0.0, a.TotalHours)
}

func TestAssemble_UntouchedCellIsAlwaysValid(t *testing.T) {
	weeks, rows := emptyGrid(t, feb2024())

	a, err := Assemble(weeks, rows)
	require.NoError(t, err)

	// 29 in-month days, one default row each.
	require.Len(t, a.Entries, 29)
	for _, e := range a.Entries {
		assert.Nil(t, e.WorkingHours)
		assert.Equal(t, domain.PayCodeRegular, e.PayCode)
	}
	assert.Equal(t, 0, a.WorkingDays)
}

func TestAssemble_NoPartialResultOnFailure(t *testing.T) {
	weeks, rows := emptyGrid(t, feb2024())

	rows[1][0].SetHours(0, 8)
	rows[1][0].SetHours(1, 0) // invalid
	rows[2][0].SetHours(0, 0) // invalid

	a, err := Assemble(weeks, rows)
	assert.Nil(t, a)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"06-Feb-2024", "12-Feb-2024"}, verr.Days)
}

func TestAssemble_Totals(t *testing.T) {
	weeks, rows := emptyGrid(t, feb2024())

	// Regular: 8h Mon, 8h Tue, 0h Wed w/ comment, Thu untouched.
	reg := rows[1][0]
	reg.SetHours(0, 8)
	reg.SetHours(1, 8)
	reg.SetHours(2, 0)
	reg.SetNote(2, grid.Note{LeaveType: "Sick Leave", Comment: "flu"})

	var err error
	rows[1], err = grid.AddRow(rows[1], domain.PayCodeOvertime, true)
	require.NoError(t, err)
	ot := rows[1][1]
	ot.SetHours(0, 2)
	ot.SetHours(4, 1.5)

	a, err := Assemble(weeks, rows)
	require.NoError(t, err)

	assert.Equal(t, 2, a.WorkingDays, "only Regular Time entries with hours > 0")
	assert.Equal(t, 3.5, a.TotalHours, "sum of Overtime hours")

	// Week 1 (Feb 5-11, fully in-month) has two rows, adding 7 entries on
	// top of the 29 single-row days.
	assert.Len(t, a.Entries, 29+7)
}

func TestAssemble_EntriesCoverEveryInMonthDay(t *testing.T) {
	m := calendar.Month{Year: 2025, Month: time.June}
	weeks, rows := emptyGrid(t, m)

	a, err := Assemble(weeks, rows)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, e := range a.Entries {
		seen[e.Date] = true
	}
	for _, day := range m.Days() {
		assert.True(t, seen[day.Format(calendar.WireDate)], day.Format(calendar.WireDate))
	}
}

func TestSessionAssemble_WrapsValidationError(t *testing.T) {
	s := newTestSession(t, domain.StatusSaved)
	require.NoError(t, s.SetHours(1, s.Rows[1][0].ID, 0, 0))

	_, err := s.Assemble()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"05-Feb-2024"}, verr.Days)
}
