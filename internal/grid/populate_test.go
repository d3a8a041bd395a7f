package grid

import (
	"testing"
	"time"

	"github.com/nconsulting/timecard/internal/calendar"
	"github.com/nconsulting/timecard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func febWeeks(t *testing.T) []calendar.WeekBucket {
	t.Helper()
	return calendar.WeeksOf(calendar.Month{Year: 2024, Month: time.February}, false)
}

func hours(v float64) *float64 { return &v }

func TestPopulate_GroupsByWeekAndPayCode(t *testing.T) {
	weeks := febWeeks(t)
	entries := []domain.DailyEntry{
		{Date: "2024-02-05", PayCode: domain.PayCodeRegular, WorkingHours: hours(8)},
		{Date: "2024-02-06", PayCode: domain.PayCodeOvertime, WorkingHours: hours(2)},
		{Date: "2024-02-07", PayCode: domain.PayCodeRegular, WorkingHours: hours(8), Comment: "standup"},
	}
	rowsByWeek := Populate(entries, weeks)

	require.Len(t, rowsByWeek, len(weeks))

	// Feb 5-7 fall in the second week (Feb 5 is Monday).
	rows := rowsByWeek[1]
	require.Len(t, rows, 2)
	regular := rows[0]
	overtime := rows[1]
	assert.Equal(t, domain.PayCodeRegular, regular.PayCode)
	assert.Equal(t, domain.PayCodeOvertime, overtime.PayCode)

	require.NotNil(t, regular.Hours[0])
	assert.Equal(t, 8.0, *regular.Hours[0])
	assert.Equal(t, "standup", regular.Notes[2].Comment)
	require.NotNil(t, overtime.Hours[1])
	assert.Equal(t, 2.0, *overtime.Hours[1])
}

func TestPopulate_OrderIndependent(t *testing.T) {
	weeks := febWeeks(t)
	e1 := domain.DailyEntry{Date: "2024-02-09", PayCode: domain.PayCodeRegular, WorkingHours: hours(4)}
	e2 := domain.DailyEntry{Date: "2024-02-05", PayCode: domain.PayCodeRegular, WorkingHours: hours(8)}

	a := Populate([]domain.DailyEntry{e1, e2}, weeks)
	b := Populate([]domain.DailyEntry{e2, e1}, weeks)

	require.Len(t, a[1], 1)
	require.Len(t, b[1], 1)
	assert.Equal(t, a[1][0].Hours[0], b[1][0].Hours[0])
	assert.Equal(t, a[1][0].Hours[4], b[1][0].Hours[4])
}

func TestPopulate_EmptyWeekGetsDefaultRow(t *testing.T) {
	weeks := febWeeks(t)
	rowsByWeek := Populate(nil, weeks)

	for i := range weeks {
		rows := rowsByWeek[i]
		require.Len(t, rows, 1, "week %d", i)
		assert.Equal(t, domain.PayCodeRegular, rows[0].PayCode)
		assert.Empty(t, rows[0].Hours)
		assert.Empty(t, rows[0].Notes)
	}
}

func TestPopulate_DefaultsBlankPayCodeToRegular(t *testing.T) {
	weeks := febWeeks(t)
	entries := []domain.DailyEntry{{Date: "2024-02-05", WorkingHours: hours(8)}}
	rows := Populate(entries, weeks)[1]
	require.Len(t, rows, 1)
	assert.Equal(t, domain.PayCodeRegular, rows[0].PayCode)
}

func TestPopulate_PreservesNullHours(t *testing.T) {
	weeks := febWeeks(t)
	entries := []domain.DailyEntry{{Date: "2024-02-05", PayCode: domain.PayCodeRegular, LeaveType: "Sick Leave"}}
	rows := Populate(entries, weeks)[1]

	v, touched := rows[0].HoursAt(0)
	assert.True(t, touched)
	assert.Nil(t, v)
	assert.Equal(t, "Sick Leave", rows[0].Notes[0].LeaveType)
}

func TestPopulate_SkipsUnparseableDates(t *testing.T) {
	weeks := febWeeks(t)
	entries := []domain.DailyEntry{{Date: "Feb 5 2024", PayCode: domain.PayCodeRegular, WorkingHours: hours(8)}}
	rows := Populate(entries, weeks)[1]
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Hours)
}

func TestSetHours_NonZeroClearsNote(t *testing.T) {
	r := NewRow(domain.PayCodeRegular)
	r.SetNote(2, Note{LeaveType: "Public Holiday", Comment: "makeup"})

	r.SetHours(2, 8)
	assert.Empty(t, r.Notes[2].Comment)

	r.SetHours(3, 0)
	r.SetNote(3, Note{Comment: "half day off"})
	r.SetHours(3, 0)
	assert.Equal(t, "half day off", r.Notes[3].Comment, "zero keeps the note")
}

func TestAddRow_Invariants(t *testing.T) {
	rows := []*Row{NewRow(domain.PayCodeRegular)}

	_, err := AddRow(rows, domain.PayCodeRegular, true)
	assert.ErrorIs(t, err, ErrDuplicatePayCode)

	_, err = AddRow(rows, domain.PayCodeOvertime, false)
	assert.ErrorIs(t, err, ErrOvertimeNotAllowed)

	rows, err = AddRow(rows, domain.PayCodeOvertime, true)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	_, err = AddRow(rows, domain.PayCodeOvertime, true)
	assert.ErrorIs(t, err, ErrDuplicatePayCode)
}

func TestRemoveRow_KeepsLastRow(t *testing.T) {
	rows := []*Row{NewRow(domain.PayCodeRegular)}
	rows = RemoveRow(rows, rows[0].ID)
	require.Len(t, rows, 1)

	rows, err := AddRow(rows, domain.PayCodeOvertime, true)
	require.NoError(t, err)
	rows = RemoveRow(rows, rows[1].ID)
	require.Len(t, rows, 1)
	assert.Equal(t, domain.PayCodeRegular, rows[0].PayCode)
}

func TestFilledDayCount(t *testing.T) {
	weeks := febWeeks(t)
	rowsByWeek := Populate(nil, weeks)

	assert.Equal(t, 0, FilledDayCount(weeks, rowsByWeek))

	rowsByWeek[1][0].SetHours(0, 8)  // Feb 5
	rowsByWeek[1][0].SetHours(1, 0)  // Feb 6: explicit zero still counts
	rowsByWeek[1][0].SetNote(2, Note{LeaveType: "Sick Leave"}) // Feb 7
	assert.Equal(t, 3, FilledDayCount(weeks, rowsByWeek))

	// Out-of-month boundary day never counts.
	rowsByWeek[0][0].SetHours(0, 8) // Jan 29
	assert.Equal(t, 3, FilledDayCount(weeks, rowsByWeek))
}
