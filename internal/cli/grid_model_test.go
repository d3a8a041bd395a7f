package cli

import (
	"context"
	"testing"

	"github.com/nconsulting/timecard/internal/calendar"
	"github.com/nconsulting/timecard/internal/domain"
	"github.com/nconsulting/timecard/internal/repository"
	"github.com/nconsulting/timecard/internal/service"
	"github.com/nconsulting/timecard/internal/teatest"
	"github.com/nconsulting/timecard/internal/testutil"
	"github.com/nconsulting/timecard/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGridFixture(t *testing.T, status domain.Status) (*testutil.FakeAPI, service.TimesheetService, *workflow.Session) {
	t.Helper()
	fake := &testutil.FakeAPI{Detail: testutil.NewTestDetail("2024-02", status,
		domain.DailyEntry{Date: "2024-02-05", PayCode: domain.PayCodeRegular, WorkingHours: testutil.Hours(8)},
	)}
	drafts := repository.NewSQLiteDraftStore(testutil.NewTestDB(t))
	svc := service.NewTimesheetService(fake, drafts)

	m, err := calendar.ParseMonth("2024-02")
	require.NoError(t, err)
	sess, err := svc.LoadMonth(context.Background(), testutil.NewTestViewer(), "", m)
	require.NoError(t, err)
	return fake, svc, sess
}

func newGridDriver(t *testing.T, svc service.TimesheetService, sess *workflow.Session) *teatest.Driver {
	t.Helper()
	app := &App{Timesheets: svc}
	return teatest.New(t, newGridModel(app, sess, false))
}

func TestGridModel_EnterHours(t *testing.T) {
	_, svc, sess := newGridFixture(t, domain.StatusSaved)
	d := newGridDriver(t, svc, sess)

	// Week 0 starts in January; hop to the week of Feb 5.
	d.Press("tab")
	d.Press("enter")
	d.Type("7.5")
	d.Press("enter")

	require.NotNil(t, sess.Rows[1][0].Hours[0])
	assert.Equal(t, 7.5, *sess.Rows[1][0].Hours[0])

	// The edit autosaved a draft that a fresh session picks up.
	m, err := calendar.ParseMonth("2024-02")
	require.NoError(t, err)
	fresh, err := svc.LoadMonth(context.Background(), testutil.NewTestViewer(), "", m)
	require.NoError(t, err)
	applied, err := svc.RestoreDraft(context.Background(), fresh)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, 7.5, *fresh.Rows[1][0].Hours[0])
}

func TestGridModel_BlankEntryClearsCell(t *testing.T) {
	_, svc, sess := newGridFixture(t, domain.StatusSaved)
	d := newGridDriver(t, svc, sess)

	d.Press("tab")
	d.Press("enter")
	d.Press("enter")

	assert.Nil(t, sess.Rows[1][0].Hours[0])
}

func TestGridModel_BlockedCellRejected(t *testing.T) {
	// Week 0 day 0 is Mon Jan 29, outside the month.
	_, svc, sess := newGridFixture(t, domain.StatusSaved)
	d := newGridDriver(t, svc, sess)

	d.Press("enter")

	assert.Contains(t, d.View(), "this cell cannot be edited")
}

func TestGridModel_NoteEntry(t *testing.T) {
	_, svc, sess := newGridFixture(t, domain.StatusSaved)
	d := newGridDriver(t, svc, sess)

	d.Press("tab")
	d.Press("right")
	d.Press("c")
	d.Type("Sick Leave")
	d.Press("tab")
	d.Type("flu")
	d.Press("enter")

	note := sess.Rows[1][0].Notes[1]
	assert.Equal(t, "Sick Leave", note.LeaveType)
	assert.Equal(t, "flu", note.Comment)
}

func TestGridModel_SaveKeyDispatches(t *testing.T) {
	fake, svc, sess := newGridFixture(t, domain.StatusSaved)
	d := newGridDriver(t, svc, sess)

	d.Press("s")

	require.Len(t, fake.SavedTimesheets, 1)
	assert.Equal(t, domain.StatusSaved, fake.SavedTimesheets[0].Status)
	assert.Contains(t, d.View(), "Save succeeded.")
}

func TestGridModel_InvalidHoursShown(t *testing.T) {
	fake, svc, sess := newGridFixture(t, domain.StatusSaved)
	d := newGridDriver(t, svc, sess)

	d.Press("tab")
	d.Press("enter")
	d.Type("25")
	d.Press("enter")

	assert.Contains(t, d.View(), "hours")
	assert.Empty(t, fake.SavedTimesheets)
}

func TestGridModel_QuitSavesDraft(t *testing.T) {
	_, svc, sess := newGridFixture(t, domain.StatusSaved)
	d := newGridDriver(t, svc, sess)

	d.Press("tab")
	d.Press("enter")
	d.Type("6")
	d.Press("enter")
	d.Press("q")

	assert.True(t, d.Quit)
}

func TestGridModel_SubmittedSheetAcceptsEdits(t *testing.T) {
	_, svc, sess := newGridFixture(t, domain.StatusSubmitted)
	d := newGridDriver(t, svc, sess)

	d.Press("tab")
	d.Press("enter")
	d.Type("4")
	d.Press("enter")

	// Editing a submitted sheet drops the status locally until resubmitted.
	assert.Equal(t, domain.StatusNotSubmitted, sess.UIStatus)
	assert.Equal(t, 4.0, *sess.Rows[1][0].Hours[0])
}

func TestGridModel_LockedSheetRejectsEdits(t *testing.T) {
	_, svc, sess := newGridFixture(t, domain.StatusLocked)
	d := newGridDriver(t, svc, sess)

	d.Press("tab")
	d.Press("enter")

	assert.Contains(t, d.View(), "this cell cannot be edited")
}
