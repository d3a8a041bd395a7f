package service

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"github.com/nconsulting/timecard/internal/api"
	"github.com/nconsulting/timecard/internal/calendar"
	"github.com/nconsulting/timecard/internal/domain"
	"github.com/nconsulting/timecard/internal/repository"
	"github.com/nconsulting/timecard/internal/testutil"
	"github.com/nconsulting/timecard/internal/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feb2024(t *testing.T) calendar.Month {
	t.Helper()
	m, err := calendar.ParseMonth("2024-02")
	require.NoError(t, err)
	return m
}

func newTimesheetFixture(t *testing.T, detail *api.MonthDetail) (*testutil.FakeAPI, repository.DraftStore, TimesheetService) {
	t.Helper()
	fake := &testutil.FakeAPI{Detail: detail}
	drafts := repository.NewSQLiteDraftStore(testutil.NewTestDB(t))
	return fake, drafts, NewTimesheetService(fake, drafts)
}

func TestLoadMonth_BuildsSession(t *testing.T) {
	_, _, svc := newTimesheetFixture(t, testutil.NewTestDetail("2024-02", domain.StatusSaved,
		domain.DailyEntry{Date: "2024-02-05", PayCode: domain.PayCodeRegular, WorkingHours: testutil.Hours(8)},
	))

	sess, err := svc.LoadMonth(context.Background(), testutil.NewTestViewer(), "", feb2024(t))
	require.NoError(t, err)

	assert.Equal(t, domain.StatusSaved, sess.UIStatus)
	assert.True(t, sess.AllowOvertime)
	assert.False(t, sess.AllowWeekendEdit)
	assert.Len(t, sess.Weeks, 5)
	// Feb 5 is Monday of the second bucket.
	require.NotEmpty(t, sess.Rows[1])
	assert.Equal(t, 8.0, *sess.Rows[1][0].Hours[0])
}

func TestLoadMonth_StaleResponseDropped(t *testing.T) {
	fake := &testutil.FakeAPI{Detail: testutil.NewTestDetail("2024-02", domain.StatusSaved)}
	drafts := repository.NewSQLiteDraftStore(testutil.NewTestDB(t))

	racer := &racingAPI{FakeAPI: fake}
	racer.svc = NewTimesheetService(racer, drafts)

	sess, err := racer.svc.LoadMonth(context.Background(), testutil.NewTestViewer(), "", feb2024(t))
	assert.Nil(t, sess)
	assert.ErrorIs(t, err, ErrStaleLoad)

	// The load that started later won.
	require.NotNil(t, racer.winner)
	assert.Equal(t, domain.StatusSaved, racer.winner.UIStatus)
}

// racingAPI starts a second month load while the first fetch is still in
// flight, so the first response arrives already outdated.
type racingAPI struct {
	*testutil.FakeAPI
	svc    TimesheetService
	fired  bool
	winner *workflow.Session
}

func (r *racingAPI) GetTimesheetByMonth(ctx context.Context, monthYear, username string) (*api.MonthDetail, error) {
	if !r.fired {
		r.fired = true
		m, _ := calendar.ParseMonth(monthYear)
		r.winner, _ = r.svc.LoadMonth(ctx, testutil.NewTestViewer(), "", m)
	}
	return r.FakeAPI.GetTimesheetByMonth(ctx, monthYear, username)
}

func TestSave_DispatchesSavedStatusAndTotals(t *testing.T) {
	fake, _, svc := newTimesheetFixture(t, testutil.NewTestDetail("2024-02", domain.StatusNotSubmitted))

	sess, err := svc.LoadMonth(context.Background(), testutil.NewTestViewer(), "", feb2024(t))
	require.NoError(t, err)

	rowID := sess.Rows[1][0].ID
	require.NoError(t, sess.SetHours(1, rowID, 0, 8)) // Mon Feb 5
	require.NoError(t, sess.SetHours(1, rowID, 1, 8)) // Tue Feb 6

	require.NoError(t, svc.Save(context.Background(), sess))

	require.Len(t, fake.SavedTimesheets, 1)
	req := fake.SavedTimesheets[0]
	assert.Equal(t, "2024-02", req.MonthYear)
	assert.Equal(t, domain.StatusSaved, req.Status)
	assert.Equal(t, 2, req.WorkingDays)
	assert.Equal(t, 0.0, req.TotalHours, "regular hours never count into total overtime")
	assert.Len(t, req.Timesheet, 29, "one entry per day of the leap February")
	assert.Empty(t, req.PDFBase64)
	assert.Empty(t, req.FileName)
}

func TestSave_ValidationFailureBlocksDispatch(t *testing.T) {
	fake, _, svc := newTimesheetFixture(t, testutil.NewTestDetail("2024-02", domain.StatusNotSubmitted))

	sess, err := svc.LoadMonth(context.Background(), testutil.NewTestViewer(), "", feb2024(t))
	require.NoError(t, err)
	require.NoError(t, sess.SetHours(1, sess.Rows[1][0].ID, 0, 0)) // explicit zero, no comment

	err = svc.Save(context.Background(), sess)
	var verr *workflow.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Days, "05-Feb-2024")
	assert.Empty(t, fake.SavedTimesheets, "invalid months never reach the server")
}

func TestSave_LockedMonthRejected(t *testing.T) {
	detail := testutil.NewTestDetail("2024-02", domain.StatusApproved)
	detail.Summary.IsLocked = true
	fake, _, svc := newTimesheetFixture(t, detail)

	sess, err := svc.LoadMonth(context.Background(), testutil.NewTestViewer(), "", feb2024(t))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Save(context.Background(), sess), workflow.ErrLocked)
	assert.Empty(t, fake.SavedTimesheets)
}

func TestSave_ForeignSheetRejected(t *testing.T) {
	fake, _, svc := newTimesheetFixture(t, testutil.NewTestDetail("2024-02", domain.StatusNotSubmitted))

	sess, err := svc.LoadMonth(context.Background(), testutil.NewTestViewer(testutil.WithRole(domain.RoleApprover)), "bsmith", feb2024(t))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Save(context.Background(), sess), ErrNotPermitted)
	assert.Empty(t, fake.SavedTimesheets)
}

func TestSubmit_AttachesPDFStatement(t *testing.T) {
	fake, _, svc := newTimesheetFixture(t, testutil.NewTestDetail("2024-02", domain.StatusSaved))

	sess, err := svc.LoadMonth(context.Background(), testutil.NewTestViewer(), "", feb2024(t))
	require.NoError(t, err)
	require.NoError(t, sess.SetHours(1, sess.Rows[1][0].ID, 0, 8))

	require.NoError(t, svc.Submit(context.Background(), sess))

	require.Len(t, fake.SavedTimesheets, 1)
	req := fake.SavedTimesheets[0]
	assert.Equal(t, domain.StatusSubmitted, req.Status)
	assert.Equal(t, "Jane_Doe_2024-02_timesheet.pdf", req.FileName)

	raw, err := base64.StdEncoding.DecodeString(req.PDFBase64)
	require.NoError(t, err)
	assert.True(t, len(raw) > 4 && string(raw[:4]) == "%PDF")
}

func TestSave_ClearsDraft(t *testing.T) {
	fake, drafts, svc := newTimesheetFixture(t, testutil.NewTestDetail("2024-02", domain.StatusNotSubmitted))
	_ = fake

	sess, err := svc.LoadMonth(context.Background(), testutil.NewTestViewer(), "", feb2024(t))
	require.NoError(t, err)
	require.NoError(t, sess.SetHours(1, sess.Rows[1][0].ID, 0, 8))
	require.NoError(t, svc.SaveDraft(context.Background(), sess))

	_, err = drafts.Load(context.Background(), "jdoe", "2024-02")
	require.NoError(t, err)

	require.NoError(t, svc.Save(context.Background(), sess))

	_, err = drafts.Load(context.Background(), "jdoe", "2024-02")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDraft_RestoreReplacesGrid(t *testing.T) {
	_, _, svc := newTimesheetFixture(t, testutil.NewTestDetail("2024-02", domain.StatusNotSubmitted))

	sess, err := svc.LoadMonth(context.Background(), testutil.NewTestViewer(), "", feb2024(t))
	require.NoError(t, err)
	require.NoError(t, sess.SetHours(1, sess.Rows[1][0].ID, 0, 7.5))
	require.NoError(t, svc.SaveDraft(context.Background(), sess))

	// A fresh load loses the unsaved edit; the draft brings it back.
	fresh, err := svc.LoadMonth(context.Background(), testutil.NewTestViewer(), "", feb2024(t))
	require.NoError(t, err)
	require.Empty(t, fresh.Rows[1][0].Hours)

	applied, err := svc.RestoreDraft(context.Background(), fresh)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Equal(t, 7.5, *fresh.Rows[1][0].Hours[0])

	require.NoError(t, svc.DiscardDraft(context.Background(), fresh))
	applied, err = svc.RestoreDraft(context.Background(), fresh)
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestMonthSelector(t *testing.T) {
	_, _, svc := newTimesheetFixture(t, testutil.NewTestDetail("2024-02", domain.StatusSaved))

	now := time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC)
	entries, err := svc.MonthSelector(context.Background(), testutil.NewTestViewer(), now)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "2024-02", entries[0].Month.String())
	assert.Equal(t, domain.StatusSaved, entries[0].Status)
	assert.Equal(t, "2024-03", entries[1].Month.String())
}

func TestActivityLog(t *testing.T) {
	fake, _, svc := newTimesheetFixture(t, testutil.NewTestDetail("2024-02", domain.StatusSubmitted))
	fake.AuditLog = []domain.AuditLogEntry{{ActionType: "SUBMITTED", PerformedBy: "jdoe"}}

	sess, err := svc.LoadMonth(context.Background(), testutil.NewTestViewer(), "", feb2024(t))
	require.NoError(t, err)

	log, err := svc.ActivityLog(context.Background(), sess)
	require.NoError(t, err)
	require.Len(t, log, 1)
	assert.Equal(t, "SUBMITTED", log[0].ActionType)
}
