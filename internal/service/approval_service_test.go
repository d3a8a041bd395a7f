package service

import (
	"context"
	"testing"

	"github.com/nconsulting/timecard/internal/calendar"
	"github.com/nconsulting/timecard/internal/domain"
	"github.com/nconsulting/timecard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetApproval_RejectWithoutCommentNeverDispatched(t *testing.T) {
	fake := &testutil.FakeAPI{}
	svc := NewApprovalService(fake)
	viewer := testutil.NewTestViewer(testutil.WithRole(domain.RoleApprover))
	row := testutil.NewTestOverviewRow("bsmith", domain.StatusSubmitted)

	err := svc.SetApproval(context.Background(), viewer, row, domain.ActionManagerApproval, false, "")
	assert.ErrorIs(t, err, ErrCommentRequired)
	assert.Empty(t, fake.StatusChanges)

	err = svc.SetApproval(context.Background(), viewer, row, domain.ActionManagerApproval, false, "   ")
	assert.ErrorIs(t, err, ErrCommentRequired)
	assert.Empty(t, fake.StatusChanges)
}

func TestSetApproval_RejectWithCommentDispatched(t *testing.T) {
	fake := &testutil.FakeAPI{}
	svc := NewApprovalService(fake)
	viewer := testutil.NewTestViewer(testutil.WithRole(domain.RoleHR))
	row := testutil.NewTestOverviewRow("bsmith", domain.StatusSubmitted)

	err := svc.SetApproval(context.Background(), viewer, row, domain.ActionHRApproval, false, "hours missing on Feb 12")
	require.NoError(t, err)

	require.Len(t, fake.StatusChanges, 1)
	req := fake.StatusChanges[0]
	assert.Equal(t, "bsmith", req.Username)
	assert.Equal(t, domain.ActionHRApproval, req.ActionType)
	assert.False(t, req.ActionValue)
	require.NotNil(t, req.Comment)
	assert.Equal(t, "hours missing on Feb 12", *req.Comment)
}

func TestSetApproval_ApprovalCarriesNoComment(t *testing.T) {
	fake := &testutil.FakeAPI{}
	svc := NewApprovalService(fake)
	viewer := testutil.NewTestViewer(testutil.WithRole(domain.RoleApprover))
	row := testutil.NewTestOverviewRow("bsmith", domain.StatusSubmitted)

	require.NoError(t, svc.SetApproval(context.Background(), viewer, row, domain.ActionManagerApproval, true, ""))

	require.Len(t, fake.StatusChanges, 1)
	assert.True(t, fake.StatusChanges[0].ActionValue)
	assert.Nil(t, fake.StatusChanges[0].Comment)
}

func TestSetApproval_EmployeeRoleBlocked(t *testing.T) {
	fake := &testutil.FakeAPI{}
	svc := NewApprovalService(fake)
	viewer := testutil.NewTestViewer() // Employee
	row := testutil.NewTestOverviewRow("bsmith", domain.StatusSubmitted)

	err := svc.SetApproval(context.Background(), viewer, row, domain.ActionManagerApproval, true, "")
	assert.ErrorIs(t, err, ErrNotPermitted)
	assert.Empty(t, fake.StatusChanges)
}

func TestSetApproval_LockNeedsManagerApproval(t *testing.T) {
	fake := &testutil.FakeAPI{}
	svc := NewApprovalService(fake)
	viewer := testutil.NewTestViewer(testutil.WithRole(domain.RoleHR))

	unapproved := testutil.NewTestOverviewRow("bsmith", domain.StatusSubmitted)
	err := svc.SetApproval(context.Background(), viewer, unapproved, domain.ActionLock, true, "")
	assert.ErrorIs(t, err, ErrNotPermitted)
	assert.Empty(t, fake.StatusChanges)

	approved := testutil.NewTestOverviewRow("bsmith", domain.StatusApproved, testutil.RowWithManagerApproval("pmurphy"))
	require.NoError(t, svc.SetApproval(context.Background(), viewer, approved, domain.ActionLock, true, ""))
	require.Len(t, fake.StatusChanges, 1)
	assert.Equal(t, domain.ActionLock, fake.StatusChanges[0].ActionType)
}

func TestBulkLock_OneUnapprovedRowAbortsBatch(t *testing.T) {
	fake := &testutil.FakeAPI{}
	svc := NewApprovalService(fake)
	viewer := testutil.NewTestViewer(testutil.WithRole(domain.RoleAdmin))
	month, _ := calendar.ParseMonth("2024-02")

	rows := []domain.OverviewRow{
		testutil.NewTestOverviewRow("bsmith", domain.StatusApproved, testutil.RowWithManagerApproval("pmurphy")),
		testutil.NewTestOverviewRow("cjones", domain.StatusSubmitted), // no manager approval
		testutil.NewTestOverviewRow("ddavis", domain.StatusApproved, testutil.RowWithManagerApproval("pmurphy")),
	}

	err := svc.BulkLock(context.Background(), viewer, month, rows)
	assert.ErrorIs(t, err, ErrNotPermitted)
	assert.Contains(t, err.Error(), "cjones")
	assert.Empty(t, fake.BulkBatches, "no partial batch may be dispatched")
	assert.Empty(t, fake.StatusChanges)
}

func TestBulkLock_DispatchesSingleBatch(t *testing.T) {
	fake := &testutil.FakeAPI{}
	svc := NewApprovalService(fake)
	viewer := testutil.NewTestViewer(testutil.WithRole(domain.RoleHR))
	month, _ := calendar.ParseMonth("2024-02")

	rows := []domain.OverviewRow{
		testutil.NewTestOverviewRow("bsmith", domain.StatusApproved, testutil.RowWithManagerApproval("pmurphy")),
		testutil.NewTestOverviewRow("ddavis", domain.StatusApproved, testutil.RowWithManagerApproval("pmurphy")),
	}

	require.NoError(t, svc.BulkLock(context.Background(), viewer, month, rows))

	require.Len(t, fake.BulkBatches, 1)
	batch := fake.BulkBatches[0]
	require.Len(t, batch, 2)
	for _, req := range batch {
		assert.Equal(t, domain.ActionLock, req.ActionType)
		assert.True(t, req.ActionValue)
		assert.Equal(t, "2024-02", req.MonthYear)
	}
	assert.Equal(t, "bsmith", batch[0].Username)
	assert.Equal(t, "ddavis", batch[1].Username)
}

func TestBulkLock_ApproverRoleBlocked(t *testing.T) {
	fake := &testutil.FakeAPI{}
	svc := NewApprovalService(fake)
	viewer := testutil.NewTestViewer(testutil.WithRole(domain.RoleApprover))
	month, _ := calendar.ParseMonth("2024-02")

	err := svc.BulkLock(context.Background(), viewer, month, []domain.OverviewRow{
		testutil.NewTestOverviewRow("bsmith", domain.StatusApproved, testutil.RowWithManagerApproval("pmurphy")),
	})
	assert.ErrorIs(t, err, ErrNotPermitted)
	assert.Empty(t, fake.BulkBatches)
}

func TestOverview_RoleGate(t *testing.T) {
	fake := &testutil.FakeAPI{Overview: []domain.OverviewRow{testutil.NewTestOverviewRow("bsmith", domain.StatusSubmitted)}}
	svc := NewApprovalService(fake)
	month, _ := calendar.ParseMonth("2024-02")

	_, err := svc.Overview(context.Background(), testutil.NewTestViewer(), month)
	assert.ErrorIs(t, err, ErrNotPermitted)

	rows, err := svc.Overview(context.Background(), testutil.NewTestViewer(testutil.WithRole(domain.RoleApprover)), month)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestExportOverview(t *testing.T) {
	svc := NewApprovalService(&testutil.FakeAPI{})
	month, _ := calendar.ParseMonth("2024-02")

	name, data, err := svc.ExportOverview(month, []domain.OverviewRow{
		testutil.NewTestOverviewRow("bsmith", domain.StatusSubmitted),
	})
	require.NoError(t, err)
	assert.Equal(t, "timesheet_overview_2024-02.xlsx", name)
	assert.NotEmpty(t, data)
}
