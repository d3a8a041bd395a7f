package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/nconsulting/timecard/internal/api"
	"github.com/nconsulting/timecard/internal/calendar"
	"github.com/nconsulting/timecard/internal/domain"
	"github.com/nconsulting/timecard/internal/export"
	"github.com/nconsulting/timecard/internal/session"
	"github.com/nconsulting/timecard/internal/workflow"
)

type approvalService struct {
	api      api.Client
	observer UseCaseObserver
}

func NewApprovalService(client api.Client, observers ...UseCaseObserver) ApprovalService {
	return &approvalService{
		api:      client,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *approvalService) Overview(ctx context.Context, viewer session.Context, month calendar.Month) ([]domain.OverviewRow, error) {
	if !viewer.Role.CanApprove() {
		return nil, fmt.Errorf("%w: role %q has no approver view", ErrNotPermitted, viewer.Role)
	}
	return s.api.GetMonthOverview(ctx, month.String())
}

func (s *approvalService) SetApproval(ctx context.Context, viewer session.Context, row domain.OverviewRow, action domain.ActionType, approve bool, comment string) (err error) {
	fields := map[string]any{
		"target_user": row.Username,
		"month":       row.MonthYear,
		"action":      string(action),
		"value":       approve,
	}
	defer observe(ctx, s.observer, "set-approval", viewer.Username, fields, &err)()

	switch action {
	case domain.ActionLock:
		if !workflow.CanLock(viewer.Role, row) {
			return fmt.Errorf("%w: %s may not be locked by %q", ErrNotPermitted, row.Username, viewer.Role)
		}
	case domain.ActionHRApproval, domain.ActionManagerApproval:
		if !workflow.CanApprove(viewer.Role, row) {
			return fmt.Errorf("%w: %s may not be approved by %q", ErrNotPermitted, row.Username, viewer.Role)
		}
		// A rejection must carry a comment; checked here so the request
		// never leaves the client.
		if !approve && strings.TrimSpace(comment) == "" {
			return ErrCommentRequired
		}
	default:
		return fmt.Errorf("unknown approval action %q", action)
	}

	req := api.StatusChangeRequest{
		Username:    row.Username,
		MonthYear:   row.MonthYear,
		ActionType:  action,
		ActionValue: approve,
	}
	if c := strings.TrimSpace(comment); c != "" {
		req.Comment = &c
	}
	return s.api.UpdateTimesheetStatus(ctx, req)
}

func (s *approvalService) BulkLock(ctx context.Context, viewer session.Context, month calendar.Month, rows []domain.OverviewRow) (err error) {
	defer observe(ctx, s.observer, "bulk-lock", viewer.Username, map[string]any{
		"month": month.String(),
		"count": len(rows),
	}, &err)()

	if !viewer.Role.CanLock() {
		return fmt.Errorf("%w: role %q may not lock timesheets", ErrNotPermitted, viewer.Role)
	}
	if len(rows) == 0 {
		return fmt.Errorf("no timesheets selected")
	}

	// Every target must already carry manager approval. One unapproved row
	// aborts the whole batch before anything is dispatched.
	for _, row := range rows {
		if !row.IsApprovedTimesheetManager {
			return fmt.Errorf("%w: %s has no manager approval", ErrNotPermitted, row.Username)
		}
	}

	reqs := make([]api.StatusChangeRequest, 0, len(rows))
	for _, row := range rows {
		reqs = append(reqs, api.StatusChangeRequest{
			Username:    row.Username,
			MonthYear:   month.String(),
			ActionType:  domain.ActionLock,
			ActionValue: true,
		})
	}
	return s.api.BulkUpdateTimesheetStatus(ctx, reqs)
}

func (s *approvalService) ExportOverview(month calendar.Month, rows []domain.OverviewRow) (string, []byte, error) {
	data, err := export.OverviewExcel(month.String(), rows)
	if err != nil {
		return "", nil, err
	}
	return export.ExcelFileName(month.String()), data, nil
}
