// Package testutil provides shared fixtures: an in-memory local store, a
// scriptable fake of the remote service client, and domain record builders.
package testutil

import (
	"github.com/nconsulting/timecard/internal/api"
	"github.com/nconsulting/timecard/internal/domain"
	"github.com/nconsulting/timecard/internal/session"
)

// Hours returns a pointer to v, for building DailyEntry fixtures.
func Hours(v float64) *float64 { return &v }

// StrPtr returns a pointer to s.
func StrPtr(s string) *string { return &s }

// NewTestViewer returns an employee session context.
func NewTestViewer(opts ...func(*session.Context)) session.Context {
	sc := session.Context{
		Username:   "jdoe",
		FirstName:  "Jane",
		LastName:   "Doe",
		EmployeeID: "E-1042",
		Role:       domain.RoleEmployee,
		Token:      "test-token",
	}
	for _, opt := range opts {
		opt(&sc)
	}
	return sc
}

// WithRole overrides the viewer role.
func WithRole(role domain.Role) func(*session.Context) {
	return func(sc *session.Context) { sc.Role = role }
}

// NewTestSummary returns a month summary with the given status.
func NewTestSummary(monthYear string, status domain.Status, opts ...func(*domain.TimesheetSummary)) *domain.TimesheetSummary {
	s := &domain.TimesheetSummary{MonthYear: monthYear, Status: status}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithLock marks the summary locked.
func WithLock() func(*domain.TimesheetSummary) {
	return func(s *domain.TimesheetSummary) {
		s.IsLocked = true
	}
}

// WithManagerApproval records a manager approval on the summary.
func WithManagerApproval(by string) func(*domain.TimesheetSummary) {
	return func(s *domain.TimesheetSummary) {
		s.IsApprovedTimesheetManager = true
		s.IsApprovedTimesheetManagerBy = &by
	}
}

// NewTestDetail returns a month detail with a default task assignment.
func NewTestDetail(monthYear string, status domain.Status, entries ...domain.DailyEntry) *api.MonthDetail {
	return &api.MonthDetail{
		Summary:   NewTestSummary(monthYear, status),
		DailyRows: entries,
		TaskDetails: []domain.TaskAssignment{{
			Project:           "Phoenix",
			Client:            "Acme GmbH",
			Task:              "Backend development",
			TimesheetApprover: "pmurphy",
			HRApprover:        "ahr",
			AllowOvertime:     true,
			EnableWeekend:     false,
		}},
	}
}

// NewTestOverviewRow returns an overview row for approver-flow tests.
func NewTestOverviewRow(username string, status domain.Status, opts ...func(*domain.OverviewRow)) domain.OverviewRow {
	r := domain.OverviewRow{
		Username:    username,
		MonthYear:   "2024-02",
		Status:      status,
		WorkingDays: 20,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RowWithManagerApproval marks the overview row approved by the manager.
func RowWithManagerApproval(by string) func(*domain.OverviewRow) {
	return func(r *domain.OverviewRow) {
		r.IsApprovedTimesheetManager = true
		r.IsApprovedTimesheetManagerBy = &by
	}
}
