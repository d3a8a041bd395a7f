// Package service contains the application use cases. Services validate
// locally, talk to the remote timesheet API, and keep the small local state
// (login session, grid drafts) consistent with what the server accepted.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/nconsulting/timecard/internal/api"
	"github.com/nconsulting/timecard/internal/calendar"
	"github.com/nconsulting/timecard/internal/domain"
	"github.com/nconsulting/timecard/internal/session"
	"github.com/nconsulting/timecard/internal/workflow"
)

var (
	// ErrStaleLoad means a newer month load started while this one was in
	// flight; the caller must drop the result.
	ErrStaleLoad = errors.New("month load superseded by a newer request")

	// ErrCommentRequired blocks a rejection that carries no comment. The
	// request never reaches the server.
	ErrCommentRequired = errors.New("a comment is required when rejecting a timesheet")

	// ErrNotPermitted means the viewer's role does not allow the action on
	// the given timesheet in its current state.
	ErrNotPermitted = errors.New("action not permitted")

	// ErrEmailTaken means the employee email is already registered.
	ErrEmailTaken = errors.New("email is already registered")
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (*session.Context, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*session.Context, error)
}

type TimesheetService interface {
	// LoadMonth fetches one employee-month and builds an editing session.
	// targetUser is empty when the viewer loads their own sheet.
	LoadMonth(ctx context.Context, viewer session.Context, targetUser string, month calendar.Month) (*workflow.Session, error)

	// Save assembles the grid and stores it with status Saved, then
	// refreshes the session from the server response.
	Save(ctx context.Context, s *workflow.Session) error

	// Submit assembles the grid, attaches the rendered PDF statement, and
	// stores it with status Submitted.
	Submit(ctx context.Context, s *workflow.Session) error

	ActivityLog(ctx context.Context, s *workflow.Session) ([]domain.AuditLogEntry, error)

	// MonthSelector returns the current and next month cards.
	MonthSelector(ctx context.Context, viewer session.Context, now time.Time) ([]calendar.SelectorEntry, error)

	// ExportPDF renders the month statement without contacting the server.
	ExportPDF(s *workflow.Session) (fileName string, data []byte, err error)

	SaveDraft(ctx context.Context, s *workflow.Session) error
	// RestoreDraft replaces the session grid with a stored draft when one
	// exists and the sheet is still editable. Reports whether it applied.
	RestoreDraft(ctx context.Context, s *workflow.Session) (bool, error)
	DiscardDraft(ctx context.Context, s *workflow.Session) error
}

type ApprovalService interface {
	Overview(ctx context.Context, viewer session.Context, month calendar.Month) ([]domain.OverviewRow, error)

	// SetApproval dispatches one approval, rejection, lock or unlock. A
	// rejection with a blank comment fails locally with ErrCommentRequired.
	SetApproval(ctx context.Context, viewer session.Context, row domain.OverviewRow, action domain.ActionType, approve bool, comment string) error

	// BulkLock locks every given row in one batch. If any row has not been
	// approved by the timesheet manager the whole batch is aborted and no
	// request is dispatched.
	BulkLock(ctx context.Context, viewer session.Context, month calendar.Month, rows []domain.OverviewRow) error

	// ExportOverview renders the overview table as a spreadsheet.
	ExportOverview(month calendar.Month, rows []domain.OverviewRow) (fileName string, data []byte, err error)
}

type EmployeeService interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Get(ctx context.Context, email string) (*domain.Employee, error)
	Create(ctx context.Context, e domain.Employee) error
	Update(ctx context.Context, e domain.Employee) error
	SetActive(ctx context.Context, email string, active bool) error
	Departments(ctx context.Context) ([]domain.Department, error)
}

type ProjectService interface {
	List(ctx context.Context) ([]domain.Project, error)
	Save(ctx context.Context, p domain.Project) error
	SetStatus(ctx context.Context, projectID int, status string) error
}

type TaskService interface {
	List(ctx context.Context) ([]domain.Task, error)
	Save(ctx context.Context, t domain.Task) error
	AssignableUsers(ctx context.Context) ([]domain.Employee, error)
	Managers(ctx context.Context) (*api.ManagerLists, error)
}

type HolidayService interface {
	List(ctx context.Context) ([]domain.HolidayEvent, error)
	Save(ctx context.Context, events []domain.HolidayEvent) error
	Delete(ctx context.Context, holidayID int) error
}
