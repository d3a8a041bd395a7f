package testutil

import (
	"context"
	"errors"

	"github.com/nconsulting/timecard/internal/api"
	"github.com/nconsulting/timecard/internal/domain"
)

// FakeAPI is a scriptable in-memory implementation of api.Client. Tests set
// the fields they need; unscripted calls fail loudly. Every dispatched
// status-change request is recorded so tests can assert that preconditions
// blocked the network entirely.
type FakeAPI struct {
	Detail      *api.MonthDetail
	DetailErr   error
	AuditLog    []domain.AuditLogEntry
	Overview    []domain.OverviewRow
	LoginResult *api.LoginResult
	Employees   []domain.Employee
	Projects    []domain.Project
	Tasks       []domain.Task
	Holidays    []domain.HolidayEvent
	SaveErr     error
	StatusErr   error

	SavedTimesheets []api.SaveTimesheetRequest
	StatusChanges   []api.StatusChangeRequest
	BulkBatches     [][]api.StatusChangeRequest
	SavedEmployees  []domain.Employee
	SavedProjects   []domain.Project
	SavedTasks      []domain.Task
	SavedHolidays   [][]domain.HolidayEvent
	DeletedHolidays []int
}

var errUnscripted = errors.New("fake api: call not scripted")

func (f *FakeAPI) Login(ctx context.Context, username, password string) (*api.LoginResult, error) {
	if f.LoginResult == nil {
		return nil, errUnscripted
	}
	return f.LoginResult, nil
}

func (f *FakeAPI) GetTimesheetByMonth(ctx context.Context, monthYear, username string) (*api.MonthDetail, error) {
	if f.DetailErr != nil {
		return nil, f.DetailErr
	}
	if f.Detail == nil {
		return &api.MonthDetail{}, nil
	}
	return f.Detail, nil
}

func (f *FakeAPI) SaveTimesheet(ctx context.Context, req api.SaveTimesheetRequest) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.SavedTimesheets = append(f.SavedTimesheets, req)
	return nil
}

func (f *FakeAPI) UpdateTimesheetStatus(ctx context.Context, req api.StatusChangeRequest) error {
	if f.StatusErr != nil {
		return f.StatusErr
	}
	f.StatusChanges = append(f.StatusChanges, req)
	return nil
}

func (f *FakeAPI) BulkUpdateTimesheetStatus(ctx context.Context, reqs []api.StatusChangeRequest) error {
	if f.StatusErr != nil {
		return f.StatusErr
	}
	f.BulkBatches = append(f.BulkBatches, reqs)
	return nil
}

func (f *FakeAPI) GetActivityLog(ctx context.Context, monthYear, username string) ([]domain.AuditLogEntry, error) {
	return f.AuditLog, nil
}

func (f *FakeAPI) GetMonthOverview(ctx context.Context, monthYear string) ([]domain.OverviewRow, error) {
	return f.Overview, nil
}

func (f *FakeAPI) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return f.Employees, nil
}

func (f *FakeAPI) GetEmployee(ctx context.Context, email string) (*domain.Employee, error) {
	for _, e := range f.Employees {
		if e.Email == email {
			return &e, nil
		}
	}
	return nil, errUnscripted
}

func (f *FakeAPI) CheckEmail(ctx context.Context, email string) (bool, error) {
	for _, e := range f.Employees {
		if e.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *FakeAPI) SaveEmployee(ctx context.Context, e domain.Employee, isEdit bool) error {
	f.SavedEmployees = append(f.SavedEmployees, e)
	return nil
}

func (f *FakeAPI) UpdateEmployeeStatus(ctx context.Context, email string, active bool) error {
	return nil
}

func (f *FakeAPI) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	return []domain.Department{{DepartmentName: "Engineering"}, {DepartmentName: "HR"}}, nil
}

func (f *FakeAPI) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return f.Projects, nil
}

func (f *FakeAPI) SaveProject(ctx context.Context, p domain.Project) error {
	f.SavedProjects = append(f.SavedProjects, p)
	return nil
}

func (f *FakeAPI) UpdateProjectStatus(ctx context.Context, projectID int, status string) error {
	return nil
}

func (f *FakeAPI) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return f.Tasks, nil
}

func (f *FakeAPI) SaveTask(ctx context.Context, t domain.Task) error {
	f.SavedTasks = append(f.SavedTasks, t)
	return nil
}

func (f *FakeAPI) TaskUserList(ctx context.Context) ([]domain.Employee, error) {
	return f.Employees, nil
}

func (f *FakeAPI) GetTaskManagers(ctx context.Context) (*api.ManagerLists, error) {
	return &api.ManagerLists{
		TimesheetApprovers: []string{"pmurphy"},
		HRApprovers:        []string{"ahr"},
	}, nil
}

func (f *FakeAPI) ListHolidays(ctx context.Context) ([]domain.HolidayEvent, error) {
	return f.Holidays, nil
}

func (f *FakeAPI) SaveHolidays(ctx context.Context, events []domain.HolidayEvent) error {
	f.SavedHolidays = append(f.SavedHolidays, events)
	return nil
}

func (f *FakeAPI) DeleteHoliday(ctx context.Context, holidayID int) error {
	f.DeletedHolidays = append(f.DeletedHolidays, holidayID)
	return nil
}
