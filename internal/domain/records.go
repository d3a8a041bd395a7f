package domain

// Employee is the admin-managed user record. Validation tags are enforced by
// the service layer before any request leaves the client.
type Employee struct {
	EmployeeID   string `json:"employeeId" validate:"required"`
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Department   string `json:"department" validate:"required"`
	Designation  string `json:"designation"`
	WorkLocation string `json:"workLocation" validate:"required"`
	AccessRole   Role   `json:"accessRole" validate:"required,oneof='Admin' 'HR Manager' 'Timesheet Approver' 'Employee'"`
	JoiningDate  string `json:"joiningDate" validate:"omitempty,datetime=2006-01-02"`
	IsActive     bool   `json:"isActive"`
}

type Project struct {
	ProjectID   *int   `json:"projectId"`
	ProjectName string `json:"projectName" validate:"required"`
	Client      string `json:"client"`
	PONumber    string `json:"poNumber" validate:"required"`
	StartDate   string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Status      string `json:"status"`
}

// Task assigns a project task to an employee along with the approvers and the
// timesheet edit policy consumed by the grid.
type Task struct {
	TaskID            *int   `json:"taskId"`
	Username          string `json:"userName" validate:"required"`
	Project           string `json:"project" validate:"required"`
	Client            string `json:"client"`
	Task              string `json:"task" validate:"required"`
	TimesheetApprover string `json:"timesheetApprover" validate:"required"`
	HRApprover        string `json:"hrApprover" validate:"required"`
	AllowOvertime     bool   `json:"allowOvertime"`
	EnableWeekend     bool   `json:"enableWeekend"`
}

type Department struct {
	DepartmentName string `json:"departmentName"`
}
