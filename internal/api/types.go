package api

import "github.com/nconsulting/timecard/internal/domain"

// MonthDetail is the response of TimeSheet/GetTimesheetByMonth: everything
// needed to render one employee-month.
type MonthDetail struct {
	Summary     *domain.TimesheetSummary `json:"summary"`
	DailyRows   []domain.DailyEntry      `json:"dailyRows"`
	TaskDetails []domain.TaskAssignment  `json:"taskDetails"`
	Holidays    []domain.HolidayEvent    `json:"holidays"`
}

// SaveTimesheetRequest is the full-month overwrite sent by save and submit.
// WorkingDays and TotalHours are the client-computed totals; the server
// stores them as sent. PDFBase64/FileName are only set on submit.
type SaveTimesheetRequest struct {
	MonthYear   string              `json:"MonthYear"`
	Status      domain.Status       `json:"Status"`
	WorkingDays int                 `json:"WorkingDays"`
	TotalHours  float64             `json:"TotalHours"`
	IsApproved  bool                `json:"IsApproved"`
	IsLocked    bool                `json:"IsLocked"`
	Timesheet   []domain.DailyEntry `json:"Timesheet"`
	PDFBase64   string              `json:"pdfBase64,omitempty"`
	FileName    string              `json:"fileName,omitempty"`
}

// StatusChangeRequest is one approval/lock action. Comment is nil except on
// a rejection, where the dispatcher requires it to be non-empty.
type StatusChangeRequest struct {
	Username    string            `json:"username"`
	MonthYear   string            `json:"monthYear"`
	ActionType  domain.ActionType `json:"actionType"`
	ActionValue bool              `json:"actionValue"`
	Comment     *string           `json:"comment"`
}

// LoginResult is the identity payload returned by Auth/Login.
type LoginResult struct {
	Username   string      `json:"username"`
	FirstName  string      `json:"firstName"`
	LastName   string      `json:"lastName"`
	EmployeeID string      `json:"employeeId"`
	Role       domain.Role `json:"role"`
	Token      string      `json:"token"`
	Expiration string      `json:"expiration"`
}

// ManagerLists holds the approver choices offered by the task form.
type ManagerLists struct {
	TimesheetApprovers []string `json:"timesheetApprovers"`
	HRApprovers        []string `json:"hrApprovers"`
}
