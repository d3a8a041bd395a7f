package domain

// DailyEntry is one per-day timesheet record as stored by the server.
// WorkingHours is nil when the user never touched the cell; an explicit 0
// is a distinct value and requires a comment before save/submit.
type DailyEntry struct {
	Date         string   `json:"date"` // YYYY-MM-DD
	PayCode      PayCode  `json:"payCode"`
	WorkingHours *float64 `json:"workingHours"`
	LeaveType    string   `json:"leaveType"`
	Comment      string   `json:"comment"`
}

// TimesheetSummary is the server-authoritative month summary. The approval
// By/At fields are nil until the corresponding approver has acted.
type TimesheetSummary struct {
	MonthYear                    string  `json:"monthYear"` // YYYY-MM
	Status                       Status  `json:"status"`
	WorkingDays                  int     `json:"workingDays"`
	TotalHours                   float64 `json:"totalHours"`
	IsApproved                   bool    `json:"isApproved"`
	IsLocked                     bool    `json:"isLocked"`
	IsApprovedTimesheetManager   bool    `json:"isApprovedTimesheetManager"`
	IsApprovedTimesheetManagerBy *string `json:"isApprovedTimesheetManagerBy"`
	IsApprovedTimesheetManagerAt *string `json:"isApprovedTimesheetManagerAt"`
	IsApprovedHR                 bool    `json:"isApprovedHR"`
	IsApprovedHRBy               *string `json:"isApprovedHRBy"`
	IsApprovedHRAt               *string `json:"isApprovedHRAt"`
	UpdatedAt                    string  `json:"updatedAt"`
}

// TaskAssignment is the per-employee task policy for a month. AllowOvertime
// gates the Overtime grid row; EnableWeekend gates weekend cell editing.
type TaskAssignment struct {
	Project           string `json:"project"`
	Client            string `json:"client"`
	Task              string `json:"task"`
	TimesheetApprover string `json:"timesheetApprover"`
	HRApprover        string `json:"hrApprover"`
	AllowOvertime     bool   `json:"allowOvertime"`
	EnableWeekend     bool   `json:"enableWeekend"`
}

type HolidayEvent struct {
	HolidayID int    `json:"holidayId"`
	EventName string `json:"eventName"`
	EventDate string `json:"eventDate"` // YYYY-MM-DD
	EventType string `json:"eventType"`
	City      string `json:"city"`
}

// AuditLogEntry is an append-only activity record; the client only reads these.
type AuditLogEntry struct {
	ActionType  string  `json:"actionType"`
	PerformedBy string  `json:"performedBy"`
	Role        Role    `json:"role"`
	PerformedAt string  `json:"performedAt"`
	Comment     *string `json:"comment"`
}

// OverviewRow is one employee-month line in the approver overview table.
type OverviewRow struct {
	Username                     string  `json:"username"`
	MonthYear                    string  `json:"monthYear"`
	Status                       Status  `json:"status"`
	WorkingDays                  int     `json:"workingDays"`
	TotalHours                   float64 `json:"totalHours"`
	IsApprovedTimesheetManager   bool    `json:"isApprovedTimesheetManager"`
	IsApprovedTimesheetManagerBy *string `json:"isApprovedTimesheetManagerBy"`
	IsApprovedHR                 bool    `json:"isApprovedHR"`
	IsApprovedHRBy               *string `json:"isApprovedHRBy"`
	IsLocked                     bool    `json:"isLocked"`
}
