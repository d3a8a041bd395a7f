package domain

// Status is the lifecycle status of a monthly timesheet as reported by the
// server. StatusFuture is a display-only value used by the month selector for
// months that have not started yet; the server never returns it.
type Status string

const (
	StatusNotSubmitted Status = "Not Submitted"
	StatusSaved        Status = "Saved"
	StatusSubmitted    Status = "Submitted"
	StatusApproved     Status = "Approved"
	StatusRejected     Status = "Rejected"
	StatusLocked       Status = "Locked"
	StatusFuture       Status = "Future"
)

type PayCode string

const (
	PayCodeRegular  PayCode = "Regular Time"
	PayCodeOvertime PayCode = "Overtime"
)

type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleHR        Role = "HR Manager"
	RoleApprover  Role = "Timesheet Approver"
	RoleEmployee  Role = "Employee"
)

// CanApprove reports whether the role may act on approval columns at all.
func (r Role) CanApprove() bool {
	return r == RoleAdmin || r == RoleHR || r == RoleApprover
}

// CanLock reports whether the role may lock or unlock a timesheet.
func (r Role) CanLock() bool {
	return r == RoleAdmin || r == RoleHR
}

// ActionType identifies a timesheet status-change action on the wire.
type ActionType string

const (
	ActionHRApproval      ActionType = "HR_APPROVAL"
	ActionManagerApproval ActionType = "MANAGER_APPROVAL"
	ActionLock            ActionType = "LOCK"
)

// EventTypeHoliday is the calendar event type that blocks timesheet cells.
// Other event types (e.g. observances) are informational only.
const EventTypeHoliday = "Holiday"
