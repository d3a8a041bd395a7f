package workflow

import "github.com/nconsulting/timecard/internal/domain"

// CanApprove reports whether the viewer may act on the manager/HR approval
// columns for an overview row: approver roles only, and only once the sheet
// has been submitted (or later). Locked sheets still take approval-flag
// changes; the lock only freezes the grid itself.
func CanApprove(role domain.Role, row domain.OverviewRow) bool {
	if !role.CanApprove() {
		return false
	}
	switch row.Status {
	case domain.StatusSubmitted, domain.StatusApproved, domain.StatusLocked:
		return true
	}
	return false
}

// CanLock reports whether the viewer may toggle the lock flag: Admin/HR only,
// and only once timesheet-manager approval exists or the sheet is already
// locked (so it can be unlocked).
func CanLock(role domain.Role, row domain.OverviewRow) bool {
	if !role.CanLock() {
		return false
	}
	if row.Status == domain.StatusLocked {
		return true
	}
	return row.IsApprovedTimesheetManagerBy != nil
}
