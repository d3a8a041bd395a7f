package formatter

import (
	"fmt"
	"strconv"

	"github.com/nconsulting/timecard/internal/domain"
)

// FormatOverview renders the approver overview table.
func FormatOverview(rows []domain.OverviewRow) string {
	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{
			r.Username,
			Status(r.Status),
			strconv.Itoa(r.WorkingDays),
			strconv.FormatFloat(r.TotalHours, 'f', -1, 64),
			approvalCell(r.IsApprovedTimesheetManager, r.IsApprovedTimesheetManagerBy),
			approvalCell(r.IsApprovedHR, r.IsApprovedHRBy),
			lockCell(r.IsLocked),
		})
	}
	return RenderTable(
		[]string{"Username", "Status", "Days", "Overtime", "Manager", "HR", "Lock"},
		table,
	)
}

func approvalCell(approved bool, by *string) string {
	if by == nil {
		return StyleDim.Render("pending")
	}
	if approved {
		return StyleGreen.Render("✓ " + *by)
	}
	return StyleRed.Render("✗ " + *by)
}

func lockCell(locked bool) string {
	if locked {
		return StylePurple.Render("locked")
	}
	return ""
}

// FormatAuditLog renders the activity log, newest first as the server
// returns it.
func FormatAuditLog(entries []domain.AuditLogEntry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		comment := ""
		if e.Comment != nil {
			comment = *e.Comment
		}
		rows = append(rows, []string{
			e.PerformedAt,
			e.ActionType,
			fmt.Sprintf("%s (%s)", e.PerformedBy, e.Role),
			comment,
		})
	}
	return RenderTable([]string{"When", "Action", "By", "Comment"}, rows)
}
