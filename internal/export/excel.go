package export

import (
	"bytes"
	"fmt"

	"github.com/nconsulting/timecard/internal/domain"
	"github.com/xuri/excelize/v2"
)

// ExcelFileName returns "timesheet_overview_<YYYY-MM>.xlsx".
func ExcelFileName(monthYear string) string {
	return fmt.Sprintf("timesheet_overview_%s.xlsx", monthYear)
}

var overviewHeaders = []string{
	"Username", "Month", "Status", "Working Days", "Total Hours",
	"Manager Approval", "Approved By", "HR Approval", "HR Approved By", "Locked",
}

// OverviewExcel renders the approver overview table as a spreadsheet.
func OverviewExcel(monthYear string, rows []domain.OverviewRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Overview"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("creating overview sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("removing default sheet: %w", err)
	}

	for col, h := range overviewHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("writing header %s: %w", h, err)
		}
	}

	for i, r := range rows {
		values := []any{
			r.Username,
			r.MonthYear,
			string(r.Status),
			r.WorkingDays,
			r.TotalHours,
			approvalLabel(r.IsApprovedTimesheetManager, r.IsApprovedTimesheetManagerBy),
			strOrEmpty(r.IsApprovedTimesheetManagerBy),
			approvalLabel(r.IsApprovedHR, r.IsApprovedHRBy),
			strOrEmpty(r.IsApprovedHRBy),
			lockLabel(r.IsLocked),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("writing row %d: %w", i+1, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing overview workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// approvalLabel mirrors the overview column text: Pending until the
// approver acts, then Approved or Rejected.
func approvalLabel(approved bool, by *string) string {
	if by == nil {
		return "Pending"
	}
	if approved {
		return "Approved"
	}
	return "Rejected"
}

func lockLabel(locked bool) string {
	if locked {
		return "Locked"
	}
	return ""
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
