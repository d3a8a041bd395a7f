// Package export renders the timesheet artifacts: the printable PDF month
// statement attached to submissions and the spreadsheet overview for HR.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/nconsulting/timecard/internal/calendar"
	"github.com/nconsulting/timecard/internal/domain"
)

// PDFInput holds everything the month statement renders. Summary and Task may
// be nil for a month the server has never seen; the statement falls back to
// "N/A" placeholders.
type PDFInput struct {
	DisplayName string
	Month       calendar.Month
	Summary     *domain.TimesheetSummary
	Task        *domain.TaskAssignment
	DailyRows   []domain.DailyEntry
}

// PDFFileName returns "<slug>_<YYYY-MM>_timesheet.pdf".
func PDFFileName(slug, monthYear string) string {
	return fmt.Sprintf("%s_%s_timesheet.pdf", slug, monthYear)
}

// MonthPDF renders the month statement: header lines, one table row per
// (day, pay-code entry) covering every day of the month, the Regular/Overtime
// totals, and the signature block.
func MonthPDF(in PDFInput) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(true, 60)
	pdf.AddPage()

	const margin = 40.0
	pdf.SetX(margin)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 14, fmt.Sprintf("%s timesheet for %s", in.DisplayName, in.Month.Range()), "", 1, "L", false, 0, "")

	status, client := "N/A", "N/A"
	if in.Summary != nil && in.Summary.Status != "" {
		status = string(in.Summary.Status)
	}
	if in.Task != nil && in.Task.Client != "" {
		client = in.Task.Client
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 14, fmt.Sprintf("Status: %s | Client: %s | Company Name: N Consulting GMBH", status, client), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 14, "Last Approved: "+formatStamp(summaryManagerApprovedAt(in.Summary)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 14, "Last Submitted: "+formatStamp(summaryUpdatedAt(in.Summary)), "", 1, "L", false, 0, "")
	pdf.Ln(8)

	renderMonthTable(pdf, monthTableRows(in.Month, in.DailyRows))

	totalDays, totalHours := MonthTotals(in.DailyRows)
	pdf.Ln(14)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 14, fmt.Sprintf("Total Hours (Over Time): %.2f", totalHours), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 14, fmt.Sprintf("Total Days (Regular Time): %.2f", totalDays), "", 1, "L", false, 0, "")

	renderSignatures(pdf, in)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering month pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// MonthTotals returns the statement totals: sum of Regular Time hours (days)
// and sum of Overtime hours. Nil hours contribute nothing.
func MonthTotals(rows []domain.DailyEntry) (totalDays, totalHours float64) {
	for _, r := range rows {
		if r.WorkingHours == nil {
			continue
		}
		switch r.PayCode {
		case domain.PayCodeRegular:
			totalDays += *r.WorkingHours
		case domain.PayCodeOvertime:
			totalHours += *r.WorkingHours
		}
	}
	return totalDays, totalHours
}

// monthTableRows builds one table row per (day, entry) pair for every day of
// the month, with the date label only on the first row of each day. Days with
// no entries still produce a single blank row.
func monthTableRows(m calendar.Month, entries []domain.DailyEntry) [][]string {
	var rows [][]string
	for _, day := range m.Days() {
		label := day.Format(calendar.DayLabel)
		wire := day.Format(calendar.WireDate)

		var dayEntries []domain.DailyEntry
		for _, e := range entries {
			if e.Date == wire {
				dayEntries = append(dayEntries, e)
			}
		}

		if len(dayEntries) == 0 {
			rows = append(rows, []string{label, "", "", "", "", ""})
			continue
		}
		for i, e := range dayEntries {
			dateCell := ""
			if i == 0 {
				dateCell = label
			}
			overtime, regular := "", ""
			if e.WorkingHours != nil {
				if e.PayCode == domain.PayCodeOvertime {
					overtime = fmt.Sprintf("%.2f", *e.WorkingHours)
				} else if e.PayCode == domain.PayCodeRegular {
					regular = fmt.Sprintf("%.2f", *e.WorkingHours)
				}
			}
			rows = append(rows, []string{dateCell, overtime, regular, string(e.PayCode), e.LeaveType, e.Comment})
		}
	}
	return rows
}

var tableHeaders = []string{"Date", "Hours", "Days", "Pay Code", "Leave Type", "Comment"}
var tableWidths = []float64{80, 50, 50, 80, 90, 165}

func renderMonthTable(pdf *fpdf.Fpdf, rows [][]string) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(220, 220, 220)
	for i, h := range tableHeaders {
		pdf.CellFormat(tableWidths[i], 14, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	shade := false
	for _, row := range rows {
		// A non-empty date cell starts a new day group; alternate shading
		// per day, not per row.
		if row[0] != "" {
			shade = !shade
		}
		if shade {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		for i, cell := range row {
			pdf.CellFormat(tableWidths[i], 12, cell, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}
}

func renderSignatures(pdf *fpdf.Fpdf, in PDFInput) {
	pdf.Ln(30)
	y := pdf.GetY()
	const margin = 40.0
	const colWidth = 200.0

	pdf.Line(margin, y, margin+colWidth, y)
	pdf.Line(margin+300, y, margin+300+colWidth, y)

	hrApprover := "N/A"
	if in.Summary != nil && in.Summary.IsApprovedHRBy != nil {
		hrApprover = *in.Summary.IsApprovedHRBy
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.Text(margin, y+12, "Employee Name:")
	pdf.Text(margin+300, y+12, "HR Approver:")
	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(margin+90, y+12, in.DisplayName)
	pdf.Text(margin+300+90, y+12, hrApprover)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.Text(margin, y+27, "Date:")
	pdf.Text(margin+300, y+27, "Date:")
	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(margin+90, y+27, formatStamp(summaryUpdatedAt(in.Summary)))
	pdf.Text(margin+300+90, y+27, formatStamp(summaryManagerApprovedAt(in.Summary)))
}

func summaryUpdatedAt(s *domain.TimesheetSummary) string {
	if s == nil {
		return ""
	}
	return s.UpdatedAt
}

func summaryManagerApprovedAt(s *domain.TimesheetSummary) string {
	if s == nil || s.IsApprovedTimesheetManagerAt == nil {
		return ""
	}
	return *s.IsApprovedTimesheetManagerAt
}

// formatStamp renders a server timestamp as DD-MMM-YYYY, or "N/A" when blank
// or unparseable.
func formatStamp(stamp string) string {
	if stamp == "" {
		return "N/A"
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", calendar.WireDate} {
		if t, err := time.Parse(layout, stamp); err == nil {
			return t.Format(calendar.DayLabel)
		}
	}
	return "N/A"
}
