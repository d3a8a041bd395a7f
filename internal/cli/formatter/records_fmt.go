package formatter

import (
	"strconv"

	"github.com/nconsulting/timecard/internal/domain"
)

// FormatEmployees renders the employee directory table.
func FormatEmployees(employees []domain.Employee) string {
	rows := make([][]string, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, []string{
			e.EmployeeID,
			e.FirstName + " " + e.LastName,
			e.Email,
			e.Department,
			string(e.AccessRole),
			activeCell(e.IsActive),
		})
	}
	return RenderTable([]string{"ID", "Name", "Email", "Department", "Role", "Active"}, rows)
}

func activeCell(active bool) string {
	if active {
		return StyleGreen.Render("yes")
	}
	return StyleRed.Render("no")
}

func FormatProjects(projects []domain.Project) string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		id := ""
		if p.ProjectID != nil {
			id = strconv.Itoa(*p.ProjectID)
		}
		rows = append(rows, []string{
			id, p.ProjectName, p.Client, p.PONumber, p.StartDate, p.EndDate, p.Status,
		})
	}
	return RenderTable([]string{"ID", "Project", "Client", "PO", "Start", "End", "Status"}, rows)
}

func FormatTasks(tasks []domain.Task) string {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			t.Username, t.Project, t.Task, t.TimesheetApprover, t.HRApprover,
			boolCell(t.AllowOvertime), boolCell(t.EnableWeekend),
		})
	}
	return RenderTable([]string{"User", "Project", "Task", "Approver", "HR", "Overtime", "Weekend"}, rows)
}

func boolCell(v bool) string {
	if v {
		return "yes"
	}
	return StyleDim.Render("no")
}

func FormatHolidays(events []domain.HolidayEvent) string {
	rows := make([][]string, 0, len(events))
	for _, h := range events {
		name := h.EventName
		if h.EventType == domain.EventTypeHoliday {
			name = StyleRed.Render(name)
		}
		rows = append(rows, []string{
			strconv.Itoa(h.HolidayID), h.EventDate, name, h.EventType, h.City,
		})
	}
	return RenderTable([]string{"ID", "Date", "Event", "Type", "City"}, rows)
}
