package export

import (
	"testing"
	"time"

	"github.com/nconsulting/timecard/internal/calendar"
	"github.com/nconsulting/timecard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hours(v float64) *float64 { return &v }

func feb2024() calendar.Month {
	return calendar.Month{Year: 2024, Month: time.February}
}

func TestMonthTableRows_CoversEveryDay(t *testing.T) {
	entries := []domain.DailyEntry{
		{Date: "2024-02-05", PayCode: domain.PayCodeRegular, WorkingHours: hours(8)},
		{Date: "2024-02-05", PayCode: domain.PayCodeOvertime, WorkingHours: hours(2)},
		{Date: "2024-02-06", PayCode: domain.PayCodeRegular, WorkingHours: hours(0), Comment: "public holiday makeup"},
	}
	rows := monthTableRows(feb2024(), entries)

	// 29 days, with Feb 5 contributing one extra row.
	require.Len(t, rows, 30)

	labels := map[string]int{}
	for _, r := range rows {
		if r[0] != "" {
			labels[r[0]]++
		}
	}
	assert.Len(t, labels, 29, "every day appears exactly once as a group")
	for _, n := range labels {
		assert.Equal(t, 1, n)
	}

	// Feb 5: date only on the first row of the group; hours in the Days
	// column for Regular, the Hours column for Overtime.
	assert.Equal(t, []string{"05-Feb-2024", "", "8.00", "Regular Time", "", ""}, rows[4])
	assert.Equal(t, []string{"", "2.00", "", "Overtime", "", ""}, rows[5])
	assert.Equal(t, []string{"06-Feb-2024", "", "0.00", "Regular Time", "", "public holiday makeup"}, rows[6])

	// An empty day renders a single blank row.
	assert.Equal(t, []string{"01-Feb-2024", "", "", "", "", ""}, rows[0])
}

func TestMonthTotals(t *testing.T) {
	entries := []domain.DailyEntry{
		{Date: "2024-02-05", PayCode: domain.PayCodeRegular, WorkingHours: hours(8)},
		{Date: "2024-02-06", PayCode: domain.PayCodeRegular, WorkingHours: hours(7.5)},
		{Date: "2024-02-05", PayCode: domain.PayCodeOvertime, WorkingHours: hours(2)},
		{Date: "2024-02-07", PayCode: domain.PayCodeOvertime, WorkingHours: hours(1.5)},
		{Date: "2024-02-08", PayCode: domain.PayCodeRegular},
	}
	days, overtime := MonthTotals(entries)
	assert.Equal(t, 15.5, days)
	assert.Equal(t, 3.5, overtime)
}

func TestMonthPDF_ProducesDocument(t *testing.T) {
	at := "2024-03-01T09:00:00Z"
	data, err := MonthPDF(PDFInput{
		DisplayName: "Jane Doe",
		Month:       feb2024(),
		Summary: &domain.TimesheetSummary{
			MonthYear:                    "2024-02",
			Status:                       domain.StatusSubmitted,
			UpdatedAt:                    at,
			IsApprovedTimesheetManagerAt: &at,
		},
		Task: &domain.TaskAssignment{Client: "Acme GmbH"},
		DailyRows: []domain.DailyEntry{
			{Date: "2024-02-05", PayCode: domain.PayCodeRegular, WorkingHours: hours(8)},
		},
	})
	require.NoError(t, err)
	assert.True(t, len(data) > 1000)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestPDFFileName(t *testing.T) {
	assert.Equal(t, "Jane_Doe_2024-02_timesheet.pdf", PDFFileName("Jane_Doe", "2024-02"))
}

func TestFormatStamp(t *testing.T) {
	assert.Equal(t, "N/A", formatStamp(""))
	assert.Equal(t, "N/A", formatStamp("yesterday"))
	assert.Equal(t, "01-Mar-2024", formatStamp("2024-03-01T09:00:00Z"))
	assert.Equal(t, "01-Mar-2024", formatStamp("2024-03-01"))
}
