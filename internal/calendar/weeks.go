package calendar

import (
	"fmt"
	"time"
)

// DaysPerWeek is the fixed width of a week bucket, Monday at index 0.
const DaysPerWeek = 7

// DayDescriptor describes one cell position in the week grid.
type DayDescriptor struct {
	Date      time.Time
	InMonth   bool
	IsWeekend bool
}

// WeekBucket is one row of the month grid: seven consecutive days starting on
// Monday, plus the tab label shown to the user. Boundary days belonging to
// the adjacent month carry InMonth=false and never count toward the label.
type WeekBucket struct {
	Days  [DaysPerWeek]DayDescriptor
	Label string
}

// WeeksOf returns the ordered week buckets covering month m, from the Monday
// on or before the 1st through the Sunday on or after the last day. The
// weekend-edit policy only affects the editable-day count in each label;
// the IsWeekend flag is set for Saturday and Sunday regardless.
func WeeksOf(m Month, allowWeekendEdit bool) []WeekBucket {
	startMonth := m.First()
	endMonth := m.Last()

	cursor := mondayOnOrBefore(startMonth)

	var weeks []WeekBucket
	for !cursor.After(endMonth) {
		var bucket WeekBucket
		editable := 0
		for i := 0; i < DaysPerWeek; i++ {
			date := cursor.AddDate(0, 0, i)
			d := DayDescriptor{
				Date:      date,
				InMonth:   m.Contains(date),
				IsWeekend: isoWeekday(date) >= 6,
			}
			if d.InMonth && !(d.IsWeekend && !allowWeekendEdit) {
				editable++
			}
			bucket.Days[i] = d
		}

		// Tab label shows the in-month slice of the week only.
		tabStart := bucket.Days[0].Date
		if tabStart.Before(startMonth) {
			tabStart = startMonth
		}
		tabEnd := bucket.Days[DaysPerWeek-1].Date
		if tabEnd.After(endMonth) {
			tabEnd = endMonth
		}
		bucket.Label = fmt.Sprintf("%s - %s (%d days)",
			tabStart.Format("Jan 02"), tabEnd.Format("Jan 02"), editable)

		weeks = append(weeks, bucket)
		cursor = cursor.AddDate(0, 0, DaysPerWeek)
	}
	return weeks
}

// WeekIndexOf returns the index of the week containing date, or -1.
func WeekIndexOf(weeks []WeekBucket, date time.Time) int {
	for i, w := range weeks {
		for _, d := range w.Days {
			if SameDay(d.Date, date) {
				return i
			}
		}
	}
	return -1
}

func mondayOnOrBefore(t time.Time) time.Time {
	return t.AddDate(0, 0, 1-isoWeekday(t))
}

// isoWeekday returns 1 for Monday through 7 for Sunday.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
