// Package calendar holds the small amount of date math the dashboard needs:
// day-granularity dates, Monday-first month grids and the hourly time slots
// offered by the scheduler.
package calendar

import (
	"fmt"
	"time"
)

// Date is a calendar day with no time-of-day or zone. It is comparable and
// safe to use as a map key.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// String returns the YYYY-MM-DD form used as the scheduler key.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time returns midnight UTC of the day.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days later (earlier when n is negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// Compare returns -1, 0 or +1 as d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	return d.Time().Compare(o.Time())
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// WeekdayLabels are the grid column headers, Monday first.
var WeekdayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Week is one row of a month grid. Zero entries are days outside the month.
type Week [7]int

// MonthGrid returns the weeks of the month, Monday first, with days that
// belong to neighbouring months left as zero.
func MonthGrid(year int, month time.Month) []Week {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := DaysIn(year, month)

	// Go weeks start on Sunday; shift so Monday is column 0.
	col := (int(first.Weekday()) + 6) % 7

	var weeks []Week
	var w Week
	for day := 1; day <= days; day++ {
		w[col] = day
		col++
		if col == 7 {
			weeks = append(weeks, w)
			w = Week{}
			col = 0
		}
	}
	if col != 0 {
		weeks = append(weeks, w)
	}
	return weeks
}

// DaysIn returns the number of days in the month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// SlotCount is the number of scheduler slots in a day.
const SlotCount = 24

// TimeSlots returns the fixed hourly slots "00:00" through "23:00".
func TimeSlots() []string {
	slots := make([]string, SlotCount)
	for h := range slots {
		slots[h] = Slot(h)
	}
	return slots
}

// Slot formats an hour as a slot label.
func Slot(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// IsSlot reports whether s is one of the 24 hourly slots.
func IsSlot(s string) bool {
	var h int
	if _, err := fmt.Sscanf(s, "%02d:00", &h); err != nil {
		return false
	}
	return h >= 0 && h < SlotCount && Slot(h) == s
}
