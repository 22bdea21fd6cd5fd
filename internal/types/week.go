package types

import (
	"time"
)

// Week is an ISO week, represented by its Monday 00:00 in the location
// it was created in.
type Week time.Time

// WeekOf returns the Week in which a time occurs in that time's location.
func WeekOf(t time.Time) Week {
	day := StartOfDay(t)
	return Week(day.AddDate(0, 0, 1-Weekday(t)))
}

// Weekday returns the ISO weekday ordinal of t, Monday = 1 to Sunday = 7.
func Weekday(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}

	return int(t.Weekday())
}

// StartOfDay returns midnight of the day t falls on, in t's location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// Start returns Monday 00:00 of the week.
func (w Week) Start() time.Time {
	return time.Time(w)
}

// End returns the last millisecond of Sunday.
func (w Week) End() time.Time {
	return w.AddWeeks(1).Start().Add(-time.Millisecond)
}

// AddWeeks moves the week by n weeks.
func (w Week) AddWeeks(n int) Week {
	return Week(time.Time(w).AddDate(0, 0, 7*n))
}

// Contains reports whether the time instant is in the week.
func (w Week) Contains(t time.Time) bool {
	return !t.Before(w.Start()) && t.Before(w.AddWeeks(1).Start())
}

// Days returns the seven days of the week, Monday first.
func (w Week) Days() []time.Time {
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = time.Time(w).AddDate(0, 0, i)
	}
	return days
}

// String returns the Monday of the week formatted as YYYY-MM-DD.
func (w Week) String() string {
	return time.Time(w).Format("2006-01-02")
}
