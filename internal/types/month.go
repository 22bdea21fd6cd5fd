// Package types implements calendar values used for period math.
package types

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Month is a month in a specific year, represented by its first instant
// in the location it was created in.
type Month time.Time

// NewMonth returns a new Month in the given location.
func NewMonth(year int, month time.Month, loc *time.Location) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, loc))
}

// MonthOf returns the Month in which a time occurs in that time's location.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month, t.Location())
}

// ParseMonth parses a "YYYY-MM" string into a Month in the given location.
func ParseMonth(s string, loc *time.Location) (Month, error) {
	t, err := time.ParseInLocation("2006-01", s, loc)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", m.String())), nil
}

var fullDate = regexp.MustCompile("^[0-9]{4}-[0-9]{2}-[0-9]{2}$")

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// It accepts "YYYY-MM", "YYYY-MM-DD" and RFC3339 strings. Everything
// except year and month is ignored.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	pattern := time.RFC3339
	switch {
	case fullDate.MatchString(value):
		pattern = "2006-01-02"
	case len(value) == len("2006-01"):
		pattern = "2006-01"
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*m = MonthOf(t)
	return nil
}

// Start returns the first instant of the month.
func (m Month) Start() time.Time {
	return time.Time(m)
}

// End returns the last millisecond of the last day of the month.
func (m Month) End() time.Time {
	return m.AddDate(0, 1).Start().Add(-time.Millisecond)
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return m.End().Day()
}

// DayList returns midnight of every day of the month, in order.
func (m Month) DayList() []time.Time {
	days := make([]time.Time, m.Days())
	for i := range days {
		days[i] = m.Start().AddDate(0, 0, i)
	}
	return days
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	return !t.Before(m.Start()) && t.Before(m.AddDate(0, 1).Start())
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}
