// Package analytics derives period aggregates from a list of
// transactions. All functions are pure and are recomputed on every call.
package analytics

import (
	"errors"
	"time"

	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
	"github.com/thucthuc0607-code/SmartFin-2/internal/types"
)

// Mode selects the aggregation period.
type Mode string

const (
	ModeWeek  Mode = "week"
	ModeMonth Mode = "month"
)

var ErrInvalidMode = errors.New("the mode must be either 'week' or 'month'")

// ParseMode parses a mode. An empty string selects the week.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeWeek:
		return ModeWeek, nil
	case ModeMonth:
		return ModeMonth, nil
	}
	return "", ErrInvalidMode
}

// Period is a closed time interval.
type Period struct {
	Start time.Time `json:"start" example:"2024-05-13T00:00:00Z"`
	End   time.Time `json:"end" example:"2024-05-19T23:59:59.999Z"`
}

// Contains reports whether t lies within the period, bounds included.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// Window describes the current and prior period around a reference time
// and how far the current period has progressed.
type Window struct {
	Mode          Mode      `json:"mode" example:"week"`
	Now           time.Time `json:"now" example:"2024-05-15T10:00:00Z"`
	Current       Period    `json:"current"`
	Prior         Period    `json:"prior"`
	DaysPassed    int       `json:"daysPassed" example:"3"`    // Weekday ordinal (Mon = 1) or day of month
	TotalDays     int       `json:"totalDays" example:"7"`     // 7 or the number of days in the month
	DaysRemaining int       `json:"daysRemaining" example:"4"` // Never negative
	Weekday       int       `json:"weekday" example:"3"`       // ISO weekday of now, Mon = 1 to Sun = 7
}

// NewWindow computes the window for now and mode in now's location.
func NewWindow(now time.Time, mode Mode) Window {
	w := Window{
		Mode:    mode,
		Now:     now,
		Weekday: types.Weekday(now),
	}

	if mode == ModeMonth {
		month := types.MonthOf(now)
		prior := month.AddDate(0, -1)

		w.Current = Period{Start: month.Start(), End: month.End()}
		w.Prior = Period{Start: prior.Start(), End: prior.End()}
		w.TotalDays = month.Days()
		w.DaysPassed = now.Day()
	} else {
		week := types.WeekOf(now)

		w.Current = Period{Start: week.Start(), End: week.End()}
		w.Prior = Period{Start: w.Current.Start.AddDate(0, 0, -7), End: w.Current.End.AddDate(0, 0, -7)}
		w.TotalDays = 7
		w.DaysPassed = w.Weekday
	}

	w.DaysRemaining = max(0, w.TotalDays-w.DaysPassed)
	return w
}

// Counts reports whether a transaction in period p counts towards the
// spend of this window's mode. Only expenses count, and bills only count
// for months.
func (w Window) Counts(t models.Transaction, p Period) bool {
	if t.Type != models.TypeExpense || !p.Contains(t.Date) {
		return false
	}

	if w.Mode == ModeWeek && t.Category == models.BillCategory {
		return false
	}

	return true
}
