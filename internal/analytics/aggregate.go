package analytics

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
	"github.com/thucthuc0607-code/SmartFin-2/internal/types"
	"golang.org/x/exp/slices"
)

// Direction of the change between the prior and the current period.
type Direction string

const (
	DirectionIncrease Direction = "increase"
	DirectionDecrease Direction = "decrease"
	DirectionFlat     Direction = "flat"
)

// NoReason is reported when the current period has no spend.
const NoReason = "N/A"

var weekdayLabels = [7]string{"T2", "T3", "T4", "T5", "T6", "T7", "CN"}

type CategoryTotal struct {
	Category string          `json:"category" example:"Ăn uống"`
	Amount   decimal.Decimal `json:"amount" example:"350000"`
	Share    float64         `json:"share" example:"43.75"` // Percent of the current total
}

type DailyBucket struct {
	Label  string          `json:"label" example:"T2"`
	Date   time.Time       `json:"date" example:"2024-05-13T00:00:00Z"`
	Amount decimal.Decimal `json:"amount" example:"55000"`
}

// Summary is the aggregate over the current window compared to the prior one.
type Summary struct {
	Window        Window          `json:"window"`
	Current       decimal.Decimal `json:"current" example:"800000"`
	Prior         decimal.Decimal `json:"prior" example:"1000000"`
	Diff          decimal.Decimal `json:"diff" example:"-200000"`
	Direction     Direction       `json:"direction" example:"decrease"`
	PercentChange int64           `json:"percentChange" example:"20"`
	Reason        string          `json:"reason" example:"Ăn uống"` // Category with the highest spend
	Breakdown     []CategoryTotal `json:"breakdown"`
	Daily         []DailyBucket   `json:"daily"`
}

// Spend sums the amounts of the transactions counting towards period p of
// the window.
func (w Window) Spend(transactions []models.Transaction, p Period) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range transactions {
		if w.Counts(t, p) {
			sum = sum.Add(t.Amount)
		}
	}
	return sum
}

// Aggregate computes the summary of the transactions for the window
// around now.
func Aggregate(transactions []models.Transaction, now time.Time, mode Mode) Summary {
	w := NewWindow(now, mode)

	s := Summary{
		Window:  w,
		Current: w.Spend(transactions, w.Current),
		Prior:   w.Spend(transactions, w.Prior),
	}

	s.Diff = s.Current.Sub(s.Prior)
	s.Direction = direction(s.Diff)
	s.PercentChange = PercentChange(s.Current, s.Prior)
	s.Breakdown = breakdown(w, transactions, s.Current)
	s.Daily = daily(w, transactions)

	s.Reason = NoReason
	if len(s.Breakdown) > 0 {
		s.Reason = s.Breakdown[0].Category
	}

	return s
}

// PercentChange returns the rounded absolute change from prior to current
// in percent. A change from nothing is 100, no change from nothing is 0.
func PercentChange(current, prior decimal.Decimal) int64 {
	if prior.IsZero() {
		if current.IsPositive() {
			return 100
		}
		return 0
	}

	return current.Sub(prior).Abs().Div(prior).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func direction(diff decimal.Decimal) Direction {
	switch diff.Sign() {
	case 1:
		return DirectionIncrease
	case -1:
		return DirectionDecrease
	}
	return DirectionFlat
}

func breakdown(w Window, transactions []models.Transaction, total decimal.Decimal) []CategoryTotal {
	totals := []CategoryTotal{}
	position := make(map[string]int)

	for _, t := range transactions {
		if !w.Counts(t, w.Current) {
			continue
		}

		i, ok := position[t.Category]
		if !ok {
			i = len(totals)
			position[t.Category] = i
			totals = append(totals, CategoryTotal{Category: t.Category, Amount: decimal.Zero})
		}
		totals[i].Amount = totals[i].Amount.Add(t.Amount)
	}

	// Stable, so equal amounts stay in the order they were first seen
	slices.SortStableFunc(totals, func(a, b CategoryTotal) int {
		return b.Amount.Cmp(a.Amount)
	})

	if total.IsPositive() {
		for i := range totals {
			totals[i].Share = totals[i].Amount.Div(total).Mul(decimal.NewFromInt(100)).InexactFloat64()
		}
	}

	return totals
}

func daily(w Window, transactions []models.Transaction) []DailyBucket {
	var days []time.Time
	if w.Mode == ModeMonth {
		days = types.MonthOf(w.Now).DayList()
	} else {
		days = types.WeekOf(w.Now).Days()
	}

	buckets := make([]DailyBucket, len(days))
	for i, day := range days {
		label := strconv.Itoa(day.Day())
		if w.Mode == ModeWeek {
			label = weekdayLabels[i]
		}

		buckets[i] = DailyBucket{Label: label, Date: day, Amount: decimal.Zero}
	}

	for _, t := range transactions {
		if !w.Counts(t, w.Current) {
			continue
		}

		date := t.Date.In(w.Now.Location())
		i := date.Day() - 1
		if w.Mode == ModeWeek {
			i = types.Weekday(date) - 1
		}
		buckets[i].Amount = buckets[i].Amount.Add(t.Amount)
	}

	return buckets
}
