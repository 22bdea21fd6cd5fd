package analytics

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
	"github.com/thucthuc0607-code/SmartFin-2/internal/types"
)

// HighSpendPercent is the share of the weekly limit above which a single
// day counts as a high spend day.
const HighSpendPercent = 15

type DayStats struct {
	Day                time.Time       `json:"day" example:"2024-05-13T00:00:00Z"`
	Income             decimal.Decimal `json:"income" example:"0"`
	Expense            decimal.Decimal `json:"expense" example:"230000"`
	Balance            decimal.Decimal `json:"balance" example:"-230000"`
	WeeklyLimitPercent float64         `json:"weeklyLimitPercent" example:"18.4"`
	HighSpend          bool            `json:"highSpend" example:"true"`
}

// NewDayStats sums the transactions on the calendar day of day.
func NewDayStats(transactions []models.Transaction, day time.Time, budget models.BudgetConfig) DayStats {
	s := DayStats{
		Day:     types.StartOfDay(day),
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}

	for _, t := range transactions {
		if !types.SameDay(day, t.Date) {
			continue
		}

		if t.Type == models.TypeIncome {
			s.Income = s.Income.Add(t.Amount)
		} else {
			s.Expense = s.Expense.Add(t.Amount)
		}
	}

	s.Balance = s.Income.Sub(s.Expense)
	s.WeeklyLimitPercent = percentOf(s.Expense, budget.WeeklyLimit())
	s.HighSpend = s.WeeklyLimitPercent > HighSpendPercent

	return s
}

type CalendarDay struct {
	Date       time.Time `json:"date" example:"2024-05-13T00:00:00Z"`
	HasIncome  bool      `json:"hasIncome" example:"false"`
	HasExpense bool      `json:"hasExpense" example:"true"`
}

// Calendar returns the days of the week or month containing reference,
// each flagged with whether it has income or expense transactions.
func Calendar(transactions []models.Transaction, reference time.Time, mode Mode) []CalendarDay {
	var days []time.Time
	if mode == ModeMonth {
		days = types.MonthOf(reference).DayList()
	} else {
		days = types.WeekOf(reference).Days()
	}

	calendar := make([]CalendarDay, len(days))
	for i, day := range days {
		calendar[i].Date = day

		for _, t := range transactions {
			if !types.SameDay(day, t.Date) {
				continue
			}

			if t.Type == models.TypeIncome {
				calendar[i].HasIncome = true
			} else {
				calendar[i].HasExpense = true
			}
		}
	}

	return calendar
}
