package analytics

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
	"github.com/thucthuc0607-code/SmartFin-2/internal/types"
)

// BudgetBar is one level of the double-decker budget display.
type BudgetBar struct {
	Spent   decimal.Decimal `json:"spent" example:"1200000"`
	Limit   decimal.Decimal `json:"limit" example:"5000000"`
	Percent float64         `json:"percent" example:"24"` // Capped at 100
}

// Overview is the home screen summary.
type Overview struct {
	Wallets        map[models.WalletType]decimal.Decimal `json:"wallets"`
	TotalBalance   decimal.Decimal                       `json:"totalBalance" example:"14450000"`
	Month          types.Month                           `json:"month" example:"2024-05"`
	MonthlyIncome  decimal.Decimal                       `json:"monthlyIncome" example:"15000000"`
	MonthlyExpense decimal.Decimal                       `json:"monthlyExpense" example:"1200000"`
	MonthBudget    BudgetBar                             `json:"monthBudget"`
	WeekBudget     BudgetBar                             `json:"weekBudget"`
}

// NewOverview computes the overview at now.
//
// The month bar counts every expense of the current month, bills
// included. The week bar counts every expense since Monday 00:00 except
// bills.
func NewOverview(transactions []models.Transaction, wallets []models.Wallet, budget models.BudgetConfig, now time.Time) Overview {
	o := Overview{
		Wallets:        make(map[models.WalletType]decimal.Decimal, len(wallets)),
		TotalBalance:   decimal.Zero,
		Month:          types.MonthOf(now),
		MonthlyIncome:  decimal.Zero,
		MonthlyExpense: decimal.Zero,
	}

	for _, w := range wallets {
		o.Wallets[w.ID] = w.Balance
		o.TotalBalance = o.TotalBalance.Add(w.Balance)
	}

	weekStart := types.WeekOf(now).Start()
	weekSpent := decimal.Zero

	for _, t := range transactions {
		if o.Month.Contains(t.Date) {
			if t.Type == models.TypeIncome {
				o.MonthlyIncome = o.MonthlyIncome.Add(t.Amount)
			} else {
				o.MonthlyExpense = o.MonthlyExpense.Add(t.Amount)
			}
		}

		if t.Type == models.TypeExpense && t.Category != models.BillCategory && !t.Date.Before(weekStart) {
			weekSpent = weekSpent.Add(t.Amount)
		}
	}

	o.MonthBudget = newBudgetBar(o.MonthlyExpense, budget.Limit)
	o.WeekBudget = newBudgetBar(weekSpent, budget.WeeklyLimit())

	return o
}

func newBudgetBar(spent, limit decimal.Decimal) BudgetBar {
	return BudgetBar{
		Spent:   spent,
		Limit:   limit,
		Percent: min(percentOf(spent, limit), 100),
	}
}

// percentOf returns part / whole * 100, or 0 for a whole that is not positive.
func percentOf(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}

	return part.Div(whole).Mul(decimal.NewFromInt(100)).InexactFloat64()
}
