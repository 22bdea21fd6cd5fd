// Package forecast turns the spend of a period into a single advisory on
// how the budget is developing.
package forecast

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/thucthuc0607-code/SmartFin-2/internal/analytics"
	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
)

type Kind string

const (
	KindOverBudget     Kind = "over_budget"
	KindBurningFast    Kind = "burning_fast"
	KindWeekendCaution Kind = "weekend_caution"
	KindOnTrack        Kind = "on_track"
	KindDailyCap       Kind = "daily_cap"
)

type Status string

const (
	StatusGood    Status = "good"
	StatusWarning Status = "warning"
	StatusNeutral Status = "neutral"
)

const (
	burnRateWarning = 1.3
	burnRateGood    = 0.85
	weekendUsage    = 70
	onTrackUsage    = 50
	friday          = 5
	saturday        = 6
)

var (
	hundred        = decimal.NewFromInt(100)
	weekendReserve = decimal.RequireFromString("0.4")
)

// Input are the figures the advisory is derived from.
type Input struct {
	Spend         decimal.Decimal
	Limit         decimal.Decimal
	DaysPassed    int
	TotalDays     int
	DaysRemaining int
	Weekday       int // Mon = 1 to Sun = 7
	Mode          analytics.Mode
}

// InputFor builds the input for a window. The limit is the monthly limit
// for months and a quarter of it for weeks.
func InputFor(w analytics.Window, spend decimal.Decimal, budget models.BudgetConfig) Input {
	limit := budget.Limit
	if w.Mode == analytics.ModeWeek {
		limit = budget.WeeklyLimit()
	}

	return Input{
		Spend:         spend,
		Limit:         limit,
		DaysPassed:    w.DaysPassed,
		TotalDays:     w.TotalDays,
		DaysRemaining: w.DaysRemaining,
		Weekday:       w.Weekday,
		Mode:          w.Mode,
	}
}

type Advisory struct {
	Kind    Kind   `json:"kind" example:"daily_cap"`
	Status  Status `json:"status" example:"neutral"`
	Title   string `json:"title" example:"Mục tiêu hàng ngày"`
	Message string `json:"message" example:"Để an toàn, trong 4 ngày tới, mỗi ngày chỉ nên tiêu tối đa 120k."`

	UsagePercent float64         `json:"usagePercent" example:"52"`
	TimePercent  float64         `json:"timePercent" example:"42.86"`
	BurnRate     float64         `json:"burnRate" example:"1.21"`
	Remaining    decimal.Decimal `json:"remaining" example:"480000"`
	RunoutDay    int             `json:"runoutDay,omitempty" example:"5"` // Only set for burning_fast
	Suggested    decimal.Decimal `json:"suggested" example:"120000"`      // The amount the message names
}

// Evaluate picks the first advisory whose condition matches, in this order:
// over budget, burning fast, weekend caution, on track and the daily cap.
func Evaluate(in Input) Advisory {
	a := Advisory{
		Remaining: in.Limit.Sub(in.Spend),
		Suggested: decimal.Zero,
	}

	if in.Limit.IsPositive() {
		a.UsagePercent = in.Spend.Div(in.Limit).Mul(hundred).InexactFloat64()
	}

	if in.TotalDays > 0 {
		a.TimePercent = float64(in.DaysPassed) / float64(in.TotalDays) * 100
	}

	if a.TimePercent > 0 {
		a.BurnRate = a.UsagePercent / a.TimePercent
	}

	switch {
	case a.UsagePercent >= 100:
		a.Kind, a.Status, a.Title = KindOverBudget, StatusWarning, "Vượt ngân sách!"
		a.Suggested = a.Remaining.Abs()
		a.Message = fmt.Sprintf("Bạn đã lố %s. Hãy dừng mọi khoản chi không cần thiết ngay lập tức!", FormatCompact(a.Suggested))

	case a.BurnRate > burnRateWarning && a.Remaining.IsPositive():
		a.Kind, a.Status, a.Title = KindBurningFast, StatusWarning, "Cảnh báo tốc độ!"
		a.RunoutDay = int(math.Floor(100 / (a.UsagePercent / float64(in.DaysPassed))))

		dayName := fmt.Sprintf("ngày %d", a.RunoutDay)
		if in.Mode == analytics.ModeWeek {
			dayName = fmt.Sprintf("thứ %d", a.RunoutDay+1)
		}
		a.Message = fmt.Sprintf("Bạn đang chi gấp %.1fx mức cho phép. Nếu giữ đà này, bạn sẽ \"cháy túi\" vào %s.", a.BurnRate, dayName)

	case in.Mode == analytics.ModeWeek && (in.Weekday == friday || in.Weekday == saturday) && a.UsagePercent > weekendUsage:
		a.Kind, a.Status, a.Title = KindWeekendCaution, StatusNeutral, "Cẩn thận cuối tuần!"
		a.Suggested = a.Remaining.Mul(weekendReserve)
		a.Message = fmt.Sprintf("Cuối tuần thường chi nhiều. Hãy giữ lại ít nhất %s cho việc ăn uống nhé.", FormatCompact(a.Suggested))

	case a.BurnRate < burnRateGood && a.UsagePercent < onTrackUsage:
		a.Kind, a.Status, a.Title = KindOnTrack, StatusGood, "Kiểm soát rất tốt!"

		projected := decimal.Zero
		if in.DaysPassed > 0 {
			projected = in.Spend.Div(decimal.NewFromInt(int64(in.DaysPassed))).Mul(decimal.NewFromInt(int64(in.TotalDays)))
		}
		a.Suggested = in.Limit.Sub(projected)

		period := "tháng"
		if in.Mode == analytics.ModeWeek {
			period = "tuần"
		}
		a.Message = fmt.Sprintf("Bạn đang tiết kiệm. Cứ đà này cuối %s sẽ dư ra khoảng %s.", period, FormatCompact(a.Suggested))

	default:
		a.Kind, a.Status, a.Title = KindDailyCap, StatusNeutral, "Mục tiêu hàng ngày"

		// On the last day, the whole remainder is today's cap
		daily := a.Remaining
		if in.DaysRemaining > 0 {
			daily = a.Remaining.Div(decimal.NewFromInt(int64(in.DaysRemaining)))
		}
		a.Suggested = decimal.Max(decimal.Zero, daily)
		a.Message = fmt.Sprintf("Để an toàn, trong %d ngày tới, mỗi ngày chỉ nên tiêu tối đa %s.", in.DaysRemaining, FormatCompact(a.Suggested))
	}

	return a
}
