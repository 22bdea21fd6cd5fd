package v1_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thucthuc0607-code/SmartFin-2/internal/analytics"
	v1 "github.com/thucthuc0607-code/SmartFin-2/internal/controllers/v1"
	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
	"github.com/thucthuc0607-code/SmartFin-2/test"
)

// createAnalyticsTransactions books transactions around now:
// 100k food on Tuesday, 1.2tr bills on Tuesday, 15tr salary on Wednesday
// and 50k food in the week before.
func (suite *TestSuiteStandard) createAnalyticsTransactions() {
	tuesday := time.Date(2024, 5, 14, 12, 0, 0, 0, time.UTC)

	suite.createTestTransaction(suite.T(), map[string]any{"amount": "100k", "category": "Ăn uống", "date": tuesday})
	suite.createTestTransaction(suite.T(), map[string]any{"amount": "1200k", "category": models.BillCategory, "source": "bank", "date": tuesday})
	suite.createTestTransaction(suite.T(), map[string]any{"amount": "15000k", "type": "income", "category": "Lương", "source": "bank", "date": now.Add(-2 * time.Hour)})
	suite.createTestTransaction(suite.T(), map[string]any{"amount": "50k", "category": "Ăn uống", "date": tuesday.AddDate(0, 0, -6)})
}

func (suite *TestSuiteStandard) TestAnalytics() {
	suite.createAnalyticsTransactions()

	tests := []struct {
		name      string
		query     string
		status    int
		current   string
		prior     string
		direction analytics.Direction
		reason    string
		display   string
	}{
		{"Default is week", "", http.StatusOK, "100000", "50000", analytics.DirectionIncrease, "Ăn uống", "100k"},
		{"Week", "mode=week", http.StatusOK, "100000", "50000", analytics.DirectionIncrease, "Ăn uống", "100k"},
		{"Month includes bills", "mode=month", http.StatusOK, "1350000", "0", analytics.DirectionIncrease, models.BillCategory, "1.4tr"},
		{"Next month", "mode=month&now=2024-06-10T10:00:00Z", http.StatusOK, "0", "1350000", analytics.DirectionDecrease, analytics.NoReason, "0"},
		{"Invalid mode", "mode=year", http.StatusBadRequest, "", "", "", "", ""},
		{"Unparseable now", "now=yesterday", http.StatusBadRequest, "", "", "", "", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodGet, "http://example.com/v1/analytics?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.AnalyticsResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status != http.StatusOK {
				assert.NotNil(t, response.Error)
				return
			}

			require.NotNil(t, response.Data)
			assert.Equal(t, tt.current, response.Data.Current.String())
			assert.Equal(t, tt.prior, response.Data.Prior.String())
			assert.Equal(t, tt.direction, response.Data.Direction)
			assert.Equal(t, tt.reason, response.Data.Reason)
			assert.Equal(t, tt.display, response.Data.Display.Current)
			assert.NotEmpty(t, response.Data.Forecast.Kind)
			assert.NotEmpty(t, response.Data.Forecast.Message)
		})
	}
}

func (suite *TestSuiteStandard) TestOverview() {
	suite.createAnalyticsTransactions()

	r := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/overview", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.OverviewResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)

	o := response.Data
	suite.Equal("1350000", o.Wallets[models.WalletCash].String())
	suite.Equal("26300000", o.Wallets[models.WalletBank].String())
	suite.Equal("450000", o.Wallets[models.WalletEwallet].String())
	suite.Equal("28100000", o.TotalBalance.String())
	suite.Equal("15000000", o.MonthlyIncome.String())
	suite.Equal("1350000", o.MonthlyExpense.String())
	suite.Equal("1350000", o.MonthBudget.Spent.String())
	suite.InDelta(27, o.MonthBudget.Percent, 0.001)
	suite.Equal("100000", o.WeekBudget.Spent.String())
	suite.Equal("1250000", o.WeekBudget.Limit.String())
	suite.InDelta(8, o.WeekBudget.Percent, 0.001)
}

func (suite *TestSuiteStandard) TestDays() {
	suite.createAnalyticsTransactions()

	tests := []struct {
		name         string
		day          string
		status       int
		expense      string
		income       string
		transactions int
	}{
		{"Tuesday", "2024-05-14", http.StatusOK, "1300000", "0", 2},
		{"Wednesday", "2024-05-15", http.StatusOK, "0", "15000000", 1},
		{"Empty day", "2024-05-16", http.StatusOK, "0", "0", 0},
		{"Invalid day", "16-05-2024", http.StatusBadRequest, "", "", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodGet, "http://example.com/v1/days/"+tt.day, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.DayResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status != http.StatusOK {
				assert.Equal(t, "could not parse the date, did you use YYYY-MM-DD format?", *response.Error)
				return
			}

			require.NotNil(t, response.Data)
			assert.Equal(t, tt.expense, response.Data.Expense.String())
			assert.Equal(t, tt.income, response.Data.Income.String())
			assert.Len(t, response.Data.Transactions, tt.transactions)
		})
	}
}

func (suite *TestSuiteStandard) TestCalendar() {
	suite.createAnalyticsTransactions()

	tests := []struct {
		name    string
		query   string
		status  int
		days    int
		expense []int
		income  []int
	}{
		{"Week", "date=2024-05-15", http.StatusOK, 7, []int{1}, []int{2}},
		{"Week defaults to today", "", http.StatusOK, 7, []int{1}, []int{2}},
		{"Prior week", "date=2024-05-08", http.StatusOK, 7, []int{2}, []int{}},
		{"Month", "date=2024-05-01&mode=month", http.StatusOK, 31, []int{7, 13}, []int{14}},
		{"Invalid date", "date=yesterday", http.StatusBadRequest, 0, nil, nil},
		{"Invalid mode", "mode=year", http.StatusBadRequest, 0, nil, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodGet, "http://example.com/v1/calendar?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.CalendarResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status != http.StatusOK {
				assert.NotNil(t, response.Error)
				return
			}

			require.Len(t, response.Data, tt.days)

			expense := []int{}
			income := []int{}
			for i, day := range response.Data {
				if day.HasExpense {
					expense = append(expense, i)
				}
				if day.HasIncome {
					income = append(income, i)
				}
			}

			assert.Equal(t, tt.expense, expense)
			assert.Equal(t, tt.income, income)
		})
	}
}

func (suite *TestSuiteStandard) TestAnalyticsOptions() {
	for _, path := range []string{"/v1/analytics", "/v1/overview", "/v1/days/2024-05-15", "/v1/calendar"} {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodOptions, "http://example.com"+path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, "OPTIONS, GET", r.Header().Get("allow"))
		})
	}
}
