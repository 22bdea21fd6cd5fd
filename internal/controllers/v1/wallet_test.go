package v1_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	v1 "github.com/thucthuc0607-code/SmartFin-2/internal/controllers/v1"
	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
	"github.com/thucthuc0607-code/SmartFin-2/test"
)

func (suite *TestSuiteStandard) TestWalletsGetAll() {
	r := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/wallets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.WalletListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 3)
	suite.Equal(models.WalletCash, response.Data[0].ID)
	suite.Equal("Tiền mặt", response.Data[0].Name)
	suite.Equal("1500000", response.Data[0].Balance.String())
	suite.Equal("http://example.com/v1/wallets/cash", response.Data[0].Links.Self)
	suite.Equal(models.WalletBank, response.Data[1].ID)
	suite.Equal(models.WalletEwallet, response.Data[2].ID)
}

func (suite *TestSuiteStandard) TestWalletsGetSingle() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Cash", "cash", http.StatusOK},
		{"E-Wallet", "ewallet", http.StatusOK},
		{"Unknown wallet", "piggybank", http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodGet, "http://example.com/v1/wallets/"+tt.id, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.WalletResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status == http.StatusOK {
				assert.Equal(t, models.WalletType(tt.id), response.Data.ID)
			} else {
				assert.Equal(t, models.ErrWalletNotFound.Error(), *response.Error)
			}
		})
	}
}

// TestWalletsUpdate verifies that the balance can be overridden and that
// later transactions apply to the new balance.
func (suite *TestSuiteStandard) TestWalletsUpdate() {
	tests := []struct {
		name    string
		id      string
		body    any
		status  int
		balance string
	}{
		{"Number", "bank", map[string]any{"balance": 2000000}, http.StatusOK, "2000000"},
		{"String", "bank", map[string]any{"balance": "2000k"}, http.StatusOK, "2000000"},
		{"Negative", "cash", map[string]any{"balance": -50000}, http.StatusOK, "-50000"},
		{"Empty body", "cash", "", http.StatusBadRequest, ""},
		{"Unknown wallet", "piggybank", map[string]any{"balance": 1000}, http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.SetupTest()

			r := test.Request(suite.co, t, http.MethodPatch, "http://example.com/v1/wallets/"+tt.id, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.WalletResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status == http.StatusOK {
				assert.Equal(t, tt.balance, response.Data.Balance.String())
				assert.Equal(t, tt.balance, suite.balance(models.WalletType(tt.id)))
			} else {
				assert.NotNil(t, response.Error)
			}
		})
	}

	suite.SetupTest()
	r := test.Request(suite.co, suite.T(), http.MethodPatch, "http://example.com/v1/wallets/cash", map[string]any{"balance": "100k"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	suite.createTestTransaction(suite.T(), map[string]any{"amount": "30k"})
	suite.Equal("70000", suite.balance(models.WalletCash))
}

func (suite *TestSuiteStandard) TestWalletsOptions() {
	r := test.Request(suite.co, suite.T(), http.MethodOptions, "http://example.com/v1/wallets", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Equal("OPTIONS, GET", r.Header().Get("allow"))

	r = test.Request(suite.co, suite.T(), http.MethodOptions, "http://example.com/v1/wallets/cash", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Equal("OPTIONS, GET, PATCH", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestBudget() {
	r := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/budget", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Equal("5000000", response.Data.Limit.String())
	suite.Equal("1250000", response.Data.WeeklyLimit.String())

	tests := []struct {
		name   string
		body   any
		status int
		limit  string
		weekly string
	}{
		{"Number", map[string]any{"limit": 8000000}, http.StatusOK, "8000000", "2000000"},
		{"String", map[string]any{"limit": "6000k"}, http.StatusOK, "6000000", "1500000"},
		{"Zero", map[string]any{"limit": 0}, http.StatusOK, "0", "0"},
		{"Negative", map[string]any{"limit": -1}, http.StatusBadRequest, "", ""},
		{"Empty body", "", http.StatusBadRequest, "", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodPatch, "http://example.com/v1/budget", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.BudgetResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status != http.StatusOK {
				assert.NotNil(t, response.Error)
				return
			}

			assert.Equal(t, tt.limit, response.Data.Limit.String())
			assert.Equal(t, tt.weekly, response.Data.WeeklyLimit.String())
			assert.Equal(t, tt.limit, suite.co.Ledger.Budget().Limit.String())
		})
	}
}

func (suite *TestSuiteStandard) TestPreferences() {
	tests := []struct {
		name     string
		method   string
		body     any
		status   int
		darkMode bool
	}{
		{"Default", http.MethodGet, "", http.StatusOK, false},
		{"Enable", http.MethodPatch, map[string]any{"darkMode": true}, http.StatusOK, true},
		{"Empty object keeps the value", http.MethodPatch, map[string]any{}, http.StatusOK, true},
		{"Read back", http.MethodGet, "", http.StatusOK, true},
		{"Disable", http.MethodPatch, map[string]any{"darkMode": false}, http.StatusOK, false},
		{"Wrong type", http.MethodPatch, map[string]any{"darkMode": "yes"}, http.StatusBadRequest, false},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, tt.method, "http://example.com/v1/preferences", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.PreferencesResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status == http.StatusOK {
				assert.Equal(t, tt.darkMode, response.Data.DarkMode)
			}
			assert.Equal(t, tt.darkMode, suite.co.Ledger.DarkMode())
		})
	}
}

func (suite *TestSuiteStandard) TestCategories() {
	r := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoriesResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Contains(response.Data.Expense, "Ăn uống")
	suite.Contains(response.Data.Expense, models.BillCategory)
	suite.Contains(response.Data.Income, "Lương")
	suite.NotContains(response.Data.Income, models.BillCategory)
	suite.Equal(models.BillCategory, response.Data.Bill)
	suite.Equal(models.OtherCategory, response.Data.Other)
	suite.Contains(response.Data.NoteSuggestions["Ăn uống"], "Cafe")
}
