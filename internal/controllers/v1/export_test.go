package v1_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/thucthuc0607-code/SmartFin-2/internal/controllers/v1"
	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
	"github.com/thucthuc0607-code/SmartFin-2/test"
)

func (suite *TestSuiteStandard) TestExport() {
	suite.createTestTransaction(suite.T(), map[string]any{"amount": "35k", "note": "Bún bò"})

	r := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Equal("attachment; filename=smartfin.json", r.Header().Get("Content-Disposition"))

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data.Transactions, 1)
	suite.Equal("Bún bò", response.Data.Transactions[0].Note)
	suite.Len(response.Data.Wallets, 3)
	suite.Equal("5000000", response.Data.BudgetConfig.Limit.String())
}

// TestExportImport verifies that an export can be imported into a fresh state.
func (suite *TestSuiteStandard) TestExportImport() {
	suite.createTestTransaction(suite.T(), map[string]any{"amount": "35k", "note": "Bún bò"})
	suite.createTestTransaction(suite.T(), map[string]any{"amount": "15000k", "type": "income", "source": "bank"})

	r := test.Request(suite.co, suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	var export v1.ExportResponse
	test.DecodeResponse(suite.T(), &r, &export)

	suite.SetupTest()
	r = test.Request(suite.co, suite.T(), http.MethodPost, "http://example.com/v1/import", export.Data)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	suite.Len(suite.co.Ledger.Transactions(), 2)
	suite.Equal("1465000", suite.balance(models.WalletCash))
	suite.Equal("27500000", suite.balance(models.WalletBank))
}

func (suite *TestSuiteStandard) TestImport() {
	transaction := models.Transaction{
		Amount:   decimal.NewFromInt(55000),
		Category: "Ăn uống",
		Source:   models.WalletCash,
		Date:     now,
		Note:     "  Phở  ",
		Type:     models.TypeExpense,
	}

	tests := []struct {
		name   string
		doc    models.Document
		status int
		err    string
	}{
		{
			"Valid",
			models.Document{
				Transactions: []models.Transaction{transaction},
				BudgetConfig: models.BudgetConfig{Limit: decimal.NewFromInt(8000000)},
				DarkMode:     true,
			},
			http.StatusOK,
			"",
		},
		{
			"Zero amount",
			models.Document{Transactions: []models.Transaction{transaction, {Amount: decimal.Zero, Source: models.WalletCash, Type: models.TypeExpense}}},
			http.StatusBadRequest,
			"transaction 1: the amount must be greater than zero",
		},
		{
			"Invalid type",
			models.Document{Transactions: []models.Transaction{{Amount: decimal.NewFromInt(5), Source: models.WalletCash, Type: "transfer"}}},
			http.StatusBadRequest,
			"transaction 0: the transaction type must be either 'expense' or 'income'",
		},
		{
			"Invalid wallet",
			models.Document{Wallets: []models.Wallet{{ID: "piggybank"}}},
			http.StatusBadRequest,
			`wallet "piggybank"`,
		},
		{
			"Negative limit",
			models.Document{BudgetConfig: models.BudgetConfig{Limit: decimal.NewFromInt(-1)}},
			http.StatusBadRequest,
			"the budget limit must not be negative",
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.SetupTest()

			r := test.Request(suite.co, t, http.MethodPost, "http://example.com/v1/import", tt.doc)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.ImportResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status != http.StatusOK {
				assert.Contains(t, *response.Error, tt.err)
				assert.Equal(t, "5000000", suite.co.Ledger.Budget().Limit.String(), "State must not change")
				return
			}

			require.NotNil(t, response.Data)
			require.Len(t, response.Data.Transactions, 1)
			assert.NotEmpty(t, response.Data.Transactions[0].ID)
			assert.Equal(t, "Phở", response.Data.Transactions[0].Note)
			assert.Len(t, response.Data.Wallets, 3, "Missing wallets must be filled in")
			assert.Equal(t, "8000000", response.Data.BudgetConfig.Limit.String())
			assert.True(t, response.Data.DarkMode)
			assert.True(t, suite.co.Ledger.DarkMode())
		})
	}
}

// TestImportNotifies verifies that an import is handed to the change
// listeners so that it gets persisted.
func (suite *TestSuiteStandard) TestImportNotifies() {
	changed := make(chan struct{}, 1)
	suite.co.Ledger.OnChange(func() { changed <- struct{}{} })

	r := test.Request(suite.co, suite.T(), http.MethodPost, "http://example.com/v1/import", models.NewDocument())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	select {
	case <-changed:
	case <-time.After(time.Second):
		suite.Fail("Import did not notify change listeners")
	}
}

func (suite *TestSuiteStandard) TestImportEmptyBody() {
	r := test.Request(suite.co, suite.T(), http.MethodPost, "http://example.com/v1/import", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Equal("the request body must not be empty", test.DecodeError(suite.T(), r.Body.Bytes()))
}
