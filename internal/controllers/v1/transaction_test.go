package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	v1 "github.com/thucthuc0607-code/SmartFin-2/internal/controllers/v1"
	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
	"github.com/thucthuc0607-code/SmartFin-2/test"
)

func (suite *TestSuiteStandard) createTestTransaction(t *testing.T, body any, expectedStatus ...int) v1.TransactionResponse {
	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(suite.co, t, http.MethodPost, "http://example.com/v1/transactions", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var transaction v1.TransactionResponse
	test.DecodeResponse(t, &r, &transaction)

	return transaction
}

func (suite *TestSuiteStandard) balance(id models.WalletType) string {
	wallet, ok := suite.co.Ledger.Wallet(id)
	suite.Require().True(ok)
	return wallet.Balance.String()
}

// TestTransactionsCreate verifies that creation applies the defaults and
// rejects invalid transactions.
func (suite *TestSuiteStandard) TestTransactionsCreate() {
	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"Amount as string", map[string]any{"amount": "35k", "note": " Bún bò "}, http.StatusCreated, ""},
		{"Amount as number", map[string]any{"amount": 35000, "note": "Bún bò"}, http.StatusCreated, ""},
		{"Zero amount", map[string]any{"amount": 0}, http.StatusBadRequest, "the amount must be greater than zero"},
		{"Negative amount", map[string]any{"amount": -5000}, http.StatusBadRequest, "the amount must be greater than zero"},
		{"Amount without digits", map[string]any{"amount": "abc"}, http.StatusBadRequest, "the amount must be greater than zero"},
		{"Invalid type", map[string]any{"amount": 5000, "type": "transfer"}, http.StatusBadRequest, "the transaction type must be either 'expense' or 'income'"},
		{"Invalid source", map[string]any{"amount": 5000, "source": "piggybank"}, http.StatusBadRequest, "the source must be one of 'cash', 'bank' or 'ewallet'"},
		{"Empty body", "", http.StatusBadRequest, "the request body must not be empty"},
		{"Broken JSON", `{"amount":`, http.StatusBadRequest, "the body of your request contains invalid or un-parseable data"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.SetupTest()

			transaction := suite.createTestTransaction(t, tt.body, tt.status)
			if tt.status != http.StatusCreated {
				assert.Contains(t, *transaction.Error, tt.err)
				assert.Equal(t, "1500000", suite.balance(models.WalletCash), "Cash balance must not change")
				return
			}

			assert.Nil(t, transaction.Error)
			assert.NotEmpty(t, transaction.Data.ID)
			assert.Equal(t, "35000", transaction.Data.Amount.String())
			assert.Equal(t, models.TypeExpense, transaction.Data.Type)
			assert.Equal(t, models.WalletCash, transaction.Data.Source)
			assert.Equal(t, models.OtherCategory, transaction.Data.Category)
			assert.Equal(t, "Bún bò", transaction.Data.Note)
			assert.True(t, now.Equal(transaction.Data.Date))
			assert.Equal(t, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.Data.ID), transaction.Data.Links.Self)
			assert.Equal(t, "1465000", suite.balance(models.WalletCash))
		})
	}
}

// TestTransactionsCreateIncome verifies that income raises the balance of its wallet.
func (suite *TestSuiteStandard) TestTransactionsCreateIncome() {
	suite.createTestTransaction(suite.T(), map[string]any{"amount": "15000k", "type": "income", "source": "bank", "category": "Lương"})
	assert.Equal(suite.T(), "27500000", suite.balance(models.WalletBank))
}

// TestTransactionsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestTransactionsOptions() {
	transaction := suite.createTestTransaction(suite.T(), map[string]any{"amount": 1000})

	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"Collection", "", http.StatusNoContent, "OPTIONS, GET, POST"},
		{"Transaction exists", "/" + transaction.Data.ID, http.StatusNoContent, "OPTIONS, GET, PATCH, DELETE"},
		{"No transaction with this ID", "/does-not-exist", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodOptions, "http://example.com/v1/transactions"+tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

// TestTransactionsGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestTransactionsGetSingle() {
	transaction := suite.createTestTransaction(suite.T(), map[string]any{"amount": 1000, "note": "Cafe"})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing transaction", transaction.Data.ID, http.StatusOK},
		{"No transaction with this ID", "does-not-exist", http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.TransactionResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status == http.StatusOK {
				assert.Equal(t, "Cafe", response.Data.Note)
			} else {
				assert.Equal(t, models.ErrTransactionNotFound.Error(), *response.Error)
			}
		})
	}
}

// TestTransactionsUpdate verifies that updates only change the fields in
// the body and move balances between wallets.
func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	tests := []struct {
		name     string
		body     any
		status   int
		cash     string
		bank     string
		checkFun func(t *testing.T, transaction v1.Transaction)
	}{
		{
			"Note only",
			map[string]any{"note": "Phở bò"},
			http.StatusOK,
			"1450000",
			"12500000",
			func(t *testing.T, transaction v1.Transaction) {
				assert.Equal(t, "Phở bò", transaction.Note)
				assert.Equal(t, "50000", transaction.Amount.String())
				assert.Equal(t, "Ăn uống", transaction.Category)
			},
		},
		{
			"Move to bank",
			map[string]any{"source": "bank"},
			http.StatusOK,
			"1500000",
			"12450000",
			func(t *testing.T, transaction v1.Transaction) {
				assert.Equal(t, models.WalletBank, transaction.Source)
			},
		},
		{
			"Change amount",
			map[string]any{"amount": "80k"},
			http.StatusOK,
			"1420000",
			"12500000",
			nil,
		},
		{
			"Change to income",
			map[string]any{"type": "income"},
			http.StatusOK,
			"1550000",
			"12500000",
			nil,
		},
		{"Zero amount", map[string]any{"amount": 0}, http.StatusBadRequest, "1450000", "12500000", nil},
		{"Invalid source", map[string]any{"source": "piggybank"}, http.StatusBadRequest, "1450000", "12500000", nil},
		{"Empty body", "", http.StatusBadRequest, "1450000", "12500000", nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.SetupTest()
			transaction := suite.createTestTransaction(t, map[string]any{"amount": "50k", "category": "Ăn uống", "note": "Bún chả"})

			r := test.Request(suite.co, t, http.MethodPatch, transaction.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.TransactionResponse
			test.DecodeResponse(t, &r, &response)

			if tt.checkFun != nil {
				require.NotNil(t, response.Data)
				tt.checkFun(t, *response.Data)
			}

			assert.Equal(t, tt.cash, suite.balance(models.WalletCash))
			assert.Equal(t, tt.bank, suite.balance(models.WalletBank))
		})
	}
}

// TestTransactionsUpdateNonExistent verifies that updating a missing transaction fails.
func (suite *TestSuiteStandard) TestTransactionsUpdateNonExistent() {
	r := test.Request(suite.co, suite.T(), http.MethodPatch, "http://example.com/v1/transactions/does-not-exist", map[string]any{"note": "Trà sữa"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestTransactionsDelete verifies that deletion reverts the balance and
// succeeds for transactions that do not exist.
func (suite *TestSuiteStandard) TestTransactionsDelete() {
	transaction := suite.createTestTransaction(suite.T(), map[string]any{"amount": "200k", "source": "ewallet"})
	suite.Equal("250000", suite.balance(models.WalletEwallet))

	tests := []struct {
		name string
		id   string
	}{
		{"Existing transaction", transaction.Data.ID},
		{"Deleted transaction", transaction.Data.ID},
		{"No transaction with this ID", "does-not-exist"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, "450000", suite.balance(models.WalletEwallet))
		})
	}
}

// TestTransactionsAddDeleteRoundTrip verifies that balances return to
// their initial values after all transactions are deleted.
func (suite *TestSuiteStandard) TestTransactionsAddDeleteRoundTrip() {
	bodies := []map[string]any{
		{"amount": "35k", "source": "cash"},
		{"amount": "1200k", "source": "bank", "category": "Hóa đơn"},
		{"amount": "500k", "source": "ewallet", "type": "income"},
		{"amount": 99000, "source": "cash", "type": "income"},
	}

	var ids []string
	for _, body := range bodies {
		ids = append(ids, suite.createTestTransaction(suite.T(), body).Data.ID)
	}

	for _, id := range ids {
		r := test.Request(suite.co, suite.T(), http.MethodDelete, "http://example.com/v1/transactions/"+id, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	}

	suite.Equal("1500000", suite.balance(models.WalletCash))
	suite.Equal("12500000", suite.balance(models.WalletBank))
	suite.Equal("450000", suite.balance(models.WalletEwallet))
	suite.Empty(suite.co.Ledger.Transactions())
}

// TestTransactionsList verifies filtering and pagination of the list.
func (suite *TestSuiteStandard) TestTransactionsList() {
	t1 := suite.createTestTransaction(suite.T(), map[string]any{"amount": "55k", "category": "Ăn uống", "note": "Phở bò", "date": now.Add(-24 * time.Hour)}).Data.ID
	t2 := suite.createTestTransaction(suite.T(), map[string]any{"amount": "15000k", "type": "income", "source": "bank", "category": "Lương", "date": now.Add(-2 * time.Hour)}).Data.ID
	t3 := suite.createTestTransaction(suite.T(), map[string]any{"amount": "120k", "category": "Di chuyển", "note": "Grab", "date": now.AddDate(0, 0, -20)}).Data.ID

	tests := []struct {
		name   string
		query  string
		status int
		ids    []string
		total  int
	}{
		{"All, newest first", "", http.StatusOK, []string{t2, t1, t3}, 3},
		{"Expenses", "type=expense", http.StatusOK, []string{t1, t3}, 2},
		{"Income", "type=income", http.StatusOK, []string{t2}, 1},
		{"Day", "day=2024-05-14", http.StatusOK, []string{t1}, 1},
		{"Day without transactions", "day=2024-05-01", http.StatusOK, []string{}, 0},
		{"Search note without diacritics", "search=pho", http.StatusOK, []string{t1}, 1},
		{"Search ignores day", "search=grab&day=2024-05-14", http.StatusOK, []string{t3}, 1},
		{"Limit", "limit=1", http.StatusOK, []string{t2}, 3},
		{"Offset and limit", "offset=1&limit=1", http.StatusOK, []string{t1}, 3},
		{"Offset beyond total", "offset=10", http.StatusOK, []string{}, 3},
		{"Negative limit", "limit=-1", http.StatusOK, []string{t2, t1, t3}, 3},
		{"Invalid type", "type=transfer", http.StatusBadRequest, nil, 0},
		{"Invalid day", "day=14.05.2024", http.StatusBadRequest, nil, 0},
		{"Unparseable limit", "limit=many", http.StatusBadRequest, nil, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.co, t, http.MethodGet, "http://example.com/v1/transactions?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)

			if tt.status != http.StatusOK {
				assert.NotNil(t, response.Error)
				return
			}

			ids := make([]string, 0, len(response.Data))
			for _, transaction := range response.Data {
				ids = append(ids, transaction.ID)
			}

			assert.Equal(t, tt.ids, ids)
			assert.Equal(t, tt.total, response.Pagination.Total)
			assert.Equal(t, len(tt.ids), response.Pagination.Count)
		})
	}
}
