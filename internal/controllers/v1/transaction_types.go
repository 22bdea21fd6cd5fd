package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thucthuc0607-code/SmartFin-2/internal/httputil"
	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
	"golang.org/x/exp/slices"
)

type TransactionEditable struct {
	Amount   models.Amount          `json:"amount" swaggertype:"string" example:"55k"`  // Amount as number or string. Strings are coerced, "k" stands for thousand
	Category string                 `json:"category" example:"Ăn uống" default:"Khác"` // Category label
	Source   models.WalletType      `json:"source" example:"cash" default:"cash"`      // Wallet the transaction is booked against
	Date     time.Time              `json:"date" example:"2024-05-15T08:00:00Z"`       // Date and time of the transaction. Defaults to the current time
	Note     string                 `json:"note" example:"Phở bò sáng" default:""`     // A note
	Type     models.TransactionType `json:"type" example:"expense" default:"expense"`  // expense or income
}

// model returns the ledger resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Amount:   editable.Amount.Decimal,
		Category: editable.Category,
		Source:   editable.Source,
		Date:     editable.Date,
		Note:     editable.Note,
		Type:     editable.Type,
	}
}

// merge copies the fields listed in fields from editable to t.
func (editable TransactionEditable) merge(t models.Transaction, fields []string) models.Transaction {
	update := editable.model()

	if slices.Contains(fields, "Amount") {
		t.Amount = update.Amount
	}
	if slices.Contains(fields, "Category") {
		t.Category = update.Category
	}
	if slices.Contains(fields, "Source") {
		t.Source = update.Source
	}
	if slices.Contains(fields, "Date") {
		t.Date = update.Date
	}
	if slices.Contains(fields, "Note") {
		t.Note = update.Note
	}
	if slices.Contains(fields, "Type") {
		t.Type = update.Type
	}

	return t
}

// complete sets the defaults for fields missing on creation.
func complete(t models.Transaction, now time.Time) models.Transaction {
	if t.Type == "" {
		t.Type = models.TypeExpense
	}
	if t.Source == "" {
		t.Source = models.WalletCash
	}
	if t.Category == "" {
		t.Category = models.OtherCategory
	}
	if t.Date.IsZero() {
		t.Date = now
	}
	return t
}

// validate checks a transaction before it is handed to the ledger.
func validate(t models.Transaction) error {
	if !t.Amount.IsPositive() {
		return errAmountNotPositive
	}

	if !t.Type.Valid() {
		return errTypeInvalid
	}

	if !t.Source.Valid() {
		return errSourceInvalid
	}

	return nil
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/2f4c8fb2-3b0b-4f38-9d35-4c1c55a5c0de"` // The transaction itself
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.Transaction
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	return Transaction{
		Transaction: model,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s", httputil.BaseURL(c), model.ID),
		},
	}
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"there is no transaction with this ID"` // The error, if any occurred
	Data  *Transaction `json:"data"`                                                 // Data for the transaction
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                                  // List of transactions
	Error      *string       `json:"error" example:"the type must be one of 'all', 'expense' or 'income'"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                            // Pagination information
}

type TransactionQueryFilter struct {
	Type   string    `form:"type"`   // all, expense or income
	Search string    `form:"search"` // Search query
	Day    string    `form:"day"`    // Calendar day in YYYY-MM-DD format. Ignored when searching
	Now    time.Time `form:"now"`    // Reference time for relative phrases in the search query
	Offset uint      `form:"offset"` // The offset of the first transaction returned
	Limit  int       `form:"limit"`  // Maximum number of transactions to return
}
