package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType determines the sign of a transaction's effect on its wallet.
type TransactionType string

const (
	TypeExpense TransactionType = "expense"
	TypeIncome  TransactionType = "income"
)

// Valid reports whether the type is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeExpense || t == TypeIncome
}

// Transaction is a single income or expense booked against a wallet.
type Transaction struct {
	ID       string          `json:"id" example:"2f4c8fb2-3b0b-4f38-9d35-4c1c55a5c0de"` // Opaque identifier, assigned at creation
	Amount   decimal.Decimal `json:"amount" example:"55000"`                            // Positive amount in whole currency units
	Category string          `json:"category" example:"Ăn uống"`                        // Category label
	Source   WalletType      `json:"source" example:"cash"`                             // Wallet the transaction is booked against
	Date     time.Time       `json:"date" example:"2024-05-13T07:30:00+07:00"`          // Date and time of the transaction
	Note     string          `json:"note" example:"Phở bò sáng"`                        // Free text description
	Type     TransactionType `json:"type" example:"expense"`                            // expense or income
}

// Effect returns the signed amount the transaction contributes to its wallet balance.
func (t Transaction) Effect() decimal.Decimal {
	if t.Type == TypeIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}

// Normalize trims whitespace from the string fields.
func (t *Transaction) Normalize() {
	t.Category = strings.TrimSpace(t.Category)
	t.Note = strings.TrimSpace(t.Note)
}
