package models

import (
	"time"
)

// Document is the complete state of one user as it is mirrored to the
// document store.
type Document struct {
	Transactions []Transaction `json:"transactions"`
	Wallets      []Wallet      `json:"wallets"`
	BudgetConfig BudgetConfig  `json:"budgetConfig"`
	DarkMode     bool          `json:"darkMode"`

	// Maintained by the store
	Revision  uint64    `json:"revision"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewDocument returns the state a user without a stored document starts with.
func NewDocument() Document {
	return Document{
		Transactions: []Transaction{},
		Wallets:      DefaultWallets(),
		BudgetConfig: DefaultBudget(),
	}
}

// Complete fills in parts missing from a stored document with the
// defaults, the way a partially written document is read.
func (d Document) Complete() Document {
	if d.Transactions == nil {
		d.Transactions = []Transaction{}
	}

	if len(d.Wallets) == 0 {
		d.Wallets = DefaultWallets()
	}

	return d
}
