// Package database connects to SQLite through gorm and defines the table
// user documents are stored in.
package database

import (
	"time"

	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
)

// Document is one row per user. The collections are stored as JSON.
type Document struct {
	UserID       string               `gorm:"primaryKey"`
	Transactions []models.Transaction `gorm:"serializer:json"`
	Wallets      []models.Wallet      `gorm:"serializer:json"`
	BudgetConfig models.BudgetConfig  `gorm:"serializer:json"`
	DarkMode     bool
	Revision     uint64 `gorm:"not null;default:0"`
	UpdatedAt    time.Time
}

// NewDocument returns the row for a user's document.
func NewDocument(userID string, doc models.Document) Document {
	return Document{
		UserID:       userID,
		Transactions: doc.Transactions,
		Wallets:      doc.Wallets,
		BudgetConfig: doc.BudgetConfig,
		DarkMode:     doc.DarkMode,
		Revision:     doc.Revision,
		UpdatedAt:    doc.UpdatedAt,
	}
}

// Model returns the document stored in the row.
func (d Document) Model() models.Document {
	return models.Document{
		Transactions: d.Transactions,
		Wallets:      d.Wallets,
		BudgetConfig: d.BudgetConfig,
		DarkMode:     d.DarkMode,
		Revision:     d.Revision,
		UpdatedAt:    d.UpdatedAt,
	}.Complete()
}
