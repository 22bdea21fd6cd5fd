package models

import (
	"github.com/shopspring/decimal"
)

// WalletType identifies one of the three fixed wallets.
type WalletType string

const (
	WalletCash    WalletType = "cash"
	WalletBank    WalletType = "bank"
	WalletEwallet WalletType = "ewallet"
)

// WalletTypes lists all wallets in display order.
var WalletTypes = []WalletType{WalletCash, WalletBank, WalletEwallet}

// Valid reports whether the wallet type is one of the fixed wallets.
func (w WalletType) Valid() bool {
	return w == WalletCash || w == WalletBank || w == WalletEwallet
}

// Wallet holds the running balance for one source of money.
type Wallet struct {
	ID      WalletType      `json:"id" example:"cash"`              // Wallet identifier
	Name    string          `json:"name" example:"Tiền mặt"`        // Display name
	Balance decimal.Decimal `json:"balance" example:"1500000"`      // Running balance, may be negative
	Icon    string          `json:"icon" example:"Wallet"`          // Display icon
	Color   string          `json:"color" example:"bg-emerald-500"` // Display color
}

// BudgetConfig is the monthly spending cap.
type BudgetConfig struct {
	Limit decimal.Decimal `json:"limit" example:"5000000"` // Monthly limit
}

// WeeklyLimit returns the weekly cap, always a quarter of the monthly limit.
func (b BudgetConfig) WeeklyLimit() decimal.Decimal {
	return b.Limit.Div(decimal.NewFromInt(4))
}

// DefaultWallets returns the wallets a new user starts with.
func DefaultWallets() []Wallet {
	return []Wallet{
		{ID: WalletCash, Name: "Tiền mặt", Balance: decimal.NewFromInt(1500000), Icon: "Wallet", Color: "bg-emerald-500"},
		{ID: WalletBank, Name: "Ngân hàng", Balance: decimal.NewFromInt(12500000), Icon: "CreditCard", Color: "bg-blue-600"},
		{ID: WalletEwallet, Name: "Ví điện tử", Balance: decimal.NewFromInt(450000), Icon: "Smartphone", Color: "bg-pink-500"},
	}
}

// DefaultBudget returns the budget a new user starts with.
func DefaultBudget() BudgetConfig {
	return BudgetConfig{Limit: decimal.NewFromInt(5000000)}
}
