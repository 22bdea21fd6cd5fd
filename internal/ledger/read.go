package ledger

import (
	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
)

// Get returns the transaction with the ID.
func (l *Ledger) Get(id string) (models.Transaction, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i := l.index(id)
	if i < 0 {
		return models.Transaction{}, false
	}
	return l.transactions[i], true
}

// Transactions returns a copy of all transactions, most recently added first.
func (l *Ledger) Transactions() []models.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	t := make([]models.Transaction, len(l.transactions))
	copy(t, l.transactions)
	return t
}

// Wallets returns a copy of the wallets.
func (l *Ledger) Wallets() []models.Wallet {
	l.mu.RLock()
	defer l.mu.RUnlock()

	w := make([]models.Wallet, len(l.wallets))
	copy(w, l.wallets)
	return w
}

// Wallet returns the wallet with the ID.
func (l *Ledger) Wallet(id models.WalletType) (models.Wallet, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, w := range l.wallets {
		if w.ID == id {
			return w, true
		}
	}
	return models.Wallet{}, false
}

func (l *Ledger) Budget() models.BudgetConfig {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.budget
}

func (l *Ledger) DarkMode() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.darkMode
}

// Snapshot returns the complete state as a document.
func (l *Ledger) Snapshot() models.Document {
	l.mu.RLock()
	defer l.mu.RUnlock()

	doc := models.Document{
		Transactions: make([]models.Transaction, len(l.transactions)),
		Wallets:      make([]models.Wallet, len(l.wallets)),
		BudgetConfig: l.budget,
		DarkMode:     l.darkMode,
	}
	copy(doc.Transactions, l.transactions)
	copy(doc.Wallets, l.wallets)

	return doc
}
