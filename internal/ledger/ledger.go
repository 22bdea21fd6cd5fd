// Package ledger holds the in-memory state of a user: transactions,
// wallets, the budget configuration and the display preference.
//
// Every mutation keeps wallet balances consistent with the transactions
// booked against them and notifies the registered observers afterwards.
package ledger

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
)

// Ledger is safe for concurrent use.
type Ledger struct {
	mu           sync.RWMutex
	transactions []models.Transaction
	wallets      []models.Wallet
	budget       models.BudgetConfig
	darkMode     bool

	observers []func()
	newID     func() string
}

// New returns a ledger holding the state of doc.
func New(doc models.Document) *Ledger {
	l := &Ledger{
		newID: uuid.NewString,
	}
	l.load(doc)
	return l
}

// OnChange registers fn to be called after every mutation. fn is called
// without the ledger lock held.
func (l *Ledger) OnChange(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.observers = append(l.observers, fn)
}

func (l *Ledger) notify() {
	l.mu.RLock()
	observers := make([]func(), len(l.observers))
	copy(observers, l.observers)
	l.mu.RUnlock()

	for _, fn := range observers {
		fn()
	}
}

// Add books a new transaction. Any ID set on t is replaced.
func (l *Ledger) Add(t models.Transaction) models.Transaction {
	t.Normalize()

	l.mu.Lock()
	t.ID = l.newID()
	l.transactions = append([]models.Transaction{t}, l.transactions...)
	l.adjust(t.Source, t.Effect())
	l.mu.Unlock()

	l.notify()
	return t
}

// Delete removes the transaction and reverts its effect on the wallet.
// It reports false and does nothing if there is no such transaction.
func (l *Ledger) Delete(id string) bool {
	l.mu.Lock()
	i := l.index(id)
	if i < 0 {
		l.mu.Unlock()
		return false
	}

	t := l.transactions[i]
	l.transactions = append(l.transactions[:i:i], l.transactions[i+1:]...)
	l.adjust(t.Source, t.Effect().Neg())
	l.mu.Unlock()

	l.notify()
	return true
}

// Edit replaces the mutable fields of the transaction with those of
// update. The old effect is reverted on the old wallet before the new
// effect is applied on the new wallet, so changing the source moves the
// amount between wallets.
//
// It reports false and does nothing if there is no such transaction.
func (l *Ledger) Edit(id string, update models.Transaction) (models.Transaction, bool) {
	t, ok, _ := l.Update(id, func(models.Transaction) (models.Transaction, error) {
		return update, nil
	})
	return t, ok
}

// Update calls fn with the current transaction while holding the ledger
// lock and stores the returned transaction the way Edit does. If fn
// returns an error, nothing changes and the error is returned.
//
// It reports false and does not call fn if there is no such transaction.
func (l *Ledger) Update(id string, fn func(models.Transaction) (models.Transaction, error)) (models.Transaction, bool, error) {
	l.mu.Lock()
	i := l.index(id)
	if i < 0 {
		l.mu.Unlock()
		return models.Transaction{}, false, nil
	}

	old := l.transactions[i]
	update, err := fn(old)
	if err != nil {
		l.mu.Unlock()
		return models.Transaction{}, true, err
	}

	update.Normalize()
	update.ID = old.ID

	l.adjust(old.Source, old.Effect().Neg())
	l.adjust(update.Source, update.Effect())
	l.transactions[i] = update
	l.mu.Unlock()

	l.notify()
	return update, true, nil
}

// SetWalletBalance overrides the balance of a wallet, ignoring the
// transaction history. It reports false for an unknown wallet.
func (l *Ledger) SetWalletBalance(id models.WalletType, balance decimal.Decimal) (models.Wallet, bool) {
	l.mu.Lock()
	for i := range l.wallets {
		if l.wallets[i].ID == id {
			l.wallets[i].Balance = balance
			w := l.wallets[i]
			l.mu.Unlock()

			l.notify()
			return w, true
		}
	}
	l.mu.Unlock()

	return models.Wallet{}, false
}

// SetBudgetLimit replaces the monthly budget limit.
func (l *Ledger) SetBudgetLimit(limit decimal.Decimal) models.BudgetConfig {
	l.mu.Lock()
	l.budget = models.BudgetConfig{Limit: limit}
	b := l.budget
	l.mu.Unlock()

	l.notify()
	return b
}

// SetDarkMode stores the display preference.
func (l *Ledger) SetDarkMode(enabled bool) {
	l.mu.Lock()
	l.darkMode = enabled
	l.mu.Unlock()

	l.notify()
}

// Replace swaps the complete state for the one in doc. Observers are not
// notified, replacing state with what the store holds is not a change
// that needs to be written back.
func (l *Ledger) Replace(doc models.Document) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.load(doc)
}

// Restore swaps the complete state for the one in doc and notifies the
// observers. Transactions without an ID get a new one.
func (l *Ledger) Restore(doc models.Document) {
	l.mu.Lock()
	l.load(doc)
	for i := range l.transactions {
		if l.transactions[i].ID == "" {
			l.transactions[i].ID = l.newID()
		}
	}
	l.mu.Unlock()

	l.notify()
}

func (l *Ledger) load(doc models.Document) {
	doc = doc.Complete()

	l.transactions = make([]models.Transaction, len(doc.Transactions))
	copy(l.transactions, doc.Transactions)

	l.wallets = make([]models.Wallet, len(doc.Wallets))
	copy(l.wallets, doc.Wallets)

	l.budget = doc.BudgetConfig
	l.darkMode = doc.DarkMode
}

// index returns the position of the transaction or -1. The caller must
// hold the lock.
func (l *Ledger) index(id string) int {
	for i, t := range l.transactions {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// adjust adds delta to the balance of the wallet. The caller must hold
// the lock.
func (l *Ledger) adjust(id models.WalletType, delta decimal.Decimal) {
	for i := range l.wallets {
		if l.wallets[i].ID == id {
			l.wallets[i].Balance = l.wallets[i].Balance.Add(delta)
			return
		}
	}
}
