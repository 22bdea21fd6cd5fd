package search

import (
	"errors"
	"strings"
	"time"

	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
	"github.com/thucthuc0607-code/SmartFin-2/internal/types"
	"golang.org/x/exp/slices"
)

// Tab restricts a listing to one transaction type.
type Tab string

const (
	TabAll     Tab = "all"
	TabExpense Tab = "expense"
	TabIncome  Tab = "income"
)

var ErrInvalidTab = errors.New("the type must be one of 'all', 'expense' or 'income'")

// ParseTab parses a tab. An empty string selects all transactions.
func ParseTab(s string) (Tab, error) {
	switch Tab(s) {
	case "", TabAll:
		return TabAll, nil
	case TabExpense, TabIncome:
		return Tab(s), nil
	}
	return "", ErrInvalidTab
}

// Filter returns the transactions of the tab that match the query, newest
// first. With a blank query, it returns the transactions on the calendar
// day of day instead, or all of them if day is the zero time.
func Filter(transactions []models.Transaction, tab Tab, query string, day, now time.Time) []models.Transaction {
	searching := strings.TrimSpace(query) != ""

	list := []models.Transaction{}
	for _, t := range transactions {
		if tab != TabAll && string(t.Type) != string(tab) {
			continue
		}

		if searching {
			if !Match(t, query, now) {
				continue
			}
		} else if !day.IsZero() && !types.SameDay(day, t.Date) {
			continue
		}

		list = append(list, t)
	}

	slices.SortStableFunc(list, func(a, b models.Transaction) int {
		return b.Date.Compare(a.Date)
	})

	return list
}
