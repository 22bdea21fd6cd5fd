package store

import (
	"context"
	"sync"
	"time"

	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
)

// Memory keeps documents in a map. Watchers are called synchronously from
// Save.
type Memory struct {
	mu       sync.Mutex
	docs     map[string]models.Document
	watchers map[string]map[int]func(models.Document)
	next     int
}

func NewMemory() *Memory {
	return &Memory{
		docs:     make(map[string]models.Document),
		watchers: make(map[string]map[int]func(models.Document)),
	}
}

func (m *Memory) Load(_ context.Context, userID string) (models.Document, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[userID]
	if !ok {
		return models.Document{}, false, nil
	}
	return copyDocument(doc), true, nil
}

func (m *Memory) Save(_ context.Context, userID string, doc models.Document) (uint64, error) {
	m.mu.Lock()
	doc = copyDocument(doc)
	doc.Revision = m.docs[userID].Revision + 1
	doc.UpdatedAt = time.Now().UTC()
	m.docs[userID] = doc

	watchers := make([]func(models.Document), 0, len(m.watchers[userID]))
	for _, fn := range m.watchers[userID] {
		watchers = append(watchers, fn)
	}
	m.mu.Unlock()

	for _, fn := range watchers {
		fn(copyDocument(doc))
	}

	return doc.Revision, nil
}

func (m *Memory) Watch(ctx context.Context, userID string, fn func(models.Document)) error {
	m.mu.Lock()
	id := m.next
	m.next++
	if m.watchers[userID] == nil {
		m.watchers[userID] = make(map[int]func(models.Document))
	}
	m.watchers[userID][id] = fn
	m.mu.Unlock()

	<-ctx.Done()

	m.mu.Lock()
	delete(m.watchers[userID], id)
	m.mu.Unlock()

	return nil
}

func (m *Memory) Close() error {
	return nil
}

func copyDocument(doc models.Document) models.Document {
	c := doc
	c.Transactions = append([]models.Transaction(nil), doc.Transactions...)
	c.Wallets = append([]models.Wallet(nil), doc.Wallets...)
	return c
}
