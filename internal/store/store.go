// Package store persists one document per user.
//
// All backends assign a new revision on every save. Watch reports
// documents with a revision newer than the one current when watching
// started, which includes the caller's own saves.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
)

type Store interface {
	// Load returns the user's document. found is false if the user has none.
	Load(ctx context.Context, userID string) (doc models.Document, found bool, err error)

	// Save replaces the user's document and returns its new revision.
	Save(ctx context.Context, userID string, doc models.Document) (revision uint64, err error)

	// Watch calls fn with every new revision of the user's document until
	// ctx is done.
	Watch(ctx context.Context, userID string, fn func(models.Document)) error

	Close() error
}

// Backend selects a store implementation.
type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendBadger Backend = "badger"
	BackendMemory Backend = "memory"
)

var ErrUnknownBackend = errors.New("unknown data backend")

// Options configure Open.
type Options struct {
	Backend      Backend
	SQLitePath   string
	BadgerDir    string
	PollInterval time.Duration
}

// Open returns the store for the configured backend.
func Open(o Options) (Store, error) {
	switch o.Backend {
	case BackendSQLite:
		return NewSQLite(o.SQLitePath, o.PollInterval)
	case BackendBadger:
		return NewBadger(o.BadgerDir)
	case BackendMemory:
		return NewMemory(), nil
	}

	return nil, fmt.Errorf("%w: '%s'", ErrUnknownBackend, o.Backend)
}
