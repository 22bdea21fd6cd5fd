package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v2"
	"github.com/rs/zerolog/log"
	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
)

// Badger stores each document as JSON under "users/<id>". Watch uses
// badger's key subscription.
type Badger struct {
	db *badger.DB
}

func NewBadger(dir string) (*Badger, error) {
	db, err := badger.Open(badger.DefaultOptions(dir).WithLogger(nil))
	if err != nil {
		return nil, fmt.Errorf("failed to open badger database: %w", err)
	}

	return &Badger{db: db}, nil
}

func userKey(userID string) []byte {
	return []byte("users/" + userID)
}

func (b *Badger) Load(_ context.Context, userID string) (models.Document, bool, error) {
	var doc models.Document
	found := false

	err := b.db.View(func(txn *badger.Txn) error {
		var err error
		doc, found, err = get(txn, userID)
		return err
	})
	if err != nil {
		return models.Document{}, false, err
	}

	return doc, found, nil
}

func (b *Badger) Save(_ context.Context, userID string, doc models.Document) (uint64, error) {
	err := b.db.Update(func(txn *badger.Txn) error {
		current, _, err := get(txn, userID)
		if err != nil {
			return err
		}

		doc.Revision = current.Revision + 1
		doc.UpdatedAt = time.Now().UTC()

		value, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("error marshaling document: %w", err)
		}

		return txn.Set(userKey(userID), value)
	})
	if err != nil {
		return 0, err
	}

	return doc.Revision, nil
}

func (b *Badger) Watch(ctx context.Context, userID string, fn func(models.Document)) error {
	key := userKey(userID)

	err := b.db.Subscribe(ctx, func(kv *badger.KVList) error {
		for _, entry := range kv.Kv {
			// The prefix also matches longer user IDs
			if string(entry.Key) != string(key) {
				continue
			}

			var doc models.Document
			err := json.Unmarshal(entry.Value, &doc)
			if err != nil {
				log.Warn().Str("component", "store").Err(err).Msg("skipping undecodable document update")
				continue
			}

			fn(doc.Complete())
		}
		return nil
	}, key)

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

func (b *Badger) Close() error {
	return b.db.Close()
}

func get(txn *badger.Txn, userID string) (models.Document, bool, error) {
	item, err := txn.Get(userKey(userID))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return models.Document{}, false, nil
	}
	if err != nil {
		return models.Document{}, false, err
	}

	value, err := item.ValueCopy(nil)
	if err != nil {
		return models.Document{}, false, err
	}

	var doc models.Document
	err = json.Unmarshal(value, &doc)
	if err != nil {
		return models.Document{}, false, fmt.Errorf("error unmarshaling document: %w", err)
	}

	return doc.Complete(), true, nil
}
