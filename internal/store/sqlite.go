package store

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/thucthuc0607-code/SmartFin-2/internal/database"
	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
	"gorm.io/gorm"
)

// SQLite stores documents in the documents table. Watch polls the
// revision column.
type SQLite struct {
	db   *gorm.DB
	poll time.Duration
}

func NewSQLite(path string, poll time.Duration) (*SQLite, error) {
	db, err := database.Connect(path)
	if err != nil {
		return nil, err
	}

	if poll <= 0 {
		poll = 2 * time.Second
	}

	return &SQLite{db: db, poll: poll}, nil
}

func (s *SQLite) Load(ctx context.Context, userID string) (models.Document, bool, error) {
	var row database.Document

	err := s.db.WithContext(ctx).First(&row, "user_id = ?", userID).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.Document{}, false, nil
	}
	if err != nil {
		return models.Document{}, false, err
	}

	return row.Model(), true, nil
}

func (s *SQLite) Save(ctx context.Context, userID string, doc models.Document) (uint64, error) {
	row := database.NewDocument(userID, doc)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := s.revision(tx, userID)
		if err != nil {
			return err
		}

		row.Revision = current + 1
		return tx.Save(&row).Error
	})
	if err != nil {
		return 0, err
	}

	return row.Revision, nil
}

func (s *SQLite) Watch(ctx context.Context, userID string, fn func(models.Document)) error {
	last, err := s.revision(s.db.WithContext(ctx), userID)
	if err != nil {
		return err
	}

	ticker := time.NewTicker(s.poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		revision, err := s.revision(s.db.WithContext(ctx), userID)
		if err != nil {
			log.Warn().Str("component", "store").Err(err).Msg("polling document revision failed")
			continue
		}

		if revision <= last {
			continue
		}

		doc, found, err := s.Load(ctx, userID)
		if err != nil || !found {
			continue
		}

		last = doc.Revision
		fn(doc)
	}
}

func (s *SQLite) Close() error {
	return database.Close(s.db)
}

// revision returns the current revision of the user's document, 0 if
// there is none.
func (s *SQLite) revision(tx *gorm.DB, userID string) (uint64, error) {
	var revisions []uint64

	err := tx.Model(&database.Document{}).Where("user_id = ?", userID).Pluck("revision", &revisions).Error
	if err != nil {
		return 0, err
	}

	if len(revisions) == 0 {
		return 0, nil
	}
	return revisions[0], nil
}
