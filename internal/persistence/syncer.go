// Package persistence mirrors the ledger to the document store.
//
// Local changes are debounced and written as one full document. Remote
// changes replace the ledger state unless a local write is pending, in
// which case the local write wins.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/thucthuc0607-code/SmartFin-2/internal/ledger"
	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
	"github.com/thucthuc0607-code/SmartFin-2/internal/store"
)

const (
	DefaultDebounce = 1500 * time.Millisecond

	saveTimeout = 10 * time.Second
)

var ErrAlreadyRunning = errors.New("syncer is already running")

type Syncer struct {
	store    store.Store
	ledger   *ledger.Ledger
	userID   string
	debounce time.Duration
	log      zerolog.Logger

	writeMu  sync.Mutex // Held across snapshot and Save
	inflight sync.WaitGroup

	mu       sync.Mutex
	running  bool
	loaded   bool
	pending  bool // A change has been scheduled but not written yet
	writers  int  // Flushes queued or writing
	timer    *time.Timer
	revision uint64 // Last revision written or applied
	cancel   context.CancelFunc
	doneCh   chan struct{}
}

// New creates a syncer for the user's document and registers it as an
// observer of the ledger. Nothing is loaded or written before Start.
func New(s store.Store, l *ledger.Ledger, userID string, debounce time.Duration) *Syncer {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	syncer := &Syncer{
		store:    s,
		ledger:   l,
		userID:   userID,
		debounce: debounce,
		log:      log.With().Str("component", "syncer").Str("user", userID).Logger(),
	}

	l.OnChange(syncer.Schedule)
	return syncer
}

// Start loads the user's document into the ledger, keeping the seed state
// when there is none, and starts watching the store for remote changes.
// Returns an error if already running.
func (s *Syncer) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrAlreadyRunning
	}

	doc, found, err := s.store.Load(ctx, s.userID)
	if err != nil {
		return fmt.Errorf("loading document: %w", err)
	}

	if found {
		s.ledger.Replace(doc)
		s.revision = doc.Revision
		s.log.Info().Uint64("revision", doc.Revision).Int("transactions", len(doc.Transactions)).Msg("document loaded")
	} else {
		s.log.Info().Msg("no stored document, starting from seed data")
	}

	watchCtx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.doneCh = make(chan struct{})
	s.running = true
	s.loaded = true

	go s.watch(watchCtx, s.doneCh)

	return nil
}

// Stop ends the watch, writes a pending change once and waits for all
// writes and the watch to finish or ctx to be done.
func (s *Syncer) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}

	// No new writes get scheduled from here on
	s.loaded = false
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.cancel()
	done := s.doneCh
	s.mu.Unlock()

	s.flush()

	s.mu.Lock()
	s.running = false
	s.mu.Unlock()

	written := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(written)
	}()

	select {
	case <-written:
	case <-ctx.Done():
		s.log.Warn().Msg("syncer stop timed out waiting for a write")
		return ctx.Err()
	}

	select {
	case <-done:
		s.log.Info().Msg("syncer stopped")
	case <-ctx.Done():
		s.log.Warn().Msg("syncer stop timed out")
		return ctx.Err()
	}

	return nil
}

// IsRunning reports whether the syncer has been started and not stopped.
func (s *Syncer) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// IsLoaded reports whether the initial load has completed. Changes before
// that are never written, so seed data cannot overwrite a stored document.
func (s *Syncer) IsLoaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Schedule restarts the debounce timer. It is a no-op before the document
// has been loaded.
func (s *Syncer) Schedule() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		return
	}

	s.pending = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.flush)
}

// flush writes the current ledger state if a change is pending. Writes
// run one at a time and the snapshot is taken once it is this flush's turn,
// so the last write always carries the latest state. A failed write is
// logged and dropped.
func (s *Syncer) flush() {
	s.mu.Lock()
	if !s.pending {
		s.mu.Unlock()
		return
	}
	s.pending = false
	s.writers++
	s.timer = nil
	s.inflight.Add(1)
	s.mu.Unlock()

	defer s.inflight.Done()

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	doc := s.ledger.Snapshot()

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	start := time.Now()
	revision, err := s.store.Save(ctx, s.userID, doc)
	saveDuration.Observe(time.Since(start).Seconds())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.writers--

	if err != nil {
		writes.WithLabelValues("failure").Inc()
		s.log.Error().Err(err).Msg("writing document failed, change dropped")
		return
	}

	writes.WithLabelValues("success").Inc()
	if revision > s.revision {
		s.revision = revision
	}
	s.log.Debug().Uint64("revision", revision).Msg("document written")
}

func (s *Syncer) watch(ctx context.Context, done chan struct{}) {
	defer close(done)

	err := s.store.Watch(ctx, s.userID, s.apply)
	if err != nil {
		s.log.Error().Err(err).Msg("watching document failed, remote changes are not applied")
	}
}

// apply replaces the ledger state with a remote document.
func (s *Syncer) apply(doc models.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc.Revision <= s.revision {
		return
	}

	if s.pending || s.writers > 0 {
		remoteUpdates.WithLabelValues("skipped").Inc()
		s.log.Debug().Uint64("revision", doc.Revision).Msg("remote change ignored, local write pending")
		return
	}

	s.revision = doc.Revision
	s.ledger.Replace(doc)

	remoteUpdates.WithLabelValues("applied").Inc()
	s.log.Info().Uint64("revision", doc.Revision).Msg("remote change applied")
}
