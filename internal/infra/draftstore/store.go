// Package draftstore keeps booking drafts in process memory. Drafts are
// page-scoped working state, not records: they are discarded when abandoned,
// so there is nothing to persist.
package draftstore

import (
	"context"
	"sync"
	"time"

	"event-booking/internal/domain/booking"
	"event-booking/internal/infra"
	"event-booking/internal/pkg/clock"
	"event-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type entry struct {
	mu    sync.Mutex
	draft *booking.Draft
}

// Store serializes all access to a draft through its entry lock, which is
// what keeps draft mutations single-threaded per draft while validations for
// other drafts proceed independently.
type Store struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*entry
	ttl     time.Duration
	clock   clock.Clock
}

func New(ttl time.Duration, clk clock.Clock) *Store {
	return &Store{
		entries: make(map[uuid.UUID]*entry),
		ttl:     ttl,
		clock:   clk,
	}
}

var _ commands.DraftStore = (*Store)(nil)

func (s *Store) Insert(_ context.Context, d *booking.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[d.ID()]; exists {
		return infra.WrapRepoErr("draft already exists", nil, infra.KindDuplicateKey)
	}
	s.entries[d.ID()] = &entry{draft: d}
	s.sweepLocked()
	return nil
}

func (s *Store) With(_ context.Context, id uuid.UUID, fn func(*booking.Draft) error) error {
	s.mu.RLock()
	e, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return infra.WrapRepoErr("draft not found", nil, infra.KindNotFound)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.draft)
}

func (s *Store) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; !ok {
		return infra.WrapRepoErr("draft not found", nil, infra.KindNotFound)
	}
	delete(s.entries, id)
	return nil
}

// sweepLocked drops drafts that have been idle past the TTL. Piggybacking on
// Insert keeps the map bounded without a background goroutine.
func (s *Store) sweepLocked() {
	if s.ttl <= 0 {
		return
	}
	cutoff := s.clock.Now().Add(-s.ttl)
	for id, e := range s.entries {
		if e.mu.TryLock() {
			stale := e.draft.UpdatedAt().Before(cutoff)
			e.mu.Unlock()
			if stale {
				delete(s.entries, id)
			}
		}
	}
}
