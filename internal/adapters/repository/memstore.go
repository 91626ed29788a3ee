package repository

import (
	"context"
	"sync"

	"github.com/halvard/smashlog/internal/domain/model"
)

// MemStore keeps the match log in memory. It backs tests and ephemeral runs;
// the sqlite store is the persistent implementation.
type MemStore struct {
	mu      sync.RWMutex
	records []model.MatchRecord
	byID    map[string]int
	closed  bool
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{byID: make(map[string]int)}
}

// Append adds one record to the end of the log.
func (s *MemStore) Append(_ context.Context, rec model.MatchRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.byID[rec.ID] = len(s.records)
	s.records = append(s.records, rec)
	return nil
}

// ReadAll returns a copy of every record in insertion order. The copy keeps
// callers from mutating the log through a shared slice.
func (s *MemStore) ReadAll(_ context.Context) ([]model.MatchRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}
	out := make([]model.MatchRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Last returns the record with the greatest timestamp.
func (s *MemStore) Last(_ context.Context) (model.MatchRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return model.MatchRecord{}, ErrClosed
	}
	if len(s.records) == 0 {
		return model.MatchRecord{}, ErrNotFound
	}
	last := s.records[0]
	for _, rec := range s.records[1:] {
		if rec.Timestamp >= last.Timestamp {
			last = rec
		}
	}
	return last, nil
}

// CacheSessionIDs stores derived session ids on the matching records.
// Unknown record ids are ignored.
func (s *MemStore) CacheSessionIDs(_ context.Context, assignments map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	for id, sessionID := range assignments {
		if idx, ok := s.byID[id]; ok {
			s.records[idx].SessionID = sessionID
		}
	}
	return nil
}

// Count returns the number of records in the log.
func (s *MemStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, ErrClosed
	}
	return len(s.records), nil
}

// Close marks the store closed; further operations fail with ErrClosed.
func (s *MemStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
