// Package repository defines the match record store interface and errors.
package repository

import (
	"context"

	"github.com/halvard/smashlog/internal/domain/model"
)

// Store provides append and full-scan access to the ordered match log.
// The store is append-only: no in-place edits or deletes of historical
// records. Session ids written back through CacheSessionIDs are a derived
// cache, never a second source of truth. Filtering, indexing and every
// derived statistic live above the store.
type Store interface {
	// Append adds one record to the end of the log.
	Append(ctx context.Context, rec model.MatchRecord) error

	// ReadAll returns every record in insertion order.
	ReadAll(ctx context.Context) ([]model.MatchRecord, error)

	// Last returns the most recently appended record by timestamp.
	// Returns ErrNotFound on an empty store.
	Last(ctx context.Context) (model.MatchRecord, error)

	// CacheSessionIDs persists derived session ids keyed by record id.
	CacheSessionIDs(ctx context.Context, assignments map[string]string) error

	// Count returns the number of records in the log.
	Count(ctx context.Context) (int, error)

	// Close releases store resources.
	Close() error
}
