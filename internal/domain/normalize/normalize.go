// Package normalize validates and canonicalizes raw match submissions.
//
// Validation failures never reach the aggregation engine: a submission either
// becomes a fully-formed MatchRecord here or is rejected with a
// ValidationError the caller can surface verbatim.
package normalize

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/halvard/smashlog/internal/adapters/repository"
	"github.com/halvard/smashlog/internal/domain/model"
	"github.com/halvard/smashlog/pkg/metrics"
)

const defaultGapHours = 4.0

// Normalizer turns raw submissions into stored MatchRecords. It owns the
// store handle explicitly; there is no ambient singleton.
type Normalizer struct {
	store    repository.Store
	players  model.Players
	loc      *time.Location
	gapHours float64
	now      func() time.Time
}

// New creates a Normalizer writing to store for the given identities.
func New(store repository.Store, players model.Players, loc *time.Location, opts ...Option) *Normalizer {
	n := &Normalizer{
		store:    store,
		players:  players,
		loc:      loc,
		gapHours: defaultGapHours,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Submit validates raw, assigns the server-side timestamp and session id,
// appends the record to the store and returns it.
//
// The timestamp is always the time of the logging event, never
// client-supplied, so neither identity can spoof the clock.
func (n *Normalizer) Submit(ctx context.Context, raw model.RawMatch) (model.MatchRecord, error) {
	rec, err := n.Normalize(raw)
	if err != nil {
		return model.MatchRecord{}, err
	}

	rec.SessionID = n.sessionIDFor(ctx, rec.Timestamp)

	start := time.Now()
	if err := n.store.Append(ctx, rec); err != nil {
		return model.MatchRecord{}, fmt.Errorf("submit match: %w", err)
	}
	metrics.ObserveStoreAppend(time.Since(start))
	metrics.RecordMatchLogged()
	return rec, nil
}

// Normalize validates raw and builds a MatchRecord without touching the
// store. Exposed separately so bulk importers can reuse the validation.
func (n *Normalizer) Normalize(raw model.RawMatch) (model.MatchRecord, error) {
	charA := strings.TrimSpace(raw.PlayerACharacter)
	charB := strings.TrimSpace(raw.PlayerBCharacter)
	winner := strings.TrimSpace(raw.Winner)
	stage := strings.TrimSpace(raw.Stage)

	if charA == "" {
		return model.MatchRecord{}, fail("player_a_character", "must not be empty")
	}
	if charB == "" {
		return model.MatchRecord{}, fail("player_b_character", "must not be empty")
	}
	if winner == "" {
		return model.MatchRecord{}, fail("winner", "must not be empty")
	}
	canonical, ok := n.canonicalWinner(winner)
	if !ok {
		return model.MatchRecord{}, fail("winner",
			fmt.Sprintf("must be %q or %q", n.players.A, n.players.B))
	}
	if stage == "" {
		// Blank stage is rejected at write time; the "No Stage" sentinel is a
		// read-time fallback for legacy rows only.
		return model.MatchRecord{}, fail("stage", "must not be empty")
	}
	if raw.StocksRemaining != nil && *raw.StocksRemaining < 0 {
		return model.MatchRecord{}, fail("stocks_remaining", "must be a non-negative integer")
	}

	now := n.now().In(n.loc)
	ts := float64(now.Unix()) + float64(now.Nanosecond())/float64(time.Second)

	var stocks *int
	if raw.StocksRemaining != nil {
		v := *raw.StocksRemaining
		stocks = &v
	}

	return model.MatchRecord{
		ID:               uuid.NewString(),
		Timestamp:        ts,
		OccurredAt:       now.Format(model.OccurredAtLayout),
		PlayerACharacter: charA,
		PlayerBCharacter: charB,
		Winner:           canonical,
		StocksRemaining:  stocks,
		Stage:            stage,
	}, nil
}

// canonicalWinner matches the submitted winner against the two identities,
// case-insensitively, and returns the canonical spelling.
func (n *Normalizer) canonicalWinner(winner string) (string, bool) {
	switch {
	case strings.EqualFold(winner, n.players.A):
		return n.players.A, true
	case strings.EqualFold(winner, n.players.B):
		return n.players.B, true
	}
	return "", false
}

// sessionIDFor continues the most recent session when the gap since the last
// match is within the threshold, otherwise starts a new one. This is a
// write-time cache fill; reads always re-derive sessions from timestamps.
func (n *Normalizer) sessionIDFor(ctx context.Context, ts float64) string {
	last, err := n.store.Last(ctx)
	if err != nil {
		// Empty store or a read failure: start a fresh session either way.
		return model.SessionIDAt(ts, n.loc)
	}
	gapHours := (ts - last.Timestamp) / 3600
	if gapHours > n.gapHours {
		return model.SessionIDAt(ts, n.loc)
	}
	if last.SessionID != "" {
		return last.SessionID
	}
	return model.SessionIDAt(last.Timestamp, n.loc)
}

func fail(field, reason string) error {
	metrics.RecordValidationFailure(field)
	return &ValidationError{Field: field, Reason: reason}
}
