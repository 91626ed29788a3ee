// Package stats computes derived statistics over the match log.
//
// Every operation is a pure function over an explicit Snapshot: results are
// deterministic, inputs are never mutated, and callers may cache results
// keyed by the snapshot they passed in. The snapshot is taken in full before
// any computation begins, so no operation observes a torn read.
package stats

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/halvard/smashlog/internal/domain/model"
	"github.com/halvard/smashlog/pkg/logger"
	"github.com/halvard/smashlog/pkg/metrics"
)

// Snapshot is an immutable, time-ordered view of the match log.
type Snapshot struct {
	// Matches are ordered by timestamp ascending, ties in insertion order.
	Matches []model.MatchRecord
	// Players names the two fixed identities.
	Players model.Players
	// Loc is the single reference timezone for calendar bucketing.
	Loc *time.Location
	// Skipped counts records excluded because their timestamp was corrupt.
	Skipped int
}

// NewSnapshot builds a Snapshot from raw store records. Records with a
// non-positive or non-finite timestamp are excluded with a warning; one
// malformed historical row must never take down every statistic.
func NewSnapshot(records []model.MatchRecord, players model.Players, loc *time.Location, log logger.Logger) Snapshot {
	kept := make([]model.MatchRecord, 0, len(records))
	skipped := 0
	for _, rec := range records {
		if rec.Timestamp <= 0 || math.IsNaN(rec.Timestamp) || math.IsInf(rec.Timestamp, 0) {
			skipped++
			metrics.RecordCorruptRecord()
			if log != nil {
				log.Warn(context.Background(), "skipping corrupt match record",
					logger.String("id", rec.ID),
					logger.Float64("timestamp", rec.Timestamp),
				)
			}
			continue
		}
		kept = append(kept, rec)
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Timestamp < kept[j].Timestamp
	})
	return Snapshot{Matches: kept, Players: players, Loc: loc, Skipped: skipped}
}

// Len returns the number of usable matches in the snapshot.
func (s Snapshot) Len() int { return len(s.Matches) }

// Empty reports whether the snapshot holds no usable matches.
func (s Snapshot) Empty() bool { return len(s.Matches) == 0 }

// Last returns the most recent n matches in chronological order.
func (s Snapshot) Last(n int) []model.MatchRecord {
	if n <= 0 || n >= len(s.Matches) {
		return s.Matches
	}
	return s.Matches[len(s.Matches)-n:]
}
