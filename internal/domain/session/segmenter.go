// Package session partitions the ordered match log into play sessions.
//
// A session is a maximal run of time-ordered matches where no gap between
// consecutive matches exceeds the inactivity threshold. Sessions are always
// re-derivable from timestamps alone; cached session ids on records are never
// treated as a second source of truth.
package session

import (
	"sort"
	"time"

	"github.com/halvard/smashlog/internal/domain/model"
	"github.com/halvard/smashlog/pkg/metrics"
)

const (
	defaultGapHours  = 4.0
	secondsPerHour   = 3600
	secondsPerMinute = 60
)

// Segmenter groups matches into sessions by inactivity gap.
type Segmenter struct {
	gapHours float64
	loc      *time.Location
}

// New creates a Segmenter using loc for session id formatting.
func New(loc *time.Location, opts ...Option) *Segmenter {
	s := &Segmenter{
		gapHours: defaultGapHours,
		loc:      loc,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Segment fully re-derives sessions from scratch, ignoring any cached
// session ids on the records. This is the authoritative read path: it is
// deterministic even when records were inserted out of timestamp order.
func (s *Segmenter) Segment(matches []model.MatchRecord, players model.Players) []model.Session {
	ordered := sortByTimestamp(matches)
	if len(ordered) == 0 {
		return nil
	}

	var (
		sessions []model.Session
		current  model.Session
		lastTS   float64
	)

	flush := func() {
		if len(current.Matches) == 0 {
			return
		}
		last := current.Matches[len(current.Matches)-1]
		current.EndTimestamp = last.Timestamp
		current.DurationMinutes = int((current.EndTimestamp - current.StartTimestamp) / secondsPerMinute)
		sessions = append(sessions, current)
	}

	for i, rec := range ordered {
		gapHours := (rec.Timestamp - lastTS) / secondsPerHour
		if i == 0 || gapHours > s.gapHours {
			flush()
			current = model.Session{
				ID:             model.SessionIDAt(rec.Timestamp, s.loc),
				StartTimestamp: rec.Timestamp,
			}
		}
		rec.SessionID = current.ID
		current.Matches = append(current.Matches, rec)
		switch rec.Winner {
		case players.A:
			current.WinsA++
		case players.B:
			current.WinsB++
		}
		lastTS = rec.Timestamp
	}
	flush()

	metrics.SetSessionCount(len(sessions))
	return sessions
}

// AssignMissing runs the "fill missing only" mode: records that already
// carry a session id keep it (the id is adopted as the running session),
// and only records without one receive a derived id. The result maps record
// id to the assigned session id, covering only previously-unassigned
// records, so repeated runs over an append-only log never renumber history.
func (s *Segmenter) AssignMissing(matches []model.MatchRecord) map[string]string {
	ordered := sortByTimestamp(matches)
	assigned := make(map[string]string)

	var (
		currentID string
		lastTS    float64
		started   bool
	)

	for _, rec := range ordered {
		if rec.SessionID != "" {
			currentID = rec.SessionID
			lastTS = rec.Timestamp
			started = true
			continue
		}

		gapHours := (rec.Timestamp - lastTS) / secondsPerHour
		if !started || gapHours > s.gapHours {
			currentID = model.SessionIDAt(rec.Timestamp, s.loc)
			started = true
		}
		assigned[rec.ID] = currentID
		lastTS = rec.Timestamp
	}
	return assigned
}

// Find returns the session with the given id, or false.
func Find(sessions []model.Session, id string) (model.Session, bool) {
	for _, sess := range sessions {
		if sess.ID == id {
			return sess, true
		}
	}
	return model.Session{}, false
}

// sortByTimestamp returns a stably-sorted copy; ties keep insertion order.
func sortByTimestamp(matches []model.MatchRecord) []model.MatchRecord {
	out := make([]model.MatchRecord, len(matches))
	copy(out, matches)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp < out[j].Timestamp
	})
	return out
}
