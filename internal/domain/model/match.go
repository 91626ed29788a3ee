// Package model contains domain models passed between layers.
package model

import (
	"time"
)

// NoStage is the read-time display fallback for legacy records that were
// written before the stage field became mandatory. New submissions with a
// blank stage are rejected at the normalizer boundary instead.
const NoStage = "No Stage"

// SessionIDLayout is the hour-granularity format used for session IDs,
// derived from the timestamp of the first match in the session.
const SessionIDLayout = "2006-01-02-15"

// OccurredAtLayout is the human-readable display form stored alongside the
// authoritative unix timestamp. Aggregation never orders by this field.
const OccurredAtLayout = "2006-01-02 15:04:05"

// RawMatch is a match submission as received from a client, before
// normalization. All fields are untrusted.
type RawMatch struct {
	PlayerACharacter string `json:"player_a_character"`
	PlayerBCharacter string `json:"player_b_character"`
	Winner           string `json:"winner"`
	StocksRemaining  *int   `json:"stocks_remaining,omitempty"`
	Stage            string `json:"stage"`
}

// MatchRecord is one logged game outcome between the two fixed identities.
// Records are immutable once written; a correction is a new record.
type MatchRecord struct {
	ID               string  `json:"id"`
	Timestamp        float64 `json:"timestamp"`
	OccurredAt       string  `json:"occurred_at"`
	PlayerACharacter string  `json:"player_a_character"`
	PlayerBCharacter string  `json:"player_b_character"`
	Winner           string  `json:"winner"`
	StocksRemaining  *int    `json:"stocks_remaining,omitempty"`
	Stage            string  `json:"stage"`
	SessionID        string  `json:"session_id,omitempty"`
}

// Time converts the unix timestamp to a time.Time in loc.
func (m MatchRecord) Time(loc *time.Location) time.Time {
	sec := int64(m.Timestamp)
	nsec := int64((m.Timestamp - float64(sec)) * float64(time.Second))
	return time.Unix(sec, nsec).In(loc)
}

// DisplayStage returns the stage with the legacy blank fallback applied.
func (m MatchRecord) DisplayStage() string {
	if m.Stage == "" {
		return NoStage
	}
	return m.Stage
}

// Players names the two fixed identities. They are roles, not a registry:
// every record's winner is exactly one of the two.
type Players struct {
	A string
	B string
}

// Valid reports whether name matches one of the two identities.
func (p Players) Valid(name string) bool {
	return name == p.A || name == p.B
}

// Opponent returns the other identity, or "" if name is neither.
func (p Players) Opponent(name string) string {
	switch name {
	case p.A:
		return p.B
	case p.B:
		return p.A
	}
	return ""
}

// CharacterOf returns the character the named identity played in m.
func (p Players) CharacterOf(m MatchRecord, name string) string {
	switch name {
	case p.A:
		return m.PlayerACharacter
	case p.B:
		return m.PlayerBCharacter
	}
	return ""
}

// Session is a maximal run of time-ordered matches where no inter-match gap
// exceeds the inactivity threshold. Sessions are derived, never stored as a
// second source of truth.
type Session struct {
	ID              string        `json:"session_id"`
	StartTimestamp  float64       `json:"start_timestamp"`
	EndTimestamp    float64       `json:"end_timestamp"`
	Matches         []MatchRecord `json:"matches"`
	WinsA           int           `json:"wins_a"`
	WinsB           int           `json:"wins_b"`
	DurationMinutes int           `json:"duration_minutes"`
}

// TotalGames returns the number of matches in the session.
func (s Session) TotalGames() int { return len(s.Matches) }

// SessionIDAt formats a session ID for the given unix timestamp in loc.
func SessionIDAt(ts float64, loc *time.Location) string {
	sec := int64(ts)
	return time.Unix(sec, 0).In(loc).Format(SessionIDLayout)
}
