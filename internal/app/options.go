package service

import (
	"time"

	repository "github.com/halvard/smashlog/internal/adapters/repository"
	"github.com/halvard/smashlog/internal/domain/model"
	"github.com/halvard/smashlog/internal/domain/roster"
	"github.com/halvard/smashlog/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithPlayers sets the two fixed identities.
func WithPlayers(players model.Players) Option {
	return func(s *Service) {
		if players.A != "" && players.B != "" {
			s.players = players
		}
	}
}

// WithLocation sets the reference timezone for calendar bucketing.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithDBPath points the service at a sqlite file. Empty or "memory" keeps
// the log in process memory.
func WithDBPath(path string) Option {
	return func(s *Service) {
		s.dbPath = path
	}
}

// WithStore injects a pre-opened store, bypassing DBPath selection.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithSessionGapHours sets the inactivity gap that splits sessions.
func WithSessionGapHours(hours float64) Option {
	return func(s *Service) {
		if hours > 0 {
			s.gapHours = hours
		}
	}
}

// WithWindowSize sets the timeline window size in games.
func WithWindowSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.windowSize = n
		}
	}
}

// WithMaxTimelineMatches caps how far back the timeline looks.
func WithMaxTimelineMatches(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxTimeline = n
		}
	}
}

// WithMinimums sets the sample-size floors for matchup, stage and
// per-player matchup breakdowns.
func WithMinimums(matchup, stage, identity int) Option {
	return func(s *Service) {
		if matchup > 0 {
			s.minMatchup = matchup
		}
		if stage > 0 {
			s.minStage = stage
		}
		if identity > 0 {
			s.minIdentity = identity
		}
	}
}

// WithRoster replaces the default character pick list.
func WithRoster(r *roster.Roster) Option {
	return func(s *Service) {
		if r != nil {
			s.roster = r
		}
	}
}

// WithClock overrides the time source. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}
