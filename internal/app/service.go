// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	repository "github.com/halvard/smashlog/internal/adapters/repository"
	"github.com/halvard/smashlog/internal/domain/model"
	"github.com/halvard/smashlog/internal/domain/normalize"
	"github.com/halvard/smashlog/internal/domain/roster"
	"github.com/halvard/smashlog/internal/domain/session"
	"github.com/halvard/smashlog/internal/domain/stats"
	"github.com/halvard/smashlog/pkg/logger"
	"github.com/halvard/smashlog/pkg/metrics"
)

// Service owns the match log: the single write path and every read-side
// aggregation. Reads always recompute from the full log; sessions and
// statistics are derived, never stored as a second source of truth.
type Service struct {
	mu sync.RWMutex
	// submitMu serializes writers so session continuity is decided against
	// a settled last record.
	submitMu sync.Mutex

	store      repository.Store
	normalizer *normalize.Normalizer
	segmenter  *session.Segmenter
	roster     *roster.Roster

	players     model.Players
	loc         *time.Location
	dbPath      string
	gapHours    float64
	windowSize  int
	maxTimeline int
	minMatchup  int
	minStage    int
	minIdentity int
	now         func() time.Time

	started bool
	logger  logger.Logger
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		players:     model.Players{A: "Shayne", B: "Matt"},
		loc:         time.UTC,
		gapHours:    4.0,
		windowSize:  20,
		maxTimeline: 2000,
		minMatchup:  3,
		minStage:    2,
		minIdentity: 5,
		roster:      roster.Default(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start opens the store and wires the write path. A file-backed store is
// used when a database path was configured, otherwise everything lives in
// memory for the life of the process.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.store == nil {
		if s.dbPath == "" || s.dbPath == "memory" {
			s.store = repository.NewMemStore()
			s.logger.Info(ctx, "using in-memory match store")
		} else {
			store, err := repository.OpenSQLite(ctx, s.dbPath)
			if err != nil {
				return fmt.Errorf("opening match store: %w", err)
			}
			s.store = store
			s.logger.Info(ctx, "using sqlite match store", logger.String("path", s.dbPath))
		}
	}

	s.normalizer = normalize.New(s.store, s.players, s.loc,
		normalize.WithSessionGapHours(s.gapHours),
		normalize.WithClock(s.now),
	)
	s.segmenter = session.New(s.loc, session.WithGapHours(s.gapHours))

	if n, err := s.store.Count(ctx); err == nil {
		metrics.SetRecordCount(n)
		s.logger.Info(ctx, "match log service started",
			logger.Int("records", n),
			logger.String("player_a", s.players.A),
			logger.String("player_b", s.players.B),
		)
	}

	s.started = true
	return nil
}

// Stop closes the store.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn(context.Background(), "closing match store", logger.Error(err))
	}
	s.started = false
	s.logger.Info(context.Background(), "match log service stopped")
}

// Players returns the two configured identities.
func (s *Service) Players() model.Players { return s.players }

// Submit validates and appends one match. Writers are serialized; the
// stored record is returned with its id, timestamp and session assignment.
func (s *Service) Submit(ctx context.Context, raw model.RawMatch) (model.MatchRecord, error) {
	s.submitMu.Lock()
	defer s.submitMu.Unlock()

	rec, err := s.normalizer.Submit(ctx, raw)
	if err != nil {
		return model.MatchRecord{}, err
	}
	if n, cerr := s.store.Count(ctx); cerr == nil {
		metrics.SetRecordCount(n)
	}
	s.logger.Info(ctx, "match logged",
		logger.String("id", rec.ID),
		logger.String("winner", rec.Winner),
		logger.String("session", rec.SessionID),
	)
	return rec, nil
}

// snapshot reads the full log and filters it for aggregation.
func (s *Service) snapshot(ctx context.Context) (stats.Snapshot, error) {
	start := time.Now()
	records, err := s.store.ReadAll(ctx)
	if err != nil {
		return stats.Snapshot{}, fmt.Errorf("reading match log: %w", err)
	}
	metrics.ObserveStoreRead(time.Since(start))
	return stats.NewSnapshot(records, s.players, s.loc, s.logger), nil
}

func (s *Service) observe(op string) func() {
	start := time.Now()
	return func() { metrics.ObserveAggregation(op, time.Since(start)) }
}

// Overall returns the headline summary across the whole log.
func (s *Service) Overall(ctx context.Context) (stats.OverallStats, error) {
	defer s.observe("overall")()
	snap, err := s.snapshot(ctx)
	if err != nil {
		return stats.OverallStats{}, err
	}
	return stats.Overall(snap, s.now()), nil
}

// Sessions re-derives the full session list from the log, most recent first.
func (s *Service) Sessions(ctx context.Context) ([]model.Session, error) {
	defer s.observe("sessions")()
	sessions, err := s.segmentedSessions(ctx)
	if err != nil {
		return nil, err
	}
	// Listing order is most recent first; segmentation stays chronological.
	for i, j := 0, len(sessions)-1; i < j; i, j = i+1, j-1 {
		sessions[i], sessions[j] = sessions[j], sessions[i]
	}
	return sessions, nil
}

// segmentedSessions segments the full log in chronological order.
func (s *Service) segmentedSessions(ctx context.Context) ([]model.Session, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.segmenter.Segment(snap.Matches, s.players), nil
}

// Session returns one session by id.
func (s *Service) Session(ctx context.Context, id string) (model.Session, error) {
	defer s.observe("session")()
	sessions, err := s.segmentedSessions(ctx)
	if err != nil {
		return model.Session{}, err
	}
	found, ok := session.Find(sessions, id)
	if !ok {
		return model.Session{}, fmt.Errorf("session %q: %w", id, ErrSessionNotFound)
	}
	return found, nil
}

// CurrentSession returns the latest session, but only while it is still
// open: once the inactivity gap has elapsed since its last match there is
// no current session.
func (s *Service) CurrentSession(ctx context.Context) (model.Session, error) {
	defer s.observe("current_session")()
	sessions, err := s.segmentedSessions(ctx)
	if err != nil {
		return model.Session{}, err
	}
	if len(sessions) == 0 {
		return model.Session{}, fmt.Errorf("empty match log: %w", ErrSessionNotFound)
	}
	last := sessions[len(sessions)-1]
	idle := float64(s.now().Unix()) - last.EndTimestamp
	if idle > s.gapHours*3600 {
		return model.Session{}, fmt.Errorf("last session %q already closed: %w", last.ID, ErrSessionNotFound)
	}
	return last, nil
}

// Resegment recomputes session ids for the whole log and persists them as
// the write-time cache. Returns the number of sessions found.
func (s *Service) Resegment(ctx context.Context) (int, error) {
	s.submitMu.Lock()
	defer s.submitMu.Unlock()

	snap, err := s.snapshot(ctx)
	if err != nil {
		return 0, err
	}
	sessions := s.segmenter.Segment(snap.Matches, s.players)
	ids := make(map[string]string, snap.Len())
	for _, sess := range sessions {
		for _, m := range sess.Matches {
			ids[m.ID] = sess.ID
		}
	}
	if err := s.store.CacheSessionIDs(ctx, ids); err != nil {
		return 0, fmt.Errorf("caching session ids: %w", err)
	}
	return len(sessions), nil
}

// PlayerStats returns the per-player report for one of the two identities.
func (s *Service) PlayerStats(ctx context.Context, player string) (stats.IdentityStats, error) {
	defer s.observe("player_stats")()
	if !s.players.Valid(player) {
		return stats.IdentityStats{}, fmt.Errorf("player %q: %w", player, ErrUnknownPlayer)
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return stats.IdentityStats{}, err
	}
	return stats.ForIdentity(snap, player, stats.IdentityMinimums{
		StageGames:   s.minStage,
		MatchupGames: s.minIdentity,
	}), nil
}

// PlayerTimeline returns fixed-size win-rate windows for a player.
func (s *Service) PlayerTimeline(ctx context.Context, player string) ([]stats.TimelineWindow, error) {
	defer s.observe("timeline")()
	if !s.players.Valid(player) {
		return nil, fmt.Errorf("player %q: %w", player, ErrUnknownPlayer)
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return stats.Timeline(snap, player, s.windowSize, s.maxTimeline)
}

// PlayerHeatmap returns the day-by-hour activity grid for a player,
// optionally restricted to one character.
func (s *Service) PlayerHeatmap(ctx context.Context, player, character string) ([]stats.HeatmapCell, error) {
	defer s.observe("heatmap")()
	if !s.players.Valid(player) {
		return nil, fmt.Errorf("player %q: %w", player, ErrUnknownPlayer)
	}
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return stats.Heatmap(snap, player, character)
}

// MatchupMatrix returns the full character-vs-character grid.
func (s *Service) MatchupMatrix(ctx context.Context) (stats.MatrixReport, error) {
	defer s.observe("matchup_matrix")()
	snap, err := s.snapshot(ctx)
	if err != nil {
		return stats.MatrixReport{}, err
	}
	return stats.MatchupMatrix(snap, s.minIdentity), nil
}

// HeadToHead returns the rivalry report.
func (s *Service) HeadToHead(ctx context.Context) (stats.HeadToHead, error) {
	defer s.observe("head_to_head")()
	snap, err := s.snapshot(ctx)
	if err != nil {
		return stats.HeadToHead{}, err
	}
	return stats.CompareHeadToHead(snap), nil
}

// Advanced returns momentum and dominance metrics for both players.
func (s *Service) Advanced(ctx context.Context) (stats.AdvancedReport, error) {
	defer s.observe("advanced")()
	snap, err := s.snapshot(ctx)
	if err != nil {
		return stats.AdvancedReport{}, err
	}
	return stats.Advanced(snap), nil
}

// MonthlyBreakdown returns per-month totals in chronological order. A
// positive limit keeps only the most recent months.
func (s *Service) MonthlyBreakdown(ctx context.Context, limit int) ([]stats.MonthBreakdown, error) {
	defer s.observe("monthly")()
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return stats.MonthlyBreakdown(snap, limit), nil
}

// Characters returns the pick list with per-player usage counts.
func (s *Service) Characters(ctx context.Context) (roster.Usage, error) {
	defer s.observe("characters")()
	snap, err := s.snapshot(ctx)
	if err != nil {
		return roster.Usage{}, err
	}
	return s.roster.Usage(snap.Matches), nil
}

// CharacterOverview summarizes every character seen in the log.
func (s *Service) CharacterOverview(ctx context.Context) ([]stats.CharacterOverview, error) {
	defer s.observe("character_overview")()
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return stats.CharacterRoster(snap), nil
}

// CharacterStats drills into one character across both players.
func (s *Service) CharacterStats(ctx context.Context, character string) (stats.CharacterDetail, error) {
	defer s.observe("character_stats")()
	snap, err := s.snapshot(ctx)
	if err != nil {
		return stats.CharacterDetail{}, err
	}
	detail := stats.ForCharacter(snap, character, s.minMatchup, s.minStage)
	if !detail.Found {
		return stats.CharacterDetail{}, fmt.Errorf("character %q: %w", character, ErrCharacterNotFound)
	}
	return detail, nil
}

// Matches returns the most recent limit matches, newest first. limit <= 0
// returns everything.
func (s *Service) Matches(ctx context.Context, limit int) ([]model.MatchRecord, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	recent := snap.Last(limit)
	out := make([]model.MatchRecord, len(recent))
	for i, m := range recent {
		out[len(recent)-1-i] = m
	}
	return out, nil
}

// Count returns the number of stored records.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}
