// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	service "github.com/halvard/smashlog/internal/app"
	"github.com/halvard/smashlog/internal/domain/model"
	"github.com/halvard/smashlog/internal/domain/normalize"
	"github.com/halvard/smashlog/internal/domain/roster"
	"github.com/halvard/smashlog/internal/domain/stats"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Players() model.Players
	Submit(ctx context.Context, raw model.RawMatch) (model.MatchRecord, error)
	Matches(ctx context.Context, limit int) ([]model.MatchRecord, error)
	Overall(ctx context.Context) (stats.OverallStats, error)
	Sessions(ctx context.Context) ([]model.Session, error)
	Session(ctx context.Context, id string) (model.Session, error)
	CurrentSession(ctx context.Context) (model.Session, error)
	PlayerStats(ctx context.Context, player string) (stats.IdentityStats, error)
	PlayerTimeline(ctx context.Context, player string) ([]stats.TimelineWindow, error)
	PlayerHeatmap(ctx context.Context, player, character string) ([]stats.HeatmapCell, error)
	MatchupMatrix(ctx context.Context) (stats.MatrixReport, error)
	HeadToHead(ctx context.Context) (stats.HeadToHead, error)
	Advanced(ctx context.Context) (stats.AdvancedReport, error)
	MonthlyBreakdown(ctx context.Context, limit int) ([]stats.MonthBreakdown, error)
	Characters(ctx context.Context) (roster.Usage, error)
	CharacterOverview(ctx context.Context) ([]stats.CharacterOverview, error)
	CharacterStats(ctx context.Context, character string) (stats.CharacterDetail, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	matchesHandler    *MatchesHandler
	statsHandler      *StatsHandler
	sessionsHandler   *SessionsHandler
	playersHandler    *PlayersHandler
	charactersHandler *CharactersHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		matchesHandler:    NewMatchesHandler(deps),
		statsHandler:      NewStatsHandler(deps),
		sessionsHandler:   NewSessionsHandler(deps),
		playersHandler:    NewPlayersHandler(deps),
		charactersHandler: NewCharactersHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/api/matches", MetricsMiddleware(s.matchesHandler.HandleMatches, "matches"))
	mux.HandleFunc("/api/stats", MetricsMiddleware(s.statsHandler.HandleOverall, "stats"))
	mux.HandleFunc("/api/stats/advanced", MetricsMiddleware(s.statsHandler.HandleAdvanced, "advanced"))
	mux.HandleFunc("/api/stats/monthly", MetricsMiddleware(s.statsHandler.HandleMonthly, "monthly"))
	mux.HandleFunc("/api/head-to-head", MetricsMiddleware(s.statsHandler.HandleHeadToHead, "head_to_head"))
	mux.HandleFunc("/api/matchups/matrix", MetricsMiddleware(s.statsHandler.HandleMatrix, "matrix"))
	mux.HandleFunc("/api/sessions", MetricsMiddleware(s.sessionsHandler.HandleList, "sessions"))
	mux.HandleFunc("/api/sessions/", MetricsMiddleware(s.sessionsHandler.HandleGet, "session"))
	mux.HandleFunc("/api/players/", MetricsMiddleware(s.playersHandler.HandlePlayer, "players"))
	mux.HandleFunc("/api/characters", MetricsMiddleware(s.charactersHandler.HandleList, "characters"))
	mux.HandleFunc("/api/characters/", MetricsMiddleware(s.charactersHandler.HandleCharacter, "character"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError translates domain sentinels into HTTP statuses so every
// handler maps errors the same way.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case normalize.IsValidation(err):
		writeError(w, http.StatusBadRequest, "validation_failed", err)
	case errors.Is(err, service.ErrUnknownPlayer):
		writeError(w, http.StatusNotFound, "unknown_player", err)
	case errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "session_not_found", err)
	case errors.Is(err, service.ErrCharacterNotFound):
		writeError(w, http.StatusNotFound, "character_not_found", err)
	case errors.Is(err, stats.ErrInsufficientData):
		writeError(w, http.StatusUnprocessableEntity, "insufficient_data", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
