// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strings"
)

// PlayersHandler handles per-player report requests.
type PlayersHandler struct {
	deps Dependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps Dependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

// HandlePlayer routes GET /api/players/{name}/stats, .../timeline and
// .../heatmap requests.
func (h *PlayersHandler) HandlePlayer(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/api/players/")
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" {
		writeError(w, http.StatusBadRequest, "bad_request", nil)
		return
	}
	player, report := parts[0], parts[1]

	switch report {
	case "stats":
		out, err := h.deps.PlayerStats(r.Context(), player)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, out)
	case "timeline":
		out, err := h.deps.PlayerTimeline(r.Context(), player)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"windows": out})
	case "heatmap":
		out, err := h.deps.PlayerHeatmap(r.Context(), player, r.URL.Query().Get("character"))
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"cells": out})
	default:
		http.NotFound(w, r)
	}
}
