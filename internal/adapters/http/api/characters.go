// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strings"
)

// CharactersHandler handles character list and detail requests.
type CharactersHandler struct {
	deps Dependencies
}

// NewCharactersHandler creates a new characters handler.
func NewCharactersHandler(deps Dependencies) *CharactersHandler {
	return &CharactersHandler{deps: deps}
}

// HandleList handles GET /api/characters requests. With ?overview=1 the
// usage counts are replaced by per-character win rates.
func (h *CharactersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	if r.URL.Query().Get("overview") != "" {
		out, err := h.deps.CharacterOverview(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"characters": out})
		return
	}
	usage, err := h.deps.Characters(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, usage)
}

// HandleCharacter handles GET /api/characters/{name}/stats requests.
func (h *CharactersHandler) HandleCharacter(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/api/characters/")
	name, report, ok := strings.Cut(rest, "/")
	if !ok || name == "" || report != "stats" {
		writeError(w, http.StatusBadRequest, "bad_request", nil)
		return
	}
	out, err := h.deps.CharacterStats(r.Context(), name)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
