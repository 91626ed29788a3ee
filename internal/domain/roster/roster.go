// Package roster holds the selectable character list and its usage counts.
package roster

import (
	"sort"

	"github.com/halvard/smashlog/internal/domain/model"
)

// Roster is an ordered set of selectable character names. The order is the
// canonical pick-screen order, not alphabetical.
type Roster struct {
	names []string
	index map[string]struct{}
}

// New builds a roster from the given names, dropping duplicates while
// keeping first-seen order.
func New(names []string) *Roster {
	r := &Roster{index: make(map[string]struct{}, len(names))}
	for _, n := range names {
		if _, ok := r.index[n]; ok {
			continue
		}
		r.index[n] = struct{}{}
		r.names = append(r.names, n)
	}
	return r
}

// Default returns the stock selectable roster.
func Default() *Roster {
	return New(defaultNames)
}

// Names returns the roster in canonical order. The slice is a copy.
func (r *Roster) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Contains reports whether name is on the roster.
func (r *Roster) Contains(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Len returns the roster size.
func (r *Roster) Len() int { return len(r.names) }

// Usage pairs the roster with per-player play counts.
type Usage struct {
	All     []string       `json:"all_characters"`
	CountsA map[string]int `json:"counts_a"`
	CountsB map[string]int `json:"counts_b"`
}

// Usage counts how often each roster character was played per side.
// Characters that appear in the log but not on the roster are appended in
// sorted order so historical data never disappears from the pick list.
func (r *Roster) Usage(matches []model.MatchRecord) Usage {
	u := Usage{
		All:     r.Names(),
		CountsA: make(map[string]int, len(r.names)),
		CountsB: make(map[string]int, len(r.names)),
	}
	for _, n := range r.names {
		u.CountsA[n] = 0
		u.CountsB[n] = 0
	}
	var extras []string
	seen := map[string]struct{}{}
	note := func(name string) {
		if r.Contains(name) {
			return
		}
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			extras = append(extras, name)
		}
	}
	for _, m := range matches {
		note(m.PlayerACharacter)
		u.CountsA[m.PlayerACharacter]++
		note(m.PlayerBCharacter)
		u.CountsB[m.PlayerBCharacter]++
	}
	sort.Strings(extras)
	u.All = append(u.All, extras...)
	return u
}
