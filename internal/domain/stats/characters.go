package stats

import "sort"

// CharacterOverview is one character's aggregate across both players.
type CharacterOverview struct {
	Character string  `json:"character"`
	Games     int     `json:"games"`
	Wins      int     `json:"wins"`
	WinRate   float64 `json:"win_rate"`
	GamesA    int     `json:"games_a"`
	GamesB    int     `json:"games_b"`
	UsageRate float64 `json:"usage_rate"`
}

// CharacterRoster summarizes every character that has appeared in the log,
// counting each side of a match independently: a mirror match contributes
// two games to that character. Usage is share of total match slots. Sorted
// by games descending, ties by name.
func CharacterRoster(snap Snapshot) []CharacterOverview {
	byChar := map[string]*CharacterOverview{}
	get := func(ch string) *CharacterOverview {
		co, ok := byChar[ch]
		if !ok {
			co = &CharacterOverview{Character: ch}
			byChar[ch] = co
		}
		return co
	}
	for _, m := range snap.Matches {
		a := get(m.PlayerACharacter)
		a.Games++
		a.GamesA++
		if m.Winner == snap.Players.A {
			a.Wins++
		}
		b := get(m.PlayerBCharacter)
		b.Games++
		b.GamesB++
		if m.Winner == snap.Players.B {
			b.Wins++
		}
	}
	slots := snap.Len() * 2
	out := make([]CharacterOverview, 0, len(byChar))
	for _, co := range byChar {
		co.WinRate = pct(co.Wins, co.Games)
		co.UsageRate = pct(co.Games, slots)
		out = append(out, *co)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Games != out[j].Games {
			return out[i].Games > out[j].Games
		}
		return out[i].Character < out[j].Character
	})
	return out
}

// CharacterSideStats is one player's record with a specific character.
type CharacterSideStats struct {
	Player  string  `json:"player"`
	Games   int     `json:"games"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"win_rate"`
}

// CharacterDetail drills into a single character across both players.
type CharacterDetail struct {
	Character string               `json:"character"`
	Games     int                  `json:"games"`
	Wins      int                  `json:"wins"`
	WinRate   float64              `json:"win_rate"`
	BySide    []CharacterSideStats `json:"by_side"`
	Matchups  []OpponentMatchup    `json:"matchups"`
	Stages    []StageStat          `json:"stages"`
	Found     bool                 `json:"found"`
}

// ForCharacter reports on one character regardless of who played it.
// Matchups count the opposing character across all games involving the
// character, floored at minMatchup games; stage records are floored at
// minStage. Found is false when the character never appears.
func ForCharacter(snap Snapshot, character string, minMatchup, minStage int) CharacterDetail {
	out := CharacterDetail{Character: character}

	// Restricted sub-snapshots per side keep the per-player and matchup
	// math identical to the global operations.
	var asA, asB []int
	for i, m := range snap.Matches {
		if m.PlayerACharacter == character {
			asA = append(asA, i)
		}
		if m.PlayerBCharacter == character {
			asB = append(asB, i)
		}
	}
	if len(asA) == 0 && len(asB) == 0 {
		return out
	}
	out.Found = true

	type muAgg struct{ games, wins int }
	matchups := map[string]*muAgg{}
	stages := map[string]*muAgg{}
	tally := func(indices []int, player string) CharacterSideStats {
		st := CharacterSideStats{Player: player, Games: len(indices)}
		for _, i := range indices {
			m := snap.Matches[i]
			won := m.Winner == player
			if won {
				st.Wins++
			}
			opp := snap.Players.CharacterOf(m, snap.Players.Opponent(player))
			ma, ok := matchups[opp]
			if !ok {
				ma = &muAgg{}
				matchups[opp] = ma
			}
			ma.games++
			if won {
				ma.wins++
			}
			if m.Stage != "" {
				sa, ok := stages[m.Stage]
				if !ok {
					sa = &muAgg{}
					stages[m.Stage] = sa
				}
				sa.games++
				if won {
					sa.wins++
				}
			}
		}
		st.WinRate = pct(st.Wins, st.Games)
		return st
	}

	if len(asA) > 0 {
		side := tally(asA, snap.Players.A)
		out.BySide = append(out.BySide, side)
		out.Games += side.Games
		out.Wins += side.Wins
	}
	if len(asB) > 0 {
		side := tally(asB, snap.Players.B)
		out.BySide = append(out.BySide, side)
		out.Games += side.Games
		out.Wins += side.Wins
	}
	out.WinRate = pct(out.Wins, out.Games)

	for opp, agg := range matchups {
		if agg.games < minMatchup {
			continue
		}
		out.Matchups = append(out.Matchups, OpponentMatchup{
			OpponentCharacter: opp,
			Games:             agg.games,
			Wins:              agg.wins,
			Losses:            agg.games - agg.wins,
			WinRate:           pct(agg.wins, agg.games),
		})
	}
	sort.Slice(out.Matchups, func(i, j int) bool {
		if out.Matchups[i].WinRate != out.Matchups[j].WinRate {
			return out.Matchups[i].WinRate > out.Matchups[j].WinRate
		}
		if out.Matchups[i].Games != out.Matchups[j].Games {
			return out.Matchups[i].Games > out.Matchups[j].Games
		}
		return out.Matchups[i].OpponentCharacter < out.Matchups[j].OpponentCharacter
	})

	for stage, agg := range stages {
		if agg.games < minStage {
			continue
		}
		out.Stages = append(out.Stages, StageStat{
			Stage:   stage,
			Games:   agg.games,
			Wins:    agg.wins,
			WinRate: pct(agg.wins, agg.games),
		})
	}
	sort.Slice(out.Stages, func(i, j int) bool {
		if out.Stages[i].WinRate != out.Stages[j].WinRate {
			return out.Stages[i].WinRate > out.Stages[j].WinRate
		}
		if out.Stages[i].Games != out.Stages[j].Games {
			return out.Stages[i].Games > out.Stages[j].Games
		}
		return out.Stages[i].Stage < out.Stages[j].Stage
	})
	return out
}
