package stats

import "sort"

// MatchupCell aggregates every match where a given character pair met.
// CharacterA is always the first identity's character.
type MatchupCell struct {
	CharacterA string  `json:"character_a"`
	CharacterB string  `json:"character_b"`
	Games      int     `json:"games"`
	WinsA      int     `json:"wins_a"`
	WinsB      int     `json:"wins_b"`
	WinRateA   float64 `json:"win_rate_a"`
	WinRateB   float64 `json:"win_rate_b"`
}

// MatrixReport is the full character-vs-character grid plus each player's
// best and worst matchups among pairs with enough games to mean anything.
type MatrixReport struct {
	Cells    []MatchupCell `json:"cells"`
	BestA    *MatchupCell  `json:"best_a,omitempty"`
	WorstA   *MatchupCell  `json:"worst_a,omitempty"`
	BestB    *MatchupCell  `json:"best_b,omitempty"`
	WorstB   *MatchupCell  `json:"worst_b,omitempty"`
	MinGames int           `json:"min_games"`
}

// MatchupMatrix builds the character-pair grid. Cells are sorted by games
// descending, then by character names, so the cell win counts always sum to
// the snapshot total regardless of presentation order. Best/worst picks
// consider only cells with at least minGames games.
func MatchupMatrix(snap Snapshot, minGames int) MatrixReport {
	type key struct{ a, b string }
	grid := map[key]*MatchupCell{}
	for _, m := range snap.Matches {
		k := key{m.PlayerACharacter, m.PlayerBCharacter}
		cell, ok := grid[k]
		if !ok {
			cell = &MatchupCell{CharacterA: k.a, CharacterB: k.b}
			grid[k] = cell
		}
		cell.Games++
		switch m.Winner {
		case snap.Players.A:
			cell.WinsA++
		case snap.Players.B:
			cell.WinsB++
		}
	}

	cells := make([]MatchupCell, 0, len(grid))
	for _, cell := range grid {
		cell.WinRateA = pct(cell.WinsA, cell.Games)
		cell.WinRateB = pct(cell.WinsB, cell.Games)
		cells = append(cells, *cell)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Games != cells[j].Games {
			return cells[i].Games > cells[j].Games
		}
		if cells[i].CharacterA != cells[j].CharacterA {
			return cells[i].CharacterA < cells[j].CharacterA
		}
		return cells[i].CharacterB < cells[j].CharacterB
	})

	report := MatrixReport{Cells: cells, MinGames: minGames}
	for i := range cells {
		c := cells[i]
		if c.Games < minGames {
			continue
		}
		if report.BestA == nil || betterCell(c, *report.BestA, c.WinRateA, report.BestA.WinRateA) {
			report.BestA = &cells[i]
		}
		if report.WorstA == nil || betterCell(c, *report.WorstA, -c.WinRateA, -report.WorstA.WinRateA) {
			report.WorstA = &cells[i]
		}
		if report.BestB == nil || betterCell(c, *report.BestB, c.WinRateB, report.BestB.WinRateB) {
			report.BestB = &cells[i]
		}
		if report.WorstB == nil || betterCell(c, *report.WorstB, -c.WinRateB, -report.WorstB.WinRateB) {
			report.WorstB = &cells[i]
		}
	}
	return report
}

// betterCell breaks rate ties by game count, then pair name, so best/worst
// picks are deterministic across runs.
func betterCell(c, cur MatchupCell, rate, curRate float64) bool {
	if rate != curRate {
		return rate > curRate
	}
	if c.Games != cur.Games {
		return c.Games > cur.Games
	}
	if c.CharacterA != cur.CharacterA {
		return c.CharacterA < cur.CharacterA
	}
	return c.CharacterB < cur.CharacterB
}

// OpponentMatchup is a player's record against one opposing character.
type OpponentMatchup struct {
	OpponentCharacter string  `json:"opponent_character"`
	Games             int     `json:"games"`
	Wins              int     `json:"wins"`
	Losses            int     `json:"losses"`
	WinRate           float64 `json:"win_rate"`
}

// OpponentMatchups breaks a player's games down by the character the other
// side played, dropping thin samples below minGames. Sorted by win rate
// descending, ties by game count descending then character name, so "best"
// and "worst" are the two ends of the slice.
func OpponentMatchups(snap Snapshot, player string, minGames int) []OpponentMatchup {
	opponent := snap.Players.Opponent(player)
	byChar := map[string]*OpponentMatchup{}
	for _, m := range snap.Matches {
		ch := snap.Players.CharacterOf(m, opponent)
		mu, ok := byChar[ch]
		if !ok {
			mu = &OpponentMatchup{OpponentCharacter: ch}
			byChar[ch] = mu
		}
		mu.Games++
		if m.Winner == player {
			mu.Wins++
		} else {
			mu.Losses++
		}
	}
	out := make([]OpponentMatchup, 0, len(byChar))
	for _, mu := range byChar {
		if mu.Games < minGames {
			continue
		}
		mu.WinRate = pct(mu.Wins, mu.Games)
		out = append(out, *mu)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WinRate != out[j].WinRate {
			return out[i].WinRate > out[j].WinRate
		}
		if out[i].Games != out[j].Games {
			return out[i].Games > out[j].Games
		}
		return out[i].OpponentCharacter < out[j].OpponentCharacter
	})
	return out
}
