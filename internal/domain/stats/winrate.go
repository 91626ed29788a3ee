package stats

import (
	"math"
	"sort"
	"time"
)

// round1 rounds to one decimal place; all ratios in reports use it.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// pct returns wins/total as a percentage rounded to one decimal, 0 when
// total is zero.
func pct(wins, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(wins) / float64(total) * 100)
}

// Wins counts matches won by the named player.
func Wins(snap Snapshot, player string) int {
	wins := 0
	for _, m := range snap.Matches {
		if m.Winner == player {
			wins++
		}
	}
	return wins
}

// WinRate is the named player's win percentage over the whole snapshot,
// rounded to one decimal. Over any shared set of matches the two players'
// win rates sum to 100 up to rounding.
func WinRate(snap Snapshot, player string) float64 {
	return pct(Wins(snap, player), snap.Len())
}

// CharacterCount is one character's share of a player's games.
type CharacterCount struct {
	Character string  `json:"character"`
	Games     int     `json:"games"`
	Wins      int     `json:"wins"`
	WinRate   float64 `json:"win_rate"`
}

// OverallStats is the top-level summary across the entire match log.
type OverallStats struct {
	TotalGames    int              `json:"total_games"`
	WinsA         int              `json:"wins_a"`
	WinsB         int              `json:"wins_b"`
	WinRateA      float64          `json:"win_rate_a"`
	WinRateB      float64          `json:"win_rate_b"`
	TopCharsA     []CharacterCount `json:"top_chars_a"`
	TopCharsB     []CharacterCount `json:"top_chars_b"`
	AvgStocksA    float64          `json:"avg_stocks_a"`
	AvgStocksB    float64          `json:"avg_stocks_b"`
	LastMatchAt   string           `json:"last_match_at,omitempty"`
	GamesThisWeek int              `json:"games_this_week"`
	CurrentStreak *StreakResult    `json:"current_streak"`
}

// Overall computes the headline summary. An empty snapshot yields the zero
// shape with TotalGames == 0; callers treat that as "no games yet", not as
// an error. now anchors the games-this-week count.
func Overall(snap Snapshot, now time.Time) OverallStats {
	out := OverallStats{TotalGames: snap.Len()}
	if snap.Empty() {
		return out
	}
	out.WinsA = Wins(snap, snap.Players.A)
	out.WinsB = Wins(snap, snap.Players.B)
	out.WinRateA = pct(out.WinsA, out.TotalGames)
	out.WinRateB = pct(out.WinsB, out.TotalGames)
	out.TopCharsA = topCharacters(snap, snap.Players.A, 5)
	out.TopCharsB = topCharacters(snap, snap.Players.B, 5)
	out.AvgStocksA = AvgStocksWhenWinning(snap, snap.Players.A)
	out.AvgStocksB = AvgStocksWhenWinning(snap, snap.Players.B)
	out.LastMatchAt = snap.Matches[snap.Len()-1].OccurredAt
	out.CurrentStreak = CurrentStreak(snap)

	weekAgo := float64(now.Add(-7 * 24 * time.Hour).Unix())
	for i := snap.Len() - 1; i >= 0; i-- {
		if snap.Matches[i].Timestamp < weekAgo {
			break
		}
		out.GamesThisWeek++
	}
	return out
}

func topCharacters(snap Snapshot, player string, limit int) []CharacterCount {
	usage := CharacterUsage(snap, player)
	if limit > 0 && len(usage) > limit {
		usage = usage[:limit]
	}
	return usage
}

// CharacterUsage breaks a player's games down by the character they played,
// sorted by games played then win rate, both descending.
func CharacterUsage(snap Snapshot, player string) []CharacterCount {
	games := map[string]int{}
	wins := map[string]int{}
	for _, m := range snap.Matches {
		ch := snap.Players.CharacterOf(m, player)
		games[ch]++
		if m.Winner == player {
			wins[ch]++
		}
	}
	out := make([]CharacterCount, 0, len(games))
	for ch, n := range games {
		out = append(out, CharacterCount{
			Character: ch,
			Games:     n,
			Wins:      wins[ch],
			WinRate:   pct(wins[ch], n),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Games != out[j].Games {
			return out[i].Games > out[j].Games
		}
		if out[i].WinRate != out[j].WinRate {
			return out[i].WinRate > out[j].WinRate
		}
		return out[i].Character < out[j].Character
	})
	return out
}
