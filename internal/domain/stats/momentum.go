package stats

// MomentumStat compares a player's win rate in games played immediately
// after a win with games played immediately after a loss.
type MomentumStat struct {
	AfterWinGames  int     `json:"after_win_games"`
	AfterWinRate   float64 `json:"after_win_rate"`
	AfterLossGames int     `json:"after_loss_games"`
	AfterLossRate  float64 `json:"after_loss_rate"`
}

// Momentum pairs each match with its predecessor in time order. The first
// match has no predecessor and contributes to neither bucket.
func Momentum(snap Snapshot, player string) MomentumStat {
	var stat MomentumStat
	var afterWinWins, afterLossWins int
	for i := 1; i < snap.Len(); i++ {
		prevWon := snap.Matches[i-1].Winner == player
		won := snap.Matches[i].Winner == player
		if prevWon {
			stat.AfterWinGames++
			if won {
				afterWinWins++
			}
		} else {
			stat.AfterLossGames++
			if won {
				afterLossWins++
			}
		}
	}
	stat.AfterWinRate = pct(afterWinWins, stat.AfterWinGames)
	stat.AfterLossRate = pct(afterLossWins, stat.AfterLossGames)
	return stat
}
