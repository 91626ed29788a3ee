package stats

// IdentityMinimums carries the sample-size floors for per-player reports.
type IdentityMinimums struct {
	StageGames   int
	MatchupGames int
}

// IdentityStats is the full per-player report.
type IdentityStats struct {
	Player         string            `json:"player"`
	TotalGames     int               `json:"total_games"`
	Wins           int               `json:"wins"`
	Losses         int               `json:"losses"`
	WinRate        float64           `json:"win_rate"`
	RecentWinRate  float64           `json:"recent_win_rate"`
	RecentGames    int               `json:"recent_games"`
	AvgStocksWon   float64           `json:"avg_stocks_won"`
	Characters     []CharacterCount  `json:"characters"`
	Stages         []StageStat       `json:"stages"`
	Matchups       []OpponentMatchup `json:"matchups"`
	Momentum       MomentumStat      `json:"momentum"`
	TwoStockRate   DominanceStat     `json:"two_stock_rate"`
	ThreeStockRate DominanceStat     `json:"three_stock_rate"`
	LongestWin     StreakSpan        `json:"longest_win"`
	LongestLoss    StreakSpan        `json:"longest_loss"`
}

// ForIdentity assembles the per-player report. Recent form covers the last
// 20 matches. An empty snapshot yields the zero shape with TotalGames == 0.
func ForIdentity(snap Snapshot, player string, min IdentityMinimums) IdentityStats {
	out := IdentityStats{Player: player, TotalGames: snap.Len()}
	if snap.Empty() {
		return out
	}
	out.Wins = Wins(snap, player)
	out.Losses = out.TotalGames - out.Wins
	out.WinRate = pct(out.Wins, out.TotalGames)

	recent := Snapshot{Matches: snap.Last(20), Players: snap.Players, Loc: snap.Loc}
	out.RecentGames = recent.Len()
	out.RecentWinRate = WinRate(recent, player)

	out.AvgStocksWon = AvgStocksWhenWinning(snap, player)
	out.Characters = CharacterUsage(snap, player)
	out.Stages = StagePerformance(snap, player, min.StageGames)
	out.Matchups = OpponentMatchups(snap, player, min.MatchupGames)
	out.Momentum = Momentum(snap, player)
	out.TwoStockRate = DominanceRate(snap, player, 2)
	out.ThreeStockRate = DominanceRate(snap, player, 3)

	streaks := LongestStreaks(snap)
	out.LongestWin = streaks.LongestWin[player]
	out.LongestLoss = streaks.LongestLoss[player]
	return out
}
