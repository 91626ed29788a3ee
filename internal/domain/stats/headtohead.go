package stats

// HeadToHead is the rivalry view: lifetime record, trailing form, and the
// streak picture, in one report.
type HeadToHead struct {
	PlayerA       string        `json:"player_a"`
	PlayerB       string        `json:"player_b"`
	TotalGames    int           `json:"total_games"`
	WinsA         int           `json:"wins_a"`
	WinsB         int           `json:"wins_b"`
	WinRateA      float64       `json:"win_rate_a"`
	WinRateB      float64       `json:"win_rate_b"`
	Form          []FormWindow  `json:"form"`
	CurrentStreak *StreakResult `json:"current_streak"`
	Streaks       StreaksReport `json:"streaks"`
}

// CompareHeadToHead builds the rivalry report with trailing form over the
// last 10, 20 and 50 matches. An empty snapshot yields the zero shape.
func CompareHeadToHead(snap Snapshot) HeadToHead {
	out := HeadToHead{
		PlayerA:    snap.Players.A,
		PlayerB:    snap.Players.B,
		TotalGames: snap.Len(),
	}
	if snap.Empty() {
		return out
	}
	out.WinsA = Wins(snap, snap.Players.A)
	out.WinsB = Wins(snap, snap.Players.B)
	out.WinRateA = pct(out.WinsA, out.TotalGames)
	out.WinRateB = pct(out.WinsB, out.TotalGames)
	out.Form = RecentForm(snap, []int{10, 20, 50})
	out.CurrentStreak = CurrentStreak(snap)
	out.Streaks = LongestStreaks(snap)
	return out
}

// PlayerAdvanced is the advanced-metric block for one player.
type PlayerAdvanced struct {
	Player         string        `json:"player"`
	Momentum       MomentumStat  `json:"momentum"`
	TwoStockRate   DominanceStat `json:"two_stock_rate"`
	ThreeStockRate DominanceStat `json:"three_stock_rate"`
	CloseGames     DominanceStat `json:"close_games"`
	AvgStocksWon   float64       `json:"avg_stocks_won"`
	StocksStdDev   float64       `json:"stocks_std_dev"`
}

// AdvancedReport holds both players' momentum and dominance metrics.
type AdvancedReport struct {
	TotalGames int            `json:"total_games"`
	A          PlayerAdvanced `json:"a"`
	B          PlayerAdvanced `json:"b"`
}

// Advanced computes momentum and stock-based dominance for both players.
func Advanced(snap Snapshot) AdvancedReport {
	build := func(player string) PlayerAdvanced {
		return PlayerAdvanced{
			Player:         player,
			Momentum:       Momentum(snap, player),
			TwoStockRate:   DominanceRate(snap, player, 2),
			ThreeStockRate: DominanceRate(snap, player, 3),
			CloseGames:     DominanceRate(snap, player, 1),
			AvgStocksWon:   AvgStocksWhenWinning(snap, player),
			StocksStdDev:   StocksStdDev(snap, player),
		}
	}
	return AdvancedReport{
		TotalGames: snap.Len(),
		A:          build(snap.Players.A),
		B:          build(snap.Players.B),
	}
}
