package stats

import "math"

// DominanceStat measures how often a player's wins ended with a given
// number of stocks remaining. Matches with unknown stocks are excluded
// from both numerator and denominator; absence of data is not a two-stock
// victory.
type DominanceStat struct {
	Stocks     int     `json:"stocks"`
	Wins       int     `json:"wins"`
	KnownWins  int     `json:"known_wins"`
	Rate       float64 `json:"rate"`
	OfAllKnown float64 `json:"of_all_known"`
}

// DominanceRate reports the share of a player's stock-known wins that ended
// with exactly stocks remaining, plus that share over all stock-known games.
func DominanceRate(snap Snapshot, player string, stocks int) DominanceStat {
	stat := DominanceStat{Stocks: stocks}
	known := 0
	for _, m := range snap.Matches {
		if m.StocksRemaining == nil {
			continue
		}
		known++
		if m.Winner != player {
			continue
		}
		stat.KnownWins++
		if *m.StocksRemaining == stocks {
			stat.Wins++
		}
	}
	stat.Rate = pct(stat.Wins, stat.KnownWins)
	stat.OfAllKnown = pct(stat.Wins, known)
	return stat
}

// AvgStocksWhenWinning averages the stocks remaining across a player's
// wins with known stock counts, rounded to one decimal. Zero when no such
// win exists.
func AvgStocksWhenWinning(snap Snapshot, player string) float64 {
	sum, n := 0, 0
	for _, m := range snap.Matches {
		if m.Winner != player || m.StocksRemaining == nil {
			continue
		}
		sum += *m.StocksRemaining
		n++
	}
	if n == 0 {
		return 0
	}
	return round1(float64(sum) / float64(n))
}

// StocksStdDev is the population standard deviation of stocks remaining
// across a player's stock-known wins; a lower value means more consistent
// margins of victory. Zero when fewer than two such wins exist.
func StocksStdDev(snap Snapshot, player string) float64 {
	var vals []float64
	for _, m := range snap.Matches {
		if m.Winner != player || m.StocksRemaining == nil {
			continue
		}
		vals = append(vals, float64(*m.StocksRemaining))
	}
	if len(vals) < 2 {
		return 0
	}
	mean := 0.0
	for _, v := range vals {
		mean += v
	}
	mean /= float64(len(vals))
	variance := 0.0
	for _, v := range vals {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(vals))
	return round1(math.Sqrt(variance))
}
