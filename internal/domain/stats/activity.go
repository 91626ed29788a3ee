package stats

import "sort"

// MonthBreakdown is one calendar month's totals in the reference timezone.
type MonthBreakdown struct {
	Month string `json:"month"`
	Games int    `json:"games"`
	WinsA int    `json:"wins_a"`
	WinsB int    `json:"wins_b"`
}

// MonthlyBreakdown buckets matches by calendar month ("2024-03") and
// reports them in chronological order. limit > 0 keeps only the most
// recent months, still emitted chronologically.
func MonthlyBreakdown(snap Snapshot, limit int) []MonthBreakdown {
	byMonth := map[string]*MonthBreakdown{}
	for _, m := range snap.Matches {
		month := m.Time(snap.Loc).Format("2006-01")
		mb, ok := byMonth[month]
		if !ok {
			mb = &MonthBreakdown{Month: month}
			byMonth[month] = mb
		}
		mb.Games++
		switch m.Winner {
		case snap.Players.A:
			mb.WinsA++
		case snap.Players.B:
			mb.WinsB++
		}
	}
	out := make([]MonthBreakdown, 0, len(byMonth))
	for _, mb := range byMonth {
		out = append(out, *mb)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out
}

// FormWindow is both players' record over the last N matches.
type FormWindow struct {
	LastN int     `json:"last_n"`
	Games int     `json:"games"`
	WinsA int     `json:"wins_a"`
	WinsB int     `json:"wins_b"`
	RateA float64 `json:"rate_a"`
	RateB float64 `json:"rate_b"`
}

// RecentForm reports head-to-head form over each requested trailing window.
// A window larger than the log covers whatever exists.
func RecentForm(snap Snapshot, windows []int) []FormWindow {
	out := make([]FormWindow, 0, len(windows))
	for _, n := range windows {
		recent := snap.Last(n)
		fw := FormWindow{LastN: n, Games: len(recent)}
		for _, m := range recent {
			switch m.Winner {
			case snap.Players.A:
				fw.WinsA++
			case snap.Players.B:
				fw.WinsB++
			}
		}
		fw.RateA = pct(fw.WinsA, fw.Games)
		fw.RateB = pct(fw.WinsB, fw.Games)
		out = append(out, fw)
	}
	return out
}
