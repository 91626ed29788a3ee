package stats

import "sort"

// StageStat is a player's record on one stage.
type StageStat struct {
	Stage   string  `json:"stage"`
	Games   int     `json:"games"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"win_rate"`
}

// StagePerformance breaks a player's record down by stage. Legacy records
// with no stage are excluded entirely; an unknown venue says nothing about
// stage preference. Samples below minGames are dropped. Sorted by win rate
// descending, ties by game count descending then stage name.
func StagePerformance(snap Snapshot, player string, minGames int) []StageStat {
	byStage := map[string]*StageStat{}
	for _, m := range snap.Matches {
		if m.Stage == "" {
			continue
		}
		st, ok := byStage[m.Stage]
		if !ok {
			st = &StageStat{Stage: m.Stage}
			byStage[m.Stage] = st
		}
		st.Games++
		if m.Winner == player {
			st.Wins++
		}
	}
	out := make([]StageStat, 0, len(byStage))
	for _, st := range byStage {
		if st.Games < minGames {
			continue
		}
		st.WinRate = pct(st.Wins, st.Games)
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WinRate != out[j].WinRate {
			return out[i].WinRate > out[j].WinRate
		}
		if out[i].Games != out[j].Games {
			return out[i].Games > out[j].Games
		}
		return out[i].Stage < out[j].Stage
	})
	return out
}
