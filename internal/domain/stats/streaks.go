package stats

// StreakResult describes the active run ending at the most recent match.
type StreakResult struct {
	Player string `json:"player"`
	Length int    `json:"length"`
}

// StreakSpan describes a completed or ongoing run of consecutive wins or
// losses with the timestamp it started at.
type StreakSpan struct {
	Length    int    `json:"length"`
	StartedAt string `json:"started_at,omitempty"`
}

// StreaksReport holds each player's longest win and loss runs.
type StreaksReport struct {
	LongestWin  map[string]StreakSpan `json:"longest_win"`
	LongestLoss map[string]StreakSpan `json:"longest_loss"`
}

// CurrentStreak walks backwards from the latest match counting consecutive
// wins by the same player. Returns nil for an empty snapshot; a streak of
// length 1 is still a streak.
func CurrentStreak(snap Snapshot) *StreakResult {
	if snap.Empty() {
		return nil
	}
	last := snap.Matches[snap.Len()-1]
	streak := &StreakResult{Player: last.Winner}
	for i := snap.Len() - 1; i >= 0; i-- {
		if snap.Matches[i].Winner != streak.Player {
			break
		}
		streak.Length++
	}
	return streak
}

// LongestStreaks computes each player's longest win run and longest loss
// run across the whole snapshot. The run still open at the end of the log
// is counted the same as any completed run.
func LongestStreaks(snap Snapshot) StreaksReport {
	report := StreaksReport{
		LongestWin:  map[string]StreakSpan{snap.Players.A: {}, snap.Players.B: {}},
		LongestLoss: map[string]StreakSpan{snap.Players.A: {}, snap.Players.B: {}},
	}
	if snap.Empty() {
		return report
	}

	var runWinner string
	var runLen int
	var runStart string

	flush := func() {
		if runLen == 0 {
			return
		}
		loser := snap.Players.Opponent(runWinner)
		if runLen > report.LongestWin[runWinner].Length {
			report.LongestWin[runWinner] = StreakSpan{Length: runLen, StartedAt: runStart}
		}
		if loser != "" && runLen > report.LongestLoss[loser].Length {
			report.LongestLoss[loser] = StreakSpan{Length: runLen, StartedAt: runStart}
		}
	}

	for _, m := range snap.Matches {
		if m.Winner == runWinner {
			runLen++
			continue
		}
		flush()
		runWinner = m.Winner
		runLen = 1
		runStart = m.OccurredAt
	}
	flush()
	return report
}
