package stats

// HeatmapCell is one day-of-week / hour-of-day bucket. Day 0 is Sunday,
// hours are 0-23 in the snapshot's reference timezone.
type HeatmapCell struct {
	Day     int     `json:"day"`
	Hour    int     `json:"hour"`
	Games   int     `json:"games"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"win_rate"`
}

// Heatmap buckets the player's matches into a 7x24 grid of calendar-local
// day and hour. If character is non-empty only matches where the player
// used that character count; the grid still contains all 168 cells so a
// filter that matches nothing yields zero counts rather than a short array.
// An empty snapshot is ErrInsufficientData.
func Heatmap(snap Snapshot, player, character string) ([]HeatmapCell, error) {
	if snap.Empty() {
		return nil, insufficient("heatmap", 1, 0)
	}
	var games, wins [7][24]int
	for _, m := range snap.Matches {
		if character != "" && snap.Players.CharacterOf(m, player) != character {
			continue
		}
		t := m.Time(snap.Loc)
		day := int(t.Weekday())
		hour := t.Hour()
		games[day][hour]++
		if m.Winner == player {
			wins[day][hour]++
		}
	}
	out := make([]HeatmapCell, 0, 7*24)
	for day := 0; day < 7; day++ {
		for hour := 0; hour < 24; hour++ {
			out = append(out, HeatmapCell{
				Day:     day,
				Hour:    hour,
				Games:   games[day][hour],
				Wins:    wins[day][hour],
				WinRate: pct(wins[day][hour], games[day][hour]),
			})
		}
	}
	return out, nil
}
