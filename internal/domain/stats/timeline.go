package stats

import (
	"fmt"
	"time"
)

// TimelineWindow is one fixed-size block of consecutive matches.
type TimelineWindow struct {
	Window    int     `json:"window"`
	Games     int     `json:"games"`
	Wins      int     `json:"wins"`
	WinRate   float64 `json:"win_rate"`
	DateRange string  `json:"date_range"`
}

// Timeline slices the most recent maxMatches matches into consecutive
// windows of windowSize games and reports the player's win rate per window,
// oldest window first. A trailing partial window is dropped: 39 matches at
// window size 20 yield one window, 40 yield two. Fewer than windowSize
// matches is ErrInsufficientData.
func Timeline(snap Snapshot, player string, windowSize, maxMatches int) ([]TimelineWindow, error) {
	if windowSize <= 0 {
		return nil, fmt.Errorf("timeline: window size must be positive, got %d", windowSize)
	}
	matches := snap.Last(maxMatches)
	full := len(matches) / windowSize
	if full == 0 {
		return nil, insufficient("timeline", windowSize, len(matches))
	}
	out := make([]TimelineWindow, 0, full)
	for w := 0; w < full; w++ {
		chunk := matches[w*windowSize : (w+1)*windowSize]
		wins := 0
		for _, m := range chunk {
			if m.Winner == player {
				wins++
			}
		}
		out = append(out, TimelineWindow{
			Window:    w + 1,
			Games:     len(chunk),
			Wins:      wins,
			WinRate:   pct(wins, len(chunk)),
			DateRange: dateSpan(chunk[0].Time(snap.Loc), chunk[len(chunk)-1].Time(snap.Loc)),
		})
	}
	return out, nil
}

// dateSpan renders a compact label for a window's first and last match.
// Same-day windows collapse to a single date; spans crossing a year boundary
// carry the year on both ends.
func dateSpan(start, end time.Time) string {
	if start.Year() == end.Year() {
		a := fmt.Sprintf("%d/%d", int(start.Month()), start.Day())
		b := fmt.Sprintf("%d/%d", int(end.Month()), end.Day())
		if a == b {
			return a
		}
		return a + "-" + b
	}
	a := fmt.Sprintf("%d/%d/%02d", int(start.Month()), start.Day(), start.Year()%100)
	b := fmt.Sprintf("%d/%d/%02d", int(end.Month()), end.Day(), end.Year()%100)
	return a + "-" + b
}
