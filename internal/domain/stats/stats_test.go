package stats_test

import (
	"testing"
	"time"

	"github.com/halvard/smashlog/internal/domain/model"
	"github.com/halvard/smashlog/internal/domain/stats"
	"github.com/halvard/smashlog/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

var testPlayers = model.Players{A: "Shayne", B: "Matt"}

// base is 2024-03-10 12:00:00 UTC.
const base = float64(1710072000)

func match(offsetMin int, winner, charA, charB string) model.MatchRecord {
	ts := base + float64(offsetMin)*60
	return model.MatchRecord{
		ID:               model.SessionIDAt(ts, time.UTC) + "-" + winner,
		Timestamp:        ts,
		OccurredAt:       time.Unix(int64(ts), 0).UTC().Format(model.OccurredAtLayout),
		PlayerACharacter: charA,
		PlayerBCharacter: charB,
		Winner:           winner,
		Stage:            "Battlefield",
	}
}

func withStocks(m model.MatchRecord, stocks int) model.MatchRecord {
	m.StocksRemaining = &stocks
	return m
}

func withStage(m model.MatchRecord, stage string) model.MatchRecord {
	m.Stage = stage
	return m
}

func makeSnap(matches ...model.MatchRecord) stats.Snapshot {
	return stats.NewSnapshot(matches, testPlayers, time.UTC, logger.Nop())
}

// winnersSnap builds one match per listed winner, a minute apart.
func winnersSnap(winners ...string) stats.Snapshot {
	matches := make([]model.MatchRecord, 0, len(winners))
	for i, w := range winners {
		matches = append(matches, match(i, w, "Fox", "Marth"))
	}
	return makeSnap(matches...)
}

func TestNewSnapshot(t *testing.T) {
	convey.Convey("Given records with mixed quality", t, func() {
		good := match(0, "Shayne", "Fox", "Marth")
		later := match(10, "Matt", "Fox", "Marth")
		corrupt := match(5, "Shayne", "Fox", "Marth")
		corrupt.Timestamp = 0

		convey.Convey("When a snapshot is built from out-of-order input", func() {
			snap := stats.NewSnapshot([]model.MatchRecord{later, corrupt, good}, testPlayers, time.UTC, logger.Nop())

			convey.Convey("Then corrupt records are skipped and the rest ordered by time", func() {
				convey.So(snap.Len(), convey.ShouldEqual, 2)
				convey.So(snap.Skipped, convey.ShouldEqual, 1)
				convey.So(snap.Matches[0].Timestamp, convey.ShouldEqual, good.Timestamp)
				convey.So(snap.Matches[1].Timestamp, convey.ShouldEqual, later.Timestamp)
			})
		})

		convey.Convey("When the input is empty", func() {
			snap := stats.NewSnapshot(nil, testPlayers, time.UTC, logger.Nop())

			convey.Convey("Then the snapshot is empty, not an error", func() {
				convey.So(snap.Empty(), convey.ShouldBeTrue)
				convey.So(snap.Len(), convey.ShouldEqual, 0)
			})
		})
	})
}

func TestWinRate(t *testing.T) {
	convey.Convey("Given a log with wins for both players", t, func() {
		snap := winnersSnap("Shayne", "Shayne", "Matt", "Shayne", "Matt", "Matt", "Shayne")

		convey.Convey("When win rates are computed", func() {
			rateA := stats.WinRate(snap, "Shayne")
			rateB := stats.WinRate(snap, "Matt")

			convey.Convey("Then they complement each other", func() {
				convey.So(rateA, convey.ShouldAlmostEqual, 57.1, 0.01)
				convey.So(rateB, convey.ShouldAlmostEqual, 42.9, 0.01)
				convey.So(rateA+rateB, convey.ShouldAlmostEqual, 100, 0.11)
			})
		})

		convey.Convey("When the snapshot is empty", func() {
			convey.So(stats.WinRate(makeSnap(), "Shayne"), convey.ShouldEqual, 0)
		})
	})
}

func TestOverall(t *testing.T) {
	convey.Convey("Given a populated log", t, func() {
		snap := makeSnap(
			withStocks(match(0, "Shayne", "Fox", "Marth"), 2),
			withStocks(match(10, "Shayne", "Fox", "Kirby"), 3),
			match(20, "Matt", "Falco", "Marth"),
		)
		now := time.Unix(int64(base), 0).Add(25 * time.Minute)

		convey.Convey("When the overall summary is computed", func() {
			out := stats.Overall(snap, now)

			convey.Convey("Then totals, characters and streak line up", func() {
				convey.So(out.TotalGames, convey.ShouldEqual, 3)
				convey.So(out.WinsA, convey.ShouldEqual, 2)
				convey.So(out.WinsB, convey.ShouldEqual, 1)
				convey.So(out.GamesThisWeek, convey.ShouldEqual, 3)
				convey.So(out.TopCharsA[0].Character, convey.ShouldEqual, "Fox")
				convey.So(out.TopCharsA[0].Games, convey.ShouldEqual, 2)
				convey.So(out.TopCharsB[0].Character, convey.ShouldEqual, "Marth")
				convey.So(out.AvgStocksA, convey.ShouldAlmostEqual, 2.5, 0.01)
				convey.So(out.CurrentStreak, convey.ShouldNotBeNil)
				convey.So(out.CurrentStreak.Player, convey.ShouldEqual, "Matt")
				convey.So(out.CurrentStreak.Length, convey.ShouldEqual, 1)
				convey.So(out.LastMatchAt, convey.ShouldEqual, snap.Matches[2].OccurredAt)
			})
		})

		convey.Convey("When the log is empty", func() {
			out := stats.Overall(makeSnap(), now)

			convey.Convey("Then the zero shape comes back rather than an error", func() {
				convey.So(out.TotalGames, convey.ShouldEqual, 0)
				convey.So(out.CurrentStreak, convey.ShouldBeNil)
			})
		})
	})
}

func TestStreaks(t *testing.T) {
	convey.Convey("Given a log with alternating runs", t, func() {
		snap := winnersSnap("Shayne", "Shayne", "Shayne", "Matt", "Matt", "Shayne", "Matt", "Matt", "Matt", "Matt")

		convey.Convey("When the current streak is computed", func() {
			cur := stats.CurrentStreak(snap)

			convey.Convey("Then it reflects the run ending at the latest match", func() {
				convey.So(cur.Player, convey.ShouldEqual, "Matt")
				convey.So(cur.Length, convey.ShouldEqual, 4)
			})
		})

		convey.Convey("When longest streaks are computed", func() {
			report := stats.LongestStreaks(snap)

			convey.Convey("Then the run still open at the end counts", func() {
				convey.So(report.LongestWin["Matt"].Length, convey.ShouldEqual, 4)
				convey.So(report.LongestWin["Shayne"].Length, convey.ShouldEqual, 3)
				convey.So(report.LongestLoss["Shayne"].Length, convey.ShouldEqual, 4)
				convey.So(report.LongestLoss["Matt"].Length, convey.ShouldEqual, 3)
			})
		})

		convey.Convey("When the log is empty", func() {
			convey.So(stats.CurrentStreak(makeSnap()), convey.ShouldBeNil)
		})

		convey.Convey("When a single match exists", func() {
			cur := stats.CurrentStreak(winnersSnap("Shayne"))

			convey.Convey("Then a streak of one is still a streak", func() {
				convey.So(cur.Length, convey.ShouldEqual, 1)
				convey.So(cur.Player, convey.ShouldEqual, "Shayne")
			})
		})
	})
}
