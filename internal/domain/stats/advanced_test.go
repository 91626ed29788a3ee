package stats_test

import (
	"testing"

	"github.com/halvard/smashlog/internal/domain/stats"
	"github.com/smartystreets/goconvey/convey"
)

func TestMomentum(t *testing.T) {
	convey.Convey("Given a log where wins cluster", t, func() {
		snap := winnersSnap("Shayne", "Shayne", "Shayne", "Matt", "Shayne", "Matt", "Matt")

		convey.Convey("When momentum is computed for Shayne", func() {
			m := stats.Momentum(snap, "Shayne")

			convey.Convey("Then only pairs of consecutive matches count", func() {
				// Predecessor outcomes: W W W L W L — four after-win slots.
				convey.So(m.AfterWinGames, convey.ShouldEqual, 4)
				convey.So(m.AfterLossGames, convey.ShouldEqual, 2)
				convey.So(m.AfterWinRate, convey.ShouldAlmostEqual, 50, 0.01)
				convey.So(m.AfterLossRate, convey.ShouldAlmostEqual, 50, 0.01)
			})
		})

		convey.Convey("When fewer than two matches exist", func() {
			m := stats.Momentum(winnersSnap("Shayne"), "Shayne")

			convey.Convey("Then both buckets are empty", func() {
				convey.So(m.AfterWinGames, convey.ShouldEqual, 0)
				convey.So(m.AfterLossGames, convey.ShouldEqual, 0)
			})
		})
	})
}

func TestDominance(t *testing.T) {
	convey.Convey("Given wins with known and unknown stock counts", t, func() {
		snap := makeSnap(
			withStocks(match(0, "Shayne", "Fox", "Marth"), 2),
			withStocks(match(1, "Shayne", "Fox", "Marth"), 2),
			withStocks(match(2, "Shayne", "Fox", "Marth"), 3),
			match(3, "Shayne", "Fox", "Marth"), // unknown stocks
			withStocks(match(4, "Matt", "Fox", "Marth"), 1),
		)

		convey.Convey("When the two-stock rate is computed", func() {
			d := stats.DominanceRate(snap, "Shayne", 2)

			convey.Convey("Then the unknown-stock win is excluded from both sides", func() {
				convey.So(d.KnownWins, convey.ShouldEqual, 3)
				convey.So(d.Wins, convey.ShouldEqual, 2)
				convey.So(d.Rate, convey.ShouldAlmostEqual, 66.7, 0.01)
				convey.So(d.OfAllKnown, convey.ShouldAlmostEqual, 50, 0.01)
			})
		})

		convey.Convey("When average winning stocks are computed", func() {
			avg := stats.AvgStocksWhenWinning(snap, "Shayne")

			convey.Convey("Then only stock-known wins contribute", func() {
				convey.So(avg, convey.ShouldAlmostEqual, 2.3, 0.01)
			})
		})

		convey.Convey("When no stock-known win exists", func() {
			convey.So(stats.AvgStocksWhenWinning(makeSnap(), "Shayne"), convey.ShouldEqual, 0)
		})
	})
}

func TestAdvancedReport(t *testing.T) {
	convey.Convey("Given a populated log", t, func() {
		snap := makeSnap(
			withStocks(match(0, "Shayne", "Fox", "Marth"), 2),
			withStocks(match(1, "Matt", "Fox", "Marth"), 1),
			withStocks(match(2, "Shayne", "Fox", "Marth"), 3),
		)

		convey.Convey("When the advanced report is built", func() {
			report := stats.Advanced(snap)

			convey.Convey("Then both players' blocks are populated", func() {
				convey.So(report.TotalGames, convey.ShouldEqual, 3)
				convey.So(report.A.Player, convey.ShouldEqual, "Shayne")
				convey.So(report.B.Player, convey.ShouldEqual, "Matt")
				convey.So(report.A.TwoStockRate.KnownWins, convey.ShouldEqual, 2)
				convey.So(report.B.CloseGames.Wins, convey.ShouldEqual, 1)
				convey.So(report.A.AvgStocksWon, convey.ShouldAlmostEqual, 2.5, 0.01)
			})
		})
	})
}

func TestMonthlyBreakdown(t *testing.T) {
	convey.Convey("Given matches across two months", t, func() {
		snap := makeSnap(
			match(0, "Shayne", "Fox", "Marth"),
			match(1, "Matt", "Fox", "Marth"),
			match(22*24*60, "Shayne", "Fox", "Marth"), // early April
		)

		convey.Convey("When the monthly breakdown is computed", func() {
			out := stats.MonthlyBreakdown(snap, 0)

			convey.Convey("Then months come back in chronological order", func() {
				convey.So(out, convey.ShouldHaveLength, 2)
				convey.So(out[0].Month, convey.ShouldEqual, "2024-03")
				convey.So(out[0].WinsA, convey.ShouldEqual, 1)
				convey.So(out[0].WinsB, convey.ShouldEqual, 1)
				convey.So(out[1].Month, convey.ShouldEqual, "2024-04")
				convey.So(out[1].Games, convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When a limit applies", func() {
			out := stats.MonthlyBreakdown(snap, 1)

			convey.Convey("Then only the most recent months survive the cut", func() {
				convey.So(out, convey.ShouldHaveLength, 1)
				convey.So(out[0].Month, convey.ShouldEqual, "2024-04")
			})
		})
	})
}

func TestRecentForm(t *testing.T) {
	convey.Convey("Given a log shorter than the largest window", t, func() {
		snap := winnersSnap("Shayne", "Shayne", "Matt", "Shayne")

		convey.Convey("When trailing form is computed", func() {
			out := stats.RecentForm(snap, []int{2, 10})

			convey.Convey("Then oversized windows cover what exists", func() {
				convey.So(out, convey.ShouldHaveLength, 2)
				convey.So(out[0].Games, convey.ShouldEqual, 2)
				convey.So(out[0].WinsA, convey.ShouldEqual, 1)
				convey.So(out[1].Games, convey.ShouldEqual, 4)
				convey.So(out[1].RateA, convey.ShouldAlmostEqual, 75, 0.01)
			})
		})
	})
}

func TestHeadToHead(t *testing.T) {
	convey.Convey("Given a rivalry log", t, func() {
		snap := winnersSnap("Shayne", "Matt", "Shayne", "Shayne")

		convey.Convey("When the head-to-head report is built", func() {
			out := stats.CompareHeadToHead(snap)

			convey.Convey("Then record, form and streaks agree with the log", func() {
				convey.So(out.TotalGames, convey.ShouldEqual, 4)
				convey.So(out.WinsA, convey.ShouldEqual, 3)
				convey.So(out.Form, convey.ShouldHaveLength, 3)
				convey.So(out.Form[0].LastN, convey.ShouldEqual, 10)
				convey.So(out.CurrentStreak.Player, convey.ShouldEqual, "Shayne")
				convey.So(out.CurrentStreak.Length, convey.ShouldEqual, 2)
				convey.So(out.Streaks.LongestWin["Shayne"].Length, convey.ShouldEqual, 2)
			})
		})

		convey.Convey("When the log is empty", func() {
			out := stats.CompareHeadToHead(makeSnap())
			convey.So(out.TotalGames, convey.ShouldEqual, 0)
			convey.So(out.CurrentStreak, convey.ShouldBeNil)
		})
	})
}
