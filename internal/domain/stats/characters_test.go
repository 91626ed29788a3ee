package stats_test

import (
	"testing"

	"github.com/halvard/smashlog/internal/domain/stats"
	"github.com/smartystreets/goconvey/convey"
)

func TestCharacterRoster(t *testing.T) {
	convey.Convey("Given matches including a mirror", t, func() {
		snap := makeSnap(
			match(0, "Shayne", "Fox", "Marth"),
			match(1, "Matt", "Fox", "Fox"), // mirror
			match(2, "Shayne", "Falco", "Marth"),
		)

		convey.Convey("When the roster overview is computed", func() {
			out := stats.CharacterRoster(snap)

			convey.Convey("Then each match slot counts once", func() {
				totalSlots := 0
				for _, co := range out {
					totalSlots += co.Games
				}
				convey.So(totalSlots, convey.ShouldEqual, snap.Len()*2)
			})

			convey.Convey("Then the mirror contributes two games for Fox", func() {
				convey.So(out[0].Character, convey.ShouldEqual, "Fox")
				convey.So(out[0].Games, convey.ShouldEqual, 3)
				convey.So(out[0].GamesA, convey.ShouldEqual, 2)
				convey.So(out[0].GamesB, convey.ShouldEqual, 1)
				// Shayne's Fox win plus Matt's mirror win.
				convey.So(out[0].Wins, convey.ShouldEqual, 2)
			})
		})
	})
}

func TestForCharacter(t *testing.T) {
	convey.Convey("Given a character played by both sides", t, func() {
		snap := makeSnap(
			withStage(match(0, "Shayne", "Fox", "Marth"), "Battlefield"),
			withStage(match(1, "Matt", "Fox", "Marth"), "Battlefield"),
			withStage(match(2, "Matt", "Falco", "Fox"), "Dream Land"),
			withStage(match(3, "Shayne", "Fox", "Kirby"), "Battlefield"),
		)

		convey.Convey("When the detail with floors of 2 is computed", func() {
			out := stats.ForCharacter(snap, "Fox", 2, 2)

			convey.Convey("Then both sides are tallied", func() {
				convey.So(out.Found, convey.ShouldBeTrue)
				convey.So(out.Games, convey.ShouldEqual, 4)
				// Shayne's two Fox wins plus Matt's game 2 Fox win.
				convey.So(out.Wins, convey.ShouldEqual, 3)
				convey.So(out.BySide, convey.ShouldHaveLength, 2)
				convey.So(out.BySide[0].Player, convey.ShouldEqual, "Shayne")
				convey.So(out.BySide[0].Games, convey.ShouldEqual, 3)
				convey.So(out.BySide[1].Player, convey.ShouldEqual, "Matt")
				convey.So(out.BySide[1].Games, convey.ShouldEqual, 1)
			})

			convey.Convey("Then matchup and stage floors apply", func() {
				convey.So(out.Matchups, convey.ShouldHaveLength, 1)
				convey.So(out.Matchups[0].OpponentCharacter, convey.ShouldEqual, "Marth")
				convey.So(out.Matchups[0].Games, convey.ShouldEqual, 2)
				convey.So(out.Stages, convey.ShouldHaveLength, 1)
				convey.So(out.Stages[0].Stage, convey.ShouldEqual, "Battlefield")
				convey.So(out.Stages[0].Games, convey.ShouldEqual, 3)
			})
		})

		convey.Convey("When the character never appears", func() {
			out := stats.ForCharacter(snap, "Ganondorf", 1, 1)

			convey.Convey("Then found is false with the zero shape", func() {
				convey.So(out.Found, convey.ShouldBeFalse)
				convey.So(out.Games, convey.ShouldEqual, 0)
			})
		})
	})
}

func TestForIdentity(t *testing.T) {
	convey.Convey("Given a populated log", t, func() {
		snap := makeSnap(
			withStocks(match(0, "Shayne", "Fox", "Marth"), 2),
			match(1, "Matt", "Fox", "Marth"),
			withStocks(match(2, "Shayne", "Fox", "Kirby"), 3),
			match(3, "Shayne", "Falco", "Kirby"),
		)

		convey.Convey("When the per-player report is built", func() {
			out := stats.ForIdentity(snap, "Shayne", stats.IdentityMinimums{StageGames: 1, MatchupGames: 2})

			convey.Convey("Then the aggregates line up", func() {
				convey.So(out.TotalGames, convey.ShouldEqual, 4)
				convey.So(out.Wins, convey.ShouldEqual, 3)
				convey.So(out.Losses, convey.ShouldEqual, 1)
				convey.So(out.WinRate, convey.ShouldAlmostEqual, 75, 0.01)
				convey.So(out.RecentGames, convey.ShouldEqual, 4)
				convey.So(out.Characters[0].Character, convey.ShouldEqual, "Fox")
				convey.So(out.Characters[0].Games, convey.ShouldEqual, 3)
				convey.So(out.Matchups, convey.ShouldHaveLength, 2)
				convey.So(out.AvgStocksWon, convey.ShouldAlmostEqual, 2.5, 0.01)
				convey.So(out.LongestWin.Length, convey.ShouldEqual, 2)
				convey.So(out.LongestLoss.Length, convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When the log is empty", func() {
			out := stats.ForIdentity(makeSnap(), "Shayne", stats.IdentityMinimums{})
			convey.So(out.TotalGames, convey.ShouldEqual, 0)
			convey.So(out.Characters, convey.ShouldBeEmpty)
		})
	})
}
