package roster_test

import (
	"testing"

	"github.com/halvard/smashlog/internal/domain/model"
	"github.com/halvard/smashlog/internal/domain/roster"
	"github.com/smartystreets/goconvey/convey"
)

func TestRoster(t *testing.T) {
	convey.Convey("Given the default roster", t, func() {
		r := roster.Default()

		convey.Convey("Then it starts with the original eight in order", func() {
			names := r.Names()
			convey.So(names[0], convey.ShouldEqual, "Mario")
			convey.So(names[7], convey.ShouldEqual, "Fox")
			convey.So(r.Contains("Sora"), convey.ShouldBeTrue)
			convey.So(r.Contains("Master Hand"), convey.ShouldBeFalse)
		})

		convey.Convey("Then Names returns a copy", func() {
			names := r.Names()
			names[0] = "mutated"
			convey.So(r.Names()[0], convey.ShouldEqual, "Mario")
		})
	})

	convey.Convey("Given duplicate names", t, func() {
		r := roster.New([]string{"Fox", "Marth", "Fox"})

		convey.Convey("Then first-seen order wins", func() {
			convey.So(r.Len(), convey.ShouldEqual, 2)
			convey.So(r.Names(), convey.ShouldResemble, []string{"Fox", "Marth"})
		})
	})
}

func TestUsage(t *testing.T) {
	convey.Convey("Given a log with an off-roster character", t, func() {
		r := roster.New([]string{"Fox", "Marth"})
		matches := []model.MatchRecord{
			{PlayerACharacter: "Fox", PlayerBCharacter: "Marth"},
			{PlayerACharacter: "Fox", PlayerBCharacter: "Giga Bowser"},
			{PlayerACharacter: "Giga Bowser", PlayerBCharacter: "Marth"},
		}

		convey.Convey("When usage is computed", func() {
			u := r.Usage(matches)

			convey.Convey("Then counts are per side with roster order kept", func() {
				convey.So(u.CountsA["Fox"], convey.ShouldEqual, 2)
				convey.So(u.CountsB["Marth"], convey.ShouldEqual, 2)
				convey.So(u.CountsA["Marth"], convey.ShouldEqual, 0)
			})

			convey.Convey("Then off-roster characters appear once at the end", func() {
				convey.So(u.All, convey.ShouldResemble, []string{"Fox", "Marth", "Giga Bowser"})
				convey.So(u.CountsB["Giga Bowser"], convey.ShouldEqual, 1)
				convey.So(u.CountsA["Giga Bowser"], convey.ShouldEqual, 1)
			})
		})
	})
}
