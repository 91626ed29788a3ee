package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	repository "github.com/halvard/smashlog/internal/adapters/repository"
	service "github.com/halvard/smashlog/internal/app"
	"github.com/halvard/smashlog/internal/domain/model"
	"github.com/halvard/smashlog/internal/domain/normalize"
	"github.com/halvard/smashlog/internal/domain/stats"
	"github.com/halvard/smashlog/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func raw(winner string) model.RawMatch {
	return model.RawMatch{
		PlayerACharacter: "Fox",
		PlayerBCharacter: "Marth",
		Winner:           winner,
		Stage:            "Battlefield",
	}
}

// newService wires a started service over an in-memory store with a
// controllable clock. The returned advance function moves time forward.
func newService(t *testing.T) (*service.Service, func(d time.Duration)) {
	t.Helper()
	now := time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC)
	svc := service.New(
		service.WithStore(repository.NewMemStore()),
		service.WithLocation(time.UTC),
		service.WithLogger(logger.Nop()),
		service.WithClock(func() time.Time { return now }),
	)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	t.Cleanup(svc.Stop)
	return svc, func(d time.Duration) { now = now.Add(d) }
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	convey.Convey("Given a started service", t, func() {
		svc, _ := newService(t)

		convey.Convey("When a valid match is submitted", func() {
			rec, err := svc.Submit(ctx, raw("Shayne"))

			convey.Convey("Then the stored record carries id and session", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(rec.ID, convey.ShouldNotBeEmpty)
				convey.So(rec.SessionID, convey.ShouldEqual, "2024-03-10-20")
				n, err := svc.Count(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(n, convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When the winner is not one of the identities", func() {
			_, err := svc.Submit(ctx, raw("Ringo"))

			convey.Convey("Then a validation error comes back and nothing is stored", func() {
				convey.So(normalize.IsValidation(err), convey.ShouldBeTrue)
				n, _ := svc.Count(ctx)
				convey.So(n, convey.ShouldEqual, 0)
			})
		})
	})
}

func TestSessions(t *testing.T) {
	ctx := context.Background()

	convey.Convey("Given matches spread across an inactivity gap", t, func() {
		svc, advance := newService(t)

		_, err := svc.Submit(ctx, raw("Shayne"))
		convey.So(err, convey.ShouldBeNil)
		advance(30 * time.Minute)
		_, err = svc.Submit(ctx, raw("Matt"))
		convey.So(err, convey.ShouldBeNil)
		advance(5 * time.Hour)
		_, err = svc.Submit(ctx, raw("Shayne"))
		convey.So(err, convey.ShouldBeNil)

		convey.Convey("When sessions are listed", func() {
			sessions, err := svc.Sessions(ctx)

			convey.Convey("Then the gap splits the log in two, most recent first", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(sessions, convey.ShouldHaveLength, 2)
				convey.So(sessions[0].ID, convey.ShouldEqual, "2024-03-11-01")
				convey.So(sessions[0].TotalGames(), convey.ShouldEqual, 1)
				convey.So(sessions[1].ID, convey.ShouldEqual, "2024-03-10-20")
				convey.So(sessions[1].TotalGames(), convey.ShouldEqual, 2)
				convey.So(sessions[0].StartTimestamp, convey.ShouldBeGreaterThan, sessions[1].EndTimestamp)
			})
		})

		convey.Convey("When one session is fetched by id", func() {
			sess, err := svc.Session(ctx, "2024-03-10-20")
			convey.So(err, convey.ShouldBeNil)
			convey.So(sess.WinsA, convey.ShouldEqual, 1)
			convey.So(sess.WinsB, convey.ShouldEqual, 1)

			_, err = svc.Session(ctx, "1999-01-01-00")
			convey.So(errors.Is(err, service.ErrSessionNotFound), convey.ShouldBeTrue)
		})

		convey.Convey("When the current session is fetched right away", func() {
			sess, err := svc.CurrentSession(ctx)

			convey.Convey("Then the open session comes back", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(sess.TotalGames(), convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When the gap elapses with no play", func() {
			advance(5 * time.Hour)
			_, err := svc.CurrentSession(ctx)

			convey.Convey("Then there is no current session", func() {
				convey.So(errors.Is(err, service.ErrSessionNotFound), convey.ShouldBeTrue)
			})
		})
	})
}

func TestResegment(t *testing.T) {
	ctx := context.Background()

	convey.Convey("Given a log spanning two sessions", t, func() {
		svc, advance := newService(t)
		_, _ = svc.Submit(ctx, raw("Shayne"))
		advance(6 * time.Hour)
		_, _ = svc.Submit(ctx, raw("Matt"))

		convey.Convey("When the log is resegmented", func() {
			n, err := svc.Resegment(ctx)

			convey.Convey("Then the session count reflects the gap", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(n, convey.ShouldEqual, 2)
			})
		})
	})
}

func TestReadOperations(t *testing.T) {
	ctx := context.Background()

	convey.Convey("Given a service with a few matches", t, func() {
		svc, advance := newService(t)
		for _, w := range []string{"Shayne", "Shayne", "Matt"} {
			_, err := svc.Submit(ctx, raw(w))
			convey.So(err, convey.ShouldBeNil)
			advance(10 * time.Minute)
		}

		convey.Convey("When the overall summary is fetched", func() {
			out, err := svc.Overall(ctx)
			convey.So(err, convey.ShouldBeNil)
			convey.So(out.TotalGames, convey.ShouldEqual, 3)
			convey.So(out.WinsA, convey.ShouldEqual, 2)
		})

		convey.Convey("When player stats are fetched for a stranger", func() {
			_, err := svc.PlayerStats(ctx, "Ringo")
			convey.So(errors.Is(err, service.ErrUnknownPlayer), convey.ShouldBeTrue)
		})

		convey.Convey("When player stats are fetched for an identity", func() {
			out, err := svc.PlayerStats(ctx, "Shayne")
			convey.So(err, convey.ShouldBeNil)
			convey.So(out.Wins, convey.ShouldEqual, 2)
			convey.So(out.Losses, convey.ShouldEqual, 1)
		})

		convey.Convey("When the timeline lacks a full window", func() {
			_, err := svc.PlayerTimeline(ctx, "Shayne")
			convey.So(errors.Is(err, stats.ErrInsufficientData), convey.ShouldBeTrue)
		})

		convey.Convey("When the heatmap is fetched", func() {
			cells, err := svc.PlayerHeatmap(ctx, "Matt", "")
			convey.So(err, convey.ShouldBeNil)
			convey.So(cells, convey.ShouldHaveLength, 7*24)
		})

		convey.Convey("When character detail is fetched", func() {
			detail, err := svc.CharacterStats(ctx, "Fox")
			convey.So(err, convey.ShouldBeNil)
			convey.So(detail.Games, convey.ShouldEqual, 3)

			_, err = svc.CharacterStats(ctx, "Ganondorf")
			convey.So(errors.Is(err, service.ErrCharacterNotFound), convey.ShouldBeTrue)
		})

		convey.Convey("When the pick list is fetched", func() {
			usage, err := svc.Characters(ctx)
			convey.So(err, convey.ShouldBeNil)
			convey.So(usage.CountsA["Fox"], convey.ShouldEqual, 3)
			convey.So(usage.CountsB["Marth"], convey.ShouldEqual, 3)
		})

		convey.Convey("When recent matches are listed", func() {
			matches, err := svc.Matches(ctx, 2)
			convey.So(err, convey.ShouldBeNil)
			convey.So(matches, convey.ShouldHaveLength, 2)
			convey.So(matches[0].Winner, convey.ShouldEqual, "Matt")
			convey.So(matches[0].Timestamp, convey.ShouldBeGreaterThan, matches[1].Timestamp)
		})
	})
}
