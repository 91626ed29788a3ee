package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	repository "github.com/halvard/smashlog/internal/adapters/repository"
	"github.com/halvard/smashlog/internal/domain/model"
	"github.com/halvard/smashlog/internal/domain/session"
)

// ResegmentCommand holds the configuration for the resegment command.
type ResegmentCommand struct {
	dbPath   string
	playerA  string
	playerB  string
	timezone string
	gapHours float64
}

// NewResegmentCommand creates and configures the resegment command.
func NewResegmentCommand() *cobra.Command {
	rc := &ResegmentCommand{}

	cobraCmd := &cobra.Command{
		Use:   "resegment",
		Short: "Recompute session assignments for the whole log",
		Long: `Resegment re-derives every session from scratch and rewrites the cached
session ids. Useful after an import or after changing the inactivity gap.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return rc.run(context.Background())
		},
	}

	cobraCmd.Flags().StringVar(&rc.dbPath, "db", "smashlog.db", "path to the sqlite database")
	cobraCmd.Flags().StringVar(&rc.playerA, "player-a", "Shayne", "first identity name")
	cobraCmd.Flags().StringVar(&rc.playerB, "player-b", "Matt", "second identity name")
	cobraCmd.Flags().StringVar(&rc.timezone, "tz", "America/New_York", "reference timezone")
	cobraCmd.Flags().Float64Var(&rc.gapHours, "gap-hours", 4.0, "session inactivity gap in hours")

	return cobraCmd
}

func (rc *ResegmentCommand) run(ctx context.Context) error {
	loc, err := time.LoadLocation(rc.timezone)
	if err != nil {
		return fmt.Errorf("loading timezone %q: %w", rc.timezone, err)
	}

	store, err := repository.OpenSQLite(ctx, rc.dbPath)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()

	records, err := store.ReadAll(ctx)
	if err != nil {
		return fmt.Errorf("reading match log: %w", err)
	}

	players := model.Players{A: rc.playerA, B: rc.playerB}
	seg := session.New(loc, session.WithGapHours(rc.gapHours))
	sessions := seg.Segment(records, players)

	ids := make(map[string]string, len(records))
	for _, sess := range sessions {
		for _, m := range sess.Matches {
			ids[m.ID] = sess.ID
		}
	}
	if err := store.CacheSessionIDs(ctx, ids); err != nil {
		return fmt.Errorf("caching session ids: %w", err)
	}

	fmt.Fprintf(os.Stdout, "resegmented %d matches into %d sessions\n", len(records), len(sessions))
	return nil
}
