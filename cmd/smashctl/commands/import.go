// Package commands implements the smashctl subcommands.
package commands

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	repository "github.com/halvard/smashlog/internal/adapters/repository"
	"github.com/halvard/smashlog/internal/domain/model"
	"github.com/halvard/smashlog/internal/domain/session"
)

// Sentinel errors for the import command.
var (
	ErrMissingColumns = errors.New("csv is missing required columns")
	ErrEmptyCSV       = errors.New("csv has no data rows")
)

// ImportCommand holds the configuration for the import command.
type ImportCommand struct {
	dbPath   string
	playerA  string
	playerB  string
	timezone string
	gapHours float64
	dryRun   bool
}

// NewImportCommand creates and configures the import command.
func NewImportCommand() *cobra.Command {
	ic := &ImportCommand{}

	cobraCmd := &cobra.Command{
		Use:   "import <csv-file>",
		Short: "Import legacy CSV match history into the store",
		Long: `Import reads a legacy CSV export and appends its rows to the store in
timestamp order, then recomputes session assignments for the whole log.

Expected columns (by header name): timestamp, winner, and a character
column per player; stocks_remaining, stage and datetime are optional.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return ic.run(context.Background(), args[0])
		},
	}

	cobraCmd.Flags().StringVar(&ic.dbPath, "db", "smashlog.db", "path to the sqlite database")
	cobraCmd.Flags().StringVar(&ic.playerA, "player-a", "Shayne", "first identity name")
	cobraCmd.Flags().StringVar(&ic.playerB, "player-b", "Matt", "second identity name")
	cobraCmd.Flags().StringVar(&ic.timezone, "tz", "America/New_York", "reference timezone")
	cobraCmd.Flags().Float64Var(&ic.gapHours, "gap-hours", 4.0, "session inactivity gap in hours")
	cobraCmd.Flags().BoolVar(&ic.dryRun, "dry-run", false, "parse and report without writing")

	return cobraCmd
}

func (ic *ImportCommand) run(ctx context.Context, csvPath string) error {
	loc, err := time.LoadLocation(ic.timezone)
	if err != nil {
		return fmt.Errorf("loading timezone %q: %w", ic.timezone, err)
	}

	records, skipped, err := ic.parseCSV(csvPath, loc)
	if err != nil {
		return err
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Timestamp < records[j].Timestamp
	})

	players := model.Players{A: ic.playerA, B: ic.playerB}
	seg := session.New(loc, session.WithGapHours(ic.gapHours))
	sessions := seg.Segment(records, players)

	fmt.Fprintf(os.Stdout, "parsed %d matches (%d rows skipped), %d sessions\n",
		len(records), skipped, len(sessions))
	if ic.dryRun {
		return nil
	}

	store, err := repository.OpenSQLite(ctx, ic.dbPath)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer store.Close()

	ids := make(map[string]string, len(records))
	for _, sess := range sessions {
		for _, m := range sess.Matches {
			ids[m.ID] = sess.ID
		}
	}
	for _, rec := range records {
		rec.SessionID = ids[rec.ID]
		if err := store.Append(ctx, rec); err != nil {
			return fmt.Errorf("appending match at %s: %w", rec.OccurredAt, err)
		}
	}

	n, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting records: %w", err)
	}
	fmt.Fprintf(os.Stdout, "imported %d matches; store now holds %d\n", len(records), n)
	return nil
}

// parseCSV reads the legacy export. Rows with an unusable timestamp or a
// winner that is neither identity are skipped, not fatal.
func (ic *ImportCommand) parseCSV(path string, loc *time.Location) ([]model.MatchRecord, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("reading csv header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}

	charA, okA := firstColumn(col, "player_a_character", "shayne_character")
	charB, okB := firstColumn(col, "player_b_character", "matt_character")
	winnerCol, okW := col["winner"]
	if !okA || !okB || !okW {
		return nil, 0, fmt.Errorf("%w: need winner and both character columns, have %v", ErrMissingColumns, header)
	}

	get := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []model.MatchRecord
	skipped := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("reading csv row: %w", err)
		}

		ts, ok := parseTimestamp(get(row, "timestamp"), get(row, "datetime"), loc)
		if !ok {
			skipped++
			continue
		}
		winner, ok := ic.canonicalWinner(strings.TrimSpace(row[winnerCol]))
		if !ok {
			skipped++
			continue
		}
		a, b := strings.TrimSpace(row[charA]), strings.TrimSpace(row[charB])
		if a == "" || b == "" {
			skipped++
			continue
		}

		rec := model.MatchRecord{
			ID:               uuid.NewString(),
			Timestamp:        ts,
			OccurredAt:       time.Unix(int64(ts), 0).In(loc).Format(model.OccurredAtLayout),
			PlayerACharacter: a,
			PlayerBCharacter: b,
			Winner:           winner,
			Stage:            get(row, "stage"),
		}
		if raw := get(row, "stocks_remaining"); raw != "" {
			if stocks, err := strconv.Atoi(raw); err == nil && stocks >= 0 {
				rec.StocksRemaining = &stocks
			}
		}
		records = append(records, rec)
	}
	if len(records) == 0 && skipped == 0 {
		return nil, 0, ErrEmptyCSV
	}
	return records, skipped, nil
}

func (ic *ImportCommand) canonicalWinner(raw string) (string, bool) {
	switch {
	case strings.EqualFold(raw, ic.playerA):
		return ic.playerA, true
	case strings.EqualFold(raw, ic.playerB):
		return ic.playerB, true
	}
	return "", false
}

// parseTimestamp prefers the unix column, falling back to the display
// datetime interpreted in the reference timezone.
func parseTimestamp(unixRaw, datetimeRaw string, loc *time.Location) (float64, bool) {
	if unixRaw != "" {
		if ts, err := strconv.ParseFloat(unixRaw, 64); err == nil && ts > 0 {
			return ts, true
		}
	}
	if datetimeRaw != "" {
		if t, err := time.ParseInLocation(model.OccurredAtLayout, datetimeRaw, loc); err == nil {
			return float64(t.Unix()), true
		}
	}
	return 0, false
}

func firstColumn(col map[string]int, names ...string) (int, bool) {
	for _, name := range names {
		if i, ok := col[name]; ok {
			return i, true
		}
	}
	return 0, false
}
