package repository

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/halvard/smashlog/internal/domain/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS matches (
    seq                INTEGER PRIMARY KEY AUTOINCREMENT,
    id                 TEXT NOT NULL UNIQUE,
    ts                 REAL NOT NULL,
    occurred_at        TEXT NOT NULL,
    player_a_character TEXT NOT NULL,
    player_b_character TEXT NOT NULL,
    winner             TEXT NOT NULL,
    stocks_remaining   INTEGER,
    stage              TEXT NOT NULL,
    session_id         TEXT
);
CREATE INDEX IF NOT EXISTS idx_matches_ts ON matches (ts);
`

// SQLiteStore persists the match log in SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if necessary) a SQLite match store at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("open sqlite store: path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite store: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply sqlite schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Append adds one record to the end of the log.
func (s *SQLiteStore) Append(ctx context.Context, rec model.MatchRecord) error {
	var stocks any
	if rec.StocksRemaining != nil {
		stocks = *rec.StocksRemaining
	}
	var sessionID any
	if rec.SessionID != "" {
		sessionID = rec.SessionID
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO matches (
		   id, ts, occurred_at,
		   player_a_character, player_b_character,
		   winner, stocks_remaining, stage, session_id
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Timestamp, rec.OccurredAt,
		rec.PlayerACharacter, rec.PlayerBCharacter,
		rec.Winner, stocks, rec.Stage, sessionID,
	)
	if err != nil {
		return fmt.Errorf("append match: %w", err)
	}
	return nil
}

// ReadAll returns every record in insertion order.
func (s *SQLiteStore) ReadAll(ctx context.Context) ([]model.MatchRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, ts, occurred_at,
		        player_a_character, player_b_character,
		        winner, stocks_remaining, stage, session_id
		   FROM matches ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("read matches: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.MatchRecord
	for rows.Next() {
		rec, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read matches: %w", err)
	}
	return out, nil
}

// Last returns the record with the greatest timestamp.
func (s *SQLiteStore) Last(ctx context.Context) (model.MatchRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, ts, occurred_at,
		        player_a_character, player_b_character,
		        winner, stocks_remaining, stage, session_id
		   FROM matches ORDER BY ts DESC, seq DESC LIMIT 1`)
	rec, err := scanMatch(row)
	if err == sql.ErrNoRows {
		return model.MatchRecord{}, ErrNotFound
	}
	if err != nil {
		return model.MatchRecord{}, err
	}
	return rec, nil
}

// CacheSessionIDs persists derived session ids keyed by record id.
func (s *SQLiteStore) CacheSessionIDs(ctx context.Context, assignments map[string]string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("cache session ids: %w", err)
	}
	for id, sessionID := range assignments {
		if _, err := tx.ExecContext(ctx,
			`UPDATE matches SET session_id = ? WHERE id = ?`, sessionID, id); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("cache session ids: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("cache session ids: %w", err)
	}
	return nil
}

// Count returns the number of records in the log.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM matches`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count matches: %w", err)
	}
	return n, nil
}

// Close closes the SQLite handle.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (model.MatchRecord, error) {
	var (
		rec       model.MatchRecord
		stocks    sql.NullInt64
		sessionID sql.NullString
	)
	err := row.Scan(
		&rec.ID, &rec.Timestamp, &rec.OccurredAt,
		&rec.PlayerACharacter, &rec.PlayerBCharacter,
		&rec.Winner, &stocks, &rec.Stage, &sessionID,
	)
	if err == sql.ErrNoRows {
		return rec, err
	}
	if err != nil {
		return rec, fmt.Errorf("scan match: %w", err)
	}
	if stocks.Valid {
		v := int(stocks.Int64)
		rec.StocksRemaining = &v
	}
	if sessionID.Valid {
		rec.SessionID = sessionID.String
	}
	return rec, nil
}
