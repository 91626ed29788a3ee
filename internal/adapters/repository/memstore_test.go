package repository

import (
	"context"
	"testing"

	"github.com/halvard/smashlog/internal/domain/model"
)

func memRecord(id string, ts float64, winner string) model.MatchRecord {
	return model.MatchRecord{
		ID:               id,
		Timestamp:        ts,
		OccurredAt:       "2024-01-01 12:00:00",
		PlayerACharacter: "Fox",
		PlayerBCharacter: "Falco",
		Winner:           winner,
		Stage:            "Battlefield",
	}
}

func TestMemStore_AppendAndReadAll(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	if n, err := store.Count(ctx); err != nil || n != 0 {
		t.Fatalf("expected empty store, got n=%d err=%v", n, err)
	}

	for i, id := range []string{"a", "b", "c"} {
		if err := store.Append(ctx, memRecord(id, float64(100+i), "Shayne")); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	recs, err := store.ReadAll(ctx)
	if err != nil {
		t.Fatalf("read all: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	// Insertion order preserved.
	for i, want := range []string{"a", "b", "c"} {
		if recs[i].ID != want {
			t.Errorf("record %d: expected id %s, got %s", i, want, recs[i].ID)
		}
	}

	// Mutating the returned slice must not affect the store.
	recs[0].Winner = "Matt"
	again, _ := store.ReadAll(ctx)
	if again[0].Winner != "Shayne" {
		t.Error("ReadAll returned a shared slice")
	}
}

func TestMemStore_Last(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()

	if _, err := store.Last(ctx); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on empty store, got %v", err)
	}

	// Out-of-order append: the last record by timestamp is not the last appended.
	_ = store.Append(ctx, memRecord("a", 200, "Shayne"))
	_ = store.Append(ctx, memRecord("b", 100, "Matt"))

	last, err := store.Last(ctx)
	if err != nil {
		t.Fatalf("last: %v", err)
	}
	if last.ID != "a" {
		t.Errorf("expected record a (greatest timestamp), got %s", last.ID)
	}
}

func TestMemStore_CacheSessionIDs(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	_ = store.Append(ctx, memRecord("a", 100, "Shayne"))
	_ = store.Append(ctx, memRecord("b", 101, "Matt"))

	err := store.CacheSessionIDs(ctx, map[string]string{
		"a":       "2024-01-01-12",
		"b":       "2024-01-01-12",
		"unknown": "2024-01-01-13", // Ignored.
	})
	if err != nil {
		t.Fatalf("cache session ids: %v", err)
	}

	recs, _ := store.ReadAll(ctx)
	for _, rec := range recs {
		if rec.SessionID != "2024-01-01-12" {
			t.Errorf("record %s: expected cached session id, got %q", rec.ID, rec.SessionID)
		}
	}
}

func TestMemStore_Closed(t *testing.T) {
	ctx := context.Background()
	store := NewMemStore()
	_ = store.Close()

	if err := store.Append(ctx, memRecord("a", 100, "Shayne")); err != ErrClosed {
		t.Errorf("expected ErrClosed on append, got %v", err)
	}
	if _, err := store.ReadAll(ctx); err != ErrClosed {
		t.Errorf("expected ErrClosed on read, got %v", err)
	}
}
