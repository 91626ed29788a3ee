package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.csv")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing csv: %v", err)
	}
	return path
}

func TestParseCSV(t *testing.T) {
	ic := &ImportCommand{playerA: "Shayne", playerB: "Matt"}

	csv := "datetime,shayne_character,matt_character,winner,stocks_remaining,stage,timestamp,session_id\n" +
		"2024-03-10 20:00:00,Fox,Marth,Shayne,2,Battlefield,1710115200,old-session\n" +
		"2024-03-10 20:05:00,Fox,Marth,matt,,Battlefield,1710115500,\n" +
		"2024-03-10 20:10:00,Fox,Marth,Ringo,1,Battlefield,1710115800,\n" +
		",Fox,Marth,Shayne,1,Battlefield,,\n"

	records, skipped, err := ic.parseCSV(writeCSV(t, csv), time.UTC)
	if err != nil {
		t.Fatalf("parseCSV: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if skipped != 2 {
		t.Fatalf("expected 2 skipped rows, got %d", skipped)
	}

	first := records[0]
	if first.Timestamp != 1710115200 {
		t.Fatalf("unexpected timestamp %f", first.Timestamp)
	}
	if first.StocksRemaining == nil || *first.StocksRemaining != 2 {
		t.Fatalf("stocks not carried over: %+v", first.StocksRemaining)
	}
	if first.SessionID != "" {
		t.Fatal("legacy session id should be discarded in favor of resegmentation")
	}
	if first.ID == "" {
		t.Fatal("record should get a fresh id")
	}

	// Case-insensitive winner is canonicalized.
	if records[1].Winner != "Matt" {
		t.Fatalf("winner not canonicalized: %q", records[1].Winner)
	}
	if records[1].StocksRemaining != nil {
		t.Fatal("blank stocks should stay unknown")
	}
}

func TestParseCSVDatetimeFallback(t *testing.T) {
	ic := &ImportCommand{playerA: "Shayne", playerB: "Matt"}

	csv := "datetime,player_a_character,player_b_character,winner\n" +
		"2024-03-10 20:00:00,Fox,Marth,Shayne\n"

	records, skipped, err := ic.parseCSV(writeCSV(t, csv), time.UTC)
	if err != nil {
		t.Fatalf("parseCSV: %v", err)
	}
	if skipped != 0 || len(records) != 1 {
		t.Fatalf("expected 1 record, got %d (%d skipped)", len(records), skipped)
	}
	want := time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC).Unix()
	if int64(records[0].Timestamp) != want {
		t.Fatalf("datetime fallback produced %f, want %d", records[0].Timestamp, want)
	}
	if records[0].Stage != "" {
		t.Fatalf("missing stage column should stay blank, got %q", records[0].Stage)
	}
}

func TestParseCSVMissingColumns(t *testing.T) {
	ic := &ImportCommand{playerA: "Shayne", playerB: "Matt"}

	csv := "timestamp,winner\n1710115200,Shayne\n"
	if _, _, err := ic.parseCSV(writeCSV(t, csv), time.UTC); err == nil {
		t.Fatal("expected missing-columns error")
	}
}
