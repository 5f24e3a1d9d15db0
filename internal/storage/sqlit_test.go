package storage

import (
	"testing"
)

func TestStore_SaveAndRecentTurns(t *testing.T) {
	db, err := OpenSQLite("file:" + t.TempDir() + "/turns.db?_fk=1")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if err := InitSchema(db); err != nil {
		t.Fatal(err)
	}
	s := NewStore(db)

	if err := s.SaveTurn(1, "human", "apple price", 100); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveTurn(1, "assistant", "Company Information for AAPL", 101); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveTurn(2, "human", "unrelated chat", 102); err != nil {
		t.Fatal(err)
	}

	rows, err := s.RecentTurns(1, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].Role != "human" || rows[0].Text != "apple price" {
		t.Fatalf("oldest first expected, got %+v", rows[0])
	}
	if rows[1].Role != "assistant" {
		t.Fatalf("second row = %+v", rows[1])
	}

	limited, err := s.RecentTurns(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 1 || limited[0].Role != "assistant" {
		t.Fatalf("limit should keep the newest turn, got %+v", limited)
	}
}
