package tui

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func TestRunRows(t *testing.T) {
	runs := []storage.Run{
		{Player: "bob", Score: 12500, Lines: 40, Pieces: 1200, Duration: 95*time.Second + 400*time.Millisecond, EndReason: "board_full", CreatedAt: time.Now()},
		{Score: 10, Lines: 1, Pieces: 9, Duration: time.Second, EndReason: "quit", CreatedAt: time.Now()},
	}

	rows := RunRows(runs)

	if len(rows) != 2 {
		t.Fatalf("RunRows() returned %d rows, expected 2", len(rows))
	}
	expected := []string{"bob", "12,500", "40", "1,200", "1m35s", "board_full"}
	for i, want := range expected {
		if got := rows[0][i+1]; got != want {
			t.Errorf("row[0][%d] = %q, expected %q", i+1, got, want)
		}
	}
	if rows[1][1] != "local" {
		t.Errorf("anonymous player = %q, expected %q", rows[1][1], "local")
	}
}

func TestHistoryModelLoadsRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	for _, score := range []int{10, 30} {
		if _, err := store.SaveRun(storage.Run{GameID: "tetris", Score: score, Pieces: 5, EndReason: "quit"}); err != nil {
			t.Fatalf("SaveRun() error = %v", err)
		}
	}

	m := NewHistoryModel(store, 100, 30)
	m.loadRuns("tetris")

	if m.loadErr != nil {
		t.Fatalf("loadErr = %v", m.loadErr)
	}
	if len(m.runs) != 2 {
		t.Fatalf("loaded %d runs, expected 2", len(m.runs))
	}
	if m.stats.RunsCount != 2 {
		t.Errorf("RunsCount = %d, expected 2", m.stats.RunsCount)
	}
	if len(m.table.Rows()) != 2 {
		t.Errorf("table has %d rows, expected 2", len(m.table.Rows()))
	}
}

func TestHistoryModelWithoutStore(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24)
	m.loadRuns("tetris")

	if m.loadErr != nil || len(m.runs) != 0 {
		t.Errorf("loadRuns() without store: err = %v, runs = %d", m.loadErr, len(m.runs))
	}
	if m.View() == "" {
		t.Error("View() should render without a store")
	}
}
