package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// runScoresAt runs the scores command against dbPath and returns its output.
func runScoresAt(t *testing.T, dbPath, player string, clearAll bool) string {
	t.Helper()
	prevDB, prevPlayer, prevClear := flagDBPath, flagPlayer, flagClearScores
	t.Cleanup(func() {
		flagDBPath, flagPlayer, flagClearScores = prevDB, prevPlayer, prevClear
		scoresCmd.SetOut(nil)
	})
	flagDBPath, flagPlayer, flagClearScores = dbPath, player, clearAll

	var buf bytes.Buffer
	scoresCmd.SetOut(&buf)
	if err := runScores(scoresCmd, nil); err != nil {
		t.Fatalf("runScores() failed: %v", err)
	}
	return buf.String()
}

func TestScoresListsTopAndPlayerBest(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	store.SaveScore(defaultGame, "bob", 12)
	store.SaveScore(defaultGame, "ann", 7)
	store.Close()

	out := runScoresAt(t, dbPath, "ann", false)
	for _, want := range []string{"bob", "12", "Runs: 2", "Your best (ann): 7"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestScoresClear(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	store.SaveScore(defaultGame, "bob", 12)
	store.Close()

	if out := runScoresAt(t, dbPath, "bob", true); !strings.Contains(out, "Cleared") {
		t.Errorf("clear output = %q", out)
	}

	out := runScoresAt(t, dbPath, "bob", false)
	if !strings.Contains(out, "No scores recorded yet.") {
		t.Errorf("scores still listed after clear:\n%s", out)
	}
}
