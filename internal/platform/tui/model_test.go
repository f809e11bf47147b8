package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// scriptedGame ends a run with a fixed score every few ticks.
type scriptedGame struct {
	every   int
	score   int
	current int // Score reported mid-run
	ticks   int
	jumps   []bool // Jump action seen on each step
	paused  bool
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.ticks = 0
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.jumps = append(g.jumps, in.Has(core.ActionJump))
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	res := core.StepResult{}
	if !g.paused {
		g.ticks++
		if g.every > 0 && g.ticks%g.every == 0 {
			res.Events = append(res.Events, core.Event{Kind: core.EventRestart, Score: g.score})
		}
	}
	res.State = g.State()
	return res
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(2, 0, " Score: 0 ")
}

func (g *scriptedGame) State() core.GameState {
	return core.GameState{Score: g.current, Paused: g.paused}
}

func init() {
	registry.Register("scripted", func() registry.Game {
		return &scriptedGame{every: 3, score: 4}
	})
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next, cmd
}

func tick(t *testing.T, m GameModel) GameModel {
	t.Helper()
	next, _ := update(t, m, TickMsg(time.Now()))
	return next.(GameModel)
}

func TestGameModelSavesScoreOnRestart(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{every: 3, score: 5}
	m := NewGameModel(game, store, testConfig(), GameOptions{Player: "ann"})

	for i := 0; i < 6; i++ {
		m = tick(t, m)
	}

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("saved %d scores, want 2", len(scores))
	}
	if scores[0].Player != "ann" || scores[0].Score != 5 {
		t.Errorf("saved %s/%d, want ann/5", scores[0].Player, scores[0].Score)
	}
	if m.Best() != 5 {
		t.Errorf("Best() = %d, want 5", m.Best())
	}
}

func TestGameModelSkipsZeroScores(t *testing.T) {
	store := openStore(t)
	m := NewGameModel(&scriptedGame{every: 1}, store, testConfig(), GameOptions{})

	m = tick(t, m)
	m = tick(t, m)

	scores, _ := store.TopScores("scripted", 10)
	if len(scores) != 0 {
		t.Errorf("saved %d zero scores", len(scores))
	}
}

func TestGameModelLoadsBest(t *testing.T) {
	store := openStore(t)
	store.SaveScore("scripted", "bob", 12)

	m := NewGameModel(&scriptedGame{}, store, testConfig(), GameOptions{})
	if m.Best() != 12 {
		t.Errorf("Best() = %d, want 12", m.Best())
	}
	if !strings.Contains(m.View(), "Best: 12") {
		t.Error("view does not show the best score")
	}
}

func TestGameModelShowsPlayerBest(t *testing.T) {
	store := openStore(t)
	store.SaveScore("scripted", "bob", 12)
	store.SaveScore("scripted", "ann", 7)

	m := NewGameModel(&scriptedGame{every: 3, score: 9}, store, testConfig(), GameOptions{Player: "ann"})
	if m.PlayerBest() != 7 {
		t.Fatalf("PlayerBest() = %d, want 7", m.PlayerBest())
	}
	if view := m.View(); !strings.Contains(view, "Best: 12") || !strings.Contains(view, "You: 7") {
		t.Errorf("view does not show both bests:\n%s", view)
	}

	for i := 0; i < 3; i++ {
		m = tick(t, m)
	}
	if m.PlayerBest() != 9 || m.Best() != 12 {
		t.Errorf("after a 9 run: player best = %d best = %d, want 9 and 12", m.PlayerBest(), m.Best())
	}

	anonymous := NewGameModel(&scriptedGame{}, store, testConfig(), GameOptions{})
	if strings.Contains(anonymous.View(), "You:") {
		t.Error("player best shown without a player name")
	}
}

func TestGameModelSavesScoreWhenLeaving(t *testing.T) {
	tests := []struct {
		name string
		keys []string
	}{
		{"back to menu", []string{"p", "b"}},
		{"quit", []string{"q"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openStore(t)
			game := &scriptedGame{current: 6}
			var m tea.Model = NewGameModel(game, store, testConfig(), GameOptions{Player: "ann", Menu: true})

			for _, k := range tt.keys {
				m, _ = update(t, m, keyMsg(k))
				if k == "p" {
					m = tick(t, m.(GameModel))
				}
			}

			gm := m.(GameModel)
			if !gm.BackToMenu() && !gm.IsQuitting() {
				t.Fatal("model did not leave the game")
			}
			scores, err := store.TopScores("scripted", 10)
			if err != nil {
				t.Fatalf("TopScores() failed: %v", err)
			}
			if len(scores) != 1 || scores[0].Score != 6 || scores[0].Player != "ann" {
				t.Errorf("scores = %+v, want one ann/6 entry", scores)
			}
		})
	}
}

func TestGameModelInputReachesGame(t *testing.T) {
	game := &scriptedGame{}
	m := NewGameModel(game, nil, testConfig(), GameOptions{})

	next, _ := update(t, m, keyMsg(" "))
	next, _ = update(t, next, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = tick(t, next.(GameModel))
	m = tick(t, m)

	if len(game.jumps) != 2 {
		t.Fatalf("game stepped %d times, want 2", len(game.jumps))
	}
	if !game.jumps[0] {
		t.Error("jump not delivered on the first tick")
	}
	if game.jumps[1] {
		t.Error("input not cleared after the tick")
	}
}

func TestGameModelBackNeedsMenuAndPause(t *testing.T) {
	game := &scriptedGame{}
	m := NewGameModel(game, nil, testConfig(), GameOptions{Menu: true})

	next, _ := update(t, m, keyMsg("b"))
	if next.(GameModel).BackToMenu() {
		t.Fatal("back accepted while running")
	}

	next, _ = update(t, next, keyMsg("p"))
	m = tick(t, next.(GameModel))
	next, _ = update(t, m, keyMsg("b"))
	if !next.(GameModel).BackToMenu() {
		t.Error("back ignored while paused")
	}

	standalone := NewGameModel(&scriptedGame{paused: true}, nil, testConfig(), GameOptions{})
	next, _ = update(t, standalone, keyMsg("b"))
	if next.(GameModel).BackToMenu() {
		t.Error("back accepted without a menu")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := NewGameModel(&scriptedGame{}, nil, testConfig(), GameOptions{})
	next, cmd := update(t, m, keyMsg("q"))
	if !next.(GameModel).IsQuitting() || cmd == nil {
		t.Error("q did not quit")
	}
	if next.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestGameModelResizeKeepsRun(t *testing.T) {
	game := &scriptedGame{}
	m := NewGameModel(game, nil, testConfig(), GameOptions{})
	m = tick(t, m)

	next, _ := update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.ticks != 1 {
		t.Errorf("resize reset the game: ticks = %d", game.ticks)
	}
	lines := strings.Split(next.View(), "\n")
	if len(lines) != 30 {
		t.Errorf("view has %d lines, want 30", len(lines))
	}
}

func TestGameModelScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	m := NewGameModel(&scriptedGame{}, nil, testConfig(), GameOptions{})
	update(t, m, keyMsg("ctrl+s"))

	files, err := filepath.Glob(filepath.Join(home, ".arcade", "screenshots", "scripted_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("expected one screenshot, got %v (%v)", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Score: 0") {
		t.Error("screenshot does not contain the screen")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorGreen)
	s.DrawText(2, 0, "cd")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, want 2", len(lines))
	}
	// lipgloss strips color without a TTY; the text is what matters here.
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("line 0 = %q", lines[0])
	}
}
