package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// GameOptions configures a GameModel.
type GameOptions struct {
	Player string      // Name recorded with saved scores
	Logger *log.Logger // Defaults to the charmbracelet/log default logger
	Menu   bool        // B returns to a menu while paused
}

// GameModel is the Bubble Tea model that runs one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       GameOptions
	logger     *log.Logger
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	best       int
	playerBest int
	lastScore  int
	lastSaved  bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		logger:     logger,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
	m.best = m.loadBest()
	m.playerBest = m.loadPlayerBest()

	// Reset here rather than in Init: Init has a value receiver and the
	// first tick must see a started game.
	game.Reset(cfg)
	m.gameState = game.State()

	return m
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if action := m.keyMapper.MapMouse(msg); action != core.ActionNone {
			m.inputFrame.Set(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		// The world is scaled to the screen, so a resize never resets the run.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Debug("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.finishRun(m.gameState.Score)
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack {
		if m.opts.Menu && m.gameState.Paused {
			m.finishRun(m.gameState.Score)
			m.backToMenu = true
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, e := range result.Events {
		switch e.Kind {
		case core.EventRestart:
			m.finishRun(e.Score)
		case core.EventHit:
			m.logger.Debug("player hit", "score", e.Score)
		}
		// Sound events have no terminal rendition.
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// finishRun records the final score of a run, whether it ended by a
// restart or by leaving the game.
func (m *GameModel) finishRun(score int) {
	m.lastScore = score
	m.lastSaved = false
	if score > m.best {
		m.best = score
	}
	if score > m.playerBest {
		m.playerBest = score
	}
	if score <= 0 || m.store == nil {
		return
	}

	if _, err := m.store.SaveScore(m.game.ID(), m.opts.Player, score); err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
		return
	}
	m.lastSaved = true
}

// loadBest reads the stored high score, or 0 without storage.
func (m GameModel) loadBest() int {
	if m.store == nil {
		return 0
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not load high score", "game", m.game.ID(), "error", err)
		return 0
	}
	return best
}

// loadPlayerBest reads the player's own stored best, or 0 without storage.
func (m GameModel) loadPlayerBest() int {
	if m.store == nil || m.opts.Player == "" {
		return 0
	}
	best, err := m.store.PlayerBest(m.game.ID(), m.opts.Player)
	if err != nil {
		m.logger.Warn("could not load player best", "game", m.game.ID(), "player", m.opts.Player, "error", err)
		return 0
	}
	return best
}

// saveScreenshot writes the current screen as text to
// ~/.arcade/screenshots and returns the file path.
func (m GameModel) saveScreenshot() (string, error) {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// render draws the game and the host HUD into the screen buffer.
func (m GameModel) render() {
	m.game.Render(m.screen)

	best := fmt.Sprintf(" Best: %d ", core.Max(m.best, m.gameState.Score))
	x := m.screen.Width() - len(best) - 2
	if x > 20 {
		m.screen.DrawTextColor(x, 0, best, core.ColorGray)
	}

	if m.opts.Player != "" {
		mine := fmt.Sprintf(" You: %d ", core.Max(m.playerBest, m.gameState.Score))
		if x := m.screen.Width() - len(mine) - 2; x > 20 {
			m.screen.DrawTextColor(x, 1, mine, core.ColorGray)
		}
	}

	if m.lastScore > 0 && m.gameState.Score == 0 {
		last := fmt.Sprintf(" Last: %d ", m.lastScore)
		m.screen.DrawTextColor(2, 1, last, core.ColorGray)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.render()
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Best returns the best score known to this model.
func (m GameModel) Best() int {
	return m.best
}

// PlayerBest returns the player's own best score known to this model.
func (m GameModel) PlayerBest() int {
	return m.playerBest
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) error {
	model := NewGameModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse presses jump
	)

	_, err := p.Run()
	return err
}
