// Package window provides the Ebitengine desktop host for the game: a
// scaled window, sprite rendering, synthesized sound and pointer/touch
// input.
package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// ErrQuit is returned from Update when the player closes the game with Q.
var ErrQuit = errors.New("window: quit")

// Options configures a Host.
type Options struct {
	Player string      // Name recorded with saved scores
	Mute   bool        // Skip audio context creation
	Logger *log.Logger // Defaults to the charmbracelet/log default logger
}

// Host implements ebiten.Game around a flappy.Game.
type Host struct {
	game    *flappy.Game
	store   *storage.Store
	opts    Options
	logger  *log.Logger
	runtime core.RuntimeConfig

	audio  *audio.Context
	sounds map[string][]byte

	sprites    *sprites
	background color.RGBA
	best       int
	playerBest int
	keys       []ebiten.Key
	touches    []ebiten.TouchID
}

// NewHost resets game with runtime and prepares sprites and sounds.
// store may be nil.
func NewHost(game *flappy.Game, store *storage.Store, runtime core.RuntimeConfig, opts Options) *Host {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	game.Reset(runtime)

	h := &Host{
		game:    game,
		store:   store,
		opts:    opts,
		logger:  logger,
		runtime: runtime,
		sprites: newSprites(game.Config().Player),
	}

	bg, err := parseHexColor(game.Config().World.Background)
	if err != nil {
		logger.Warn("invalid background color, using default", "error", err)
		bg = defaultBackground
	}
	h.background = bg

	if store != nil {
		if best, err := store.HighScore(game.ID()); err == nil {
			h.best = best
		} else {
			logger.Warn("could not load high score", "error", err)
		}
		if opts.Player != "" {
			if best, err := store.PlayerBest(game.ID(), opts.Player); err == nil {
				h.playerBest = best
			} else {
				logger.Warn("could not load player best", "player", opts.Player, "error", err)
			}
		}
	}

	if !opts.Mute {
		h.audio = audio.NewContext(sampleRate)
		h.sounds = map[string][]byte{
			flappy.SoundJump: jumpSound(),
		}
	}

	return h
}

// Update reads input and advances the game by one tick.
func (h *Host) Update() error {
	h.keys = inpututil.AppendJustPressedKeys(h.keys[:0])
	h.touches = inpututil.AppendJustPressedTouchIDs(h.touches[:0])
	mouse := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	in, quit := mapInput(h.keys, mouse, len(h.touches) > 0)
	if quit {
		h.finishRun(h.game.State().Score)
		return ErrQuit
	}

	h.handleEvents(h.game.Step(in).Events)
	return nil
}

// handleEvents plays requested sounds and records finished runs.
func (h *Host) handleEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventSound:
			h.play(e.Sound, e.Volume)
		case core.EventRestart:
			h.finishRun(e.Score)
		}
	}
}

// play starts a sound effect. Unknown sounds and a muted host play nothing.
func (h *Host) play(name string, volume float64) {
	h.logger.Debug("sound", "name", name, "volume", volume)
	if h.audio == nil {
		return
	}
	pcm, ok := h.sounds[name]
	if !ok {
		return
	}
	p := h.audio.NewPlayerFromBytes(pcm)
	p.SetVolume(volume)
	p.Play()
}

// finishRun records the final score of a run.
func (h *Host) finishRun(score int) {
	if score > h.best {
		h.best = score
	}
	if score > h.playerBest {
		h.playerBest = score
	}
	if score <= 0 || h.store == nil {
		return
	}
	if _, err := h.store.SaveScore(h.game.ID(), h.opts.Player, score); err != nil {
		h.logger.Warn("could not save score", "error", err)
	}
}

// Draw renders the current scene.
func (h *Host) Draw(screen *ebiten.Image) {
	scene := h.game.Scene()
	screen.Fill(h.background)
	h.drawScene(screen, scene)
	h.drawHUD(screen, scene)
}

// Layout keeps the logical world size; Ebitengine scales it to the window
// preserving the aspect ratio.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := h.game.Config().World
	return int(cfg.Width), int(cfg.Height)
}

// Run opens the window and blocks until it is closed.
func Run(h *Host, title string, scale float64) error {
	cfg := h.game.Config().World
	if scale <= 0 {
		scale = 1
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(int(cfg.Width*scale), int(cfg.Height*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(h.runtime.TickRate)

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ErrQuit) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
