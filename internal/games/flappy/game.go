// Package flappy implements a Flappy Bird-style game: the player flies a
// plane through gaps in columns of obstacle segments that spawn on a timer.
package flappy

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
)

// SoundJump is the sound effect requested on every jump.
const SoundJump = "jump"

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path used by games created through
// the registry.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the Flappy game state.
type Game struct {
	cfg      config.FlappyConfig
	fixedCfg bool
	runtime  core.RuntimeConfig
	rng      *rand.Rand

	clock   *core.Scheduler
	timer   *core.TimerEvent // Spawn loop; removed on death
	plane   *Plane
	spawner *ObstacleSpawner

	score  int
	paused bool
	ticks  int // Ticks since the current run started
	runs   int // Completed runs since Reset
	events []core.Event
}

// New creates a Flappy game that loads its configuration on Reset.
func New() *Game {
	return &Game{clock: core.NewScheduler()}
}

// NewWithConfig creates a Flappy game with a fixed configuration.
func NewWithConfig(cfg config.FlappyConfig) *Game {
	return &Game{
		cfg:      cfg,
		fixedCfg: true,
		clock:    core.NewScheduler(),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Plane"
}

// Config returns the active configuration.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// Reset starts a new session: configuration is (re)loaded, the RNG is
// seeded from the runtime config and a fresh run begins.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.fixedCfg {
		cfg, err := config.LoadFlappy(configPath)
		if err != nil {
			log.Warn("using default flappy config", "path", configPath, "error", err)
			cfg = config.DefaultFlappyConfig()
		}
		g.cfg = cfg
	}
	if runtime.TickRate <= 0 {
		runtime.TickRate = 60
	}

	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.paused = false
	g.runs = 0
	g.events = nil
	g.start()
}

// start begins a run: plane at its spawn point, no obstacles, score zero
// and the spawn timer looping.
func (g *Game) start() {
	g.clock.Reset()
	g.ticks = 0
	g.score = 0
	g.plane = NewPlane(g.cfg.Player, g.cfg.Physics.Gravity)

	if g.spawner == nil {
		g.spawner = NewObstacleSpawner(g.cfg.Obstacles)
	} else {
		g.spawner.cfg = g.cfg.Obstacles
		g.spawner.Clear()
	}

	g.timer = g.clock.Loop(g.cfg.Obstacles.SpawnInterval, g.addRowOfObstacles)
}

// restart ends the current run and starts the next one.
func (g *Game) restart() {
	g.emit(core.Event{Kind: core.EventRestart, Score: g.score})
	g.runs++
	g.start()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	// Restart works from the pause screen too and resumes play.
	if in.Has(core.ActionRestart) {
		g.paused = false
		g.restart()
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	if in.Has(core.ActionJump) {
		g.jump()
	}

	g.ticks++
	now := time.Duration(g.ticks) * time.Second / time.Duration(g.runtime.TickRate)
	dt := now - g.clock.Now()

	g.clock.AdvanceTo(now)
	g.plane.Update(dt)
	g.spawner.Update(dt.Seconds(), g.world())

	if y := g.plane.Y(); y < 0 || y > g.cfg.World.Height {
		g.restart()
		return g.result()
	}

	if g.spawner.Overlaps(g.plane.Bounds()) {
		g.hitObstacle()
	}

	g.plane.Tilt()

	return g.result()
}

// jump gives the plane its upward impulse. A dead plane cannot jump.
func (g *Game) jump() {
	if !g.plane.Alive() {
		return
	}
	g.plane.Jump(g.cfg.Physics.JumpVelocity)
	g.emit(core.Event{Kind: core.EventSound, Sound: SoundJump, Volume: g.cfg.Sound.JumpVolume})
}

// hitObstacle kills the plane, stops further rows and freezes the scene.
// Later hits while dead change nothing.
func (g *Game) hitObstacle() {
	if !g.plane.Alive() {
		return
	}
	g.plane.Kill()
	g.clock.Remove(g.timer)
	g.spawner.Freeze()
	g.emit(core.Event{Kind: core.EventHit, Score: g.score})
}

// addRowOfObstacles is the spawn timer callback.
func (g *Game) addRowOfObstacles() {
	g.spawner.AddRow(g.rng)
	g.score++
	g.emit(core.Event{Kind: core.EventRowSpawned, Score: g.score})
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) world() core.RectF {
	return core.NewRectF(0, 0, g.cfg.World.Width, g.cfg.World.Height)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.plane != nil && !g.plane.Alive(),
		Paused:   g.paused,
	}
}

// Runs returns how many runs ended since Reset.
func (g *Game) Runs() int {
	return g.runs
}

// Register the game with the registry
func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}
