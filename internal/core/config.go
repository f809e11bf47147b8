package core

// RuntimeConfig is passed to games at initialization by the host.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal host)
	ScreenH  int   // Screen height in characters (terminal host)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the status a game reports to its host.
type GameState struct {
	Score    int  // Current score
	GameOver bool // The player is dead; the run ends when the restart happens
	Paused   bool // Whether the game is paused
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	// EventSound asks the host to play Event.Sound at Event.Volume.
	EventSound EventKind = iota
	// EventRowSpawned reports that an obstacle row was added.
	EventRowSpawned
	// EventHit reports the player's death.
	EventHit
	// EventRestart reports that a run ended and the state restarted.
	// Event.Score holds the final score of the finished run.
	EventRestart
)

// Event is a notification from the game to the host.
type Event struct {
	Kind   EventKind
	Sound  string
	Volume float64
	Score  int
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred this tick.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
