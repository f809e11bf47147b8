// flappy-window runs the game in a desktop window with sprites, sound and
// mouse or touch input.
//
// Usage:
//
//	flappy-window [--scale 1.5] [--seed 42] [--config ./flappy.yaml] [--mute]
package main

import (
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/platform/window"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var (
	flagFPS      int
	flagSeed     int64
	flagScale    float64
	flagDBPath   string
	flagConfig   string
	flagPlayer   string
	flagMute     bool
	flagLogLevel string
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy-window",
	})

	cmd := &cobra.Command{
		Use:          "flappy-window",
		Short:        "Play Flappy Plane in a desktop window",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			level, err := log.ParseLevel(flagLogLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
			logger.SetLevel(level)
			return run(logger)
		},
	}

	f := cmd.Flags()
	f.IntVar(&flagFPS, "fps", 60, "Tick rate (updates per second)")
	f.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	f.Float64Var(&flagScale, "scale", 1.5, "Initial window scale")
	f.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database (empty to disable)")
	f.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	f.StringVar(&flagPlayer, "player", "", "Player name for saved scores (default: current user)")
	f.BoolVar(&flagMute, "mute", false, "Disable sound")
	f.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	if err := cmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	game := flappy.New()
	if flagConfig != "" {
		cfg, err := config.LoadFlappy(flagConfig)
		if err != nil {
			return err
		}
		game = flappy.NewWithConfig(cfg)
	}

	var store *storage.Store
	if flagDBPath != "" {
		var err error
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		} else {
			defer store.Close()
		}
	}

	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	host := window.NewHost(game, store, runtime, window.Options{
		Player: playerName(),
		Mute:   flagMute,
		Logger: logger,
	})

	logger.Debug("opening window", "seed", runtime.Seed, "scale", flagScale)
	return window.Run(host, game.Title(), flagScale)
}

// playerName returns --player or the current OS user.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return storage.DefaultPlayer
}
