package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play the game",
	Long: `Start playing straight away.

Controls:
  Space/Up/W/Click - Jump
  P/Esc            - Pause
  R                - Restart
  Ctrl+S           - Save a text screenshot to ~/.arcade/screenshots
  Q/Ctrl+C         - Quit

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'flappy list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	opts := tui.GameOptions{Player: playerName(), Logger: logger}
	if err := tui.Run(game, store, runtimeConfig(), opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
