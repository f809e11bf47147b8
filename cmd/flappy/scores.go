package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/registry"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top 10 scores and the current player's best.

Examples:
  flappy scores
  flappy scores --db ./scores.db
  flappy scores --clear           # Delete all recorded scores`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded scores for the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'flappy list' to see available games", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Fprintf(out, "Cleared all scores for %s.\n", registry.Title(gameID))
		return nil
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n", registry.Title(gameID))
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'flappy play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-16s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-16s  %s\n", "----", "-----", "------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-6d  %-16s  %s\n", i+1, entry.Score, entry.Player, dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.Runs > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  |  Runs: %d  |  Average: %.1f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	}

	player := playerName()
	if mine, err := store.PlayerBest(gameID, player); err == nil && mine > 0 {
		fmt.Fprintf(out, "Your best (%s): %d\n", player, mine)
	}
	return nil
}
