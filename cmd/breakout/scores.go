package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores.

Examples:
  breakout scores
  breakout scores --limit 25
  breakout scores --tui
  breakout scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all stored scores")
}

func runScores(_ *cobra.Command, _ []string) error {
	title := gameTitle(defaultGameID)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(defaultGameID); err != nil {
			return fmt.Errorf("clear scores: %w", err)
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	if flagScoresTUI {
		cfg := runtimeConfig()
		return tui.RunScoreboard(store, defaultGameID, title, cfg.ScreenW, cfg.ScreenH)
	}

	scores, err := store.TopScores(defaultGameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieve scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'breakout play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Result", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "------", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-6s  %s\n", i+1, entry.Score, entry.Outcome, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GameStats(defaultGameID); err == nil {
		fmt.Printf("Best: %d  Games: %d  Won: %d\n", stats.HighScore, stats.GamesCount, stats.Wins)
	}
	return nil
}
