package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a difficulty picker menu",
	Long: `Start in interactive menu mode.

Pick a difficulty to play, or open the high score table.
Closing the table returns to the menu; quitting a game does too.
Confirming a game's end screen exits with status 1.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  breakout menu
  breakout menu --fps 30
  breakout menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger := newLogger()
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	title := gameTitle(defaultGameID)

	for {
		result, err := tui.RunMenu(store, defaultGameID, title, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit {
			return nil
		}

		if result.Item.Scoreboard {
			if err := tui.RunScoreboard(store, defaultGameID, title, cfg.ScreenW, cfg.ScreenH); err != nil {
				logger.Error("scoreboard failed", "error", err)
			}
			continue
		}

		s := settings()
		s.Difficulty = string(result.Item.Difficulty)
		game, err := registry.Create(defaultGameID, s)
		if err != nil {
			return err
		}

		logger.Debug("game started", "difficulty", s.Difficulty)
		if err := tui.Run(game, tui.Options{Store: store, Logger: logger, Runtime: cfg}); err != nil {
			return err
		}
	}
}
