package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing Breakout.

Controls:
  Left/Right, A/D  - Move paddle
  Space/Enter      - Start, confirm end screen (exits)
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, wider paddle, slower ball
  normal - Configured values
  hard   - Fewer lives, narrow paddle, faster ball and paddle

Confirming the end screen exits with status 1.

Examples:
  breakout play
  breakout play --difficulty easy
  breakout play --config ./my-breakout.toml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	game, err := registry.Create(defaultGameID, settings())
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, tui.Options{
		Store:   store,
		Logger:  logger,
		Runtime: runtimeConfig(),
	})
}

// openStore opens the score database. The game still works without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
