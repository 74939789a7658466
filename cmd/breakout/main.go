// breakout is a terminal Breakout game.
//
// Usage:
//
//	breakout play            - Play a game
//	breakout menu            - Pick a difficulty or the high score table
//	breakout serve           - Start SSH server for remote play
//	breakout scores          - Show high scores
//	breakout render          - Simulate frames headlessly and write a PNG
//	breakout list            - List registered games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.breakout/scores.db)
//	--config <path>       - Custom YAML or TOML config
//	--difficulty <name>   - easy, normal or hard
//	--verbose             - Debug logging on stderr
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/core"
	// Import games to register them
	_ "github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

const defaultGameID = "breakout"

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

func main() {
	err := rootCmd.Execute()
	if errors.Is(err, core.ErrGameEnded) {
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakout",
	Short: "Breakout - bounce a ball, break the wall",
	Long: `Breakout in your terminal: steer the paddle, keep the ball alive and
destroy every block.

Available commands:
  play     - Play a game directly
  menu     - Pick a difficulty or view high scores
  serve    - Start SSH server for remote play
  scores   - View high scores
  render   - Render a scripted game to PNG
  list     - Show registered games

Examples:
  breakout play
  breakout play --difficulty hard
  breakout menu
  breakout serve --ssh :2222
  breakout render --frames 300 --out frame.png`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return checkGame(defaultGameID)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breakout/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(renderCmd)
}

// newLogger returns the stderr logger shared by all commands.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakout",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// runtimeConfig sizes the host to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg
}

// settings returns the factory settings from the global flags.
func settings() registry.Settings {
	return registry.Settings{
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
	}
}

// checkGame fails when id is not registered in this binary.
func checkGame(id string) error {
	if !registry.Exists(id) {
		return fmt.Errorf("%w: unknown game %q", core.ErrInit, id)
	}
	return nil
}

// gameTitle returns the registered title for id, or id itself.
func gameTitle(id string) string {
	for _, g := range registry.List() {
		if g.ID == id {
			return g.Title
		}
	}
	return id
}
