package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyNone   DifficultyPreset = ""
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyNone, DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return DifficultyNone, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// Normal keeps the configured values. Presets that resize the paddle
// re-centre it on the screen.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	width := cfg.Paddle.Width
	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Lives = 5
		cfg.Paddle.Width = 160
		cfg.Ball.Speed = 160
	case DifficultyHard:
		cfg.Paddle.Lives = 2
		cfg.Paddle.Width = 90
		cfg.Ball.Speed = 260
		cfg.Paddle.Speed = 480
	}
	if cfg.Paddle.Width != width {
		cfg.Paddle.X = (cfg.Screen.Width - cfg.Paddle.Width) / 2
	}
}
