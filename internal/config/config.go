// Package config provides YAML/TOML-based game configuration loading,
// environment overrides and difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// BreakoutConfig contains all configuration for the Breakout game.
// All positions and sizes are in logical canvas units.
type BreakoutConfig struct {
	Screen BreakoutScreen `yaml:"screen" toml:"screen" envPrefix:"SCREEN_"`
	Paddle BreakoutPaddle `yaml:"paddle" toml:"paddle" envPrefix:"PADDLE_"`
	Ball   BreakoutBall   `yaml:"ball" toml:"ball" envPrefix:"BALL_"`
	Blocks BreakoutBlocks `yaml:"blocks" toml:"blocks" envPrefix:"BLOCKS_"`
	Timing BreakoutTiming `yaml:"timing" toml:"timing" envPrefix:"TIMING_"`
}

// BreakoutScreen defines the logical canvas and its walls.
type BreakoutScreen struct {
	Width         float64 `yaml:"width" toml:"width" env:"WIDTH"`
	Height        float64 `yaml:"height" toml:"height" env:"HEIGHT"`
	WallThickness float64 `yaml:"wall_thickness" toml:"wall_thickness" env:"WALL_THICKNESS"`
}

// BreakoutPaddle defines the paddle's start rect, speed and lives.
type BreakoutPaddle struct {
	X      float64 `yaml:"x" toml:"x" env:"X"`
	Y      float64 `yaml:"y" toml:"y" env:"Y"`
	Width  float64 `yaml:"width" toml:"width" env:"WIDTH"`
	Height float64 `yaml:"height" toml:"height" env:"HEIGHT"`
	Speed  float64 `yaml:"speed" toml:"speed" env:"SPEED"` // Units per second
	Lives  int     `yaml:"lives" toml:"lives" env:"LIVES"`
}

// BreakoutBall defines the ball's spawn point, size, speed and direction.
type BreakoutBall struct {
	SpawnX float64 `yaml:"spawn_x" toml:"spawn_x" env:"SPAWN_X"`
	SpawnY float64 `yaml:"spawn_y" toml:"spawn_y" env:"SPAWN_Y"`
	Width  float64 `yaml:"width" toml:"width" env:"WIDTH"`
	Height float64 `yaml:"height" toml:"height" env:"HEIGHT"`
	Speed  float64 `yaml:"speed" toml:"speed" env:"SPEED"` // Units per second, per axis
	DirX   float64 `yaml:"dir_x" toml:"dir_x" env:"DIR_X"` // Initial direction sign, -1 or 1
	DirY   float64 `yaml:"dir_y" toml:"dir_y" env:"DIR_Y"`
}

// BreakoutBlocks defines the block grid.
type BreakoutBlocks struct {
	Width   float64 `yaml:"width" toml:"width" env:"WIDTH"`
	Height  float64 `yaml:"height" toml:"height" env:"HEIGHT"`
	Spacing float64 `yaml:"spacing" toml:"spacing" env:"SPACING"` // Gap between neighbouring blocks
	Columns int     `yaml:"columns" toml:"columns" env:"COLUMNS"`
	Rows    int     `yaml:"rows" toml:"rows" env:"ROWS"`
	Top     float64 `yaml:"top" toml:"top" env:"TOP"` // Y of the first row
	Lives   int     `yaml:"lives" toml:"lives" env:"LIVES"`
	Points  int     `yaml:"points" toml:"points" env:"POINTS"` // Awarded once per destroyed block
}

// BreakoutTiming defines frame timing limits.
type BreakoutTiming struct {
	// MaxFrameDelta caps the dt of a single step in seconds. 0 disables the cap.
	MaxFrameDelta float64 `yaml:"max_frame_delta" toml:"max_frame_delta" env:"MAX_FRAME_DELTA"`
	// HoldMillis is how long a steering key counts as held after its last
	// key event. Terminals only report presses and auto-repeat, and the first
	// repeat arrives after the keyboard's repeat delay (often 250-500ms).
	// Shorter windows stutter after the first press; longer ones make the
	// paddle coast after release.
	HoldMillis int `yaml:"hold_ms" toml:"hold_ms" env:"HOLD_MS"`
}

// CellWidth returns the horizontal distance between block origins.
func (b BreakoutBlocks) CellWidth() float64 {
	return b.Width + b.Spacing
}

// CellHeight returns the vertical distance between block origins.
func (b BreakoutBlocks) CellHeight() float64 {
	return b.Height + b.Spacing
}

// BoardWidth returns the width of the whole grid including trailing spacing.
func (b BreakoutBlocks) BoardWidth() float64 {
	return float64(b.Columns) * b.CellWidth()
}

// Count returns the number of blocks in a full grid.
func (b BreakoutBlocks) Count() int {
	return b.Columns * b.Rows
}

// Validate reports every setting that would make the simulation ill-formed.
func (c BreakoutConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	unitSign := func(name string, v float64) {
		if v != 1 && v != -1 {
			errs = append(errs, fmt.Errorf("%s must be -1 or 1, got %v", name, v))
		}
	}

	positive("screen.width", c.Screen.Width)
	positive("screen.height", c.Screen.Height)
	positive("screen.wall_thickness", c.Screen.WallThickness)
	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("paddle.speed", c.Paddle.Speed)
	positive("ball.width", c.Ball.Width)
	positive("ball.height", c.Ball.Height)
	positive("ball.speed", c.Ball.Speed)
	positive("blocks.width", c.Blocks.Width)
	positive("blocks.height", c.Blocks.Height)
	unitSign("ball.dir_x", c.Ball.DirX)
	unitSign("ball.dir_y", c.Ball.DirY)

	if c.Paddle.Lives <= 0 {
		errs = append(errs, fmt.Errorf("paddle.lives must be positive, got %d", c.Paddle.Lives))
	}
	if c.Blocks.Lives <= 0 {
		errs = append(errs, fmt.Errorf("blocks.lives must be positive, got %d", c.Blocks.Lives))
	}
	if c.Blocks.Points < 0 {
		errs = append(errs, fmt.Errorf("blocks.points must not be negative, got %d", c.Blocks.Points))
	}
	if c.Blocks.Columns <= 0 || c.Blocks.Rows <= 0 {
		errs = append(errs, fmt.Errorf("blocks grid must be at least 1x1, got %dx%d", c.Blocks.Columns, c.Blocks.Rows))
	}
	if c.Blocks.Spacing < 0 {
		errs = append(errs, fmt.Errorf("blocks.spacing must not be negative, got %v", c.Blocks.Spacing))
	}
	if c.Blocks.BoardWidth() > c.Screen.Width {
		errs = append(errs, fmt.Errorf("blocks grid is %v wide, canvas is %v", c.Blocks.BoardWidth(), c.Screen.Width))
	}
	if c.Paddle.Width > c.Screen.Width {
		errs = append(errs, fmt.Errorf("paddle.width %v exceeds canvas width %v", c.Paddle.Width, c.Screen.Width))
	}
	if c.Timing.MaxFrameDelta < 0 {
		errs = append(errs, fmt.Errorf("timing.max_frame_delta must not be negative, got %v", c.Timing.MaxFrameDelta))
	}
	if c.Timing.HoldMillis < 0 {
		errs = append(errs, fmt.Errorf("timing.hold_ms must not be negative, got %d", c.Timing.HoldMillis))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid breakout config: %w", errors.Join(errs...))
	}
	return nil
}
