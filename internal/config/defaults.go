package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Screen: BreakoutScreen{
			Width:         800,
			Height:        600,
			WallThickness: 5,
		},
		Paddle: BreakoutPaddle{
			X:      340,
			Y:      500,
			Width:  120,
			Height: 30,
			Speed:  400,
			Lives:  3,
		},
		Ball: BreakoutBall{
			SpawnX: 400,
			SpawnY: 400,
			Width:  30,
			Height: 30,
			Speed:  200,
			DirX:   -1,
			DirY:   1,
		},
		Blocks: BreakoutBlocks{
			Width:   100,
			Height:  40,
			Spacing: 10,
			Columns: 6,
			Rows:    5,
			Top:     60,
			Lives:   2,
			Points:  10,
		},
		Timing: BreakoutTiming{
			MaxFrameDelta: 0.25,
			HoldMillis:    400,
		},
	}
}
