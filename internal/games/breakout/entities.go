// Package breakout implements a single-ball brick breaker on a fixed
// logical canvas.
package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Paddle is the player's bat. It also carries the remaining lives.
type Paddle struct {
	Rect  core.Rect
	Color core.Color
	Lives int
	Dir   float64 // Steering applied on the last update: -1, 0 or 1
	Speed float64 // Units per second
}

// NewPaddle creates a paddle at its configured start rect.
func NewPaddle(cfg config.BreakoutPaddle) *Paddle {
	return &Paddle{
		Rect:  core.NewRect(cfg.X, cfg.Y, cfg.Width, cfg.Height),
		Color: core.ColorYellow,
		Lives: cfg.Lives,
		Speed: cfg.Speed,
	}
}

// Update moves the paddle horizontally and clamps it inside [0, screenW-width].
// A non-finite dt only re-applies the clamp.
func (p *Paddle) Update(dt, steer, screenW float64) {
	p.Dir = steer
	if finite(dt) {
		p.Rect.X += steer * dt * p.Speed
	}
	p.Rect.X = core.ClampF(p.Rect.X, 0, screenW-p.Rect.W)
}

// LoseLife takes one life away, never going below zero.
// Returns true when no lives remain.
func (p *Paddle) LoseLife() bool {
	if p.Lives > 0 {
		p.Lives--
	}
	return p.Lives == 0
}

// Ball moves diagonally at a constant per-axis speed. Collisions only ever
// flip the signs of Dir.
type Ball struct {
	Rect  core.Rect
	Color core.Color
	Dir   core.Vec2 // Unit-sign direction, each component -1 or 1
	Speed float64   // Units per second, per axis
	Spawn core.Vec2
}

// NewBall creates a ball at its spawn point.
func NewBall(cfg config.BreakoutBall) *Ball {
	return &Ball{
		Rect:  core.NewRect(cfg.SpawnX, cfg.SpawnY, cfg.Width, cfg.Height),
		Color: core.ColorWhite,
		Dir:   core.V(cfg.DirX, cfg.DirY),
		Speed: cfg.Speed,
		Spawn: core.V(cfg.SpawnX, cfg.SpawnY),
	}
}

// Update advances the ball by its velocity over dt seconds.
// A non-finite dt leaves it in place.
func (b *Ball) Update(dt float64) {
	if !finite(dt) {
		return
	}
	v := b.Velocity()
	b.Rect.X += v.X * dt
	b.Rect.Y += v.Y * dt
}

// Respawn puts the ball back at its spawn point. The direction is kept.
func (b *Ball) Respawn() {
	b.Rect.X = b.Spawn.X
	b.Rect.Y = b.Spawn.Y
}

// Velocity returns the ball's velocity in units per second.
func (b *Ball) Velocity() core.Vec2 {
	return b.Dir.Scale(b.Speed)
}

// Block is a destructible brick.
type Block struct {
	Rect  core.Rect
	Lives int
}

// Hit removes one life. Returns true only on the hit that destroys the
// block; hitting an already destroyed block does nothing.
func (b *Block) Hit() bool {
	if b.Lives <= 0 {
		return false
	}
	b.Lives--
	return b.Lives == 0
}

// Alive reports whether the block still has lives left.
func (b *Block) Alive() bool {
	return b.Lives > 0
}

// Color returns red for undamaged blocks and orange once cracked.
func (b *Block) Color() core.Color {
	if b.Lives >= 2 {
		return core.ColorRed
	}
	return core.ColorOrange
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
