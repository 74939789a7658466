package breakout

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Game phases
const (
	StateMenu    = "menu"    // Title screen, waiting for confirm
	StatePlaying = "playing" // Ball in play
	StatePaused  = "paused"  // Simulation frozen
	StateDead    = "dead"    // No lives left
	StateWon     = "won"     // Every block destroyed
)

// Game implements the Breakout game logic.
type Game struct {
	cfg config.BreakoutConfig

	paddle *Paddle
	ball   *Ball
	board  *Board

	state     string
	score     int
	tickCount int
}

func init() {
	registry.Register("breakout", "Breakout", func(s registry.Settings) (registry.Game, error) {
		cfg, err := config.Load(s.ConfigPath, s.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", core.ErrInit, err)
		}
		return NewWithConfig(cfg), nil
	})
}

// New creates a game with the built-in default configuration.
func New() *Game {
	return NewWithConfig(config.DefaultBreakoutConfig())
}

// NewWithConfig creates a game in the menu state. The config is expected to
// be valid (see config.BreakoutConfig.Validate).
func NewWithConfig(cfg config.BreakoutConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.BreakoutConfig {
	return g.cfg
}

// InputHold returns how long a steering key counts as held in hosts that
// only see key presses.
func (g *Game) InputHold() time.Duration {
	return time.Duration(g.cfg.Timing.HoldMillis) * time.Millisecond
}

// Reset lays out a fresh board and returns to the menu.
func (g *Game) Reset() {
	g.paddle = NewPaddle(g.cfg.Paddle)
	g.ball = NewBall(g.cfg.Ball)
	g.board = NewBoard(g.cfg.Blocks, g.cfg.Screen.Width)
	g.state = StateMenu
	g.score = 0
	g.tickCount = 0
}

// Step advances the game by dt seconds.
func (g *Game) Step(dt float64, in core.InputFrame) core.StepResult {
	var events []core.Event

	switch g.state {
	case StateMenu:
		if in.Has(core.ActionConfirm) {
			events = g.setState(events, StatePlaying)
		}

	case StatePaused:
		if in.Has(core.ActionPause) {
			events = g.setState(events, StatePlaying)
		}

	case StateDead, StateWon:
		if in.Has(core.ActionRestart) {
			g.Reset()
			events = g.setState(events, StateMenu)
			break
		}
		if in.Has(core.ActionConfirm) {
			return core.StepResult{State: g.State(), Events: events, Exit: true}
		}

	case StatePlaying:
		if in.Has(core.ActionPause) {
			events = g.setState(events, StatePaused)
			break
		}
		g.tickCount++
		events = g.play(g.clampDelta(dt), in.Steer(), events)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// play runs one frame of the Playing pipeline.
func (g *Game) play(dt, steer float64, events []core.Event) []core.Event {
	for _, wall := range g.walls() {
		core.Resolve(&g.ball.Rect, &g.ball.Dir, wall)
	}
	core.Resolve(&g.ball.Rect, &g.ball.Dir, g.paddle.Rect)

	g.ball.Update(dt)

	g.board.Prune()
	for i := range g.board.Blocks {
		block := &g.board.Blocks[i]
		if !core.Resolve(&g.ball.Rect, &g.ball.Dir, block.Rect) {
			continue
		}
		events = append(events, core.Event{Kind: core.EventBlockHit, Value: block.Lives - 1})
		if block.Hit() {
			g.score += g.cfg.Blocks.Points
			events = append(events, core.Event{Kind: core.EventBlockDestroyed, Value: g.cfg.Blocks.Points})
		}
	}

	if g.board.Remaining() == 0 {
		return g.setState(events, StateWon)
	}

	if g.ball.Rect.Y > g.cfg.Screen.Height {
		dead := g.paddle.LoseLife()
		events = append(events, core.Event{Kind: core.EventLifeLost, Value: g.paddle.Lives})
		if dead {
			events = g.setState(events, StateDead)
		}
		g.ball.Respawn()
	}

	g.paddle.Update(dt, steer, g.cfg.Screen.Width)
	return events
}

// walls returns the left, top and right walls. They lie just outside the
// canvas; the bottom is open.
func (g *Game) walls() [3]core.Rect {
	w, h, t := g.cfg.Screen.Width, g.cfg.Screen.Height, g.cfg.Screen.WallThickness
	return [3]core.Rect{
		core.NewRect(-t, 0, t, h),
		core.NewRect(0, -t, w, t),
		core.NewRect(w, 0, t, h),
	}
}

// clampDelta bounds a host-measured frame time. NaN, infinite and negative
// values freeze the frame.
func (g *Game) clampDelta(dt float64) float64 {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		return 0
	}
	if limit := g.cfg.Timing.MaxFrameDelta; limit > 0 && dt > limit {
		return limit
	}
	return dt
}

func (g *Game) setState(events []core.Event, state string) []core.Event {
	g.state = state
	return append(events, core.Event{Kind: core.EventPhaseChanged, Phase: state})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:    g.state,
		Score:    g.score,
		Lives:    g.paddle.Lives,
		GameOver: g.state == StateDead || g.state == StateWon,
		Won:      g.state == StateWon,
		Paused:   g.state == StatePaused,
	}
}

// Paddle returns the paddle.
func (g *Game) Paddle() *Paddle { return g.paddle }

// Ball returns the ball.
func (g *Game) Ball() *Ball { return g.ball }

// Board returns the block grid.
func (g *Game) Board() *Board { return g.board }
