package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Snapshot contains the complete simulation state for replay and
// determinism checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick  uint64
	State string
	Score int
	Lives int

	PaddleX float64
	BallX   float64
	BallY   float64
	BallDX  float64
	BallDY  float64

	// Block states (board order), each block is 3 values: X, Y, Lives
	BlockData []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	blockData := make([]float64, 0, len(g.board.Blocks)*3)
	for _, b := range g.board.Blocks {
		blockData = append(blockData, b.Rect.X, b.Rect.Y, float64(b.Lives))
	}

	return Snapshot{
		Tick:      uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		State:     g.state,
		Score:     g.score,
		Lives:     g.paddle.Lives,
		PaddleX:   g.paddle.Rect.X,
		BallX:     g.ball.Rect.X,
		BallY:     g.ball.Rect.Y,
		BallDX:    g.ball.Dir.X,
		BallDY:    g.ball.Dir.Y,
		BlockData: blockData,
	}
}

// ApplySnapshot restores game state from a snapshot.
// Blocks are rebuilt with the configured size.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.state = snap.State
	g.score = snap.Score
	g.paddle.Lives = snap.Lives
	g.paddle.Rect.X = snap.PaddleX
	g.ball.Rect.X = snap.BallX
	g.ball.Rect.Y = snap.BallY
	g.ball.Dir.X = snap.BallDX
	g.ball.Dir.Y = snap.BallDY

	blocks := make([]Block, 0, len(snap.BlockData)/3)
	for i := 0; i+2 < len(snap.BlockData); i += 3 {
		blocks = append(blocks, Block{
			Rect:  g.blockRect(snap.BlockData[i], snap.BlockData[i+1]),
			Lives: int(snap.BlockData[i+2]),
		})
	}
	g.board.Blocks = blocks
}

func (g *Game) blockRect(x, y float64) core.Rect {
	return core.NewRect(x, y, g.cfg.Blocks.Width, g.cfg.Blocks.Height)
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, c := range snap.State {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallDX)
	h = h*31 + math.Float64bits(snap.BallDY)

	for _, v := range snap.BlockData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
