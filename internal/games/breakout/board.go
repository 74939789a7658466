package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Board holds the blocks still in play, in row-major order.
type Board struct {
	Blocks []Block
}

// NewBoard lays out a full grid of blocks, horizontally centered on a
// canvas of the given width.
func NewBoard(cfg config.BreakoutBlocks, screenW float64) *Board {
	originX := (screenW - cfg.BoardWidth()) / 2

	blocks := make([]Block, 0, cfg.Count())
	for row := range cfg.Rows {
		for col := range cfg.Columns {
			blocks = append(blocks, Block{
				Rect: core.NewRect(
					originX+float64(col)*cfg.CellWidth(),
					cfg.Top+float64(row)*cfg.CellHeight(),
					cfg.Width,
					cfg.Height,
				),
				Lives: cfg.Lives,
			})
		}
	}
	return &Board{Blocks: blocks}
}

// Prune drops destroyed blocks, keeping the order of the rest.
// Returns how many were removed.
func (b *Board) Prune() int {
	kept := b.Blocks[:0]
	for _, block := range b.Blocks {
		if block.Alive() {
			kept = append(kept, block)
		}
	}
	removed := len(b.Blocks) - len(kept)
	b.Blocks = kept
	return removed
}

// Remaining returns the number of blocks that still have lives.
func (b *Board) Remaining() int {
	count := 0
	for i := range b.Blocks {
		if b.Blocks[i].Alive() {
			count++
		}
	}
	return count
}

// Len returns the number of blocks held, including ones destroyed this
// frame and not yet pruned.
func (b *Board) Len() int {
	return len(b.Blocks)
}
