package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Text sizes in canvas units.
const (
	HUDTextSize   = 50
	TitleTextSize = 50
	HintTextSize  = 24
)

// Render draws the current game state into dst. The frame is reset first.
func (g *Game) Render(dst *core.Frame) {
	dst.Width = g.cfg.Screen.Width
	dst.Height = g.cfg.Screen.Height
	dst.Reset(core.ColorBlack)

	switch g.state {
	case StateMenu:
		dst.TitleText("Press SPACE to start", TitleTextSize, core.ColorWhite)
		g.renderHint(dst, "left/right: move   p: pause   q: quit")
	case StatePlaying, StatePaused:
		g.renderPlayfield(dst)
		if g.state == StatePaused {
			dst.TitleText("PAUSED", TitleTextSize, core.ColorWhite)
			g.renderHint(dst, "p: resume")
		}
	case StateDead:
		dst.TitleText(fmt.Sprintf("you DIED! %d score", g.score), TitleTextSize, core.ColorWhite)
		g.renderHint(dst, "space: exit   r: restart")
	case StateWon:
		dst.TitleText(fmt.Sprintf("you WON! %d score", g.score), TitleTextSize, core.ColorWhite)
		g.renderHint(dst, "space: exit   r: restart")
	}
}

// renderPlayfield draws walls, HUD, ball, blocks and paddle in that order.
func (g *Game) renderPlayfield(dst *core.Frame) {
	for _, wall := range g.walls() {
		dst.FillRect(wall, core.ColorGray)
	}

	w := g.cfg.Screen.Width
	dst.Text(fmt.Sprintf("Score: %d", g.score), w*0.5, 50, HUDTextSize, core.ColorWhite)
	dst.Text(fmt.Sprintf("Lives: %d", g.paddle.Lives), w*0.25, 50, HUDTextSize, core.ColorWhite)

	dst.FillRect(g.ball.Rect, g.ball.Color)
	for i := range g.board.Blocks {
		block := &g.board.Blocks[i]
		if !block.Alive() {
			continue
		}
		dst.FillRect(block.Rect, block.Color())
	}
	dst.FillRect(g.paddle.Rect, g.paddle.Color)
}

func (g *Game) renderHint(dst *core.Frame, hint string) {
	dst.CenteredText(hint, dst.Width*0.5, dst.Height*0.5+TitleTextSize, HintTextSize, core.ColorGray)
}
