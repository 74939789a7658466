package breakout

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

func countRects(f *core.Frame) int {
	n := 0
	for _, cmd := range f.Commands {
		if cmd.Kind == core.DrawRect {
			n++
		}
	}
	return n
}

func TestRenderMenu(t *testing.T) {
	g := New()
	f := core.NewFrame(0, 0)
	g.Render(f)

	if f.Width != 800 || f.Height != 600 {
		t.Errorf("canvas = %vx%v, expected 800x600", f.Width, f.Height)
	}
	if f.Background != core.ColorBlack {
		t.Errorf("background = %v, expected black", f.Background)
	}
	if !f.HasText("Press SPACE to start") {
		t.Errorf("menu should show the start prompt, got %q", f.Texts())
	}
	if countRects(f) != 0 {
		t.Error("menu should not draw the playfield")
	}
}

func TestRenderPlayfield(t *testing.T) {
	g := startedGame(t)
	f := core.NewFrame(0, 0)
	g.Render(f)

	// 3 walls, ball, 30 blocks, paddle.
	if got := countRects(f); got != 35 {
		t.Errorf("rect commands = %d, expected 35", got)
	}
	if !f.HasText("Score: 0") || !f.HasText("Lives: 3") {
		t.Errorf("HUD missing, got %q", f.Texts())
	}

	last := f.Commands[len(f.Commands)-1]
	if last.Kind != core.DrawRect || last.Rect != g.Paddle().Rect {
		t.Error("paddle should be drawn last")
	}

	// Rendering twice yields the same frame and leaves the game untouched.
	snap := g.Snapshot()
	before := snap.Hash()
	n := len(f.Commands)
	g.Render(f)
	if len(f.Commands) != n {
		t.Errorf("second render produced %d commands, expected %d", len(f.Commands), n)
	}
	if after := g.Snapshot(); after.Hash() != before {
		t.Error("Render must not change the game state")
	}
}

func TestRenderSkipsDestroyedBlocks(t *testing.T) {
	g := startedGame(t)
	b := firstAlive(g)
	for b.Alive() {
		b.Hit()
	}

	f := core.NewFrame(0, 0)
	g.Render(f)
	if got := countRects(f); got != 34 {
		t.Errorf("rect commands = %d, expected 34", got)
	}
}

func TestRenderEndScreens(t *testing.T) {
	tests := []struct {
		state string
		text  string
	}{
		{StateDead, "you DIED! 0 score"},
		{StateWon, "you WON! 0 score"},
		{StatePaused, "PAUSED"},
	}

	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			g := startedGame(t)
			g.state = tt.state

			f := core.NewFrame(0, 0)
			g.Render(f)
			if !f.HasText(tt.text) {
				t.Errorf("expected %q, got %q", tt.text, f.Texts())
			}
		})
	}
}

func TestRegistered(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if !registry.Exists("breakout") {
		t.Fatal("breakout should register itself")
	}

	g, err := registry.Create("breakout", registry.Settings{Difficulty: "easy"})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	bg, ok := g.(*Game)
	if !ok {
		t.Fatalf("Create() returned %T", g)
	}
	if bg.Config().Paddle.Lives != 5 {
		t.Errorf("easy preset should give 5 lives, got %d", bg.Config().Paddle.Lives)
	}

	_, err = registry.Create("breakout", registry.Settings{Difficulty: "impossible"})
	if !errors.Is(err, core.ErrInit) {
		t.Errorf("unknown difficulty should fail with ErrInit, got %v", err)
	}
}
