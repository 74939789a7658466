package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestPaddleUpdate(t *testing.T) {
	tests := []struct {
		name   string
		startX float64
		steer  float64
		dt     float64
		wantX  float64
	}{
		{"idle", 340, 0, 0.1, 340},
		{"left", 340, -1, 0.1, 300},
		{"right", 340, 1, 0.1, 380},
		{"clamp left", 10, -1, 0.1, 0},
		{"clamp right", 670, 1, 0.1, 680},
		{"far past right", 340, 1, 100, 680},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaddle(config.DefaultBreakoutConfig().Paddle)
			p.Rect.X = tt.startX
			p.Update(tt.dt, tt.steer, 800)
			if p.Rect.X != tt.wantX {
				t.Errorf("X = %v, expected %v", p.Rect.X, tt.wantX)
			}
			if p.Dir != tt.steer {
				t.Errorf("Dir = %v, expected %v", p.Dir, tt.steer)
			}
		})
	}
}

func TestNonFiniteDeltaKeepsEntitiesInBounds(t *testing.T) {
	for _, dt := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		for _, steer := range []float64{-1, 0, 1} {
			p := NewPaddle(config.DefaultBreakoutConfig().Paddle)
			p.Update(dt, steer, 800)
			if p.Rect.X != 340 {
				t.Errorf("Update(%v, %v): X = %v, expected 340", dt, steer, p.Rect.X)
			}
		}

		b := NewBall(config.DefaultBreakoutConfig().Ball)
		b.Update(dt)
		if b.Rect.X != 400 || b.Rect.Y != 400 {
			t.Errorf("ball Update(%v) moved to (%v,%v)", dt, b.Rect.X, b.Rect.Y)
		}
	}
}

func TestPaddleLoseLife(t *testing.T) {
	p := NewPaddle(config.DefaultBreakoutConfig().Paddle)
	if p.Lives != 3 {
		t.Fatalf("paddle should start with 3 lives, got %d", p.Lives)
	}

	for want := 2; want >= 0; want-- {
		dead := p.LoseLife()
		if p.Lives != want {
			t.Errorf("Lives = %d, expected %d", p.Lives, want)
		}
		if dead != (want == 0) {
			t.Errorf("LoseLife() = %v at %d lives", dead, want)
		}
	}

	if !p.LoseLife() || p.Lives != 0 {
		t.Errorf("losing a life at 0 should stay at 0 and report dead, got %d", p.Lives)
	}
}

func TestBallUpdate(t *testing.T) {
	b := NewBall(config.DefaultBreakoutConfig().Ball)
	b.Update(0.1)

	if b.Rect.X != 380 || b.Rect.Y != 420 {
		t.Errorf("ball at (%v,%v), expected (380,420)", b.Rect.X, b.Rect.Y)
	}
	if b.Velocity() != core.V(-200, 200) {
		t.Errorf("Velocity() = %+v", b.Velocity())
	}

	b.Dir = core.V(1, -1)
	b.Respawn()
	if b.Rect.X != 400 || b.Rect.Y != 400 {
		t.Errorf("respawned at (%v,%v), expected (400,400)", b.Rect.X, b.Rect.Y)
	}
	if b.Dir != core.V(1, -1) {
		t.Errorf("respawn should keep direction, got %+v", b.Dir)
	}
}

func TestBlockHit(t *testing.T) {
	b := Block{Rect: core.NewRect(0, 0, 100, 40), Lives: 2}

	if b.Color() != core.ColorRed {
		t.Errorf("fresh block should be red, got %v", b.Color())
	}
	if b.Hit() {
		t.Error("first hit should not destroy the block")
	}
	if b.Lives != 1 || b.Color() != core.ColorOrange {
		t.Errorf("after one hit: lives=%d color=%v", b.Lives, b.Color())
	}
	if !b.Hit() {
		t.Error("second hit should destroy the block")
	}
	if b.Alive() {
		t.Error("block with 0 lives should not be alive")
	}
	if b.Hit() {
		t.Error("hitting a destroyed block should not report destruction again")
	}
	if b.Lives != 0 {
		t.Errorf("lives should clamp at 0, got %d", b.Lives)
	}
}
