package raster

import (
	"bytes"
	"errors"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New("")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestRasterizeRect(t *testing.T) {
	r := newTestRenderer(t)

	f := core.NewFrame(800, 600)
	f.Reset(core.ColorBlack)
	f.FillRect(core.NewRect(100, 100, 50, 50), core.ColorRed)

	img, err := r.Rasterize(f)
	if err != nil {
		t.Fatalf("Rasterize() failed: %v", err)
	}

	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Fatalf("bounds = %v, expected 800x600", b)
	}

	tests := []struct {
		name    string
		x, y    int
		r, g, b uint32
	}{
		{"inside rect", 125, 125, 0xffff, 0, 0},
		{"background", 10, 10, 0, 0, 0},
		{"right of rect", 160, 125, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, _ := img.At(tt.x, tt.y).RGBA()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("pixel (%d,%d) = (%#x,%#x,%#x), expected (%#x,%#x,%#x)",
					tt.x, tt.y, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestRasterizeText(t *testing.T) {
	r := newTestRenderer(t)

	f := core.NewFrame(200, 100)
	f.Reset(core.ColorBlack)
	f.CenteredText("WON", 100, 50, 40, core.ColorWhite)

	img, err := r.Rasterize(f)
	if err != nil {
		t.Fatalf("Rasterize() failed: %v", err)
	}

	lit := 0
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			if r, _, _, _ := img.At(x, y).RGBA(); r > 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("text should light up some pixels")
	}
}

func TestEncodePNG(t *testing.T) {
	r := newTestRenderer(t)

	f := core.NewFrame(800, 600)
	f.Reset(core.ColorBlack)

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf, f); err != nil {
		t.Fatalf("EncodePNG() failed: %v", err)
	}

	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("DecodeConfig() failed: %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("png size = %dx%d, expected 800x600", cfg.Width, cfg.Height)
	}
}

func TestEmptyCanvas(t *testing.T) {
	r := newTestRenderer(t)

	if _, err := r.Rasterize(core.NewFrame(0, 0)); err == nil {
		t.Error("expected error for an empty canvas")
	}
}

func TestNewMissingFont(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.ttf"))
	if !errors.Is(err, core.ErrInit) {
		t.Errorf("expected ErrInit, got %v", err)
	}
}
