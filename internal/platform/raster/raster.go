// Package raster draws core frames into images with gogpu/gg.
// It backs the headless render command, which writes PNG snapshots of
// a scripted game without a terminal.
package raster

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// palette maps frame colors to RGB.
var palette = map[core.Color]gg.RGBA{
	core.ColorDefault: gg.RGB(1, 1, 1),
	core.ColorBlack:   gg.RGB(0, 0, 0),
	core.ColorRed:     gg.RGB(1, 0, 0),
	core.ColorGreen:   gg.RGB(0, 1, 0),
	core.ColorYellow:  gg.RGB(1, 1, 0),
	core.ColorBlue:    gg.RGB(0, 0, 1),
	core.ColorWhite:   gg.RGB(1, 1, 1),
	core.ColorOrange:  gg.RGB(1, 0.5, 0),
	core.ColorGray:    gg.RGB(0.5, 0.5, 0.5),
}

// RGBA returns the raster color for c.
func RGBA(c core.Color) gg.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

// Renderer rasterizes frames. It owns a font source and caches one face
// per text size. Not safe for concurrent use.
type Renderer struct {
	source *text.FontSource
	faces  map[float64]text.Face
}

// New loads the font at fontPath, or the built-in Go Regular font when the
// path is empty.
func New(fontPath string) (*Renderer, error) {
	var (
		src *text.FontSource
		err error
	)
	if fontPath == "" {
		src, err = text.NewFontSource(goregular.TTF)
	} else {
		src, err = text.NewFontSourceFromFile(fontPath)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load font: %w", core.ErrInit, err)
	}

	return &Renderer{
		source: src,
		faces:  make(map[float64]text.Face),
	}, nil
}

// Close releases the font source.
func (r *Renderer) Close() error {
	return r.source.Close()
}

func (r *Renderer) face(size float64) text.Face {
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := r.source.Face(size)
	r.faces[size] = f
	return f
}

// draw paints f onto a fresh context sized to the frame's canvas.
// The caller must Close the returned context.
func (r *Renderer) draw(f *core.Frame) (*gg.Context, error) {
	w, h := int(math.Ceil(f.Width)), int(math.Ceil(f.Height))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("raster: empty canvas %vx%v", f.Width, f.Height)
	}

	dc := gg.NewContext(w, h)
	dc.ClearWithColor(RGBA(f.Background))

	for _, cmd := range f.Commands {
		c := RGBA(cmd.Color)
		dc.SetRGBA(c.R, c.G, c.B, c.A)

		switch cmd.Kind {
		case core.DrawRect:
			dc.DrawRectangle(cmd.Rect.X, cmd.Rect.Y, cmd.Rect.W, cmd.Rect.H)
			if err := dc.Fill(); err != nil {
				dc.Close()
				return nil, fmt.Errorf("raster: fill: %w", err)
			}
		case core.DrawText:
			dc.SetFont(r.face(cmd.Size))
			if cmd.Anchor == core.AnchorCenter {
				dc.DrawStringAnchored(cmd.Text, cmd.Pos.X, cmd.Pos.Y, 0.5, 0.5)
			} else {
				dc.DrawString(cmd.Text, cmd.Pos.X, cmd.Pos.Y)
			}
		}
	}

	return dc, nil
}

// Rasterize returns the frame as an image.
func (r *Renderer) Rasterize(f *core.Frame) (image.Image, error) {
	dc, err := r.draw(f)
	if err != nil {
		return nil, err
	}
	defer dc.Close()

	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("raster: flush: %w", err)
	}
	return dc.Image(), nil
}

// EncodePNG writes the frame to w as PNG.
func (r *Renderer) EncodePNG(w io.Writer, f *core.Frame) error {
	dc, err := r.draw(f)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.FlushGPU(); err != nil {
		return fmt.Errorf("raster: flush: %w", err)
	}
	return dc.EncodePNG(w)
}

// SavePNG writes the frame to a PNG file.
func (r *Renderer) SavePNG(path string, f *core.Frame) error {
	dc, err := r.draw(f)
	if err != nil {
		return err
	}
	defer dc.Close()

	return dc.SavePNG(path)
}
