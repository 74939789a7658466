package core

import "strings"

// DrawKind identifies the type of a draw command.
type DrawKind int

const (
	DrawRect DrawKind = iota // Filled rectangle
	DrawText                 // Text run
)

// Anchor describes how a text position relates to the rendered text.
type Anchor int

const (
	AnchorBaseline Anchor = iota // Pos is the left end of the baseline
	AnchorCenter                 // Pos is the center of the text extents
)

// DrawCmd is a single primitive in canvas coordinates.
type DrawCmd struct {
	Kind   DrawKind
	Rect   Rect    // DrawRect only
	Pos    Vec2    // DrawText only
	Text   string  // DrawText only
	Size   float64 // Font size in canvas units, DrawText only
	Anchor Anchor  // DrawText only
	Color  Color
}

// Frame is an ordered list of draw commands on a fixed logical canvas.
// Games fill it from their state; hosts project it onto their surface.
type Frame struct {
	Width      float64
	Height     float64
	Background Color
	Commands   []DrawCmd
}

// NewFrame creates an empty frame for a canvas of the given size.
func NewFrame(width, height float64) *Frame {
	return &Frame{
		Width:    width,
		Height:   height,
		Commands: make([]DrawCmd, 0, 64),
	}
}

// Reset drops all commands and sets the clear color.
func (f *Frame) Reset(bg Color) {
	f.Background = bg
	f.Commands = f.Commands[:0]
}

// FillRect appends a filled rectangle.
func (f *Frame) FillRect(r Rect, c Color) {
	f.Commands = append(f.Commands, DrawCmd{Kind: DrawRect, Rect: r, Color: c})
}

// Text appends a text run whose baseline starts at (x, y).
func (f *Frame) Text(s string, x, y, size float64, c Color) {
	f.Commands = append(f.Commands, DrawCmd{
		Kind:   DrawText,
		Pos:    V(x, y),
		Text:   s,
		Size:   size,
		Anchor: AnchorBaseline,
		Color:  c,
	})
}

// CenteredText appends a text run whose extents are centered on (x, y).
func (f *Frame) CenteredText(s string, x, y, size float64, c Color) {
	f.Commands = append(f.Commands, DrawCmd{
		Kind:   DrawText,
		Pos:    V(x, y),
		Text:   s,
		Size:   size,
		Anchor: AnchorCenter,
		Color:  c,
	})
}

// TitleText appends a text run centered on the canvas.
func (f *Frame) TitleText(s string, size float64, c Color) {
	f.CenteredText(s, f.Width*0.5, f.Height*0.5, size, c)
}

// Texts returns the text of every text command in draw order.
func (f *Frame) Texts() []string {
	var out []string
	for _, cmd := range f.Commands {
		if cmd.Kind == DrawText {
			out = append(out, cmd.Text)
		}
	}
	return out
}

// HasText reports whether any text command contains substr.
func (f *Frame) HasText(substr string) bool {
	for _, t := range f.Texts() {
		if strings.Contains(t, substr) {
			return true
		}
	}
	return false
}
