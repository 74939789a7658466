package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// FillRune is the glyph used for filled rectangles.
const FillRune = '█'

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorBlack:   lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Project scales a canvas frame onto a character screen.
// Rects are snapped outward to whole cells; text keeps one rune per cell
// and is positioned by its anchor.
func Project(f *core.Frame, s *core.Screen) {
	s.Clear()
	if f.Width <= 0 || f.Height <= 0 || s.Width() == 0 || s.Height() == 0 {
		return
	}

	sx := float64(s.Width()) / f.Width
	sy := float64(s.Height()) / f.Height

	for _, cmd := range f.Commands {
		switch cmd.Kind {
		case core.DrawRect:
			r := core.NewRect(cmd.Rect.X*sx, cmd.Rect.Y*sy, cmd.Rect.W*sx, cmd.Rect.H*sy)
			s.DrawRect(r, FillRune, cmd.Color)

		case core.DrawText:
			n := len([]rune(cmd.Text))
			var x, y int
			switch cmd.Anchor {
			case core.AnchorCenter:
				x = int(math.Round(cmd.Pos.X*sx)) - n/2
				y = int(math.Floor(cmd.Pos.Y * sy))
			default:
				// The baseline sits on the bottom edge of the text row.
				x = int(math.Floor(cmd.Pos.X * sx))
				y = int(math.Ceil(cmd.Pos.Y*sy)) - 1
			}
			s.DrawTextColored(x, core.Clamp(y, 0, s.Height()-1), cmd.Text, cmd.Color)
		}
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
