package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/core"
	"github.com/vovakirdan/tui-life/internal/life"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

	// Grayscale ramp for trails, faintest first.
	core.ColorSmoke1: lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	core.ColorSmoke2: lipgloss.NewStyle().Foreground(lipgloss.Color("239")),
	core.ColorSmoke3: lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	core.ColorSmoke4: lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
	core.ColorSmoke5: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			run.Reset()
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

// BoardStyle holds the glyphs and colors used to draw cells.
type BoardStyle struct {
	Alive      rune
	Smoke      rune
	Grid       rune
	AliveColor core.Color
	ShowGrid   bool
}

// StyleFromConfig builds a BoardStyle from display settings.
func StyleFromConfig(d config.DisplayConfig) BoardStyle {
	return BoardStyle{
		Alive:      firstRune(d.AliveGlyph, '█'),
		Smoke:      firstRune(d.SmokeGlyph, '▒'),
		Grid:       firstRune(d.GridGlyph, '·'),
		AliveColor: d.Color(),
		ShowGrid:   d.ShowGrid,
	}
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

// DrawBoard draws the part of the board starting at board cell origin into
// the screen area. Cells outside the board leave the screen untouched.
func DrawBoard(s *core.Screen, e *life.Engine, area core.Rect, origin core.Point, style BoardStyle) {
	cells := e.Cells()
	for sy := area.Y; sy < area.Bottom(); sy++ {
		by := origin.Y + sy - area.Y
		for sx := area.X; sx < area.Right(); sx++ {
			bx := origin.X + sx - area.X
			if !e.InBounds(bx, by) {
				continue
			}
			i := e.Index(bx, by)
			switch {
			case cells[i] == 1:
				s.SetCell(sx, sy, style.Alive, style.AliveColor)
			case e.Intensity(i) > 0:
				s.SetCell(sx, sy, style.Smoke, core.ShadeFor(e.Intensity(i)))
			case style.ShowGrid:
				s.SetCell(sx, sy, style.Grid, core.ColorGray)
			default:
				s.SetCell(sx, sy, ' ', core.ColorDefault)
			}
		}
	}
}

// BoardString renders the board as plain text, one line per row, using 'O'
// for live cells, '+' for trails and '.' for empty cells.
func BoardString(e *life.Engine) string {
	var sb strings.Builder
	sb.Grow((e.Cols() + 1) * e.Rows())
	cells := e.Cells()
	for y := range e.Rows() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range e.Cols() {
			i := e.Index(x, y)
			switch {
			case cells[i] == 1:
				sb.WriteByte('O')
			case e.Intensity(i) > 0:
				sb.WriteByte('+')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
