package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/egg-flight/internal/assets"
	"github.com/vovakirdan/egg-flight/internal/core"
	"github.com/vovakirdan/egg-flight/internal/flight"
)

// foregrounds maps core.Color to ANSI 256-color codes.
var foregrounds = map[core.Color]string{
	core.ColorGreen:        "2",
	core.ColorBrightYellow: "11",
	core.ColorBrightWhite:  "15",
	core.ColorOrange:       "208",
	core.ColorBlack:        "0",
}

// Palette holds one lipgloss style per cell color, all sharing a background.
type Palette map[core.Color]lipgloss.Style

// NewPalette builds the styles for a background color such as "#ffaec9".
func NewPalette(background string) Palette {
	base := lipgloss.NewStyle()
	if background != "" {
		base = base.Background(lipgloss.Color(background))
	}

	p := Palette{core.ColorDefault: base}
	for c, fg := range foregrounds {
		p[c] = base.Foreground(lipgloss.Color(fg))
	}
	return p
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

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

			style, ok := p[startColor]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Glyphs used by the rasterizer.
const (
	pipeGlyph  = '█'
	floorGlyph = '▒'
	eggGlyph   = '●'
	sunGlyph   = '☼'
)

// rasterizer maps play-field pixels onto screen cells.
type rasterizer struct {
	dst    *core.Screen
	cat    *assets.Catalog
	sx, sy float64
}

// RasterizeFrame draws a frame onto dst, scaling the play field to the screen.
// Image sizes come from the catalog.
func RasterizeFrame(f flight.Frame, dst *core.Screen, cat *assets.Catalog) {
	dst.Clear()
	if f.Width <= 0 || f.Height <= 0 || dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	r := rasterizer{
		dst: dst,
		cat: cat,
		sx:  float64(dst.Width()) / float64(f.Width),
		sy:  float64(dst.Height()) / float64(f.Height),
	}
	for _, cmd := range f.Commands {
		r.draw(cmd)
	}
}

func (r *rasterizer) draw(cmd flight.DrawCommand) {
	switch cmd.Image {
	case flight.ImageSun:
		r.dst.SetColored(r.col(cmd.X)+2, r.row(cmd.Y)+1, sunGlyph, core.ColorBrightYellow)

	case flight.ImagePipe:
		w, h := r.cat.Size(cmd.Image)
		r.dst.FillRect(r.cells(cmd.X, cmd.Y, w, h), pipeGlyph, core.ColorGreen)

	case flight.ImageFloor:
		w, h := r.cat.Size(cmd.Image)
		r.dst.FillRect(r.cells(cmd.X, cmd.Y, w, h), floorGlyph, core.ColorOrange)

	case flight.ImageCharacter:
		w, h := r.cat.Size(cmd.Image)
		if cmd.Clip != nil {
			w, h = cmd.Clip.W, cmd.Clip.H
		}
		box := r.cells(cmd.X, cmd.Y, w, h)
		r.dst.FillRect(box, eggGlyph, core.ColorBrightWhite)
		r.dst.SetColored(box.Right()-1, box.Y+box.H/2, beak(cmd.Angle), core.ColorOrange)

	case flight.ImageOverlay:
		w, h := r.cat.Size(cmd.Image)
		x, y := anchorOrigin(cmd, w, h)
		box := r.cells(x, y, w, h)
		r.dst.FillRect(box, ' ', core.ColorDefault)
		r.dst.DrawBox(box)

	case flight.ImageText:
		r.text(cmd)
	}
}

// text places a string by its anchor. Text is measured in cells, not pixels.
func (r *rasterizer) text(cmd flight.DrawCommand) {
	n := utf8.RuneCountInString(cmd.Text)
	x, y := r.col(cmd.X), r.row(cmd.Y)
	switch cmd.Anchor {
	case flight.AnchorCenter:
		x -= n / 2
	case flight.AnchorTopRight:
		x -= n
	}
	x = core.Clamp(x, 0, core.Max(0, r.dst.Width()-n))
	r.dst.DrawTextColored(x, y, cmd.Text, core.ColorBlack)
}

func (r *rasterizer) col(px int) int {
	return int(float64(px) * r.sx)
}

func (r *rasterizer) row(py int) int {
	return int(float64(py) * r.sy)
}

// cells converts a pixel rectangle to the cells it covers, at least one.
func (r *rasterizer) cells(x, y, w, h int) core.Rect {
	x0, y0 := r.col(x), r.row(y)
	x1, y1 := r.col(x+w), r.row(y+h)
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

// anchorOrigin returns the top-left pixel of a w×h image drawn by cmd.
func anchorOrigin(cmd flight.DrawCommand, w, h int) (int, int) {
	switch cmd.Anchor {
	case flight.AnchorCenter:
		return cmd.X - w/2, cmd.Y - h/2
	case flight.AnchorTopRight:
		return cmd.X - w, cmd.Y
	default:
		return cmd.X, cmd.Y
	}
}

// beak picks the glyph showing which way the egg is heading.
func beak(angle float64) rune {
	switch {
	case angle < -15:
		return '↗'
	case angle > 15:
		return '↘'
	default:
		return '→'
	}
}
