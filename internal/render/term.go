package render

import (
	"math"

	"glimmer/internal/core"

	"github.com/gdamore/tcell/v2"
)

// Default pixel footprint of one terminal cell.
const (
	DefaultCellW = 8
	DefaultCellH = 16
)

// cellLight is the light accumulated in one terminal cell, in [0,1] per
// channel above the background.
type cellLight struct {
	r, g, b float64
}

func (c cellLight) luminance() float64 {
	return 0.2126*c.r + 0.7152*c.g + 0.0722*c.b
}

// glyph thresholds by luminance, dimmest first.
var terminalRamp = []struct {
	min   float64
	glyph rune
}{
	{0.35, '✦'},
	{0.18, '*'},
	{0.08, '·'},
	{0.03, '.'},
}

// Terminal is a drawing surface that maps pixel space onto tcell cells.
// Draw calls accumulate light per cell; Flush turns it into glyphs.
type Terminal struct {
	screen tcell.Screen
	cellW  int
	cellH  int
	grid   *core.Grid[cellLight]
	bg     core.RGB
}

// NewTerminal wraps an initialised tcell screen.
func NewTerminal(screen tcell.Screen, cellW, cellH int) *Terminal {
	if cellW <= 0 {
		cellW = DefaultCellW
	}
	if cellH <= 0 {
		cellH = DefaultCellH
	}
	t := &Terminal{screen: screen, cellW: cellW, cellH: cellH, grid: core.NewGrid[cellLight](0, 0)}
	t.Sync()
	return t
}

// Sync resizes the light buffer to the screen's current cell dimensions and
// reports whether they changed.
func (t *Terminal) Sync() bool {
	cols, rows := t.screen.Size()
	if cols == t.grid.W && rows == t.grid.H {
		return false
	}
	t.grid.Resize(cols, rows)
	return true
}

// Size reports the pixel dimensions covered by the terminal.
func (t *Terminal) Size() core.Size {
	return core.Size{W: t.grid.W * t.cellW, H: t.grid.H * t.cellH}
}

// CellToPixel converts a cell coordinate to the pixel at the cell center.
func (t *Terminal) CellToPixel(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * float64(t.cellW), (float64(row) + 0.5) * float64(t.cellH)
}

// Fade decays every cell toward the background colour c.
func (t *Terminal) Fade(c core.RGB, alpha float64) {
	t.bg = c
	if alpha <= 0 {
		return
	}
	keep := 1 - math.Min(alpha, 1)
	cells := t.grid.Cells()
	for i := range cells {
		cells[i].r *= keep
		cells[i].g *= keep
		cells[i].b *= keep
	}
}

// FillCircle lights the cell containing the disc center.
func (t *Terminal) FillCircle(x, y, r float64, c core.RGB, alpha float64) {
	t.add(x, y, c, alpha)
}

// GlowDisc lights the center cell fully and neighbours within radius with a
// linear falloff.
func (t *Terminal) GlowDisc(x, y, r float64, c core.RGB, alpha float64) {
	if r <= 0 || alpha <= 0 {
		return
	}
	centerCol := int(math.Floor(x / float64(t.cellW)))
	centerRow := int(math.Floor(y / float64(t.cellH)))
	t.add(x, y, c, alpha)
	minCol := int(math.Floor((x - r) / float64(t.cellW)))
	maxCol := int(math.Floor((x + r) / float64(t.cellW)))
	minRow := int(math.Floor((y - r) / float64(t.cellH)))
	maxRow := int(math.Floor((y + r) / float64(t.cellH)))
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if col == centerCol && row == centerRow {
				continue
			}
			cx, cy := t.CellToPixel(col, row)
			d := math.Hypot(cx-x, cy-y)
			if d >= r {
				continue
			}
			t.add(cx, cy, c, alpha*(1-d/r))
		}
	}
}

// StrokeCross lights the center cell and the cells the arms reach.
func (t *Terminal) StrokeCross(x, y, half float64, c core.RGB, alpha float64) {
	t.add(x, y, c, alpha)
	if half >= float64(t.cellW) {
		t.add(x-half, y, c, alpha*0.5)
		t.add(x+half, y, c, alpha*0.5)
	}
	if half >= float64(t.cellH) {
		t.add(x, y-half, c, alpha*0.5)
		t.add(x, y+half, c, alpha*0.5)
	}
}

func (t *Terminal) add(x, y float64, c core.RGB, alpha float64) {
	if alpha <= 0 || math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	cell := t.grid.At(int(math.Floor(x/float64(t.cellW))), int(math.Floor(y/float64(t.cellH))))
	if cell == nil {
		return
	}
	r, g, b := c.Floats()
	cell.r = math.Min(1, cell.r+r*alpha)
	cell.g = math.Min(1, cell.g+g*alpha)
	cell.b = math.Min(1, cell.b+b*alpha)
}

// Glyph returns the rune and foreground colour for the cell at (col, row).
func (t *Terminal) Glyph(col, row int) (rune, tcell.Color) {
	cell := t.grid.At(col, row)
	if cell == nil {
		return ' ', tcell.ColorDefault
	}
	lum := cell.luminance()
	glyph := ' '
	for _, step := range terminalRamp {
		if lum >= step.min {
			glyph = step.glyph
			break
		}
	}
	peak := math.Max(cell.r, math.Max(cell.g, cell.b))
	if peak <= 0 {
		return glyph, tcell.ColorDefault
	}
	// Normalise so dim cells keep their hue; the glyph carries brightness.
	return glyph, tcell.NewRGBColor(
		int32(math.Round(cell.r/peak*255)),
		int32(math.Round(cell.g/peak*255)),
		int32(math.Round(cell.b/peak*255)),
	)
}

// Flush writes the light buffer to the screen and shows it.
func (t *Terminal) Flush() {
	bg := tcell.NewRGBColor(int32(t.bg.R), int32(t.bg.G), int32(t.bg.B))
	base := tcell.StyleDefault.Background(bg)
	for row := 0; row < t.grid.H; row++ {
		for col := 0; col < t.grid.W; col++ {
			glyph, fg := t.Glyph(col, row)
			t.screen.SetContent(col, row, glyph, nil, base.Foreground(fg))
		}
	}
	t.screen.Show()
}
