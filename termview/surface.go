// Package termview draws the dot grid in a terminal.
package termview

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"dotgrid/grid"
)

const (
	GlyphDot        = '·'
	GlyphHorizontal = '-'
	GlyphVertical   = '|'
	GlyphCross      = '+'
)

type Cell struct {
	Glyph rune
	Color color.NRGBA
	// coverage of the strongest mark in the cell
	Alpha float64
}

// Surface rasterizes grid drawing in to terminal cells.
// Each cell covers CellWidth x CellHeight logical pixels.
type Surface struct {
	CellWidth  float64
	CellHeight float64
	Background color.NRGBA

	cols, rows int
	cells      []Cell
}

func NewSurface(cellWidth, cellHeight float64, background color.NRGBA) *Surface {
	return &Surface{
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		Background: background,
	}
}

func (s *Surface) Size() (cols, rows int) {
	return s.cols, s.rows
}

func (s *Surface) Resize(physicalWidth, physicalHeight int, scale float64) error {
	if s.CellWidth <= 0 || s.CellHeight <= 0 {
		return fmt.Errorf("invalid cell size %vx%v", s.CellWidth, s.CellHeight)
	}
	if physicalWidth < 0 || physicalHeight < 0 {
		return errors.New("negative surface size")
	}
	if scale <= 0 {
		scale = 1
	}

	s.cols = int(math.Ceil(float64(physicalWidth) / scale / s.CellWidth))
	s.rows = int(math.Ceil(float64(physicalHeight) / scale / s.CellHeight))

	if n := s.cols * s.rows; cap(s.cells) >= n {
		s.cells = s.cells[:n]
		clear(s.cells)
	} else {
		s.cells = make([]Cell, n)
	}

	return nil
}

func (s *Surface) Clear() {
	clear(s.cells)
}

// At returns cell at column c and row r.
func (s *Surface) At(c, r int) Cell {
	if c < 0 || c >= s.cols || r < 0 || r >= s.rows {
		return Cell{}
	}
	return s.cells[r*s.cols+c]
}

func (s *Surface) cellOf(x, y float64) (int, int) {
	return int(math.Floor(x / s.CellWidth)), int(math.Floor(y / s.CellHeight))
}

func (s *Surface) FillCircle(x, y, r float64, clr color.NRGBA) {
	if clr.A == 0 {
		return
	}
	c, row := s.cellOf(x, y)
	s.mark(c, row, GlyphDot, clr)
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	if clr.A == 0 || (x0 == x1 && y0 == y1) {
		return
	}

	if math.Abs(x1-x0) >= math.Abs(y1-y0) {
		c0, r := s.cellOf(min(x0, x1), y0)
		c1, _ := s.cellOf(max(x0, x1), y0)
		for c := c0; c <= c1; c++ {
			s.mark(c, r, GlyphHorizontal, clr)
		}
	} else {
		c, r0 := s.cellOf(x0, min(y0, y1))
		_, r1 := s.cellOf(x0, max(y0, y1))
		for r := r0; r <= r1; r++ {
			s.mark(c, r, GlyphVertical, clr)
		}
	}
}

func (s *Surface) mark(c, r int, glyph rune, clr color.NRGBA) {
	if c < 0 || c >= s.cols || r < 0 || r >= s.rows {
		return
	}

	cell := &s.cells[r*s.cols+c]
	alpha := float64(clr.A) / 255

	cell.Glyph = mergeGlyph(cell.Glyph, glyph)
	if alpha >= cell.Alpha {
		cell.Alpha = alpha
		cell.Color = clr
	}
}

// mergeGlyph picks what a cell shows when two marks land on it.
// Lines hide dots and crossing lines become a cross.
func mergeGlyph(have, add rune) rune {
	switch {
	case have == 0 || have == GlyphDot:
		return add
	case add == GlyphDot:
		return have
	case have == add:
		return have
	default:
		return GlyphCross
	}
}

// blend mixes clr over bg by alpha, clr.A is ignored.
func blend(bg color.NRGBA, clr color.NRGBA, alpha float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(math.Round(grid.Lerp(float64(bg.R), float64(clr.R), alpha))),
		G: uint8(math.Round(grid.Lerp(float64(bg.G), float64(clr.G), alpha))),
		B: uint8(math.Round(grid.Lerp(float64(bg.B), float64(clr.B), alpha))),
		A: 255,
	}
}

func tcellColor(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Draw copies cells to screen. It doesn't call Show.
func (s *Surface) Draw(screen tcell.Screen) {
	bg := tcellColor(s.Background)
	empty := tcell.StyleDefault.Background(bg)

	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			cell := s.cells[r*s.cols+c]
			if cell.Glyph == 0 || cell.Alpha <= 0 {
				screen.SetContent(c, r, ' ', nil, empty)
				continue
			}

			fg := tcellColor(blend(s.Background, cell.Color, cell.Alpha))
			screen.SetContent(c, r, cell.Glyph, nil, empty.Foreground(fg))
		}
	}
}
