package grid

import (
	"image/color"
	"io"
	"log"
	"math"
)

type recordedCircle struct {
	X, Y, R float64
	Clr     color.NRGBA
}

type recordedLine struct {
	X0, Y0, X1, Y1 float64
	Width          float64
	Clr            color.NRGBA
}

type recordedResize struct {
	W, H  int
	Scale float64
}

// recordingSurface remembers every draw call of the last frame.
type recordingSurface struct {
	clears  int
	circles []recordedCircle
	lines   []recordedLine
	resizes []recordedResize

	panicOnFill bool
}

func (s *recordingSurface) Clear() {
	s.clears++
	s.circles = s.circles[:0]
	s.lines = s.lines[:0]
}

func (s *recordingSurface) FillCircle(x, y, r float64, clr color.NRGBA) {
	if s.panicOnFill {
		panic("fill failed")
	}
	s.circles = append(s.circles, recordedCircle{x, y, r, clr})
}

func (s *recordingSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	s.lines = append(s.lines, recordedLine{x0, y0, x1, y1, width, clr})
}

func (s *recordingSurface) Resize(w, h int, scale float64) error {
	s.resizes = append(s.resizes, recordedResize{w, h, scale})
	return nil
}

func (s *recordingSurface) hasCircleAt(x, y float64) bool {
	for _, c := range s.circles {
		if almostEqual(c.X, x) && almostEqual(c.Y, y) {
			return true
		}
	}
	return false
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
