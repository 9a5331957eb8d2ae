package grid

import (
	"math"
)

// Lattice is the part of the dot grid that covers the viewport.
//
// Only the visible rows are ever enumerated. Rows are tied to the page
// rather than to the screen, so scrolling by exactly Spacing gives the
// same screen positions back.
type Lattice struct {
	Cols, Rows int

	Spacing float64
	ScrollY float64

	OffsetX float64
	OffsetY float64
}

func NewLattice(width, height, scrollY, spacing float64) Lattice {
	if spacing <= 0 || width <= 0 || height <= 0 {
		return Lattice{Spacing: spacing, ScrollY: scrollY}
	}

	l := Lattice{
		Cols:    int(math.Ceil(width/spacing)) + 2,
		Rows:    int(math.Ceil(height/spacing)) + 2,
		Spacing: spacing,
		ScrollY: scrollY,
	}

	l.OffsetX = (width - f64(l.Cols-1)*spacing) / 2
	l.OffsetY = -FloorMod(scrollY, spacing)

	return l
}

// Len returns number of points evaluated per frame.
func (l Lattice) Len() int {
	return l.Cols * l.Rows
}

func (l Lattice) ColumnX(col int) float64 {
	return l.OffsetX + f64(col)*l.Spacing
}

func (l Lattice) RowY(row int) float64 {
	return l.OffsetY + f64(row)*l.Spacing
}

// Point returns nominal screen position of a point, before any warp.
func (l Lattice) Point(row, col int) (x, y float64) {
	return l.ColumnX(col), l.RowY(row)
}

func (l Lattice) PageY(screenY float64) float64 {
	return screenY + l.ScrollY
}

func f64[N ~int | ~int64 | ~float32](n N) float64 {
	return float64(n)
}
