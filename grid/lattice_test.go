package grid

import (
	"math"
	"testing"
)

func TestLatticeSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		spacing       float64
		wantCols      int
		wantRows      int
	}{
		{"400x200", 400, 200, 20, 22, 12},
		{"not a multiple", 401, 199, 20, 23, 12},
		{"tiny", 1, 1, 20, 3, 3},
		{"1920x1080", 1920, 1080, 20, 98, 56},
		{"other spacing", 400, 200, 30, 16, 9},
		{"zero width", 0, 200, 20, 0, 0},
		{"zero spacing", 400, 200, 0, 0, 0},
		{"negative spacing", 400, 200, -20, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLattice(tt.width, tt.height, 0, tt.spacing)

			if l.Cols != tt.wantCols || l.Rows != tt.wantRows {
				t.Errorf("NewLattice() = %dx%d, want %dx%d", l.Cols, l.Rows, tt.wantCols, tt.wantRows)
			}
			if l.Len() != tt.wantCols*tt.wantRows {
				t.Errorf("Len() = %d, want %d", l.Len(), tt.wantCols*tt.wantRows)
			}
		})
	}
}

func TestLatticeIsCentered(t *testing.T) {
	l := NewLattice(400, 200, 0, 20)

	left := l.ColumnX(0)
	right := l.ColumnX(l.Cols - 1)

	if !almostEqual(left+right, 400) {
		t.Errorf("first column %v and last column %v are not centered in 400", left, right)
	}
	if !almostEqual(l.OffsetX, -10) {
		t.Errorf("OffsetX = %v, want -10", l.OffsetX)
	}
}

func TestLatticeCoversViewport(t *testing.T) {
	for _, scrollY := range []float64{0, 3, 19.5, 20, 137, -7} {
		l := NewLattice(400, 200, scrollY, 20)

		top := l.RowY(0)
		bottom := l.RowY(l.Rows - 1)

		if top > 0 {
			t.Errorf("scroll %v: first row at %v leaves a gap at the top", scrollY, top)
		}
		if bottom < 200 {
			t.Errorf("scroll %v: last row at %v leaves a gap at the bottom", scrollY, bottom)
		}
	}
}

func TestLatticeScrollInvariance(t *testing.T) {
	const spacing = 20

	for _, scrollY := range []float64{0, 0.25, 7.5, 19.75, 20, 133, 1234.25, -5, -20, -33.5} {
		a := NewLattice(640, 480, scrollY, spacing)
		b := NewLattice(640, 480, scrollY+spacing, spacing)

		if a.Cols != b.Cols || a.Rows != b.Rows {
			t.Fatalf("scroll %v: size changed %dx%d -> %dx%d", scrollY, a.Cols, a.Rows, b.Cols, b.Rows)
		}

		for r := 0; r < a.Rows; r++ {
			for c := 0; c < a.Cols; c++ {
				ax, ay := a.Point(r, c)
				bx, by := b.Point(r, c)
				if math.Abs(ax-bx) > 1e-9 || math.Abs(ay-by) > 1e-9 {
					t.Fatalf("scroll %v: point (%d, %d) moved from (%v, %v) to (%v, %v)",
						scrollY, r, c, ax, ay, bx, by)
				}
			}
		}
	}
}

func TestLatticeOffsetYRange(t *testing.T) {
	for _, scrollY := range []float64{0, 1, 19, 20, 21, 399, -1, -19, -21} {
		l := NewLattice(100, 100, scrollY, 20)
		if l.OffsetY > 0 || l.OffsetY <= -20 {
			t.Errorf("scroll %v: OffsetY = %v, want in (-20, 0]", scrollY, l.OffsetY)
		}
	}
}

func TestLatticePageY(t *testing.T) {
	l := NewLattice(400, 200, 130, 20)

	// 130 mod 20 = 10, first row sits 10px above the screen
	_, y := l.Point(0, 0)
	if !almostEqual(y, -10) {
		t.Fatalf("first row y = %v, want -10", y)
	}

	if got := l.PageY(y); !almostEqual(got, 120) {
		t.Errorf("PageY(%v) = %v, want 120", y, got)
	}

	// rows land on page space multiples of the spacing
	for r := 0; r < l.Rows; r++ {
		_, y := l.Point(r, 0)
		pageY := l.PageY(y)
		if !almostEqual(FloorMod(pageY, 20), 0) {
			t.Errorf("row %d page y %v is not on the lattice", r, pageY)
		}
	}
}

func TestFloorMod(t *testing.T) {
	tests := []struct {
		x, m, want float64
	}{
		{5, 20, 5},
		{25, 20, 5},
		{-5, 20, 15},
		{-20, 20, 0},
		{0, 20, 0},
		{7.5, 2.5, 0},
	}

	for _, tt := range tests {
		if got := FloorMod(tt.x, tt.m); !almostEqual(got, tt.want) {
			t.Errorf("FloorMod(%v, %v) = %v, want %v", tt.x, tt.m, got, tt.want)
		}
	}
}
