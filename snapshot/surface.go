package snapshot

import (
	"fmt"
	"image/color"

	"github.com/gogpu/gg"
)

// Surface draws in to a gg context on the CPU.
type Surface struct {
	dc         *gg.Context
	background gg.RGBA

	// first failed fill or stroke
	err error
}

func NewSurface(width, height int, background color.NRGBA) *Surface {
	return &Surface{
		dc:         gg.NewContext(max(width, 1), max(height, 1)),
		background: gg.FromColor(background),
	}
}

func (s *Surface) Context() *gg.Context {
	return s.dc
}

func (s *Surface) Resize(physicalWidth, physicalHeight int, scale float64) error {
	if err := s.dc.Resize(physicalWidth, physicalHeight); err != nil {
		return fmt.Errorf("resizing snapshot surface: %w", err)
	}
	// resize keeps the matrix, start over so scale doesn't pile up
	s.dc.Identity()
	s.dc.Scale(scale, scale)
	return nil
}

func (s *Surface) Clear() {
	s.dc.ClearWithColor(s.background)
}

func (s *Surface) FillCircle(x, y, r float64, clr color.NRGBA) {
	if clr.A == 0 {
		return
	}
	s.dc.SetColor(clr)
	s.dc.DrawCircle(x, y, r)
	s.keepErr(s.dc.Fill(), "fill")
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	if clr.A == 0 || (x0 == x1 && y0 == y1) {
		return
	}
	s.dc.SetColor(clr)
	s.dc.SetLineWidth(width)
	s.dc.DrawLine(x0, y0, x1, y1)
	s.keepErr(s.dc.Stroke(), "stroke")
}

func (s *Surface) keepErr(err error, op string) {
	if err != nil && s.err == nil {
		s.err = fmt.Errorf("snapshot %s failed: %w", op, err)
	}
}

// Err returns the first drawing error since the surface was made.
func (s *Surface) Err() error {
	return s.err
}

func (s *Surface) Close() error {
	return s.dc.Close()
}
