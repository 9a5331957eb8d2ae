package main

import (
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebv "github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface draws grid.Surface calls on to the screen image.
//
// Screen image is already in physical pixels (see App.Layout),
// so every coordinate gets multiplied by device scale.
type EbitenSurface struct {
	// only valid during Draw
	Target *eb.Image

	Background color.NRGBA
	AntiAlias  bool

	scale float64
}

func NewEbitenSurface(background color.NRGBA) *EbitenSurface {
	return &EbitenSurface{
		Background: background,
		AntiAlias:  true,
		scale:      1,
	}
}

// Resize only stores the scale. Ebiten owns the screen image
// and sizes it from what Layout returns.
func (s *EbitenSurface) Resize(physicalWidth, physicalHeight int, scale float64) error {
	s.scale = scale
	return nil
}

func (s *EbitenSurface) Clear() {
	if s.Target == nil {
		return
	}
	s.Target.Fill(s.Background)
}

func (s *EbitenSurface) FillCircle(x, y, r float64, clr color.NRGBA) {
	if s.Target == nil {
		return
	}
	DrawFilledCircle(s.Target, x*s.scale, y*s.scale, r*s.scale, clr, s.AntiAlias)
}

func (s *EbitenSurface) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	if s.Target == nil {
		return
	}
	StrokeLine(
		s.Target,
		x0*s.scale, y0*s.scale, x1*s.scale, y1*s.scale,
		width*s.scale,
		clr,
		s.AntiAlias,
	)
}

func DrawFilledRect(
	dst *eb.Image,
	x, y, w, h float64,
	clr color.Color,
	antialias bool,
) {
	ebv.DrawFilledRect(
		dst,
		f32(x), f32(y), f32(w), f32(h),
		clr,
		antialias,
	)
}

func DrawFilledCircle(
	dst *eb.Image,
	x, y, r float64,
	clr color.Color,
	antialias bool,
) {
	ebv.DrawFilledCircle(
		dst, f32(x), f32(y), f32(r), clr, antialias)
}

func StrokeLine(
	dst *eb.Image,
	x0, y0, x1, y1 float64,
	strokeWidth float64,
	clr color.Color,
	antialias bool,
) {
	ebv.StrokeLine(
		dst, f32(x0), f32(y0), f32(x1), f32(y1), f32(strokeWidth), clr, antialias)
}

func f32(f float64) float32 {
	return float32(f)
}

func f64[N ~int | ~int64 | ~float32](n N) float64 {
	return float64(n)
}
