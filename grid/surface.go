package grid

import (
	"image/color"
	"math"
)

// Surface is a drawing context. Everything is in logical pixels.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64, clr color.NRGBA)
	StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA)
}

// Resizer is implemented by surfaces that own their backing store.
//
// Resize sizes it to physical pixels and makes later drawing
// commands in logical pixels land scaled by scale.
type Resizer interface {
	Resize(physicalWidth, physicalHeight int, scale float64) error
}

type Viewport struct {
	// logical size
	Width, Height float64
	// device pixel ratio
	Scale float64
}

func (vp Viewport) DeviceScale() float64 {
	if vp.Scale <= 0 {
		return 1
	}
	return vp.Scale
}

// PhysicalSize returns size of the backing store in device pixels.
func (vp Viewport) PhysicalSize() (int, int) {
	s := vp.DeviceScale()
	w := int(math.Ceil(max(vp.Width, 0) * s))
	h := int(math.Ceil(max(vp.Height, 0) * s))
	return w, h
}

// Page is the document the grid is drawn behind.
type Page interface {
	Viewport() Viewport
	ScrollY() float64
	// PageHeight is the full scrollable height, not the viewport height.
	PageHeight() float64
}

// StaticPage is a Page that never changes by itself.
type StaticPage struct {
	View   Viewport
	Scroll float64
	Height float64
}

func (p *StaticPage) Viewport() Viewport  { return p.View }
func (p *StaticPage) ScrollY() float64    { return p.Scroll }
func (p *StaticPage) PageHeight() float64 { return p.Height }

// ScrollBy scrolls and clamps to the document like a browser does.
func (p *StaticPage) ScrollBy(dy float64) {
	p.ScrollTo(p.Scroll + dy)
}

func (p *StaticPage) ScrollTo(y float64) {
	maxScroll := max(p.Height-p.View.Height, 0)
	p.Scroll = Clamp(y, 0, maxScroll)
}
