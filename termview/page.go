package termview

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"dotgrid/grid"
)

// Page is a grid.Page whose scroll eases toward where the user scrolled.
type Page struct {
	View   grid.Viewport
	Height float64
	Scroll float64

	target   float64
	velocity float64
	spring   harmonica.Spring
}

func NewPage(height float64, fps int) *Page {
	return &Page{
		Height: height,
		// critically damped, never scrolls past target
		spring: harmonica.NewSpring(harmonica.FPS(max(fps, 1)), 8.0, 1.0),
	}
}

func (p *Page) Viewport() grid.Viewport { return p.View }
func (p *Page) ScrollY() float64        { return p.Scroll }
func (p *Page) PageHeight() float64     { return p.Height }

func (p *Page) Target() float64 {
	return p.target
}

func (p *Page) maxScroll() float64 {
	return max(p.Height-p.View.Height, 0)
}

func (p *Page) ScrollBy(dy float64) {
	p.ScrollTo(p.target + dy)
}

func (p *Page) ScrollTo(y float64) {
	p.target = grid.Clamp(y, 0, p.maxScroll())
}

// Step moves scroll one frame toward target.
func (p *Page) Step() {
	if p.Scroll == p.target && p.velocity == 0 {
		return
	}

	p.Scroll, p.velocity = p.spring.Update(p.Scroll, p.velocity, p.target)

	if math.Abs(p.Scroll-p.target) < 0.05 && math.Abs(p.velocity) < 0.05 {
		p.Scroll = p.target
		p.velocity = 0
	}
	p.Scroll = grid.Clamp(p.Scroll, 0, p.maxScroll())
}

// Settle jumps straight to target.
func (p *Page) Settle() {
	p.Scroll = p.target
	p.velocity = 0
}

// Refit clamps scroll after viewport changed.
func (p *Page) Refit() {
	p.ScrollTo(p.target)
	p.Scroll = grid.Clamp(p.Scroll, 0, p.maxScroll())
}
