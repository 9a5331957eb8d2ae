package grid

import (
	"fmt"
	"log"
	"math/rand/v2"
	"runtime/debug"
	"time"

	"dotgrid/misc"
)

type FrameStats struct {
	Now time.Duration

	// lattice points looked at, including faded ones
	Evaluated int
	Dots      int

	LiveTwinkles  int
	DrawnTwinkles int
}

type Option func(g *DotGrid)

// WithRand makes twinkle placement deterministic.
func WithRand(rng *rand.Rand) Option {
	return func(g *DotGrid) {
		g.rng = rng
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(g *DotGrid) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// DotGrid draws an animated dot lattice behind a page.
//
// Every piece of state lives here, so two grids never share
// pointer, frame or twinkles. Nothing is safe for concurrent use,
// host events and frames must come from the same goroutine.
type DotGrid struct {
	Config Config

	page Page

	surface   Surface
	scheduler FrameScheduler
	events    EventTarget

	viewport Viewport
	pointer  Pointer

	twinkles *TwinkleEmitter

	mounted   bool
	running   bool
	frameID   FrameID
	listeners []ListenerID

	lastStats FrameStats

	rng    *rand.Rand
	logger *log.Logger
}

func New(cfg Config, page Page, opts ...Option) *DotGrid {
	g := new(DotGrid)

	g.Config = cfg
	g.page = page
	g.pointer = OffscreenPointer()
	g.logger = misc.WarnLogger

	for _, opt := range opts {
		opt(g)
	}

	if cfg.Twinkle.Enabled {
		g.twinkles = NewTwinkleEmitter(cfg.Twinkle, g.rng)
	}

	return g
}

// Mount starts drawing on surface.
//
// A nil surface means the host couldn't get a drawing context.
// Mount then does nothing and returns false; it's only decoration.
func (g *DotGrid) Mount(
	surface Surface,
	scheduler FrameScheduler,
	events EventTarget,
) bool {
	if g.mounted {
		g.Unmount()
	}

	switch {
	case surface == nil:
		g.logger.Print("no drawing surface, dot grid disabled")
		return false
	case scheduler == nil:
		g.logger.Print("no frame scheduler, dot grid disabled")
		return false
	case g.page == nil:
		g.logger.Print("no page, dot grid disabled")
		return false
	}

	g.surface = surface
	g.scheduler = scheduler
	g.events = events

	// every mount starts over like a fresh page load
	g.pointer = OffscreenPointer()
	if g.twinkles != nil {
		g.twinkles.Reset()
	}

	g.resize()

	if events != nil {
		g.listeners = append(g.listeners,
			events.AddResizeListener(g.resize),
			events.AddPointerListener(g.movePointer),
		)
	}

	g.mounted = true
	g.running = true
	g.frameID = scheduler.RequestFrame(g.frame)

	return true
}

// Unmount cancels the pending frame and removes every listener.
// Calling it more than once is fine.
func (g *DotGrid) Unmount() {
	if !g.mounted {
		return
	}

	g.mounted = false
	g.running = false

	g.scheduler.CancelFrame(g.frameID)
	g.frameID = 0

	if g.events != nil {
		for _, id := range g.listeners {
			g.events.RemoveListener(id)
		}
	}
	g.listeners = g.listeners[:0]

	g.surface = nil
	g.scheduler = nil
	g.events = nil
}

func (g *DotGrid) Mounted() bool {
	return g.mounted
}

// Running reports whether a frame is scheduled.
// It goes false after a frame panics.
func (g *DotGrid) Running() bool {
	return g.running
}

func (g *DotGrid) Pointer() Pointer {
	return g.pointer
}

func (g *DotGrid) Viewport() Viewport {
	return g.viewport
}

func (g *DotGrid) LastStats() FrameStats {
	return g.lastStats
}

func (g *DotGrid) LiveTwinkles() []Twinkle {
	if g.twinkles == nil {
		return nil
	}
	return g.twinkles.Live()
}

func (g *DotGrid) TwinklesEnabled() bool {
	return g.twinkles != nil
}

// SetTwinkles turns twinkle layer on or off.
// Turning it off drops every live twinkle.
func (g *DotGrid) SetTwinkles(on bool) {
	g.Config.Twinkle.Enabled = on
	if on && g.twinkles == nil {
		g.twinkles = NewTwinkleEmitter(g.Config.Twinkle, g.rng)
	} else if !on {
		g.twinkles = nil
	}
}

func (g *DotGrid) movePointer(x, y float64) {
	g.pointer = Pointer{X: x, Y: y}
}

func (g *DotGrid) resize() {
	g.viewport = g.page.Viewport()

	if r, ok := g.surface.(Resizer); ok {
		w, h := g.viewport.PhysicalSize()
		if err := r.Resize(w, h, g.viewport.DeviceScale()); err != nil {
			g.logger.Printf("failed to resize surface to %dx%d: %v", w, h, err)
		}
	}
}

func (g *DotGrid) frame(now time.Duration) {
	if !g.mounted {
		return
	}

	if err := g.drawFrameSafe(now); err != nil {
		g.running = false
		g.frameID = 0
		g.logger.Printf("dot grid stopped: %v", err)
		return
	}

	// unmounted by something during the frame
	if !g.mounted {
		return
	}

	g.frameID = g.scheduler.RequestFrame(g.frame)
}

func (g *DotGrid) drawFrameSafe(now time.Duration) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("frame at %v panicked: %v\n%s", now, r, debug.Stack())
		}
	}()

	g.DrawFrame(now)

	return nil
}

// DrawFrame draws one frame at timestamp now.
//
// Hosts normally don't call this, frames come from the scheduler.
// It's exported so a frame can be driven by hand.
func (g *DotGrid) DrawFrame(now time.Duration) FrameStats {
	stats := FrameStats{Now: now}

	if g.surface == nil {
		return stats
	}

	cfg := &g.Config
	dst := g.surface

	w, h := g.viewport.Width, g.viewport.Height
	scrollY := g.page.ScrollY()

	dst.Clear()

	lattice := NewLattice(w, h, scrollY, cfg.Spacing)

	if g.twinkles != nil {
		g.twinkles.Update(now, lattice, g.page.PageHeight)
	}

	mx, my := g.pointer.X, g.pointer.Y

	for r := 0; r < lattice.Rows; r++ {
		for c := 0; c < lattice.Cols; c++ {
			stats.Evaluated++

			x, y := lattice.Point(r, c)

			heroAlpha := HeroAlpha(lattice.PageY(y), cfg.HeroFadeHeight)
			if heroAlpha <= 0 {
				continue
			}

			x, y = Warp(x, y, mx, my, cfg.WarpRadius, cfg.WarpStrength)

			dst.FillCircle(x, y, cfg.DotRadius, ColorFade(cfg.DotColor, cfg.DotOpacity*heroAlpha))
			stats.Dots++
		}
	}

	if g.twinkles != nil {
		stats.LiveTwinkles = g.twinkles.Len()
		stats.DrawnTwinkles = g.twinkles.Draw(
			dst, now, w, h, scrollY, cfg.HeroFadeHeight, cfg.DotRadius)
	}

	g.lastStats = stats

	return stats
}
