// Package snapshot renders the dot grid off screen in to PNG files.
package snapshot

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"
	"time"

	"dotgrid/grid"
)

type Options struct {
	// logical size of the viewport
	Width, Height float64
	Scale         float64

	Scroll     float64
	PageHeight float64

	// pointer in viewport coordinates, nil leaves it off screen
	Pointer *grid.Pointer

	Frames      int
	FramePeriod time.Duration

	Background color.NRGBA

	// twinkle placement seed
	Seed uint64

	Logger *log.Logger
}

func DefaultOptions() Options {
	return Options{
		Width:       800,
		Height:      600,
		Scale:       1,
		PageHeight:  2000,
		Frames:      60,
		FramePeriod: time.Second / 60,
		Background:  color.NRGBA{255, 255, 255, 255},
		Seed:        1,
	}
}

func (o Options) Validate() error {
	var errs []error
	if o.Width <= 0 || o.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport must be positive, got %vx%v", o.Width, o.Height))
	}
	if o.Scale < 0 {
		errs = append(errs, fmt.Errorf("negative scale %v", o.Scale))
	}
	if o.Frames < 1 {
		errs = append(errs, fmt.Errorf("need at least one frame, got %d", o.Frames))
	}
	if o.FramePeriod <= 0 {
		errs = append(errs, fmt.Errorf("frame period must be positive, got %v", o.FramePeriod))
	}
	return errors.Join(errs...)
}

type Result struct {
	Surface *Surface
	Stats   grid.FrameStats
}

// Render runs the grid for opts.Frames frames and returns the surface
// holding the last one. Caller closes the surface.
func Render(cfg grid.Config, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid snapshot options: %w", err)
	}

	page := &grid.StaticPage{
		View: grid.Viewport{
			Width:  opts.Width,
			Height: opts.Height,
			Scale:  opts.Scale,
		},
		Height: opts.PageHeight,
	}
	page.ScrollTo(opts.Scroll)

	w, h := page.View.PhysicalSize()
	surface := NewSurface(w, h, opts.Background)

	scheduler := grid.NewManualScheduler()
	events := grid.NewEvents()

	gridOpts := []grid.Option{
		grid.WithRand(rand.New(rand.NewPCG(opts.Seed, opts.Seed))),
	}
	if opts.Logger != nil {
		gridOpts = append(gridOpts, grid.WithLogger(opts.Logger))
	}

	g := grid.New(cfg, page, gridOpts...)
	if !g.Mount(surface, scheduler, events) {
		surface.Close()
		return nil, errors.New("dot grid refused to mount")
	}
	defer g.Unmount()

	if opts.Pointer != nil {
		events.DispatchPointerMove(opts.Pointer.X, opts.Pointer.Y)
	}

	for i := 1; i <= opts.Frames; i++ {
		scheduler.Step(time.Duration(i) * opts.FramePeriod)
		if err := surface.Err(); err != nil {
			surface.Close()
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		if !g.Running() {
			surface.Close()
			return nil, fmt.Errorf("dot grid stopped at frame %d", i)
		}
	}

	return &Result{
		Surface: surface,
		Stats:   g.LastStats(),
	}, nil
}

// RenderPNG renders and saves the last frame to path.
func RenderPNG(cfg grid.Config, opts Options, path string) (grid.FrameStats, error) {
	res, err := Render(cfg, opts)
	if err != nil {
		return grid.FrameStats{}, err
	}
	defer res.Surface.Close()

	if err := res.Surface.Context().SavePNG(path); err != nil {
		return res.Stats, fmt.Errorf("failed to save %s: %w", path, err)
	}

	return res.Stats, nil
}
