package termview

import (
	"context"
	"image/color"
	"log"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"

	"dotgrid/grid"
	"dotgrid/misc"
)

type Options struct {
	// logical pixels per terminal cell
	CellWidth  float64
	CellHeight float64

	Background color.NRGBA
	PageHeight float64

	FPS int

	// how far one wheel notch or arrow key scrolls
	ScrollStep float64

	Rand   *rand.Rand
	Logger *log.Logger
}

func DefaultOptions() Options {
	return Options{
		CellWidth:  10,
		CellHeight: 20,
		Background: color.NRGBA{0, 0, 0, 255},
		PageHeight: 4000,
		FPS:        60,
		ScrollStep: 40,
	}
}

// App runs a dot grid on a tcell screen.
//
// Everything but the event poll runs on the goroutine calling Run.
type App struct {
	screen tcell.Screen
	opts   Options

	Page      *Page
	Surface   *Surface
	Scheduler *grid.ManualScheduler
	Events    *grid.Events
	Grid      *grid.DotGrid

	pointerCol, pointerRow int
	seenPointer            bool

	start time.Time
}

func NewApp(screen tcell.Screen, cfg grid.Config, opts Options) *App {
	a := &App{
		screen:    screen,
		opts:      opts,
		Page:      NewPage(opts.PageHeight, opts.FPS),
		Surface:   NewSurface(opts.CellWidth, opts.CellHeight, opts.Background),
		Scheduler: grid.NewManualScheduler(),
		Events:    grid.NewEvents(),
	}

	logger := opts.Logger
	if logger == nil {
		logger = misc.WarnLogger
	}
	gridOpts := []grid.Option{grid.WithLogger(logger)}
	if opts.Rand != nil {
		gridOpts = append(gridOpts, grid.WithRand(opts.Rand))
	}

	a.Grid = grid.New(cfg, a.Page, gridOpts...)

	a.fitScreen()
	a.Grid.Mount(a.Surface, a.Scheduler, a.Events)

	return a
}

func (a *App) fitScreen() {
	cols, rows := a.screen.Size()
	a.Page.View = grid.Viewport{
		Width:  float64(cols) * a.opts.CellWidth,
		Height: float64(rows) * a.opts.CellHeight,
		Scale:  1,
	}
	a.Page.Refit()
}

// HandleEvent applies one screen event.
// It returns false when the user asked to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev.Key(), ev.Rune())

	case *tcell.EventMouse:
		a.handleMouse(ev.Position())

		buttons := ev.Buttons()
		if buttons&tcell.WheelUp != 0 {
			a.Page.ScrollBy(-a.opts.ScrollStep)
		}
		if buttons&tcell.WheelDown != 0 {
			a.Page.ScrollBy(a.opts.ScrollStep)
		}

	case *tcell.EventResize:
		a.fitScreen()
		a.Events.DispatchResize()
		a.screen.Sync()
	}

	return true
}

func (a *App) handleKey(key tcell.Key, r rune) bool {
	view := a.Page.View.Height

	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.Page.ScrollBy(-a.opts.ScrollStep)
	case tcell.KeyDown:
		a.Page.ScrollBy(a.opts.ScrollStep)
	case tcell.KeyPgUp:
		a.Page.ScrollBy(-view)
	case tcell.KeyPgDn:
		a.Page.ScrollBy(view)
	case tcell.KeyHome:
		a.Page.ScrollTo(0)
	case tcell.KeyEnd:
		a.Page.ScrollTo(a.Page.Height)
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case 't':
			a.Grid.SetTwinkles(!a.Grid.TwinklesEnabled())
		case ' ':
			a.Page.ScrollBy(view)
		}
	}

	return true
}

// handleMouse turns cell position in to a pointer at the cell center.
func (a *App) handleMouse(col, row int) {
	if a.seenPointer && col == a.pointerCol && row == a.pointerRow {
		return
	}
	a.seenPointer = true
	a.pointerCol, a.pointerRow = col, row

	x := (float64(col) + 0.5) * a.opts.CellWidth
	y := (float64(row) + 0.5) * a.opts.CellHeight
	a.Events.DispatchPointerMove(x, y)
}

// Tick advances one frame at now and shows it.
func (a *App) Tick(now time.Duration) {
	a.Page.Step()
	if a.Scheduler.Step(now) > 0 {
		a.Surface.Draw(a.screen)
		a.screen.Show()
	}
}

// Run ticks at opts.FPS until ctx is done or user quits.
func (a *App) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(max(a.opts.FPS, 1)))
	defer ticker.Stop()

	a.start = time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !a.HandleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			a.Tick(time.Since(a.start))
		}
	}
}

func (a *App) Close() {
	a.Grid.Unmount()
}
