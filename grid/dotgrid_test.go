package grid

import (
	"bytes"
	"log"
	"math/rand/v2"
	"strings"
	"testing"
	"time"
)

const frameStep = time.Second / 60

type testRig struct {
	page    *StaticPage
	surface *recordingSurface
	sched   *ManualScheduler
	events  *Events
	grid    *DotGrid
}

func newTestRig(t *testing.T, cfg Config) *testRig {
	t.Helper()

	r := &testRig{
		page: &StaticPage{
			View:   Viewport{Width: 400, Height: 200, Scale: 2},
			Scroll: 500,
			Height: 3000,
		},
		surface: &recordingSurface{},
		sched:   NewManualScheduler(),
		events:  NewEvents(),
	}

	r.grid = New(cfg, r.page,
		WithRand(rand.New(rand.NewPCG(11, 12))),
		WithLogger(discardLogger()),
	)

	return r
}

func (r *testRig) mount(t *testing.T) {
	t.Helper()
	if !r.grid.Mount(r.surface, r.sched, r.events) {
		t.Fatal("Mount() = false")
	}
}

func noTwinkles() Config {
	cfg := DefaultConfig()
	cfg.Twinkle.Enabled = false
	return cfg
}

func TestDotGridEvaluatesWholeLattice(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		pageHeight    float64
		want          int
	}{
		{"400x200", 400, 200, 3000, 264},
		{"400x200 long page", 400, 200, 300000, 264},
		{"1280x720", 1280, 720, 3000, 66 * 38},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRig(t, DefaultConfig())
			r.page.View = Viewport{Width: tt.width, Height: tt.height, Scale: 1}
			r.page.Height = tt.pageHeight
			r.mount(t)

			for i := range 5 {
				stats := r.grid.DrawFrame(time.Duration(i) * frameStep)
				if stats.Evaluated != tt.want {
					t.Fatalf("Evaluated = %d, want %d", stats.Evaluated, tt.want)
				}
			}
		})
	}
}

func TestDotGridHeroFade(t *testing.T) {
	r := newTestRig(t, noTwinkles())
	r.page.Scroll = 0
	r.mount(t)

	stats := r.grid.DrawFrame(0)

	if stats.Dots >= stats.Evaluated {
		t.Fatalf("every dot was drawn at the top of the page, %d of %d", stats.Dots, stats.Evaluated)
	}

	for _, c := range r.surface.circles {
		if c.Y <= 125 {
			t.Fatalf("dot drawn at page y %v, inside the hero", c.Y)
		}
		if c.Clr.A == 0 {
			t.Fatalf("fully transparent dot drawn at (%v, %v)", c.X, c.Y)
		}
	}

	// scrolled past the hero every dot shows
	r.page.Scroll = 1000
	stats = r.grid.DrawFrame(frameStep)
	if stats.Dots != stats.Evaluated {
		t.Errorf("Dots = %d, want all %d below the hero", stats.Dots, stats.Evaluated)
	}

	cfg := r.grid.Config
	want := ColorFade(cfg.DotColor, cfg.DotOpacity)
	if got := r.surface.circles[0].Clr; got != want {
		t.Errorf("dot color = %v, want %v", got, want)
	}
}

func TestDotGridPointerWarp(t *testing.T) {
	r := newTestRig(t, noTwinkles())
	r.mount(t)

	// scroll 500 puts rows on multiples of 20, columns sit at -10 + 20*c
	r.grid.DrawFrame(0)
	if !r.surface.hasCircleAt(110, 100) {
		t.Fatal("expected a dot at (110, 100) before the pointer moves")
	}

	r.events.DispatchPointerMove(50, 100)
	if p := r.grid.Pointer(); p.X != 50 || p.Y != 100 {
		t.Fatalf("Pointer() = %+v, want (50, 100)", p)
	}

	r.grid.DrawFrame(frameStep)

	if !r.surface.hasCircleAt(117, 100) {
		t.Error("dot 60px right of the pointer was not pushed 7px away")
	}
	if !r.surface.hasCircleAt(50, 100) {
		t.Error("dot right under the pointer moved")
	}
	if !r.surface.hasCircleAt(290, 100) {
		t.Error("dot outside the warp radius moved")
	}
}

func TestDotGridPointerStartsOffscreen(t *testing.T) {
	r := newTestRig(t, noTwinkles())

	if p := r.grid.Pointer(); p != OffscreenPointer() {
		t.Errorf("Pointer() = %+v, want offscreen sentinel", p)
	}
}

func TestDotGridMountSchedulesOneFrame(t *testing.T) {
	r := newTestRig(t, DefaultConfig())
	r.mount(t)

	if r.sched.Pending() != 1 {
		t.Fatalf("Pending() = %d after Mount, want 1", r.sched.Pending())
	}
	if r.events.Listeners() != 2 {
		t.Fatalf("Listeners() = %d after Mount, want 2", r.events.Listeners())
	}

	for i := 1; i <= 10; i++ {
		if ran := r.sched.Step(time.Duration(i) * frameStep); ran != 1 {
			t.Fatalf("step %d ran %d frames, want 1", i, ran)
		}
	}

	if r.surface.clears != 10 {
		t.Errorf("surface cleared %d times, want 10", r.surface.clears)
	}
	if got := r.grid.LastStats().Now; got != 10*frameStep {
		t.Errorf("last frame at %v, want %v", got, 10*frameStep)
	}
}

func TestDotGridRemountDoesNotLeak(t *testing.T) {
	r := newTestRig(t, DefaultConfig())

	for range 3 {
		r.mount(t)
	}

	if r.sched.Pending() != 1 {
		t.Errorf("Pending() = %d after mounting 3 times, want 1", r.sched.Pending())
	}
	if r.events.Listeners() != 2 {
		t.Errorf("Listeners() = %d after mounting 3 times, want 2", r.events.Listeners())
	}

	r.grid.Unmount()
	r.mount(t)
	if r.sched.Pending() != 1 || r.events.Listeners() != 2 {
		t.Errorf("after remount Pending() = %d, Listeners() = %d", r.sched.Pending(), r.events.Listeners())
	}
}

func TestDotGridRemountStartsOver(t *testing.T) {
	r := newTestRig(t, DefaultConfig())
	r.mount(t)

	r.events.DispatchPointerMove(30, 40)
	for i := 1; i <= 5; i++ {
		r.sched.Step(time.Duration(i) * frameStep)
	}
	if len(r.grid.LiveTwinkles()) == 0 {
		t.Fatal("no twinkles before remount")
	}

	r.grid.Unmount()
	r.mount(t)

	if p := r.grid.Pointer(); p != OffscreenPointer() {
		t.Errorf("Pointer() = %+v after remount, want offscreen sentinel", p)
	}
	if n := len(r.grid.LiveTwinkles()); n != 0 {
		t.Errorf("%d twinkles survived remount", n)
	}
}

func TestDotGridUnmount(t *testing.T) {
	r := newTestRig(t, DefaultConfig())
	r.mount(t)
	r.sched.Step(frameStep)

	r.grid.Unmount()
	r.grid.Unmount()

	if r.grid.Mounted() || r.grid.Running() {
		t.Fatal("grid still mounted after Unmount")
	}
	if r.sched.Pending() != 0 {
		t.Errorf("Pending() = %d after Unmount, want 0", r.sched.Pending())
	}
	if r.events.Listeners() != 0 {
		t.Errorf("Listeners() = %d after Unmount, want 0", r.events.Listeners())
	}

	clears := r.surface.clears
	resizes := len(r.surface.resizes)
	pointer := r.grid.Pointer()

	r.page.View = Viewport{Width: 800, Height: 600, Scale: 1}
	r.events.DispatchResize()
	r.events.DispatchPointerMove(10, 10)

	for i := 2; i < 10; i++ {
		r.sched.Step(time.Duration(i) * frameStep)
	}

	if r.surface.clears != clears {
		t.Error("grid kept drawing after Unmount")
	}
	if len(r.surface.resizes) != resizes {
		t.Error("grid resized after Unmount")
	}
	if r.grid.Pointer() != pointer {
		t.Error("grid tracked the pointer after Unmount")
	}
}

func TestDotGridUnmountDuringFrame(t *testing.T) {
	r := newTestRig(t, noTwinkles())

	// runs before the grid's first frame in the same step
	r.sched.RequestFrame(func(time.Duration) { r.grid.Unmount() })
	r.mount(t)

	if ran := r.sched.Step(frameStep); ran != 1 {
		t.Errorf("Step() ran %d callbacks, want only the one that unmounts", ran)
	}
	if r.surface.clears != 0 {
		t.Error("grid drew a frame after being unmounted in the same step")
	}
	if r.sched.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0 after unmount mid step", r.sched.Pending())
	}
}

func TestDotGridNoSurface(t *testing.T) {
	r := newTestRig(t, DefaultConfig())

	if r.grid.Mount(nil, r.sched, r.events) {
		t.Fatal("Mount(nil) = true")
	}
	if r.sched.Pending() != 0 || r.events.Listeners() != 0 {
		t.Errorf("Mount(nil) left %d frames and %d listeners", r.sched.Pending(), r.events.Listeners())
	}

	// nothing to draw on, nothing to break
	stats := r.grid.DrawFrame(0)
	if stats.Evaluated != 0 {
		t.Errorf("DrawFrame() without surface evaluated %d points", stats.Evaluated)
	}
	r.grid.Unmount()
}

func TestDotGridMountLogsWhatIsMissing(t *testing.T) {
	page := &StaticPage{View: Viewport{Width: 100, Height: 100}, Height: 100}

	tests := []struct {
		name    string
		page    Page
		surface Surface
		sched   FrameScheduler
		want    string
	}{
		{"surface", page, nil, NewManualScheduler(), "no drawing surface"},
		{"scheduler", page, &recordingSurface{}, nil, "no frame scheduler"},
		{"page", nil, &recordingSurface{}, NewManualScheduler(), "no page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			g := New(noTwinkles(), tt.page, WithLogger(log.New(&buf, "", 0)))

			if g.Mount(tt.surface, tt.sched, NewEvents()) {
				t.Fatal("Mount() = true")
			}
			if got := buf.String(); !strings.Contains(got, tt.want) {
				t.Errorf("logged %q, want it to mention %q", got, tt.want)
			}
		})
	}
}

func TestDotGridPanicStopsLoop(t *testing.T) {
	r := newTestRig(t, noTwinkles())
	r.surface.panicOnFill = true
	r.mount(t)

	if ran := r.sched.Step(frameStep); ran != 1 {
		t.Fatalf("Step() ran %d frames, want 1", ran)
	}

	if r.grid.Running() {
		t.Error("Running() = true after a frame panicked")
	}
	if r.sched.Pending() != 0 {
		t.Errorf("Pending() = %d, a panicking frame rescheduled itself", r.sched.Pending())
	}

	// still tears down cleanly
	r.grid.Unmount()
	if r.events.Listeners() != 0 {
		t.Errorf("Listeners() = %d after Unmount", r.events.Listeners())
	}
}

func TestDotGridResize(t *testing.T) {
	r := newTestRig(t, noTwinkles())
	r.mount(t)

	if len(r.surface.resizes) != 1 {
		t.Fatalf("surface resized %d times on Mount, want 1", len(r.surface.resizes))
	}
	if got, want := r.surface.resizes[0], (recordedResize{800, 400, 2}); got != want {
		t.Errorf("Resize on mount = %+v, want %+v", got, want)
	}

	r.page.View = Viewport{Width: 300, Height: 100, Scale: 1.5}
	r.events.DispatchResize()

	if got, want := r.surface.resizes[1], (recordedResize{450, 150, 1.5}); got != want {
		t.Errorf("Resize after resize event = %+v, want %+v", got, want)
	}
	if vp := r.grid.Viewport(); vp.Width != 300 || vp.Height != 100 {
		t.Errorf("Viewport() = %+v after resize", vp)
	}

	stats := r.grid.DrawFrame(0)
	if want := (15 + 2) * (5 + 2); stats.Evaluated != want {
		t.Errorf("Evaluated = %d after resize, want %d", stats.Evaluated, want)
	}
}

func TestDotGridTwinkles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Twinkle.MaxCount = 20

	r := newTestRig(t, cfg)
	r.mount(t)

	for i := 1; i <= 100; i++ {
		r.sched.Step(time.Duration(i) * frameStep)
		if n := len(r.grid.LiveTwinkles()); n > 20 {
			t.Fatalf("frame %d: %d live twinkles, max 20", i, n)
		}
	}

	if len(r.grid.LiveTwinkles()) == 0 {
		t.Fatal("no twinkles after 100 frames")
	}
	if stats := r.grid.LastStats(); stats.LiveTwinkles != len(r.grid.LiveTwinkles()) {
		t.Errorf("stats report %d live twinkles, have %d", stats.LiveTwinkles, len(r.grid.LiveTwinkles()))
	}

	r.grid.SetTwinkles(false)
	if r.grid.TwinklesEnabled() || r.grid.LiveTwinkles() != nil {
		t.Fatal("twinkles still live after SetTwinkles(false)")
	}

	r.sched.Step(101 * frameStep)
	if len(r.surface.lines) != 0 {
		t.Errorf("%d lines drawn with twinkles off", len(r.surface.lines))
	}

	r.grid.SetTwinkles(true)
	for i := 102; i < 110; i++ {
		r.sched.Step(time.Duration(i) * frameStep)
	}
	if len(r.grid.LiveTwinkles()) == 0 {
		t.Error("no twinkles after turning them back on")
	}
}

func TestDotGridsDoNotShareState(t *testing.T) {
	a := newTestRig(t, noTwinkles())
	b := newTestRig(t, noTwinkles())
	a.mount(t)
	b.mount(t)

	a.events.DispatchPointerMove(1, 2)

	if b.grid.Pointer() == a.grid.Pointer() {
		t.Error("pointer move on one grid reached the other")
	}
}
