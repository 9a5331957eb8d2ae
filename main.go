package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"

	_ "github.com/silbinarywolf/preferdiscretegpu"

	eb "github.com/hajimehoshi/ebiten/v2"

	"dotgrid/grid"
)

var (
	ScreenWidth  float64 = 1024
	ScreenHeight float64 = 768
)

var ErrorLogger *log.Logger = log.New(os.Stderr, "ERROR: ", log.Lshortfile)
var InfoLogger *log.Logger = log.New(os.Stdout, "INFO: ", log.Lshortfile)

var (
	FlagPageHeight    float64
	FlagBackground    string
	FlagDotColor      string
	FlagTwinkleColor  string
	FlagNoTwinkles    bool
	FlagScreenshotDir string
)

func init() {
	flag.Float64Var(&FlagPageHeight, "page-height", 4000, "height of the scrollable page in logical pixels")
	flag.StringVar(&FlagBackground, "background", "#ffffff", "page background color")
	flag.StringVar(&FlagDotColor, "dot-color", grid.DefaultDotColor, "dot color")
	flag.StringVar(&FlagTwinkleColor, "twinkle-color", grid.DefaultTwinkleColor, "twinkle color")
	flag.BoolVar(&FlagNoTwinkles, "no-twinkles", false, "start with twinkle layer off")
	flag.StringVar(&FlagScreenshotDir, "screenshot-dir", "screenshots", "where screenshots go")
}

type App struct {
	ShowDebugConsole bool

	Page      *grid.StaticPage
	Surface   *EbitenSurface
	Scheduler *grid.ManualScheduler
	Events    *grid.Events
	Grid      *grid.DotGrid

	FrameTimes FrameTimeHistory

	lastPointer FPoint
	seenPointer bool

	takeScreenshot bool
}

func NewApp(cfg grid.Config, background color.NRGBA, pageHeight float64) *App {
	a := new(App)

	a.Page = &grid.StaticPage{
		View: grid.Viewport{
			Width:  ScreenWidth,
			Height: ScreenHeight,
			Scale:  1, // real one comes with first Layout
		},
		Height: pageHeight,
	}

	a.Surface = NewEbitenSurface(background)
	a.Scheduler = grid.NewManualScheduler()
	a.Events = grid.NewEvents()
	a.Grid = grid.New(cfg, a.Page, grid.WithLogger(ErrorLogger))

	a.FrameTimes = NewFrameTimeHistory(60)

	DebugPutsPersist("background", grid.ColorToString(background))
	DebugPutsPersist("dot color", grid.ColorToString(cfg.DotColor))

	a.Grid.Mount(a.Surface, a.Scheduler, a.Events)

	return a
}

func (a *App) Update() error {
	ClearDebugMsgs()

	// ==========================
	// update global timer
	// ==========================
	UpdateGlobalTimer()

	fpsStr := fmt.Sprintf("%.2f", eb.ActualFPS())
	tpsStr := fmt.Sprintf("%.2f", eb.ActualTPS())

	// ==========================
	// update windows title
	// ==========================
	eb.SetWindowTitle("dotgrid FPS: " + fpsStr + " TPS: " + tpsStr)

	if IsKeyJustPressed(QuitKey) {
		return eb.Termination
	}

	// ==========================
	// hotkeys
	// ==========================
	if IsKeyJustPressed(ShowDebugConsoleKey) {
		a.ShowDebugConsole = !a.ShowDebugConsole
	}
	if IsKeyJustPressed(ToggleTwinklesKey) {
		a.Grid.SetTwinkles(!a.Grid.TwinklesEnabled())
	}
	if IsKeyJustPressed(CopyStatsKey) {
		if ClipboardWriteText(a.StatsLine()) {
			InfoLogger.Print("copied stats to clipboard")
		}
	}
	if IsKeyJustPressed(ScreenshotKey) {
		a.takeScreenshot = true
	}

	// ==========================
	// scroll
	// ==========================
	if IsKeyJustPressed(ScrollTopKey) {
		a.Page.ScrollTo(0)
	} else if IsKeyJustPressed(ScrollEndKey) {
		a.Page.ScrollTo(a.Page.Height)
	} else if dy := ScrollInput(a.Page.View.Height); dy != 0 {
		a.Page.ScrollBy(dy)
	}

	// ==========================
	// pointer
	// ==========================
	UpdateInput(a.Page.View.DeviceScale())
	a.updatePointer()

	// ==========================
	// DebugPrint
	// ==========================
	stats := a.Grid.LastStats()

	DebugPrint("FPS", fpsStr)
	DebugPrint("TPS", tpsStr)
	DebugPrintf("scroll", "%.0f / %.0f", a.Page.Scroll, a.Page.Height)
	DebugPrintf("dots", "%d / %d", stats.Dots, stats.Evaluated)
	DebugPrintf("twinkles", "%d drawn, %d live", stats.DrawnTwinkles, stats.LiveTwinkles)
	DebugPrintf("frame", "avg %v worst %v", a.FrameTimes.Average(), a.FrameTimes.Worst())
	if !a.Grid.Running() {
		DebugPuts("grid", "stopped")
	}

	return nil
}

// updatePointer forwards pointer moves to the grid.
// First position we see isn't a move, grid keeps its offscreen pointer until then.
func (a *App) updatePointer() {
	im := &TheInputManager
	if !im.PointerValid {
		return
	}

	if !a.seenPointer {
		a.seenPointer = true
		a.lastPointer = im.Pointer
		return
	}

	if !im.Pointer.Eq(a.lastPointer) {
		a.lastPointer = im.Pointer
		a.Events.DispatchPointerMove(im.Pointer.X, im.Pointer.Y)
	}
}

func (a *App) StatsLine() string {
	stats := a.Grid.LastStats()
	pointer := a.Grid.Pointer()
	return fmt.Sprintf(
		"viewport=%.0fx%.0f@%.2f scroll=%.0f page=%.0f pointer=(%.0f,%.0f) dots=%d/%d twinkles=%d/%d frame=%v",
		a.Page.View.Width, a.Page.View.Height, a.Page.View.DeviceScale(),
		a.Page.Scroll, a.Page.Height,
		pointer.X, pointer.Y,
		stats.Dots, stats.Evaluated,
		stats.DrawnTwinkles, stats.LiveTwinkles,
		a.FrameTimes.Average(),
	)
}

func (a *App) Draw(dst *eb.Image) {
	if !a.Grid.Running() {
		dst.Fill(a.Surface.Background)
	}

	a.Surface.Target = dst
	{
		timer := NewProfTimer("frame")
		if a.Scheduler.Step(GlobalTimerNow()) > 0 {
			a.FrameTimes.Push(timer.Elapsed())
		}
	}
	a.Surface.Target = nil

	if a.takeScreenshot {
		a.takeScreenshot = false
		if name, err := TakeScreenshot(dst, FlagScreenshotDir); err != nil {
			ErrorLogger.Printf("failed to take screenshot: %v", err)
		} else {
			InfoLogger.Printf("saved %s", name)
		}
	}

	if a.ShowDebugConsole {
		DrawDebugMsgs(dst)
	}
}

// Layout hands ebiten a screen in physical pixels
// and tells the grid when viewport changed.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	ScreenWidth = f64(outsideWidth)
	ScreenHeight = f64(outsideHeight)

	view := grid.Viewport{
		Width:  ScreenWidth,
		Height: ScreenHeight,
		Scale:  DeviceScale(),
	}

	if view != a.Page.View {
		a.Page.View = view
		// viewport got taller, page might scroll less now
		a.Page.ScrollBy(0)
		a.Events.DispatchResize()
	}

	return view.PhysicalSize()
}

func DeviceScale() float64 {
	if m := eb.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

func main() {
	flag.Parse()

	cfg := grid.DefaultConfig()
	cfg.Twinkle.Enabled = !FlagNoTwinkles

	var err error
	if cfg.DotColor, err = grid.ParseColorString(FlagDotColor); err != nil {
		ErrorLogger.Fatalf("bad -dot-color: %v", err)
	}
	if cfg.Twinkle.Color, err = grid.ParseColorString(FlagTwinkleColor); err != nil {
		ErrorLogger.Fatalf("bad -twinkle-color: %v", err)
	}
	background, err := grid.ParseColorString(FlagBackground)
	if err != nil {
		ErrorLogger.Fatalf("bad -background: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		ErrorLogger.Fatalf("invalid config: %v", err)
	}

	InitClipboardManager()

	app := NewApp(cfg, background, FlagPageHeight)

	eb.SetVsyncEnabled(true)
	eb.SetWindowSize(int(ScreenWidth), int(ScreenHeight))
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetWindowTitle("dotgrid")

	err = eb.RunGame(app)
	app.Grid.Unmount()

	if err != nil {
		ErrorLogger.Fatal(err)
	}
}
