package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"dotgrid/grid"
	"dotgrid/misc"
	"dotgrid/termview"
)

var (
	FlagPageHeight   float64
	FlagFPS          int
	FlagCellWidth    float64
	FlagCellHeight   float64
	FlagBackground   string
	FlagDotColor     string
	FlagDotOpacity   float64
	FlagTwinkleColor string
	FlagNoTwinkles   bool
)

func init() {
	flag.Float64Var(&FlagPageHeight, "page-height", 4000, "height of the page in logical pixels")
	flag.IntVar(&FlagFPS, "fps", 60, "frames per second")
	flag.Float64Var(&FlagCellWidth, "cell-width", 10, "logical pixels per terminal column")
	flag.Float64Var(&FlagCellHeight, "cell-height", 20, "logical pixels per terminal row")
	flag.StringVar(&FlagBackground, "background", "#000000", "background color")
	flag.StringVar(&FlagDotColor, "dot-color", "#ffffff", "dot color")
	// terminal cells are big, stock opacity is barely visible
	flag.Float64Var(&FlagDotOpacity, "dot-opacity", 0.35, "dot opacity")
	flag.StringVar(&FlagTwinkleColor, "twinkle-color", grid.DefaultTwinkleColor, "twinkle color")
	flag.BoolVar(&FlagNoTwinkles, "no-twinkles", false, "start with twinkle layer off")
}

func main() {
	flag.Parse()

	cfg := grid.DefaultConfig()
	cfg.DotOpacity = FlagDotOpacity
	cfg.Twinkle.Enabled = !FlagNoTwinkles

	var err error
	if cfg.DotColor, err = grid.ParseColorString(FlagDotColor); err != nil {
		misc.ErrLogger.Fatalf("bad -dot-color: %v", err)
	}
	if cfg.Twinkle.Color, err = grid.ParseColorString(FlagTwinkleColor); err != nil {
		misc.ErrLogger.Fatalf("bad -twinkle-color: %v", err)
	}
	if err = cfg.Validate(); err != nil {
		misc.ErrLogger.Fatalf("invalid config: %v", err)
	}

	opts := termview.DefaultOptions()
	opts.PageHeight = FlagPageHeight
	opts.FPS = FlagFPS
	opts.CellWidth = FlagCellWidth
	opts.CellHeight = FlagCellHeight
	if opts.Background, err = grid.ParseColorString(FlagBackground); err != nil {
		misc.ErrLogger.Fatalf("bad -background: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		misc.ErrLogger.Fatalf("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		misc.ErrLogger.Fatalf("failed to init screen: %v", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	app := termview.NewApp(screen, cfg, opts)
	err = app.Run(ctx)

	app.Close()
	stop()
	screen.Fini()

	if err != nil {
		misc.ErrLogger.Fatal(err)
	}
}
