package main

import (
	"flag"
	"time"

	"dotgrid/grid"
	"dotgrid/misc"
	"dotgrid/snapshot"
)

var (
	FlagOut        string
	FlagForce      bool
	FlagWidth      float64
	FlagHeight     float64
	FlagScale      float64
	FlagScroll     float64
	FlagPageHeight float64
	FlagPointerX   float64
	FlagPointerY   float64
	FlagFrames     int
	FlagFPS        int
	FlagSeed       uint64
	FlagBackground string
	FlagDotColor   string
	FlagNoTwinkles bool
)

func init() {
	flag.StringVar(&FlagOut, "o", "dotgrid.png", "output png")
	flag.BoolVar(&FlagForce, "force", false, "overwrite output file")
	flag.Float64Var(&FlagWidth, "width", 1280, "viewport width in logical pixels")
	flag.Float64Var(&FlagHeight, "height", 720, "viewport height in logical pixels")
	flag.Float64Var(&FlagScale, "scale", 1, "device pixel ratio")
	flag.Float64Var(&FlagScroll, "scroll", 0, "page scroll offset")
	flag.Float64Var(&FlagPageHeight, "page-height", 4000, "height of the page in logical pixels")
	flag.Float64Var(&FlagPointerX, "pointer-x", grid.PointerOffscreen, "pointer x in viewport")
	flag.Float64Var(&FlagPointerY, "pointer-y", grid.PointerOffscreen, "pointer y in viewport")
	flag.IntVar(&FlagFrames, "frames", 60, "frames to run before saving")
	flag.IntVar(&FlagFPS, "fps", 60, "frames per second")
	flag.Uint64Var(&FlagSeed, "seed", 1, "twinkle seed")
	flag.StringVar(&FlagBackground, "background", "#ffffff", "background color")
	flag.StringVar(&FlagDotColor, "dot-color", grid.DefaultDotColor, "dot color")
	flag.BoolVar(&FlagNoTwinkles, "no-twinkles", false, "render without twinkles")
}

func main() {
	flag.Parse()

	if FlagFPS <= 0 {
		misc.ErrLogger.Fatalf("fps must be positive, got %d", FlagFPS)
	}

	exists, err := misc.CheckFileExists(FlagOut)
	if err != nil {
		misc.ErrLogger.Fatal(err)
	}
	if exists && !FlagForce {
		misc.ErrLogger.Fatalf("%s already exists, use -force to overwrite", FlagOut)
	}

	cfg := grid.DefaultConfig()
	cfg.Twinkle.Enabled = !FlagNoTwinkles
	if cfg.DotColor, err = grid.ParseColorString(FlagDotColor); err != nil {
		misc.ErrLogger.Fatalf("bad -dot-color: %v", err)
	}
	if err = cfg.Validate(); err != nil {
		misc.ErrLogger.Fatalf("invalid config: %v", err)
	}

	opts := snapshot.DefaultOptions()
	opts.Width = FlagWidth
	opts.Height = FlagHeight
	opts.Scale = FlagScale
	opts.Scroll = FlagScroll
	opts.PageHeight = FlagPageHeight
	opts.Frames = FlagFrames
	opts.FramePeriod = time.Second / time.Duration(FlagFPS)
	opts.Seed = FlagSeed
	opts.Logger = misc.WarnLogger
	opts.Pointer = &grid.Pointer{X: FlagPointerX, Y: FlagPointerY}

	if opts.Background, err = grid.ParseColorString(FlagBackground); err != nil {
		misc.ErrLogger.Fatalf("bad -background: %v", err)
	}

	stats, err := snapshot.RenderPNG(cfg, opts, FlagOut)
	if err != nil {
		misc.ErrLogger.Fatal(err)
	}

	misc.InfoLogger.Printf(
		"%s: saved %s (%d/%d dots, %d twinkles at %v)",
		misc.GetProgramName(), FlagOut,
		stats.Dots, stats.Evaluated, stats.LiveTwinkles, stats.Now,
	)
}
