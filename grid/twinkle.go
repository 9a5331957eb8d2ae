package grid

import (
	"math"
	"math/rand/v2"
	"slices"
	"time"
)

// Twinkle is a short lived cross drawn on a lattice point.
// Position is in page space and never changes.
type Twinkle struct {
	X, Y float64
	Born time.Duration
}

func (t Twinkle) Age(now time.Duration) time.Duration {
	return now - t.Born
}

func (t Twinkle) Alive(now, duration time.Duration) bool {
	age := t.Age(now)
	return 0 <= age && age < duration
}

// Progress returns normalized age in [0, 1].
func (t Twinkle) Progress(now, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	return Clamp(f64(t.Age(now))/f64(duration), 0, 1)
}

// TwinkleArmLength grows slowly at first and fastest near the end of life.
func TwinkleArmLength(maxArmLength, progress float64) float64 {
	progress = Clamp(progress, 0, 1)
	return maxArmLength * (1 - math.Pow(1-progress, 0.4))
}

type TwinkleEmitter struct {
	Config TwinkleConfig

	live      []Twinkle
	lastSpawn time.Duration

	rng *rand.Rand
}

// NewTwinkleEmitter creates an emitter. rng may be nil to use global random source.
func NewTwinkleEmitter(cfg TwinkleConfig, rng *rand.Rand) *TwinkleEmitter {
	e := new(TwinkleEmitter)
	e.Config = cfg
	e.rng = rng
	e.live = make([]Twinkle, 0, max(cfg.MaxCount, 0))
	return e
}

// Update spawns at most one twinkle then retires expired ones.
//
// pageHeight is only asked for when a spawn is actually going to happen,
// so pages that grow after the first frame are covered.
func (e *TwinkleEmitter) Update(
	now time.Duration,
	lattice Lattice,
	pageHeight func() float64,
) bool {
	spawned := e.trySpawn(now, lattice, pageHeight)
	e.retire(now)
	return spawned
}

func (e *TwinkleEmitter) trySpawn(
	now time.Duration,
	lattice Lattice,
	pageHeight func() float64,
) bool {
	if now-e.lastSpawn < e.Config.Interval {
		return false
	}
	if len(e.live) >= e.Config.MaxCount {
		return false
	}
	if lattice.Cols <= 0 || lattice.Spacing <= 0 || pageHeight == nil {
		return false
	}

	totalRows := int(math.Ceil(pageHeight() / lattice.Spacing))
	if totalRows <= 0 {
		return false
	}

	col := e.intN(lattice.Cols)
	row := e.intN(totalRows)

	e.live = append(e.live, Twinkle{
		X:    lattice.ColumnX(col),
		Y:    f64(row) * lattice.Spacing,
		Born: now,
	})
	e.lastSpawn = now

	return true
}

func (e *TwinkleEmitter) retire(now time.Duration) {
	duration := e.Config.Duration
	e.live = slices.DeleteFunc(e.live, func(t Twinkle) bool {
		return !t.Alive(now, duration)
	})
}

func (e *TwinkleEmitter) intN(n int) int {
	if e.rng != nil {
		return e.rng.IntN(n)
	}
	return rand.IntN(n)
}

func (e *TwinkleEmitter) Len() int {
	return len(e.live)
}

// Live returns the live set. Don't hold on to it past the next Update.
func (e *TwinkleEmitter) Live() []Twinkle {
	return e.live
}

func (e *TwinkleEmitter) Reset() {
	e.live = e.live[:0]
	e.lastSpawn = 0
}

// Draw draws every visible twinkle and returns how many were drawn.
func (e *TwinkleEmitter) Draw(
	dst Surface,
	now time.Duration,
	width, height float64,
	scrollY float64,
	fadeHeight float64,
	dotRadius float64,
) int {
	cfg := e.Config
	arm := cfg.ArmLength

	drawn := 0

	for _, t := range e.live {
		x := t.X
		y := t.Y - scrollY

		if y < -arm || y > height+arm {
			continue
		}
		if x < -arm || x > width+arm {
			continue
		}

		heroAlpha := HeroAlpha(t.Y, fadeHeight)
		if heroAlpha <= 0 {
			continue
		}

		progress := t.Progress(now, cfg.Duration)
		armLen := TwinkleArmLength(arm, progress)

		// fade out as they grow
		lineAlpha := (1 - progress) * cfg.Intensity * heroAlpha

		lineClr := ColorFade(cfg.Color, lineAlpha)
		if lineClr.A == 0 {
			continue
		}

		dst.FillCircle(x, y, dotRadius, ColorFade(cfg.Color, lineAlpha*cfg.CenterAlpha))
		dst.StrokeLine(x, y-armLen, x, y+armLen, cfg.LineWidth, lineClr)
		dst.StrokeLine(x-armLen, y, x+armLen, y, cfg.LineWidth, lineClr)

		drawn++
	}

	return drawn
}
