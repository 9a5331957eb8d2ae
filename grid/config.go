package grid

import (
	"errors"
	"fmt"
	"image/color"
	"time"
)

const (
	DefaultSpacing        = 20
	DefaultDotRadius      = 1
	DefaultDotOpacity     = 0.12
	DefaultDotColor       = "#000000"
	DefaultWarpRadius     = 120
	DefaultWarpStrength   = 14
	DefaultHeroFadeHeight = 250 // from the top of the page

	DefaultTwinkleMaxCount    = 600
	DefaultTwinkleDuration    = 1200 * time.Millisecond
	DefaultTwinkleInterval    = 3 * time.Millisecond
	DefaultTwinkleArmLength   = DefaultSpacing * 2 // reaches two dots out
	DefaultTwinkleIntensity   = 0.9
	DefaultTwinkleCenterAlpha = 0.5
	DefaultTwinkleLineWidth   = 1.5
	DefaultTwinkleColor       = "rgb(59, 130, 246)"
)

type TwinkleConfig struct {
	Enabled bool

	MaxCount int
	Duration time.Duration
	Interval time.Duration

	ArmLength float64
	Intensity float64
	// alpha of the center dot relative to the cross
	CenterAlpha float64
	LineWidth   float64

	Color color.NRGBA
}

type Config struct {
	Spacing    float64
	DotRadius  float64
	DotOpacity float64
	DotColor   color.NRGBA

	WarpRadius   float64
	WarpStrength float64

	HeroFadeHeight float64

	Twinkle TwinkleConfig
}

func DefaultConfig() Config {
	return Config{
		Spacing:    DefaultSpacing,
		DotRadius:  DefaultDotRadius,
		DotOpacity: DefaultDotOpacity,
		DotColor:   MustParseColorString(DefaultDotColor),

		WarpRadius:   DefaultWarpRadius,
		WarpStrength: DefaultWarpStrength,

		HeroFadeHeight: DefaultHeroFadeHeight,

		Twinkle: TwinkleConfig{
			Enabled: true,

			MaxCount: DefaultTwinkleMaxCount,
			Duration: DefaultTwinkleDuration,
			Interval: DefaultTwinkleInterval,

			ArmLength:   DefaultTwinkleArmLength,
			Intensity:   DefaultTwinkleIntensity,
			CenterAlpha: DefaultTwinkleCenterAlpha,
			LineWidth:   DefaultTwinkleLineWidth,

			Color: MustParseColorString(DefaultTwinkleColor),
		},
	}
}

// Validate reports every setting the renderer can't work with.
func (c Config) Validate() error {
	var errs []error

	if c.Spacing <= 0 {
		errs = append(errs, fmt.Errorf("spacing must be positive, got %v", c.Spacing))
	}
	if c.DotRadius < 0 {
		errs = append(errs, fmt.Errorf("dot radius must not be negative, got %v", c.DotRadius))
	}
	if c.DotOpacity < 0 || c.DotOpacity > 1 {
		errs = append(errs, fmt.Errorf("dot opacity must be in [0, 1], got %v", c.DotOpacity))
	}
	if c.WarpRadius < 0 {
		errs = append(errs, fmt.Errorf("warp radius must not be negative, got %v", c.WarpRadius))
	}
	if c.WarpStrength < 0 {
		errs = append(errs, fmt.Errorf("warp strength must not be negative, got %v", c.WarpStrength))
	}

	if c.Twinkle.Enabled {
		t := c.Twinkle
		if t.MaxCount < 0 {
			errs = append(errs, fmt.Errorf("twinkle max count must not be negative, got %v", t.MaxCount))
		}
		if t.Duration <= 0 {
			errs = append(errs, fmt.Errorf("twinkle duration must be positive, got %v", t.Duration))
		}
		if t.Interval < 0 {
			errs = append(errs, fmt.Errorf("twinkle interval must not be negative, got %v", t.Interval))
		}
		if t.ArmLength < 0 {
			errs = append(errs, fmt.Errorf("twinkle arm length must not be negative, got %v", t.ArmLength))
		}
		if t.Intensity < 0 || t.Intensity > 1 {
			errs = append(errs, fmt.Errorf("twinkle intensity must be in [0, 1], got %v", t.Intensity))
		}
	}

	return errors.Join(errs...)
}
