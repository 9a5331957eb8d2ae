package grid

import (
	"fmt"
	"image/color"
	"math"

	css "github.com/mazznoer/csscolorparser"
)

func ColorToNRGBA(clr color.Color) color.NRGBA {
	if clr == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(clr).(color.NRGBA)
}

// ColorFade multiplies alpha of c by a.
func ColorFade(c color.NRGBA, a float64) color.NRGBA {
	a = Clamp(a, 0, 1)
	c.A = uint8(math.Round(float64(c.A) * a))
	return c
}

func ColorToString(clr color.Color) string {
	c := ColorToNRGBA(clr)
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// ParseColorString accepts anything css accepts.
// "#3b82f6", "rgb(59, 130, 246)", "steelblue" and so on.
func ParseColorString(str string) (color.NRGBA, error) {
	c, err := css.Parse(str)

	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", str, err)
	}

	nrgba := color.NRGBA{
		R: uint8(math.Round(255 * Clamp(c.R, 0, 1))),
		G: uint8(math.Round(255 * Clamp(c.G, 0, 1))),
		B: uint8(math.Round(255 * Clamp(c.B, 0, 1))),
		A: uint8(math.Round(255 * Clamp(c.A, 0, 1))),
	}

	return nrgba, nil
}

func MustParseColorString(str string) color.NRGBA {
	c, err := ParseColorString(str)
	if err != nil {
		panic(err)
	}
	return c
}
