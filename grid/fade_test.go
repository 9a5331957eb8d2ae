package grid

import (
	"testing"
)

func TestHeroAlpha(t *testing.T) {
	const h = 250

	tests := []struct {
		name  string
		pageY float64
		want  float64
	}{
		{"page top", 0, 0},
		{"above page", -100, 0},
		{"start of fade", 125, 0},
		{"middle of fade", 187.5, 0.5},
		{"end of fade", 250, 1},
		{"far below", 10000, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HeroAlpha(tt.pageY, h); !almostEqual(got, tt.want) {
				t.Errorf("HeroAlpha(%v) = %v, want %v", tt.pageY, got, tt.want)
			}
		})
	}
}

func TestHeroAlphaMonotonic(t *testing.T) {
	prev := HeroAlpha(-50, 250)
	for y := -50.0; y <= 400; y += 0.5 {
		a := HeroAlpha(y, 250)
		if a < prev {
			t.Fatalf("HeroAlpha(%v) = %v is less than previous %v", y, a, prev)
		}
		if a < 0 || a > 1 {
			t.Fatalf("HeroAlpha(%v) = %v is out of [0, 1]", y, a)
		}
		prev = a
	}
}

func TestHeroAlphaContinuous(t *testing.T) {
	const eps = 1e-6

	for _, edge := range []float64{125, 250} {
		below := HeroAlpha(edge-eps, 250)
		above := HeroAlpha(edge+eps, 250)
		if above-below > 1e-4 {
			t.Errorf("HeroAlpha jumps at %v: %v -> %v", edge, below, above)
		}
	}
}

func TestHeroAlphaNoHero(t *testing.T) {
	for _, h := range []float64{0, -10} {
		if got := HeroAlpha(0, h); got != 1 {
			t.Errorf("HeroAlpha(0, %v) = %v, want 1", h, got)
		}
	}
}
