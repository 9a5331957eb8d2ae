package grid

import (
	"math"
)

// PointerOffscreen is where the pointer is until we see it move.
// Far enough that nothing is warped.
const PointerOffscreen = -9999

type Pointer struct {
	X, Y float64
}

func OffscreenPointer() Pointer {
	return Pointer{X: PointerOffscreen, Y: PointerOffscreen}
}

// WarpMagnitude returns how far a point at distance d from the pointer is pushed.
func WarpMagnitude(d, radius, strength float64) float64 {
	if d <= 0 || d >= radius {
		return 0
	}
	return (1 - d/radius) * strength
}

// Warp pushes (x, y) away from the pointer at (px, py).
//
// Force decays linearly from strength at the pointer to 0 at radius.
// A point exactly under the pointer has no direction and stays put.
func Warp(x, y, px, py, radius, strength float64) (float64, float64) {
	dx := x - px
	dy := y - py
	dist := math.Sqrt(dx*dx + dy*dy)

	force := WarpMagnitude(dist, radius, strength)
	if force == 0 {
		return x, y
	}

	return x + dx/dist*force, y + dy/dist*force
}
