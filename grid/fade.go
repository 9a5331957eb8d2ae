package grid

// HeroAlpha returns how visible something at pageY is under the hero.
//
// Hidden up to fadeHeight/2, then linear up to fully visible at fadeHeight.
// fadeHeight <= 0 means there is no hero to fade under.
func HeroAlpha(pageY, fadeHeight float64) float64 {
	if fadeHeight <= 0 {
		return 1
	}
	half := fadeHeight * 0.5
	return Clamp((pageY-half)/half, 0, 1)
}
