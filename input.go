package main

import (
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebi "github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	WheelScrollStep = 40
	KeyScrollStep   = 40

	KeyRepeatFirst = time.Millisecond * 300
	KeyRepeatRate  = time.Millisecond * 30
)

var TheInputManager struct {
	// below fields are updated by TheInputManager
	// only public for convinience
	// don't write in to it

	// in logical pixels
	Pointer      FPoint
	PointerValid bool

	TouchingBuf []eb.TouchID
}

// UpdateInput reads pointer position in logical pixels.
//
// First touch wins over the mouse so touch screens warp the grid too.
func UpdateInput(scale float64) {
	im := &TheInputManager

	if scale <= 0 {
		scale = 1
	}

	im.TouchingBuf = eb.AppendTouchIDs(im.TouchingBuf[:0])

	var pos FPoint
	if len(im.TouchingBuf) > 0 {
		x, y := eb.TouchPosition(im.TouchingBuf[0])
		pos = FPt(f64(x), f64(y))
	} else {
		x, y := eb.CursorPosition()
		pos = FPt(f64(x), f64(y))
	}

	im.Pointer = pos.Scale(1 / scale)
	im.PointerValid = true
}

// ScrollInput returns how much the page should scroll this update.
func ScrollInput(viewportHeight float64) float64 {
	var dy float64

	_, wheelY := eb.Wheel()
	dy -= wheelY * WheelScrollStep

	if HandleKeyRepeat(KeyRepeatFirst, KeyRepeatRate, ScrollDownKey) {
		dy += KeyScrollStep
	}
	if HandleKeyRepeat(KeyRepeatFirst, KeyRepeatRate, ScrollUpKey) {
		dy -= KeyScrollStep
	}
	if HandleKeyRepeat(KeyRepeatFirst, KeyRepeatRate, PageDownKey) {
		dy += viewportHeight
	}
	if HandleKeyRepeat(KeyRepeatFirst, KeyRepeatRate, PageUpKey) {
		dy -= viewportHeight
	}

	return dy
}

func IsKeyPressed(key eb.Key) bool {
	return eb.IsKeyPressed(key)
}

func IsKeyJustPressed(key eb.Key) bool {
	return ebi.IsKeyJustPressed(key)
}

var keyRepeatMap = make(map[eb.Key]time.Duration)

func HandleKeyRepeat(
	firstRate, repeatRate time.Duration,
	key eb.Key,
) bool {
	if !IsKeyPressed(key) {
		delete(keyRepeatMap, key)
		return false
	}

	if IsKeyJustPressed(key) {
		keyRepeatMap[key] = GlobalTimerNow() + firstRate
		return true
	}

	time, ok := keyRepeatMap[key]

	if !ok {
		keyRepeatMap[key] = GlobalTimerNow() + firstRate
		return true
	} else {
		now := GlobalTimerNow()
		if now-time > repeatRate {
			keyRepeatMap[key] = now
			return true
		}
	}

	return false
}
