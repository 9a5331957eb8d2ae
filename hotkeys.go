package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	ShowDebugConsoleKey = eb.KeyF1

	ToggleTwinklesKey eb.Key = eb.KeyT
	CopyStatsKey      eb.Key = eb.KeyC
	ScreenshotKey     eb.Key = eb.KeyP

	ScrollDownKey eb.Key = eb.KeyArrowDown
	ScrollUpKey   eb.Key = eb.KeyArrowUp
	PageDownKey   eb.Key = eb.KeyPageDown
	PageUpKey     eb.Key = eb.KeyPageUp
	ScrollTopKey  eb.Key = eb.KeyHome
	ScrollEndKey  eb.Key = eb.KeyEnd

	QuitKey eb.Key = eb.KeyEscape
)
