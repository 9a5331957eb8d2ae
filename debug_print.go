package main

import (
	"fmt"
	"image/color"
	"strings"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebu "github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

type DebugMsg struct {
	Key   string
	Value string
}

var TheDebugPrintManager struct {
	DebugMsgs           []DebugMsg
	PersistentDebugMsgs []DebugMsg

	builder strings.Builder
}

func DebugPrintf(key, fmtStr string, values ...any) {
	DebugPuts(key, fmt.Sprintf(fmtStr, values...))
}

func DebugPrint(key string, values ...any) {
	DebugPuts(key, fmt.Sprint(values...))
}

func DebugPuts(key, value string) {
	dm := &TheDebugPrintManager
	dm.DebugMsgs = putDebugMsg(dm.DebugMsgs, key, value)
}

func DebugPutsPersist(key, value string) {
	dm := &TheDebugPrintManager
	dm.PersistentDebugMsgs = putDebugMsg(dm.PersistentDebugMsgs, key, value)
}

func putDebugMsg(msgs []DebugMsg, key, value string) []DebugMsg {
	for i, msg := range msgs {
		if msg.Key == key {
			msgs[i].Value = value
			return msgs
		}
	}

	return append(msgs, DebugMsg{
		Key:   key,
		Value: value,
	})
}

// size of a glyph of ebitenutil debug font
const (
	debugCharWidth  = 6
	debugLineHeight = 16
)

func DrawDebugMsgs(dst *eb.Image) {
	dm := &TheDebugPrintManager

	dm.builder.Reset()

	lineCount := 0
	longestLine := 0

	writeMsgs := func(msgs []DebugMsg) {
		for _, msg := range msgs {
			// builder doesn't actually errors out
			// no need to check error
			if lineCount > 0 {
				dm.builder.WriteString("\n")
			}
			dm.builder.WriteString(msg.Key)
			dm.builder.WriteString(": ")
			dm.builder.WriteString(msg.Value)

			lineCount++
			longestLine = max(longestLine, len(msg.Key)+2+len(msg.Value))
		}
	}

	writeMsgs(dm.PersistentDebugMsgs)
	writeMsgs(dm.DebugMsgs)

	if lineCount <= 0 {
		return
	}

	const margin = 5

	boxW := f64(longestLine*debugCharWidth) + margin*2
	boxH := f64(lineCount*debugLineHeight) + margin*2

	bounds := dst.Bounds()
	boxX := f64(bounds.Max.X) - boxW
	boxY := f64(bounds.Max.Y) - boxH

	DrawFilledRect(dst, boxX, boxY, boxW, boxH, color.NRGBA{0, 0, 0, 200}, false)
	ebu.DebugPrintAt(dst, dm.builder.String(), int(boxX)+margin, int(boxY)+margin)
}

func ClearDebugMsgs() {
	dm := &TheDebugPrintManager

	dm.DebugMsgs = dm.DebugMsgs[:0]
}
