// golang.design/x/clipboard thinks
// crashing is the best solution despite it having a
// Init funciton that returns an error...

//go:build !js && !(!windows && !cgo)

package main

import (
	"golang.design/x/clipboard"
)

var TheClipboardManager struct {
	Initialized bool
}

func InitClipboardManager() {
	cm := &TheClipboardManager
	InfoLogger.Print("initializing clipboard")
	err := clipboard.Init()
	cm.Initialized = err == nil
	if err != nil {
		ErrorLogger.Printf("clipboard is disabled: %v", err)
	}
}

func ClipboardWriteText(str string) bool {
	cm := &TheClipboardManager
	if !cm.Initialized {
		return false
	}
	clipboard.Write(clipboard.FmtText, []byte(str))
	return true
}
