package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"

	"dotgrid/misc"
)

// TakeScreenshot saves img as png in dir and returns file name.
// Must be called from Draw.
func TakeScreenshot(img *eb.Image, dir string) (string, error) {
	timeStr := time.Now().Format("0102150405")

	if err := misc.MkDir(dir); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("dotgrid-%s.png", timeStr)
	for nameCounter := 2; ; nameCounter++ {
		exists, err := misc.CheckFileExists(filepath.Join(dir, filename))
		if err != nil {
			return "", err
		}
		if !exists {
			break
		}
		filename = fmt.Sprintf("dotgrid-%s-(%d).png", timeStr, nameCounter)
	}

	buffer := &bytes.Buffer{}
	if err := png.Encode(buffer, ImageImageFromEbImage(img)); err != nil {
		return "", err
	}

	toWrite := buffer.Bytes()
	InfoLogger.Printf("bytes len : %d", len(toWrite))

	if err := os.WriteFile(filepath.Join(dir, filename), toWrite, 0644); err != nil {
		return "", err
	}

	return filename, nil
}

func ImageImageFromEbImage(img *eb.Image) *image.RGBA {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	// ebiten pixels are premultiplied like image.RGBA
	img.ReadPixels(rgba.Pix)
	return rgba
}
