package view

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var statusFace *text.GoTextFace

const statusFontSize = 16.0

func init() {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("[Viewer] failed to load status font: %v", err)
		return
	}
	statusFace = &text.GoTextFace{Source: source, Size: statusFontSize}
}

// StatusFace returns the face used for the step counter / status line.
func StatusFace() *text.GoTextFace {
	return statusFace
}
