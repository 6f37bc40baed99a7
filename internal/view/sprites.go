// Package view implements the optional graphical step-through viewer:
// draw the grid, draw tile icons, and step forward/backward through a
// solved push sequence with arrow keys. Grounded on the teacher's
// internal/ui Ebitengine game loop, trimmed to what a board viewer
// needs — no audio, no settings modal, no network asset downloader
// (see DESIGN.md for why those teacher files have no home here).
package view

import (
	"bytes"
	"embed"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/sokopush/internal/board"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/tiles/*.svg
var tileAssets embed.FS

// tileFiles maps the tiles that need a drawn icon to their asset path.
// Floor and the transient reachability marks need no icon: Floor is
// just background, and a stored (non-transient) board never contains
// PlayerReach/PlayerReachOnTarget.
var tileFiles = map[board.Tile]string{
	board.Wall:           "assets/tiles/wall.svg",
	board.Target:         "assets/tiles/target.svg",
	board.Box:            "assets/tiles/box.svg",
	board.BoxOnTarget:    "assets/tiles/box_on_target.svg",
	board.Player:         "assets/tiles/player.svg",
	board.PlayerOnTarget: "assets/tiles/player_on_target.svg",
}

// SpriteManager rasterizes the embedded tile SVGs to ebiten.Image once
// at a fixed cell size, mirroring the teacher's SpriteManager.
type SpriteManager struct {
	icons map[board.Tile]*ebiten.Image
	size  int
}

// NewSpriteManager rasterizes every tile icon at size x size pixels.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		icons: make(map[board.Tile]*ebiten.Image),
		size:  size,
	}
	sm.loadIcons()
	return sm
}

func (sm *SpriteManager) loadIcons() {
	for tile, path := range tileFiles {
		data, err := tileAssets.ReadFile(path)
		if err != nil {
			log.Printf("[Viewer] failed to read tile asset %s: %v", path, err)
			continue
		}

		icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
		if err != nil {
			log.Printf("[Viewer] failed to parse tile SVG %s: %v", path, err)
			continue
		}
		icon.SetTarget(0, 0, float64(sm.size), float64(sm.size))

		rgba := image.NewRGBA(image.Rect(0, 0, sm.size, sm.size))
		scanner := rasterx.NewScannerGV(sm.size, sm.size, rgba, rgba.Bounds())
		raster := rasterx.NewDasher(sm.size, sm.size, scanner)
		icon.Draw(raster, 1.0)

		sm.icons[tile] = ebiten.NewImageFromImage(rgba)
	}
}

// DrawTileAt draws tile's icon (if it has one) at pixel (x, y).
func (sm *SpriteManager) DrawTileAt(screen *ebiten.Image, tile board.Tile, x, y int) {
	icon := sm.icons[tile]
	if icon == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(icon, op)
}

// Size returns the pixel size icons were rasterized at.
func (sm *SpriteManager) Size() int {
	return sm.size
}
