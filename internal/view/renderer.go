package view

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hailam/sokopush/internal/board"
)

// Theme defines the viewer's background and grid line colors.
type Theme struct {
	Background color.RGBA
	GridLine   color.RGBA
	FloorColor color.RGBA
	TextColor  color.RGBA
}

// DefaultTheme returns the viewer's default color scheme.
func DefaultTheme() *Theme {
	return &Theme{
		Background: color.RGBA{30, 32, 36, 255},
		GridLine:   color.RGBA{50, 53, 58, 255},
		FloorColor: color.RGBA{44, 47, 52, 255},
		TextColor:  color.RGBA{220, 220, 220, 255},
	}
}

// Renderer draws a board's grid and tile icons.
type Renderer struct {
	sprites  *SpriteManager
	theme    *Theme
	cellSize int
}

// NewRenderer creates a renderer drawing cells of cellSize pixels.
func NewRenderer(cellSize int) *Renderer {
	return &Renderer{
		sprites:  NewSpriteManager(cellSize),
		theme:    DefaultTheme(),
		cellSize: cellSize,
	}
}

// DrawBoard draws b's floor grid and every tile's icon.
func (r *Renderer) DrawBoard(screen *ebiten.Image, b *board.Board) {
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			x := float32(col * r.cellSize)
			y := float32(row * r.cellSize)
			size := float32(r.cellSize)

			tile := b.Get(row, col)
			bg := r.theme.FloorColor
			if tile == board.Wall {
				bg = r.theme.Background
			}
			vector.DrawFilledRect(screen, x, y, size, size, bg, false)
			vector.StrokeRect(screen, x, y, size, size, 1, r.theme.GridLine, false)

			r.sprites.DrawTileAt(screen, tile, col*r.cellSize, row*r.cellSize)
		}
	}
}

// BoardPixelSize returns the pixel dimensions of a w x h board.
func (r *Renderer) BoardPixelSize(w, h int) (int, int) {
	return w * r.cellSize, h * r.cellSize
}

// Theme returns the renderer's color theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}
