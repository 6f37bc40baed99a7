package view

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hailam/sokopush/internal/board"
	"github.com/hailam/sokopush/internal/render"
	"github.com/hailam/sokopush/internal/search"
)

const (
	cellSize     = 64
	statusHeight = 32
)

// Game implements ebiten.Game: a board step-through viewer for a
// solved push sequence, trimmed from the teacher's chess Game to only
// what stepping through states needs (no dragging, no AI turn, no
// menus).
type Game struct {
	renderer *Renderer

	states  []*board.Board
	path    []search.PushMove
	stepIdx int
}

// New creates a viewer over initial, replaying result's solved push
// path so arrow keys can step through every intermediate state.
func New(initial *board.Board, result search.Result) (*Game, error) {
	states, err := render.States(initial, result)
	if err != nil {
		return nil, err
	}
	return &Game{
		renderer: NewRenderer(cellSize),
		states:   states,
		path:     result.Path,
	}, nil
}

// Update advances the step cursor on arrow key presses.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.step(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.step(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.stepIdx = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		g.stepIdx = len(g.states) - 1
	}
	return nil
}

func (g *Game) step(delta int) {
	next := g.stepIdx + delta
	if next < 0 || next >= len(g.states) {
		return
	}
	g.stepIdx = next
}

// Draw renders the current state and a status line.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Theme().Background)
	g.renderer.DrawBoard(screen, g.states[g.stepIdx])

	_, boardH := g.renderer.BoardPixelSize(g.states[g.stepIdx].Width, g.states[g.stepIdx].Height)
	g.drawStatus(screen, boardH)
}

func (g *Game) drawStatus(screen *ebiten.Image, boardPixelHeight int) {
	face := StatusFace()
	if face == nil {
		return
	}
	status := fmt.Sprintf("step %d / %d", g.stepIdx, len(g.states)-1)
	if g.stepIdx > 0 && g.stepIdx-1 < len(g.path) {
		m := g.path[g.stepIdx-1]
		status += fmt.Sprintf("   last push: box (%d,%d) %s", m.Row, m.Col, m.Dir)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, float64(boardPixelHeight)+6)
	op.ColorScale.ScaleWithColor(color.RGBA{220, 220, 220, 255})
	text.Draw(screen, status, face, op)
}

// Layout reports the fixed screen size for the board being viewed.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.states[g.stepIdx]
	w, h := g.renderer.BoardPixelSize(b.Width, b.Height)
	return w, h + statusHeight
}
