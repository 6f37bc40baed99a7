// Package generate builds random Sokoban boards and filters them down
// to solvable ones, grounded on the original implementation's
// GenerateLevel (random placement with a bounded retry budget) and the
// teacher's worker fan-out for running many candidates concurrently.
package generate

import (
	"fmt"

	"github.com/hailam/sokopush/internal/board"
	"github.com/hailam/sokopush/internal/search"
	"github.com/hailam/sokopush/internal/templates"
)

// placementAttempts bounds how many random cells a placement call will
// try before giving up, matching the original generator's gtime=1000
// retry budget per placement.
const placementAttempts = 1000

// NewBoard allocates a w x h board bordered entirely by Wall, with
// every interior cell Floor. Mirrors GenerateLevel's constructor.
func NewBoard(w, h int) *board.Board {
	b := board.New(w, h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if row == 0 || row == h-1 || col == 0 || col == w-1 {
				b.Set(row, col, board.Wall)
			} else {
				b.Set(row, col, board.Floor)
			}
		}
	}
	return b
}

// PlaceWalls converts up to count interior Floor cells to Wall, each
// chosen by repeated random sampling bounded by placementAttempts. A
// cell that is already occupied is simply retried, same as the
// original generator's generateWall.
func PlaceWalls(b *board.Board, rng *board.PRNG, count int) int {
	placed := 0
	for i := 0; i < count; i++ {
		if placeOn(b, rng, board.Floor, board.Wall) {
			placed++
		}
	}
	return placed
}

// placeOn tries placementAttempts random interior cells and overwrites
// the first one found holding want with have, reporting success.
func placeOn(b *board.Board, rng *board.PRNG, want, have board.Tile) bool {
	for attempt := 0; attempt < placementAttempts; attempt++ {
		row := 1 + rng.IntN(b.Height-2)
		col := 1 + rng.IntN(b.Width-2)
		if b.Get(row, col) == want {
			b.Set(row, col, have)
			return true
		}
	}
	return false
}

// PlacePlayer drops the player onto a random Floor cell, same retry
// shape as the original generateChar.
func PlacePlayer(b *board.Board, rng *board.PRNG) bool {
	for attempt := 0; attempt < placementAttempts; attempt++ {
		row := 1 + rng.IntN(b.Height-2)
		col := 1 + rng.IntN(b.Width-2)
		if b.Get(row, col) == board.Floor {
			b.Set(row, col, board.Player)
			b.PlayerRow, b.PlayerCol = row, col
			return true
		}
	}
	return false
}

// PlaceBoxesAndTargets drops n box/target pairs onto distinct Floor
// cells: n targets first, then n boxes, so a box is never placed on a
// cell that was just reserved as someone else's target (mirrors
// generateBox/generateAid run back to back in the original, but pairs
// them explicitly since this model requires boxes==targets).
func PlaceBoxesAndTargets(b *board.Board, rng *board.PRNG, n int) int {
	placed := 0
	for i := 0; i < n; i++ {
		if !placeOn(b, rng, board.Floor, board.Target) {
			break
		}
		if !placeOn(b, rng, board.Floor, board.Box) {
			// Undo the now-unmatched target rather than leave boxes !=
			// targets, which board.SetTiles would reject outright.
			undoLastPlacement(b, board.Target, board.Floor)
			break
		}
		placed++
	}
	return placed
}

// undoLastPlacement reverts the most recently placed `from` tile back
// to `to`. Placement order is LIFO only by construction: it is called
// immediately after the failed companion placement, before any other
// mutation, so the first matching cell found is the right one to the
// same extent the original generator's single-shot retries were.
func undoLastPlacement(b *board.Board, from, to board.Tile) {
	for i, t := range b.Tiles {
		if t == from {
			b.Tiles[i] = to
			return
		}
	}
}

// Params configures a single generation attempt.
type Params struct {
	Width, Height int
	Walls         int
	Boxes         int
	MaxSolveIters int

	// Templates, if set, is probed for a (Width, Height) room layout
	// before walls and boxes are placed at random. A nil library, or
	// one with no match for this size, falls back to a plain open
	// interior, same as leaving it unset.
	Templates *templates.Library
}

// Result is one generated candidate and its solver verdict.
type Result struct {
	Board  *board.Board
	Solve  search.Result
	Params Params
}

// GenerateSolvable repeatedly builds a random candidate board from rng
// and solves it, returning the first one the solver reports Solved on.
// rng is threaded through explicitly by the caller rather than reseeded
// per attempt from wall-clock time, which is what let the original
// GenerateLevel silently retry the exact same placement when called
// twice within the same clock tick (spec §9's design note).
func GenerateSolvable(rng *board.PRNG, p Params, maxAttempts int) (Result, error) {
	var last Result
	for attempt := 0; attempt < maxAttempts; attempt++ {
		b := NewBoard(p.Width, p.Height)
		if tmpl, ok := p.Templates.Probe(p.Width, p.Height, rng); ok {
			templates.Apply(b, tmpl)
		}
		PlaceWalls(b, rng, p.Walls)
		if !PlacePlayer(b, rng) {
			continue
		}
		if PlaceBoxesAndTargets(b, rng, p.Boxes) != p.Boxes {
			continue
		}
		if err := b.SetTiles(b.Tiles); err != nil {
			continue
		}

		res := search.Solve(b, p.MaxSolveIters)
		last = Result{Board: b, Solve: res, Params: p}
		if res.Outcome == search.Solved && len(res.Path) > 0 {
			return last, nil
		}
	}
	return last, fmt.Errorf("sokopush: no solvable board found in %d attempts", maxAttempts)
}
