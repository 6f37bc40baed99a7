// Package render implements the terminal renderer: printing a board
// one character per cell per row, and stepping through a solved push
// sequence. Grounded on the original generator's Map::drawMap, which
// walks tiles row-major and writes a newline at the end of each row;
// this drops the Windows console color attributes (no analogue in a
// portable terminal writer) but keeps the same row/column walk and a
// one-rune-per-cell budget.
package render

import (
	"fmt"
	"io"

	"github.com/hailam/sokopush/internal/board"
	"github.com/hailam/sokopush/internal/search"
)

// Board writes b to w, one character per cell per row, using the
// classic Sokoban grid alphabet from board.Tile.String.
func Board(w io.Writer, b *board.Board) error {
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			if _, err := io.WriteString(w, b.Get(row, col).String()); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Move renders a single push as a short status line, e.g. "push box
// at (2,3) Right".
func Move(w io.Writer, m search.PushMove) error {
	_, err := fmt.Fprintf(w, "push box at (%d,%d) %s\n", m.Row, m.Col, m.Dir)
	return err
}

// Step prints the index'th state of a solve Result (index 0 is the
// canonicalized initial state) and, when index > 0, the move that
// produced it. states must be the sequence of boards the caller
// replayed from result.Path; Step itself does not replay moves.
func Step(w io.Writer, result search.Result, states []*board.Board, index int) error {
	if index < 0 || index >= len(states) {
		return fmt.Errorf("sokopush: step index %d out of range [0,%d)", index, len(states))
	}
	if index > 0 && index-1 < len(result.Path) {
		if err := Move(w, result.Path[index-1]); err != nil {
			return err
		}
	}
	return Board(w, states[index])
}

// Replay renders every state in a solved push sequence in order,
// starting from initial and applying result.Path one push at a time.
func Replay(w io.Writer, initial *board.Board, result search.Result) error {
	states, err := States(initial, result)
	if err != nil {
		return err
	}
	for i, s := range states {
		if i > 0 {
			if err := Move(w, result.Path[i-1]); err != nil {
				return err
			}
		}
		if err := Board(w, s); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// States replays result.Path from initial and returns every
// intermediate board, states[0] == a canonicalized clone of initial.
func States(initial *board.Board, result search.Result) ([]*board.Board, error) {
	cur := initial.Clone()
	board.Reach(cur)
	states := []*board.Board{cur}
	for _, m := range result.Path {
		next, ok := board.Push(cur, m.Row, m.Col, m.Dir)
		if !ok {
			return nil, fmt.Errorf("sokopush: recorded move (%d,%d) %s is illegal against its own predecessor state", m.Row, m.Col, m.Dir)
		}
		board.Reach(next)
		states = append(states, next)
		cur = next
	}
	return states, nil
}
