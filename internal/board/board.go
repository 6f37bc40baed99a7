package board

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedBoard is returned when a tile grid violates the
// invariants of the board model (exactly one player, coherent box and
// target counts, walled border).
var ErrMalformedBoard = errors.New("sokopush: malformed board")

// Board represents a single Sokoban board state: a bordered grid plus
// the player's cached position. It is the unit of deduplication for
// the solver's visited set.
type Board struct {
	Width, Height int
	Tiles         []Tile // row-major, len == Width*Height

	// PlayerRow, PlayerCol cache the player's position for O(1) access.
	// Redundant with Tiles; kept in sync by every mutator.
	PlayerRow, PlayerCol int
}

// New allocates a Width x Height board of Floor tiles. The caller is
// expected to fill in walls, boxes, targets, and the player via
// SetTiles (or by writing Tiles directly followed by a call to
// locatePlayer).
func New(w, h int) *Board {
	return &Board{
		Width:  w,
		Height: h,
		Tiles:  make([]Tile, w*h),
	}
}

// at returns the row-major index of (row, col).
func (b *Board) at(row, col int) int {
	return row*b.Width + col
}

// InBounds reports whether (row, col) is within the grid.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Height && col >= 0 && col < b.Width
}

// Get returns the tile at (row, col). Callers must ensure InBounds.
func (b *Board) Get(row, col int) Tile {
	return b.Tiles[b.at(row, col)]
}

// Set writes the tile at (row, col). Callers must ensure InBounds.
func (b *Board) Set(row, col int, t Tile) {
	b.Tiles[b.at(row, col)] = t
}

// SetTiles installs an externally constructed tile array, locates the
// single player cell, and validates the box/target/border invariants
// of spec.md §3. The slice must have length Width*Height.
func (b *Board) SetTiles(tiles []Tile) error {
	if len(tiles) != b.Width*b.Height {
		return fmt.Errorf("%w: expected %d tiles, got %d", ErrMalformedBoard, b.Width*b.Height, len(tiles))
	}
	b.Tiles = tiles
	return b.locatePlayerAndValidate()
}

// locatePlayerAndValidate scans Tiles once to cache the player
// position and check the invariants of spec.md §3.
func (b *Board) locatePlayerAndValidate() error {
	players, boxes, targets := 0, 0, 0
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			t := b.Get(row, col)
			switch t {
			case Player, PlayerOnTarget:
				players++
				b.PlayerRow, b.PlayerCol = row, col
			case Box:
				boxes++
			case BoxOnTarget:
				boxes++
				targets++
			case Target:
				targets++
			}
			isBorder := row == 0 || row == b.Height-1 || col == 0 || col == b.Width-1
			if isBorder && t != Wall {
				return fmt.Errorf("%w: border cell (%d,%d) is not a wall", ErrMalformedBoard, row, col)
			}
		}
	}
	if players != 1 {
		return fmt.Errorf("%w: expected exactly one player, found %d", ErrMalformedBoard, players)
	}
	if boxes == 0 {
		return fmt.Errorf("%w: board has no boxes", ErrMalformedBoard)
	}
	if boxes != targets {
		return fmt.Errorf("%w: box count %d does not match target count %d", ErrMalformedBoard, boxes, targets)
	}
	return nil
}

// Clone produces an independent copy of the board. Clone is the only
// sanctioned way to derive a successor: mutators always operate on a
// freshly cloned board so predecessors stay immutable for path
// reconstruction.
func (b *Board) Clone() *Board {
	tiles := make([]Tile, len(b.Tiles))
	copy(tiles, b.Tiles)
	return &Board{
		Width:     b.Width,
		Height:    b.Height,
		Tiles:     tiles,
		PlayerRow: b.PlayerRow,
		PlayerCol: b.PlayerCol,
	}
}

// Equals reports whether two boards have identical tile arrays.
// Dimensions must match; callers performing deduplication must have
// already canonicalized both boards via Reach.
func (b *Board) Equals(o *Board) bool {
	if o == nil || b.Width != o.Width || b.Height != o.Height {
		return false
	}
	for i, t := range b.Tiles {
		if o.Tiles[i] != t {
			return false
		}
	}
	return true
}

// IsWin reports whether no Box cell remains (every box sits on a
// target).
func (b *Board) IsWin() bool {
	for _, t := range b.Tiles {
		if t == Box {
			return false
		}
	}
	return true
}

// BoxCells returns the (row, col) of every cell currently holding a
// box, in row-major order. The order matters: the solver enumerates
// push candidates in this order for deterministic output (spec §4.7).
func (b *Board) BoxCells() [][2]int {
	var cells [][2]int
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			if b.Get(row, col).HasBox() {
				cells = append(cells, [2]int{row, col})
			}
		}
	}
	return cells
}

// String renders the board as a classic Sokoban character grid, one
// row per line.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			sb.WriteString(b.Get(row, col).String())
		}
		if row < b.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Parse builds a Board from classic Sokoban grid text: non-blank lines
// become rows, padded with Floor on the right to the widest row's
// length. Returns ErrMalformedBoard if the grid's invariants don't
// hold once parsed.
func Parse(text string) (*Board, error) {
	var rows [][]Tile
	width := 0
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if strings.TrimSpace(line) == "" && len(rows) == 0 {
			continue
		}
		row := make([]Tile, 0, len(line))
		for i := 0; i < len(line); i++ {
			t, ok := TileFromChar(line[i])
			if !ok {
				return nil, fmt.Errorf("%w: invalid character %q at row %d col %d", ErrMalformedBoard, line[i], len(rows), i)
			}
			row = append(row, t)
		}
		if len(row) > width {
			width = len(row)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 || width == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrMalformedBoard)
	}

	b := New(width, len(rows))
	for r, row := range rows {
		for c := 0; c < width; c++ {
			if c < len(row) {
				b.Tiles[b.at(r, c)] = row[c]
			} else {
				b.Tiles[b.at(r, c)] = Floor
			}
		}
	}
	if err := b.locatePlayerAndValidate(); err != nil {
		return nil, err
	}
	return b, nil
}
