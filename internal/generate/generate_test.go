package generate

import (
	"testing"

	"github.com/hailam/sokopush/internal/board"
	"github.com/hailam/sokopush/internal/search"
	"github.com/hailam/sokopush/internal/templates"
)

func TestNewBoardIsBorderedAndEmpty(t *testing.T) {
	b := NewBoard(6, 5)
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			isBorder := row == 0 || row == b.Height-1 || col == 0 || col == b.Width-1
			got := b.Get(row, col)
			if isBorder && got != board.Wall {
				t.Fatalf("border cell (%d,%d) = %v, want Wall", row, col, got)
			}
			if !isBorder && got != board.Floor {
				t.Fatalf("interior cell (%d,%d) = %v, want Floor", row, col, got)
			}
		}
	}
}

func TestPlaceBoxesAndTargetsKeepsCountsEqual(t *testing.T) {
	b := NewBoard(8, 8)
	rng := board.NewPRNG(42)
	if !PlacePlayer(b, rng) {
		t.Fatal("expected to place a player on an empty board")
	}
	placed := PlaceBoxesAndTargets(b, rng, 5)
	if placed != 5 {
		t.Fatalf("expected to place 5 pairs on an empty 8x8 board, placed %d", placed)
	}

	boxes, targets := 0, 0
	for _, tile := range b.Tiles {
		if tile.HasBox() {
			boxes++
		}
		if tile.HasTarget() {
			targets++
		}
	}
	if boxes != placed || targets != placed {
		t.Errorf("boxes=%d targets=%d, want both == %d", boxes, targets, placed)
	}
}

func TestGenerateSolvableProducesASolvedBoard(t *testing.T) {
	rng := board.NewPRNG(7)
	params := Params{Width: 7, Height: 7, Walls: 2, Boxes: 2, MaxSolveIters: 200000}
	res, err := GenerateSolvable(rng, params, 500)
	if err != nil {
		t.Fatalf("GenerateSolvable failed: %v", err)
	}
	if res.Solve.Outcome != search.Solved {
		t.Fatalf("expected a Solved candidate, got %v", res.Solve.Outcome)
	}
	if len(res.Solve.Path) == 0 {
		t.Error("expected a non-empty push path for a generated (non-trivial) board")
	}
}

func TestGenerateSolvableAppliesMatchingTemplate(t *testing.T) {
	lib := templates.New()
	lib.Add(templates.Template{Width: 7, Height: 7, Weight: 1, Walls: []templates.Cell{{Row: 3, Col: 3}}})

	rng := board.NewPRNG(7)
	params := Params{Width: 7, Height: 7, Walls: 1, Boxes: 2, MaxSolveIters: 200000, Templates: lib}
	res, err := GenerateSolvable(rng, params, 500)
	if err != nil {
		t.Fatalf("GenerateSolvable failed: %v", err)
	}
	// A template wall is applied before any other placement, so later
	// placement steps (which only ever overwrite Floor cells) can never
	// dislodge it.
	if res.Board.Get(3, 3) != board.Wall {
		t.Errorf("expected the template's interior wall cell to survive as Wall, got %v", res.Board.Get(3, 3))
	}
}

func TestGenerateSolvableBatchReturnsASolvedResult(t *testing.T) {
	bp := BatchParams{
		Params:      Params{Width: 7, Height: 7, Walls: 2, Boxes: 2, MaxSolveIters: 200000},
		Count:       4,
		Seed:        1234,
		MaxAttempts: 500,
	}
	res, err := GenerateSolvableBatch(bp)
	if err != nil {
		t.Fatalf("GenerateSolvableBatch failed: %v", err)
	}
	if res.Solve.Outcome != search.Solved {
		t.Fatalf("expected a Solved result, got %v", res.Solve.Outcome)
	}
}

// The batch as a whole races workers and returns whichever finishes
// first, so it makes no promise about which slot wins. What must stay
// reproducible is each slot's own derived seed: rerunning the exact
// same slot always produces the exact same board.
func TestGenerateSolvableBatchSlotsAreIndividuallyReproducible(t *testing.T) {
	params := Params{Width: 7, Height: 7, Walls: 2, Boxes: 2, MaxSolveIters: 200000}
	const seed = uint64(1234)

	for slot := 0; slot < 3; slot++ {
		derived := seed + uint64(slot)*0x9E3779B97F4A7C15
		first, err1 := GenerateSolvable(board.NewPRNG(derived), params, 500)
		second, err2 := GenerateSolvable(board.NewPRNG(derived), params, 500)
		if (err1 == nil) != (err2 == nil) {
			t.Fatalf("slot %d: error mismatch across runs: %v vs %v", slot, err1, err2)
		}
		if err1 != nil {
			continue
		}
		if !first.Board.Equals(second.Board) {
			t.Errorf("slot %d: same derived seed produced different boards across runs", slot)
		}
	}
}

func TestGenerateSolvableBatchRequiresAtLeastOneWorker(t *testing.T) {
	if _, err := GenerateSolvableBatch(BatchParams{}); err == nil {
		t.Fatal("expected an error when Count is 0")
	}
}
