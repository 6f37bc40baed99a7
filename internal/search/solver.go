package search

import "github.com/hailam/sokopush/internal/board"

// Outcome classifies the result of a Solve call.
type Outcome int

const (
	Solved Outcome = iota
	Unsolvable
	BudgetExhausted
	Malformed
)

// String names the outcome for logging and the interactive shell.
func (o Outcome) String() string {
	switch o {
	case Solved:
		return "solved"
	case Unsolvable:
		return "unsolvable"
	case BudgetExhausted:
		return "budget-exhausted"
	case Malformed:
		return "malformed"
	default:
		return "?"
	}
}

// PushMove names a single push in a solution path: the box pushed, by
// its position before the push, and the direction it was pushed in.
type PushMove struct {
	Row, Col int
	Dir      board.Direction
}

// Result is the outcome of a Solve call.
type Result struct {
	Outcome    Outcome
	Iterations int
	Path       []PushMove // non-nil only when Outcome == Solved
	Err        error      // set only when Outcome == Malformed
}

// searchNode is one entry in the solver's node arena: the canonicalized
// board it represents, the arena index of the node it was reached from,
// and the push that produced it. Storing predecessors by arena index
// rather than as raw pointers keeps the whole search graph in one
// contiguous, garbage-collector-friendly slice (spec §9's design note).
type searchNode struct {
	board  *board.Board
	parent int // -1 for the root
	move   PushMove
}

// Solve runs a breadth-first search over push-successors of initial,
// per spec §4.7: at each frontier node, boxes are enumerated in
// row-major order and each is tried in board.Directions order, so two
// runs over the same input always explore states in the same order and
// return the same path on ties. Iterations are counted once per
// frontier node popped for expansion, before any of its successors are
// generated (matching the original solver's iterNum++ placement, once
// per state popped), and the budget is checked at that same point: a
// node is only expanded once the budget has headroom left for it, so
// maxIters=1 always exhausts on the very first node, win or not.
//
// initial must already satisfy the board invariants (see
// board.SetTiles / board.Parse); Solve itself never mutates it.
func Solve(initial *board.Board, maxIters int) Result {
	if initial == nil || initial.Width == 0 || initial.Height == 0 {
		return Result{Outcome: Malformed, Err: board.ErrMalformedBoard}
	}

	start := initial.Clone()
	board.Reach(start)

	if start.IsWin() {
		return Result{Outcome: Solved}
	}

	arena := []searchNode{{board: start, parent: -1}}
	visited := NewVisitedSet(start.Width, start.Height)
	visited.Insert(start)
	frontier := []int{0}

	iters := 0
	for len(frontier) > 0 {
		var next []int
		for _, curIdx := range frontier {
			iters++
			if iters >= maxIters {
				return Result{Outcome: BudgetExhausted, Iterations: iters}
			}

			cur := arena[curIdx].board
			for _, box := range cur.BoxCells() {
				for _, dir := range board.Directions {
					succ, ok := board.Push(cur, box[0], box[1], dir)
					if !ok {
						continue
					}
					board.Reach(succ)
					if board.Deadlocked(succ) {
						continue
					}
					if visited.Contains(succ) {
						continue
					}
					visited.Insert(succ)

					idx := len(arena)
					arena = append(arena, searchNode{
						board:  succ,
						parent: curIdx,
						move:   PushMove{Row: box[0], Col: box[1], Dir: dir},
					})

					if succ.IsWin() {
						return Result{
							Outcome:    Solved,
							Iterations: iters,
							Path:       reconstructPath(arena, idx),
						}
					}
					next = append(next, idx)
				}
			}
		}
		frontier = next
	}

	return Result{Outcome: Unsolvable, Iterations: iters}
}

// reconstructPath walks parent links from idx back to the root,
// returning the moves in forward (root-to-idx) order.
func reconstructPath(arena []searchNode, idx int) []PushMove {
	var reversed []PushMove
	for arena[idx].parent != -1 {
		reversed = append(reversed, arena[idx].move)
		idx = arena[idx].parent
	}
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	return reversed
}
