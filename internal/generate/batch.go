package generate

import (
	"fmt"

	"github.com/hailam/sokopush/internal/board"
)

// BatchParams configures a concurrent run of GenerateSolvable.
type BatchParams struct {
	Params
	Count       int    // number of independent workers to race
	Seed        uint64 // master seed; each worker derives its own stream from it
	MaxAttempts int    // attempts per worker before giving up on its board
}

// workerResult pairs a batch slot with its outcome, mirroring the
// teacher's WorkerResult/resultCh pattern for collecting concurrent
// search output.
type workerResult struct {
	slot   int
	result Result
	err    error
}

// GenerateSolvableBatch fans bp.Count independent GenerateSolvable
// calls out across goroutines, one per slot, each with its own
// board.PRNG seeded deterministically from bp.Seed and its slot index,
// and returns the first one to come back solvable — grounded on the
// teacher's workerSearch/resultCh fan-out, itself several independent
// single-threaded searches racing for the first usable result rather
// than a pool that must finish in lockstep. Losing workers are left to
// finish on their own time; their results are simply never read.
func GenerateSolvableBatch(bp BatchParams) (Result, error) {
	if bp.Count <= 0 {
		return Result{}, fmt.Errorf("sokopush: batch requires at least one worker, got %d", bp.Count)
	}

	resultCh := make(chan workerResult, bp.Count)
	for slot := 0; slot < bp.Count; slot++ {
		go func(slot int) {
			rng := board.NewPRNG(bp.Seed + uint64(slot)*0x9E3779B97F4A7C15)
			res, err := GenerateSolvable(rng, bp.Params, bp.MaxAttempts)
			resultCh <- workerResult{slot: slot, result: res, err: err}
		}(slot)
	}

	var lastErr error
	for i := 0; i < bp.Count; i++ {
		wr := <-resultCh
		if wr.err == nil {
			return wr.result, nil
		}
		lastErr = wr.err
	}
	return Result{}, fmt.Errorf("sokopush: no worker produced a solvable board: %w", lastErr)
}
