package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/hailam/sokopush/internal/board"
	"github.com/hailam/sokopush/internal/cache"
	"github.com/hailam/sokopush/internal/search"
	"github.com/hailam/sokopush/internal/storage"
)

func solveCmd() *cobra.Command {
	var inPath string
	var maxIters int
	var noCache bool

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a Sokoban board read from a file or stdin",
		Long: `Reads a board in the classic Sokoban grid format and runs the BFS
solver, consulting the solved-state cache first.

Example:
  sokopush solve --in puzzle.txt`,
		Run: func(cmd *cobra.Command, args []string) {
			b := readBoard(inPath)

			var prober cache.Prober = cache.NoopProber{}
			var store *storage.Storage
			if !noCache {
				store = openStorage()
				defer store.Close()
				prober = cache.NewMemoryProber(cache.NewStorageProber(store), 1024)
			}

			fp := b.Fingerprint()
			if v, ok := prober.Probe(fp); ok {
				fmt.Printf("cache hit: %s (%d pushes)\n", v.Outcome, v.Pushes)
				return
			}

			result := search.Solve(b, maxIters)
			fmt.Printf("%s in %d iterations, %d pushes\n", result.Outcome, result.Iterations, len(result.Path))

			if err := prober.Store(fp, cache.Verdict{Outcome: result.Outcome.String(), Pushes: len(result.Path)}); err != nil {
				log.Printf("sokopush: failed to store cache entry: %v", err)
			}
			if store != nil {
				if err := store.RecordPuzzle(storage.PuzzleRecord{Outcome: result.Outcome.String(), Pushes: len(result.Path)}); err != nil {
					log.Printf("sokopush: failed to record puzzle: %v", err)
				}
			}
		},
	}

	cmd.Flags().StringVarP(&inPath, "in", "i", "", "file to read the board from (default stdin)")
	cmd.Flags().IntVar(&maxIters, "max-iters", 500000, "solver iteration budget")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "skip the solved-state cache")

	return cmd
}

// readBoard reads and parses a board from path, or from stdin if path
// is empty.
func readBoard(path string) *board.Board {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			log.Fatalf("sokopush: %v", err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		log.Fatalf("sokopush: failed to read board: %v", err)
	}
	b, err := board.Parse(string(data))
	if err != nil {
		log.Fatalf("sokopush: %v", err)
	}
	return b
}
