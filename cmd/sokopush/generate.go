package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/hailam/sokopush/internal/board"
	"github.com/hailam/sokopush/internal/cache"
	"github.com/hailam/sokopush/internal/generate"
	"github.com/hailam/sokopush/internal/render"
	"github.com/hailam/sokopush/internal/storage"
	"github.com/hailam/sokopush/internal/templates"
)

func generateCmd() *cobra.Command {
	var width, height, walls, boxes, maxIters, attempts, workers int
	var seed uint64
	var outPath string
	var useTemplates bool
	var noPersist bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random solvable Sokoban board",
		Long: `Builds random candidate boards inside a bordered rectangle and keeps
the first one the solver proves solvable. With --workers > 1, races
that many independent candidates across goroutines and keeps whichever
solvable one finishes first.

Example:
  sokopush generate --width 9 --height 9 --boxes 3 --walls 6
  sokopush generate --workers 4`,
		Run: func(cmd *cobra.Command, args []string) {
			store := openStorage()
			defer store.Close()

			if !noPersist {
				if prefs, err := store.LoadPreferences(); err == nil && !cmd.Flags().Changed("width") {
					width, height, walls, boxes = prefs.Width, prefs.Height, prefs.Walls, prefs.Boxes
				}
			}

			var lib *templates.Library
			if useTemplates {
				lib = templates.Builtin()
			}

			params := generate.Params{
				Width: width, Height: height, Walls: walls, Boxes: boxes,
				MaxSolveIters: maxIters,
				Templates:     lib,
			}

			var res generate.Result
			var err error
			if workers > 1 {
				res, err = generate.GenerateSolvableBatch(generate.BatchParams{
					Params: params, Count: workers, Seed: seed, MaxAttempts: attempts,
				})
			} else {
				res, err = generate.GenerateSolvable(board.NewPRNG(seed), params, attempts)
			}
			if err != nil {
				log.Fatalf("sokopush: %v", err)
			}

			out := os.Stdout
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					log.Fatalf("sokopush: failed to create %s: %v", outPath, err)
				}
				defer f.Close()
				out = f
			}
			if err := render.Board(out, res.Board); err != nil {
				log.Fatalf("sokopush: failed to write board: %v", err)
			}

			if !noPersist {
				if err := store.SavePreferences(&storage.GeneratorPreferences{
					Width: width, Height: height, Walls: walls, Boxes: boxes, Seed: seed,
				}); err != nil {
					log.Printf("sokopush: failed to save preferences: %v", err)
				}
				if err := store.RecordPuzzle(storage.PuzzleRecord{
					Outcome: res.Solve.Outcome.String(),
					Pushes:  len(res.Solve.Path),
				}); err != nil {
					log.Printf("sokopush: failed to record puzzle: %v", err)
				}
				prober := cache.NewStorageProber(store)
				if err := prober.Store(res.Board.Fingerprint(), cache.Verdict{
					Outcome: res.Solve.Outcome.String(), Pushes: len(res.Solve.Path),
				}); err != nil {
					log.Printf("sokopush: failed to store cache entry: %v", err)
				}
			}

			fmt.Fprintf(os.Stderr, "solved in %d pushes (%d iterations)\n", len(res.Solve.Path), res.Solve.Iterations)
		},
	}

	cmd.Flags().IntVarP(&width, "width", "W", 9, "board width including border walls")
	cmd.Flags().IntVarP(&height, "height", "H", 9, "board height including border walls")
	cmd.Flags().IntVar(&walls, "walls", 6, "extra interior walls to place")
	cmd.Flags().IntVarP(&boxes, "boxes", "b", 3, "number of box/target pairs")
	cmd.Flags().IntVar(&maxIters, "max-iters", 500000, "solver iteration budget per candidate")
	cmd.Flags().IntVar(&attempts, "attempts", 500, "candidate boards to try before giving up")
	cmd.Flags().IntVar(&workers, "workers", 1, "independent candidates to race concurrently; the first solvable one wins")
	cmd.Flags().Uint64VarP(&seed, "seed", "s", 1, "PRNG seed; same seed plus same parameters reproduces the same board")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "file to write the board to (default stdout)")
	cmd.Flags().BoolVar(&useTemplates, "templates", false, "seed interior walls from the builtin room template library")
	cmd.Flags().BoolVar(&noPersist, "no-persist", false, "skip reading/writing generator preferences and puzzle stats")

	return cmd
}
