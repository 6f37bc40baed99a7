package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/hailam/sokopush/internal/render"
	"github.com/hailam/sokopush/internal/search"
)

func replayCmd() *cobra.Command {
	var inPath string
	var maxIters int

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Solve a board and print every state of the solution",
		Long: `Reads a board, solves it, and prints the canonicalized initial
state followed by one board per push until the win state.

Example:
  sokopush replay --in puzzle.txt`,
		Run: func(cmd *cobra.Command, args []string) {
			b := readBoard(inPath)
			result := search.Solve(b, maxIters)
			if result.Outcome != search.Solved {
				log.Fatalf("sokopush: board is %s, nothing to replay", result.Outcome)
			}
			if err := render.Replay(os.Stdout, b, result); err != nil {
				log.Fatalf("sokopush: %v", err)
			}
		},
	}

	cmd.Flags().StringVarP(&inPath, "in", "i", "", "file to read the board from (default stdin)")
	cmd.Flags().IntVar(&maxIters, "max-iters", 500000, "solver iteration budget")

	return cmd
}
