package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/hailam/sokopush/internal/storage"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sokopush",
		Short: "Generate, solve, and replay Sokoban puzzles",
		Long:  `sokopush generates random Sokoban boards, filters them to solvable ones, and solves or replays them.`,
	}

	rootCmd.AddCommand(
		generateCmd(),
		solveCmd(),
		replayCmd(),
		playCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStorage opens the persistent BadgerDB store, matching the
// teacher's own treatment of storage errors as fatal at main() rather
// than something a subcommand should recover from.
func openStorage() *storage.Storage {
	store, err := storage.NewStorage()
	if err != nil {
		log.Fatalf("sokopush: failed to open storage: %v", err)
	}
	return store
}
