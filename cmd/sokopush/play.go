package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hailam/sokopush/internal/cache"
	"github.com/hailam/sokopush/internal/repl"
	"github.com/hailam/sokopush/internal/storage"
)

func playCmd() *cobra.Command {
	var seed uint64
	var noPersist bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start an interactive generate/solve/step shell",
		Long: `Starts a line-oriented shell accepting generate, solve, show, step,
undo, save, and quit commands, one per line from stdin.`,
		Run: func(cmd *cobra.Command, args []string) {
			var store *storage.Storage
			var prober cache.Prober = cache.NoopProber{}

			if !noPersist {
				store = openStorage()
				defer store.Close()
				prober = cache.NewMemoryProber(cache.NewStorageProber(store), 1024)
			}

			shell := repl.New(os.Stdout, store, prober, seed)
			shell.Run()
		},
	}

	cmd.Flags().Uint64VarP(&seed, "seed", "s", 1, "PRNG seed for generate")
	cmd.Flags().BoolVar(&noPersist, "no-persist", false, "skip reading/writing preferences and puzzle stats")

	return cmd
}
