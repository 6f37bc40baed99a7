package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/sokopush/internal/board"
	"github.com/hailam/sokopush/internal/search"
	"github.com/hailam/sokopush/internal/view"
)

var (
	inPath   = flag.String("in", "", "file to read the board from (default stdin)")
	maxIters = flag.Int("max-iters", 500000, "solver iteration budget")
)

func main() {
	flag.Parse()

	b, err := readBoard(*inPath)
	if err != nil {
		log.Fatalf("sokopush-view: %v", err)
	}

	result := search.Solve(b, *maxIters)
	if result.Outcome != search.Solved {
		log.Fatalf("sokopush-view: board is %s, nothing to view", result.Outcome)
	}

	g, err := view.New(b, result)
	if err != nil {
		log.Fatalf("sokopush-view: %v", err)
	}

	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("sokopush")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("sokopush-view: %v", err)
	}
}

func readBoard(path string) (*board.Board, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return board.Parse(string(data))
}
