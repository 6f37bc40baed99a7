// Package repl implements the interactive shell for `sokopush play`,
// grounded on the teacher's internal/uci command loop: a line-oriented
// scanner over stdin dispatching on the first field, with output
// written directly to stdout/stderr rather than collected and
// returned, the same way the UCI handler streams "info"/"bestmove"
// lines as it goes.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hailam/sokopush/internal/board"
	"github.com/hailam/sokopush/internal/cache"
	"github.com/hailam/sokopush/internal/generate"
	"github.com/hailam/sokopush/internal/render"
	"github.com/hailam/sokopush/internal/search"
	"github.com/hailam/sokopush/internal/storage"
	"github.com/hailam/sokopush/internal/templates"
)

// Shell holds the state one interactive session threads between
// commands: the board currently on display, the last solve result
// and its replayed states, and the collaborators a generate/solve
// command needs.
type Shell struct {
	out       io.Writer
	store     *storage.Storage
	prober    cache.Prober
	templates *templates.Library
	rng       *board.PRNG

	current *board.Board
	result  search.Result
	states  []*board.Board
	stepIdx int
}

// New creates a shell writing to out. store and prober may be nil, in
// which case generate/solve skip persistence and caching.
func New(out io.Writer, store *storage.Storage, prober cache.Prober, seed uint64) *Shell {
	if prober == nil {
		prober = cache.NoopProber{}
	}
	return &Shell{
		out:       out,
		store:     store,
		prober:    prober,
		templates: templates.Builtin(),
		rng:       board.NewPRNG(seed),
	}
}

// Run starts the shell's main loop, reading commands from stdin one
// per line until "quit" or EOF.
func (s *Shell) Run() {
	scanner := bufio.NewScanner(os.Stdin)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "generate":
			s.handleGenerate(args)
		case "solve":
			s.handleSolve(args)
		case "show":
			s.handleShow()
		case "step":
			s.handleStep(args)
		case "undo":
			s.handleUndo()
		case "save":
			s.handleSave(args)
		case "quit":
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		}
	}
}

// handleGenerate parses "generate <width> <height> <walls> <boxes>"
// and stocks a freshly generated, solved board as the current one.
func (s *Shell) handleGenerate(args []string) {
	width, height, walls, boxes := 9, 9, 6, 3
	vals := []*int{&width, &height, &walls, &boxes}
	for i, a := range args {
		if i >= len(vals) {
			break
		}
		n, err := strconv.Atoi(a)
		if err != nil {
			fmt.Fprintf(os.Stderr, "generate: invalid number %q\n", a)
			return
		}
		*vals[i] = n
	}

	params := generate.Params{
		Width: width, Height: height, Walls: walls, Boxes: boxes,
		MaxSolveIters: 500000,
		Templates:     s.templates,
	}
	res, err := generate.GenerateSolvable(s.rng, params, 500)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		return
	}

	s.setCurrent(res.Board)
	s.result = res.Solve
	if s.store != nil {
		prefs := &storage.GeneratorPreferences{Width: width, Height: height, Walls: walls, Boxes: boxes}
		if err := s.store.SavePreferences(prefs); err != nil {
			fmt.Fprintf(os.Stderr, "generate: failed to save preferences: %v\n", err)
		}
		if err := s.store.RecordPuzzle(storage.PuzzleRecord{Outcome: "solved", Pushes: len(res.Solve.Path)}); err != nil {
			fmt.Fprintf(os.Stderr, "generate: failed to record puzzle: %v\n", err)
		}
	}
	fmt.Fprintf(s.out, "generated %dx%d board, solved in %d pushes\n", width, height, len(res.Solve.Path))
	render.Board(s.out, s.current)
}

// handleSolve runs the solver on the current board, consulting and
// updating the cache the same way the teacher's tablebase probe sits
// in front of a full search.
func (s *Shell) handleSolve(args []string) {
	if s.current == nil {
		fmt.Fprintln(os.Stderr, "solve: no board loaded, run generate first")
		return
	}

	maxIters := 500000
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			maxIters = n
		}
	}

	fp := s.current.Fingerprint()
	if v, ok := s.prober.Probe(fp); ok {
		fmt.Fprintf(s.out, "cache hit: %s (%d pushes)\n", v.Outcome, v.Pushes)
	}

	result := search.Solve(s.current, maxIters)
	s.result = result
	s.rebuildStates()

	outcome := result.Outcome.String()
	if err := s.prober.Store(fp, cache.Verdict{Outcome: outcome, Pushes: len(result.Path)}); err != nil {
		fmt.Fprintf(os.Stderr, "solve: failed to store cache entry: %v\n", err)
	}
	if s.store != nil {
		if err := s.store.RecordPuzzle(storage.PuzzleRecord{Outcome: outcome, Pushes: len(result.Path)}); err != nil {
			fmt.Fprintf(os.Stderr, "solve: failed to record puzzle: %v\n", err)
		}
	}

	fmt.Fprintf(s.out, "%s in %d iterations, %d pushes\n", outcome, result.Iterations, len(result.Path))
}

// handleShow prints the board currently being stepped through, or the
// live current board if no solve has run yet.
func (s *Shell) handleShow() {
	b := s.current
	if len(s.states) > 0 {
		b = s.states[s.stepIdx]
	}
	if b == nil {
		fmt.Fprintln(os.Stderr, "show: no board loaded")
		return
	}
	render.Board(s.out, b)
}

// handleStep advances the step cursor by n (default 1) through the
// last solve's replayed states, printing the move and resulting board.
func (s *Shell) handleStep(args []string) {
	if len(s.states) == 0 {
		fmt.Fprintln(os.Stderr, "step: nothing to step through, run solve first")
		return
	}
	n := 1
	if len(args) > 0 {
		if v, err := strconv.Atoi(args[0]); err == nil {
			n = v
		}
	}
	next := s.stepIdx + n
	if next < 0 || next >= len(s.states) {
		fmt.Fprintf(os.Stderr, "step: index %d out of range [0,%d)\n", next, len(s.states))
		return
	}
	s.stepIdx = next
	render.Step(s.out, s.result, s.states, s.stepIdx)
}

// handleUndo steps back one position, the mirror of "step 1".
func (s *Shell) handleUndo() {
	s.handleStep([]string{"-1"})
}

// handleSave writes the board currently on display to a file in the
// classic Sokoban grid format.
func (s *Shell) handleSave(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "save: missing file path")
		return
	}
	b := s.current
	if len(s.states) > 0 {
		b = s.states[s.stepIdx]
	}
	if b == nil {
		fmt.Fprintln(os.Stderr, "save: no board loaded")
		return
	}

	f, err := os.Create(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "save: %v\n", err)
		return
	}
	defer f.Close()
	if err := render.Board(f, b); err != nil {
		fmt.Fprintf(os.Stderr, "save: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "saved to %s\n", args[0])
}

func (s *Shell) setCurrent(b *board.Board) {
	s.current = b
	s.result = search.Result{}
	s.states = nil
	s.stepIdx = 0
}

func (s *Shell) rebuildStates() {
	s.stepIdx = 0
	if s.result.Outcome != search.Solved {
		s.states = nil
		return
	}
	states, err := render.States(s.current, s.result)
	if err != nil {
		fmt.Fprintf(os.Stderr, "solve: failed to replay solution: %v\n", err)
		s.states = nil
		return
	}
	s.states = states
}
