package repl

import (
	"strings"
	"testing"

	"github.com/hailam/sokopush/internal/board"
	"github.com/hailam/sokopush/internal/cache"
	"github.com/hailam/sokopush/internal/search"
)

func newTestShell(out *strings.Builder) *Shell {
	return New(out, nil, cache.NoopProber{}, 1)
}

func TestGenerateThenSolveThenStep(t *testing.T) {
	var out strings.Builder
	s := newTestShell(&out)

	s.handleGenerate([]string{"7", "7", "1", "2"})
	if s.current == nil {
		t.Fatal("expected generate to set a current board")
	}
	if !strings.Contains(out.String(), "generated 7x7 board") {
		t.Errorf("expected a generation summary line, got %q", out.String())
	}

	out.Reset()
	s.handleSolve(nil)
	if s.result.Outcome != search.Solved {
		t.Fatalf("expected a solved result, got %v", s.result.Outcome)
	}
	if len(s.states) == 0 {
		t.Fatal("expected solve to populate replay states")
	}

	out.Reset()
	s.handleStep(nil)
	if s.stepIdx != 1 {
		t.Fatalf("expected stepIdx 1 after one step, got %d", s.stepIdx)
	}
	if out.Len() == 0 {
		t.Error("expected step to write output")
	}

	out.Reset()
	s.handleUndo()
	if s.stepIdx != 0 {
		t.Fatalf("expected stepIdx back to 0 after undo, got %d", s.stepIdx)
	}
}

func TestStepBeforeSolveReportsError(t *testing.T) {
	var out strings.Builder
	s := newTestShell(&out)
	s.current, _ = board.Parse("#####\n#@$.#\n#####")
	s.handleStep(nil)
	if s.stepIdx != 0 {
		t.Errorf("expected stepIdx to stay at 0 with no solve yet, got %d", s.stepIdx)
	}
}

func TestSolveUsesCacheOnSecondCall(t *testing.T) {
	var out strings.Builder
	inner := make(map[uint64]cache.Verdict)
	prober := &fakeProber{entries: inner}
	s := New(&out, nil, prober, 3)

	b, err := board.Parse("######\n#@$ .#\n######")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	s.current = b

	s.handleSolve(nil)
	if s.result.Outcome != search.Solved {
		t.Fatalf("expected solved, got %v", s.result.Outcome)
	}
	if len(inner) != 1 {
		t.Fatalf("expected solve to store one cache entry, got %d", len(inner))
	}

	out.Reset()
	s.handleSolve(nil)
	if !strings.Contains(out.String(), "cache hit") {
		t.Errorf("expected a cache hit line on the second solve, got %q", out.String())
	}
}

type fakeProber struct {
	entries map[uint64]cache.Verdict
}

func (f *fakeProber) Probe(fp uint64) (cache.Verdict, bool) {
	v, ok := f.entries[fp]
	return v, ok
}

func (f *fakeProber) Store(fp uint64, v cache.Verdict) error {
	f.entries[fp] = v
	return nil
}

func (f *fakeProber) Available() bool { return true }
