package render

import (
	"strings"
	"testing"

	"github.com/hailam/sokopush/internal/board"
	"github.com/hailam/sokopush/internal/search"
)

func TestBoardWritesOneLinePerRow(t *testing.T) {
	b, err := board.Parse("#####\n#@$.#\n#####")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	var buf strings.Builder
	if err := Board(&buf, b); err != nil {
		t.Fatalf("Board failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 5 {
			t.Errorf("expected 5 runes per row, got %q", line)
		}
	}
}

func TestStatesReplaysSolvedPath(t *testing.T) {
	b, err := board.Parse("#####\n#@$.#\n#####")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	result := search.Solve(b, 1000)
	if result.Outcome != search.Solved {
		t.Fatalf("expected Solved, got %v", result.Outcome)
	}

	states, err := States(b, result)
	if err != nil {
		t.Fatalf("States failed: %v", err)
	}
	if len(states) != len(result.Path)+1 {
		t.Fatalf("expected %d states, got %d", len(result.Path)+1, len(states))
	}
	if !states[len(states)-1].IsWin() {
		t.Error("expected the final replayed state to be a win")
	}
}

func TestReplayWritesOneBoardPerState(t *testing.T) {
	b, err := board.Parse("######\n#@$ .#\n######")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	result := search.Solve(b, 1000)
	if result.Outcome != search.Solved {
		t.Fatalf("expected Solved, got %v", result.Outcome)
	}

	var buf strings.Builder
	if err := Replay(&buf, b, result); err != nil {
		t.Fatalf("Replay failed: %v", err)
	}
	if !strings.Contains(buf.String(), "push box at") {
		t.Error("expected at least one move status line")
	}
}

func TestStepRejectsOutOfRangeIndex(t *testing.T) {
	b, _ := board.Parse("#####\n#@$.#\n#####")
	result := search.Solve(b, 1000)
	states, err := States(b, result)
	if err != nil {
		t.Fatalf("States failed: %v", err)
	}
	var buf strings.Builder
	if err := Step(&buf, result, states, len(states)); err == nil {
		t.Error("expected an error for an out-of-range step index")
	}
}
