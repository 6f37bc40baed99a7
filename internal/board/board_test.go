package board

import "testing"

func mustParse(t *testing.T, text string) *Board {
	t.Helper()
	b, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return b
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"no player": "####\n#$.#\n####",
		"two players": "#####\n#@.@#\n#####",
		"mismatched box/target": "#####\n#@$$#\n#####",
	}
	for name, text := range cases {
		if _, err := Parse(text); err == nil {
			t.Errorf("%s: expected ErrMalformedBoard, got nil", name)
		}
	}
}

func TestCloneIndependence(t *testing.T) {
	b := mustParse(t, "#####\n#@$.#\n#####")
	clone := b.Clone()
	clone.Set(1, 1, Floor)
	if b.Get(1, 1) == Floor {
		t.Fatal("mutating clone affected original")
	}
	if !b.Equals(b.Clone()) {
		t.Fatal("a board must equal its own clone")
	}
}

func TestIsWin(t *testing.T) {
	win := mustParse(t, "#####\n#@* #\n#####")
	if !win.IsWin() {
		t.Error("board with no remaining Box should be a win")
	}
	notWin := mustParse(t, "#####\n#@$.#\n#####")
	if notWin.IsWin() {
		t.Error("board with a remaining Box should not be a win")
	}
}

func TestReachIdempotent(t *testing.T) {
	b := mustParse(t, "#####\n#@  #\n# $.#\n#####")
	Reach(b)
	once := b.String()
	Reach(b)
	if b.String() != once {
		t.Errorf("Reach is not idempotent:\nfirst:\n%s\nsecond:\n%s", once, b.String())
	}
}

func TestReachCanonicalizesEquivalentPositions(t *testing.T) {
	a := mustParse(t, "#####\n#@  #\n# $.#\n#####")
	b2 := mustParse(t, "#####\n#  @#\n# $.#\n#####")
	Reach(a)
	Reach(b2)
	if !a.Equals(b2) {
		t.Errorf("two boards whose players share a reachable region should canonicalize equal:\na:\n%s\nb:\n%s", a, b2)
	}
}

func TestPushLegalitySceneOnePush(t *testing.T) {
	b := mustParse(t, "#####\n#@$.#\n#####")
	Reach(b)
	next, ok := Push(b, 1, 2, Right)
	if !ok {
		t.Fatal("expected push to be legal")
	}
	Reach(next)
	if !next.IsWin() {
		t.Errorf("expected win after one push, got:\n%s", next)
	}
	if next.Get(1, 2) != PlayerReach && next.Get(1, 2) != Player {
		t.Errorf("player should occupy the vacated box cell")
	}
}

func TestPushIllegalWhenDestinationBlocked(t *testing.T) {
	b := mustParse(t, "#####\n#@$$#\n#.. #\n#####")
	Reach(b)
	if _, ok := Push(b, 1, 2, Right); ok {
		t.Error("push into another box must be illegal")
	}
}

func TestPushIllegalWhenPlayerCannotReachPushSide(t *testing.T) {
	b := mustParse(t, "######\n#@#$ #\n#.#  #\n######")
	Reach(b)
	if _, ok := Push(b, 1, 3, Left); ok {
		t.Error("push requiring an unreachable player cell must be illegal")
	}
}

func TestPushPreservesCounts(t *testing.T) {
	b := mustParse(t, "#####\n#@$.#\n#####")
	Reach(b)
	boxesBefore, targetsBefore := countBoxesTargets(b)
	next, ok := Push(b, 1, 2, Right)
	if !ok {
		t.Fatal("expected legal push")
	}
	boxesAfter, targetsAfter := countBoxesTargets(next)
	if boxesAfter != boxesBefore || targetsAfter != targetsBefore {
		t.Errorf("push changed box/target counts: before=(%d,%d) after=(%d,%d)", boxesBefore, targetsBefore, boxesAfter, targetsAfter)
	}
}

func countBoxesTargets(b *Board) (boxes, targets int) {
	for _, t := range b.Tiles {
		if t.HasBox() {
			boxes++
		}
		if t.HasTarget() {
			targets++
		}
	}
	return
}

func TestWallCornerDeadlock(t *testing.T) {
	b := mustParse(t, "#####\n#$ .#\n#@  #\n#####")
	if !Deadlocked(b) {
		t.Error("box stuck in a wall corner with no target under it should be deadlocked")
	}
}

func TestWallCornerNotDeadlockedWhenOnTarget(t *testing.T) {
	b := mustParse(t, "#####\n#*  #\n#@  #\n#####")
	if Deadlocked(b) {
		t.Error("a box already on its target in a corner is not a deadlock")
	}
}

func TestTwoByTwoDeadlock(t *testing.T) {
	b := mustParse(t, "#####\n#@..#\n#.$$#\n#.$$#\n#####")
	if !Deadlocked(b) {
		t.Error("a 2x2 block of boxes with no targets there should be deadlocked")
	}
}

func TestTwoByTwoNotDeadlockedWhenAllSatisfied(t *testing.T) {
	b := mustParse(t, "#####\n#@  #\n# **#\n# **#\n#####")
	if Deadlocked(b) {
		t.Error("a 2x2 block of fully satisfied boxes is not a deadlock")
	}
}

func TestFingerprintIgnoresPlayerPosition(t *testing.T) {
	a := mustParse(t, "#####\n#@  #\n# $.#\n#####")
	b2 := mustParse(t, "#####\n#  @#\n# $.#\n#####")
	Reach(a)
	Reach(b2)
	if a.Fingerprint() != b2.Fingerprint() {
		t.Error("fingerprint must depend only on box positions, not the player")
	}
}
