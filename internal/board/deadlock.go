package board

// Deadlocked reports whether b is provably unsolvable by the two
// static detectors of spec §4.5, composed by logical OR. Both
// detectors are conservative: they may only return true on states from
// which no winning state is reachable. False positives are correctness
// bugs, not tuning knobs.
//
// Deadlocked mutates a scratch clone, never b itself — the wall-corner
// detector's "upgrade stuck BoxOnTarget to Wall" step is only valid for
// the purposes of this check.
func Deadlocked(b *Board) bool {
	scratch := b.Clone()
	return wallCornerDeadlock(scratch) || twoByTwoDeadlock(scratch)
}

// wallCornerDeadlock implements the wall-corner detector. A box in an
// interior cell is dead if two orthogonally adjacent cells form an
// inside corner of walls. Before testing Box cells, any BoxOnTarget
// that itself sits in such a corner is upgraded to Wall to a fixpoint,
// since such a box can never move again and therefore acts as a wall
// for other boxes' corner reasoning.
func wallCornerDeadlock(b *Board) bool {
	for {
		changed := false
		for row := 1; row < b.Height-1; row++ {
			for col := 1; col < b.Width-1; col++ {
				if b.Get(row, col) == BoxOnTarget && isWallCorner(b, row, col) {
					b.Set(row, col, Wall)
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	for row := 1; row < b.Height-1; row++ {
		for col := 1; col < b.Width-1; col++ {
			if b.Get(row, col) == Box && isWallCorner(b, row, col) {
				return true
			}
		}
	}
	return false
}

// isWallCorner reports whether (row, col) sits in one of the four
// possible wall corners.
func isWallCorner(b *Board, row, col int) bool {
	up := b.Get(row-1, col) == Wall
	down := b.Get(row+1, col) == Wall
	left := b.Get(row, col-1) == Wall
	right := b.Get(row, col+1) == Wall
	return (left && up) || (up && right) || (right && down) || (down && left)
}

// twoByTwoDeadlock reports whether any 2x2 window consists solely of
// Box, BoxOnTarget, and Wall cells with at least one not-yet-satisfied
// Box — no box in such a block can ever be pushed out.
func twoByTwoDeadlock(b *Board) bool {
	for row := 0; row < b.Height-1; row++ {
		for col := 0; col < b.Width-1; col++ {
			boxes, walls, onTarget := 0, 0, 0
			for dr := 0; dr < 2; dr++ {
				for dc := 0; dc < 2; dc++ {
					switch b.Get(row+dr, col+dc) {
					case Box:
						boxes++
					case Wall:
						walls++
					case BoxOnTarget:
						onTarget++
					}
				}
			}
			if boxes > 0 && boxes+walls+onTarget == 4 {
				return true
			}
		}
	}
	return false
}
