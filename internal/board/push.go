package board

// Push returns the successor board reached by pushing the box at
// (boxRow, boxCol) one cell in direction dir, or (nil, false) if the
// push is illegal. b must already be canonicalized (Reach) before
// calling Push; the legality check's "is the pushing cell reachable"
// clause depends on it.
//
// Legality (spec §4.4), all of which must hold:
//   - (boxRow, boxCol) holds a Box or BoxOnTarget.
//   - the cell opposite dir (where the player stands to push) is in
//     bounds and reachable.
//   - the cell in direction dir from the box is in bounds, is not a
//     wall, and does not already hold a box.
//
// The returned board is not canonicalized; callers must run Reach on
// it before deduplicating or testing for deadlock.
func Push(b *Board, boxRow, boxCol int, dir Direction) (*Board, bool) {
	if !b.Get(boxRow, boxCol).HasBox() {
		return nil, false
	}

	dr, dc := dir.Delta()
	destRow, destCol := boxRow+dr, boxCol+dc
	playerRow, playerCol := boxRow-dr, boxCol-dc

	if !b.InBounds(playerRow, playerCol) || !IsReachable(b, playerRow, playerCol) {
		return nil, false
	}
	if !b.InBounds(destRow, destCol) {
		return nil, false
	}
	destTile := b.Get(destRow, destCol)
	// Any cell that is not a wall and does not already hold a box is a
	// legal push destination, whether or not canonicalization happened
	// to mark it reachable: reachability describes the player's
	// unoccupied-cell walk, not where a box may land.
	if destTile == Wall || destTile.HasBox() {
		return nil, false
	}
	destOnTarget := destTile.HasTarget()

	res := b.Clone()
	Unmark(res)

	boxTile := res.Get(boxRow, boxCol)
	if boxTile == Box {
		res.Set(boxRow, boxCol, Floor)
	} else {
		res.Set(boxRow, boxCol, Target)
	}

	if destOnTarget {
		res.Set(destRow, destCol, BoxOnTarget)
	} else {
		res.Set(destRow, destCol, Box)
	}

	switch res.Get(boxRow, boxCol) {
	case Floor:
		res.Set(boxRow, boxCol, Player)
	case Target:
		res.Set(boxRow, boxCol, PlayerOnTarget)
	}
	res.PlayerRow, res.PlayerCol = boxRow, boxCol

	return res, true
}
