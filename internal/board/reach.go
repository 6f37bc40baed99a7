package board

// Reach canonicalizes b in place: every Floor/Target cell reachable
// from the player by orthogonal steps that cross neither a wall nor a
// box is rewritten to PlayerReach/PlayerReachOnTarget. Two boards that
// differ only in the player's exact cell within the same reachable
// region canonicalize to the same tile array, which is what lets the
// solver's visited set treat them as one state (spec §4.3).
//
// The algorithm is a fixed-point sweep over the interior: repeatedly
// promote any Floor/Target neighbor of an already-marked cell, until a
// full pass makes no change. It is idempotent — calling Reach again on
// an already-canonicalized board is a no-op.
func Reach(b *Board) {
	for {
		changed := false
		for row := 1; row < b.Height-1; row++ {
			for col := 1; col < b.Width-1; col++ {
				if !b.Get(row, col).HasPlayer() {
					continue
				}
				if promoteNeighbor(b, row-1, col) {
					changed = true
				}
				if promoteNeighbor(b, row+1, col) {
					changed = true
				}
				if promoteNeighbor(b, row, col-1) {
					changed = true
				}
				if promoteNeighbor(b, row, col+1) {
					changed = true
				}
			}
		}
		if !changed {
			return
		}
	}
}

// promoteNeighbor marks a single Floor/Target cell as reachable,
// reporting whether it changed anything.
func promoteNeighbor(b *Board, row, col int) bool {
	if !b.InBounds(row, col) {
		return false
	}
	switch b.Get(row, col) {
	case Floor:
		b.Set(row, col, PlayerReach)
		return true
	case Target:
		b.Set(row, col, PlayerReachOnTarget)
		return true
	default:
		return false
	}
}

// IsReachable reports whether (row, col) carries a player/reach marker
// in a board that has already been passed through Reach.
func IsReachable(b *Board, row, col int) bool {
	if !b.InBounds(row, col) {
		return false
	}
	return b.Get(row, col).HasPlayer()
}

// Unmark reverts every Player*/PlayerReach* cell back to its
// underlying Floor/Target kind, leaving no player cell at all. Used by
// Push to clear the predecessor's canonical marks before placing the
// player at the vacated box cell.
func Unmark(b *Board) {
	for i, t := range b.Tiles {
		switch t {
		case Player, PlayerReach:
			b.Tiles[i] = Floor
		case PlayerOnTarget, PlayerReachOnTarget:
			b.Tiles[i] = Target
		}
	}
}
