// Package search implements the breadth-first push-successor solver and
// its supporting visited-state set.
package search

import "github.com/hailam/sokopush/internal/board"

// visitedEntry is one link in a bucket's chain. Grounded on the
// teacher's TranspositionTable, but chained rather than
// single-slot-replacing: a solver must never treat two distinct states
// as the same one just because they share a bucket, so collisions are
// resolved by exact tile-array equality rather than overwritten.
type visitedEntry struct {
	board *board.Board
	next  *visitedEntry
}

// VisitedSet deduplicates canonicalized boards by their Zobrist
// fingerprint, bucketed mod Width*Height per spec §4.6. counts tracks
// how many states landed in each bucket, the same diagnostic the
// original solver's statenodesamount array keeps (there printed
// alongside the frontier size every 10000 states; here exposed via
// BucketCounts for callers that want it).
type VisitedSet struct {
	buckets []*visitedEntry
	counts  []int
	count   int
}

// NewVisitedSet allocates a visited set sized for a board of the given
// dimensions.
func NewVisitedSet(width, height int) *VisitedSet {
	n := width * height
	if n <= 0 {
		n = 1
	}
	return &VisitedSet{buckets: make([]*visitedEntry, n), counts: make([]int, n)}
}

// Contains reports whether an equal board has already been inserted.
// b must be canonicalized (board.Reach) before calling.
func (v *VisitedSet) Contains(b *board.Board) bool {
	idx := b.BucketIndex()
	for e := v.buckets[idx]; e != nil; e = e.next {
		if e.board.Equals(b) {
			return true
		}
	}
	return false
}

// Insert records b as visited. Callers should check Contains first;
// Insert does not itself deduplicate.
func (v *VisitedSet) Insert(b *board.Board) {
	idx := b.BucketIndex()
	v.buckets[idx] = &visitedEntry{board: b, next: v.buckets[idx]}
	v.counts[idx]++
	v.count++
}

// Len returns the number of distinct states recorded.
func (v *VisitedSet) Len() int {
	return v.count
}

// BucketCounts returns the number of states recorded in each bucket,
// indexed the same way board.BucketIndex is, for diagnosing uneven
// hash distribution.
func (v *VisitedSet) BucketCounts() []int {
	out := make([]int, len(v.counts))
	copy(out, v.counts)
	return out
}

// BucketCount returns the number of states recorded in a single
// bucket.
func (v *VisitedSet) BucketCount(idx uint64) int {
	if idx >= uint64(len(v.counts)) {
		return 0
	}
	return v.counts[idx]
}
