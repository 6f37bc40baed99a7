package storage

import (
	"encoding/binary"
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys.
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
	keyFirstLaunch = "first_launch"
	cacheKeyPrefix = "cache:"
)

// GeneratorPreferences stores the last-used board generation settings,
// so a bare "generate" invocation can repeat what the user ran before.
type GeneratorPreferences struct {
	Width, Height int       `json:"width_height"`
	Walls         int       `json:"walls"`
	Boxes         int       `json:"boxes"`
	Seed          uint64    `json:"seed"`
	LastGenerated time.Time `json:"last_generated"`
}

// DefaultPreferences returns the generator's built-in defaults.
func DefaultPreferences() *GeneratorPreferences {
	return &GeneratorPreferences{
		Width:  9,
		Height: 9,
		Walls:  6,
		Boxes:  3,
	}
}

// PuzzleStats tracks cumulative outcomes across generated/solved
// puzzles. There is deliberately no difficulty rating here beyond
// solvability and push count: rating a puzzle's difficulty is out of
// scope.
type PuzzleStats struct {
	Generated     int           `json:"generated"`
	Solved        int           `json:"solved"`
	Unsolvable    int           `json:"unsolvable"`
	BudgetExceeded int          `json:"budget_exceeded"`
	TotalPushes   int           `json:"total_pushes"`
	FewestPushes  int           `json:"fewest_pushes"` // 0 means none recorded yet
	TotalSolveTime time.Duration `json:"total_solve_time"`
}

// NewPuzzleStats returns empty puzzle statistics.
func NewPuzzleStats() *PuzzleStats {
	return &PuzzleStats{}
}

// AverageSolveTime returns the mean wall-clock time the solver spent
// per solved puzzle.
func (s *PuzzleStats) AverageSolveTime() time.Duration {
	if s.Solved == 0 {
		return 0
	}
	return s.TotalSolveTime / time.Duration(s.Solved)
}

// PuzzleRecord describes one completed generate-and-solve attempt, the
// unit RecordPuzzle folds into PuzzleStats.
type PuzzleRecord struct {
	Outcome  string // "solved", "unsolvable", "budget-exhausted"
	Pushes   int
	Duration time.Duration
}

// CacheEntry is one solved-state outcome: the board's identity
// (caller-supplied fingerprint) maps to whether it is solvable and, if
// so, in how many pushes. This is a result cache, not a persisted
// search graph — it stores nothing about the frontier or visited set
// that produced the verdict (see spec's no-persisted-search-graph
// non-goal).
type CacheEntry struct {
	Outcome string `json:"outcome"`
	Pushes  int    `json:"pushes"`
}

// Storage wraps BadgerDB for persistent storage of generator
// preferences, puzzle statistics, and the solved-state outcome cache.
type Storage struct {
	db *badger.DB
}

// NewStorage opens (creating if needed) the BadgerDB database under
// the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// IsFirstLaunch returns true if this is the first launch.
func (s *Storage) IsFirstLaunch() (bool, error) {
	firstLaunch := true

	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(keyFirstLaunch))
		if err == badger.ErrKeyNotFound {
			firstLaunch = true
			return nil
		}
		if err != nil {
			return err
		}
		firstLaunch = false
		return nil
	})

	return firstLaunch, err
}

// MarkFirstLaunchComplete marks that first launch setup is complete.
func (s *Storage) MarkFirstLaunchComplete() error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyFirstLaunch), []byte("done"))
	})
}

// SavePreferences saves generator preferences.
func (s *Storage) SavePreferences(prefs *GeneratorPreferences) error {
	prefs.LastGenerated = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads generator preferences, returning defaults if
// none were ever saved.
func (s *Storage) LoadPreferences() (*GeneratorPreferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

// SaveStats saves cumulative puzzle statistics.
func (s *Storage) SaveStats(stats *PuzzleStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads cumulative puzzle statistics, returning empty stats
// if none were ever saved.
func (s *Storage) LoadStats() (*PuzzleStats, error) {
	stats := NewPuzzleStats()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordPuzzle folds one completed generate-and-solve attempt into the
// cumulative statistics.
func (s *Storage) RecordPuzzle(rec PuzzleRecord) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.Generated++
	switch rec.Outcome {
	case "solved":
		stats.Solved++
		stats.TotalPushes += rec.Pushes
		stats.TotalSolveTime += rec.Duration
		if stats.FewestPushes == 0 || rec.Pushes < stats.FewestPushes {
			stats.FewestPushes = rec.Pushes
		}
	case "unsolvable":
		stats.Unsolvable++
	case "budget-exhausted":
		stats.BudgetExceeded++
	}

	return s.SaveStats(stats)
}

// cacheKey encodes a board fingerprint as a sortable, fixed-width key.
func cacheKey(fingerprint uint64) []byte {
	key := make([]byte, len(cacheKeyPrefix)+8)
	copy(key, cacheKeyPrefix)
	binary.BigEndian.PutUint64(key[len(cacheKeyPrefix):], fingerprint)
	return key
}

// SaveCacheEntry records the solved-state outcome for a board
// fingerprint.
func (s *Storage) SaveCacheEntry(fingerprint uint64, entry CacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(cacheKey(fingerprint), data)
	})
}

// LoadCacheEntry looks up a previously recorded outcome for a board
// fingerprint.
func (s *Storage) LoadCacheEntry(fingerprint uint64) (CacheEntry, bool, error) {
	var entry CacheEntry
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(cacheKey(fingerprint))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entry)
		})
	})

	return entry, found, err
}
