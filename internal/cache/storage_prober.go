package cache

import "github.com/hailam/sokopush/internal/storage"

// StorageProber is a Prober backed by the BadgerDB-based storage
// layer, so verdicts survive across runs.
type StorageProber struct {
	store *storage.Storage
}

// NewStorageProber wraps an already-open Storage as a Prober.
func NewStorageProber(store *storage.Storage) *StorageProber {
	return &StorageProber{store: store}
}

func (p *StorageProber) Probe(fingerprint uint64) (Verdict, bool) {
	entry, found, err := p.store.LoadCacheEntry(fingerprint)
	if err != nil || !found {
		return Verdict{}, false
	}
	return Verdict{Outcome: entry.Outcome, Pushes: entry.Pushes}, true
}

func (p *StorageProber) Store(fingerprint uint64, v Verdict) error {
	return p.store.SaveCacheEntry(fingerprint, storage.CacheEntry{
		Outcome: v.Outcome,
		Pushes:  v.Pushes,
	})
}

func (p *StorageProber) Available() bool {
	return p.store != nil
}
