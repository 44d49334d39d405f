package database

import (
	"sync"

	"github.com/wooyang2018/corekv/iterator"
	"github.com/wooyang2018/corekv/storage"
)

// Snapshot is a consistent read-only view of a DB. Iterators created from
// it are unaffected by later writes.
type Snapshot struct {
	db   *DB
	snap storage.Snapshot

	releaseOnce sync.Once
}

// Snapshot pins the current state of the database. The caller must call
// Release.
func (db *DB) Snapshot() (*Snapshot, error) {
	snap, err := db.kv.GetSnapshot()
	db.count("Snapshot", err)
	if err != nil {
		return nil, err
	}
	return &Snapshot{db: db, snap: snap}, nil
}

// Get returns the value of key as of the snapshot, or (nil, nil) when key
// is absent.
func (s *Snapshot) Get(ro *storage.ReadOptions, key []byte) ([]byte, error) {
	return s.snap.Get(ro, key)
}

// NewCursor returns a raw engine cursor pinned to the snapshot. snap must
// be nil or s itself.
func (s *Snapshot) NewCursor(ro *storage.ReadOptions, _ storage.Snapshot) storage.Cursor {
	return s.db.NewCursor(ro, s.snap)
}

func (s *Snapshot) Iter(ro *storage.ReadOptions) *iterator.Iterator {
	return iterator.New(s.db, ro, s.snap)
}

func (s *Snapshot) KeysIter(ro *storage.ReadOptions) *iterator.KeyIterator {
	return iterator.NewKeyIterator(s.db, ro, s.snap)
}

func (s *Snapshot) ValueIter(ro *storage.ReadOptions) *iterator.ValueIterator {
	return iterator.NewValueIterator(s.db, ro, s.snap)
}

// Release releases the snapshot. Iterators created from it report
// storage.ErrClosed afterwards. Safe to call more than once.
func (s *Snapshot) Release() {
	s.releaseOnce.Do(s.snap.Release)
}
