package iterator

import (
	"bytes"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wooyang2018/corekv/storage"
	"github.com/wooyang2018/corekv/storage/leveldb"
)

type entry struct {
	key, value []byte
}

func e(key []byte, value ...byte) entry {
	return entry{key: key, value: value}
}

func b(key ...byte) []byte {
	return key
}

// openMem opens an in-memory engine holding the given entries.
func openMem(t *testing.T, entries ...entry) *leveldb.LDBDatabase {
	t.Helper()
	db, err := leveldb.OpenMem(nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	wo := storage.NewWriteOptions()
	for _, en := range entries {
		require.NoError(t, db.Put(wo, en.key, en.value))
	}
	return db
}

// single byte keys with value == key
func byteEntries(keys ...byte) []entry {
	entries := make([]entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, e(b(k), k))
	}
	return entries
}

func collect(t *testing.T, it *Iterator) []entry {
	t.Helper()
	var out []entry
	for it.Next() {
		key, value := it.Entry()
		out = append(out, entry{key, value})
	}
	require.NoError(t, it.Error())
	return out
}

// sliceCursor is a storage.Cursor over a sorted slice that follows the
// goleveldb exhaustion rules and counts releases.
type sliceCursor struct {
	entries  []entry
	pos      int
	releases int
	// entering this index fails the cursor
	failAt int
	err    error
}

func newSliceCursor(entries ...entry) *sliceCursor {
	sorted := append([]entry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i].key, sorted[j].key) < 0
	})
	return &sliceCursor{entries: sorted, pos: -1, failAt: -1}
}

func (c *sliceCursor) move(pos int) {
	if c.err != nil {
		return
	}
	if pos == c.failAt {
		c.err = errors.New("sliceCursor: injected failure")
	}
	c.pos = pos
}

func (c *sliceCursor) SeekToFirst() {
	c.move(0)
}

func (c *sliceCursor) SeekToLast() {
	c.move(len(c.entries) - 1)
}

func (c *sliceCursor) Seek(key []byte) {
	c.move(sort.Search(len(c.entries), func(i int) bool {
		return bytes.Compare(c.entries[i].key, key) >= 0
	}))
}

func (c *sliceCursor) Next() {
	if c.pos < len(c.entries) {
		c.move(c.pos + 1)
	}
}

func (c *sliceCursor) Prev() {
	if c.pos >= len(c.entries) {
		c.move(len(c.entries) - 1)
		return
	}
	if c.pos >= 0 {
		c.move(c.pos - 1)
	}
}

func (c *sliceCursor) Valid() bool {
	return c.err == nil && c.releases == 0 && c.pos >= 0 && c.pos < len(c.entries)
}

func (c *sliceCursor) Key() []byte   { return c.entries[c.pos].key }
func (c *sliceCursor) Value() []byte { return c.entries[c.pos].value }
func (c *sliceCursor) Error() error  { return c.err }

func (c *sliceCursor) Release() {
	c.releases++
}

type sliceSource struct {
	cursors []*sliceCursor
	entries []entry
}

func (s *sliceSource) NewCursor(ro *storage.ReadOptions, snap storage.Snapshot) storage.Cursor {
	c := newSliceCursor(s.entries...)
	s.cursors = append(s.cursors, c)
	return c
}
