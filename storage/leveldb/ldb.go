// Package leveldb implements storage.Database on top of goleveldb.
package leveldb

import (
	"errors"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/wooyang2018/corekv/storage"
)

// EngineName is the name this driver registers under.
const EngineName = "leveldb"

func init() {
	storage.Register(EngineName, func() storage.Database {
		return new(LDBDatabase)
	})
}

var _ storage.Database = (*LDBDatabase)(nil)

// LDBDatabase define data structure of storage
type LDBDatabase struct {
	fn string
	db *leveldb.DB

	closeOnce sync.Once
	closeErr  error
}

// Open opens an instance of LDB with parameters (ldb path and other options)
func (ldb *LDBDatabase) Open(path string, options map[string]interface{}) error {
	o, err := decodeOptions(options)
	if err != nil {
		return err
	}
	return ldb.OpenSingle(path, o)
}

// OpenFile opens the database at path with typed options.
func OpenFile(path string, options *storage.Options) (*LDBDatabase, error) {
	ldb := new(LDBDatabase)
	if err := ldb.OpenSingle(path, options); err != nil {
		return nil, err
	}
	return ldb, nil
}

// Path returns the path to the database directory.
func (ldb *LDBDatabase) Path() string {
	return ldb.fn
}

// Put puts the given key / value to the queue
func (ldb *LDBDatabase) Put(wo *storage.WriteOptions, key []byte, value []byte) error {
	return normalizeError(ldb.db.Put(key, value, writeOptions(wo)))
}

// Get returns the given key. A missing key is reported as (nil, nil).
func (ldb *LDBDatabase) Get(ro *storage.ReadOptions, key []byte) ([]byte, error) {
	value, err := ldb.db.Get(key, readOptions(ro))
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, normalizeError(err)
	}
	return value, nil
}

// Has returns whether the given key exists.
func (ldb *LDBDatabase) Has(ro *storage.ReadOptions, key []byte) (bool, error) {
	ok, err := ldb.db.Has(key, readOptions(ro))
	return ok, normalizeError(err)
}

// Delete deletes the key from the queue and database
func (ldb *LDBDatabase) Delete(wo *storage.WriteOptions, key []byte) error {
	return normalizeError(ldb.db.Delete(key, writeOptions(wo)))
}

// NewBatch returns an empty batch for this engine.
func (ldb *LDBDatabase) NewBatch() storage.Batch {
	return &LDBBatch{}
}

// Write applies the batch atomically.
func (ldb *LDBDatabase) Write(wo *storage.WriteOptions, batch storage.Batch) error {
	b, ok := batch.(*LDBBatch)
	if !ok {
		return errors.New("leveldb: batch was not created by this engine")
	}
	return normalizeError(ldb.db.Write(&b.batch, writeOptions(wo)))
}

// NewCursor returns a cursor over the live database, or over snap when it
// is not nil. The cursor starts unpositioned.
func (ldb *LDBDatabase) NewCursor(ro *storage.ReadOptions, snap storage.Snapshot) storage.Cursor {
	if snap != nil {
		if s, ok := snap.(*LDBSnapshot); ok {
			return newCursor(s.snap.NewIterator(nil, readOptions(ro)))
		}
		return newCursor(emptyIterator(errors.New("leveldb: snapshot was not created by this engine")))
	}
	return newCursor(ldb.db.NewIterator(nil, readOptions(ro)))
}

// GetSnapshot returns a point-in-time view of the database.
func (ldb *LDBDatabase) GetSnapshot() (storage.Snapshot, error) {
	snap, err := ldb.db.GetSnapshot()
	if err != nil {
		return nil, normalizeError(err)
	}
	return &LDBSnapshot{snap: snap}, nil
}

// CompactRange compacts the keys in [start, limit). Nil start or limit
// means the beginning or the end of the keyspace.
func (ldb *LDBDatabase) CompactRange(start, limit []byte) error {
	return normalizeError(ldb.db.CompactRange(util.Range{Start: start, Limit: limit}))
}

// Property returns an engine property such as "leveldb.stats".
func (ldb *LDBDatabase) Property(name string) (string, error) {
	value, err := ldb.db.GetProperty(name)
	return value, normalizeError(err)
}

// Close closes the database. It is safe to call more than once.
func (ldb *LDBDatabase) Close() error {
	ldb.closeOnce.Do(func() {
		if ldb.db != nil {
			ldb.closeErr = normalizeError(ldb.db.Close())
		}
	})
	return ldb.closeErr
}

// LDBSnapshot wraps a goleveldb snapshot.
type LDBSnapshot struct {
	snap *leveldb.Snapshot
}

// Get reads key as of the snapshot. A missing key is reported as (nil, nil).
func (s *LDBSnapshot) Get(ro *storage.ReadOptions, key []byte) ([]byte, error) {
	value, err := s.snap.Get(key, readOptions(ro))
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, normalizeError(err)
	}
	return value, nil
}

// Release releases the snapshot. Calling it more than once is harmless.
func (s *LDBSnapshot) Release() {
	s.snap.Release()
}

// LDBBatch batch for leveldb
type LDBBatch struct {
	batch leveldb.Batch
	size  int
}

// Len returns the number of records in the batch.
func (b *LDBBatch) Len() int {
	return b.batch.Len()
}

// ValueSize returns the bytes of keys and values queued so far.
func (b *LDBBatch) ValueSize() int {
	return b.size
}

// Put queues a put record.
func (b *LDBBatch) Put(key, value []byte) {
	b.batch.Put(key, value)
	b.size += len(key) + len(value)
}

// Delete queues a delete record.
func (b *LDBBatch) Delete(key []byte) {
	b.batch.Delete(key)
	b.size += len(key)
}

// Reset resets the batch
func (b *LDBBatch) Reset() {
	b.batch.Reset()
	b.size = 0
}
