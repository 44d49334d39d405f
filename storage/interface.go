// KV database interface
package storage

import (
	"fmt"
	"sort"
	"sync"
)

// Cursor 存储引擎原生游标，定位在有序键空间上
//
// Key and Value are only defined while Valid returns true, and the returned
// slices are only valid until the next movement. Release must be safe to
// call more than once.
type Cursor interface {
	SeekToFirst()
	SeekToLast()
	Seek(key []byte)
	Next()
	Prev()
	Valid() bool
	Key() []byte
	Value() []byte
	Error() error
	Release()
}

// Snapshot is an opaque point-in-time view of a Database.
type Snapshot interface {
	Get(ro *ReadOptions, key []byte) ([]byte, error)
	Release()
}

// CursorSource creates cursors over a keyspace, optionally pinned to a snapshot.
type CursorSource interface {
	NewCursor(ro *ReadOptions, snap Snapshot) Cursor
}

// Database KV数据库的接口
type Database interface {
	CursorSource
	Open(path string, options map[string]interface{}) error
	Put(wo *WriteOptions, key []byte, value []byte) error
	Get(ro *ReadOptions, key []byte) ([]byte, error)
	Has(ro *ReadOptions, key []byte) (bool, error)
	Delete(wo *WriteOptions, key []byte) error
	Write(wo *WriteOptions, batch Batch) error
	NewBatch() Batch
	GetSnapshot() (Snapshot, error)
	CompactRange(start, limit []byte) error
	Close() error
}

// Batch Batch操作的接口
type Batch interface {
	Len() int
	ValueSize() int
	Reset()
	Put(key []byte, value []byte)
	Delete(key []byte)
}

// NewDatabaseFunc creates an unopened Database of one engine kind.
type NewDatabaseFunc func() Database

var (
	driversMu sync.RWMutex
	drivers   = make(map[string]NewDatabaseFunc)
)

// Register makes an engine available by name. It panics when called twice
// with the same name, like database/sql drivers.
func Register(name string, fn NewDatabaseFunc) {
	driversMu.Lock()
	defer driversMu.Unlock()
	if fn == nil {
		panic("storage: register driver is nil")
	}
	if _, dup := drivers[name]; dup {
		panic("storage: register called twice for driver " + name)
	}
	drivers[name] = fn
}

// Drivers returns the sorted names of the registered engines.
func Drivers() []string {
	driversMu.RLock()
	defer driversMu.RUnlock()
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OpenDatabase opens the database at path with the named engine.
func OpenDatabase(engine, path string, options map[string]interface{}) (Database, error) {
	driversMu.RLock()
	fn, ok := drivers[engine]
	driversMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("storage: unknown engine %q (forgotten import?)", engine)
	}

	db := fn()
	if err := db.Open(path, options); err != nil {
		return nil, err
	}
	return db, nil
}
