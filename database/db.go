// Package database is the user facing handle of a key-value store: point
// reads and writes, batches, snapshots and bounded iterators.
package database

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/patrickmn/go-cache"
	"github.com/prometheus/client_golang/prometheus"

	xconf "github.com/wooyang2018/corekv/common/config"
	"github.com/wooyang2018/corekv/common/metrics"
	"github.com/wooyang2018/corekv/common/utils"
	"github.com/wooyang2018/corekv/iterator"
	"github.com/wooyang2018/corekv/logger"
	"github.com/wooyang2018/corekv/storage"
	"github.com/wooyang2018/corekv/storage/leveldb"
)

const (
	moduleName = "database"

	// DefaultLeaseTTL is the lifetime of a leased snapshot that is not renewed.
	DefaultLeaseTTL = 30 * time.Second
	leaseCleanup    = 10 * time.Second
)

var (
	_ iterator.Iterable    = (*DB)(nil)
	_ storage.CursorSource = (*DB)(nil)
	_ iterator.Iterable    = (*Snapshot)(nil)
	_ storage.CursorSource = (*Snapshot)(nil)
)

// DB is safe for concurrent use. Iterators handed out by DB are not.
type DB struct {
	kv           storage.Database
	path         string
	log          logger.Logger
	metricSwitch bool

	leases *cache.Cache
	// closed by Close to stop the lease janitor
	done    chan struct{}
	stopped chan struct{}

	closeOnce sync.Once
	closeErr  error
}

// Open opens the leveldb database at path. A nil options uses
// storage.DefaultOptions.
func Open(path string, options *storage.Options) (*DB, error) {
	ldb, err := leveldb.OpenFile(path, options)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return newDB(ldb, path, false), nil
}

// OpenMem opens a database kept in memory.
func OpenMem(options *storage.Options) (*DB, error) {
	ldb, err := leveldb.OpenMem(options)
	if err != nil {
		return nil, err
	}
	return newDB(ldb, ldb.Path(), false), nil
}

// OpenWithConf initializes the process log from cfg when it names a log
// config, then opens cfg's engine at cfg's path.
func OpenWithConf(cfg *xconf.DBConf) (*DB, error) {
	if lc := cfg.LogConfPath(); lc != "" && utils.FileIsExist(lc) {
		logConf, err := logger.LoadLogConf(lc)
		if err != nil {
			return nil, err
		}
		if err := logger.InitWithConf(logConf, cfg.LogDirPath()); err != nil {
			return nil, err
		}
	}

	var bag map[string]interface{}
	if err := mapstructure.Decode(cfg.Options(), &bag); err != nil {
		return nil, err
	}
	path := cfg.DBPath()
	kv, err := storage.OpenDatabase(cfg.Engine, path, bag)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if cfg.MetricSwitch {
		if err := metrics.Register(prometheus.DefaultRegisterer); err != nil {
			kv.Close()
			return nil, err
		}
	}
	return newDB(kv, path, cfg.MetricSwitch), nil
}

func newDB(kv storage.Database, path string, metricSwitch bool) *DB {
	db := &DB{
		kv:           kv,
		path:         path,
		log:          logger.GetLogger("", moduleName),
		metricSwitch: metricSwitch,
		leases:       cache.New(DefaultLeaseTTL, 0),
		done:         make(chan struct{}),
		stopped:      make(chan struct{}),
	}
	db.leases.OnEvicted(db.evictLease)
	go db.runLeaseJanitor(leaseCleanup)
	db.log.Info("open database", "path", path, "metric", metricSwitch)
	return db
}

// EnableMetrics turns recording into common/metrics collectors on or off.
// Call it before sharing the DB.
func (db *DB) EnableMetrics(on bool) {
	db.metricSwitch = on
}

// Path returns the database directory.
func (db *DB) Path() string {
	return db.path
}

func (db *DB) Put(wo *storage.WriteOptions, key, value []byte) error {
	defer db.observe("Put", time.Now())
	db.addBytes("Put", "in", len(key)+len(value))
	err := db.kv.Put(wo, key, value)
	db.count("Put", err)
	return err
}

// Get returns the value stored under key, or (nil, nil) when key is absent.
func (db *DB) Get(ro *storage.ReadOptions, key []byte) ([]byte, error) {
	defer db.observe("Get", time.Now())
	value, err := db.kv.Get(ro, key)
	db.count("Get", err)
	db.addBytes("Get", "out", len(value))
	return value, err
}

func (db *DB) Has(ro *storage.ReadOptions, key []byte) (bool, error) {
	defer db.observe("Has", time.Now())
	ok, err := db.kv.Has(ro, key)
	db.count("Has", err)
	return ok, err
}

func (db *DB) Delete(wo *storage.WriteOptions, key []byte) error {
	defer db.observe("Delete", time.Now())
	err := db.kv.Delete(wo, key)
	db.count("Delete", err)
	return err
}

// NewBatch returns an empty batch to be applied with Write.
func (db *DB) NewBatch() *Batch {
	return &Batch{b: db.kv.NewBatch()}
}

// Write applies every record of batch atomically.
func (db *DB) Write(wo *storage.WriteOptions, batch *Batch) error {
	defer db.observe("Write", time.Now())
	db.addBytes("Write", "in", batch.ValueSize())
	err := db.kv.Write(wo, batch.b)
	db.count("Write", err)
	return err
}

// NewCursor returns a raw engine cursor. Prefer Iter.
func (db *DB) NewCursor(ro *storage.ReadOptions, snap storage.Snapshot) storage.Cursor {
	cur := db.kv.NewCursor(ro, snap)
	if !db.metricSwitch {
		return cur
	}
	return newMeteredCursor(cur)
}

// Iter returns a forward iterator over the live database.
func (db *DB) Iter(ro *storage.ReadOptions) *iterator.Iterator {
	return iterator.New(db, ro, nil)
}

// KeysIter returns a forward iterator yielding keys.
func (db *DB) KeysIter(ro *storage.ReadOptions) *iterator.KeyIterator {
	return iterator.NewKeyIterator(db, ro, nil)
}

// ValueIter returns a forward iterator yielding values.
func (db *DB) ValueIter(ro *storage.ReadOptions) *iterator.ValueIterator {
	return iterator.NewValueIterator(db, ro, nil)
}

// CompactRange compacts the keys in [start, limit). Nil bounds are open.
func (db *DB) CompactRange(start, limit []byte) error {
	begin := time.Now()
	err := db.kv.CompactRange(start, limit)
	db.count("CompactRange", err)
	if err != nil {
		db.log.Warn("compact range failed", "start", start, "limit", limit, "err", err)
		return err
	}
	db.log.Info("compact range", "start", start, "limit", limit, "cost", time.Since(begin))
	return nil
}

// Close returns every leased snapshot and closes the engine. Iterators
// still open report storage.ErrClosed afterwards.
func (db *DB) Close() error {
	db.closeOnce.Do(func() {
		close(db.done)
		<-db.stopped
		db.leases.DeleteExpired()
		for id := range db.leases.Items() {
			db.leases.Delete(id)
		}
		db.closeErr = db.kv.Close()
		if db.closeErr != nil {
			db.log.Error("close database failed", "path", db.path, "err", db.closeErr)
			return
		}
		db.log.Info("close database", "path", db.path)
	})
	return db.closeErr
}

func (db *DB) count(method string, err error) {
	if !db.metricSwitch {
		return
	}
	metrics.CallMethodCounter.WithLabelValues(moduleName, method, errCode(err)).Inc()
}

func (db *DB) observe(method string, begin time.Time) {
	if !db.metricSwitch {
		return
	}
	metrics.CallMethodHistogram.WithLabelValues(moduleName, method).Observe(time.Since(begin).Seconds())
}

func (db *DB) addBytes(method, handle string, n int) {
	if !db.metricSwitch || n == 0 {
		return
	}
	metrics.BytesCounter.WithLabelValues(moduleName, method, handle).Add(float64(n))
}

func errCode(err error) string {
	switch {
	case err == nil:
		return "OK"
	case errors.Is(err, storage.ErrNotFound):
		return "NotFound"
	case errors.Is(err, storage.ErrClosed):
		return "Closed"
	case errors.Is(err, storage.ErrCorrupted):
		return "Corrupted"
	}
	return "Unknown"
}

func newLeaseID() string {
	return strconv.FormatUint(utils.GenPseudoUniqId(), 36)
}
