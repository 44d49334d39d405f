package leveldb

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
	ldbstorage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/wooyang2018/corekv/storage"
)

// OpenSingle opens the database stored in a single directory.
func (ldb *LDBDatabase) OpenSingle(path string, options *storage.Options) error {
	o, err := engineOptions(options)
	if err != nil {
		return err
	}

	// Open the db and recover any potential corruptions
	db, err := leveldb.OpenFile(path, o)
	if err != nil {
		return normalizeError(err)
	}
	ldb.fn = path
	ldb.db = db
	return nil
}

// OpenMem opens a database kept entirely in memory. Mainly for tests.
func OpenMem(options *storage.Options) (*LDBDatabase, error) {
	if options == nil {
		options = storage.DefaultOptions()
	}
	o, err := engineOptions(options)
	if err != nil {
		return nil, err
	}
	db, err := leveldb.Open(ldbstorage.NewMemStorage(), o)
	if err != nil {
		return nil, normalizeError(err)
	}
	return &LDBDatabase{fn: ":memory:", db: db}, nil
}

// Repair recovers the manifest of a damaged database and leaves it closed.
func Repair(path string, options *storage.Options) error {
	o, err := engineOptions(options)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		return normalizeError(err)
	}
	db, err := leveldb.RecoverFile(path, o)
	if err != nil {
		return normalizeError(err)
	}
	return db.Close()
}

// Destroy removes the database at path. A missing directory is not an
// error. The directory must hold a database that is not open.
func Destroy(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if _, err := os.Stat(filepath.Join(path, "CURRENT")); err != nil {
		entries, rerr := os.ReadDir(path)
		if rerr != nil {
			return rerr
		}
		if len(entries) > 0 {
			return fmt.Errorf("%w: %s is not a database", storage.ErrNotExist, path)
		}
	}

	// holding the file lock proves no process has the database open
	stor, err := ldbstorage.OpenFile(path, false)
	if err != nil {
		return normalizeError(err)
	}
	if err := stor.Close(); err != nil {
		return normalizeError(err)
	}
	return os.RemoveAll(path)
}

func engineOptions(options *storage.Options) (*opt.Options, error) {
	if options == nil {
		options = storage.DefaultOptions()
	}

	o := &opt.Options{
		ErrorIfMissing:         !options.CreateIfMissing,
		ErrorIfExist:           options.ErrorIfExists,
		WriteBuffer:            options.WriteBuffer,
		OpenFilesCacheCapacity: options.MaxOpenFiles,
		BlockSize:              options.BlockSize,
		BlockRestartInterval:   options.BlockRestartInterval,
		BlockCacheCapacity:     options.BlockCache,
	}
	if options.ParanoidChecks {
		o.Strict = opt.StrictAll
	}

	switch options.Compression {
	case "", storage.CompressionSnappy:
		o.Compression = opt.SnappyCompression
	case storage.CompressionNone:
		o.Compression = opt.NoCompression
	default:
		return nil, badOptions("unknown compression %q", options.Compression)
	}

	if options.BloomBits < 0 {
		return nil, badOptions("negative bloomBits %d", options.BloomBits)
	}
	if options.BloomBits > 0 {
		o.Filter = filter.NewBloomFilter(options.BloomBits)
	}
	return o, nil
}

func readOptions(ro *storage.ReadOptions) *opt.ReadOptions {
	if ro == nil {
		return nil
	}
	o := &opt.ReadOptions{DontFillCache: !ro.FillCache}
	if ro.VerifyChecksums {
		o.Strict = opt.StrictBlockChecksum
	}
	return o
}

func writeOptions(wo *storage.WriteOptions) *opt.WriteOptions {
	if wo == nil {
		return nil
	}
	return &opt.WriteOptions{Sync: wo.Sync}
}
