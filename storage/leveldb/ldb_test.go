package leveldb

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wooyang2018/corekv/storage"
)

var (
	ro = storage.NewReadOptions()
	wo = storage.NewWriteOptions()
)

func TestLevelDBOpenByName(t *testing.T) {
	require.Contains(t, storage.Drivers(), EngineName)

	path := filepath.Join(t.TempDir(), "ldb")
	db, err := storage.OpenDatabase(EngineName, path, map[string]interface{}{
		"cache":       64,
		"fds":         128,
		"compression": "none",
	})
	require.NoError(t, err)
	defer db.Close()
	require.Equal(t, path, db.(*LDBDatabase).Path())

	require.NoError(t, db.Put(wo, []byte("k"), []byte("v")))
	value, err := db.Get(ro, []byte("k"))
	require.NoError(t, err)
	require.Equal(t, []byte("v"), value)

	stats, err := db.(*LDBDatabase).Property("leveldb.stats")
	require.NoError(t, err)
	require.NotEmpty(t, stats)
}

func TestLevelDBBatch(t *testing.T) {
	db, err := OpenMem(nil)
	require.NoError(t, err)
	defer db.Close()

	batch := db.NewBatch()
	batch.Put([]byte("a"), []byte("1"))
	batch.Put([]byte("b"), []byte("2"))
	batch.Delete([]byte("a"))
	require.Equal(t, 3, batch.Len())
	require.Equal(t, 5, batch.ValueSize())
	require.NoError(t, db.Write(wo, batch))

	ok, err := db.Has(ro, []byte("a"))
	require.NoError(t, err)
	require.False(t, ok)
	ok, err = db.Has(ro, []byte("b"))
	require.NoError(t, err)
	require.True(t, ok)

	batch.Reset()
	require.Zero(t, batch.Len())
	require.Zero(t, batch.ValueSize())

	require.Error(t, db.Write(wo, foreignBatch{}))
}

type foreignBatch struct {
	storage.Batch
}

func TestLevelDBSnapshotCursor(t *testing.T) {
	db, err := OpenMem(nil)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Put(wo, []byte("a"), []byte("1")))

	snap, err := db.GetSnapshot()
	require.NoError(t, err)
	require.NoError(t, db.Put(wo, []byte("b"), []byte("2")))

	cur := db.NewCursor(ro, snap)
	cur.SeekToLast()
	require.True(t, cur.Valid())
	require.Equal(t, []byte("a"), cur.Key())
	cur.Next()
	require.False(t, cur.Valid())
	// goleveldb walks back from the end
	cur.Prev()
	require.True(t, cur.Valid())
	require.Equal(t, []byte("a"), cur.Key())
	cur.Release()
	cur.Release()
	require.False(t, cur.Valid())

	value, err := snap.Get(ro, []byte("b"))
	require.NoError(t, err)
	require.Nil(t, value)
	snap.Release()

	cur = db.NewCursor(ro, foreignSnapshot{})
	defer cur.Release()
	cur.SeekToFirst()
	require.False(t, cur.Valid())
	require.Error(t, cur.Error())
}

type foreignSnapshot struct {
	storage.Snapshot
}

func TestLevelDBClosed(t *testing.T) {
	db, err := OpenMem(nil)
	require.NoError(t, err)
	require.NoError(t, db.Close())
	require.NoError(t, db.Close())

	_, err = db.Get(ro, []byte("k"))
	require.ErrorIs(t, err, storage.ErrClosed)
	require.ErrorIs(t, db.Put(wo, []byte("k"), nil), storage.ErrClosed)

	cur := db.NewCursor(ro, nil)
	defer cur.Release()
	cur.SeekToFirst()
	require.False(t, cur.Valid())
	require.ErrorIs(t, cur.Error(), storage.ErrClosed)
}

func TestEngineOptions(t *testing.T) {
	o, err := engineOptions(nil)
	require.NoError(t, err)
	require.False(t, o.ErrorIfMissing)
	require.NotNil(t, o.Filter)

	_, err = engineOptions(&storage.Options{Compression: "lz4"})
	require.ErrorIs(t, err, storage.ErrBadOptions)
	_, err = engineOptions(&storage.Options{BloomBits: -1})
	require.ErrorIs(t, err, storage.ErrBadOptions)

	require.Nil(t, readOptions(nil))
	r := readOptions(&storage.ReadOptions{VerifyChecksums: true})
	require.True(t, r.DontFillCache)
	require.NotZero(t, r.Strict)
	require.True(t, writeOptions(&storage.WriteOptions{Sync: true}).Sync)
}
