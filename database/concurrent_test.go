package database

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestConcurrentAccess(t *testing.T) {
	db := openTestDB(t)

	const writers, perWriter = 10, 100
	var g errgroup.Group
	for w := 0; w < writers; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < perWriter; i++ {
				key := make([]byte, 8)
				binary.BigEndian.PutUint32(key, uint32(w))
				binary.BigEndian.PutUint32(key[4:], uint32(i))
				if err := db.Put(wo, key, key[4:]); err != nil {
					return err
				}
			}
			return nil
		})
	}
	// readers only ever see ordered keys
	for r := 0; r < 4; r++ {
		g.Go(func() error {
			it := db.Iter(ro)
			defer it.Release()
			var prev []byte
			for it.Next() {
				key := it.Key()
				if prev != nil && string(prev) >= string(key) {
					t.Errorf("keys out of order: %x then %x", prev, key)
				}
				prev = key
			}
			return it.Error()
		})
	}
	require.NoError(t, g.Wait())

	count := 0
	it := db.KeysIter(ro)
	defer it.Release()
	for it.Next() {
		count++
	}
	require.Equal(t, writers*perWriter, count)

	// each writer's keys form a prefix
	for w := 0; w < writers; w++ {
		prefix := make([]byte, 4)
		binary.BigEndian.PutUint32(prefix, uint32(w))
		keys := db.KeysIter(ro).Prefix(prefix).Reverse()
		require.True(t, keys.Next())
		require.Equal(t, uint32(perWriter-1), binary.BigEndian.Uint32(keys.Key()[4:]))
		keys.Release()
	}
}
