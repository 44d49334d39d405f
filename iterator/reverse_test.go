package iterator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReverseRepositionsBeforeStart(t *testing.T) {
	db := openMem(t, byteEntries(1, 2, 3)...)

	it := New(db, ro, nil).Reverse()
	defer it.Release()
	require.Equal(t, Reverse, it.Direction())
	require.Equal(t, byteEntries(3, 2, 1), collect(t, it))

	twice := New(db, ro, nil).Reverse().Reverse()
	defer twice.Release()
	require.Equal(t, Forward, twice.Direction())
	require.Equal(t, byteEntries(1, 2, 3), collect(t, twice))
}

func TestReverseKeepsBounds(t *testing.T) {
	db := openMem(t, byteEntries(1, 2, 3, 4, 5, 6)...)

	it := New(db, ro, nil).From(b(2)).To(b(5)).Reverse().Reverse()
	defer it.Release()
	require.Equal(t, byteEntries(2, 3, 4, 5), collect(t, it))
}

func TestReverseMidTraversalResumes(t *testing.T) {
	db := openMem(t, byteEntries(1, 2, 3, 4, 5)...)

	it := New(db, ro, nil)
	require.True(t, it.Next())
	require.True(t, it.Next())
	require.True(t, it.Next())
	require.Equal(t, b(3), it.Key())

	rev := it.Reverse()
	defer rev.Release()
	require.Equal(t, b(3), rev.Key())
	require.Equal(t, byteEntries(2, 1), collect(t, rev))
}

func TestReverseMidTraversalWithBounds(t *testing.T) {
	db := openMem(t, byteEntries(1, 2, 3, 4, 5)...)

	it := New(db, ro, nil).From(b(4)).To(b(2)).Reverse()
	require.True(t, it.Next())
	require.Equal(t, b(4), it.Key())
	require.True(t, it.Next())
	require.Equal(t, b(3), it.Key())

	fwd := it.Reverse()
	defer fwd.Release()
	// walking up, from=4 and to=2 describe an empty range
	require.Empty(t, collect(t, fwd))
}

func TestReverseProjection(t *testing.T) {
	db := openMem(t, e(b(1), 10), e(b(2), 20), e(b(3), 30))

	keys := NewKeyIterator(db, ro, nil).Reverse()
	defer keys.Release()
	require.Equal(t, Reverse, keys.Direction())
	var got [][]byte
	for keys.Next() {
		got = append(got, keys.Key())
	}
	require.Equal(t, [][]byte{b(3), b(2), b(1)}, got)
}
