package iterator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyIterator(t *testing.T) {
	db := openMem(t, byteEntries(1, 2)...)

	keys := NewKeyIterator(db, ro, nil)
	defer keys.Release()
	require.True(t, keys.Next())
	require.Equal(t, b(1), keys.Key())
	require.True(t, keys.Valid())

	last, ok := keys.Last()
	require.True(t, ok)
	require.Equal(t, b(2), last)
}

func TestValueIterator(t *testing.T) {
	db := openMem(t, e(b(1), 10), e(b(2), 20), e(b(3), 30))

	values := NewValueIterator(db, ro, nil)
	defer values.Release()
	require.True(t, values.Next())
	require.Equal(t, b(10), values.Value())
}

func TestValueIteratorReverseYieldsValues(t *testing.T) {
	db := openMem(t, e(b(1), 10), e(b(2), 20), e(b(3), 30))

	values := NewValueIterator(db, ro, nil).To(b(2)).Reverse()
	defer values.Release()
	var got [][]byte
	for values.Next() {
		got = append(got, values.Value())
	}
	require.Equal(t, [][]byte{b(30), b(20)}, got)
	require.NoError(t, values.Error())
}

func TestProjectionBounds(t *testing.T) {
	db := openMem(t, prefixEntries()...)

	keys := NewKeyIterator(db, ro, nil).Prefix(b(2)).Reverse()
	defer keys.Release()
	var got [][]byte
	for keys.Next() {
		got = append(got, keys.Key())
	}
	require.Equal(t, [][]byte{b(2, 3), b(2, 2), b(2, 1, 1), b(2, 1), b(2)}, got)

	values := NewValueIterator(db, ro, nil).From(b(2, 2)).To(b(3, 1))
	defer values.Release()
	last, ok := values.Last()
	require.True(t, ok)
	require.Equal(t, b(7), last)
	got = got[:0]
	for values.Next() {
		got = append(got, values.Value())
	}
	require.Equal(t, [][]byte{b(5), b(6), b(7)}, got)
}

func TestProjectionOfStartedIterator(t *testing.T) {
	db := openMem(t, byteEntries(1, 2, 3)...)

	it := New(db, ro, nil)
	require.True(t, it.Next())
	keys := Keys(it)
	defer keys.Release()
	require.PanicsWithValue(t, ErrMoved, func() { it.Next() })

	// the view continues where the iterator stopped
	require.Equal(t, b(1), keys.Key())
	require.True(t, keys.Next())
	require.Equal(t, b(2), keys.Key())

	values := Values(New(db, ro, nil).Reverse())
	defer values.Release()
	values.SeekToLast()
	require.True(t, values.Valid())
	require.Equal(t, b(3), values.Value())
	values.SeekToFirst()
	require.Equal(t, b(1), values.Value())
	values.Seek(b(2))
	require.Equal(t, b(2), values.Value())
	require.PanicsWithValue(t, ErrBoundsFrozen, func() {
		keys.From(b(1))
	})
}
