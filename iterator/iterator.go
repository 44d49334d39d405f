// Package iterator implements bounded, reversible iteration over a
// storage.Cursor.
//
// An Iterator owns exactly one cursor. Bounds are attached before the first
// call to Next:
//
//	it := iterator.New(db, storage.NewReadOptions(), nil).From(start).To(end)
//	defer it.Release()
//	for it.Next() {
//	    key, value := it.Entry()
//	    // process key, value
//	}
//	if err := it.Error(); err != nil {
//	    // the engine failed, the sequence may be incomplete
//	}
//
// from and to are inclusive and interpreted along the iteration direction:
// a reverse iterator starts at from and walks down to to. A prefix bound
// overrides from and to.
package iterator

import (
	"bytes"

	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/wooyang2018/corekv/storage"
)

// Direction is the key order of a traversal.
type Direction int

const (
	// Forward visits keys in ascending order.
	Forward Direction = iota
	// Reverse visits keys in descending order.
	Reverse
)

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == Reverse {
		return Forward
	}
	return Reverse
}

// traversal tells whether the first, bound aware positioning is still due.
type traversal int

const (
	notStarted traversal = iota
	started
)

// Iterable is implemented by stores that hand out iterators.
type Iterable interface {
	Iter(ro *storage.ReadOptions) *Iterator
	KeysIter(ro *storage.ReadOptions) *KeyIterator
	ValueIter(ro *storage.ReadOptions) *ValueIterator
}

// Iterator walks a cursor in one direction between optional bounds.
// It is not safe for concurrent use.
type Iterator struct {
	cur   storage.Cursor
	dir   Direction
	state traversal
	// set once Next has returned false
	done bool
	// nil means unset
	from, to, prefix []byte
	moved            bool
	released         bool
}

// New creates a forward iterator over src, pinned to snap when snap is not
// nil. The caller must call Release.
func New(src storage.CursorSource, ro *storage.ReadOptions, snap storage.Snapshot) *Iterator {
	return Wrap(src.NewCursor(ro, snap))
}

// Wrap takes ownership of cur and returns a forward iterator over it.
func Wrap(cur storage.Cursor) *Iterator {
	cur.SeekToFirst()
	return &Iterator{cur: cur, dir: Forward}
}

// From sets the inclusive start boundary. A nil key leaves it unset.
func (it *Iterator) From(key []byte) *Iterator {
	it.mustConfigure()
	it.from = key
	return it
}

// To sets the inclusive end boundary. A nil key leaves it unset.
func (it *Iterator) To(key []byte) *Iterator {
	it.mustConfigure()
	it.to = key
	return it
}

// Prefix restricts the iteration to keys starting with key. It takes
// precedence over From and To. A nil key leaves it unset.
func (it *Iterator) Prefix(key []byte) *Iterator {
	it.mustConfigure()
	it.prefix = key
	return it
}

// Direction returns the traversal direction.
func (it *Iterator) Direction() Direction {
	return it.dir
}

// Next advances to the next entry inside the bounds and reports whether
// there is one. Once it returns false it keeps returning false.
func (it *Iterator) Next() bool {
	it.mustLive()
	if it.done {
		return false
	}

	switch it.state {
	case started:
		it.step()
	case notStarted:
		switch {
		case it.prefix != nil && it.dir == Reverse:
			it.seekPrefixEnd()
		case it.prefix != nil:
			it.cur.Seek(it.prefix)
		case it.from != nil:
			it.cur.Seek(it.from)
			// Seek lands on the smallest key >= from. Walking down, a
			// missing from must start at the largest key <= from instead.
			if !it.valid() && it.dir == Reverse {
				it.cur.Prev()
			}
		}
		it.state = started
	}

	if it.valid() {
		return true
	}
	it.done = true
	return false
}

// Valid reports whether the iterator is positioned on an entry inside
// its bounds.
func (it *Iterator) Valid() bool {
	return !it.moved && it.valid()
}

func (it *Iterator) valid() bool {
	if !it.cur.Valid() {
		return false
	}
	key := it.cur.Key()
	if it.prefix != nil {
		return bytes.HasPrefix(key, it.prefix)
	}
	if it.from != nil && !it.within(key, it.from, it.dir == Forward) {
		return false
	}
	if it.to != nil && !it.within(key, it.to, it.dir == Reverse) {
		return false
	}
	return true
}

// within reports key >= bound when atLeast is set, key <= bound otherwise.
func (it *Iterator) within(key, bound []byte, atLeast bool) bool {
	c := bytes.Compare(key, bound)
	if atLeast {
		return c >= 0
	}
	return c <= 0
}

func (it *Iterator) step() {
	if it.dir == Reverse {
		it.cur.Prev()
		return
	}
	it.cur.Next()
}

// Seek moves the cursor to the first key >= key. It does not change the
// traversal state: on an iterator that has not started, a from or prefix
// bound still repositions the cursor on the first Next.
func (it *Iterator) Seek(key []byte) {
	it.mustLive()
	it.cur.Seek(key)
}

// SeekToFirst moves the cursor to the first key of the keyspace.
func (it *Iterator) SeekToFirst() {
	it.mustLive()
	it.cur.SeekToFirst()
}

// SeekToLast moves the cursor to the last key of the keyspace, or to the
// largest key <= to when a to bound is set.
func (it *Iterator) SeekToLast() {
	it.mustLive()
	if it.to == nil {
		it.cur.SeekToLast()
		return
	}
	it.cur.Seek(it.to)
	if !it.cur.Valid() || bytes.Compare(it.cur.Key(), it.to) > 0 {
		it.cur.Prev()
	}
}

// Key returns a copy of the current key. It panics with ErrInvalidPosition
// when Valid is false.
func (it *Iterator) Key() []byte {
	it.mustPositioned()
	return clone(it.cur.Key())
}

// Value returns a copy of the current value. It panics with
// ErrInvalidPosition when Valid is false.
func (it *Iterator) Value() []byte {
	it.mustPositioned()
	return clone(it.cur.Value())
}

// Entry returns copies of the current key and value. It panics with
// ErrInvalidPosition when Valid is false.
func (it *Iterator) Entry() (key, value []byte) {
	it.mustPositioned()
	return clone(it.cur.Key()), clone(it.cur.Value())
}

// Last returns the final entry a full traversal would yield, honoring the
// bounds and the direction. ok is false when the traversal is empty.
//
// Last is a point query: the cursor is put back on the key it was on,
// including a position set with Seek before the first Next. A cursor that
// was off the keyspace before the first Next goes back to its initial edge.
func (it *Iterator) Last() (key, value []byte, ok bool) {
	it.mustLive()

	var resume []byte
	if it.cur.Valid() {
		resume = clone(it.cur.Key())
	}

	it.seekFinal()
	if it.valid() {
		key, value, ok = clone(it.cur.Key()), clone(it.cur.Value()), true
	}

	switch {
	case resume != nil:
		it.cur.Seek(resume)
	case it.state == notStarted:
		it.seekInitial()
	}
	return key, value, ok
}

// seekFinal positions the cursor on the last candidate of the traversal.
func (it *Iterator) seekFinal() {
	if it.dir == Reverse {
		switch {
		case it.prefix != nil:
			it.cur.Seek(it.prefix)
		case it.to != nil:
			it.cur.Seek(it.to)
		default:
			it.cur.SeekToFirst()
		}
		return
	}

	switch {
	case it.prefix != nil:
		it.seekPrefixEnd()
	case it.to != nil:
		it.SeekToLast()
	default:
		it.cur.SeekToLast()
	}
}

// seekPrefixEnd positions the cursor on the largest key carrying the prefix.
func (it *Iterator) seekPrefixEnd() {
	limit := util.BytesPrefix(it.prefix).Limit
	if limit == nil {
		// prefix is all 0xff, nothing sorts after its range
		it.cur.SeekToLast()
		return
	}
	it.cur.Seek(limit)
	it.cur.Prev()
}

func (it *Iterator) seekInitial() {
	if it.dir == Reverse {
		it.cur.SeekToLast()
		return
	}
	it.cur.SeekToFirst()
}

// Error returns the engine error seen by the cursor, if any. Next returns
// false both at the end of the range and on engine failure; Error tells
// them apart.
func (it *Iterator) Error() error {
	if it.moved {
		return ErrMoved
	}
	return it.cur.Error()
}

// Release releases the cursor. It is safe to call more than once, and it
// is a no-op on an iterator whose cursor was moved.
func (it *Iterator) Release() {
	if it.moved || it.released {
		return
	}
	it.released = true
	it.cur.Release()
}

// take moves the cursor and the whole state into a new Iterator. The
// receiver is left unusable.
func (it *Iterator) take() *Iterator {
	it.mustLive()
	next := *it
	it.cur = nil
	it.moved = true
	return &next
}

func (it *Iterator) mustLive() {
	if it.moved {
		panic(ErrMoved)
	}
}

func (it *Iterator) mustConfigure() {
	it.mustLive()
	if it.state != notStarted {
		panic(ErrBoundsFrozen)
	}
}

func (it *Iterator) mustPositioned() {
	it.mustLive()
	if !it.valid() {
		panic(ErrInvalidPosition)
	}
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
