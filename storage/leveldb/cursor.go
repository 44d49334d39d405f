package leveldb

import (
	"github.com/syndtr/goleveldb/leveldb/iterator"

	"github.com/wooyang2018/corekv/storage"
)

var _ storage.Cursor = (*cursor)(nil)

// cursor adapts a goleveldb iterator to storage.Cursor.
//
// goleveldb keeps the exhausted direction: Prev after running past the end
// lands on the last entry and Next after running past the start lands on
// the first entry.
type cursor struct {
	iter     iterator.Iterator
	released bool
}

func newCursor(iter iterator.Iterator) *cursor {
	return &cursor{iter: iter}
}

func emptyIterator(err error) iterator.Iterator {
	return iterator.NewEmptyIterator(err)
}

func (c *cursor) SeekToFirst() {
	c.iter.First()
}

func (c *cursor) SeekToLast() {
	c.iter.Last()
}

func (c *cursor) Seek(key []byte) {
	c.iter.Seek(key)
}

func (c *cursor) Next() {
	c.iter.Next()
}

func (c *cursor) Prev() {
	c.iter.Prev()
}

func (c *cursor) Valid() bool {
	return !c.released && c.iter.Valid()
}

func (c *cursor) Key() []byte {
	return c.iter.Key()
}

func (c *cursor) Value() []byte {
	return c.iter.Value()
}

func (c *cursor) Error() error {
	return normalizeError(c.iter.Error())
}

func (c *cursor) Release() {
	if c.released {
		return
	}
	c.released = true
	c.iter.Release()
}
