package iterator

import "github.com/wooyang2018/corekv/storage"

// KeyIterator yields only the keys of an Iterator.
type KeyIterator struct {
	inner *Iterator
}

// NewKeyIterator creates a forward key iterator over src.
func NewKeyIterator(src storage.CursorSource, ro *storage.ReadOptions, snap storage.Snapshot) *KeyIterator {
	return &KeyIterator{inner: New(src, ro, snap)}
}

// Keys consumes it and returns a view yielding its keys.
func Keys(it *Iterator) *KeyIterator {
	return &KeyIterator{inner: it.take()}
}

func (k *KeyIterator) From(key []byte) *KeyIterator {
	k.inner.From(key)
	return k
}

func (k *KeyIterator) To(key []byte) *KeyIterator {
	k.inner.To(key)
	return k
}

func (k *KeyIterator) Prefix(key []byte) *KeyIterator {
	k.inner.Prefix(key)
	return k
}

// Reverse consumes k and returns a key iterator walking the other way.
func (k *KeyIterator) Reverse() *KeyIterator {
	return &KeyIterator{inner: k.inner.Reverse()}
}

func (k *KeyIterator) Direction() Direction { return k.inner.Direction() }
func (k *KeyIterator) Next() bool           { return k.inner.Next() }
func (k *KeyIterator) Valid() bool          { return k.inner.Valid() }
func (k *KeyIterator) Seek(key []byte)      { k.inner.Seek(key) }
func (k *KeyIterator) SeekToFirst()         { k.inner.SeekToFirst() }
func (k *KeyIterator) SeekToLast()          { k.inner.SeekToLast() }
func (k *KeyIterator) Error() error         { return k.inner.Error() }
func (k *KeyIterator) Release()             { k.inner.Release() }

// Key returns a copy of the current key.
func (k *KeyIterator) Key() []byte {
	return k.inner.Key()
}

// Last returns the key of the final entry of the traversal.
func (k *KeyIterator) Last() ([]byte, bool) {
	key, _, ok := k.inner.Last()
	return key, ok
}

// ValueIterator yields only the values of an Iterator.
type ValueIterator struct {
	inner *Iterator
}

// NewValueIterator creates a forward value iterator over src.
func NewValueIterator(src storage.CursorSource, ro *storage.ReadOptions, snap storage.Snapshot) *ValueIterator {
	return &ValueIterator{inner: New(src, ro, snap)}
}

// Values consumes it and returns a view yielding its values.
func Values(it *Iterator) *ValueIterator {
	return &ValueIterator{inner: it.take()}
}

func (v *ValueIterator) From(key []byte) *ValueIterator {
	v.inner.From(key)
	return v
}

func (v *ValueIterator) To(key []byte) *ValueIterator {
	v.inner.To(key)
	return v
}

func (v *ValueIterator) Prefix(key []byte) *ValueIterator {
	v.inner.Prefix(key)
	return v
}

// Reverse consumes v and returns a value iterator walking the other way.
func (v *ValueIterator) Reverse() *ValueIterator {
	return &ValueIterator{inner: v.inner.Reverse()}
}

func (v *ValueIterator) Direction() Direction { return v.inner.Direction() }
func (v *ValueIterator) Next() bool           { return v.inner.Next() }
func (v *ValueIterator) Valid() bool          { return v.inner.Valid() }
func (v *ValueIterator) Seek(key []byte)      { v.inner.Seek(key) }
func (v *ValueIterator) SeekToFirst()         { v.inner.SeekToFirst() }
func (v *ValueIterator) SeekToLast()          { v.inner.SeekToLast() }
func (v *ValueIterator) Error() error         { return v.inner.Error() }
func (v *ValueIterator) Release()             { v.inner.Release() }

// Value returns a copy of the current value.
func (v *ValueIterator) Value() []byte {
	return v.inner.Value()
}

// Last returns the value of the final entry of the traversal.
func (v *ValueIterator) Last() ([]byte, bool) {
	_, value, ok := v.inner.Last()
	return value, ok
}
