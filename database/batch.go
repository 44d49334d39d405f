package database

import "github.com/wooyang2018/corekv/storage"

// Batch collects puts and deletes applied atomically by DB.Write.
// It is not safe for concurrent use.
type Batch struct {
	b storage.Batch
}

func (b *Batch) Put(key, value []byte) {
	b.b.Put(key, value)
}

func (b *Batch) Delete(key []byte) {
	b.b.Delete(key)
}

// Len returns the number of queued records.
func (b *Batch) Len() int {
	return b.b.Len()
}

// ValueSize returns the bytes of keys and values queued so far.
func (b *Batch) ValueSize() int {
	return b.b.ValueSize()
}

// Reset drops every queued record so the batch can be reused.
func (b *Batch) Reset() {
	b.b.Reset()
}
