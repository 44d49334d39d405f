package database

import (
	"github.com/wooyang2018/corekv/common/metrics"
	"github.com/wooyang2018/corekv/storage"
)

// meteredCursor counts cursor positioning calls and open cursors.
type meteredCursor struct {
	storage.Cursor
	released bool
}

func newMeteredCursor(cur storage.Cursor) *meteredCursor {
	metrics.OpenCursorGauge.Inc()
	return &meteredCursor{Cursor: cur}
}

func (c *meteredCursor) SeekToFirst() {
	metrics.CursorMoveCounter.WithLabelValues("first").Inc()
	c.Cursor.SeekToFirst()
}

func (c *meteredCursor) SeekToLast() {
	metrics.CursorMoveCounter.WithLabelValues("last").Inc()
	c.Cursor.SeekToLast()
}

func (c *meteredCursor) Seek(key []byte) {
	metrics.CursorMoveCounter.WithLabelValues("seek").Inc()
	c.Cursor.Seek(key)
}

func (c *meteredCursor) Next() {
	metrics.CursorMoveCounter.WithLabelValues("next").Inc()
	c.Cursor.Next()
}

func (c *meteredCursor) Prev() {
	metrics.CursorMoveCounter.WithLabelValues("prev").Inc()
	c.Cursor.Prev()
}

func (c *meteredCursor) Release() {
	if !c.released {
		c.released = true
		metrics.OpenCursorGauge.Dec()
	}
	c.Cursor.Release()
}
