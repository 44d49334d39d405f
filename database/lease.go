package database

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/wooyang2018/corekv/common/metrics"
	"github.com/wooyang2018/corekv/storage"
)

// LeaseSnapshot takes a snapshot owned by the DB and returns an id to find
// it again. The snapshot is released when the lease is returned, when it
// expires after ttl without renewal, or when the DB is closed. A ttl of
// zero uses DefaultLeaseTTL.
func (db *DB) LeaseSnapshot(ttl time.Duration) (string, *Snapshot, error) {
	snap, err := db.Snapshot()
	if err != nil {
		return "", nil, err
	}
	if ttl == 0 {
		ttl = cache.DefaultExpiration
	}

	id := newLeaseID()
	if err := db.leases.Add(id, snap, ttl); err != nil {
		snap.Release()
		return "", nil, err
	}
	if db.metricSwitch {
		metrics.LeasedSnapshotGauge.Inc()
	}
	db.log.Debug("lease snapshot", "id", id, "ttl", ttl)
	return id, snap, nil
}

// LeasedSnapshot returns the snapshot of a live lease.
func (db *DB) LeasedSnapshot(id string) (*Snapshot, bool) {
	v, ok := db.leases.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*Snapshot), true
}

// RenewSnapshot extends a live lease by ttl from now.
func (db *DB) RenewSnapshot(id string, ttl time.Duration) error {
	snap, ok := db.LeasedSnapshot(id)
	if !ok {
		return fmt.Errorf("lease %s: %w", id, storage.ErrNotFound)
	}
	if ttl == 0 {
		ttl = cache.DefaultExpiration
	}
	return db.leases.Replace(id, snap, ttl)
}

// ReturnSnapshot ends a lease and releases its snapshot. Unknown ids are
// ignored.
func (db *DB) ReturnSnapshot(id string) {
	db.leases.Delete(id)
}

func (db *DB) evictLease(id string, v interface{}) {
	v.(*Snapshot).Release()
	if db.metricSwitch {
		metrics.LeasedSnapshotGauge.Dec()
	}
	db.log.Debug("release leased snapshot", "id", id)
}

// runLeaseJanitor drops expired leases every interval until Close.
func (db *DB) runLeaseJanitor(interval time.Duration) {
	defer close(db.stopped)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			db.leases.DeleteExpired()
		case <-db.done:
			return
		}
	}
}
