package leveldb

import (
	"errors"
	"os"

	"github.com/syndtr/goleveldb/leveldb"
	ldberrors "github.com/syndtr/goleveldb/leveldb/errors"
	ldbstorage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/wooyang2018/corekv/storage"
)

// normalizeError maps goleveldb errors onto the storage sentinels by
// identity. Anything else goes through storage.NormalizeKVError.
func normalizeError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, leveldb.ErrNotFound):
		return storage.WrapKVError(storage.ErrNotFound, err)
	case errors.Is(err, leveldb.ErrClosed),
		errors.Is(err, leveldb.ErrSnapshotReleased),
		errors.Is(err, leveldb.ErrIterReleased),
		errors.Is(err, ldberrors.ErrReleased),
		errors.Is(err, ldbstorage.ErrClosed):
		return storage.WrapKVError(storage.ErrClosed, err)
	case ldberrors.IsCorrupted(err):
		return storage.WrapKVError(storage.ErrCorrupted, err)
	case errors.Is(err, os.ErrExist):
		return storage.WrapKVError(storage.ErrExist, err)
	case errors.Is(err, os.ErrNotExist):
		return storage.WrapKVError(storage.ErrNotExist, err)
	}
	return storage.NormalizeKVError(err)
}
