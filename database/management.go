package database

import (
	"github.com/wooyang2018/corekv/storage"
	"github.com/wooyang2018/corekv/storage/leveldb"
)

// Destroy removes the database at path. It fails if the database is open
// or path holds something else.
func Destroy(path string) error {
	return leveldb.Destroy(path)
}

// Repair rebuilds the manifest of a damaged database from its table files.
// The database must not be open.
func Repair(path string, options *storage.Options) error {
	return leveldb.Repair(path, options)
}
