package database_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wooyang2018/corekv/database"
	"github.com/wooyang2018/corekv/storage"
)

func Example() {
	dir, err := os.MkdirTemp("", "corekv")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	db, err := database.Open(filepath.Join(dir, "kv"), nil)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	wo := storage.NewWriteOptions()
	for _, k := range []string{"a1", "a2", "b1", "b2", "b3"} {
		db.Put(wo, []byte(k), []byte("v"+k))
	}

	it := db.Iter(storage.NewReadOptions()).Prefix([]byte("b")).Reverse()
	defer it.Release()
	for it.Next() {
		key, value := it.Entry()
		fmt.Printf("%s=%s\n", key, value)
	}
	if err := it.Error(); err != nil {
		panic(err)
	}
	// Output:
	// b3=vb3
	// b2=vb2
	// b1=vb1
}

func ExampleDB_KeysIter() {
	db, err := database.OpenMem(nil)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	wo := storage.NewWriteOptions()
	for _, k := range []string{"1", "2", "3", "4", "5"} {
		db.Put(wo, []byte(k), nil)
	}

	keys := db.KeysIter(storage.NewReadOptions()).From([]byte("4")).To([]byte("2")).Reverse()
	defer keys.Release()
	for keys.Next() {
		fmt.Println(string(keys.Key()))
	}
	// Output:
	// 4
	// 3
	// 2
}
