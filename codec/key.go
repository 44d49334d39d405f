// Package codec converts typed keys and values to the byte strings stored
// in the database.
//
// Integers are encoded big-endian so that non-negative values sort in
// numeric order. Negative signed values are stored in two's complement and
// sort after every non-negative value.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var ErrBadLength = errors.New("codec: bad length")

func Int32(v int32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(v))
	return b
}

func Int64(v int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}

func Uint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

func String(v string) []byte {
	return []byte(v)
}

// Bytes returns a copy of v.
func Bytes(v []byte) []byte {
	return append([]byte(nil), v...)
}

func ToInt32(b []byte) (int32, error) {
	if len(b) != 4 {
		return 0, badLength(4, b)
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

func ToInt64(b []byte) (int64, error) {
	if len(b) != 8 {
		return 0, badLength(8, b)
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

func ToUint64(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, badLength(8, b)
	}
	return binary.BigEndian.Uint64(b), nil
}

func ToString(b []byte) string {
	return string(b)
}

func badLength(want int, b []byte) error {
	return fmt.Errorf("%w: want %d bytes, got %d", ErrBadLength, want, len(b))
}
