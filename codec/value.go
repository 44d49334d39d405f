package codec

import (
	"errors"

	"github.com/golang/snappy"
)

const (
	flagRaw    byte = 0
	flagSnappy byte = 1
)

var ErrBadValue = errors.New("codec: bad value header")

// ValueCodec encodes values before they are written.
type ValueCodec interface {
	Encode(value []byte) []byte
	Decode(data []byte) ([]byte, error)
}

var (
	// Raw stores values unchanged.
	Raw ValueCodec = rawCodec{}
	// Snappy prefixes values with a one byte header and compresses them
	// when that makes them smaller.
	Snappy ValueCodec = snappyCodec{}
)

type rawCodec struct{}

func (rawCodec) Encode(value []byte) []byte { return value }

func (rawCodec) Decode(data []byte) ([]byte, error) { return data, nil }

type snappyCodec struct{}

func (snappyCodec) Encode(value []byte) []byte {
	if len(value) > 0 {
		compressed := snappy.Encode(nil, value)
		if len(compressed) < len(value) {
			return append([]byte{flagSnappy}, compressed...)
		}
	}
	return append([]byte{flagRaw}, value...)
}

func (snappyCodec) Decode(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrBadValue
	}
	switch data[0] {
	case flagRaw:
		return data[1:], nil
	case flagSnappy:
		return snappy.Decode(nil, data[1:])
	}
	return nil, ErrBadValue
}
