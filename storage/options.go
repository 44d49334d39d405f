package storage

// Compression names accepted in Options.Compression.
const (
	CompressionNone   = "none"
	CompressionSnappy = "snappy"
)

// Options configure how a database is opened. Sizes are in bytes; zero
// keeps the engine default.
type Options struct {
	// create the database if missing
	CreateIfMissing bool `mapstructure:"createIfMissing"`
	// report an error if the database already exists
	ErrorIfExists bool `mapstructure:"errorIfExists"`
	// report corruption as soon as it is detected
	ParanoidChecks bool `mapstructure:"paranoidChecks"`
	// memtable size before it is flushed to a sorted table
	WriteBuffer int `mapstructure:"writeBuffer"`
	// capacity of the open files cache
	MaxOpenFiles int `mapstructure:"maxOpenFiles"`
	// uncompressed size of a table block
	BlockSize int `mapstructure:"blockSize"`
	// keys between restart points for delta encoding
	BlockRestartInterval int `mapstructure:"blockRestartInterval"`
	// none or snappy
	Compression string `mapstructure:"compression"`
	// capacity of the LRU block cache
	BlockCache int `mapstructure:"blockCache"`
	// bits per key of the bloom filter, 0 disables it
	BloomBits int `mapstructure:"bloomBits"`
}

// DefaultOptions mirrors the engine defaults with CreateIfMissing enabled.
func DefaultOptions() *Options {
	return &Options{
		CreateIfMissing: true,
		Compression:     CompressionSnappy,
		BloomBits:       10,
	}
}

// ReadOptions are passed to every read operation.
type ReadOptions struct {
	// verify block checksums on read
	VerifyChecksums bool
	// fill the block cache with blocks read by this operation
	FillCache bool
}

// NewReadOptions returns read options with the cache filled on read.
func NewReadOptions() *ReadOptions {
	return &ReadOptions{FillCache: true}
}

// WriteOptions are passed to every write operation.
type WriteOptions struct {
	// fsync before acknowledging the write
	Sync bool
}

// NewWriteOptions returns asynchronous write options.
func NewWriteOptions() *WriteOptions {
	return &WriteOptions{}
}
