package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/wooyang2018/corekv/database"
	"github.com/wooyang2018/corekv/storage"
)

// LoadCmd imports "key<TAB>value" lines
type LoadCmd struct {
	BaseCmd
	g *GlobalFlags
	// 每个batch的记录数
	BatchSize int
	// 并发写入的协程数
	Workers int
}

type record struct {
	key, value []byte
}

func GetLoadCmd(g *GlobalFlags) *LoadCmd {
	c := &LoadCmd{g: g}
	c.Cmd = &cobra.Command{
		Use:     "load <file>",
		Short:   "Import key<TAB>value lines, - reads stdin.",
		Example: "kvctl load dump.tsv --db ./data/kv --workers 4",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			n, err := c.Load(cmd.Context(), in)
			if err != nil {
				return err
			}
			log.Printf("load success.records:%d", n)
			return nil
		},
	}
	c.Cmd.Flags().IntVar(&c.BatchSize, "batch", 1000, "records per batch")
	c.Cmd.Flags().IntVar(&c.Workers, "workers", 4, "concurrent batch writers")
	return c
}

// Load writes every record of in and returns how many were written. Each
// batch is atomic; a failure may leave earlier batches applied.
func (c *LoadCmd) Load(ctx context.Context, in io.Reader) (int64, error) {
	if c.BatchSize <= 0 || c.Workers <= 0 {
		return 0, fmt.Errorf("batch and workers must be positive")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := c.g.openDB()
	if err != nil {
		return 0, err
	}
	defer db.Close()

	var written int64
	chunks := make(chan []record, c.Workers)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(chunks)
		return c.readChunks(ctx, in, chunks)
	})
	for i := 0; i < c.Workers; i++ {
		g.Go(func() error {
			for chunk := range chunks {
				if err := c.writeChunk(db, chunk); err != nil {
					return err
				}
				atomic.AddInt64(&written, int64(len(chunk)))
			}
			return nil
		})
	}
	err = g.Wait()
	return atomic.LoadInt64(&written), err
}

func (c *LoadCmd) readChunks(ctx context.Context, in io.Reader, chunks chan<- []record) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	chunk := make([]record, 0, c.BatchSize)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if text == "" {
			continue
		}
		parts := strings.SplitN(text, "\t", 2)
		if len(parts) != 2 {
			return fmt.Errorf("line %d: missing tab", line)
		}
		key, err := c.g.parse(parts[0])
		if err != nil {
			return fmt.Errorf("line %d: %v", line, err)
		}
		value, err := c.g.parse(parts[1])
		if err != nil {
			return fmt.Errorf("line %d: %v", line, err)
		}
		chunk = append(chunk, record{key: key, value: value})
		if len(chunk) == c.BatchSize {
			select {
			case chunks <- chunk:
			case <-ctx.Done():
				return ctx.Err()
			}
			chunk = make([]record, 0, c.BatchSize)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	if len(chunk) > 0 {
		select {
		case chunks <- chunk:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (c *LoadCmd) writeChunk(db *database.DB, chunk []record) error {
	batch := db.NewBatch()
	vc := c.g.valueCodec()
	for _, r := range chunk {
		batch.Put(r.key, vc.Encode(r.value))
	}
	return db.Write(storage.NewWriteOptions(), batch)
}
