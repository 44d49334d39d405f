package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wooyang2018/corekv/storage"
)

type PutCmd struct {
	BaseCmd
	g    *GlobalFlags
	Sync bool
}

func GetPutCmd(g *GlobalFlags) *PutCmd {
	c := &PutCmd{g: g}
	c.Cmd = &cobra.Command{
		Use:     "put <key> <value>",
		Short:   "Store a value under a key.",
		Example: "kvctl put name tom --db ./data/kv",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Put(args[0], args[1])
		},
	}
	c.Cmd.Flags().BoolVar(&c.Sync, "sync", false, "fsync before returning")
	return c
}

func (c *PutCmd) Put(k, v string) error {
	key, err := c.g.parse(k)
	if err != nil {
		return err
	}
	value, err := c.g.parse(v)
	if err != nil {
		return err
	}

	db, err := c.g.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	return db.Put(&storage.WriteOptions{Sync: c.Sync}, key, c.g.valueCodec().Encode(value))
}
