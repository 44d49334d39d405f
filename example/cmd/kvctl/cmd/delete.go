package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wooyang2018/corekv/storage"
)

type DeleteCmd struct {
	BaseCmd
	g *GlobalFlags
}

func GetDeleteCmd(g *GlobalFlags) *DeleteCmd {
	c := &DeleteCmd{g: g}
	c.Cmd = &cobra.Command{
		Use:   "delete <key>...",
		Short: "Delete keys in one batch.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Delete(args...)
		},
	}
	return c
}

func (c *DeleteCmd) Delete(keys ...string) error {
	db, err := c.g.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	batch := db.NewBatch()
	for _, k := range keys {
		key, err := c.g.parse(k)
		if err != nil {
			return err
		}
		batch.Delete(key)
	}
	return db.Write(storage.NewWriteOptions(), batch)
}
