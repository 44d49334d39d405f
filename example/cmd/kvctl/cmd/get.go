package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wooyang2018/corekv/storage"
)

type GetCmd struct {
	BaseCmd
	g *GlobalFlags
}

func GetGetCmd(g *GlobalFlags) *GetCmd {
	c := &GetCmd{g: g}
	c.Cmd = &cobra.Command{
		Use:   "get <key>",
		Short: "Print the value of a key.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := c.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
	return c
}

func (c *GetCmd) Get(k string) (string, error) {
	key, err := c.g.parse(k)
	if err != nil {
		return "", err
	}

	db, err := c.g.openDB()
	if err != nil {
		return "", err
	}
	defer db.Close()

	data, err := db.Get(storage.NewReadOptions(), key)
	if err != nil {
		return "", err
	}
	if data == nil {
		return "", fmt.Errorf("key %q: %w", k, storage.ErrNotFound)
	}
	return c.g.formatValue(data)
}
