package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

type CompactCmd struct {
	BaseCmd
	g     *GlobalFlags
	Start string
	Limit string
}

func GetCompactCmd(g *GlobalFlags) *CompactCmd {
	c := &CompactCmd{g: g}
	c.Cmd = &cobra.Command{
		Use:   "compact",
		Short: "Compact the keys in [start, limit), the whole keyspace by default.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Compact()
		},
	}
	c.Cmd.Flags().StringVar(&c.Start, "start", "", "first key to compact")
	c.Cmd.Flags().StringVar(&c.Limit, "limit", "", "compact keys before this one")
	return c
}

func (c *CompactCmd) Compact() error {
	start, err := c.g.parse(c.Start)
	if err != nil {
		return err
	}
	limit, err := c.g.parse(c.Limit)
	if err != nil {
		return err
	}

	db, err := c.g.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.CompactRange(start, limit); err != nil {
		return err
	}
	log.Printf("compact success.db:%s", db.Path())
	return nil
}
