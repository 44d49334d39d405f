package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/wooyang2018/corekv/database"
)

type RepairCmd struct {
	BaseCmd
	g *GlobalFlags
}

func GetRepairCmd(g *GlobalFlags) *RepairCmd {
	c := &RepairCmd{g: g}
	c.Cmd = &cobra.Command{
		Use:   "repair",
		Short: "Rebuild the manifest of a damaged database.(Please close the database before repair!)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.g.dbPath()
			if err != nil {
				return err
			}
			if err := database.Repair(path, nil); err != nil {
				return err
			}
			log.Printf("repair success.db:%s", path)
			return nil
		},
	}
	return c
}

type DestroyCmd struct {
	BaseCmd
	g *GlobalFlags
}

func GetDestroyCmd(g *GlobalFlags) *DestroyCmd {
	c := &DestroyCmd{g: g}
	c.Cmd = &cobra.Command{
		Use:   "destroy",
		Short: "Remove the database directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.g.dbPath()
			if err != nil {
				return err
			}
			return database.Destroy(path)
		},
	}
	return c
}
