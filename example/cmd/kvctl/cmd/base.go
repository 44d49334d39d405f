package cmd

import (
	"encoding/hex"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	xconf "github.com/wooyang2018/corekv/common/config"
	"github.com/wooyang2018/corekv/common/utils"
	"github.com/wooyang2018/corekv/codec"
	"github.com/wooyang2018/corekv/database"
)

// BaseCmd is embedded by every kvctl command.
type BaseCmd struct {
	Cmd *cobra.Command
}

// GlobalFlags are shared by all subcommands.
type GlobalFlags struct {
	// 数据库配置文件
	DBConf string
	// 直接指定数据库目录，优先于配置文件
	Path string
	// keys and values given and printed as hex
	Hex bool
	// values are stored with the snappy codec
	Snappy bool
}

// NewRootCmd builds the kvctl command tree.
func NewRootCmd() *cobra.Command {
	g := new(GlobalFlags)
	root := &cobra.Command{
		Use:           "kvctl",
		Short:         "Inspect and edit a leveldb key-value store.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&g.DBConf, "conf", "c", "./conf/db.yaml",
		"database config file path")
	root.PersistentFlags().StringVarP(&g.Path, "db", "d", "",
		"database directory, overrides the config file")
	root.PersistentFlags().BoolVar(&g.Hex, "hex", false,
		"keys and values are hex encoded")
	root.PersistentFlags().BoolVar(&g.Snappy, "snappy", false,
		"values are snappy encoded")

	root.AddCommand(
		GetPutCmd(g).Cmd,
		GetGetCmd(g).Cmd,
		GetDeleteCmd(g).Cmd,
		GetScanCmd(g).Cmd,
		GetCompactCmd(g).Cmd,
		GetLoadCmd(g).Cmd,
		GetRepairCmd(g).Cmd,
		GetDestroyCmd(g).Cmd,
	)
	return root
}

func (g *GlobalFlags) openDB() (*database.DB, error) {
	if g.Path != "" {
		return database.Open(g.Path, nil)
	}

	cfg, err := g.loadConf()
	if err != nil {
		return nil, err
	}
	return database.OpenWithConf(cfg)
}

func (g *GlobalFlags) dbPath() (string, error) {
	if g.Path != "" {
		return g.Path, nil
	}
	cfg, err := g.loadConf()
	if err != nil {
		return "", err
	}
	return cfg.DBPath(), nil
}

func (g *GlobalFlags) loadConf() (*xconf.DBConf, error) {
	if !utils.FileIsExist(g.DBConf) {
		log.Printf("config file not exist.conf:%s\n", g.DBConf)
		return nil, fmt.Errorf("config file not exist")
	}
	cfg, err := xconf.LoadDBConf(g.DBConf)
	if err != nil {
		log.Printf("load db config failed.conf:%s err:%v\n", g.DBConf, err)
		return nil, fmt.Errorf("load db config failed")
	}
	return cfg, nil
}

func (g *GlobalFlags) valueCodec() codec.ValueCodec {
	if g.Snappy {
		return codec.Snappy
	}
	return codec.Raw
}

// parse decodes a key or value given on the command line. Empty means unset.
func (g *GlobalFlags) parse(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	if !g.Hex {
		return []byte(s), nil
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("bad hex %q: %v", s, err)
	}
	return b, nil
}

func (g *GlobalFlags) format(b []byte) string {
	if g.Hex {
		return hex.EncodeToString(b)
	}
	return string(b)
}

func (g *GlobalFlags) formatValue(data []byte) (string, error) {
	value, err := g.valueCodec().Decode(data)
	if err != nil {
		return "", err
	}
	return g.format(value), nil
}
