package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wooyang2018/corekv/iterator"
	"github.com/wooyang2018/corekv/storage"
)

// ScanCmd prints a range of the keyspace
type ScanCmd struct {
	BaseCmd
	g *GlobalFlags
	// 迭代边界，按迭代方向解释
	From   string
	To     string
	Prefix string
	// 逆序迭代
	Reverse    bool
	KeysOnly   bool
	ValuesOnly bool
	// 最多输出条数，0表示不限制
	Limit int
	// 只输出最后一条
	Last bool
}

func GetScanCmd(g *GlobalFlags) *ScanCmd {
	c := &ScanCmd{g: g}
	c.Cmd = &cobra.Command{
		Use:   "scan",
		Short: "Print the entries between optional bounds.",
		Example: "kvctl scan --from a --to c\n" +
			"kvctl scan --from c --to a --reverse\n" +
			"kvctl scan --prefix user/ --keys-only --last",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.Scan(cmd.OutOrStdout())
		},
	}

	c.Cmd.Flags().StringVar(&c.From, "from", "", "first key, inclusive")
	c.Cmd.Flags().StringVar(&c.To, "to", "", "last key, inclusive")
	c.Cmd.Flags().StringVarP(&c.Prefix, "prefix", "p", "", "only keys with this prefix, overrides --from and --to")
	c.Cmd.Flags().BoolVarP(&c.Reverse, "reverse", "r", false, "descending key order")
	c.Cmd.Flags().BoolVar(&c.KeysOnly, "keys-only", false, "print keys only")
	c.Cmd.Flags().BoolVar(&c.ValuesOnly, "values-only", false, "print values only")
	c.Cmd.Flags().IntVarP(&c.Limit, "limit", "n", 0, "print at most n entries")
	c.Cmd.Flags().BoolVar(&c.Last, "last", false, "print the last entry of the range only")

	return c
}

func (c *ScanCmd) Scan(out io.Writer) error {
	if c.KeysOnly && c.ValuesOnly {
		return fmt.Errorf("--keys-only and --values-only are exclusive")
	}
	from, err := c.g.parse(c.From)
	if err != nil {
		return err
	}
	to, err := c.g.parse(c.To)
	if err != nil {
		return err
	}
	prefix, err := c.g.parse(c.Prefix)
	if err != nil {
		return err
	}

	db, err := c.g.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	it := db.Iter(storage.NewReadOptions()).From(from).To(to).Prefix(prefix)
	if c.Reverse {
		it = it.Reverse()
	}

	switch {
	case c.KeysOnly:
		return c.scanKeys(out, iterator.Keys(it))
	case c.ValuesOnly:
		return c.scanValues(out, iterator.Values(it))
	}
	return c.scanEntries(out, it)
}

func (c *ScanCmd) scanEntries(out io.Writer, it *iterator.Iterator) error {
	defer it.Release()
	if c.Last {
		if key, value, ok := it.Last(); ok {
			return c.printEntry(out, key, value)
		}
		return it.Error()
	}
	for n := 0; (c.Limit == 0 || n < c.Limit) && it.Next(); n++ {
		key, value := it.Entry()
		if err := c.printEntry(out, key, value); err != nil {
			return err
		}
	}
	return it.Error()
}

func (c *ScanCmd) printEntry(out io.Writer, key, data []byte) error {
	value, err := c.g.formatValue(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\t%s\n", c.g.format(key), value)
	return err
}

func (c *ScanCmd) scanKeys(out io.Writer, it *iterator.KeyIterator) error {
	defer it.Release()
	if c.Last {
		if key, ok := it.Last(); ok {
			fmt.Fprintln(out, c.g.format(key))
		}
		return it.Error()
	}
	for n := 0; (c.Limit == 0 || n < c.Limit) && it.Next(); n++ {
		fmt.Fprintln(out, c.g.format(it.Key()))
	}
	return it.Error()
}

func (c *ScanCmd) scanValues(out io.Writer, it *iterator.ValueIterator) error {
	defer it.Release()
	if c.Last {
		if data, ok := it.Last(); ok {
			value, err := c.g.formatValue(data)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, value)
		}
		return it.Error()
	}
	for n := 0; (c.Limit == 0 || n < c.Limit) && it.Next(); n++ {
		value, err := c.g.formatValue(it.Value())
		if err != nil {
			return err
		}
		fmt.Fprintln(out, value)
	}
	return it.Error()
}
