package main

import (
	"fmt"
	"os"

	"github.com/wooyang2018/corekv/example/cmd/kvctl/cmd"
	"github.com/wooyang2018/corekv/logger"
)

func main() {
	err := cmd.NewRootCmd().Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
