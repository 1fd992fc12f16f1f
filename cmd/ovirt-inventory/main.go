package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kubev2v/ovirt-inventory/internal/cli"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()
	zap.ReplaceGlobals(logger)

	command := newInventoryCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func newInventoryCommand() *cobra.Command {
	return cli.NewCmdInventory()
}
