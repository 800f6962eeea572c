package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/twitter/capsched/common/client"
	"github.com/twitter/capsched/scheduler/config"
)

type listConfigsCmd struct{}

func (c *listConfigsCmd) RegisterFlags() *cobra.Command {
	return &cobra.Command{
		Use:   "configs",
		Short: "List the built-in configs usable with demo --config",
		Args:  cobra.NoArgs,
	}
}

func (c *listConfigsCmd) Run(cl *client.SimpleClient, cmd *cobra.Command, args []string) error {
	for _, name := range config.Names() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
