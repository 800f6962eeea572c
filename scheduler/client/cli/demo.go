package cli

/**
implements the command line entry for the demo command
*/

import (
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	cc "github.com/twitter/capsched/cloud/cluster"
	"github.com/twitter/capsched/common/client"
	exiterrors "github.com/twitter/capsched/common/errors"
	"github.com/twitter/capsched/scheduler/config"
	"github.com/twitter/capsched/scheduler/server"
)

type demoCmd struct {
	configFlag string
	fail       string
	printStats bool
}

func (c *demoCmd) RegisterFlags() *cobra.Command {
	r := &cobra.Command{
		Use:   "demo",
		Short: "Place a configured batch, fail a worker and print the distribution before and after",
		Args:  cobra.NoArgs,
	}
	r.Flags().StringVar(&c.configFlag, "config", "demo.default", "Built-in config name (see 'configs') or literal JSON")
	r.Flags().StringVar(&c.fail, "fail", "", "Worker to fail after placement, overrides the config's Fail")
	r.Flags().BoolVar(&c.printStats, "print_stats", false, "Print scheduler stats as JSON when done")
	return r
}

func (c *demoCmd) Run(cl *client.SimpleClient, cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(c.configFlag)
	if err != nil {
		return exiterrors.NewError(err, exiterrors.UsageExitCode)
	}
	log.Infof("Running demo with config %v", cfg)

	s := server.NewCapacityScheduler(cl.Stat, nil)
	batch, err := cfg.Apply(s)
	if err != nil {
		return exiterrors.FromSchedulingError(err)
	}

	initial, err := s.Assign(batch)
	if err != nil {
		return exiterrors.FromSchedulingError(errors.Wrap(err, "unable to assign batch"))
	}
	if err := server.PrintDistribution(out, initial, "Initial Distribution"); err != nil {
		return err
	}

	fail := cfg.Fail
	if c.fail != "" {
		fail = c.fail
	}
	if fail != "" {
		fmt.Fprintf(out, "\nSimulating failure of worker %s...\n", fail)
		recovered, err := s.HandleFailure(cc.NodeId(fail))
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			if err := server.PrintDistribution(out, s.Snapshot(), "Distribution After Failed Recovery"); err != nil {
				return err
			}
			return c.finish(cl, cmd, exiterrors.FromSchedulingError(err))
		}
		title := fmt.Sprintf("Distribution After %s Failure", fail)
		if err := server.PrintDistribution(out, recovered, title); err != nil {
			return err
		}
	}
	return c.finish(cl, cmd, nil)
}

// finish prints stats if asked and returns result unchanged.
func (c *demoCmd) finish(cl *client.SimpleClient, cmd *cobra.Command, result error) error {
	if c.printStats && cl.Stat != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", cl.Stat.Render(true))
	}
	return result
}
