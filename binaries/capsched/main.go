package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	exiterrors "github.com/twitter/capsched/common/errors"
	"github.com/twitter/capsched/common/log/hooks"
	"github.com/twitter/capsched/scheduler/client/cli"
)

// CLI binary for the capacity scheduler
//	Supported commands: (see "-h" for all options)
//		demo [--config <name|json>] [--fail <worker id>] [--print_stats]
//		configs
//	Global flags:
//		--log_level [<error|info|debug> level and above should be logged]

func main() {
	log.AddHook(hooks.NewContextHook())

	cl, err := cli.NewSimpleCLIClient()
	if err != nil {
		log.Fatal("Failed to create capsched CLI client: ", err)
	}

	if err := cl.Exec(); err != nil {
		log.Error("Error running capsched: ", err)
		if ece, ok := err.(*exiterrors.ExitCodeError); ok {
			os.Exit(int(ece.GetExitCode()))
		}
		os.Exit(int(exiterrors.GenericFailureExitCode))
	}
}
