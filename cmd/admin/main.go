package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"freelancernow/internal/shared/logger"
)

const app = "admin"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	debug bool
	json  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          app,
		Short:        "Management commands for the Freelancer Now API",
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "verbose/debug output")
	root.PersistentFlags().BoolVarP(&opts.json, "json", "j", false, "json format for logging")

	root.AddCommand(
		newDocumentCmd(opts),
		newMigrateCmd(opts),
		newUserCmd(opts),
	)
	return root
}

// logger builds the zap logger selected by the persistent flags.
func (o *rootOptions) logger() *zap.Logger {
	log, err := logger.New(o.json, o.debug)
	if err != nil {
		return zap.NewNop()
	}
	return log
}
