package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/zeusync/flightrig/internal/config"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	cfgFile  string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "flightrig",
		Short:         "Headless arcade flight model, chase camera and checkpoint course",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "",
		"config file (defaults plus "+config.EnvPrefix+"_* environment variables when empty)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "",
		"override log.level (debug, info, warn, error)")

	cmd.AddCommand(newSimulateCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadSettings reads the configuration and applies flag overrides that were
// set explicitly on the command line.
func (o *rootOptions) loadSettings(flags *pflag.FlagSet) (*config.Settings, error) {
	settings, err := config.Load(o.cfgFile)
	if err != nil {
		return nil, err
	}
	if flags.Changed("log-level") {
		settings.Log.Level = o.logLevel
		if err := settings.Validate(); err != nil {
			return nil, err
		}
	}
	return settings, nil
}
