package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/zeusync/flightrig/internal/config"
	"github.com/zeusync/flightrig/internal/injector"
	"github.com/zeusync/flightrig/internal/sim"
)

type batchResult struct {
	Script    string        `yaml:"script"`
	Telemetry sim.Telemetry `yaml:"telemetry"`
}

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	var (
		scriptFiles []string
		parallel    int
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "replays input scripts and prints the final telemetry",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := opts.loadSettings(cmd.Flags())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if len(scriptFiles) > 1 {
				return simulateBatch(ctx, cmd, settings, scriptFiles, parallel)
			}

			script := sim.DefaultScript()
			if len(scriptFiles) == 1 {
				if script, err = sim.LoadScriptFile(scriptFiles[0]); err != nil {
					return err
				}
			}

			world, err := injector.InitializeWorld(settings, script)
			if err != nil {
				return err
			}
			defer world.Close()

			runErr := world.Run(ctx)
			if err := printYAML(cmd, world.Snapshot()); err != nil {
				return err
			}
			if errors.Is(runErr, context.Canceled) {
				return nil
			}
			return runErr
		},
	}

	cmd.Flags().StringSliceVarP(&scriptFiles, "script", "s", nil,
		"input script (YAML), repeatable; a twenty second full-throttle run when empty")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 0,
		"worlds flown at the same time when several scripts are given (0 = all)")

	return cmd
}

func simulateBatch(ctx context.Context, cmd *cobra.Command, settings *config.Settings, files []string, parallel int) error {
	scripts := make([]*sim.Script, 0, len(files))
	for _, file := range files {
		script, err := sim.LoadScriptFile(file)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		scripts = append(scripts, script)
	}

	logger, err := injector.ProvideLogger(settings)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	results, err := sim.RunBatch(ctx, settings, scripts, parallel, logger)
	if err != nil {
		return err
	}
	out := make([]batchResult, len(results))
	for i, t := range results {
		out[i] = batchResult{Script: files[i], Telemetry: t}
	}
	return printYAML(cmd, out)
}

func printYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("print: %w", err)
	}
	return enc.Close()
}
