package sim

import (
	"context"
	"errors"

	"github.com/zeusync/flightrig/internal/config"
	"github.com/zeusync/flightrig/internal/core/observability/log"
	"github.com/zeusync/flightrig/pkg/concurrent"
)

// RunBatch flies every script in its own world, at most workers at a time,
// and returns the final telemetry in script order. Worlds share nothing but
// the read-only settings. Cancelling ctx stops every world where it is and is
// not an error: the telemetry shows how far each one got, as with a single
// World.Run.
func RunBatch(ctx context.Context, settings *config.Settings, scripts []*Script, workers int, logger log.Log) ([]Telemetry, error) {
	if logger == nil {
		logger = log.NewNop()
	}

	worlds := make([]*World, 0, len(scripts))
	defer func() {
		for _, w := range worlds {
			_ = w.Close()
		}
	}()
	for _, script := range scripts {
		w, err := New(settings, script, logger)
		if err != nil {
			return nil, err
		}
		worlds = append(worlds, w)
	}

	err := concurrent.ForEach(ctx, worlds, workers, func(ctx context.Context, w *World) error {
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	if err != nil && !(errors.Is(err, context.Canceled) && ctx.Err() != nil) {
		return nil, err
	}

	out := make([]Telemetry, len(worlds))
	for i, w := range worlds {
		out[i] = w.Snapshot()
	}
	return out, nil
}
