package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map applies fn to every item using at most workers goroutines and returns
// the results in input order. The first error cancels the context passed to
// the remaining calls and is returned. workers <= 0 means one goroutine per
// item.
func Map[T any, R any](ctx context.Context, items []T, workers int, fn func(context.Context, T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	group, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		group.SetLimit(workers)
	}

	for idx, item := range items {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := fn(ctx, item)
			if err != nil {
				return err
			}
			out[idx] = result
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ForEach runs action for every item with at most workers goroutines and
// returns the first error.
func ForEach[T any](ctx context.Context, items []T, workers int, action func(context.Context, T) error) error {
	_, err := Map(ctx, items, workers, func(ctx context.Context, item T) (struct{}, error) {
		return struct{}{}, action(ctx, item)
	})
	return err
}
