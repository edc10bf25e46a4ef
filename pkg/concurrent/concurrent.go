// Package concurrent provides bounded fan-out helpers over slices.
package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Concurrent runs action for each element of items with at most workers
// goroutines in flight. The first error cancels ctx for the remaining
// actions and is returned once every started action has finished.
// A workers value below one means no limit.
func Concurrent[T any](ctx context.Context, items []T, workers int, action func(context.Context, int, T) error) error {
	errGroup, groupCtx := errgroup.WithContext(ctx)
	if workers > 0 {
		errGroup.SetLimit(workers)
	}

	for idx, value := range items {
		if groupCtx.Err() != nil {
			break
		}
		errGroup.Go(func() error {
			return action(groupCtx, idx, value)
		})
	}

	if err := errGroup.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// ParallelMap applies mapFn to each element of items in parallel, preserving order.
// On error the partially filled slice is discarded.
func ParallelMap[T any, R any](ctx context.Context, items []T, workers int, mapFn func(context.Context, T) (R, error)) ([]R, error) {
	out := make([]R, len(items))
	err := Concurrent(ctx, items, workers, func(ctx context.Context, idx int, value T) error {
		r, err := mapFn(ctx, value)
		if err != nil {
			return err
		}
		out[idx] = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
