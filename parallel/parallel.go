// Package parallel runs independent trials on a fixed-size worker pool and
// folds their results with a commutative reduction.
//
// The trials must not share mutable state: each one either works on its own
// copy of the data or only reads a shared immutable base. Because the fold
// is a plain sum, the result never depends on completion order.
//
// Complexity: O(N/W) wall time for N items on W workers, plus O(W) for the
// final fold.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
)

// Number is any integer type a reduction may accumulate into.
type Number interface {
	constraints.Integer
}

// Workers normalizes a requested pool size: n <= 0 means one worker per
// available CPU, and the pool never exceeds the number of items.
func Workers(n, items int) int {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > items {
		n = items
	}
	if n < 1 {
		n = 1
	}
	return n
}

// Sum applies fn to every item on a pool of workers and adds the results.
//
// Items are handed out in contiguous strides so each worker keeps a single
// partial sum; partials are combined after all workers finish. The first
// error returned by fn cancels the context passed to the remaining calls and
// is returned from Sum. A cancelled parent context surfaces as ctx.Err().
func Sum[T any, N Number](ctx context.Context, items []T, workers int, fn func(context.Context, T) (N, error)) (N, error) {
	var total N
	if len(items) == 0 {
		return total, ctx.Err()
	}

	w := Workers(workers, len(items))
	partial := make([]N, w)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w)
	for i := 0; i < w; i++ {
		g.Go(func() error {
			var acc N
			for j := i; j < len(items); j += w {
				if err := gctx.Err(); err != nil {
					return err
				}
				v, err := fn(gctx, items[j])
				if err != nil {
					return err
				}
				acc += v
			}
			partial[i] = acc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return total, err
	}
	for _, v := range partial {
		total += v
	}
	return total, nil
}

// Count reports how many items satisfy pred.
func Count[T any](ctx context.Context, items []T, workers int, pred func(context.Context, T) (bool, error)) (int, error) {
	return Sum(ctx, items, workers, func(ctx context.Context, item T) (int, error) {
		ok, err := pred(ctx, item)
		if err != nil || !ok {
			return 0, err
		}
		return 1, nil
	})
}
