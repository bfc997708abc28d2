package asyncslice

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ParallelMap is Map with every transform call started at once, each on its
// own goroutine. Results keep the input order.
//
// The first error to occur cancels the context handed to the remaining calls
// and is returned unchanged; calls that have not started yet are skipped.
// transform must be safe for concurrent use.
func ParallelMap[T, R any](ctx context.Context, collection []T, transform Callback[T, R], opts ...Option) ([]R, error) {
	if transform == nil {
		return nil, notFunction("ParallelMap", "callback")
	}

	o := newOptions(opts)
	b, err := bind("ParallelMap", collection, o)
	if err != nil {
		return nil, err
	}

	res := make([]R, len(collection))
	if len(collection) == 0 {
		return res, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := range collection {
		v, idx, c := b.at(i)
		g.Go(func() error {
			r, err := invoke(gctx, o.logger, "ParallelMap", func(ctx context.Context) (R, error) {
				return transform(ctx, v, idx, c)
			}, zap.Int("index", idx))
			if err != nil {
				return err
			}
			res[idx] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
