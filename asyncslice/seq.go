package asyncslice

import (
	"context"
	"iter"

	"go.uber.org/zap"
)

// Seq is the lazy form of Map. Each transform call happens when the consumer
// asks for the next value, in index order.
//
// The resulting sequence yields pairs of (transformed element, error).
// If transform fails, the error is yielded once with a zero R and the
// sequence ends. A nil transform yields a single *InvocationError.
func Seq[T, R any](ctx context.Context, collection []T, transform Callback[T, R], opts ...Option) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		var zero R
		if transform == nil {
			yield(zero, notFunction("Seq", "callback"))
			return
		}

		o := newOptions(opts)
		b, err := bind("Seq", collection, o)
		if err != nil {
			yield(zero, err)
			return
		}

		for i := range collection {
			v, idx, c := b.at(i)
			r, err := invoke(ctx, o.logger, "Seq", func(ctx context.Context) (R, error) {
				return transform(ctx, v, idx, c)
			}, zap.Int("index", idx))
			if err != nil {
				yield(zero, err)
				return
			}
			if !yield(r, nil) {
				return
			}
		}
	}
}
