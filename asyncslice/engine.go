package asyncslice

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Callback is called once per element with the element, its index and the
// collection being iterated (or the receiver set by WithReceiver).
type Callback[T, R any] func(ctx context.Context, value T, index int, collection []T) (R, error)

// Action is a Callback without a result.
type Action[T any] func(ctx context.Context, value T, index int, collection []T) error

// Lift turns a plain transform into a Callback. A nil transform gives a nil Callback.
func Lift[T, R any](transform func(T) (R, error)) Callback[T, R] {
	if transform == nil {
		return nil
	}
	return func(_ context.Context, v T, _ int, _ []T) (R, error) {
		return transform(v)
	}
}

// iterate calls cb for every element in ascending index order and collects
// the results by position. The first error aborts the loop and no results
// are returned.
func iterate[T, R any](ctx context.Context, op string, collection []T, cb Callback[T, R], opts []Option) ([]R, error) {
	if cb == nil {
		return nil, notFunction(op, "callback")
	}

	res := make([]R, len(collection))
	err := walk(ctx, op, collection, opts, func(ctx context.Context, v T, i int, c []T) (bool, error) {
		r, err := cb(ctx, v, i, c)
		if err != nil {
			return false, err
		}
		res[i] = r
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// walk is the sequential loop shared by every adapter. step returns true to
// stop early without error.
func walk[T any](
	ctx context.Context,
	op string,
	collection []T,
	opts []Option,
	step func(ctx context.Context, value T, index int, collection []T) (bool, error),
) error {
	o := newOptions(opts)
	b, err := bind(op, collection, o)
	if err != nil {
		return err
	}
	if len(collection) == 0 {
		return nil
	}

	for i := range collection {
		v, idx, c := b.at(i)
		stop, err := invoke(ctx, o.logger, op, func(ctx context.Context) (bool, error) {
			return step(ctx, v, idx, c)
		}, zap.Int("index", idx))
		if err != nil {
			return err
		}
		if stop {
			o.logger.Debug("stopped early", zap.String("op", op), zap.Int("index", idx))
			return nil
		}
	}
	return nil
}

// invoke performs a single callback call: it refuses to start once ctx is
// done and turns a panic into an error.
func invoke[R any](
	ctx context.Context,
	logger *zap.Logger,
	op string,
	call func(context.Context) (R, error),
	fields ...zap.Field,
) (res R, err error) {
	if err = ctx.Err(); err != nil {
		debug(logger, "context done before callback", op, fields, zap.Error(err))
		return res, err
	}

	defer func() {
		if p := recover(); p != nil {
			var zero R
			res, err = zero, recovered(p)
		}
		if err != nil {
			debug(logger, "callback failed", op, fields, zap.Error(err))
		}
	}()

	debug(logger, "invoking callback", op, fields)
	return call(ctx)
}

// debug writes a debug entry; fields are only assembled when the level is enabled.
func debug(logger *zap.Logger, msg, op string, fields []zap.Field, extra ...zap.Field) {
	if ce := logger.Check(zapcore.DebugLevel, msg); ce != nil {
		all := make([]zap.Field, 0, len(fields)+len(extra)+1)
		all = append(all, fields...)
		all = append(all, zap.String("op", op))
		ce.Write(append(all, extra...)...)
	}
}
