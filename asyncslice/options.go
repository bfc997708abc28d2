package asyncslice

import "go.uber.org/zap"

type options struct {
	logger   *zap.Logger
	receiver any
}

// Option configures a single operation call.
type Option func(*options)

// WithLogger sets the logger used to trace callback invocations at debug level.
// A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithReceiver makes receiver the collection argument of every callback call,
// in place of the slice being iterated. A nil receiver leaves the default.
// The receiver must have the same element type as the iterated slice.
func WithReceiver[T any](receiver []T) Option {
	return func(o *options) {
		if receiver == nil {
			o.receiver = nil
			return
		}
		o.receiver = receiver
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
