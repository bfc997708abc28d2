package asyncslice

import "context"

// Reducer folds one element into the accumulator.
type Reducer[T, R any] func(ctx context.Context, acc R, value T, index int, collection []T) (R, error)

// Map returns a new slice holding transform's result for each element, in input order.
// An empty collection yields an empty, non-nil slice without calling transform.
func Map[T, R any](ctx context.Context, collection []T, transform Callback[T, R], opts ...Option) ([]R, error) {
	return iterate(ctx, "Map", collection, transform, opts)
}

// ForEach calls action for each element in order and returns the first error.
func ForEach[T any](ctx context.Context, collection []T, action Action[T], opts ...Option) error {
	if action == nil {
		return notFunction("ForEach", "callback")
	}
	return walk(ctx, "ForEach", collection, opts, func(ctx context.Context, v T, i int, c []T) (bool, error) {
		return false, action(ctx, v, i, c)
	})
}

// Filter returns a new slice with the elements for which predicate reported true,
// keeping their relative order.
func Filter[T any](ctx context.Context, collection []T, predicate Callback[T, bool], opts ...Option) ([]T, error) {
	keep, err := iterate(ctx, "Filter", collection, predicate, opts)
	if err != nil {
		return nil, err
	}

	// Heuristic pre-allocation of capacity
	res := make([]T, 0, len(collection)/2)
	for i, ok := range keep {
		if ok {
			res = append(res, collection[i])
		}
	}
	return res, nil
}

// Reduce folds the collection from left to right, starting from initial.
// On error the zero value of R is returned.
func Reduce[T, R any](ctx context.Context, collection []T, reducer Reducer[T, R], initial R, opts ...Option) (R, error) {
	var zero R
	if reducer == nil {
		return zero, notFunction("Reduce", "callback")
	}

	acc := initial
	err := walk(ctx, "Reduce", collection, opts, func(ctx context.Context, v T, i int, c []T) (bool, error) {
		next, err := reducer(ctx, acc, v, i, c)
		if err != nil {
			return false, err
		}
		acc = next
		return false, nil
	})
	if err != nil {
		return zero, err
	}
	return acc, nil
}
