package asyncslice

import "context"

// Find returns the first element for which predicate reports true.
// No element after it is visited.
func Find[T any](ctx context.Context, collection []T, predicate Callback[T, bool], opts ...Option) (T, bool, error) {
	var target T
	idx, err := findIndex(ctx, "Find", collection, predicate, opts)
	if err != nil || idx < 0 {
		return target, false, err
	}
	return collection[idx], true, nil
}

// FindIndex returns the index of the first element for which predicate reports
// true, or -1.
func FindIndex[T any](ctx context.Context, collection []T, predicate Callback[T, bool], opts ...Option) (int, error) {
	return findIndex(ctx, "FindIndex", collection, predicate, opts)
}

// Some reports whether predicate holds for at least one element.
// It is false for an empty collection.
func Some[T any](ctx context.Context, collection []T, predicate Callback[T, bool], opts ...Option) (bool, error) {
	idx, err := findIndex(ctx, "Some", collection, predicate, opts)
	if err != nil {
		return false, err
	}
	return idx >= 0, nil
}

// Every reports whether predicate holds for all elements, stopping at the first
// one that fails it. It is true for an empty collection.
func Every[T any](ctx context.Context, collection []T, predicate Callback[T, bool], opts ...Option) (bool, error) {
	if predicate == nil {
		return false, notFunction("Every", "callback")
	}
	idx, err := findIndex(ctx, "Every", collection, func(ctx context.Context, v T, i int, c []T) (bool, error) {
		ok, err := predicate(ctx, v, i, c)
		return !ok, err
	}, opts)
	if err != nil {
		return false, err
	}
	return idx < 0, nil
}

func findIndex[T any](ctx context.Context, op string, collection []T, predicate Callback[T, bool], opts []Option) (int, error) {
	if predicate == nil {
		return -1, notFunction(op, "callback")
	}

	found := -1
	err := walk(ctx, op, collection, opts, func(ctx context.Context, v T, i int, c []T) (bool, error) {
		ok, err := predicate(ctx, v, i, c)
		if err != nil {
			return false, err
		}
		if ok {
			found = i
		}
		return ok, nil
	})
	if err != nil {
		return -1, err
	}
	return found, nil
}
