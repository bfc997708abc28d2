package asyncslice

import (
	"context"

	"go.uber.org/zap"
)

// Comparator orders a before b when it returns a negative number, after b
// when positive, and treats them as equivalent on zero.
type Comparator[T any] func(ctx context.Context, a, b T) (int, error)

// SortFunc adapts a synchronous comparison such as strings.Compare or cmp.Compare.
func SortFunc[T any](cmp func(a, b T) int) Comparator[T] {
	if cmp == nil {
		return nil
	}
	return func(_ context.Context, a, b T) (int, error) {
		return cmp(a, b), nil
	}
}

// Sort orders collection in place with a stable merge sort and returns it.
//
// Comparisons are awaited one at a time; a sort of n elements makes at most
// n*ceil(log2(n)) of them and none when n < 2. The order is computed on a
// permutation of indices first and written to collection in one final step,
// so a failing comparator leaves collection untouched.
//
// If compare is not a consistent ordering the result is some permutation of
// the input, in no particular order.
//
// A comparator never sees the collection, so WithReceiver has no effect on
// Sort beyond the element type check shared with the other operations.
func Sort[T any](ctx context.Context, collection []T, compare Comparator[T], opts ...Option) ([]T, error) {
	if compare == nil {
		return nil, notFunction("Sort", "comparator")
	}
	o := newOptions(opts)
	if _, err := bind("Sort", collection, o); err != nil {
		return nil, err
	}
	n := len(collection)
	if n < 2 {
		return collection, nil
	}

	s := &sorter[T]{
		ctx:     ctx,
		items:   collection,
		compare: compare,
		logger:  o.logger,
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	if err := s.sort(perm, make([]int, n)); err != nil {
		return nil, err
	}

	sorted := make([]T, n)
	for i, p := range perm {
		sorted[i] = collection[p]
	}
	copy(collection, sorted)

	s.logger.Debug("sorted", zap.Int("len", n), zap.Int("comparisons", s.calls))
	return collection, nil
}

type sorter[T any] struct {
	ctx     context.Context
	items   []T
	compare Comparator[T]
	logger  *zap.Logger
	calls   int
}

// sort orders idx by the items they point at, using buf (len(buf) == len(idx))
// as scratch space.
func (s *sorter[T]) sort(idx, buf []int) error {
	if len(idx) < 2 {
		return nil
	}
	mid := len(idx) / 2
	if err := s.sort(idx[:mid], buf[:mid]); err != nil {
		return err
	}
	if err := s.sort(idx[mid:], buf[mid:]); err != nil {
		return err
	}
	return s.merge(idx, mid, buf)
}

func (s *sorter[T]) merge(idx []int, mid int, buf []int) error {
	copy(buf, idx)
	left, right := buf[:mid], buf[mid:]

	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		c, err := s.cmp(left[i], right[j])
		if err != nil {
			return err
		}
		// ties keep the left element first
		if c > 0 {
			idx[k] = right[j]
			j++
		} else {
			idx[k] = left[i]
			i++
		}
		k++
	}
	k += copy(idx[k:], left[i:])
	copy(idx[k:], right[j:])
	return nil
}

func (s *sorter[T]) cmp(a, b int) (int, error) {
	s.calls++
	return invoke(s.ctx, s.logger, "Sort", func(ctx context.Context) (int, error) {
		return s.compare(ctx, s.items[a], s.items[b])
	}, zap.Int("left", a), zap.Int("right", b))
}
