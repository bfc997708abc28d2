package asyncslice_test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

type call struct {
	value      int
	index      int
	collection []int
}

// recorder hands out callbacks that remember every invocation.
type recorder struct {
	mu       sync.Mutex
	calls    []call
	inFlight atomic.Int32
	maxSeen  atomic.Int32
}

func (r *recorder) record(v, i int, c []int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call{value: v, index: i, collection: c})
}

func (r *recorder) indices() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]int, len(r.calls))
	for i, c := range r.calls {
		res[i] = c.index
	}
	return res
}

// identity returns each value unchanged.
func (r *recorder) identity(_ context.Context, v, i int, c []int) (int, error) {
	r.record(v, i, c)
	return v, nil
}

// async returns v after delay, doing the wait on another goroutine.
func (r *recorder) async(delay time.Duration) func(context.Context, int, int, []int) (int, error) {
	return func(ctx context.Context, v, i int, c []int) (int, error) {
		n := r.inFlight.Add(1)
		defer r.inFlight.Add(-1)
		for {
			seen := r.maxSeen.Load()
			if n <= seen || r.maxSeen.CompareAndSwap(seen, n) {
				break
			}
		}
		r.record(v, i, c)

		done := make(chan int, 1)
		go func() {
			time.Sleep(delay)
			done <- v
		}()
		select {
		case out := <-done:
			return out, nil
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
}

func sequence(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i * 10
	}
	return s
}

func ascending(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}
