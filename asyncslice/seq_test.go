package asyncslice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sykander/Iterable-Async-Methods/asyncslice"
)

func TestSeq_YieldsInOrder(t *testing.T) {
	rec := &recorder{}
	var got []int

	for v, err := range asyncslice.Seq(context.Background(), sequence(4), rec.identity) {
		require.NoError(t, err)
		got = append(got, v)
	}

	assert.Equal(t, sequence(4), got)
	assert.Equal(t, ascending(4), rec.indices())
}

func TestSeq_Lazy(t *testing.T) {
	rec := &recorder{}

	for v, err := range asyncslice.Seq(context.Background(), sequence(10), rec.identity) {
		require.NoError(t, err)
		if v == 20 {
			break
		}
	}

	assert.Equal(t, []int{0, 1, 2}, rec.indices(), "no call after the consumer stops")
}

func TestSeq_ErrorEndsSequence(t *testing.T) {
	expectedErr := errors.New("broken")
	var values []int
	var errs []error

	seq := asyncslice.Seq(context.Background(), sequence(5), func(_ context.Context, v, i int, _ []int) (int, error) {
		if i == 2 {
			return 0, expectedErr
		}
		return v, nil
	})
	for v, err := range seq {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		values = append(values, v)
	}

	assert.Equal(t, []int{0, 10}, values)
	require.Len(t, errs, 1)
	assert.Same(t, expectedErr, errs[0])
}

func TestSeq_NilTransform(t *testing.T) {
	count := 0
	for _, err := range asyncslice.Seq[int, int](context.Background(), sequence(3), nil) {
		count++
		assert.ErrorIs(t, err, asyncslice.ErrNotFunction)
	}
	assert.Equal(t, 1, count)
}

func TestSeq_Receiver(t *testing.T) {
	receiver := []int{1}
	for _, err := range asyncslice.Seq(context.Background(), sequence(2), func(_ context.Context, v, _ int, c []int) (int, error) {
		assert.Same(t, &receiver[0], &c[0])
		return v, nil
	}, asyncslice.WithReceiver(receiver)) {
		require.NoError(t, err)
	}
}
