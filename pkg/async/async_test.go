package async_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/async"
)

func TestAsync(t *testing.T) {
	t.Parallel()

	t.Run("returns the result", func(t *testing.T) {
		f := async.Async(context.Background(), 42, func(_ context.Context, n int) (string, error) {
			return fmt.Sprintf("Number: %d", n), nil
		})

		res, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, "Number: 42", res)
		assert.True(t, f.IsComplete())
	})

	t.Run("propagates errors", func(t *testing.T) {
		expected := errors.New("boom")
		f := async.Async(context.Background(), 1, func(context.Context, int) (int, error) {
			return 0, expected
		})

		_, err := f.Await()
		assert.ErrorIs(t, err, expected)
	})

	t.Run("pre-cancelled context skips the call", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var called atomic.Bool
		f := async.Async(ctx, 1, func(context.Context, int) (int, error) {
			called.Store(true)
			return 1, nil
		})

		_, err := f.Await()
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called.Load())
	})
}

func TestDelay(t *testing.T) {
	t.Parallel()

	t.Run("runs after the delay", func(t *testing.T) {
		start := time.Now()
		f := async.Delay(context.Background(), 20*time.Millisecond, "x", func(_ context.Context, s string) (string, error) {
			return s + "y", nil
		})

		res, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, "xy", res)
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("cancel before the delay elapses prevents the call", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		var called atomic.Bool
		f := async.Delay(ctx, time.Hour, 0, func(context.Context, int) (int, error) {
			called.Store(true)
			return 0, nil
		})
		cancel()

		_, err := f.AwaitWithTimeout(time.Second)
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called.Load())
	})
}

func TestAwaitWithTimeout(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f := async.Delay(ctx, time.Hour, 0, func(context.Context, int) (int, error) { return 1, nil })

	_, err := f.AwaitWithTimeout(10 * time.Millisecond)
	assert.ErrorIs(t, err, async.ErrTimeout)
	assert.False(t, f.IsComplete())
}

func TestWaitAll(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	expected := errors.New("second failed")

	futures := []*async.Future[int]{
		async.Async(ctx, 1, func(_ context.Context, n int) (int, error) { return n, nil }),
		async.Async(ctx, 2, func(context.Context, int) (int, error) { return 0, expected }),
		async.Async(ctx, 3, func(_ context.Context, n int) (int, error) { return n, nil }),
	}

	results, err := async.WaitAll(futures...)
	assert.ErrorIs(t, err, expected)
	assert.Equal(t, []int{1, 0, 3}, results)

	for _, f := range futures {
		assert.True(t, f.IsComplete())
	}

	empty, err := async.WaitAll[int]()
	require.NoError(t, err)
	assert.Empty(t, empty)
}
