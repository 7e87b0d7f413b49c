package broadcast_test

import (
	"context"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/broadcast"
)

func TestMemoryBroadcaster_Subscribe(t *testing.T) {
	t.Run("subscribe creates active subscriber", func(t *testing.T) {
		b := broadcast.NewMemoryBroadcaster[int](4)
		defer b.Close()

		sub := b.Subscribe(context.Background())
		require.NotNil(t, sub)
		assert.Equal(t, 1, b.Len())
	})

	t.Run("subscribe after close returns closed subscriber", func(t *testing.T) {
		b := broadcast.NewMemoryBroadcaster[int](4)
		require.NoError(t, b.Close())

		sub := b.Subscribe(context.Background())
		_, ok := <-sub.Receive(context.Background())
		assert.False(t, ok)
	})

	t.Run("context cancellation unsubscribes", func(t *testing.T) {
		b := broadcast.NewMemoryBroadcaster[int](4)
		defer b.Close()

		ctx, cancel := context.WithCancel(context.Background())
		sub := b.Subscribe(ctx)
		cancel()

		require.Eventually(t, func() bool { return b.Len() == 0 }, time.Second, 5*time.Millisecond)
		_, ok := <-sub.Receive(context.Background())
		assert.False(t, ok)
	})

	t.Run("close releases subscribers with a live context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		base := runtime.NumGoroutine()
		b := broadcast.NewMemoryBroadcaster[int](4)
		for range 50 {
			b.Subscribe(ctx)
		}
		assert.GreaterOrEqual(t, runtime.NumGoroutine(), base+50)

		require.NoError(t, b.Close())
		require.Eventually(t, func() bool { return runtime.NumGoroutine() <= base }, time.Second, 5*time.Millisecond)
	})

	t.Run("closing a subscriber releases its watcher", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		b := broadcast.NewMemoryBroadcaster[int](4)
		defer b.Close()

		base := runtime.NumGoroutine()
		sub := b.Subscribe(ctx)
		require.NoError(t, sub.Close())
		require.Eventually(t, func() bool { return runtime.NumGoroutine() <= base }, time.Second, 5*time.Millisecond)
	})
}

func TestMemoryBroadcaster_Broadcast(t *testing.T) {
	t.Run("delivers to every subscriber", func(t *testing.T) {
		b := broadcast.NewMemoryBroadcaster[int](4)
		defer b.Close()

		ctx := context.Background()
		first := b.Subscribe(ctx)
		second := b.Subscribe(ctx)

		require.NoError(t, b.Broadcast(ctx, broadcast.Message[int]{Data: 7}))

		assert.Equal(t, 7, (<-first.Receive(ctx)).Data)
		assert.Equal(t, 7, (<-second.Receive(ctx)).Data)
	})

	t.Run("full buffer keeps the newest messages", func(t *testing.T) {
		b := broadcast.NewMemoryBroadcaster[int](2)
		defer b.Close()

		ctx := context.Background()
		sub := b.Subscribe(ctx)

		for i := 1; i <= 5; i++ {
			require.NoError(t, b.Broadcast(ctx, broadcast.Message[int]{Data: i}))
		}

		assert.Equal(t, 4, (<-sub.Receive(ctx)).Data)
		assert.Equal(t, 5, (<-sub.Receive(ctx)).Data)
		assert.Equal(t, 1, b.Len(), "slow subscribers are kept")
	})

	t.Run("closed subscriber is pruned", func(t *testing.T) {
		b := broadcast.NewMemoryBroadcaster[int](2)
		defer b.Close()

		ctx := context.Background()
		sub := b.Subscribe(ctx)
		require.NoError(t, sub.Close())
		require.NoError(t, sub.Close())

		require.NoError(t, b.Broadcast(ctx, broadcast.Message[int]{Data: 1}))
		assert.Equal(t, 0, b.Len())
	})

	t.Run("broadcast after close fails", func(t *testing.T) {
		b := broadcast.NewMemoryBroadcaster[int](2)
		require.NoError(t, b.Close())
		require.NoError(t, b.Close())

		err := b.Broadcast(context.Background(), broadcast.Message[int]{Data: 1})
		assert.ErrorIs(t, err, broadcast.ErrClosed)
	})

	t.Run("concurrent broadcasts do not block", func(t *testing.T) {
		b := broadcast.NewMemoryBroadcaster[int](1)
		defer b.Close()

		ctx := context.Background()
		_ = b.Subscribe(ctx)

		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				_ = b.Broadcast(ctx, broadcast.Message[int]{Data: n})
			}(i)
		}
		wg.Wait()
	})
}
