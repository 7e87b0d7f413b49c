package statemachine_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/statemachine"
)

const (
	idle    statemachine.State = "idle"
	pending statemachine.State = "pending"
	done    statemachine.State = "done"

	request  statemachine.Event = "request"
	complete statemachine.Event = "complete"
)

func newTable(t *testing.T, guards ...statemachine.Guard) *statemachine.Table {
	t.Helper()
	table, err := statemachine.NewTable(
		statemachine.Transition{From: idle, To: pending, Event: request, Guards: guards},
		statemachine.Transition{From: pending, To: done, Event: complete},
	)
	require.NoError(t, err)
	return table
}

func TestNewTable(t *testing.T) {
	t.Parallel()

	t.Run("rejects incomplete transitions", func(t *testing.T) {
		_, err := statemachine.NewTable(statemachine.Transition{From: idle, Event: request})
		assert.ErrorIs(t, err, statemachine.ErrInvalidTransition)
	})

	t.Run("must table panics on invalid definition", func(t *testing.T) {
		assert.Panics(t, func() { statemachine.MustTable(statemachine.Transition{}) })
	})
}

func TestMachine_Fire(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("follows declared transitions", func(t *testing.T) {
		m := newTable(t).New(idle)
		assert.Equal(t, idle, m.Current())

		state, err := m.Fire(ctx, request, nil)
		require.NoError(t, err)
		assert.Equal(t, pending, state)

		state, err = m.Fire(ctx, complete, nil)
		require.NoError(t, err)
		assert.Equal(t, done, state)
		assert.True(t, m.Is(done))
	})

	t.Run("unknown transition keeps state", func(t *testing.T) {
		m := newTable(t).New(idle)

		state, err := m.Fire(ctx, complete, nil)
		require.Error(t, err)
		assert.True(t, statemachine.IsNoTransitionAvailableError(err))
		assert.Equal(t, idle, state)
	})

	t.Run("empty event", func(t *testing.T) {
		m := newTable(t).New(idle)
		_, err := m.Fire(ctx, "", nil)
		assert.ErrorIs(t, err, statemachine.ErrInvalidEvent)
	})

	t.Run("guard rejects", func(t *testing.T) {
		deny := func(context.Context, statemachine.State, statemachine.Event, any) bool { return false }
		m := newTable(t, deny).New(idle)

		_, err := m.Fire(ctx, request, nil)
		assert.True(t, statemachine.IsTransitionRejectedError(err))
		assert.False(t, m.CanFire(ctx, request, nil))
		assert.Equal(t, idle, m.Current())
	})

	t.Run("guard sees fire data", func(t *testing.T) {
		onlyPositive := func(_ context.Context, _ statemachine.State, _ statemachine.Event, data any) bool {
			n, ok := data.(int)
			return ok && n > 0
		}
		m := newTable(t, onlyPositive).New(idle)

		assert.False(t, m.CanFire(ctx, request, -1))
		assert.True(t, m.CanFire(ctx, request, 1))
	})
}

func TestMachine_SharedTable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	table := newTable(t)
	a := table.New(idle)
	b := table.New(idle)

	_, err := a.Fire(ctx, request, nil)
	require.NoError(t, err)

	assert.Equal(t, pending, a.Current())
	assert.Equal(t, idle, b.Current())

	a.Reset()
	assert.Equal(t, idle, a.Current())
}

func TestMachine_Concurrent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m := newTable(t).New(idle)

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := m.Fire(ctx, request, nil); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, pending, m.Current())
}
