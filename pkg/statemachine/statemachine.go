package statemachine

import (
	"context"
	"sync"
)

// State names a machine state.
type State string

// Event names something that can move the machine to another state.
type Event string

// Guard decides at fire time whether a transition may proceed.
type Guard func(ctx context.Context, from State, event Event, data any) bool

// Transition moves a machine from From to To when Event fires and every guard passes.
type Transition struct {
	From   State
	To     State
	Event  Event
	Guards []Guard
}

// Table is an immutable set of transitions.
type Table struct {
	transitions map[State]map[Event][]Transition
}

// NewTable validates and indexes transitions.
func NewTable(transitions ...Transition) (*Table, error) {
	t := &Table{transitions: make(map[State]map[Event][]Transition)}
	for _, tr := range transitions {
		if tr.From == "" || tr.To == "" || tr.Event == "" {
			return nil, ErrInvalidTransition
		}
		if _, ok := t.transitions[tr.From]; !ok {
			t.transitions[tr.From] = make(map[Event][]Transition)
		}
		t.transitions[tr.From][tr.Event] = append(t.transitions[tr.From][tr.Event], tr)
	}
	return t, nil
}

// MustTable is NewTable that panics on an invalid definition.
func MustTable(transitions ...Transition) *Table {
	t, err := NewTable(transitions...)
	if err != nil {
		panic(err)
	}
	return t
}

// New creates a machine in the initial state.
func (t *Table) New(initial State) *Machine {
	return &Machine{table: t, initial: initial, current: initial}
}

func (t *Table) find(ctx context.Context, from State, event Event, data any) (*Transition, error) {
	candidates := t.transitions[from][event]
	if len(candidates) == 0 {
		return nil, &ErrNoTransitionAvailable{State: from, Event: event}
	}

	for i, tr := range candidates {
		if guardsPass(ctx, tr.Guards, from, event, data) {
			return &candidates[i], nil
		}
	}
	return nil, &ErrTransitionRejected{State: from, Event: event}
}

func guardsPass(ctx context.Context, guards []Guard, from State, event Event, data any) bool {
	for _, g := range guards {
		if g != nil && !g(ctx, from, event, data) {
			return false
		}
	}
	return true
}

// Machine is a table-driven state machine. It is safe for concurrent use.
type Machine struct {
	table   *Table
	initial State
	current State
	mu      sync.RWMutex
}

func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Is reports whether the machine is in state s.
func (m *Machine) Is(s State) bool {
	return m.Current() == s
}

// Fire applies event and returns the new state.
func (m *Machine) Fire(ctx context.Context, event Event, data any) (State, error) {
	if event == "" {
		return "", ErrInvalidEvent
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	tr, err := m.table.find(ctx, m.current, event, data)
	if err != nil {
		return m.current, err
	}
	m.current = tr.To
	return m.current, nil
}

// CanFire reports whether Fire would succeed without changing state.
func (m *Machine) CanFire(ctx context.Context, event Event, data any) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, err := m.table.find(ctx, m.current, event, data)
	return err == nil
}

// Reset returns the machine to its initial state.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}
