// Package fsm provides a declaratively configured finite state machine
// with a bounded transition history.
//
// A Machine is owned by exactly one component (a game session, a UI
// element). Transitions are validated against a static adjacency table;
// illegal requests leave the machine untouched and are reported only to
// the configured Observer, never to the caller. This asymmetry is
// deliberate: configuration mistakes fail loudly at construction time,
// user-driven invalid actions at runtime must not crash anything.
package fsm

import (
	"sync"
	"time"
)

// State names one state in a machine. States are opaque labels; the
// machine attaches no meaning to them beyond table membership.
type State string

// Record is one applied transition. Records are immutable once appended
// to a machine's history.
type Record struct {
	From   State
	To     State
	At     time.Time
	Reason string
}

// DefaultHistoryCapacity bounds the transition history when no explicit
// capacity is configured.
const DefaultHistoryCapacity = 10

// Machine is a runtime finite state machine instance. All methods are
// safe for concurrent use; the current state and the history mutate
// together under one lock, so a transition is never observed
// half-applied.
type Machine struct {
	mu       sync.Mutex
	table    Table
	current  State
	history  []Record
	capacity int
	observer Observer
	clock    Clock
}

// Option configures a Machine at construction time.
type Option func(*Machine)

// WithHistoryCapacity bounds the retained transition records. Values
// below 1 are ignored and the default of 10 applies.
func WithHistoryCapacity(n int) Option {
	return func(m *Machine) {
		if n >= 1 {
			m.capacity = n
		}
	}
}

// WithObserver attaches an observer for transition diagnostics. The
// default is a no-op, so the machine has no ambient logging dependency.
func WithObserver(o Observer) Option {
	return func(m *Machine) {
		if o != nil {
			m.observer = o
		}
	}
}

// WithClock overrides the wall clock used for record timestamps. Tests
// use ManualClock for deterministic histories.
func WithClock(c Clock) Option {
	return func(m *Machine) {
		if c != nil {
			m.clock = c
		}
	}
}

// New creates a machine in the given initial state. The table is not
// validated; use NewValidated when the state set is known up front.
func New(initial State, table Table, opts ...Option) *Machine {
	m := &Machine{
		table:    table,
		current:  initial,
		capacity: DefaultHistoryCapacity,
		observer: NoopObserver{},
		clock:    realClock{},
	}
	for _, opt := range opts {
		opt(m)
	}
	m.history = make([]Record, 0, m.capacity)
	return m
}

// NewValidated creates a machine after checking the table against the
// declared state set. A table referencing an undeclared state is a
// configuration bug; construction aborts with a *TableError rather than
// producing a machine that could silently misbehave later.
func NewValidated(states []State, initial State, table Table, opts ...Option) (*Machine, error) {
	if err := table.Validate(states, initial); err != nil {
		return nil, err
	}
	return New(initial, table, opts...), nil
}

// Current returns the current state.
func (m *Machine) Current() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// CanTransition reports whether an edge exists from the current state to
// target. It is a pure predicate with no side effects.
func (m *Machine) CanTransition(target State) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return containsState(m.table[m.current], target)
}

// Transition requests a move to target. If the table allows the edge,
// the current state changes, a record is appended, the history is
// truncated to capacity, and true is returned. Otherwise nothing
// changes, the observer receives a rejection diagnostic naming the legal
// alternatives, and false is returned. Rejections never raise an error.
func (m *Machine) Transition(target State, reason string) bool {
	m.mu.Lock()
	allowed := m.table[m.current]
	if !containsState(allowed, target) {
		ev := Event{
			From:    m.current,
			To:      target,
			Reason:  reason,
			At:      m.clock.Now(),
			Allowed: append([]State(nil), allowed...),
		}
		obs := m.observer
		m.mu.Unlock()
		obs.TransitionRejected(ev)
		return false
	}

	rec := Record{From: m.current, To: target, At: m.clock.Now(), Reason: reason}
	m.current = target
	m.history = append(m.history, rec)
	if len(m.history) > m.capacity {
		// Keep-last-N truncation, unconditional after every append.
		copy(m.history, m.history[len(m.history)-m.capacity:])
		m.history = m.history[:m.capacity]
	}
	obs := m.observer
	m.mu.Unlock()

	obs.StateChanged(Event{From: rec.From, To: rec.To, Reason: reason, At: rec.At})
	return true
}

// History returns a copy of the retained transition records, oldest
// first.
func (m *Machine) History() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Record(nil), m.history...)
}

// HistoryCapacity returns the configured history bound.
func (m *Machine) HistoryCapacity() int {
	return m.capacity
}

// AllowedTargets returns a copy of the states reachable from the current
// state, in table order.
func (m *Machine) AllowedTargets() []State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]State(nil), m.table[m.current]...)
}

func containsState(states []State, s State) bool {
	for _, candidate := range states {
		if candidate == s {
			return true
		}
	}
	return false
}
