package fsm

// Toggle is a two-state machine where each state transitions only to the
// other. It is a thin specialization of Machine; the generic operations
// remain available.
type Toggle struct {
	*Machine
	off State
	on  State
}

// NewToggle creates a toggle starting in the off state.
func NewToggle(off, on State, opts ...Option) *Toggle {
	table := Table{
		off: {on},
		on:  {off},
	}
	return &Toggle{
		Machine: New(off, table, opts...),
		off:     off,
		on:      on,
	}
}

// Toggle moves to the opposite of the current state and returns the new
// state.
func (t *Toggle) Toggle(reason string) State {
	next := t.on
	if t.Current() == t.on {
		next = t.off
	}
	t.Transition(next, reason)
	return t.Current()
}

// On reports whether the toggle is currently in its on state.
func (t *Toggle) On() bool {
	return t.Current() == t.on
}
