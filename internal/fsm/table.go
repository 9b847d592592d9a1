package fsm

import "fmt"

// Table maps each state to the ordered set of states reachable from it.
// It defines the legal edge set of a directed graph and is static for
// the lifetime of any machine built on it. A state absent from the table
// is a sink with no outgoing edges.
type Table map[State][]State

// TableError reports a transition table that references a state missing
// from the declared state set.
type TableError struct {
	// State is the undeclared state the table referenced.
	State State
	// Context describes where the reference occurred, e.g. "initial
	// state" or `targets of "combat"`.
	Context string
}

// Error implements the error interface.
func (e *TableError) Error() string {
	return fmt.Sprintf("transition table references undeclared state %q (%s)", e.State, e.Context)
}

// Validate checks that the initial state and every from- and to-state in
// the table appear in the declared state set. The first violation found
// is returned as a *TableError.
func (t Table) Validate(states []State, initial State) error {
	declared := make(map[State]bool, len(states))
	for _, s := range states {
		declared[s] = true
	}

	if !declared[initial] {
		return &TableError{State: initial, Context: "initial state"}
	}
	for from, targets := range t {
		if !declared[from] {
			return &TableError{State: from, Context: "from-state"}
		}
		for _, to := range targets {
			if !declared[to] {
				return &TableError{State: to, Context: fmt.Sprintf("targets of %q", from)}
			}
		}
	}
	return nil
}
