package fsm

import (
	"log/slog"
	"time"
)

// Event carries the metadata of one transition attempt. For rejected
// attempts, Allowed lists the states that were legal from the current
// state at the time of the request.
type Event struct {
	From    State
	To      State
	Reason  string
	At      time.Time
	Allowed []State
}

// Observer receives transition diagnostics from a Machine.
//
// Implementations must not affect machine behavior: they are called
// after the machine has already applied (or rejected) the transition,
// outside the machine's lock.
type Observer interface {
	// StateChanged is invoked after a transition was applied.
	StateChanged(ev Event)
	// TransitionRejected is invoked when a requested transition was not
	// in the table. The machine state did not change.
	TransitionRejected(ev Event)
}

// NoopObserver discards all events. It is the default observer, so a
// bare machine has no ambient logging dependency.
type NoopObserver struct{}

func (NoopObserver) StateChanged(Event)       {}
func (NoopObserver) TransitionRejected(Event) {}

// SlogObserver logs transitions with a structured logger. Applied
// transitions log at debug level; rejections also log at debug level
// since they are developer diagnostics, not user-visible failures.
type SlogObserver struct {
	logger *slog.Logger
}

// NewSlogObserver creates an observer backed by the given logger. Pass
// slog.Default() for the process-wide logger.
func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	return &SlogObserver{logger: logger}
}

// StateChanged logs the applied transition.
func (o *SlogObserver) StateChanged(ev Event) {
	o.logger.Debug("state changed",
		"from", string(ev.From),
		"to", string(ev.To),
		"reason", ev.Reason,
	)
}

// TransitionRejected logs the rejected request and the legal
// alternatives that were available.
func (o *SlogObserver) TransitionRejected(ev Event) {
	o.logger.Debug("transition rejected",
		"from", string(ev.From),
		"to", string(ev.To),
		"reason", ev.Reason,
		"allowed", statesToStrings(ev.Allowed),
	)
}

// MultiObserver fans events out to several observers in order. Nil
// observers are filtered out at construction.
type MultiObserver struct {
	observers []Observer
}

// NewMultiObserver creates an observer broadcasting to all provided
// observers.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	filtered := make([]Observer, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			filtered = append(filtered, o)
		}
	}
	return &MultiObserver{observers: filtered}
}

// StateChanged forwards the event to every wrapped observer.
func (m *MultiObserver) StateChanged(ev Event) {
	for _, o := range m.observers {
		o.StateChanged(ev)
	}
}

// TransitionRejected forwards the event to every wrapped observer.
func (m *MultiObserver) TransitionRejected(ev Event) {
	for _, o := range m.observers {
		o.TransitionRejected(ev)
	}
}

func statesToStrings(states []State) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = string(s)
	}
	return out
}
