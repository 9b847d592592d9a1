package session

import (
	"sort"
	"sync"
)

// LoadTracker counts named in-flight operations so the UI can show a
// single loading indicator while any of them are pending. Narration
// resolves on a goroutine, so the tracker is safe for concurrent use.
type LoadTracker struct {
	mu      sync.Mutex
	pending map[string]int
}

// NewLoadTracker creates an empty tracker.
func NewLoadTracker() *LoadTracker {
	return &LoadTracker{pending: make(map[string]int)}
}

// Begin marks one operation with the given name as in flight. The same
// name may be begun multiple times; it stays pending until matched by
// as many End calls.
func (t *LoadTracker) Begin(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending[name]++
}

// End marks one operation with the given name as finished. Ending a
// name that was never begun is a no-op.
func (t *LoadTracker) End(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.pending[name] <= 1 {
		delete(t.pending, name)
		return
	}
	t.pending[name]--
}

// Loading reports whether any operation is in flight.
func (t *LoadTracker) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending) > 0
}

// Count returns the total number of in-flight operations.
func (t *LoadTracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	total := 0
	for _, n := range t.pending {
		total += n
	}
	return total
}

// Pending returns the sorted names of in-flight operations.
func (t *LoadTracker) Pending() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	names := make([]string, 0, len(t.pending))
	for name := range t.pending {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
