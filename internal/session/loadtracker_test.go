package session

import (
	"sync"
	"testing"
)

func TestLoadTrackerBeginEnd(t *testing.T) {
	lt := NewLoadTracker()

	if lt.Loading() {
		t.Error("empty tracker reports loading")
	}

	lt.Begin("narrate")
	if !lt.Loading() {
		t.Error("Loading() = false after Begin")
	}
	if got := lt.Count(); got != 1 {
		t.Errorf("Count() = %d, want 1", got)
	}

	lt.End("narrate")
	if lt.Loading() {
		t.Error("Loading() = true after matching End")
	}
}

func TestLoadTrackerNestedSameName(t *testing.T) {
	lt := NewLoadTracker()
	lt.Begin("narrate")
	lt.Begin("narrate")
	lt.End("narrate")

	if !lt.Loading() {
		t.Error("Loading() = false while one begin is still unmatched")
	}
	lt.End("narrate")
	if lt.Loading() {
		t.Error("Loading() = true after all ends")
	}
}

func TestLoadTrackerEndWithoutBegin(t *testing.T) {
	lt := NewLoadTracker()
	lt.End("never-started")
	if lt.Loading() || lt.Count() != 0 {
		t.Error("End without Begin changed tracker state")
	}
}

func TestLoadTrackerPendingSorted(t *testing.T) {
	lt := NewLoadTracker()
	lt.Begin("narrate")
	lt.Begin("autosave")

	got := lt.Pending()
	want := []string{"autosave", "narrate"}
	if len(got) != len(want) {
		t.Fatalf("Pending() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Pending()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLoadTrackerConcurrent(t *testing.T) {
	lt := NewLoadTracker()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				lt.Begin("narrate")
				lt.End("narrate")
			}
		}()
	}
	wg.Wait()

	if lt.Loading() {
		t.Errorf("Loading() = true after balanced begin/end, Count() = %d", lt.Count())
	}
}
