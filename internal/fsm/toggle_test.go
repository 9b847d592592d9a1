package fsm

import "testing"

func TestToggleAlternates(t *testing.T) {
	tog := NewToggle("off", "on")

	if got := tog.Current(); got != "off" {
		t.Fatalf("initial state = %q, want off", got)
	}
	if got := tog.Toggle(""); got != "on" {
		t.Errorf("Toggle() from off = %q, want on", got)
	}
	if got := tog.Toggle(""); got != "off" {
		t.Errorf("Toggle() from on = %q, want off", got)
	}
}

func TestToggleEvenCountReturnsToStart(t *testing.T) {
	tog := NewToggle("off", "on")
	for i := 0; i < 6; i++ {
		tog.Toggle("flip")
	}
	if got := tog.Current(); got != "off" {
		t.Errorf("after 6 toggles state = %q, want off", got)
	}
	if tog.On() {
		t.Error("On() = true after an even number of toggles")
	}
}

func TestToggleRecordsHistory(t *testing.T) {
	tog := NewToggle("closed", "open", WithHistoryCapacity(2))
	tog.Toggle("first")
	tog.Toggle("second")
	tog.Toggle("third")

	history := tog.History()
	if len(history) != 2 {
		t.Fatalf("History() length = %d, want 2", len(history))
	}
	if history[0].Reason != "second" || history[1].Reason != "third" {
		t.Errorf("history reasons = %q, %q, want second, third", history[0].Reason, history[1].Reason)
	}
	if history[1].From != "closed" || history[1].To != "open" {
		t.Errorf("history[1] = %+v, want closed->open", history[1])
	}
}
