package session

import (
	"testing"

	"github.com/samdwyer/dungeonmind/internal/fsm"
)

func TestNewSessionStartsIdle(t *testing.T) {
	s, err := New(Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := s.Mode(); got != ModeIdle {
		t.Errorf("Mode() = %q, want %q", got, ModeIdle)
	}
	if s.ID == "" {
		t.Error("session ID is empty")
	}
	if s.Loads.Loading() {
		t.Error("new session reports loading")
	}
}

func TestSessionIDsAreUnique(t *testing.T) {
	a, err := New(Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	b, err := New(Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if a.ID == b.ID {
		t.Errorf("two sessions share ID %q", a.ID)
	}
}

func TestModeTransitions(t *testing.T) {
	tests := []struct {
		name string
		path []fsm.State
		want bool // outcome of the final step
	}{
		{"idle to exploring", []fsm.State{ModeExploring}, true},
		{"idle straight to combat", []fsm.State{ModeCombat}, false},
		{"exploring to combat", []fsm.State{ModeExploring, ModeCombat}, true},
		{"combat back to exploring", []fsm.State{ModeExploring, ModeCombat, ModeExploring}, true},
		{"resting straight to combat", []fsm.State{ModeExploring, ModeResting, ModeCombat}, false},
		{"exploring can end session", []fsm.State{ModeExploring, ModeDone}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(Config{})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			var got bool
			for i, target := range tt.path {
				got = s.EnterMode(target, "test")
				if i < len(tt.path)-1 && !got {
					t.Fatalf("setup step %d to %q rejected", i, target)
				}
			}
			if got != tt.want {
				t.Errorf("final EnterMode = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDoneIsASink(t *testing.T) {
	s, err := New(Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	s.EnterMode(ModeExploring, "")
	s.EnterMode(ModeDone, "")

	for _, target := range Modes() {
		if s.CanEnter(target) {
			t.Errorf("CanEnter(%q) from done = true, want false", target)
		}
	}
}

func TestModeHistoryRecordsReasons(t *testing.T) {
	s, err := New(Config{ModeHistoryCapacity: 2})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	s.EnterMode(ModeExploring, "go north")
	s.EnterMode(ModeCombat, "attack goblin")
	s.EnterMode(ModeExploring, "flee")

	history := s.ModeHistory()
	if len(history) != 2 {
		t.Fatalf("ModeHistory() length = %d, want 2", len(history))
	}
	if history[0].Reason != "attack goblin" || history[1].Reason != "flee" {
		t.Errorf("history reasons = %q, %q", history[0].Reason, history[1].Reason)
	}
}

func TestCloseRefusesFurtherTransitions(t *testing.T) {
	s, err := New(Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	s.Close()

	if !s.Closed() {
		t.Error("Closed() = false after Close")
	}
	if got := s.Mode(); got != ModeDone {
		t.Errorf("Mode() after Close = %q, want %q", got, ModeDone)
	}
	if s.EnterMode(ModeExploring, "") {
		t.Error("EnterMode succeeded on a closed session")
	}

	// Idempotent.
	s.Close()
	if got := s.Mode(); got != ModeDone {
		t.Errorf("Mode() after second Close = %q, want %q", got, ModeDone)
	}
}
