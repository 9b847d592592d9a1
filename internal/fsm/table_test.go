package fsm

import (
	"errors"
	"testing"
)

func TestNewValidatedAcceptsWellFormedTable(t *testing.T) {
	states := []State{"idle", "running", "done"}
	m, err := NewValidated(states, "idle", jobTable())
	if err != nil {
		t.Fatalf("NewValidated() error = %v", err)
	}
	if got := m.Current(); got != "idle" {
		t.Errorf("Current() = %q, want idle", got)
	}
}

func TestNewValidatedRejectsBadTables(t *testing.T) {
	states := []State{"idle", "running", "done"}

	tests := []struct {
		name    string
		initial State
		table   Table
		bad     State
	}{
		{
			name:    "undeclared initial state",
			initial: "bootign", // typo
			table:   jobTable(),
			bad:     "bootign",
		},
		{
			name:    "undeclared from-state",
			initial: "idle",
			table: Table{
				"idle":   {"running"},
				"runing": {"done"}, // typo
			},
			bad: "runing",
		},
		{
			name:    "undeclared to-state",
			initial: "idle",
			table: Table{
				"idle": {"runnign"}, // typo
			},
			bad: "runnign",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewValidated(states, tt.initial, tt.table)
			if err == nil {
				t.Fatal("NewValidated() succeeded, want error")
			}
			if m != nil {
				t.Error("NewValidated() returned a machine alongside an error")
			}
			var tableErr *TableError
			if !errors.As(err, &tableErr) {
				t.Fatalf("error = %v, want *TableError", err)
			}
			if tableErr.State != tt.bad {
				t.Errorf("TableError.State = %q, want %q", tableErr.State, tt.bad)
			}
		})
	}
}

func TestValidateAllowsSinkStates(t *testing.T) {
	// "done" has no entry at all; it is a sink and that is fine.
	states := []State{"idle", "done"}
	table := Table{"idle": {"done"}}
	if err := table.Validate(states, "idle"); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}
