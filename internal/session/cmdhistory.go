package session

import "strings"

// DefaultCommandHistorySize bounds retained prompt commands when the
// session config does not say otherwise.
const DefaultCommandHistorySize = 50

// CommandHistory is the prompt recall buffer: ArrowUp walks back
// through past commands, ArrowDown walks forward and finally restores
// the line that was being typed when navigation started.
//
// It is only touched from the UI event loop and needs no locking.
type CommandHistory struct {
	entries []string
	limit   int

	cursor     int
	draft      string
	navigating bool
}

// NewCommandHistory creates a history retaining at most limit entries.
func NewCommandHistory(limit int) *CommandHistory {
	if limit < 1 {
		limit = DefaultCommandHistorySize
	}
	return &CommandHistory{limit: limit}
}

// Push records a submitted command and resets any navigation in
// progress. Blank lines and consecutive duplicates are skipped; the
// oldest entry is dropped once the limit is exceeded.
func (h *CommandHistory) Push(line string) {
	h.navigating = false
	h.draft = ""

	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == trimmed {
		return
	}

	h.entries = append(h.entries, trimmed)
	if len(h.entries) > h.limit {
		copy(h.entries, h.entries[len(h.entries)-h.limit:])
		h.entries = h.entries[:h.limit]
	}
}

// Prev steps back one entry and returns it. On the first step it saves
// current as the draft to restore later. At the oldest entry it stays
// put. Returns false when there is no history at all.
func (h *CommandHistory) Prev(current string) (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if !h.navigating {
		h.navigating = true
		h.draft = current
		h.cursor = len(h.entries)
	}
	if h.cursor > 0 {
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Next steps forward one entry. Stepping past the newest entry ends
// navigation and returns the saved draft. Returns false when no
// navigation is in progress.
func (h *CommandHistory) Next() (string, bool) {
	if !h.navigating {
		return "", false
	}
	h.cursor++
	if h.cursor >= len(h.entries) {
		h.navigating = false
		return h.draft, true
	}
	return h.entries[h.cursor], true
}

// Len returns the number of retained entries.
func (h *CommandHistory) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the retained commands, oldest first.
func (h *CommandHistory) Entries() []string {
	return append([]string(nil), h.entries...)
}
