package game

import (
	"strings"

	"github.com/samdwyer/dungeonmind/internal/fsm"
	"github.com/samdwyer/dungeonmind/internal/narrator"
	"github.com/samdwyer/dungeonmind/internal/session"
)

// commandTarget maps a command category to the session mode it steers
// toward. Look and talk commands narrate without changing mode.
func commandTarget(cat narrator.Category) (fsm.State, bool) {
	switch cat {
	case narrator.CategoryGo:
		return session.ModeExploring, true
	case narrator.CategoryAttack:
		return session.ModeCombat, true
	case narrator.CategoryRest:
		return session.ModeResting, true
	default:
		return "", false
	}
}

// isQuit reports whether the command ends the session.
func isQuit(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "quit", "exit", "q":
		return true
	}
	return false
}
