// Package session owns the per-player game session: the mode state
// machine, the prompt command history, and the in-flight load tracker.
package session

import (
	"github.com/google/uuid"

	"github.com/samdwyer/dungeonmind/internal/fsm"
)

// Session modes. ModeDone is a sink: a finished session never resumes.
const (
	ModeIdle      fsm.State = "idle"
	ModeExploring fsm.State = "exploring"
	ModeCombat    fsm.State = "combat"
	ModeResting   fsm.State = "resting"
	ModeDone      fsm.State = "done"
)

// Modes returns the full set of session modes.
func Modes() []fsm.State {
	return []fsm.State{ModeIdle, ModeExploring, ModeCombat, ModeResting, ModeDone}
}

// ModeTable returns the legal mode transitions. Combat and resting are
// only reachable while exploring; the session can end from any mode.
func ModeTable() fsm.Table {
	return fsm.Table{
		ModeIdle:      {ModeExploring, ModeDone},
		ModeExploring: {ModeCombat, ModeResting, ModeDone},
		ModeCombat:    {ModeExploring, ModeDone},
		ModeResting:   {ModeExploring, ModeDone},
		ModeDone:      {},
	}
}

// Config holds session construction options.
type Config struct {
	// ModeHistoryCapacity bounds retained mode transition records.
	// Zero means the fsm default.
	ModeHistoryCapacity int
	// CommandHistorySize bounds retained prompt commands.
	CommandHistorySize int
	// Observer receives mode transition diagnostics. Nil means no-op.
	Observer fsm.Observer
}

// Session is the owned state of one play-through. It is created when
// the game starts and closed when the player quits; nothing is shared
// across sessions.
type Session struct {
	ID       string
	Commands *CommandHistory
	Loads    *LoadTracker

	modes  *fsm.Machine
	closed bool
}

// New creates a session in ModeIdle. The mode table is validated
// against the declared mode set, so a typo in ModeTable fails here
// rather than misbehaving mid-game.
func New(cfg Config) (*Session, error) {
	opts := []fsm.Option{}
	if cfg.ModeHistoryCapacity > 0 {
		opts = append(opts, fsm.WithHistoryCapacity(cfg.ModeHistoryCapacity))
	}
	if cfg.Observer != nil {
		opts = append(opts, fsm.WithObserver(cfg.Observer))
	}

	modes, err := fsm.NewValidated(Modes(), ModeIdle, ModeTable(), opts...)
	if err != nil {
		return nil, err
	}

	size := cfg.CommandHistorySize
	if size <= 0 {
		size = DefaultCommandHistorySize
	}

	return &Session{
		ID:       uuid.NewString(),
		Commands: NewCommandHistory(size),
		Loads:    NewLoadTracker(),
		modes:    modes,
	}, nil
}

// Mode returns the current session mode.
func (s *Session) Mode() fsm.State {
	return s.modes.Current()
}

// CanEnter reports whether the session may move to the target mode.
func (s *Session) CanEnter(target fsm.State) bool {
	if s.closed {
		return false
	}
	return s.modes.CanTransition(target)
}

// EnterMode requests a mode change. Illegal requests leave the mode
// unchanged and return false; the player keeps playing either way.
func (s *Session) EnterMode(target fsm.State, reason string) bool {
	if s.closed {
		return false
	}
	return s.modes.Transition(target, reason)
}

// ModeHistory returns the retained mode transition records.
func (s *Session) ModeHistory() []fsm.Record {
	return s.modes.History()
}

// Close ends the session. Further mode changes are refused. Close is
// idempotent.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.modes.Transition(ModeDone, "session closed")
	s.closed = true
}

// Closed reports whether the session has been closed.
func (s *Session) Closed() bool {
	return s.closed
}
