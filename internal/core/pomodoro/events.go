package pomodoro

import "time"

// SessionType identifies the kind of interval being timed.
type SessionType string

const (
	SessionWork       SessionType = "work"
	SessionShortBreak SessionType = "short_break"
	SessionLongBreak  SessionType = "long_break"
)

// Label returns the human-readable session name.
func (session SessionType) Label() string {
	switch session {
	case SessionWork:
		return "Work Session"
	case SessionShortBreak:
		return "Short Break"
	case SessionLongBreak:
		return "Long Break"
	default:
		return string(session)
	}
}

// Status represents the run state of the timer.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusRunning Status = "running"
	StatusPaused  Status = "paused"
)

// EventType defines the type of timer event.
type EventType string

const (
	EventStateChange     EventType = "state_change"
	EventTick            EventType = "tick"
	EventSessionComplete EventType = "session_complete"
	EventStatsError      EventType = "stats_error"
)

// Event represents a timer update for observers.
type Event struct {
	Type      EventType
	State     State
	Completed SessionType
	Message   string
	At        time.Time
}

// State is a snapshot of the timer for rendering.
type State struct {
	Session                SessionType
	Status                 Status
	Remaining              time.Duration
	CurrentCycle           int
	TotalCycles            int
	CompletedWorkSessions  int
	CompletedBreakSessions int
	Progress               float64
}
