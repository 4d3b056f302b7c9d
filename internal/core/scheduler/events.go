package scheduler

import "time"

// State represents which side of the work/idle machine is active.
type State string

const (
	StateWorking State = "working"
	StateIdle    State = "idle"
)

// EventType defines the type of Scheduler event.
type EventType string

const (
	// EventPrompt fires when a new prompt needs acknowledgment.
	EventPrompt EventType = "prompt"
	// EventReport fires when the transient status report changes.
	EventReport EventType = "report"
	// EventUpdate fires when the continuously refreshed status line changes.
	EventUpdate EventType = "update"
	// EventEmphasize fires once when an unacknowledged prompt escalates.
	EventEmphasize EventType = "emphasize"
	// EventAnnounce fires each tick while an escalated prompt is pending.
	EventAnnounce EventType = "announce"
	// EventAcknowledged fires when the user dismisses the prompt.
	EventAcknowledged EventType = "acknowledged"
	// EventError reports a failed tick.
	EventError EventType = "error"
)

// Event represents a Scheduler update for observers.
type Event struct {
	Type    EventType
	State   State
	Prompt  string
	Message string
	At      time.Time
}
