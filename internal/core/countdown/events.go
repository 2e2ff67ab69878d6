package countdown

import "time"

// DisplayState represents what the display currently shows.
type DisplayState string

const (
	StateCounting DisplayState = "counting"
	StateArrived  DisplayState = "arrived"
	StateError    DisplayState = "error"
)

// EventType defines the type of countdown event.
type EventType string

const (
	EventTick     EventType = "tick"
	EventArrived  EventType = "arrived"
	EventRollover EventType = "rollover"
	EventError    EventType = "error"
)

// Event represents a countdown update for observers.
type Event struct {
	Type         EventType
	State        DisplayState
	Remaining    Breakdown
	TotalSeconds int64
	Text         string
	Err          error
	At           time.Time
}
