package fill

import "time"

// Direction tells which way the step-animation moves the fill level.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
)

// EventType defines the type of controller event.
type EventType string

const (
	EventVolumeChange EventType = "volume_change"
	EventLevelChange  EventType = "level_change"
	EventSettled      EventType = "settled"
)

// State is a consistent snapshot of the controller.
type State struct {
	Volume    int
	Percent   float64
	Target    float64
	Direction Direction
	Animating bool
}

// Event represents a controller update for observers.
type Event struct {
	Type  EventType
	State State
	At    time.Time
}
