package fill

import (
	"context"
	"math"
	"sync"
	"time"

	"waterbalance/internal/core/model"
)

// Controller owns the consumed volume and the fill level, and steps the level
// toward its target. At most one step-animation runs at a time: a new request
// cancels the one in flight and continues from where the level currently is.
type Controller struct {
	mu         sync.Mutex
	config     model.FillConfig
	volume     int
	percent    float64
	target     float64
	direction  Direction
	animating  bool
	generation uint64
	cancel     context.CancelFunc
	events     []chan Event
	closed     bool
}

// New creates a Controller with the provided configuration.
func New(config model.FillConfig) *Controller {
	defaults := model.DefaultFillConfig()
	if config.TickInterval <= 0 {
		config.TickInterval = defaults.TickInterval
	}
	if config.StepSize <= 0 {
		config.StepSize = defaults.StepSize
	}
	if config.StepSpan <= 0 {
		config.StepSpan = defaults.StepSpan
	}
	if config.Ceiling <= 0 || config.Ceiling > 100 {
		config.Ceiling = 100
	}
	if config.Floor < 0 || config.Floor > config.Ceiling {
		config.Floor = 0
	}

	initial := clamp(config.InitialPercent, 0, 100)
	return &Controller{
		config:  config,
		percent: initial,
		target:  initial,
	}
}

// Subscribe registers a new observer channel.
func (controller *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	controller.mu.Lock()
	if controller.closed {
		close(ch)
	} else {
		controller.events = append(controller.events, ch)
	}
	controller.mu.Unlock()
	return ch
}

// Snapshot returns the current state.
func (controller *Controller) Snapshot() State {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.stateLocked()
}

// Percent returns the current fill level.
func (controller *Controller) Percent() float64 {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.percent
}

// Increment records a drink and raises the level by one span, capped at the
// ceiling.
func (controller *Controller) Increment() State {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		return controller.stateLocked()
	}

	controller.volume += controller.config.IncrementVolume
	controller.emitLocked(EventVolumeChange)

	target := math.Min(controller.config.Ceiling, controller.baseLocked()+controller.config.StepSpan)
	controller.startLocked(target)
	return controller.stateLocked()
}

// Decrement removes part of a drink, never going below zero, and lowers the
// level by one span, floored at zero.
func (controller *Controller) Decrement() State {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed {
		return controller.stateLocked()
	}

	controller.volume -= controller.config.DecrementVolume
	if controller.volume < 0 {
		controller.volume = 0
	}
	controller.emitLocked(EventVolumeChange)

	target := math.Max(controller.config.Floor, controller.baseLocked()-controller.config.StepSpan)
	controller.startLocked(target)
	return controller.stateLocked()
}

// Close stops the running step-animation and closes observers.
func (controller *Controller) Close() {
	controller.mu.Lock()
	if controller.closed {
		controller.mu.Unlock()
		return
	}
	controller.closed = true
	controller.generation++
	if controller.cancel != nil {
		controller.cancel()
		controller.cancel = nil
	}
	controller.animating = false
	controller.direction = DirectionNone
	events := controller.events
	controller.events = nil
	controller.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// baseLocked is the level a new request builds on: the pending target while
// an animation is still heading there, otherwise the current level.
func (controller *Controller) baseLocked() float64 {
	if controller.animating {
		return controller.target
	}
	return controller.percent
}

func (controller *Controller) startLocked(target float64) {
	if controller.cancel != nil {
		controller.cancel()
		controller.cancel = nil
	}
	controller.generation++
	controller.target = target

	switch {
	case target > controller.percent:
		controller.direction = DirectionUp
	case target < controller.percent:
		controller.direction = DirectionDown
	default:
		controller.direction = DirectionNone
		controller.animating = false
		controller.emitLocked(EventSettled)
		return
	}
	controller.animating = true

	ctx, cancel := context.WithCancel(context.Background())
	controller.cancel = cancel
	go controller.run(ctx, controller.generation)
}

func (controller *Controller) run(ctx context.Context, generation uint64) {
	ticker := time.NewTicker(controller.config.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if controller.step(generation) {
				return
			}
		}
	}
}

// step applies a single tick and reports whether the animation is over.
func (controller *Controller) step(generation uint64) bool {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.closed || generation != controller.generation {
		return true
	}

	switch controller.direction {
	case DirectionUp:
		controller.percent = math.Min(controller.percent+controller.config.StepSize, controller.target)
	case DirectionDown:
		controller.percent = math.Max(controller.percent-controller.config.StepSize, controller.target)
	}
	controller.percent = clamp(controller.percent, 0, 100)
	controller.emitLocked(EventLevelChange)

	if controller.percent != controller.target {
		return false
	}
	controller.animating = false
	controller.direction = DirectionNone
	if controller.cancel != nil {
		controller.cancel()
		controller.cancel = nil
	}
	controller.emitLocked(EventSettled)
	return true
}

func (controller *Controller) stateLocked() State {
	return State{
		Volume:    controller.volume,
		Percent:   controller.percent,
		Target:    controller.target,
		Direction: controller.direction,
		Animating: controller.animating,
	}
}

func (controller *Controller) emitLocked(eventType EventType) {
	event := Event{
		Type:  eventType,
		State: controller.stateLocked(),
		At:    time.Now(),
	}
	for _, ch := range controller.events {
		select {
		case ch <- event:
		default:
		}
	}
}

func clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
