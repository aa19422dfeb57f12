package animation

import "waterbalance/internal/core/fill"

// LevelSource provides the current fill state to the frame loop.
type LevelSource interface {
	Snapshot() fill.State
}

// Frame is everything a host needs to draw one picture of the gauge.
type Frame struct {
	Phase   float64
	Percent float64
	Volume  int
	Target  float64
}
