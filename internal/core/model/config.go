package model

import "time"

// FillConfig contains the runtime settings for the FillController.
type FillConfig struct {
	IncrementVolume int
	DecrementVolume int

	InitialPercent float64
	StepSize       float64
	StepSpan       float64
	Ceiling        float64
	Floor          float64

	TickInterval time.Duration
}

// DefaultFillConfig returns the stock gauge behaviour: +200 ml / -150 ml,
// ten one-point steps every 20ms, never filling past 90%.
func DefaultFillConfig() FillConfig {
	return FillConfig{
		IncrementVolume: 200,
		DecrementVolume: 150,
		InitialPercent:  20,
		StepSize:        1,
		StepSpan:        10,
		Ceiling:         90,
		Floor:           0,
		TickInterval:    20 * time.Millisecond,
	}
}
