package animation

import "time"

// DefaultConfig returns the stock gauge motion: one wave cycle every 1.7s
// drawn at 60 frames per second with spring smoothing.
func DefaultConfig() Config {
	return Config{
		FrameRate:       60,
		WavePeriod:      1700 * time.Millisecond,
		Smoothing:       true,
		SpringFrequency: 12,
		SpringDamping:   1,
	}
}
