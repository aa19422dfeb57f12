package preferences

import (
	"time"

	"waterbalance/internal/core/model"
	"waterbalance/internal/ui/animation"
)

const (
	MinWavePeriod = 500 * time.Millisecond
	MaxWavePeriod = 10 * time.Second
	MinFrameRate  = 10
	MaxFrameRate  = 120
)

// Settings defines editable user preferences.
type Settings struct {
	WavePeriod time.Duration
	FrameRate  int
	Smoothing  bool
	SoundCue   bool
}

// DefaultSettings returns default settings for WaterBalance.
func DefaultSettings() Settings {
	defaults := animation.DefaultConfig()
	return Settings{
		WavePeriod: defaults.WavePeriod,
		FrameRate:  defaults.FrameRate,
		Smoothing:  defaults.Smoothing,
		SoundCue:   false,
	}
}

// Normalize replaces out-of-range values with defaults.
func (settings Settings) Normalize() Settings {
	defaults := DefaultSettings()
	if settings.WavePeriod < MinWavePeriod || settings.WavePeriod > MaxWavePeriod {
		settings.WavePeriod = defaults.WavePeriod
	}
	if settings.FrameRate < MinFrameRate || settings.FrameRate > MaxFrameRate {
		settings.FrameRate = defaults.FrameRate
	}
	return settings
}

// FillConfig converts settings to the controller configuration.
func (settings Settings) FillConfig() model.FillConfig {
	return model.DefaultFillConfig()
}

// AnimationConfig converts settings to the frame loop configuration.
func (settings Settings) AnimationConfig() animation.Config {
	config := animation.DefaultConfig()
	config.WavePeriod = settings.WavePeriod
	config.FrameRate = settings.FrameRate
	config.Smoothing = settings.Smoothing
	return config
}
