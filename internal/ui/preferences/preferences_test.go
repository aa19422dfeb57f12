package preferences

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestSettings_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		input    Settings
		expected Settings
	}{
		{
			name:     "in range is kept",
			input:    Settings{WavePeriod: 2 * time.Second, FrameRate: 30, Smoothing: false, SoundCue: true},
			expected: Settings{WavePeriod: 2 * time.Second, FrameRate: 30, Smoothing: false, SoundCue: true},
		},
		{
			name:     "too fast wave falls back",
			input:    Settings{WavePeriod: 10 * time.Millisecond, FrameRate: 60},
			expected: Settings{WavePeriod: 1700 * time.Millisecond, FrameRate: 60},
		},
		{
			name:     "frame rate out of range falls back",
			input:    Settings{WavePeriod: time.Second, FrameRate: 500},
			expected: Settings{WavePeriod: time.Second, FrameRate: 60},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.input.Normalize(); got != tt.expected {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSettings_AnimationConfig(t *testing.T) {
	settings := Settings{WavePeriod: 3 * time.Second, FrameRate: 30, Smoothing: true}
	config := settings.AnimationConfig()
	if config.WavePeriod != 3*time.Second || config.FrameRate != 30 || !config.Smoothing {
		t.Errorf("AnimationConfig() = %+v", config)
	}
	if config.SpringFrequency <= 0 {
		t.Errorf("spring frequency should keep its default, got %v", config.SpringFrequency)
	}
}

func TestSettings_FillConfigUsesStockGauge(t *testing.T) {
	config := DefaultSettings().FillConfig()
	if config.IncrementVolume != 200 || config.DecrementVolume != 150 || config.Ceiling != 90 {
		t.Errorf("FillConfig() = %+v", config)
	}
}

func TestWindow_SaveAppliesForm(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var saved []Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = append(saved, settings)
	})

	prefs.wavePeriod.SetText("2500")
	prefs.frameRate.SetValue(30)
	prefs.smoothing.SetChecked(false)
	prefs.soundCue.SetChecked(true)
	prefs.handleSave()

	if len(saved) != 1 {
		t.Fatalf("onSave called %d times, want 1", len(saved))
	}
	want := Settings{WavePeriod: 2500 * time.Millisecond, FrameRate: 30, Smoothing: false, SoundCue: true}
	if saved[0] != want {
		t.Errorf("saved %+v, want %+v", saved[0], want)
	}
}

func TestWindow_InvalidPeriodKeepsPrevious(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var saved Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = settings
	})

	prefs.wavePeriod.SetText("fast")
	prefs.handleSave()

	if saved.WavePeriod != DefaultSettings().WavePeriod {
		t.Errorf("WavePeriod = %v, want default %v", saved.WavePeriod, DefaultSettings().WavePeriod)
	}
	if prefs.wavePeriod.Text != "1700" {
		t.Errorf("entry text = %q, want it reset to 1700", prefs.wavePeriod.Text)
	}
}
