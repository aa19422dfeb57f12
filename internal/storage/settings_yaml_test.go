package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"waterbalance/internal/ui/preferences"
)

func TestLoadSettingsFile_MissingReturnsDefaults(t *testing.T) {
	settings, err := LoadSettingsFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings != preferences.DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", settings)
	}
}

func TestSaveThenLoadSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", settingsFileName)
	want := preferences.Settings{
		WavePeriod: 2200 * time.Millisecond,
		FrameRate:  30,
		Smoothing:  false,
		SoundCue:   true,
	}

	if err := SaveSettingsFile(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(raw), "wave_period_ms: 2200") {
		t.Errorf("file content missing wave period:\n%s", raw)
	}

	got, err := LoadSettingsFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Errorf("loaded %+v, want %+v", got, want)
	}
}

func TestLoadSettingsFile_PartialAndOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	content := "wave_period_ms: 5\nsound_cue: true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadSettingsFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defaults := preferences.DefaultSettings()
	if got.WavePeriod != defaults.WavePeriod {
		t.Errorf("WavePeriod = %v, want default %v", got.WavePeriod, defaults.WavePeriod)
	}
	if got.Smoothing != defaults.Smoothing {
		t.Errorf("Smoothing = %v, want default %v when absent", got.Smoothing, defaults.Smoothing)
	}
	if !got.SoundCue {
		t.Error("SoundCue should be read from file")
	}
}

func TestLoadSettingsFile_InvalidYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	if err := os.WriteFile(path, []byte("frame_rate: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := LoadSettingsFile(path)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if !strings.Contains(err.Error(), "parse settings yaml") {
		t.Errorf("error = %v, want it wrapped with context", err)
	}
	if settings != preferences.DefaultSettings() {
		t.Errorf("settings = %+v, want defaults on error", settings)
	}
}
