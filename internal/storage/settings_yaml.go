package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"waterbalance/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	WavePeriodMillis int   `yaml:"wave_period_ms"`
	FrameRate        int   `yaml:"frame_rate"`
	Smoothing        *bool `yaml:"smoothing"`
	SoundCue         bool  `yaml:"sound_cue"`
}

// LoadSettings reads user preferences from the per-user config directory.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// SaveSettings writes user preferences to the per-user config directory.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// LoadSettingsFile reads user preferences from a YAML file.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings.Normalize(), nil
}

// SaveSettingsFile writes user preferences to a YAML file.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	smoothing := settings.Smoothing
	fileData := yamlSettings{
		WavePeriodMillis: int(settings.WavePeriod / time.Millisecond),
		FrameRate:        settings.FrameRate,
		Smoothing:        &smoothing,
		SoundCue:         settings.SoundCue,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// ResolveConfigPath returns where the settings file of appName lives.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.WavePeriodMillis > 0 {
		settings.WavePeriod = time.Duration(fileData.WavePeriodMillis) * time.Millisecond
	}
	if fileData.FrameRate > 0 {
		settings.FrameRate = fileData.FrameRate
	}
	if fileData.Smoothing != nil {
		settings.Smoothing = *fileData.Smoothing
	}
	settings.SoundCue = fileData.SoundCue
}
