package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ajkekeli/Pomodoro-App/internal/core/model"
	"github.com/ajkekeli/Pomodoro-App/internal/ui/preferences"
	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	WorkMinutes           int  `yaml:"work_minutes"`
	ShortBreakMinutes     int  `yaml:"short_break_minutes"`
	LongBreakMinutes      int  `yaml:"long_break_minutes"`
	CyclesBeforeLongBreak int  `yaml:"cycles_before_long_break"`
	AutoStartBreaks       bool `yaml:"auto_start_breaks"`
	AutoStartWork         bool `yaml:"auto_start_work"`
	Notifications         bool `yaml:"notifications"`
}

// LoadSettings reads user preferences from YAML under the user config dir.
// If the file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := resolveConfigPath(appName, settingsFileName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFrom(configPath)
}

// LoadSettingsFrom reads user preferences from an explicit path.
func LoadSettingsFrom(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
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
	return settings, nil
}

// SaveSettings writes user preferences to YAML under the user config dir.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName, settingsFileName)
	if err != nil {
		return err
	}
	return SaveSettingsTo(configPath, settings)
}

// SaveSettingsTo writes user preferences to an explicit path.
func SaveSettingsTo(path string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		WorkMinutes:           int(settings.WorkDuration / time.Minute),
		ShortBreakMinutes:     int(settings.ShortBreakDuration / time.Minute),
		LongBreakMinutes:      int(settings.LongBreakDuration / time.Minute),
		CyclesBeforeLongBreak: settings.CyclesBeforeLongBreak,
		AutoStartBreaks:       settings.AutoStartBreaks,
		AutoStartWork:         settings.AutoStartWork,
		Notifications:         settings.Notifications,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName, fileName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, fileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.WorkMinutes >= model.MinWorkMinutes && fileData.WorkMinutes <= model.MaxWorkMinutes {
		settings.WorkDuration = time.Duration(fileData.WorkMinutes) * time.Minute
	}
	if fileData.ShortBreakMinutes >= model.MinShortBreakMinutes && fileData.ShortBreakMinutes <= model.MaxShortBreakMinutes {
		settings.ShortBreakDuration = time.Duration(fileData.ShortBreakMinutes) * time.Minute
	}
	if fileData.LongBreakMinutes >= model.MinLongBreakMinutes && fileData.LongBreakMinutes <= model.MaxLongBreakMinutes {
		settings.LongBreakDuration = time.Duration(fileData.LongBreakMinutes) * time.Minute
	}
	if fileData.CyclesBeforeLongBreak >= model.MinCycles && fileData.CyclesBeforeLongBreak <= model.MaxCycles {
		settings.CyclesBeforeLongBreak = fileData.CyclesBeforeLongBreak
	}

	settings.AutoStartBreaks = fileData.AutoStartBreaks
	settings.AutoStartWork = fileData.AutoStartWork
	settings.Notifications = fileData.Notifications
}
