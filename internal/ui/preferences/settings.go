package preferences

import (
	"time"

	"github.com/ajkekeli/Pomodoro-App/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	WorkDuration          time.Duration
	ShortBreakDuration    time.Duration
	LongBreakDuration     time.Duration
	CyclesBeforeLongBreak int
	AutoStartBreaks       bool
	AutoStartWork         bool

	Notifications bool
}

// DefaultSettings returns the default preferences.
func DefaultSettings() Settings {
	return Settings{
		WorkDuration:          25 * time.Minute,
		ShortBreakDuration:    5 * time.Minute,
		LongBreakDuration:     15 * time.Minute,
		CyclesBeforeLongBreak: 4,
		Notifications:         true,
	}
}

// FromConfig keeps the UI-only fields and replaces the timer fields.
func (settings Settings) FromConfig(config model.Config) Settings {
	settings.WorkDuration = config.WorkDuration
	settings.ShortBreakDuration = config.ShortBreakDuration
	settings.LongBreakDuration = config.LongBreakDuration
	settings.CyclesBeforeLongBreak = config.CyclesBeforeLongBreak
	settings.AutoStartBreaks = config.AutoStartBreaks
	settings.AutoStartWork = config.AutoStartWork
	return settings
}

// Config converts settings to the timer configuration.
func (settings Settings) Config() model.Config {
	return model.Config{
		WorkDuration:          settings.WorkDuration,
		ShortBreakDuration:    settings.ShortBreakDuration,
		LongBreakDuration:     settings.LongBreakDuration,
		CyclesBeforeLongBreak: settings.CyclesBeforeLongBreak,
		AutoStartBreaks:       settings.AutoStartBreaks,
		AutoStartWork:         settings.AutoStartWork,
	}
}
