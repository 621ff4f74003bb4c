package model

import (
	"fmt"
	"time"
)

// Allowed ranges for the settings dialog, in the units the dialog edits.
const (
	MinWorkMinutes       = 1
	MaxWorkMinutes       = 60
	MinShortBreakMinutes = 1
	MaxShortBreakMinutes = 30
	MinLongBreakMinutes  = 1
	MaxLongBreakMinutes  = 60
	MinCycles            = 1
	MaxCycles            = 10
)

// ValidationError reports a config value outside its allowed range.
type ValidationError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (err *ValidationError) Error() string {
	return fmt.Sprintf("%s must be between %d and %d, got %d", err.Field, err.Min, err.Max, err.Value)
}

// Config contains the timing settings for the session state machine.
type Config struct {
	WorkDuration          time.Duration
	ShortBreakDuration    time.Duration
	LongBreakDuration     time.Duration
	CyclesBeforeLongBreak int

	AutoStartBreaks bool
	AutoStartWork   bool
}

// DefaultConfig returns the classic Pomodoro timings.
func DefaultConfig() Config {
	return Config{
		WorkDuration:          25 * time.Minute,
		ShortBreakDuration:    5 * time.Minute,
		LongBreakDuration:     15 * time.Minute,
		CyclesBeforeLongBreak: 4,
	}
}

// Validate checks every field against the dialog ranges.
func (config Config) Validate() error {
	if err := checkMinutes("work duration", config.WorkDuration, MinWorkMinutes, MaxWorkMinutes); err != nil {
		return err
	}
	if err := checkMinutes("short break duration", config.ShortBreakDuration, MinShortBreakMinutes, MaxShortBreakMinutes); err != nil {
		return err
	}
	if err := checkMinutes("long break duration", config.LongBreakDuration, MinLongBreakMinutes, MaxLongBreakMinutes); err != nil {
		return err
	}
	if config.CyclesBeforeLongBreak < MinCycles || config.CyclesBeforeLongBreak > MaxCycles {
		return &ValidationError{
			Field: "cycles before long break",
			Value: config.CyclesBeforeLongBreak,
			Min:   MinCycles,
			Max:   MaxCycles,
		}
	}
	return nil
}

func checkMinutes(field string, value time.Duration, min, max int) error {
	minutes := int(value / time.Minute)
	if minutes < min || minutes > max {
		return &ValidationError{Field: field, Value: minutes, Min: min, Max: max}
	}
	return nil
}
