package config

import (
	"time"

	"github.com/zhubert/studdy/internal/pomodoro"
)

// DefaultTickInterval is how often a running countdown is re-evaluated.
const DefaultTickInterval = time.Second

// DefaultTheme is used when no theme is configured.
const DefaultTheme = "tomato"

// DefaultConfig returns the preferences used when no file exists.
func DefaultConfig() *Config {
	work := pomodoro.DefaultWorkMinutes
	brk := pomodoro.DefaultBreakMinutes
	tick := Duration{DefaultTickInterval}
	notify := true

	return &Config{
		Timer: TimerConfig{
			WorkMinutes:  &work,
			BreakMinutes: &brk,
			TickInterval: &tick,
		},
		Notifications: NotificationsConfig{
			Enabled: &notify,
		},
		Theme: DefaultTheme,
	}
}

// Merge fills in missing values in partial from defaults.
// partial takes precedence; defaults fill gaps.
func Merge(partial, defaults *Config) *Config {
	result := *partial

	if result.Timer.WorkMinutes == nil {
		result.Timer.WorkMinutes = defaults.Timer.WorkMinutes
	}
	if result.Timer.BreakMinutes == nil {
		result.Timer.BreakMinutes = defaults.Timer.BreakMinutes
	}
	if result.Timer.TickInterval == nil {
		result.Timer.TickInterval = defaults.Timer.TickInterval
	}
	if result.Notifications.Enabled == nil {
		result.Notifications.Enabled = defaults.Notifications.Enabled
	}
	if result.Theme == "" {
		result.Theme = defaults.Theme
	}

	return &result
}
