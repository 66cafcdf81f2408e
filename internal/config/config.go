// Package config loads studdy's preferences from ~/.studdy/config.yaml.
// Preferences seed the dashboard's controls at startup; the dashboard's
// own data is never written here.
package config

import (
	"fmt"
	"time"

	"github.com/zhubert/studdy/internal/pomodoro"
)

// Config is the top-level preferences file.
type Config struct {
	Timer         TimerConfig         `yaml:"timer"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Theme         string              `yaml:"theme"`
}

// TimerConfig holds the pomodoro slider defaults.
type TimerConfig struct {
	WorkMinutes  *int      `yaml:"work_minutes"`
	BreakMinutes *int      `yaml:"break_minutes"`
	TickInterval *Duration `yaml:"tick_interval"` // how often a running countdown is re-evaluated
}

// NotificationsConfig controls desktop notifications.
type NotificationsConfig struct {
	Enabled *bool `yaml:"enabled"`
}

// WorkMinutes returns the configured work duration or the default.
func (c *Config) WorkMinutes() int {
	if c.Timer.WorkMinutes == nil {
		return pomodoro.DefaultWorkMinutes
	}
	return *c.Timer.WorkMinutes
}

// BreakMinutes returns the configured break duration or the default.
func (c *Config) BreakMinutes() int {
	if c.Timer.BreakMinutes == nil {
		return pomodoro.DefaultBreakMinutes
	}
	return *c.Timer.BreakMinutes
}

// TickInterval returns the countdown polling interval.
func (c *Config) TickInterval() time.Duration {
	if c.Timer.TickInterval == nil {
		return DefaultTickInterval
	}
	return c.Timer.TickInterval.Duration
}

// NotificationsEnabled reports whether desktop notifications are on.
func (c *Config) NotificationsEnabled() bool {
	return c.Notifications.Enabled != nil && *c.Notifications.Enabled
}

// SetNotificationsEnabled sets the notification flag.
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.Notifications.Enabled = &enabled
}

// Duration is a wrapper around time.Duration that reads and writes YAML as
// human-readable strings like "1s" or "500ms".
type Duration struct {
	time.Duration
}

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler for Duration.
func (d Duration) MarshalYAML() (any, error) {
	return d.Duration.String(), nil
}
