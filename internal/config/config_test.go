package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/zhubert/studdy/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".studdy", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func intPtr(v int) *int { return &v }

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.WorkMinutes() != 25 {
		t.Errorf("work minutes: got %d, want 25", cfg.WorkMinutes())
	}
	if cfg.BreakMinutes() != 5 {
		t.Errorf("break minutes: got %d, want 5", cfg.BreakMinutes())
	}
	if cfg.TickInterval() != time.Second {
		t.Errorf("tick interval: got %v, want 1s", cfg.TickInterval())
	}
	if !cfg.NotificationsEnabled() {
		t.Error("notifications should default to enabled")
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("theme: got %q, want %q", cfg.Theme, DefaultTheme)
	}
	if errs := Validate(cfg); len(errs) != 0 {
		t.Errorf("default config invalid: %v", errs)
	}
}

func TestZeroConfigAccessors(t *testing.T) {
	var cfg Config
	if cfg.WorkMinutes() != 25 || cfg.BreakMinutes() != 5 || cfg.TickInterval() != time.Second {
		t.Error("zero config should fall back to defaults")
	}
	if cfg.NotificationsEnabled() {
		t.Error("unset notifications should read as disabled")
	}
	cfg.SetNotificationsEnabled(true)
	if !cfg.NotificationsEnabled() {
		t.Error("SetNotificationsEnabled(true) had no effect")
	}
}

func TestLoad_FileNotExists(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("expected nil error for missing file, got: %v", err)
	}
	if cfg != nil {
		t.Error("expected nil config for missing file")
	}
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeConfig(t, `
timer:
  work_minutes: 50
  tick_interval: 500ms
notifications:
  enabled: false
theme: nord
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Timer.WorkMinutes == nil || *cfg.Timer.WorkMinutes != 50 {
		t.Error("work_minutes: expected 50")
	}
	if cfg.Timer.BreakMinutes != nil {
		t.Error("break_minutes should be unset")
	}
	if cfg.TickInterval() != 500*time.Millisecond {
		t.Errorf("tick_interval: got %v", cfg.TickInterval())
	}
	if cfg.NotificationsEnabled() {
		t.Error("notifications: expected disabled")
	}
	if cfg.Theme != "nord" {
		t.Errorf("theme: got %q", cfg.Theme)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "timer: [unclosed")
	if _, err := Load(path); !errors.Is(err, errors.KindConfig) {
		t.Errorf("err = %v, want KindConfig", err)
	}
}

func TestLoad_BadDuration(t *testing.T) {
	path := writeConfig(t, "timer:\n  tick_interval: soon\n")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "invalid duration") {
		t.Errorf("err = %v, want invalid duration", err)
	}
}

func TestLoadAndMerge(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadAndMerge(filepath.Join(t.TempDir(), "none.yaml"))
		if err != nil {
			t.Fatal(err)
		}
		if cfg.WorkMinutes() != 25 || cfg.Theme != DefaultTheme {
			t.Errorf("got %+v", cfg)
		}
	})

	t.Run("partial file merged", func(t *testing.T) {
		path := writeConfig(t, "timer:\n  break_minutes: 10\n")
		cfg, err := LoadAndMerge(path)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.BreakMinutes() != 10 {
			t.Errorf("break: got %d, want 10", cfg.BreakMinutes())
		}
		if cfg.WorkMinutes() != 25 {
			t.Errorf("work: got %d, want default 25", cfg.WorkMinutes())
		}
		if !cfg.NotificationsEnabled() {
			t.Error("notifications should be merged from defaults")
		}
	})

	t.Run("out of range rejected", func(t *testing.T) {
		path := writeConfig(t, "timer:\n  work_minutes: 90\n  break_minutes: 0\n")
		_, err := LoadAndMerge(path)
		if !errors.Is(err, errors.KindInvalid) {
			t.Fatalf("err = %v, want KindInvalid", err)
		}
		for _, field := range []string{"timer.work_minutes", "timer.break_minutes"} {
			if !strings.Contains(err.Error(), field) {
				t.Errorf("error %q should mention %s", err, field)
			}
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *Config
		wantField string
	}{
		{"work too low", &Config{Timer: TimerConfig{WorkMinutes: intPtr(0)}}, "timer.work_minutes"},
		{"work too high", &Config{Timer: TimerConfig{WorkMinutes: intPtr(61)}}, "timer.work_minutes"},
		{"break too high", &Config{Timer: TimerConfig{BreakMinutes: intPtr(31)}}, "timer.break_minutes"},
		{"tick too fast", &Config{Timer: TimerConfig{TickInterval: &Duration{time.Millisecond}}}, "timer.tick_interval"},
		{"all unset", &Config{}, ""},
		{"bounds inclusive", &Config{Timer: TimerConfig{WorkMinutes: intPtr(60), BreakMinutes: intPtr(1)}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.cfg)
			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Errorf("unexpected errors: %v", errs)
				}
				return
			}
			if len(errs) != 1 || errs[0].Field != tt.wantField {
				t.Errorf("errs = %v, want one for %s", errs, tt.wantField)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Theme = "nord"
	cfg.SetNotificationsEnabled(false)

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := LoadAndMerge(path)
	if err != nil {
		t.Fatalf("LoadAndMerge: %v", err)
	}
	if loaded.Theme != "nord" || loaded.NotificationsEnabled() {
		t.Errorf("loaded = %+v", loaded)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "tick_interval: 1s") {
		t.Errorf("duration not written as string:\n%s", data)
	}
}

func TestDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, ".studdy", "config.yaml"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}
