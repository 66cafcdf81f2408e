package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/zhubert/studdy/internal/config"
	"github.com/zhubert/studdy/internal/errors"
	"github.com/zhubert/studdy/internal/quotes"
)

func TestDebugFlagDefaultTrue(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("debug")
	if flag == nil {
		t.Fatal("--debug flag not found")
	}
	if flag.DefValue != "true" {
		t.Errorf("--debug default = %q, want %q", flag.DefValue, "true")
	}
}

func TestQuietFlagExists(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("quiet")
	if flag == nil {
		t.Fatal("--quiet flag not found")
	}
	if flag.DefValue != "false" {
		t.Errorf("--quiet default = %q, want %q", flag.DefValue, "false")
	}
	if flag.Shorthand != "q" {
		t.Errorf("--quiet shorthand = %q, want %q", flag.Shorthand, "q")
	}
}

func TestRootFlagsExist(t *testing.T) {
	for _, name := range []string{"work", "break", "theme", "no-notify"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("--%s flag not found", name)
		}
	}
	if rootCmd.PersistentFlags().Lookup("config") == nil {
		t.Error("--config flag not found")
	}
}

func TestInitConfig_QuietOverridesDebug(t *testing.T) {
	origDebug, origQuiet := debugMode, quietMode
	defer func() { debugMode, quietMode = origDebug, origQuiet }()

	debugMode = true
	quietMode = true

	// Should not panic - quiet should take precedence
	initConfig()
}

func TestVersionTemplate(t *testing.T) {
	origV, origC, origD := version, commit, date
	defer SetVersionInfo(origV, origC, origD)

	SetVersionInfo("1.2.3", "none", "unknown")
	if got := versionTemplate(); got != "studdy 1.2.3\n" {
		t.Errorf("versionTemplate() = %q", got)
	}

	SetVersionInfo("1.2.3", "abc123", "2026-10-16")
	if got := versionTemplate(); !strings.Contains(got, "commit: abc123") {
		t.Errorf("versionTemplate() = %q, want commit line", got)
	}
}

// flagCommand binds the root flag variables to a fresh command so a test can
// parse args without touching rootCmd's Changed state.
func flagCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	origWork, origBreak, origTheme, origNotify := workMinutes, breakMinutes, themeName, noNotify
	t.Cleanup(func() {
		workMinutes, breakMinutes, themeName, noNotify = origWork, origBreak, origTheme, origNotify
	})

	cmd := &cobra.Command{Use: "studdy"}
	cmd.Flags().IntVarP(&workMinutes, "work", "w", 0, "")
	cmd.Flags().IntVarP(&breakMinutes, "break", "b", 0, "")
	cmd.Flags().StringVarP(&themeName, "theme", "t", "", "")
	cmd.Flags().BoolVar(&noNotify, "no-notify", false, "")
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v) error = %v", args, err)
	}
	return cmd
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantWork   int
		wantBreak  int
		wantTheme  string
		wantNotify bool
	}{
		{"no flags keeps preferences", nil, 25, 5, "tomato", true},
		{"work and break", []string{"--work", "50", "--break", "10"}, 50, 10, "tomato", true},
		{"short flags", []string{"-w", "15", "-t", "nord"}, 15, 5, "nord", true},
		{"no notify", []string{"--no-notify"}, 25, 5, "tomato", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := flagCommand(t, tt.args...)
			cfg := config.DefaultConfig()

			if err := applyFlags(cmd, cfg); err != nil {
				t.Fatalf("applyFlags() error = %v", err)
			}
			if cfg.WorkMinutes() != tt.wantWork || cfg.BreakMinutes() != tt.wantBreak {
				t.Errorf("timer = %d/%d, want %d/%d", cfg.WorkMinutes(), cfg.BreakMinutes(), tt.wantWork, tt.wantBreak)
			}
			if cfg.Theme != tt.wantTheme {
				t.Errorf("theme = %q, want %q", cfg.Theme, tt.wantTheme)
			}
			if cfg.NotificationsEnabled() != tt.wantNotify {
				t.Errorf("notifications = %v, want %v", cfg.NotificationsEnabled(), tt.wantNotify)
			}
		})
	}
}

func TestApplyFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"work too long", []string{"--work", "90"}, "timer.work_minutes"},
		{"break zero", []string{"--break", "0"}, "timer.break_minutes"},
		{"unknown theme", []string{"--theme", "solarized"}, "unknown theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := flagCommand(t, tt.args...)
			err := applyFlags(cmd, config.DefaultConfig())
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, errors.KindInvalid) {
				t.Errorf("kind = %v, want KindInvalid", errors.GetKind(err))
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestPrintQuotes(t *testing.T) {
	var one bytes.Buffer
	if err := printQuotes(&one, false); err != nil {
		t.Fatal(err)
	}
	q := strings.TrimSuffix(one.String(), "\n")
	found := false
	for _, known := range quotes.All() {
		if known == q {
			found = true
		}
	}
	if !found {
		t.Errorf("printed %q, not a known quote", q)
	}

	var all bytes.Buffer
	if err := printQuotes(&all, true); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(all.String(), "\n"); n != len(quotes.All()) {
		t.Errorf("printed %d lines, want %d", n, len(quotes.All()))
	}
}

func TestPrintSlots(t *testing.T) {
	var out bytes.Buffer
	if err := printSlots(&out); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	if lines[0] != "00:00  01:00  02:00  03:00  04:00  05:00" {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.HasSuffix(lines[3], "23:00") {
		t.Errorf("last line = %q", lines[3])
	}
}
