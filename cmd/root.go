package cmd

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"github.com/zhubert/studdy/internal/app"
	"github.com/zhubert/studdy/internal/config"
	"github.com/zhubert/studdy/internal/errors"
	"github.com/zhubert/studdy/internal/logger"
	"github.com/zhubert/studdy/internal/ui"
)

var (
	debugMode             bool
	quietMode             bool
	noNotify              bool
	workMinutes           int
	breakMinutes          int
	themeName             string
	configPath            string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "studdy",
	Short: "A terminal dashboard for studying",
	Long: `Studdy is a terminal dashboard for students: a pomodoro timer, a monthly
habit tracker, a day scheduler, personal and work task lists, notes and
study goals with a progress chart, all on one screen.

Preferences are read from ~/.studdy/config.yaml. Flags override them for
the current run.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", true, "Enable debug logging (on by default)")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Preferences file (default ~/.studdy/config.yaml)")

	rootCmd.Flags().IntVarP(&workMinutes, "work", "w", 0, "Work session length in minutes (1-60)")
	rootCmd.Flags().IntVarP(&breakMinutes, "break", "b", 0, "Break length in minutes (1-30)")
	rootCmd.Flags().StringVarP(&themeName, "theme", "t", "", "Color theme: "+themeList())
	rootCmd.Flags().BoolVar(&noNotify, "no-notify", false, "Disable the desktop notification when time is up")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("studdy %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("studdy %s\n", version)
}

func themeList() string {
	names := ui.ThemeNames()
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = string(n)
	}
	return strings.Join(parts, ", ")
}

// resolveConfigPath returns --config or the default preferences path.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

// applyFlags copies explicitly set flags over the loaded preferences and
// re-validates the result.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("work") {
		w := workMinutes
		cfg.Timer.WorkMinutes = &w
	}
	if flags.Changed("break") {
		b := breakMinutes
		cfg.Timer.BreakMinutes = &b
	}
	if flags.Changed("theme") {
		if !ui.IsTheme(themeName) {
			return errors.ConfigInvalid(fmt.Sprintf("unknown theme %q (available: %s)", themeName, themeList()))
		}
		cfg.Theme = themeName
	}
	if noNotify {
		cfg.SetNotificationsEnabled(false)
	}

	if errs := config.Validate(cfg); len(errs) > 0 {
		return errors.ConfigInvalid(config.JoinErrors(errs))
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return fmt.Errorf("error locating preferences: %w", err)
	}

	cfg, err := config.LoadAndMerge(path)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	// Ensure logger is closed on exit
	defer logger.Close()
	logger.Info("starting studdy %s (config %s)", version, path)

	m := app.New(cfg, version, app.Options{ConfigPath: path})
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
