package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zhubert/studdy/internal/logger"
)

var (
	skipConfirm bool
	resetPrefs  bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the debug log and, optionally, saved preferences",
	Long: `Removes the debug log at /tmp/studdy-debug.log. With --prefs it also deletes
the preferences file so the next run starts from the defaults.

Dashboard data (tasks, habits, events, notes, goals) lives only in memory
and is never written to disk, so there is nothing else to clean.

It will prompt for confirmation before proceeding unless the --yes flag is used.`,
	Args: cobra.NoArgs,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	cleanCmd.Flags().BoolVar(&resetPrefs, "prefs", false, "Also delete the preferences file")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	prefsPath := ""
	if resetPrefs {
		path, err := resolveConfigPath()
		if err != nil {
			return fmt.Errorf("error locating preferences: %w", err)
		}
		prefsPath = path
	}
	return runCleanWithReader(os.Stdin, cmd.OutOrStdout(), logger.DefaultLogPath, prefsPath)
}

// runCleanWithReader allows injecting input, output and paths for testing.
// An empty prefsPath leaves preferences alone.
func runCleanWithReader(input io.Reader, out io.Writer, logPath, prefsPath string) error {
	var targets []string
	for _, p := range []string{logPath, prefsPath} {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			targets = append(targets, p)
		}
	}

	if len(targets) == 0 {
		fmt.Fprintln(out, "Nothing to clean.")
		return nil
	}

	fmt.Fprintln(out, "This will remove:")
	for _, t := range targets {
		fmt.Fprintf(out, "  - %s\n", t)
	}

	// Confirm unless --yes flag is set
	if !skipConfirm {
		if !confirm(input, out, "Continue?") {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	removed := 0
	for _, t := range targets {
		if err := os.Remove(t); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: error removing %s: %v\n", t, err)
			continue
		}
		removed++
	}

	fmt.Fprintf(out, "Removed %d file(s).\n", removed)
	return nil
}

// confirm prompts the user for y/n confirmation
func confirm(input io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(input)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes"
}
