package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zhubert/studdy/internal/calendar"
)

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "Print the hourly time slots events can be scheduled in",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printSlots(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(slotsCmd)
}

// printSlots writes the 24 slots six per line.
func printSlots(w io.Writer) error {
	slots := calendar.TimeSlots()
	for i := 0; i < len(slots); i += 6 {
		end := min(i+6, len(slots))
		if _, err := fmt.Fprintln(w, strings.Join(slots[i:end], "  ")); err != nil {
			return err
		}
	}
	return nil
}
