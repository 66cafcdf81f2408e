package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/zhubert/studdy/internal/quotes"
)

var listQuotes bool

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Print a motivation quote",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printQuotes(cmd.OutOrStdout(), listQuotes)
	},
}

func init() {
	quoteCmd.Flags().BoolVarP(&listQuotes, "all", "a", false, "Print every quote, one per line")
	rootCmd.AddCommand(quoteCmd)
}

func printQuotes(w io.Writer, all bool) error {
	if !all {
		_, err := fmt.Fprintln(w, quotes.Random())
		return err
	}
	for _, q := range quotes.All() {
		if _, err := fmt.Fprintln(w, q); err != nil {
			return err
		}
	}
	return nil
}
