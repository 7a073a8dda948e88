// Package cli wires the command-line surface to the filtering core: it
// validates the positional arguments, picks the run mode from their
// count, and orchestrates the file plumbing around one run.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/csvscrub/internal/logging"
)

// NewRootCmd returns the csvscrub command.
//
// One positional argument deduplicates that file in place; two arguments
// remove every record from the second file whose email appears in the
// first. Any other count is a usage error surfaced before any file I/O.
func NewRootCmd() *cobra.Command {
	var (
		logLevel  string
		logFormat string
	)

	cmd := &cobra.Command{
		Use:   "csvscrub <file.csv> | csvscrub <reference.csv> <target.csv>",
		Short: "Remove duplicate or already-seen email rows from CSV files",
		Long: `csvscrub rewrites CSV files in place, filtering records by their
"email" column.

With one argument, duplicate emails are removed from the file, keeping
the first occurrence of each. With two arguments, every record of the
target file whose email appears in the reference file is removed.

Matching is case-insensitive and ignores surrounding whitespace.
Records with a blank email are always kept. The original file is never
modified unless the whole run succeeds.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(logLevel, logFormat)
			if len(args) == 1 {
				return Dedup(args[0])
			}
			return Exclude(args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&logLevel, "log-level", "info", "minimum log level: debug, info, warn, error")
	cmd.Flags().StringVar(&logFormat, "log-format", "text", "log output format: text or json")

	return cmd
}
