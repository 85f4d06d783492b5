// Package cli provides the lvexact command-line harness around the exact
// solvers: combine, distance and knapsack.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the lvexact command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "lvexact",
		Short: "Run the exact combinatorial solvers from the command line.",
		Long: `lvexact runs the exact solvers of the lvexact library: ` +
			`combination enumeration, edit distance and 0/1 knapsack. ` +
			`Results are printed as plain text, one item per line.`,
		SilenceUsage: true,
	}
	root.AddCommand(
		newCombineCommand(),
		newDistanceCommand(),
		newKnapsackCommand(),
	)

	return root
}

// Execute runs the root command with os.Args and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
