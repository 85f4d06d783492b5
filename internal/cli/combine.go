package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvexact/combination"
)

func newCombineCommand() *cobra.Command {
	var (
		weights   []int
		target    int
		noReuse   bool
		limit     int
		maxLength int
		count     bool
	)
	cmd := &cobra.Command{
		Use:   "combine",
		Short: "Enumerate weight combinations that sum to a target.",
		Long: "`combine --weights 2,3,6,7 --target 7` prints every combination, " +
			"one per line, in lexicographic order.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []combination.Option
			if noReuse {
				opts = append(opts, combination.WithoutReuse())
			}
			if limit > 0 {
				opts = append(opts, combination.WithLimit(limit))
			}
			if maxLength > 0 {
				opts = append(opts, combination.WithMaxLength(maxLength))
			}

			out := cmd.OutOrStdout()
			if count {
				n, err := combination.Count(weights, target, opts...)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, n)

				return nil
			}

			return combination.Visit(weights, target, func(combo []int) bool {
				fmt.Fprintln(out, combo)

				return true
			}, opts...)
		},
	}

	f := cmd.Flags()
	f.IntSliceVar(&weights, "weights", nil, "comma-separated positive weights")
	f.IntVar(&target, "target", 0, "target sum")
	f.BoolVar(&noReuse, "no-reuse", false, "use each weight position at most once")
	f.IntVar(&limit, "limit", 0, "stop after this many combinations (0 = all)")
	f.IntVar(&maxLength, "max-length", 0, "only combinations with at most this many elements (0 = any)")
	f.BoolVar(&count, "count", false, "print only the number of combinations")

	return cmd
}
