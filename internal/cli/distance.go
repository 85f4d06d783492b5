package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvexact/editdistance"
)

func newDistanceCommand() *cobra.Command {
	var (
		rolling bool
		maxDist int
		script  bool
	)
	cmd := &cobra.Command{
		Use:   "distance A B",
		Short: "Print the edit distance between two strings.",
		Long: "`distance horse ros` prints 3. With --script the edit steps " +
			"follow, one per line.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b := []rune(args[0]), []rune(args[1])
			out := cmd.OutOrStdout()

			if script {
				al := editdistance.Align(a, b)
				fmt.Fprintln(out, al.Distance)
				for _, op := range al.Ops {
					fmt.Fprintln(out, formatOp(op, a, b))
				}

				return nil
			}

			var opts []editdistance.Option
			if rolling {
				opts = append(opts, editdistance.WithMemoryMode(editdistance.TwoRows))
			}
			if maxDist > 0 {
				opts = append(opts, editdistance.WithMaxDistance(maxDist))
			}
			fmt.Fprintln(out, editdistance.Distance(a, b, opts...))

			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVar(&rolling, "rolling", false, "use the two-row table")
	f.IntVar(&maxDist, "max", 0, "report max+1 once the distance exceeds max (0 = exact)")
	f.BoolVar(&script, "script", false, "also print the edit script")

	return cmd
}

// formatOp renders one edit step, e.g. "substitute h -> r".
func formatOp(op editdistance.Op, a, b []rune) string {
	switch op.Kind {
	case editdistance.Match:
		return fmt.Sprintf("%s %c", op.Kind, a[op.I])
	case editdistance.Substitute:
		return fmt.Sprintf("%s %c -> %c", op.Kind, a[op.I], b[op.J])
	case editdistance.Delete:
		return fmt.Sprintf("%s %c", op.Kind, a[op.I])
	default:
		return fmt.Sprintf("%s %c", op.Kind, b[op.J])
	}
}
