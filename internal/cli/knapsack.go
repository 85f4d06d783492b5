package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvexact/knapsack"
)

func newKnapsackCommand() *cobra.Command {
	var (
		weights  []int
		values   []int
		capacity int
		strategy string
		items    bool
	)
	cmd := &cobra.Command{
		Use:   "knapsack",
		Short: "Solve a 0/1 knapsack instance.",
		Long: "`knapsack --weights 10,20,30 --values 60,100,120 --capacity 50` " +
			"prints the best total value.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if items {
				sel, err := knapsack.Select(weights, values, capacity)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "value=%d weight=%d items=%v\n", sel.Value, sel.Weight, sel.Items)

				return nil
			}

			s, err := knapsack.ParseStrategy(strategy)
			if err != nil {
				return err
			}
			best, err := knapsack.MaxValue(weights, values, capacity, knapsack.WithStrategy(s))
			if err != nil {
				return err
			}
			fmt.Fprintln(out, best)

			return nil
		},
	}

	f := cmd.Flags()
	f.IntSliceVar(&weights, "weights", nil, "comma-separated item weights")
	f.IntSliceVar(&values, "values", nil, "comma-separated item values")
	f.IntVar(&capacity, "capacity", 0, "knapsack capacity")
	f.StringVar(&strategy, "strategy", knapsack.Table.String(), "DP layout: table or rolling")
	f.BoolVar(&items, "items", false, "print the chosen items (always uses the table)")
	_ = cmd.MarkFlagRequired("capacity")

	return cmd
}
