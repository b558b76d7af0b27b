package main

import (
	"fmt"

	"arraybench/internal/benchmark"
	"arraybench/internal/catalogue"
	"arraybench/internal/ui"

	"github.com/spf13/cobra"
)

const defaultThreshold = 10.0

func newCompareCmd() *cobra.Command {
	var threshold float64
	var failOnRegression bool

	cmd := &cobra.Command{
		Use:   "compare <baseline.csv> <current.csv>",
		Short: "Compare two result files case by case",
		Long: `Reads two result files written by arraybench, pairs their rows by
position with the catalogue labels and prints the change in mean time.
Changes larger than --threshold percent are highlighted.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			labels, err := catalogue.Labels()
			if err != nil {
				return err
			}
			prev, err := benchmark.ReadTableFile(args[0])
			if err != nil {
				return err
			}
			curr, err := benchmark.ReadTableFile(args[1])
			if err != nil {
				return err
			}
			comps, err := benchmark.Compare(labels, prev, curr)
			if err != nil {
				return err
			}

			regressions, err := ui.RenderComparisons(cmd.OutOrStdout(), comps, threshold)
			if err != nil {
				return err
			}
			if failOnRegression && regressions > 0 {
				return fmt.Errorf("%d case(s) regressed by more than %.1f%%", regressions, threshold)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&threshold, "threshold", defaultThreshold, "Percentage threshold for regression warning")
	cmd.Flags().BoolVar(&failOnRegression, "fail", false, "Exit non-zero when any case regressed")
	return cmd
}
