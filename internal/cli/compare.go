package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lkklausen/ironmax/internal/strength"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare all 1RM formulas at the same lift",
	Long: `Evaluate every estimation formula at the same weight/reps pair.

Example:
  ironmax-cli compare --weight 100 --reps 5`,
	RunE: runCompare,
}

var (
	compareWeight float64
	compareReps   int
)

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().Float64Var(&compareWeight, "weight", 0, "Weight lifted (required)")
	compareCmd.Flags().IntVar(&compareReps, "reps", 0, "Repetitions performed (required)")
	compareCmd.MarkFlagRequired("weight")
	compareCmd.MarkFlagRequired("reps")
}

func runCompare(cmd *cobra.Command, args []string) error {
	cmp, err := strength.EstimateAll(compareWeight, compareReps)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FORMULA\t1RM")
	fmt.Fprintf(w, "Epley\t%.1f\n", cmp.Epley)
	fmt.Fprintf(w, "Brzycki\t%.1f\n", cmp.Brzycki)
	fmt.Fprintf(w, "Lombardi\t%.1f\n", cmp.Lombardi)
	fmt.Fprintf(w, "O'Conner\t%.1f\n", cmp.OConner)
	fmt.Fprintf(w, "Average\t%.1f\n", cmp.Average)
	return w.Flush()
}
