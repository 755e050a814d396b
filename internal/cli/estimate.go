package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lkklausen/ironmax/internal/strength"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate a one-rep max from a submaximal lift",
	Long: `Estimate a one-rep max from a weight/reps pair.

Examples:
  ironmax-cli estimate --weight 100 --reps 5
  ironmax-cli estimate --weight 142.5 --reps 3 --formula Brzycki`,
	RunE: runEstimate,
}

var (
	estimateWeight  float64
	estimateReps    int
	estimateFormula string
)

func init() {
	rootCmd.AddCommand(estimateCmd)

	estimateCmd.Flags().Float64Var(&estimateWeight, "weight", 0, "Weight lifted (required)")
	estimateCmd.Flags().IntVar(&estimateReps, "reps", 0, "Repetitions performed (required)")
	estimateCmd.Flags().StringVar(&estimateFormula, "formula", "Average", "Estimation formula (Average, Epley, Brzycki, Lombardi, O'Conner)")
	estimateCmd.MarkFlagRequired("weight")
	estimateCmd.MarkFlagRequired("reps")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	formula, err := strength.ParseFormula(estimateFormula)
	if err != nil {
		return err
	}

	oneRM, err := strength.Estimate(estimateWeight, estimateReps, formula)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Estimated 1RM (%s): %.1f\n", formula, oneRM)
	return nil
}
