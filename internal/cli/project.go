package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/lkklausen/ironmax/internal/strength"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Project strength growth over a training block",
	Long: `Estimate a current 1RM and project its compound weekly growth.

The optimistic and conservative series run at 1.5x and 0.5x the combined
weekly rate.

Examples:
  ironmax-cli project --weight 100 --reps 5
  ironmax-cli project --weight 100 --reps 5 --experience Intermediate --nutrition Maintenance --weeks 12`,
	RunE: runProject,
}

var (
	projectWeight     float64
	projectReps       int
	projectFormula    string
	projectExperience string
	projectNutrition  string
	projectWeeks      int
)

func init() {
	rootCmd.AddCommand(projectCmd)

	projectCmd.Flags().Float64Var(&projectWeight, "weight", 0, "Weight lifted (required)")
	projectCmd.Flags().IntVar(&projectReps, "reps", 0, "Repetitions performed (required)")
	projectCmd.Flags().StringVar(&projectFormula, "formula", "Average", "Estimation formula (Average, Epley, Brzycki, Lombardi, O'Conner)")
	projectCmd.Flags().StringVar(&projectExperience, "experience", "Beginner", "Experience level (Beginner, Intermediate, Advanced, Elite)")
	projectCmd.Flags().StringVar(&projectNutrition, "nutrition", "Surplus", "Nutrition status (Surplus, Maintenance, Deficit)")
	projectCmd.Flags().IntVar(&projectWeeks, "weeks", 8, "Projection horizon in weeks")
	projectCmd.MarkFlagRequired("weight")
	projectCmd.MarkFlagRequired("reps")
}

func runProject(cmd *cobra.Command, args []string) error {
	formula, err := strength.ParseFormula(projectFormula)
	if err != nil {
		return err
	}
	exp, err := strength.ParseExperience(projectExperience)
	if err != nil {
		return err
	}
	nut, err := strength.ParseNutrition(projectNutrition)
	if err != nil {
		return err
	}

	oneRM, err := strength.Estimate(projectWeight, projectReps, formula)
	if err != nil {
		return err
	}

	proj, err := strength.ProjectProfile(oneRM, exp, nut, projectWeeks)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Current 1RM (%s): %.1f\n", formula, oneRM)
	fmt.Fprintf(out, "Projected 1RM (week %d): %.1f (+%.1f)\n", projectWeeks, proj.Final().Average, proj.Gain())
	fmt.Fprintf(out, "Weekly growth rate: %.2f%%\n\n", proj.RateAverage*100)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WEEK\tESTIMATE\tOPTIMISTIC\tCONSERVATIVE")
	for _, row := range proj.Rows {
		fmt.Fprintf(w, "%d\t%.1f\t%.1f\t%.1f\n", row.Week, row.Average, row.Optimistic, row.Conservative)
	}
	return w.Flush()
}
