package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ironmax-cli",
	Short: "One-rep max estimation and strength projection",
	Long: `ironmax-cli estimates a one-repetition maximum (1RM) from a submaximal
lift and projects its growth over a training block.

Estimates use the Epley, Brzycki, Lombardi, and O'Conner formulas (or their
average); projections compound a weekly growth rate derived from the
athlete's experience level and nutrition status.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
