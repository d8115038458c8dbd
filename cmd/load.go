package cmd

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/goshaft/internal/loads"
	"github.com/spf13/cobra"
)

func newLoadCmd() *cobra.Command {
	var (
		pointLoads loads.PointLoads
		showAll    bool
	)

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Calculate the governing point load from service combinations",
		Long: `Calculate the design point load (F) for shaft sizing from unfactored
dead, live and impact loads acting at midspan.

Load Types:
  D  - Dead load (self weight of mounted parts)
  L  - Live load (operating load)
  I  - Impact/shock allowance

Combinations: D, D + L, D + L + I

Examples:
  # Pulley weight plus belt pull
  goshaft load --dead 400 --live 600

  # Show all combinations
  goshaft load --dead 400 --live 600 --impact 150 --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pointLoads.Validate(); err != nil {
				return err
			}
			if pointLoads.IsZero() {
				return errors.New("provide at least one of --dead, --live, --impact")
			}

			w := cmd.OutOrStdout()
			printHeader(w, "SERVICE POINT LOAD CALCULATION")

			printSection(w, "UNFACTORED LOADS (N):")
			t := newTable(w)
			if pointLoads.Dead != 0 {
				fmt.Fprintf(t, "  Dead Load (D):\t%.2f\n", pointLoads.Dead)
			}
			if pointLoads.Live != 0 {
				fmt.Fprintf(t, "  Live Load (L):\t%.2f\n", pointLoads.Live)
			}
			if pointLoads.Impact != 0 {
				fmt.Fprintf(t, "  Impact Load (I):\t%.2f\n", pointLoads.Impact)
			}
			t.Flush()
			fmt.Fprintln(w)

			maxLoad, governing := loads.Governing(pointLoads, loads.ServiceCombinations)

			if showAll {
				printSection(w, "LOAD COMBINATIONS:")
				t = newTable(w)
				fmt.Fprintf(t, "  #\tCombination\tF (N)\n")
				fmt.Fprintf(t, "  ─\t───────────\t─────\n")
				for _, combo := range loads.ServiceCombinations {
					marker := ""
					if combo.ID == governing.ID {
						marker = " ← GOVERNS"
					}
					fmt.Fprintf(t, "  %s\t%s\t%.2f%s\n", combo.ID, combo.Description, combo.Total(pointLoads), marker)
				}
				t.Flush()
				fmt.Fprintln(w)
			}

			printSection(w, "RESULT:")
			fmt.Fprintf(w, "  Governing Combination: %s (%s)\n\n", governing.ID, governing.Description)
			fmt.Fprintf(w, "  ╔═══════════════════════════════════╗\n")
			fmt.Fprintf(w, "  ║  DESIGN LOAD (F) = %.2f N\n", maxLoad)
			fmt.Fprintf(w, "  ╚═══════════════════════════════════╝\n")
			fmt.Fprintln(w)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&pointLoads.Dead, "dead", "D", 0, "Dead point load (N)")
	cmd.Flags().Float64VarP(&pointLoads.Live, "live", "l", 0, "Live point load (N)")
	cmd.Flags().Float64VarP(&pointLoads.Impact, "impact", "i", 0, "Impact point load (N)")
	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show all load combination results")

	return cmd
}
