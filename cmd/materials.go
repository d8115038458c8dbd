package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goshaft/internal/material"
	"github.com/spf13/cobra"
)

func newMaterialsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "materials",
		Short: "List the built-in shaft material grades",
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			printHeader(w, "SHAFT MATERIALS")

			t := newTable(w)
			fmt.Fprintf(t, "  Grade\tStandard\tfy (N/mm²)\tfu (N/mm²)\tDescription\n")
			fmt.Fprintf(t, "  ─────\t────────\t──────────\t──────────\t───────────\n")
			for _, m := range material.All() {
				marker := ""
				if m.Grade == material.DefaultGrade {
					marker = " (default)"
				}
				fmt.Fprintf(t, "  %s\t%s\t%.0f\t%.0f\t%s%s\n", m.Grade, m.Standard, m.YieldStrength, m.TensileStrength, m.Description, marker)
			}
			t.Flush()
			fmt.Fprintln(w)
			fmt.Fprintf(w, "  E = %.0f N/mm², ρ = %.0f kg/m³ for all grades\n\n", material.Es, material.Rho)
		},
	}
}
