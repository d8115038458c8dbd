package cmd

import (
	"fmt"
	"strconv"

	"github.com/alexiusacademia/goshaft/internal/units"
	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert VALUE FROM TO",
		Short: "Convert a length between mm, cm, m and in",
		Long: `Convert a length between units. CAD hosts commonly take model lengths
in centimeters, so a 500 mm shaft is extruded by 50 cm.

Examples:
  goshaft convert 500 mm cm
  goshaft convert 1.25 in mm`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}
			from, err := units.ParseLength(args[1])
			if err != nil {
				return err
			}
			to, err := units.ParseLength(args[2])
			if err != nil {
				return err
			}
			out, err := units.Convert(value, from, to)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g %s = %g %s\n", value, from, out, to)
			return nil
		},
	}
}
