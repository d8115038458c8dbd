package cmd

import (
	"fmt"
	"io"

	"github.com/alexiusacademia/goshaft/internal/config"
	"github.com/alexiusacademia/goshaft/internal/diagram"
	"github.com/alexiusacademia/goshaft/internal/material"
	"github.com/alexiusacademia/goshaft/internal/shaft"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type checkOptions struct {
	cfg config.Config

	load     float64
	distance float64
	diameter float64
}

type checkReport struct {
	Material material.Material  `json:"material" yaml:"material"`
	Check    *shaft.CheckResult `json:"check" yaml:"check"`
}

func newCheckCmd() *cobra.Command {
	opts := &checkOptions{cfg: config.DefaultConfig()}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the bending stress of a shaft of given diameter",
		Long: `Calculate the bending stress (σ) of a solid circular shaft of a given
diameter and compare it to the allowable stress σa = fy/n.

  σ = 32·M / (π·d³)

Examples:
  # Check a Ø25 mm shaft under 1000 N at midspan of a 500 mm span
  goshaft check --load 1000 --distance 500 --diameter 25

  # Same shaft in S355 with safety factor 2.5
  goshaft check -F 1000 -L 500 -d 25 --material S355 --sf 2.5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().Float64VarP(&opts.load, "load", "F", 0, "Central point load F (N) [required]")
	cmd.Flags().Float64VarP(&opts.distance, "distance", "L", 0, "Distance between supports L (mm) [required]")
	cmd.Flags().Float64VarP(&opts.diameter, "diameter", "d", 0, "Shaft diameter d (mm) [required]")
	cmd.MarkFlagRequired("load")
	cmd.MarkFlagRequired("distance")
	cmd.MarkFlagRequired("diameter")

	addMaterialFlags(cmd, &opts.cfg)
	addOutputFlags(cmd, &opts.cfg)

	return cmd
}

func runCheck(cmd *cobra.Command, opts *checkOptions) error {
	log, err := resolveConfig(cmd, &opts.cfg)
	if err != nil {
		return err
	}

	mat, err := opts.cfg.ResolveMaterial()
	if err != nil {
		return err
	}

	in := shaft.Input{
		Load:            opts.load,
		SupportDistance: opts.distance,
		YieldStrength:   mat.YieldStrength,
		SafetyFactor:    opts.cfg.SafetyFactor,
	}
	result, err := shaft.Check(in, opts.diameter)
	if err != nil {
		return err
	}
	log.Debug().
		Float64("diameter_mm", result.Diameter).
		Float64("stress_mpa", result.BendingStress).
		Float64("utilization", result.Utilization).
		Bool("adequate", result.IsAdequate).
		Msg("shaft checked")

	w := cmd.OutOrStdout()
	if opts.cfg.Format != config.FormatText {
		return writeStructured(w, opts.cfg.Format, checkReport{Material: mat, Check: result})
	}

	printCheckReport(w, mat, result)
	return nil
}

func printCheckReport(w io.Writer, mat material.Material, r *shaft.CheckResult) {
	printHeader(w, "SOLID SHAFT CHECK - BENDING")

	printSection(w, "INPUT DATA:")
	t := newTable(w)
	fmt.Fprintf(t, "  Point Load (F):\t%.2f N\n", r.Input.Load)
	fmt.Fprintf(t, "  Support Distance (L):\t%.2f mm\n", r.Input.SupportDistance)
	fmt.Fprintf(t, "  Diameter (d):\t%.2f mm\n", r.Diameter)
	fmt.Fprintf(t, "  Material:\t%s (%s)\n", mat.Grade, mat.Standard)
	fmt.Fprintf(t, "  Yield Strength (fy):\t%.1f N/mm²\n", r.Input.YieldStrength)
	fmt.Fprintf(t, "  Safety Factor (n):\t%.2f\n", r.Input.SafetyFactor)
	t.Flush()
	fmt.Fprintln(w)

	printSection(w, "STRESS ANALYSIS:")
	t = newTable(w)
	fmt.Fprintf(t, "  Max bending moment (M):\t%.2f N·mm\n", r.MaxBendingMoment)
	fmt.Fprintf(t, "  Bending stress (σ = 32M/πd³):\t%.2f N/mm²\n", r.BendingStress)
	fmt.Fprintf(t, "  Allowable stress (σa):\t%.2f N/mm²\n", r.AllowableStress)
	fmt.Fprintf(t, "  Utilization (σ/σa):\t%.1f%%\n", r.Utilization*100)
	if r.AchievedSafetyFactor > 0 {
		fmt.Fprintf(t, "  Achieved safety factor (fy/σ):\t%.2f\n", r.AchievedSafetyFactor)
	}
	fmt.Fprintf(t, "  Required diameter:\t%.2f mm\n", r.RequiredDiameter)
	t.Flush()
	fmt.Fprintln(w)

	printSection(w, "CHECK RESULT:")
	if r.IsAdequate {
		fmt.Fprint(w, diagram.DrawSummaryBox("SECTION OK", []string{
			fmt.Sprintf("σ = %.2f N/mm² ≤ σa = %.2f N/mm²", r.BendingStress, r.AllowableStress),
		}))
		fmt.Fprintln(w)
		color.New(color.FgGreen).Fprintf(w, "  Status: %s\n", r.Message)
	} else {
		fmt.Fprint(w, diagram.DrawSummaryBox("SECTION NOT ADEQUATE", []string{
			fmt.Sprintf("σ = %.2f N/mm² > σa = %.2f N/mm²", r.BendingStress, r.AllowableStress),
		}))
		fmt.Fprintln(w)
		color.New(color.FgRed).Fprintf(w, "  Status: %s\n", r.Message)
	}
	fmt.Fprintln(w)
}
