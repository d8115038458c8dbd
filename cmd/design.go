package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/alexiusacademia/goshaft/internal/config"
	"github.com/alexiusacademia/goshaft/internal/diagram"
	"github.com/alexiusacademia/goshaft/internal/geometry"
	"github.com/alexiusacademia/goshaft/internal/loads"
	"github.com/alexiusacademia/goshaft/internal/material"
	"github.com/alexiusacademia/goshaft/internal/shaft"
	"github.com/alexiusacademia/goshaft/internal/units"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

type designOptions struct {
	cfg config.Config

	load       float64
	distance   float64
	components loads.PointLoads

	showDiagram bool
	drawingFile string
	momentFile  string
	stlFile     string
	stlBinary   bool
	name        string
}

// designReport is the structured (json/yaml) form of a design run.
type designReport struct {
	Material    material.Material    `json:"material" yaml:"material"`
	Combination string               `json:"load_combination,omitempty" yaml:"load_combination,omitempty"`
	Result      *shaft.Result        `json:"result" yaml:"result"`
	Stock       []shaft.StockOption  `json:"stock_options,omitempty" yaml:"stock_options,omitempty"`
	Dimensions  []geometry.Dimension `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
	MassKg      float64              `json:"mass_kg,omitempty" yaml:"mass_kg,omitempty"`
	Exports     []string             `json:"exports,omitempty" yaml:"exports,omitempty"`
}

func newDesignCmd() *cobra.Command {
	opts := &designOptions{cfg: config.DefaultConfig(), name: "shaft"}

	cmd := &cobra.Command{
		Use:   "design",
		Short: "Compute the required diameter of a solid shaft",
		Long: `Calculate the required diameter (d) of a solid circular shaft on two
supports carrying a central point load (F) over a span (L).

  M  = F·L/4            midspan bending moment
  σa = fy/n             allowable bending stress
  d  = ∛(32·M/(π·σa))   required diameter

The load is either given directly with --load or resolved from dead,
live and impact loads using the governing service combination.

Examples:
  # 1000 N at the middle of a 500 mm span, S235 steel, safety factor 2
  goshaft design --load 1000 --distance 500

  # C45 steel, safety factor 3, with loading diagram
  goshaft design -F 2500 -L 800 --material C45 --sf 3 --diagram

  # Resolve the load and export an STL solid and a drawing
  goshaft design --dead 400 --live 600 -L 500 --stl shaft.stl -o shaft.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDesign(cmd, opts)
		},
	}

	cmd.Flags().Float64VarP(&opts.load, "load", "F", 0, "Central point load F (N)")
	cmd.Flags().Float64VarP(&opts.distance, "distance", "L", 0, "Distance between supports L (mm) [required]")
	cmd.Flags().Float64Var(&opts.components.Dead, "dead", 0, "Dead point load D (N)")
	cmd.Flags().Float64Var(&opts.components.Live, "live", 0, "Live point load L (N)")
	cmd.Flags().Float64Var(&opts.components.Impact, "impact", 0, "Impact point load I (N)")
	cmd.MarkFlagRequired("distance")

	addMaterialFlags(cmd, &opts.cfg)

	cmd.Flags().BoolVar(&opts.showDiagram, "diagram", false, "Show ASCII loading and bending moment diagram")
	cmd.Flags().StringVarP(&opts.drawingFile, "output", "o", "", "Export dimensioned drawing to file (png, svg, pdf)")
	cmd.Flags().StringVar(&opts.momentFile, "moment-output", "", "Export bending moment diagram to file (png, svg, pdf)")
	cmd.Flags().StringVar(&opts.stlFile, "stl", "", "Export the shaft body as an STL file")
	cmd.Flags().BoolVar(&opts.stlBinary, "stl-binary", false, "Write the STL file in binary instead of ASCII")
	cmd.Flags().StringVar(&opts.name, "name", opts.name, "Solid name written to the STL file")
	cmd.Flags().IntVar(&opts.cfg.Segments, "segments", opts.cfg.Segments, "Facets around the circumference in STL output")
	cmd.Flags().IntVar(&opts.cfg.StockCount, "stock", opts.cfg.StockCount, "Number of stock bar diameters to suggest")

	addOutputFlags(cmd, &opts.cfg)

	return cmd
}

// resolveLoad returns the design point load and the governing combination, if any.
func resolveLoad(cmd *cobra.Command, opts *designOptions) (float64, string, error) {
	if err := opts.components.Validate(); err != nil {
		return 0, "", err
	}
	direct := cmd.Flags().Changed("load")
	if direct && !opts.components.IsZero() {
		return 0, "", errors.New("use either --load or --dead/--live/--impact, not both")
	}
	if direct {
		return opts.load, "", nil
	}
	if opts.components.IsZero() {
		return 0, "", errors.New("provide --load or at least one of --dead, --live, --impact")
	}
	total, combo := loads.Governing(opts.components, loads.ServiceCombinations)
	return total, combo.Description, nil
}

func runDesign(cmd *cobra.Command, opts *designOptions) error {
	log, err := resolveConfig(cmd, &opts.cfg)
	if err != nil {
		return err
	}

	mat, err := opts.cfg.ResolveMaterial()
	if err != nil {
		return err
	}

	load, combination, err := resolveLoad(cmd, opts)
	if err != nil {
		return err
	}

	in := shaft.Input{
		Load:            load,
		SupportDistance: opts.distance,
		YieldStrength:   mat.YieldStrength,
		SafetyFactor:    opts.cfg.SafetyFactor,
	}
	result, err := shaft.Design(in)
	if err != nil {
		return err
	}
	log.Debug().
		Float64("load_n", in.Load).
		Float64("span_mm", in.SupportDistance).
		Float64("moment_nmm", result.MaxBendingMoment).
		Float64("allowable_mpa", result.AllowableStress).
		Float64("diameter_mm", result.RequiredDiameter).
		Msg("shaft sized")

	report := designReport{
		Material:    mat,
		Combination: combination,
		Result:      result,
		Stock:       result.StockOptions(opts.cfg.StockCount),
	}

	body, bodyErr := geometry.FromResult(result, opts.cfg.Segments)
	if bodyErr == nil {
		report.Dimensions = body.Dimensions()
		report.MassKg = body.Mass(mat.Density)
	}

	exports, err := exportDesign(opts, result, body, bodyErr)
	if err != nil {
		return err
	}
	report.Exports = exports
	for _, path := range exports {
		log.Info().Str("path", path).Msg("exported")
	}

	w := cmd.OutOrStdout()
	if opts.cfg.Format != config.FormatText {
		return writeStructured(w, opts.cfg.Format, report)
	}

	printDesignReport(w, opts, report)
	return nil
}

func exportDesign(opts *designOptions, result *shaft.Result, body geometry.Cylinder, bodyErr error) ([]string, error) {
	var exports []string

	data := diagramData(result)

	if opts.stlFile != "" {
		if bodyErr != nil {
			return nil, fmt.Errorf("export stl: %w", bodyErr)
		}
		if err := geometry.ExportSTL(opts.stlFile, opts.name, body, opts.stlBinary); err != nil {
			return nil, fmt.Errorf("export stl: %w", err)
		}
		exports = append(exports, opts.stlFile)
	}

	if opts.drawingFile != "" {
		path, err := diagram.ExportShaftDrawing(data, opts.drawingFile)
		if err != nil {
			return nil, fmt.Errorf("export drawing: %w", err)
		}
		exports = append(exports, path)
	}

	if opts.momentFile != "" {
		path, err := diagram.ExportMomentDiagram(data, opts.momentFile)
		if err != nil {
			return nil, fmt.Errorf("export moment diagram: %w", err)
		}
		exports = append(exports, path)
	}

	return exports, nil
}

func diagramData(r *shaft.Result) diagram.ShaftDiagramData {
	data := diagram.ShaftDiagramData{
		Span:            r.Length,
		Diameter:        r.RequiredDiameter,
		Load:            r.Input.Load,
		MaxMoment:       r.MaxBendingMoment,
		AllowableStress: r.AllowableStress,
	}
	if r.RequiredDiameter > 0 {
		data.BendingStress = shaft.BendingStress(r.MaxBendingMoment, r.RequiredDiameter)
	}
	return data
}

func printDesignReport(w io.Writer, opts *designOptions, report designReport) {
	r := report.Result
	green := color.New(color.FgGreen, color.Bold)

	printHeader(w, "SOLID SHAFT DESIGN - BENDING")

	printSection(w, "INPUT DATA:")
	t := newTable(w)
	if report.Combination != "" {
		fmt.Fprintf(t, "  Load Combination:\t%s\n", report.Combination)
	}
	fmt.Fprintf(t, "  Point Load (F):\t%.2f N\t(%.3f kN)\n", r.Input.Load, units.NToKN(r.Input.Load))
	fmt.Fprintf(t, "  Support Distance (L):\t%.2f mm\t(%.3f m)\n", r.Input.SupportDistance, units.MMToM(r.Input.SupportDistance))
	fmt.Fprintf(t, "  Material:\t%s (%s)\n", report.Material.Grade, report.Material.Standard)
	fmt.Fprintf(t, "  Yield Strength (fy):\t%.1f N/mm²\n", r.Input.YieldStrength)
	fmt.Fprintf(t, "  Safety Factor (n):\t%.2f\n", r.Input.SafetyFactor)
	t.Flush()
	fmt.Fprintln(w)

	printSection(w, "CALCULATION:")
	t = newTable(w)
	fmt.Fprintf(t, "  Max bending moment (M = F·L/4):\t%.2f N·mm\t(%.2f N·m, %.4f kN·m)\n", r.MaxBendingMoment, units.NmmToNm(r.MaxBendingMoment), units.NmmToKNm(r.MaxBendingMoment))
	fmt.Fprintf(t, "  Allowable stress (σa = fy/n):\t%.2f N/mm²\n", r.AllowableStress)
	fmt.Fprintf(t, "  Required diameter (d = ∛(32M/πσa)):\t%.4f mm\n", r.RequiredDiameter)
	fmt.Fprintf(t, "  CAD extrude length / radius:\t%.2f cm / %.4f cm\n", units.MMToCM(r.Length), units.MMToCM(r.RequiredDiameter/2))
	t.Flush()
	fmt.Fprintln(w)

	printSection(w, "DESIGN RESULT:")
	fmt.Fprint(w, diagram.DrawSummaryBox("SHAFT", []string{
		fmt.Sprintf("Shaft Diameter: %.2f mm", r.RequiredDiameter),
		fmt.Sprintf("Shaft Length:   %.2f mm", r.Length),
	}))
	fmt.Fprintln(w)
	if report.MassKg > 0 {
		fmt.Fprintf(w, "  Mass at required diameter: %.3f kg\n\n", report.MassKg)
	}

	if len(report.Stock) > 0 {
		printSection(w, "SUGGESTED STOCK DIAMETERS:")
		t = newTable(w)
		fmt.Fprintf(t, "  Diameter\tσ (N/mm²)\tUtilization\n")
		fmt.Fprintf(t, "  ────────\t─────────\t───────────\n")
		for _, s := range report.Stock {
			fmt.Fprintf(t, "  Ø%.0f mm\t%.2f\t%s\n", s.Diameter, s.BendingStress, green.Sprintf("%.1f%%", s.Utilization*100))
		}
		t.Flush()
		fmt.Fprintln(w)
	}

	if opts.showDiagram {
		fmt.Fprintln(w, diagram.DrawASCIIBeamDiagram(diagramData(r)))
	}

	for _, path := range report.Exports {
		fmt.Fprintf(w, "Exported: %s\n", path)
	}
}
