package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	steelFill   = color.RGBA{R: 176, G: 196, B: 222, A: 200}
	steelEdge   = color.RGBA{R: 25, G: 25, B: 112, A: 255}
	dimColor    = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	loadColor   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	momentColor = color.RGBA{R: 100, G: 149, B: 237, A: 150}
)

// ExportShaftDrawing exports a dimensioned elevation of the shaft on its supports.
// The format follows the file extension (png, svg, pdf); other names get ".png" appended.
// It returns the path actually written.
func ExportShaftDrawing(data ShaftDiagramData, filename string) (string, error) {
	if data.Span <= 0 || data.Diameter <= 0 {
		return "", fmt.Errorf("invalid shaft geometry: L=%.2f mm, d=%.2f mm", data.Span, data.Diameter)
	}

	p := plot.New()
	p.Title.Text = "Shaft Elevation"
	p.X.Label.Text = "Length (mm)"
	p.Y.Label.Text = "Height (mm)"

	r := data.Diameter / 2
	L := data.Span

	// Shaft body
	body, err := plotter.NewPolygon(plotter.XYs{
		{X: 0, Y: -r},
		{X: L, Y: -r},
		{X: L, Y: r},
		{X: 0, Y: r},
	})
	if err != nil {
		return "", err
	}
	body.Color = steelFill
	body.LineStyle.Color = steelEdge
	body.LineStyle.Width = vg.Points(2)
	p.Add(body)

	// Centerline
	center, err := plotter.NewLine(plotter.XYs{{X: -0.05 * L, Y: 0}, {X: 1.05 * L, Y: 0}})
	if err != nil {
		return "", err
	}
	center.LineStyle.Color = color.Gray{Y: 96}
	center.LineStyle.Dashes = []vg.Length{vg.Points(8), vg.Points(3), vg.Points(2), vg.Points(3)}
	p.Add(center)

	// Supports
	supports, err := plotter.NewScatter(plotter.XYs{{X: 0, Y: -r}, {X: L, Y: -r}})
	if err != nil {
		return "", err
	}
	supports.GlyphStyle.Shape = draw.TriangleGlyph{}
	supports.GlyphStyle.Radius = vg.Points(7)
	supports.GlyphStyle.Color = color.Black
	p.Add(supports)

	// Central load
	arrowTop := r + 3*data.Diameter
	load, err := plotter.NewLine(plotter.XYs{{X: L / 2, Y: arrowTop}, {X: L / 2, Y: r}})
	if err != nil {
		return "", err
	}
	load.LineStyle.Color = loadColor
	load.LineStyle.Width = vg.Points(2)
	p.Add(load)

	head, err := plotter.NewScatter(plotter.XYs{{X: L / 2, Y: r}})
	if err != nil {
		return "", err
	}
	head.GlyphStyle.Shape = draw.PyramidGlyph{}
	head.GlyphStyle.Radius = vg.Points(5)
	head.GlyphStyle.Color = loadColor
	p.Add(head)

	// Length dimension below, diameter dimension to the right
	dimY := -r - 2*data.Diameter
	dimX := L + 0.1*L
	dims := []plotter.XYs{
		{{X: 0, Y: dimY}, {X: L, Y: dimY}},
		{{X: 0, Y: -r}, {X: 0, Y: dimY}},
		{{X: L, Y: -r}, {X: L, Y: dimY}},
		{{X: dimX, Y: -r}, {X: dimX, Y: r}},
		{{X: L, Y: r}, {X: dimX, Y: r}},
		{{X: L, Y: -r}, {X: dimX, Y: -r}},
	}
	for _, pts := range dims {
		l, err := plotter.NewLine(pts)
		if err != nil {
			return "", err
		}
		l.LineStyle.Color = dimColor
		l.LineStyle.Width = vg.Points(1)
		p.Add(l)
	}

	labels := []struct {
		x, y float64
		text string
	}{
		{L / 2, dimY - 0.5*data.Diameter, fmt.Sprintf("L = %.2f mm", L)},
		{dimX + 0.02*L, 0, fmt.Sprintf("Ø%.2f mm", data.Diameter)},
		{L / 2, arrowTop + 0.5*data.Diameter, fmt.Sprintf("F = %.2f N", data.Load)},
	}
	for _, lbl := range labels {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: lbl.x, Y: lbl.y}},
			Labels: []string{lbl.text},
		})
		if err != nil {
			return "", err
		}
		p.Add(l)
	}

	p.X.Min = -0.1 * L
	p.X.Max = 1.35 * L

	return save(p, 8*vg.Inch, 4*vg.Inch, filename)
}

// ExportMomentDiagram exports the bending moment diagram along the span.
func ExportMomentDiagram(data ShaftDiagramData, filename string) (string, error) {
	if data.Span <= 0 {
		return "", fmt.Errorf("invalid span: %.2f mm", data.Span)
	}

	p := plot.New()
	p.Title.Text = "Bending Moment Diagram"
	p.X.Label.Text = "Position (mm)"
	p.Y.Label.Text = "Moment (N·m)"

	mMax := data.MaxMoment / 1000
	pts := plotter.XYs{
		{X: 0, Y: 0},
		{X: data.Span / 2, Y: mMax},
		{X: data.Span, Y: 0},
	}

	area, err := plotter.NewPolygon(pts)
	if err != nil {
		return "", err
	}
	area.Color = momentColor
	area.LineStyle.Color = steelEdge
	area.LineStyle.Width = vg.Points(2)
	p.Add(area)

	peak, err := plotter.NewScatter(plotter.XYs{pts[1]})
	if err != nil {
		return "", err
	}
	peak.GlyphStyle.Color = loadColor
	peak.GlyphStyle.Radius = vg.Points(4)
	p.Add(peak)

	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{pts[1]},
		Labels: []string{fmt.Sprintf("Mmax = %.2f N·m", mMax)},
	})
	if err != nil {
		return "", err
	}
	p.Add(lbl)

	return save(p, 8*vg.Inch, 5*vg.Inch, filename)
}

func save(p *plot.Plot, width, height vg.Length, filename string) (string, error) {
	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	if err := p.Save(width, height, filename); err != nil {
		return "", err
	}
	return filename, nil
}
