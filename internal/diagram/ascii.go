package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ShaftDiagramData holds data for drawing a shaft loading diagram
type ShaftDiagramData struct {
	// Geometry (mm)
	Span     float64 // distance between supports
	Diameter float64 // shaft diameter

	// Loading
	Load      float64 // central point load (N)
	MaxMoment float64 // midspan bending moment (N·mm)

	// Stresses (N/mm²)
	AllowableStress float64
	BendingStress   float64
}

// DrawASCIIBeamDiagram creates an ASCII loading sketch of the shaft on two supports
// with its bending moment diagram underneath
func DrawASCIIBeamDiagram(data ShaftDiagramData) string {
	var sb strings.Builder

	width := 41 // odd so the load lands on a column
	mid := width / 2
	heightChars := 8

	sb.WriteString("\n")
	sb.WriteString("  LOADING DIAGRAM\n")
	sb.WriteString("  ───────────────\n\n")

	pad := strings.Repeat(" ", 3+mid)
	sb.WriteString(fmt.Sprintf("%sF = %.2f N\n", pad, data.Load))
	sb.WriteString(fmt.Sprintf("%s│\n", pad))
	sb.WriteString(fmt.Sprintf("%s▼\n", pad))
	sb.WriteString(fmt.Sprintf("   %s   Ø%.2f mm\n", strings.Repeat("═", width), data.Diameter))
	sb.WriteString(fmt.Sprintf("   △%s○\n", strings.Repeat(" ", width-2)))
	sb.WriteString(fmt.Sprintf("   A%sB\n", strings.Repeat(" ", width-2)))

	label := fmt.Sprintf(" L = %.2f mm ", data.Span)
	dash := width - 2 - utf8.RuneCountInString(label)
	if dash < 2 {
		dash = 2
	}
	left := dash / 2
	sb.WriteString(fmt.Sprintf("   ├%s%s%s┤\n", strings.Repeat("─", left), label, strings.Repeat("─", dash-left)))

	sb.WriteString("\n")
	sb.WriteString("  BENDING MOMENT DIAGRAM\n")
	sb.WriteString("  ──────────────────────\n\n")

	// Rows from the peak down; a column is filled when the normalized
	// moment at that position reaches the row level.
	for i := heightChars; i >= 1; i-- {
		level := float64(i) / float64(heightChars)
		var row strings.Builder
		for j := 0; j < width; j++ {
			x := float64(j) / float64(width-1)
			m := 2 * x
			if x > 0.5 {
				m = 2 * (1 - x)
			}
			if m >= level-1e-9 {
				row.WriteString("█")
			} else {
				row.WriteString(" ")
			}
		}
		line := strings.TrimRight(row.String(), " ")
		if i == heightChars {
			line += fmt.Sprintf("  ◄─ Mmax = %.2f N·mm", data.MaxMoment)
		}
		sb.WriteString("   " + line + "\n")
	}
	sb.WriteString(fmt.Sprintf("   %s\n", strings.Repeat("─", width)))

	// Legend
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  △ = Pinned support, ○ = Roller support\n")
	sb.WriteString(fmt.Sprintf("  M = F·L/4 at midspan = %.2f N·m\n", data.MaxMoment/1000))
	if data.AllowableStress > 0 {
		sb.WriteString(fmt.Sprintf("  σ = %.2f MPa ≤ σa = %.2f MPa\n", data.BendingStress, data.AllowableStress))
	}

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s║\n", maxLen-2, title))
	if len(lines) > 0 {
		sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	}
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
