package shaft

// Preferred bright bar stock diameters (mm)
var StockDiameters = []float64{
	6, 8, 10, 12, 14, 16, 18, 20, 22, 25, 28, 30, 32, 35, 38, 40, 45, 50,
	55, 60, 65, 70, 75, 80, 85, 90, 95, 100, 110, 120, 130, 140, 150, 160,
	180, 200, 220, 250, 280, 300,
}

// StockOption is a standard bar diameter checked against the design moment.
type StockOption struct {
	Diameter      float64 `json:"diameter" yaml:"diameter"`             // mm
	BendingStress float64 `json:"bending_stress" yaml:"bending_stress"` // N/mm²
	Utilization   float64 `json:"utilization" yaml:"utilization"`       // σ/σa
}

// StockOptions returns up to n stock diameters at or above the required diameter,
// smallest first.
func (r *Result) StockOptions(n int) []StockOption {
	var options []StockOption
	for _, d := range StockDiameters {
		if len(options) >= n {
			break
		}
		if d < r.RequiredDiameter {
			continue
		}
		stress := BendingStress(r.MaxBendingMoment, d)
		options = append(options, StockOption{
			Diameter:      d,
			BendingStress: stress,
			Utilization:   stress / r.AllowableStress,
		})
	}
	return options
}
