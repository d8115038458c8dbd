package loads

import (
	"math"

	"github.com/alexiusacademia/goshaft/internal/shaft"
)

// Combination represents a service load combination for allowable stress design.
// The resulting total is the central point load applied to the shaft.
type Combination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead   float64 // D - Dead load (self weight, mounted parts)
	Live   float64 // L - Live load (operating load)
	Impact float64 // I - Impact/shock allowance
}

// ServiceCombinations used for shaft sizing with a safety factor on yield.
var ServiceCombinations = []Combination{
	{
		ID:          "1",
		Description: "D",
		Dead:        1.0,
	},
	{
		ID:          "2",
		Description: "D + L",
		Dead:        1.0,
		Live:        1.0,
	},
	{
		ID:          "3",
		Description: "D + L + I",
		Dead:        1.0,
		Live:        1.0,
		Impact:      1.0,
	},
}

// PointLoads holds unfactored central point loads (N) by load type.
type PointLoads struct {
	Dead   float64 `json:"dead" yaml:"dead"`
	Live   float64 `json:"live" yaml:"live"`
	Impact float64 `json:"impact" yaml:"impact"`
}

// IsZero reports whether no component load was given.
func (p PointLoads) IsZero() bool {
	return p.Dead == 0 && p.Live == 0 && p.Impact == 0
}

// Validate rejects negative or non-finite component loads.
func (p PointLoads) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"dead load", p.Dead},
		{"live load", p.Live},
		{"impact load", p.Impact},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &shaft.ValidationError{Field: f.name, Value: f.value, Reason: "must be a finite number"}
		}
		if f.value < 0 {
			return &shaft.ValidationError{Field: f.name, Value: f.value, Reason: "must not be negative"}
		}
	}
	return nil
}

// Total returns the combined point load for the combination.
func (c Combination) Total(p PointLoads) float64 {
	return c.Dead*p.Dead +
		c.Live*p.Live +
		c.Impact*p.Impact
}

// Governing finds the combination producing the largest point load.
// The first combination wins ties; with no positive total the first combination is returned.
func Governing(p PointLoads, combinations []Combination) (float64, Combination) {
	if len(combinations) == 0 {
		return 0, Combination{}
	}

	maxLoad := combinations[0].Total(p)
	governing := combinations[0]

	for _, combo := range combinations[1:] {
		total := combo.Total(p)
		if total > maxLoad {
			maxLoad = total
			governing = combo
		}
	}

	return maxLoad, governing
}
