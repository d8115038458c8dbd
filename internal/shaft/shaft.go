package shaft

import (
	"math"

	"github.com/alexiusacademia/goshaft/internal/material"
)

// Input holds the design inputs for a solid circular shaft on two supports
// with a central point load.
type Input struct {
	Load            float64 `json:"load" yaml:"load"`                         // F (N)
	SupportDistance float64 `json:"support_distance" yaml:"support_distance"` // L (mm)
	YieldStrength   float64 `json:"yield_strength" yaml:"yield_strength"`     // fy (N/mm²)
	SafetyFactor    float64 `json:"safety_factor" yaml:"safety_factor"`       // n
}

// DefaultInput returns an Input with S235 yield strength and a safety factor of 2.
func DefaultInput(load, supportDistance float64) Input {
	return Input{
		Load:            load,
		SupportDistance: supportDistance,
		YieldStrength:   material.Default().YieldStrength,
		SafetyFactor:    material.DefaultSafetyFactor,
	}
}

// Validate checks that the input can produce a meaningful diameter.
func (in Input) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"load", in.Load},
		{"support distance", in.SupportDistance},
		{"yield strength", in.YieldStrength},
		{"safety factor", in.SafetyFactor},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &ValidationError{Field: f.name, Value: f.value, Reason: "must be a finite number"}
		}
	}

	if in.SafetyFactor <= 0 {
		return &ValidationError{Field: "safety factor", Value: in.SafetyFactor, Reason: "must be greater than zero"}
	}
	if in.YieldStrength <= 0 {
		return &ValidationError{Field: "yield strength", Value: in.YieldStrength, Reason: "must be greater than zero"}
	}
	if in.Load < 0 {
		return &ValidationError{Field: "load", Value: in.Load, Reason: "must not be negative"}
	}
	if in.SupportDistance <= 0 {
		return &ValidationError{Field: "support distance", Value: in.SupportDistance, Reason: "must be greater than zero"}
	}
	return nil
}

// Result holds the sizing results. Length equals the support distance.
type Result struct {
	Input Input `json:"input" yaml:"input"`

	MaxBendingMoment float64 `json:"max_bending_moment" yaml:"max_bending_moment"` // M (N·mm)
	AllowableStress  float64 `json:"allowable_stress" yaml:"allowable_stress"`     // σa (N/mm²)

	RequiredDiameter float64 `json:"required_diameter" yaml:"required_diameter"` // d (mm)
	Length           float64 `json:"length" yaml:"length"`                       // mm
}

// MaxBendingMoment returns the midspan moment of a simply supported beam
// under a central point load: M = F·L/4.
func MaxBendingMoment(load, span float64) float64 {
	return load * span / 4
}

// AllowableStress returns fy / n.
func AllowableStress(yieldStrength, safetyFactor float64) float64 {
	return yieldStrength / safetyFactor
}

// BendingStress returns the extreme fibre stress of a solid circular section:
// σ = 32·M / (π·d³).
func BendingStress(moment, diameter float64) float64 {
	return 32 * moment / (math.Pi * math.Pow(diameter, 3))
}

// ComputeShaftDiameter returns the solid shaft diameter (mm) that keeps the
// bending stress at or below fy/n for a central load (N) on a span (mm).
func ComputeShaftDiameter(load, supportDistance, yieldStrength, safetyFactor float64) (float64, error) {
	r, err := Design(Input{
		Load:            load,
		SupportDistance: supportDistance,
		YieldStrength:   yieldStrength,
		SafetyFactor:    safetyFactor,
	})
	if err != nil {
		return 0, err
	}
	return r.RequiredDiameter, nil
}

// Design validates the input and sizes the shaft.
func Design(in Input) (*Result, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	m := MaxBendingMoment(in.Load, in.SupportDistance)
	if err := finite("bending moment", m); err != nil {
		return nil, err
	}
	sa := AllowableStress(in.YieldStrength, in.SafetyFactor)
	if err := finite("allowable stress", sa); err != nil {
		return nil, err
	}

	// d³ = 32·M / (π·σa)
	radicand := 32 * m / (math.Pi * sa)
	if radicand < 0 {
		return nil, &ArithmeticError{Op: "diameter radicand", Value: radicand}
	}
	if err := finite("diameter radicand", radicand); err != nil {
		return nil, err
	}
	d := math.Cbrt(radicand)
	if err := finite("required diameter", d); err != nil {
		return nil, err
	}

	return &Result{
		Input:            in,
		MaxBendingMoment: m,
		AllowableStress:  sa,
		RequiredDiameter: d,
		Length:           in.SupportDistance,
	}, nil
}

// CheckResult holds the stress check of a chosen diameter.
type CheckResult struct {
	Input    Input   `json:"input" yaml:"input"`
	Diameter float64 `json:"diameter" yaml:"diameter"` // mm

	MaxBendingMoment float64 `json:"max_bending_moment" yaml:"max_bending_moment"` // N·mm
	AllowableStress  float64 `json:"allowable_stress" yaml:"allowable_stress"`     // N/mm²
	BendingStress    float64 `json:"bending_stress" yaml:"bending_stress"`         // N/mm²
	Utilization      float64 `json:"utilization" yaml:"utilization"`               // σ/σa

	// AchievedSafetyFactor is fy/σ. Zero when the shaft carries no moment.
	AchievedSafetyFactor float64 `json:"achieved_safety_factor" yaml:"achieved_safety_factor"`

	RequiredDiameter float64 `json:"required_diameter" yaml:"required_diameter"`
	IsAdequate       bool    `json:"is_adequate" yaml:"is_adequate"`
	Message          string  `json:"message" yaml:"message"`
}

// Check computes the bending stress of a shaft of the given diameter (mm).
func Check(in Input, diameter float64) (*CheckResult, error) {
	if math.IsNaN(diameter) || math.IsInf(diameter, 0) || diameter <= 0 {
		return nil, &ValidationError{Field: "diameter", Value: diameter, Reason: "must be a finite number greater than zero"}
	}
	design, err := Design(in)
	if err != nil {
		return nil, err
	}

	result := &CheckResult{
		Input:            in,
		Diameter:         diameter,
		MaxBendingMoment: design.MaxBendingMoment,
		AllowableStress:  design.AllowableStress,
		RequiredDiameter: design.RequiredDiameter,
	}

	result.BendingStress = BendingStress(design.MaxBendingMoment, diameter)
	if err := finite("bending stress", result.BendingStress); err != nil {
		return nil, err
	}
	result.Utilization = result.BendingStress / design.AllowableStress
	if result.BendingStress > 0 {
		result.AchievedSafetyFactor = in.YieldStrength / result.BendingStress
	}

	result.IsAdequate = result.BendingStress <= design.AllowableStress
	switch {
	case result.BendingStress == 0:
		result.Message = "No bending moment - shaft is unstressed"
	case result.IsAdequate:
		result.Message = "Section OK - bending stress within allowable"
	default:
		result.Message = "Section NOT adequate - bending stress exceeds allowable, increase the diameter"
	}

	return result, nil
}

func finite(op string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &ArithmeticError{Op: op, Value: v}
	}
	return nil
}
