package geometry

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/goshaft/internal/shaft"
)

// DefaultSegments is the number of facets around the shaft circumference.
const DefaultSegments = 64

// Vec3 is a point or direction in model space (mm).
type Vec3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

func (a Vec3) sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

func (a Vec3) cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a Vec3) normalize() Vec3 {
	l := math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
	if l == 0 {
		return a
	}
	return Vec3{a.X / l, a.Y / l, a.Z / l}
}

// Triangle is a facet with counter-clockwise vertices seen from outside.
type Triangle struct {
	Normal     Vec3
	V1, V2, V3 Vec3
}

func newTriangle(a, b, c Vec3) Triangle {
	return Triangle{Normal: b.sub(a).cross(c.sub(a)).normalize(), V1: a, V2: b, V3: c}
}

// Cylinder is a solid shaft body: a circle of Radius sketched on the XY plane
// at the origin and extruded along +Z by Length.
type Cylinder struct {
	Radius   float64 // mm
	Length   float64 // mm
	Segments int
}

// FromResult builds the shaft body for a sizing result.
func FromResult(r *shaft.Result, segments int) (Cylinder, error) {
	if r == nil {
		return Cylinder{}, fmt.Errorf("no shaft result")
	}
	c := Cylinder{
		Radius:   r.RequiredDiameter / 2,
		Length:   r.Length,
		Segments: segments,
	}
	if err := c.Validate(); err != nil {
		return Cylinder{}, err
	}
	return c, nil
}

// Validate checks the body can be tessellated.
func (c Cylinder) Validate() error {
	if !(c.Radius > 0) || math.IsInf(c.Radius, 0) {
		return fmt.Errorf("invalid shaft radius: %.4f mm (diameter must be positive)", c.Radius)
	}
	if !(c.Length > 0) || math.IsInf(c.Length, 0) {
		return fmt.Errorf("invalid shaft length: %.4f mm", c.Length)
	}
	if c.Segments < 3 {
		return fmt.Errorf("invalid segment count: %d (minimum 3)", c.Segments)
	}
	return nil
}

// Diameter returns 2r.
func (c Cylinder) Diameter() float64 {
	return 2 * c.Radius
}

// Volume returns the exact volume of the cylinder (mm³).
func (c Cylinder) Volume() float64 {
	return math.Pi * c.Radius * c.Radius * c.Length
}

// Mass returns the mass (kg) for a density in kg/m³.
func (c Cylinder) Mass(density float64) float64 {
	return c.Volume() * 1e-9 * density
}

// Triangles tessellates the closed surface: bottom cap, top cap and side wall.
func (c Cylinder) Triangles() []Triangle {
	n := c.Segments
	tris := make([]Triangle, 0, 4*n)

	bottom := Vec3{0, 0, 0}
	top := Vec3{0, 0, c.Length}

	ring := func(i int, z float64) Vec3 {
		theta := 2 * math.Pi * float64(i%n) / float64(n)
		return Vec3{c.Radius * math.Cos(theta), c.Radius * math.Sin(theta), z}
	}

	for i := 0; i < n; i++ {
		p0, p1 := ring(i, 0), ring(i+1, 0)
		q0, q1 := ring(i, c.Length), ring(i+1, c.Length)

		tris = append(tris,
			newTriangle(bottom, p1, p0), // normal -Z
			newTriangle(top, q0, q1),    // normal +Z
			newTriangle(p0, p1, q1),
			newTriangle(p0, q1, q0),
		)
	}
	return tris
}

// DimensionKind identifies an annotation type.
type DimensionKind string

const (
	DiameterDimension DimensionKind = "diameter"
	LengthDimension   DimensionKind = "length"
)

// Dimension is a drawing annotation attached to the body.
type Dimension struct {
	Kind  DimensionKind `json:"kind" yaml:"kind"`
	Value float64       `json:"value" yaml:"value"` // mm
	Label string        `json:"label" yaml:"label"`
	// Start and End are the measured points; TextPoint is where the label is placed.
	Start     Vec3 `json:"start" yaml:"start"`
	End       Vec3 `json:"end" yaml:"end"`
	TextPoint Vec3 `json:"text_point" yaml:"text_point"`
}

// Dimensions returns the diameter and length annotations of the shaft.
func (c Cylinder) Dimensions() []Dimension {
	return []Dimension{
		{
			Kind:      DiameterDimension,
			Value:     c.Diameter(),
			Label:     fmt.Sprintf("Ø%.2f", c.Diameter()),
			Start:     Vec3{-c.Radius, 0, 0},
			End:       Vec3{c.Radius, 0, 0},
			TextPoint: Vec3{c.Radius + 10, 0, c.Length / 2},
		},
		{
			Kind:      LengthDimension,
			Value:     c.Length,
			Label:     fmt.Sprintf("%.2f", c.Length),
			Start:     Vec3{0, 0, 0},
			End:       Vec3{0, 0, c.Length},
			TextPoint: Vec3{0, 0, c.Length / 2},
		},
	}
}
