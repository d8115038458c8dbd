package units

import (
	"fmt"
	"strings"
)

// Length is a named length unit.
type Length string

const (
	Millimeter Length = "mm"
	Centimeter Length = "cm"
	Meter      Length = "m"
	Inch       Length = "in"
)

// millimeters per unit
var perUnit = map[Length]float64{
	Millimeter: 1,
	Centimeter: 10,
	Meter:      1000,
	Inch:       25.4,
}

// ParseLength parses a unit name such as "mm" or "inch".
func ParseLength(s string) (Length, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mm", "millimeter", "millimeters", "millimetre", "millimetres":
		return Millimeter, nil
	case "cm", "centimeter", "centimeters", "centimetre", "centimetres":
		return Centimeter, nil
	case "m", "meter", "meters", "metre", "metres":
		return Meter, nil
	case "in", "inch", "inches", `"`:
		return Inch, nil
	}
	return "", fmt.Errorf("unknown length unit %q (use mm, cm, m or in)", s)
}

// Convert converts a length between units.
func Convert(value float64, from, to Length) (float64, error) {
	f, ok := perUnit[from]
	if !ok {
		return 0, fmt.Errorf("unknown length unit %q", from)
	}
	t, ok := perUnit[to]
	if !ok {
		return 0, fmt.Errorf("unknown length unit %q", to)
	}
	return value * f / t, nil
}

// MMToCM converts millimeters to centimeters, the internal length unit of most CAD hosts.
func MMToCM(mm float64) float64 { return mm / 10 }

// MMToM converts millimeters to meters.
func MMToM(mm float64) float64 { return mm / 1000 }

// NmmToNm converts a moment from N·mm to N·m.
func NmmToNm(nmm float64) float64 { return nmm / 1000 }

// NmmToKNm converts a moment from N·mm to kN·m.
func NmmToKNm(nmm float64) float64 { return nmm / 1e6 }

// NToKN converts a force from N to kN.
func NToKN(n float64) float64 { return n / 1000 }
