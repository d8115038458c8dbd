package material

import (
	"fmt"
	"sort"
	"strings"
)

// Shaft steel material constants

const (
	// DefaultGrade is the structural steel used when no grade is given
	DefaultGrade = "S235"

	// DefaultSafetyFactor applied to the yield strength (dimensionless)
	DefaultSafetyFactor = 2.0

	// Modulus of elasticity for carbon and low-alloy steel
	Es = 210000.0 // N/mm²

	// Density of steel
	Rho = 7850.0 // kg/m³
)

// Material describes a shaft material grade.
type Material struct {
	Grade           string  `json:"grade" yaml:"grade"`
	Standard        string  `json:"standard" yaml:"standard"`
	YieldStrength   float64 `json:"yield_strength" yaml:"yield_strength"`     // fy (N/mm²)
	TensileStrength float64 `json:"tensile_strength" yaml:"tensile_strength"` // fu (N/mm²)
	ElasticModulus  float64 `json:"elastic_modulus" yaml:"elastic_modulus"`   // E (N/mm²)
	Density         float64 `json:"density" yaml:"density"`                   // kg/m³
	Description     string  `json:"description,omitempty" yaml:"description,omitempty"`
}

// catalog holds the built-in grades keyed by upper-case grade name.
// Yield strengths are the minimum values for thickness <= 16 mm.
var catalog = map[string]Material{
	"S235": {
		Grade:           "S235",
		Standard:        "EN 10025-2",
		YieldStrength:   235,
		TensileStrength: 360,
		ElasticModulus:  Es,
		Density:         Rho,
		Description:     "Structural steel, general purpose",
	},
	"S275": {
		Grade:           "S275",
		Standard:        "EN 10025-2",
		YieldStrength:   275,
		TensileStrength: 430,
		ElasticModulus:  Es,
		Density:         Rho,
		Description:     "Structural steel",
	},
	"S355": {
		Grade:           "S355",
		Standard:        "EN 10025-2",
		YieldStrength:   355,
		TensileStrength: 470,
		ElasticModulus:  Es,
		Density:         Rho,
		Description:     "High strength structural steel",
	},
	"E295": {
		Grade:           "E295",
		Standard:        "EN 10025-2",
		YieldStrength:   295,
		TensileStrength: 470,
		ElasticModulus:  Es,
		Density:         Rho,
		Description:     "Engineering steel for shafts and axles",
	},
	"C45": {
		Grade:           "C45",
		Standard:        "EN 10083-2",
		YieldStrength:   490,
		TensileStrength: 700,
		ElasticModulus:  Es,
		Density:         Rho,
		Description:     "Medium carbon steel, quenched and tempered",
	},
	"42CRMO4": {
		Grade:           "42CrMo4",
		Standard:        "EN 10083-3",
		YieldStrength:   750,
		TensileStrength: 1000,
		ElasticModulus:  Es,
		Density:         Rho,
		Description:     "Alloy steel, quenched and tempered",
	},
}

// Lookup returns the material for a grade. Matching is case-insensitive.
func Lookup(grade string) (Material, error) {
	m, ok := catalog[strings.ToUpper(strings.TrimSpace(grade))]
	if !ok {
		return Material{}, fmt.Errorf("unknown material grade %q (available: %s)", grade, strings.Join(Grades(), ", "))
	}
	return m, nil
}

// Default returns the default material (S235).
func Default() Material {
	return catalog[DefaultGrade]
}

// Grades returns the catalog grade names sorted by yield strength.
func Grades() []string {
	all := All()
	grades := make([]string, len(all))
	for i, m := range all {
		grades[i] = m.Grade
	}
	return grades
}

// All returns every catalog material sorted by yield strength, then grade.
func All() []Material {
	all := make([]Material, 0, len(catalog))
	for _, m := range catalog {
		all = append(all, m)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].YieldStrength != all[j].YieldStrength {
			return all[i].YieldStrength < all[j].YieldStrength
		}
		return all[i].Grade < all[j].Grade
	})
	return all
}

// Custom builds an ad-hoc material from a yield strength given on the command line.
func Custom(fy float64) Material {
	return Material{
		Grade:          "custom",
		Standard:       "user defined",
		YieldStrength:  fy,
		ElasticModulus: Es,
		Density:        Rho,
	}
}
